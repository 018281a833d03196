package cmdargs

// Positional is a bare token that doesn't start with '-'
type Positional string

func (p Positional) String() string {
	return string(p)
}

func (p Positional) Kind() Kind {
	return KindPositional
}

func (p Positional) Value() string {
	return string(p)
}

func (Positional) isArgument() {}
