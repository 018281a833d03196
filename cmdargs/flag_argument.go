package cmdargs

// Flag is a single character taken from a "-abc" cluster
type Flag rune

func (f Flag) String() string {
	return "-" + string(f)
}

func (f Flag) Kind() Kind {
	return KindFlag
}

func (f Flag) Char() rune {
	return rune(f)
}

func (Flag) isArgument() {}
