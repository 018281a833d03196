package cmdargs

// Option is a "--name" switch without a value. Name can be empty for a bare "--"
type Option string

func (o Option) String() string {
	return "--" + string(o)
}

func (o Option) Kind() Kind {
	return KindOption
}

func (o Option) Name() string {
	return string(o)
}

func (Option) isArgument() {}
