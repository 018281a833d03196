package cmdargs

// Variable is a "--name=value" switch. Value is everything after the first '='
// and may contain more '=' characters.
type Variable struct {
	Name  string
	Value string
}

func NewVariable(name, value string) Variable {
	return Variable{
		Name:  name,
		Value: value,
	}
}

func (v Variable) String() string {
	return "--" + v.Name + "=" + v.Value
}

func (v Variable) Kind() Kind {
	return KindVariable
}

func (Variable) isArgument() {}
