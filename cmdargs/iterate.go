package cmdargs

// Tokens is a sequence of raw command-line tokens, already split by the shell
type Tokens []string

// Iterate classifies tokens one by one calling yield for each resulting Argument.
// A flag cluster produces one Flag per character, so a single token can produce zero
// ("-") or several ("-abc") calls. Iteration stops when yield returns false.
// Iterate can be used as a range-over-func iterator.
func (tokens Tokens) Iterate(yield func(arg Argument) bool) {
	for _, token := range tokens {
		class := classifyToken(token)
		switch class.kind {
		case KindPositional:
			if !yield(Positional(class.payload)) {
				return
			}
		case KindFlag:
			for _, char := range class.payload {
				if !yield(Flag(char)) {
					return
				}
			}
		case KindOption:
			if !yield(Option(class.payload)) {
				return
			}
		case KindVariable:
			if !yield(NewVariable(class.payload, class.value)) {
				return
			}
		}
	}
}

// Classify performs a full classification pass. See Classify
func (tokens Tokens) Classify() Parsed {
	var builder parsedBuilder
	tokens.Iterate(func(arg Argument) bool {
		builder.add(arg)
		return true
	})
	return builder.build()
}

// Classify partitions tokens into positionals, flags, options and variables.
// It accepts any input (including empty strings) and never fails.
func Classify(tokens []string) Parsed {
	return Tokens(tokens).Classify()
}
