package cmdargs

// MapArguments classifies tokens and builds a new token list from the canonical
// forms of mapped arguments. If mapper returns nil, the argument is dropped.
// Consecutive mapped flags are joined into one cluster, so "-a-" is kept as "-a-".
// A cluster can't start with '-': a leading '-' flag is rendered as "--" and parsed
// again as an empty Option. Flag characters are runes, so invalid UTF-8 bytes in a
// cluster are rendered as U+FFFD. Use Parsed.FilterKinds to filter without re-parsing.
func (tokens Tokens) MapArguments(
	mapper func(Argument) Argument,
) (res Tokens) {
	inCluster := false
	tokens.Iterate(func(arg Argument) bool {
		mapped := mapper(arg)
		if mapped == nil {
			return true
		}
		flag, isFlag := mapped.(Flag)
		if isFlag && inCluster {
			res[len(res)-1] += string(flag.Char())
			return true
		}
		res = append(res, mapped.String())
		inCluster = isFlag && flag.Char() != '-'
		return true
	})
	return res
}

// FilterKinds keeps only arguments of the given kinds
func (tokens Tokens) FilterKinds(kinds ...Kind) Tokens {
	return tokens.MapArguments(kindsFilter(kinds))
}

func kindsFilter(kinds []Kind) func(Argument) Argument {
	return func(arg Argument) Argument {
		for _, kind := range kinds {
			if arg.Kind() == kind {
				return arg
			}
		}
		return nil
	}
}
