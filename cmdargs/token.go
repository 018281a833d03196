package cmdargs

import "strings"

// tokenClass is the classification of a single raw token.
// payload holds:
// KindPositional: the whole token
// KindFlag:       the flag cluster without the leading '-' (can be empty)
// KindOption:     the option name (can be empty)
// KindVariable:   the variable name, with the part after the first '=' in value
type tokenClass struct {
	kind    Kind
	payload string
	value   string
}

// classifyToken decides the kind of a token looking only at its characters.
// The first matching prefix wins, so exactly one kind is returned for any string.
func classifyToken(token string) tokenClass {
	afterDash, isDashed := strings.CutPrefix(token, "-")
	if !isDashed {
		return tokenClass{kind: KindPositional, payload: token}
	}
	long, isDoubleDashed := strings.CutPrefix(afterDash, "-")
	if !isDoubleDashed {
		return tokenClass{kind: KindFlag, payload: afterDash}
	}
	// "--" prefix never contains '=', so cutting the stripped name is equivalent
	// to checking the whole token
	if name, value, hasValue := strings.Cut(long, "="); hasValue {
		return tokenClass{kind: KindVariable, payload: name, value: value}
	}
	return tokenClass{kind: KindOption, payload: long}
}
