// Package cmdargs classifies raw command-line tokens into positionals, flags,
// options and variables.
package cmdargs

import (
	"errors"
	"fmt"
)

var ErrUnknownKind = errors.New("unknown argument kind")

type Kind int

const (
	KindPositional Kind = iota
	KindFlag
	KindOption
	KindVariable
)

func (k Kind) String() string {
	switch k {
	case KindPositional:
		return "positional"
	case KindFlag:
		return "flag"
	case KindOption:
		return "option"
	case KindVariable:
		return "variable"
	default:
		return "unknown"
	}
}

// ParseKind is the inverse of Kind.String()
func ParseKind(s string) (Kind, error) {
	for _, kind := range []Kind{KindPositional, KindFlag, KindOption, KindVariable} {
		if kind.String() == s {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Argument is a single classified argument. It is implemented by Positional,
// Flag, Option and Variable only.
type Argument interface {
	// String returns the canonical token form of the argument
	String() string
	Kind() Kind
	isArgument()
}
