// Package simpleargs classifies the arguments of the current process.
// See the cmdargs package for classification of arbitrary token lists.
package simpleargs

import (
	"os"
	"strings"

	"github.com/cardinalby/go-simple-args/cmdargs"
)

// Args returns the tokens passed to the program after its own name
func Args() []string {
	if len(os.Args) < 2 {
		return nil
	}
	return append([]string(nil), os.Args[1:]...)
}

// Parse classifies the command-line arguments of the current process
func Parse() cmdargs.Parsed {
	return cmdargs.Classify(Args())
}

// RawString returns the command-line arguments joined by a single space
func RawString() string {
	return Join(Args())
}

// Join joins tokens by a single space. No quoting is applied, so the result
// can't always be split back into the same tokens
func Join(tokens []string) string {
	return strings.Join(tokens, " ")
}
