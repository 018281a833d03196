package cmdargs

import (
	"fmt"
	"maps"
	"slices"
)

// Parsed is the result of classification. It is immutable: all getters return copies.
type Parsed struct {
	arguments   []Argument
	positionals []string
	flags       []rune
	options     []string
	variables   map[string]string
}

// Arguments returns all classified arguments in the order they were encountered,
// one entry per flag character
func (p Parsed) Arguments() []Argument {
	return slices.Clone(p.arguments)
}

// Positionals returns values of all Positional arguments, duplicates included
func (p Parsed) Positionals() []string {
	return slices.Clone(p.positionals)
}

// Flags returns all flag characters, duplicates included ("-oo" gives two 'o')
func (p Parsed) Flags() []rune {
	return slices.Clone(p.flags)
}

// Options returns names of all Option arguments, duplicates included
func (p Parsed) Options() []string {
	return slices.Clone(p.options)
}

// Variables returns variable values by name. If a name was passed several times,
// the last value wins
func (p Parsed) Variables() map[string]string {
	res := make(map[string]string, len(p.variables))
	maps.Copy(res, p.variables)
	return res
}

func (p Parsed) HasFlag(char rune) bool {
	return slices.Contains(p.flags, char)
}

func (p Parsed) HasOption(name string) bool {
	return slices.Contains(p.options, name)
}

// Variable returns the last value of the variable with the given name
func (p Parsed) Variable(name string) (value string, has bool) {
	value, has = p.variables[name]
	return value, has
}

// Len returns the number of classified arguments
func (p Parsed) Len() int {
	return len(p.arguments)
}

func (p Parsed) IsEmpty() bool {
	return len(p.arguments) == 0
}

func (p Parsed) String() string {
	return fmt.Sprintf(
		"Parsed{Positionals=%q, Flags=%q, Options=%q, Variables=%q}",
		p.positionals, p.flags, p.options, p.variables,
	)
}

// FilterKinds returns a new Parsed with only the arguments of the given kinds.
// Unlike Tokens.FilterKinds, arguments are not rendered and classified again.
func (p Parsed) FilterKinds(kinds ...Kind) Parsed {
	filter := kindsFilter(kinds)
	var builder parsedBuilder
	for _, arg := range p.arguments {
		if filter(arg) != nil {
			builder.add(arg)
		}
	}
	return builder.build()
}

type parsedBuilder struct {
	res Parsed
}

func (b *parsedBuilder) add(arg Argument) {
	b.res.arguments = append(b.res.arguments, arg)
	switch a := arg.(type) {
	case Positional:
		b.res.positionals = append(b.res.positionals, a.Value())
	case Flag:
		b.res.flags = append(b.res.flags, a.Char())
	case Option:
		b.res.options = append(b.res.options, a.Name())
	case Variable:
		if b.res.variables == nil {
			b.res.variables = make(map[string]string)
		}
		b.res.variables[a.Name] = a.Value
	}
}

func (b *parsedBuilder) build() Parsed {
	return b.res
}
