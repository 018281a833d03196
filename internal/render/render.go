// Package render prints classified arguments for humans and machines.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/cardinalby/go-simple-args/cmdargs"
)

var ErrUnknownFormat = errors.New("unknown format")

type Format int

const (
	FormatText Format = iota
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Write writes parsed arguments to w in the given format
func Write(w io.Writer, parsed cmdargs.Parsed, format Format) error {
	switch format {
	case FormatText:
		return writeText(w, parsed)
	case FormatJSON:
		return writeJSON(w, parsed)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

type jsonArgument struct {
	Kind  string  `json:"kind"`
	Value *string `json:"value,omitempty"`
	Name  *string `json:"name,omitempty"`
	Char  string  `json:"char,omitempty"`
}

type jsonParsed struct {
	Arguments   []jsonArgument    `json:"arguments"`
	Positionals []string          `json:"positionals"`
	Flags       []string          `json:"flags"`
	Options     []string          `json:"options"`
	Variables   map[string]string `json:"variables"`
}

func toJSONArgument(arg cmdargs.Argument) jsonArgument {
	res := jsonArgument{Kind: arg.Kind().String()}
	switch a := arg.(type) {
	case cmdargs.Positional:
		value := a.Value()
		res.Value = &value
	case cmdargs.Flag:
		res.Char = string(a.Char())
	case cmdargs.Option:
		name := a.Name()
		res.Name = &name
	case cmdargs.Variable:
		res.Name = &a.Name
		res.Value = &a.Value
	}
	return res
}

func writeJSON(w io.Writer, parsed cmdargs.Parsed) error {
	res := jsonParsed{
		Arguments:   []jsonArgument{},
		Positionals: parsed.Positionals(),
		Flags:       []string{},
		Options:     parsed.Options(),
		Variables:   parsed.Variables(),
	}
	for _, arg := range parsed.Arguments() {
		res.Arguments = append(res.Arguments, toJSONArgument(arg))
	}
	for _, char := range parsed.Flags() {
		res.Flags = append(res.Flags, string(char))
	}
	if res.Positionals == nil {
		res.Positionals = []string{}
	}
	if res.Options == nil {
		res.Options = []string{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(res); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

func writeText(w io.Writer, parsed cmdargs.Parsed) error {
	var sb strings.Builder
	for i, arg := range parsed.Arguments() {
		fmt.Fprintf(&sb, "%d\t%-10s\t%q\n", i, arg.Kind(), arg.String())
	}
	fmt.Fprintf(&sb, "positionals: %q\n", parsed.Positionals())
	fmt.Fprintf(&sb, "flags: %q\n", parsed.Flags())
	fmt.Fprintf(&sb, "options: %q\n", parsed.Options())

	variables := parsed.Variables()
	names := make([]string, 0, len(variables))
	for name := range variables {
		names = append(names, name)
	}
	slices.Sort(names)
	sb.WriteString("variables:")
	for _, name := range names {
		fmt.Fprintf(&sb, " %q=%q", name, variables[name])
	}
	sb.WriteString("\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write text: %w", err)
	}
	return nil
}
