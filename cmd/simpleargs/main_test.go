package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cardinalby/go-simple-args/cmdargs"
	"github.com/cardinalby/go-simple-args/internal/render"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestRootCmd_JSON(t *testing.T) {
	out, _, err := execute(t, "",
		"--format", "json", "--",
		"test.txt", "-o", "test.o", "--debug", "--ignore-warnings=true",
	)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"arguments": [
			{"kind": "positional", "value": "test.txt"},
			{"kind": "flag", "char": "o"},
			{"kind": "positional", "value": "test.o"},
			{"kind": "option", "name": "debug"},
			{"kind": "variable", "name": "ignore-warnings", "value": "true"}
		],
		"positionals": ["test.txt", "test.o"],
		"flags": ["o"],
		"options": ["debug"],
		"variables": {"ignore-warnings": "true"}
	}`, out)
}

func TestRootCmd_Only(t *testing.T) {
	out, _, err := execute(t, "", "--only", "flag,variable", "--", "a", "-xy", "--o", "--v=1")
	require.NoError(t, err)

	var expected bytes.Buffer
	parsed := cmdargs.Classify([]string{"-xy", "--v=1"})
	require.NoError(t, render.Write(&expected, parsed, render.FormatText))
	require.Equal(t, expected.String(), out)
}

func TestRootCmd_OnlyDashFlag(t *testing.T) {
	out, _, err := execute(t, "", "--only", "flag", "-f", "json", "--", "-x-", "--opt")
	require.NoError(t, err)
	require.JSONEq(t, `{
		"arguments": [
			{"kind": "flag", "char": "x"},
			{"kind": "flag", "char": "-"}
		],
		"positionals": [],
		"flags": ["x", "-"],
		"options": [],
		"variables": {}
	}`, out)
}

func TestRootCmd_Stdin(t *testing.T) {
	out, _, err := execute(t, "a -b\n\n--c=d --e\n", "--stdin", "-f", "json")
	require.NoError(t, err)

	decoded := strings.Count(out, `"arguments"`)
	require.Equal(t, 3, decoded)
	require.Contains(t, out, `"char": "b"`)
	require.Contains(t, out, `"c": "d"`)
	require.Contains(t, out, `"e"`)
}

func TestRootCmd_DebugLogs(t *testing.T) {
	_, stderr, err := execute(t, "", "--log-level", "debug", "--", "-q")
	require.NoError(t, err)
	require.Contains(t, stderr, "Classified argument")
	require.Contains(t, stderr, "Classified tokens")
}

func TestRootCmd_Errors(t *testing.T) {
	testCases := []struct {
		name   string
		args   []string
		expErr error
	}{
		{
			name:   "format",
			args:   []string{"--format", "yaml", "--", "a"},
			expErr: render.ErrUnknownFormat,
		},
		{
			name:   "kind",
			args:   []string{"--only", "flags", "--", "a"},
			expErr: cmdargs.ErrUnknownKind,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(t, "", tc.args...)
			require.ErrorIs(t, err, tc.expErr)
		})
	}

	_, _, err := execute(t, "", "--log-level", "loud")
	require.ErrorContains(t, err, "invalid log level")
}
