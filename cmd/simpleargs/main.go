package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cardinalby/go-simple-args/cmdargs"
	"github.com/cardinalby/go-simple-args/internal/render"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type options struct {
	format   string
	stdin    bool
	logLevel string
	only     []string
}

func newRootCmd() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:   "simpleargs [flags] -- [tokens...]",
		Short: "Classify command-line tokens into positionals, flags, options and variables",
		Long: `simpleargs classifies the tokens given after "--" (or each line of stdin with --stdin):

  value         positional
  -abc          flags 'a', 'b', 'c'
  --name        option
  --name=value  variable`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(cmd.ErrOrStderr(), opts.logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format: text or json")
	cmd.Flags().BoolVar(&opts.stdin, "stdin", false, "classify each whitespace-separated line of stdin")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	cmd.Flags().StringSliceVar(&opts.only, "only", nil, "keep only the given kinds: positional, flag, option, variable")
	return cmd
}

func setupLogger(out io.Writer, levelStr string) error {
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", levelStr, err)
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out}).
		Level(level).
		With().
		Timestamp().
		Logger()
	return nil
}

func run(cmd *cobra.Command, opts options, args []string) error {
	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	kinds, err := parseKinds(opts.only)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !opts.stdin {
		return classifyAndWrite(out, args, format, kinds)
	}

	if len(args) > 0 {
		log.Warn().Int("tokens", len(args)).Msg("Ignoring tokens given with --stdin")
	}
	scanner := bufio.NewScanner(cmd.InOrStdin())
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if err := classifyAndWrite(out, strings.Fields(scanner.Text()), format, kinds); err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	return nil
}

func parseKinds(names []string) ([]cmdargs.Kind, error) {
	kinds := make([]cmdargs.Kind, 0, len(names))
	for _, name := range names {
		kind, err := cmdargs.ParseKind(strings.TrimSpace(name))
		if err != nil {
			return nil, fmt.Errorf("invalid --only value: %w", err)
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

func classifyAndWrite(w io.Writer, tokens []string, format render.Format, kinds []cmdargs.Kind) error {
	parsed := cmdargs.Classify(tokens)
	if len(kinds) > 0 {
		parsed = parsed.FilterKinds(kinds...)
	}

	for _, arg := range parsed.Arguments() {
		log.Debug().
			Stringer("kind", arg.Kind()).
			Str("token", arg.String()).
			Msg("Classified argument")
	}
	log.Info().
		Int("tokens", len(tokens)).
		Int("arguments", parsed.Len()).
		Msg("Classified tokens")

	return render.Write(w, parsed, format)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
