package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc"
)

// errFailed is returned from the command when at least one expression failed
// to evaluate. The failures themselves have already been reported.
var errFailed = errors.New("evaluation failed")

// options holds the command-line settings.
type options struct {
	in       string
	verb     string
	lines    bool
	echo     bool
	maxDepth int
	verbose  bool
	noColor  bool
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "calc [expression...]",
		Short: "Evaluate arithmetic expressions",
		Long: `Calc evaluates arithmetic expressions and prints their results.

Expressions are taken from the arguments, from the file named by --in, or
from standard input if there are no arguments. Expressions support + - * /,
right-associative ^, parentheses, and the functions ` + fmt.Sprint(calc.Funcs()) + `.

The defaults for --fmt and --max-depth may be set with the CALC_FORMAT and
CALC_MAX_DEPTH environment variables. Use -- before expressions that begin
with a minus sign.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &o, args)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.in, "in", "", "input file, - for stdin (default stdin if no args given)")
	f.StringVar(&o.verb, "fmt", envString("CALC_FORMAT", "%g"), "result formatting verb")
	f.BoolVarP(&o.lines, "lines", "n", false, "parse separate input lines as separate expressions")
	f.BoolVar(&o.echo, "echo", false, "print each expression before its result")
	f.IntVar(&o.maxDepth, "max-depth", envInt("CALC_MAX_DEPTH", calc.DefaultMaxDepth), "maximum nesting depth of expressions")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "log each evaluation")
	f.BoolVar(&o.noColor, "no-color", false, "disable colored output")
	return cmd
}

func run(cmd *cobra.Command, o *options, args []string) error {
	if o.maxDepth < 1 {
		return fmt.Errorf("max depth (%d) must be positive", o.maxDepth)
	}
	if o.noColor {
		color.NoColor = true
	}
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	logger := slog.New(h)
	ev := calc.New(calc.MaxDepth(o.maxDepth), calc.Logger(h))

	var srcs []string
	in, err := infile(cmd, o.in, len(args) == 0)
	if err != nil {
		return err
	}
	if in != nil {
		s, err := readExprs(in, o.lines)
		in.Close()
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		srcs = append(srcs, s...)
	}
	srcs = append(srcs, args...)
	logger.Debug("evaluating", "count", len(srcs))

	out := cmd.OutOrStdout()
	failed := 0
	red := color.New(color.FgRed)
	verb := o.verb + "\n"
	for _, src := range srcs {
		if o.echo {
			fmt.Fprintf(out, "%s : ", src)
		}
		r, err := ev.EvalContext(cmd.Context(), src)
		if err != nil {
			failed++
			red.Fprintln(out, err)
			continue
		}
		fmt.Fprintf(out, verb, r)
	}
	if failed > 0 {
		logger.Debug("some expressions failed", "failed", failed, "total", len(srcs))
		return errFailed
	}
	return nil
}

// infile opens the input named by inname. If inname is empty and std is true,
// or if inname is "-", the input is the command's stdin. Otherwise, if inname
// is empty, there is no input and the result is nil.
func infile(cmd *cobra.Command, inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		return f, nil
	case inname == "-", std:
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return nil, nil
}

func envString(name, def string) string {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		return v
	}
	return def
}

func envInt(name string, def int) int {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		// Malformed values are ignored.
		return def
	}
	return n
}
