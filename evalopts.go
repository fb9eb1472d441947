package calc

import (
	"context"
	"log/slog"
	"strconv"
)

// DefaultMaxDepth is the nesting depth allowed when no MaxDepth option is
// given. Each parenthesis, unary sign, function call, and exponent counts as a
// level.
const DefaultMaxDepth = 1000

// Option is an option for evaluating expressions.
type Option interface {
	option(*config)
}

type (
	depthopt  int
	loggeropt struct{ h slog.Handler }
)

// config holds the settings for evaluation.
type config struct {
	// maxDepth is the maximum nesting depth of factors.
	maxDepth int
	// handler receives log records from an Evaluator. Nil means discard.
	handler slog.Handler
}

func newConfig(opts []Option) config {
	c := config{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.option(&c)
	}
	return c
}

// MaxDepth sets the maximum nesting depth of an expression. Evaluating an
// expression nested more deeply fails with a *DepthError. Panics if n < 1.
func MaxDepth(n int) Option {
	if n < 1 {
		panic("calc: invalid max depth " + strconv.Itoa(n))
	}
	return depthopt(n)
}

func (o depthopt) option(c *config) {
	c.maxDepth = int(o)
}

// Logger sets the handler that an Evaluator logs to. Evaluation through the
// package-level Eval never logs.
func Logger(h slog.Handler) Option {
	return loggeropt{h}
}

func (o loggeropt) option(c *config) {
	c.handler = o.h
}

// logger creates the logger for an Evaluator.
func (c *config) logger() *slog.Logger {
	h := c.handler
	if h == nil {
		h = discard{}
	}
	return slog.New(h).WithGroup("calc")
}

// discard is a slog.Handler that drops all records.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }
