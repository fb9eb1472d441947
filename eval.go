package calc

import (
	"context"
	"log/slog"
)

// Eval evaluates an expression and returns its result. If the expression is
// invalid, the result is 0 and the error is a *SyntaxError, *NumberError, or
// *DepthError.
func Eval(src string, opts ...Option) (float64, error) {
	c := newConfig(opts)
	return eval(src, c.maxDepth)
}

// Expression is an expression to evaluate. Evaluating it parses it anew each
// time.
type Expression string

// Zero is the expression "0".
const Zero Expression = "0"

// Eval evaluates the expression.
func (e Expression) Eval(opts ...Option) (float64, error) {
	return Eval(string(e), opts...)
}

// Evaluator evaluates expressions with a fixed set of options. Evaluators hold
// no state between evaluations, so it is safe to use one concurrently.
type Evaluator struct {
	maxDepth int
	logger   *slog.Logger
}

// New creates an Evaluator. The given options are applied in order.
func New(opts ...Option) *Evaluator {
	c := newConfig(opts)
	return &Evaluator{
		maxDepth: c.maxDepth,
		logger:   c.logger(),
	}
}

// Eval evaluates an expression. It is the same as the package-level Eval with
// the Evaluator's options, except that it logs the outcome at debug level.
func (ev *Evaluator) Eval(src string) (float64, error) {
	return ev.EvalContext(context.Background(), src)
}

// EvalContext is like Eval but passes ctx to the logger. Evaluation itself
// never blocks, so ctx is not checked for cancellation.
func (ev *Evaluator) EvalContext(ctx context.Context, src string) (float64, error) {
	logger := ev.logger.With("expr", src)
	x, err := eval(src, ev.maxDepth)
	if err != nil {
		logger.DebugContext(ctx, "evaluation failed", "error", err)
		return 0, err
	}
	logger.DebugContext(ctx, "evaluated", "result", x)
	return x, nil
}

// MaxDepth returns the maximum nesting depth the Evaluator allows.
func (ev *Evaluator) MaxDepth() int {
	return ev.maxDepth
}
