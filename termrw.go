// Package termrw wires the kernel's packages (parser, matcher,
// rewriter, environment, evaluator, builtins) into the handful of
// entry points external code and the cmd/cardinal front end need.
package termrw

import (
	"github.com/client9/termrw/builtins"
	"github.com/client9/termrw/core"
	"github.com/client9/termrw/environment"
	"github.com/client9/termrw/evaluator"
	"github.com/client9/termrw/parser"
)

// NewEvaluator builds a fresh evaluator: a bootstrapped environment
// (attribute rules installed) with every builtin registered.
func NewEvaluator() *evaluator.Evaluator {
	env := environment.New()
	environment.Bootstrap(env)
	ev := evaluator.New(env)
	builtins.Register(ev)
	return ev
}

// Parse parses a single expression.
func Parse(input string) (core.Expr, error) {
	return parser.Parse(input)
}

// ParseAll parses a sequence of top-level expressions.
func ParseAll(input string) ([]core.Expr, error) {
	return parser.ParseAll(input)
}

// EvaluateString parses and evaluates input against a fresh evaluator.
func EvaluateString(input string) (core.Expr, error) {
	expr, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return NewEvaluator().Eval(expr), nil
}
