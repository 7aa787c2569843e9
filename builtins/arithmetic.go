package builtins

import (
	"github.com/client9/termrw/core"
	"github.com/client9/termrw/evaluator"
)

// plusImpl adds two integers; any other argument shape is left
// symbolic, matching the reference kernel's deliberate choice to not
// collapse Real addition (print-formatting concerns for 3.0 vs 3).
func plusImpl(ev *evaluator.Evaluator, args []core.Expr) core.Expr {
	if len(args) == 2 {
		if a, ok := args[0].(core.Int); ok {
			if b, ok := args[1].(core.Int); ok {
				return a.Add(b)
			}
		}
	}
	return core.NewList(core.Sym("Plus"), args...)
}

// timesImpl multiplies two integers; see plusImpl for why reals are
// not reduced here.
func timesImpl(ev *evaluator.Evaluator, args []core.Expr) core.Expr {
	if len(args) == 2 {
		if a, ok := args[0].(core.Int); ok {
			if b, ok := args[1].(core.Int); ok {
				return a.Mul(b)
			}
		}
	}
	return core.NewList(core.Sym("Times"), args...)
}
