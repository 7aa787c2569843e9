package builtins

import (
	"github.com/client9/termrw/core"
	"github.com/client9/termrw/evaluator"
	"github.com/client9/termrw/matcher"
	"github.com/client9/termrw/parser"
	"github.com/client9/termrw/rewriter"
)

func matchqImpl(ev *evaluator.Evaluator, args []core.Expr) core.Expr {
	if len(args) != 2 {
		ev.Warnf("matchq: takes 2 arguments")
		return core.SymFailed
	}
	ok, _ := matcher.Match(args[0], args[1])
	return core.Bool(ok)
}

func sameqImpl(ev *evaluator.Evaluator, args []core.Expr) core.Expr {
	if len(args) == 0 {
		return core.Bool(true)
	}
	first := args[0]
	for _, a := range args {
		if !a.Equal(first) {
			return core.Bool(false)
		}
	}
	return core.Bool(true)
}

func replaceImpl(ev *evaluator.Evaluator, args []core.Expr) core.Expr {
	if len(args) != 2 {
		return reconstruct("replace", args)
	}
	return rewriter.Replace(args[0], args[1])
}

func replaceAllImpl(ev *evaluator.Evaluator, args []core.Expr) core.Expr {
	if len(args) != 2 {
		return reconstruct("replace_all", args)
	}
	return rewriter.ReplaceAll(args[0], args[1])
}

func replaceRepeatedImpl(ev *evaluator.Evaluator, args []core.Expr) core.Expr {
	if len(args) != 2 {
		ev.Warnf("replace_repeated: takes 2 arguments")
		return core.SymFailed
	}
	result, hitCap := rewriter.ReplaceRepeated(args[0], args[1])
	if hitCap {
		ev.Warnf("replace_repeated: iteration limit %d reached", rewriter.MaxIterations)
		return core.SymFailed
	}
	return result
}

func parseImpl(ev *evaluator.Evaluator, args []core.Expr) core.Expr {
	if len(args) != 1 {
		ev.Warnf("parse: takes a string")
		return core.SymFailed
	}
	s, ok := args[0].(core.Str)
	if !ok {
		ev.Warnf("parse: takes a string")
		return core.SymFailed
	}
	e, err := parser.Parse(string(s))
	if err != nil {
		ev.Warnf("parse: %v", err)
		return core.SymFailed
	}
	return e
}
