package builtins

import (
	"github.com/client9/termrw/core"
	"github.com/client9/termrw/evaluator"
)

// assign installs rhs as lhs's ownvalue (bare symbol) or appends a
// (rule_delayed (hold_pattern lhs) rhs) downvalue (compound lhs headed
// by a symbol). A non-symbol tag is left alone ("Protected" in the
// reference kernel's wording).
func assign(ev *evaluator.Evaluator, lhs, rhs core.Expr) bool {
	switch l := lhs.(type) {
	case core.Sym:
		ev.Env.SetOwn(l, rhs)
		return true
	case core.List:
		tag, ok := l.Head().(core.Sym)
		if !ok {
			ev.Warnf("set: tag %s is protected", l.Head())
			return false
		}
		rule := core.NewList(core.SymRuleDelayed, core.NewList(core.SymHoldPat, lhs), rhs)
		ev.Env.AddDownValue(tag, rule)
		return true
	default:
		ev.Warnf("set: lhs must be a symbol or list, got %s", lhs)
		return false
	}
}

// setImpl is HoldFirst/SequenceHold: args[0] arrives unevaluated,
// args[1] already evaluated. Returns the assigned value.
func setImpl(ev *evaluator.Evaluator, args []core.Expr) core.Expr {
	if len(args) != 2 {
		ev.Warnf("set: takes 2 arguments")
		return core.SymFailed
	}
	assign(ev, args[0], args[1])
	return args[1]
}

// setdImpl is the delayed form: returns Null rather than the assigned
// value.
func setdImpl(ev *evaluator.Evaluator, args []core.Expr) core.Expr {
	if len(args) != 2 {
		ev.Warnf("setd: takes 2 arguments")
		return core.SymFailed
	}
	assign(ev, args[0], args[1])
	return core.SymNull
}

func clearImpl(ev *evaluator.Evaluator, args []core.Expr) core.Expr {
	if len(args) != 1 {
		ev.Warnf("clear: takes a symbol")
		return core.SymFailed
	}
	sym, ok := args[0].(core.Sym)
	if !ok {
		ev.Warnf("clear: takes a symbol")
		return core.SymFailed
	}
	ev.Env.Clear(sym)
	return core.SymNull
}

func ownValuesImpl(ev *evaluator.Evaluator, args []core.Expr) core.Expr {
	if len(args) != 1 {
		return core.SymFailed
	}
	sym, ok := args[0].(core.Sym)
	if !ok {
		return core.SymFailed
	}
	val, ok := ev.Env.OwnValue(sym)
	if !ok {
		return core.EmptyList()
	}
	return val
}

func downValuesImpl(ev *evaluator.Evaluator, args []core.Expr) core.Expr {
	if len(args) != 1 {
		return core.SymFailed
	}
	sym, ok := args[0].(core.Sym)
	if !ok {
		return core.SymFailed
	}
	te, ok := ev.Env.Lookup(sym)
	if !ok {
		return core.EmptyList()
	}
	return te.Down
}

// subValuesImpl is left a stub: assigning to a list-headed LHS
// (subvalues, e.g. defining (Part l 1)) is unimplemented in the
// reference kernel this spec was distilled from.
func subValuesImpl(ev *evaluator.Evaluator, args []core.Expr) core.Expr {
	ev.Warnf("sub_values: unimplemented")
	return core.SymFailed
}
