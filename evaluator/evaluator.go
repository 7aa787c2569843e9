// Package evaluator implements the fixed-point evaluation loop: attribute
// probing, hold-mask-driven selective argument evaluation, Sequence
// splicing, user-downvalue application via rewriter.ReplaceAll with
// restart-on-change, and finally builtin dispatch.
//
// Grounded on the `evaluate` / `internal_functions_apply` dispatch loop
// in the original cas3-core kernel this spec was distilled from.
package evaluator

import (
	"fmt"
	"io"
	"os"

	"github.com/client9/termrw/core"
	"github.com/client9/termrw/environment"
	"github.com/client9/termrw/matcher"
	"github.com/client9/termrw/rewriter"
)

// Builtin implements one internal down/subvalue function. args have
// already been evaluated and Sequence-spliced per the head's
// attributes by the time a builtin sees them.
type Builtin func(ev *Evaluator, args []core.Expr) core.Expr

// Evaluator ties an Environment to a builtin dispatch table.
type Evaluator struct {
	Env      *environment.Environment
	Builtins map[core.Sym]Builtin
	// Diag receives human-readable diagnostics for recoverable
	// failures (spec.md §7): malformed calls to builtins such as set,
	// Get or Export, and replace_repeated hitting its iteration cap.
	// Out-of-range Part indices are not reported here; Part leaves the
	// call unevaluated. It defaults to os.Stderr.
	Diag io.Writer
}

func New(env *environment.Environment) *Evaluator {
	return &Evaluator{Env: env, Builtins: map[core.Sym]Builtin{}, Diag: os.Stderr}
}

// Warnf reports a diagnostic without changing the expression under
// evaluation; callers (chiefly builtins) surface $Failed separately
// when the kernel's reference behavior calls for it.
func (ev *Evaluator) Warnf(format string, args ...interface{}) {
	if ev.Diag == nil {
		return
	}
	fmt.Fprintf(ev.Diag, format+"\n", args...)
}

// RegisterBuiltin installs fn as the internal down/subvalue handler for
// the symbol name.
func (ev *Evaluator) RegisterBuiltin(name core.Sym, fn Builtin) {
	ev.Builtins[name] = fn
}

// Eval reduces expr to a fixed point: an atom with no ownvalue, or a
// list no longer changed by downvalue rewriting or builtin dispatch.
func (ev *Evaluator) Eval(expr core.Expr) core.Expr {
	ex := expr
	var lastEx core.Expr

loop:
	for {
		if lastEx != nil && ex.Equal(lastEx) {
			break loop
		}
		lastEx = ex

		switch v := ex.(type) {
		case core.Int, core.Real, core.Str:
			break loop
		case core.Sym:
			val, ok := ev.Env.OwnValue(v)
			if !ok {
				break loop
			}
			ex = val
		case core.List:
			ex = ev.evalList(v)
		default:
			break loop
		}
	}
	return ex
}

// evalList runs one pass of steps 3-8 of the evaluator: evaluate the
// head, probe its attributes, selectively evaluate/splice the
// arguments, apply user downvalues, and if nothing changed dispatch to
// the builtin table.
func (ev *Evaluator) evalList(list core.List) core.Expr {
	args := list.Tail()
	nh := ev.Eval(list.Get(0))

	attrs := ev.attributesOf(nh)
	holdAll := core.ListContains(attrs, core.AttrHoldAll) || core.ListContains(attrs, core.AttrHoldAllComplete)
	holdFirst := core.ListContains(attrs, core.AttrHoldFirst)
	holdRest := core.ListContains(attrs, core.AttrHoldRest)
	seqHold := core.ListContains(attrs, core.AttrSequenceHold) || core.ListContains(attrs, core.AttrHoldAllComplete)

	evaluatedArgs := make([]core.Expr, len(args))
	for i, a := range args {
		hold := holdAll || (i == 0 && holdFirst) || (i > 0 && holdRest)
		if hold {
			evaluatedArgs[i] = a
		} else {
			evaluatedArgs[i] = ev.Eval(a)
		}
	}

	if !seqHold {
		evaluatedArgs = spliceSequenceArgs(evaluatedArgs)
	}

	reconstructed := core.NewListFromSlice(append([]core.Expr{nh}, evaluatedArgs...))

	var exprime core.Expr = reconstructed
	if nhSym, ok := nh.(core.Sym); ok {
		te := ev.Env.Entry(nhSym)
		exprime = rewriter.ReplaceAll(reconstructed, te.Down)
	}

	if !exprime.Equal(reconstructed) {
		return exprime
	}

	finalList, ok := exprime.(core.List)
	if !ok {
		return exprime
	}
	return ev.applyBuiltin(finalList)
}

// attributesOf probes the attrs downvalues for a (attrs SYM) match,
// the same mechanism used for any other rule lookup so no separate
// attribute-declaration syntax is needed.
func (ev *Evaluator) attributesOf(nh core.Expr) core.List {
	nhSym, ok := nh.(core.Sym)
	if !ok {
		return core.EmptyList()
	}
	te := ev.Env.Entry(core.SymAttrs)
	probe := core.NewList(core.SymAttrs, nhSym)
	for _, dv := range te.Down.Tail() {
		dvList, ok := dv.(core.List)
		if !ok || dvList.Length() != 2 {
			continue
		}
		if ok, _ := matcher.Match(probe, dvList.Tail()[0]); ok {
			if result, ok := rewriter.Replace(probe, dv).(core.List); ok {
				return result
			}
			return core.EmptyList()
		}
	}
	return core.EmptyList()
}

func spliceSequenceArgs(args []core.Expr) []core.Expr {
	out := make([]core.Expr, 0, len(args))
	for _, a := range args {
		if hs, ok := core.HeadSymName(a); ok && hs == core.SymSeq {
			if seqList, ok := a.(core.List); ok {
				out = append(out, seqList.Tail()...)
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

// applyBuiltin dispatches a fully reduced (nh arg…) list to the
// registered builtin for nh, or leaves it as an ordinary symbolic
// expression if nh is list-headed (the subvalue case, unimplemented
// beyond pass-through) or has no registered handler.
func (ev *Evaluator) applyBuiltin(list core.List) core.Expr {
	nhSym, ok := list.Get(0).(core.Sym)
	if !ok {
		return list
	}
	fn, ok := ev.Builtins[nhSym]
	if !ok {
		return list
	}
	return fn(ev, list.Tail())
}
