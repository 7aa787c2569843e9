// Package environment holds the per-symbol table of own/down/sub
// values that backs Set, SetDelayed, Clear, OwnValues, DownValues, and
// the evaluator's attribute probe.
//
// Grounded on TableEntry / Cas3VM / get_ownvalue / startup_attrs in the
// original cas3-core kernel this spec was distilled from.
package environment

import (
	"github.com/client9/termrw/core"
	"github.com/client9/termrw/parser"
)

// TableEntry holds one symbol's own value (at most one, unlike down
// and sub values) and its ordered down/sub rule lists.
type TableEntry struct {
	Own  core.Expr // nil if unset
	Down core.List
	Sub  core.List
}

func newTableEntry() *TableEntry {
	return &TableEntry{Down: core.EmptyList(), Sub: core.EmptyList()}
}

// Environment is the kernel's symbol table.
type Environment struct {
	vars map[core.Sym]*TableEntry
}

func New() *Environment {
	return &Environment{vars: map[core.Sym]*TableEntry{}}
}

// Entry returns the table entry for sym, creating an empty one on
// first access (mirrors the Rust kernel's `or_insert_with`).
func (e *Environment) Entry(sym core.Sym) *TableEntry {
	te, ok := e.vars[sym]
	if !ok {
		te = newTableEntry()
		e.vars[sym] = te
	}
	return te
}

// Lookup returns the table entry for sym without creating one.
func (e *Environment) Lookup(sym core.Sym) (*TableEntry, bool) {
	te, ok := e.vars[sym]
	return te, ok
}

// OwnValue returns the own value bound to sym, if any.
func (e *Environment) OwnValue(sym core.Sym) (core.Expr, bool) {
	te, ok := e.vars[sym]
	if !ok || te.Own == nil {
		return nil, false
	}
	return te.Own, true
}

// SetOwn installs sym's single own value.
func (e *Environment) SetOwn(sym core.Sym, value core.Expr) {
	e.Entry(sym).Own = value
}

// AddDownValue appends a (rule_delayed (hold_pattern lhs) rhs) rule to
// tag's downvalues. New definitions are appended in arrival order; the
// kernel does not reorder by specificity, so more specific patterns
// must be defined first by the caller.
func (e *Environment) AddDownValue(tag core.Sym, rule core.Expr) {
	te := e.Entry(tag)
	te.Down = core.NewListFromSlice(append(te.Down.Elements(), rule))
}

// AddSubValue appends a rule to tag's subvalues (reserved for
// list-headed assignment targets; spec.md leaves this a stub).
func (e *Environment) AddSubValue(tag core.Sym, rule core.Expr) {
	te := e.Entry(tag)
	te.Sub = core.NewListFromSlice(append(te.Sub.Elements(), rule))
}

// Clear resets sym's own, down, and sub values.
func (e *Environment) Clear(sym core.Sym) {
	te, ok := e.vars[sym]
	if !ok {
		return
	}
	te.Own = nil
	te.Down = core.EmptyList()
	te.Sub = core.EmptyList()
}

// mustParse parses a startup rule literal; a failure here is a defect
// in this package, not in user input.
func mustParse(src string) core.Expr {
	e, err := parser.Parse(src)
	if err != nil {
		panic("environment: invalid startup rule " + src + ": " + err.Error())
	}
	return e
}

// Bootstrap installs the kernel's built-in attribute declarations as
// downvalues of the reserved `attrs` symbol. hold_pattern and attrs
// itself must be declared HoldAll before anything else can safely
// probe attributes without infinite self-reference, so this must run
// before any other evaluation.
func Bootstrap(env *Environment) {
	rules := []string{
		`(rule_delayed (hold_pattern (attrs hold_pattern)) (List HoldAll))`,
		`(rule_delayed (hold_pattern (attrs attrs)) (List HoldAll))`,
		`(rule_delayed (hold_pattern (attrs rule_delayed)) (List HoldRest SequenceHold))`,
		`(rule_delayed (hold_pattern (attrs set)) (List HoldFirst SequenceHold))`,
		`(rule_delayed (hold_pattern (attrs down_values)) (List HoldAll))`,
	}
	te := env.Entry(core.SymAttrs)
	for _, r := range rules {
		te.Down = core.NewListFromSlice(append(te.Down.Elements(), mustParse(r)))
	}
}
