package core

import "strings"

// List is an ordered, non-empty sequence of expressions. Element 0 is
// the head, elements 1..n are the arguments.
type List struct {
	elements []Expr
}

// NewList builds a List from a head and zero or more arguments.
func NewList(head Expr, args ...Expr) List {
	elements := make([]Expr, 0, len(args)+1)
	elements = append(elements, head)
	elements = append(elements, args...)
	return List{elements: elements}
}

// NewListFromSlice wraps an existing, already-populated element slice.
// It panics if the slice is empty: every List has length >= 1 (spec.md
// invariant) and an empty list is programmer error, not user input.
func NewListFromSlice(elements []Expr) List {
	if len(elements) == 0 {
		panic("core: List must have a head; got zero elements")
	}
	return List{elements: elements}
}

func (l List) Head() Expr { return l.elements[0] }

func (l List) Tail() []Expr { return l.elements[1:] }

// Elements returns the full backing slice, head included.
func (l List) Elements() []Expr { return l.elements }

func (l List) Length() int64 { return int64(len(l.elements) - 1) }

func (l List) IsAtom() bool { return false }

func (l List) Get(i int) Expr { return l.elements[i] }

func (l List) String() string {
	parts := make([]string, len(l.elements))
	for i, e := range l.elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (l List) InputForm() string { return l.String() }

func (l List) Hash() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, e := range l.elements {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.Hash())
	}
	b.WriteByte(')')
	return b.String()
}

func (l List) Equal(rhs Expr) bool {
	other, ok := rhs.(List)
	if !ok || len(l.elements) != len(other.elements) {
		return false
	}
	for i := range l.elements {
		if !l.elements[i].Equal(other.elements[i]) {
			return false
		}
	}
	return true
}

// HeadSymName returns the head's symbol name and whether the head is a Sym.
func HeadSymName(e Expr) (Sym, bool) {
	s, ok := e.Head().(Sym)
	return s, ok
}
