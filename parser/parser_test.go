package parser

import (
	"testing"

	"github.com/client9/termrw/core"
)

func TestParseAtoms(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"integer", "42", "42"},
		{"negative integer", "-7", "-7"},
		{"real", "3.14", "3.14"},
		{"symbol", "fib", "fib"},
		{"symbol with dash", "my-sym_1", "my-sym_1"},
		{"string", `"hello world"`, `"hello world"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Parse(tt.src)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.src, err)
			}
			if got := e.String(); got != tt.want {
				t.Errorf("Parse(%q).String() = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestParseList(t *testing.T) {
	e, err := Parse("(Plus 1 2)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list, ok := e.(core.List)
	if !ok {
		t.Fatalf("expected a List, got %T", e)
	}
	if list.Length() != 2 {
		t.Fatalf("expected length 2, got %d", list.Length())
	}
	if list.String() != "(Plus 1 2)" {
		t.Errorf("String() = %q", list.String())
	}
}

func TestParseNestedComment(t *testing.T) {
	e, err := Parse("(* outer (* inner *) still outer *) (f x)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.String() != "(f x)" {
		t.Errorf("String() = %q", e.String())
	}
}

func TestParseEmptyListIsError(t *testing.T) {
	if _, err := Parse("()"); err == nil {
		t.Fatal("expected an error for an empty list")
	}
}

func TestParseUnterminatedList(t *testing.T) {
	_, err := Parse("(f x")
	if err == nil {
		t.Fatal("expected an error for an unterminated list")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Message != "unterminated list" {
		t.Errorf("Message = %q", pe.Message)
	}
}

func TestParseAll(t *testing.T) {
	exprs, err := ParseAll("1 2 (f 3)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(exprs) != 3 {
		t.Fatalf("expected 3 expressions, got %d", len(exprs))
	}
}
