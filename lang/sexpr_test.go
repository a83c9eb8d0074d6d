package lang

import (
	"strings"
	"testing"
)

func TestSexprForms(t *testing.T) {
	table := NewTable()
	cxt := NewContext()

	x := cxt.Variable(table.Put(KindIdent, "x"))
	y := cxt.Variable(table.Put(KindIdent, "y"))
	abs := cxt.Abstraction(x, x)
	app := cxt.Application(abs, y)

	tests := []struct {
		name string
		node Node
		want string
	}{
		{"variable", x, "x"},
		{"abstraction", abs, "(lambda x x)"},
		{"application", app, "((lambda x x) y)"},
		{"definition", cxt.Definition(x, abs), "(decl x (lambda x x))"},
		{
			"evaluation",
			cxt.Evaluation(app, Position{}),
			"(eval ((lambda x x) y))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sexpr(tt.node); got != tt.want {
				t.Errorf("Sexpr = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteSexpr(t *testing.T) {
	table := NewTable()
	cxt := NewContext()

	x := cxt.Variable(table.Put(KindIdent, "x"))
	abs := cxt.Abstraction(x, x)

	var sb strings.Builder
	if err := WriteSexpr(&sb, abs); err != nil {
		t.Fatalf("WriteSexpr: %v", err)
	}

	if want := "(lambda x x)"; sb.String() != want {
		t.Errorf("WriteSexpr wrote %q, want %q", sb.String(), want)
	}
}
