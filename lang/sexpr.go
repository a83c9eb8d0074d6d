package lang

import (
	"io"
	"strings"
)

// Sexpr renders a node as an s-expression:
//
//	x              variable
//	(lambda x t)   abstraction
//	(t1 t2)        application
//	(decl x t)     definition
//	(eval t)       evaluation
func Sexpr(node Node) string {
	var sb strings.Builder

	writeSexpr(&sb, node)

	return sb.String()
}

// WriteSexpr writes the s-expression rendering of node to w.
func WriteSexpr(w io.Writer, node Node) error {
	var sb strings.Builder

	writeSexpr(&sb, node)

	_, err := io.WriteString(w, sb.String())

	return err
}

func writeSexpr(sb *strings.Builder, node Node) {
	switch n := node.(type) {
	case *Variable:
		sb.WriteString(n.Sym.Spelling)

	case *Abstraction:
		sb.WriteString("(lambda ")
		sb.WriteString(n.Param.Sym.Spelling)
		sb.WriteByte(' ')
		writeSexpr(sb, n.Body)
		sb.WriteByte(')')

	case *Application:
		sb.WriteByte('(')
		writeSexpr(sb, n.Fn)
		sb.WriteByte(' ')
		writeSexpr(sb, n.Arg)
		sb.WriteByte(')')

	case *Definition:
		sb.WriteString("(decl ")
		sb.WriteString(n.Var.Sym.Spelling)
		sb.WriteByte(' ')
		writeSexpr(sb, n.Value)
		sb.WriteByte(')')

	case *Evaluation:
		sb.WriteString("(eval ")
		writeSexpr(sb, n.Term)
		sb.WriteByte(')')
	}
}
