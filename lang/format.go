package lang

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format writes the program in native lambda calculus syntax, one
// statement per line, using the minimum parentheses required to
// preserve structure.
func (p *Program) Format(_ context.Context, w io.Writer) error {
	for _, stmt := range p.Statements {
		var sb strings.Builder

		switch s := stmt.(type) {
		case *Definition:
			sb.WriteString(s.Var.Sym.Spelling)
			sb.WriteString(" = ")
			writeNative(&sb, s.Value, false)

		case *Evaluation:
			writeNative(&sb, s.Term, false)
		}

		sb.WriteByte(';')

		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
	}

	return nil
}

// FormatJSON writes the program as JSON to the writer.
func (p *Program) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	var (
		jsonData []byte
		err      error
	)

	if indent > 0 {
		jsonData, err = json.MarshalIndent(p.toValue(), "", strings.Repeat(" ", indent))
	} else {
		jsonData, err = json.Marshal(p.toValue())
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(jsonData))

	return err
}

// FormatYAML writes the program as YAML to the writer.
func (p *Program) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	yamlData, err := yaml.MarshalContext(ctx, p.toValue(), opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(yamlData))

	return err
}

// Print writes the program as s-expressions, one statement per line.
func (p *Program) Print(w io.Writer) {
	for _, stmt := range p.Statements {
		fmt.Fprintln(w, Sexpr(stmt))
	}
}

// writeNative renders a term in concrete syntax. An abstraction body
// extends as far right as possible, so abstractions are parenthesized
// in any application position. arg marks argument position, where
// applications also need parentheses to preserve left associativity.
func writeNative(sb *strings.Builder, term Term, arg bool) {
	switch t := term.(type) {
	case *Variable:
		sb.WriteString(t.Sym.Spelling)

	case *Abstraction:
		sb.WriteByte('\\')
		sb.WriteString(t.Param.Sym.Spelling)
		sb.WriteString(". ")
		writeNative(sb, t.Body, false)

	case *Application:
		if arg {
			sb.WriteByte('(')
		}

		writeNativeOperand(sb, t.Fn, false)
		sb.WriteByte(' ')
		writeNativeOperand(sb, t.Arg, true)

		if arg {
			sb.WriteByte(')')
		}
	}
}

func writeNativeOperand(sb *strings.Builder, term Term, arg bool) {
	if _, ok := term.(*Abstraction); ok {
		sb.WriteByte('(')
		writeNative(sb, term, false)
		sb.WriteByte(')')

		return
	}

	writeNative(sb, term, arg)
}

// toValue builds a plain value tree suitable for JSON and YAML
// encoders.
func (p *Program) toValue() any {
	stmts := make([]any, 0, len(p.Statements))
	for _, stmt := range p.Statements {
		stmts = append(stmts, nodeValue(stmt))
	}

	return map[string]any{"statements": stmts}
}

func nodeValue(node Node) any {
	switch n := node.(type) {
	case *Variable:
		return map[string]any{"var": n.Sym.Spelling}

	case *Abstraction:
		return map[string]any{"lambda": map[string]any{
			"param": n.Param.Sym.Spelling,
			"body":  nodeValue(n.Body),
		}}

	case *Application:
		return map[string]any{"apply": map[string]any{
			"fn":  nodeValue(n.Fn),
			"arg": nodeValue(n.Arg),
		}}

	case *Definition:
		return map[string]any{"decl": map[string]any{
			"name": n.Var.Sym.Spelling,
			"term": nodeValue(n.Value),
		}}

	case *Evaluation:
		return map[string]any{"eval": nodeValue(n.Term)}

	default:
		return nil
	}
}
