package lang

import (
	"iter"
	"log/slog"
)

// Context owns every AST node of one program and the global environment
// mapping names to their definitions.
//
// Nodes are created exclusively through the constructor methods, which
// append to per-kind arenas. Nodes are never mutated after construction
// and never individually destroyed; the whole arena is released when the
// Context becomes unreachable. All children of a node must come from the
// same Context.
type Context struct {
	env map[*Symbol]*Definition

	vars  []*Variable
	abs   []*Abstraction
	apps  []*Application
	defs  []*Definition
	evals []*Evaluation
}

// NewContext returns an empty context with no definitions.
func NewContext() *Context {
	return &Context{env: make(map[*Symbol]*Definition)}
}

// Variable allocates a variable node referring to sym.
func (c *Context) Variable(sym *Symbol) *Variable {
	v := &Variable{Sym: sym}
	c.vars = append(c.vars, v)

	return v
}

// Abstraction allocates an abstraction of param over body.
func (c *Context) Abstraction(param *Variable, body Term) *Abstraction {
	a := &Abstraction{Param: param, Body: body}
	c.abs = append(c.abs, a)

	return a
}

// Application allocates an application of fn to arg.
func (c *Context) Application(fn, arg Term) *Application {
	a := &Application{Fn: fn, Arg: arg}
	c.apps = append(c.apps, a)

	return a
}

// Definition allocates a definition binding v to value. The definition
// is not yet registered in the environment; see [Context.DefineTerm].
func (c *Context) Definition(v *Variable, value Term) *Definition {
	d := &Definition{Var: v, Value: value}
	c.defs = append(c.defs, d)

	return d
}

// Evaluation allocates an evaluation statement for term.
func (c *Context) Evaluation(term Term, pos Position) *Evaluation {
	e := &Evaluation{Term: term, Pos: pos}
	c.evals = append(c.evals, e)

	return e
}

// FindTerm returns the definition registered for sym, or nil when the
// name is free.
func (c *Context) FindTerm(sym *Symbol) *Definition {
	return c.env[sym]
}

// DefineTerm registers def in the environment. The first definition of a
// name wins: redefining returns ErrDuplicateDefinition and leaves the
// environment unchanged.
func (c *Context) DefineTerm(def *Definition) error {
	sym := def.Var.Sym
	if _, ok := c.env[sym]; ok {
		return ErrDuplicateDefinition.
			With(slog.String("name", sym.Spelling))
	}

	c.env[sym] = def

	return nil
}

// Definitions returns an iterator over the registered definitions in
// the order they were defined. Allocated definitions that were rejected
// as duplicates are skipped.
func (c *Context) Definitions() iter.Seq[*Definition] {
	return func(yield func(*Definition) bool) {
		for _, d := range c.defs {
			if c.env[d.Var.Sym] != d {
				continue
			}

			if !yield(d) {
				return
			}
		}
	}
}

// NodeCount returns the total number of nodes owned by the context.
func (c *Context) NodeCount() int {
	return len(c.vars) + len(c.abs) + len(c.apps) +
		len(c.defs) + len(c.evals)
}
