package lang

import "iter"

// Node is the common interface of all AST nodes. The node set is closed:
// only the five concrete types in this package implement it, so switches
// over nodes can be exhaustive.
type Node interface {
	node()
}

// Term is a lambda calculus term: a variable, an abstraction, or an
// application. Terms are immutable after construction; reduction builds
// new terms instead of editing existing ones.
type Term interface {
	Node
	term()
}

// Statement is a top-level program element: a definition or an
// evaluation request.
type Statement interface {
	Node
	stmt()
}

// Variable is a leaf term referring to a name. Name identity is symbol
// handle identity, not node identity: the binder of an abstraction and
// each reference to the bound name are distinct Variable nodes sharing
// one *Symbol.
type Variable struct {
	Sym *Symbol
}

// Abstraction is a term parameterized by a variable, written "\x.t".
type Abstraction struct {
	Param *Variable
	Body  Term
}

// Application of one term to another, written "t u".
type Application struct {
	Fn  Term
	Arg Term
}

// Definition binds a name to a term at program scope: "x = t;".
type Definition struct {
	Var   *Variable
	Value Term
}

// Evaluation requests reduction and display of a term: "t;".
type Evaluation struct {
	Term Term
	Pos  Position
}

func (*Variable) node()    {}
func (*Abstraction) node() {}
func (*Application) node() {}
func (*Definition) node()  {}
func (*Evaluation) node()  {}

func (*Variable) term()    {}
func (*Abstraction) term() {}
func (*Application) term() {}

func (*Definition) stmt() {}
func (*Evaluation) stmt() {}

// Program is an ordered sequence of statements in source order. Order is
// irrelevant to reduction but preserved for output.
type Program struct {
	Statements []Statement
}

// All returns an iterator over the program's statements in source order.
func (p *Program) All() iter.Seq[Statement] {
	return func(yield func(Statement) bool) {
		for _, s := range p.Statements {
			if !yield(s) {
				return
			}
		}
	}
}

// Evaluations returns an iterator over the program's evaluation
// statements in source order.
func (p *Program) Evaluations() iter.Seq[*Evaluation] {
	return func(yield func(*Evaluation) bool) {
		for _, s := range p.Statements {
			if eval, ok := s.(*Evaluation); ok {
				if !yield(eval) {
					return
				}
			}
		}
	}
}
