// Package lang implements the untyped lambda calculus extended with
// top-level named definitions.
//
// Source text is lexed into interned symbols, parsed by a hand-written
// recursive descent parser into an abstract syntax tree owned by a
// [Context], and reduced under one of three operational semantics.
//
// # Grammar
//
// Informal EBNF:
//
//	program     → statement* EOF
//	statement   → identifier '=' expression ';'   (definition)
//	            | expression ';'                  (evaluation)
//	expression  → abstraction | application
//	abstraction → '\' variable '.' expression
//	application → primary+                        (left-associative)
//	primary     → '(' expression ')' | variable
//	variable    → identifier
//
// A statement beginning with an identifier requires one extra token of
// lookahead: the identifier opens a definition only when followed by '='.
//
// # Example
//
//	id = \x.x;
//	id y;
//
// # Reduction
//
// Three strategies are provided, each a composition of one-step rules
// driven to a fixed point by [Reduce]:
//
//   - [CallByValue]: reduce the function, then the argument, then beta.
//   - [CallByName]: reduce the function only, then beta; arguments are
//     substituted unevaluated.
//   - [NormalOrder]: leftmost-outermost first, including under binders.
//
// A term with unresolved free variables is a valid normal form, not an
// error. Reduction of a divergent term does not terminate: [Reduce]
// imposes no step budget. Callers that must bound work (the REPL, tests)
// use [ReduceN].
//
// # Substitution
//
// [Substitute] replaces free occurrences of a name by a term, respecting
// binder shadowing. It performs no alpha-renaming: substituting a term
// whose free variables collide with an enclosing binder captures them.
// See the function documentation for details.
package lang
