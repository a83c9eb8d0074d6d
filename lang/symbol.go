package lang

import "fmt"

// Symbol represents the set of all tokens with the same kind and spelling.
// There is exactly one '\' symbol in a program, though there may be many
// '\' tokens. Symbols are interned by a [Table]: two symbols are the same
// name if and only if they are the same pointer.
type Symbol struct {
	Spelling string
	Kind     Kind
}

// String returns the symbol's spelling.
func (s *Symbol) String() string { return s.Spelling }

// Table interns symbols for the lifetime of the process (or whatever
// scope owns the table). It supports registration and lookup but never
// deletion: each key is written at most once.
//
// Table is an explicit value passed to the lexer, not package state.
// It is not safe for concurrent mutation; wrap it externally if a
// multithreaded lexer is ever needed.
type Table struct {
	kinds     map[Kind]*Symbol
	spellings map[string]*Symbol
}

// NewTable returns a table with the language's fixed punctuation and
// pseudo symbols pre-registered, so identifiers are the only symbols
// interned during lexing.
func NewTable() *Table {
	t := &Table{
		kinds:     make(map[Kind]*Symbol),
		spellings: make(map[string]*Symbol),
	}

	// Pseudo symbols
	t.Put(KindEOF, "<eof>")
	t.Put(KindError, "<error>")

	// Punctuation
	t.Put(KindLParen, "(")
	t.Put(KindRParen, ")")
	t.Put(KindBackslash, `\`)
	t.Put(KindDot, ".")
	t.Put(KindSemicolon, ";")
	t.Put(KindEqual, "=")

	return t
}

// Kind returns the unique symbol registered for a non-identifier kind,
// or nil if none is registered.
func (t *Table) Kind(kind Kind) *Symbol {
	return t.kinds[kind]
}

// Spelling returns the symbol registered under the given spelling, or
// nil if none is registered.
func (t *Table) Spelling(s string) *Symbol {
	return t.spellings[s]
}

// Put registers a symbol and returns its unique handle.
//
// For KindIdent, Put is idempotent: re-registering a spelling returns
// the existing handle. For every other kind, registering a kind or a
// spelling twice is a programming error and panics.
func (t *Table) Put(kind Kind, spelling string) *Symbol {
	if kind == KindIdent {
		if sym, ok := t.spellings[spelling]; ok {
			return sym
		}

		sym := &Symbol{Kind: kind, Spelling: spelling}
		t.spellings[spelling] = sym

		return sym
	}

	if _, ok := t.kinds[kind]; ok {
		panic(fmt.Sprintf("lang: symbol kind %v registered twice", kind))
	}

	if _, ok := t.spellings[spelling]; ok {
		panic(fmt.Sprintf("lang: symbol spelling %q registered twice", spelling))
	}

	sym := &Symbol{Kind: kind, Spelling: spelling}
	t.kinds[kind] = sym
	t.spellings[spelling] = sym

	return sym
}
