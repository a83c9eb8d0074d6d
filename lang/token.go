package lang

//go:generate go tool stringer --linecomment --type Kind --output kind_string.go

// Kind classifies the symbols of the language. A kind corresponds to one
// spelling (punctuation and pseudo symbols) or to many (identifiers).
type Kind int

const (
	// KindEOF marks the end of input.
	KindEOF Kind = iota // eof

	// KindError marks an unrecognized character. The lexer emits error
	// tokens instead of halting; the parser reacts to them.
	KindError // error

	KindLParen    // (
	KindRParen    // )
	KindBackslash // \
	KindDot       // .
	KindSemicolon // ;
	KindEqual     // =

	// KindIdent is the class of identifiers: [A-Za-z_][A-Za-z0-9_]*.
	KindIdent // identifier
)

// Position locates a token in the source text.
// Line and Column are 1-based; Offset is a 0-based byte offset.
type Position struct {
	Offset int
	Line   int
	Column int
}

// Token pairs a source position with an interned symbol. Tokens are
// transient: the parser holds at most one as lookahead.
type Token struct {
	Sym *Symbol
	Pos Position
}

// Is reports whether the token's symbol has the given kind.
func (t Token) Is(kind Kind) bool {
	return t.Sym != nil && t.Sym.Kind == kind
}

// Spelling returns the spelling of the token's symbol, or "" for the
// zero token.
func (t Token) Spelling() string {
	if t.Sym == nil {
		return ""
	}

	return t.Sym.Spelling
}

// String returns the token's spelling, or the kind name for pseudo
// symbols without a meaningful spelling.
func (t Token) String() string {
	if t.Sym == nil {
		return "<nil>"
	}

	if t.Sym.Kind == KindEOF || t.Sym.Kind == KindError {
		return "<" + t.Sym.Kind.String() + ">"
	}

	return t.Sym.Spelling
}
