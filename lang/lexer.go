package lang

// Lexer recognizes the terminals of the language: punctuation,
// identifiers, and the pseudo symbols for end-of-input and errors.
//
// The lexer never backtracks and never halts on bad input: an
// unrecognized character becomes an error token and lexing continues
// with the next character.
type Lexer struct {
	table *Table
	src   []byte
	pos   int
	loc   Position
}

// NewLexer returns a lexer over src that interns identifier spellings
// through table.
func NewLexer(table *Table, src []byte) *Lexer {
	return &Lexer{
		table: table,
		src:   src,
		loc:   Position{Offset: 0, Line: 1, Column: 1},
	}
}

// Next lexes the next token out of the source, returning it.
func (l *Lexer) Next() Token {
	l.skipSpace()

	if l.eof() {
		return Token{Sym: l.table.Kind(KindEOF), Pos: l.loc}
	}

	switch c := l.src[l.pos]; c {
	case '(':
		return l.punctuation(KindLParen)
	case ')':
		return l.punctuation(KindRParen)
	case '\\':
		return l.punctuation(KindBackslash)
	case '.':
		return l.punctuation(KindDot)
	case ';':
		return l.punctuation(KindSemicolon)
	case '=':
		return l.punctuation(KindEqual)
	default:
		if isLetter(c) || c == '_' {
			return l.identifier()
		}

		return l.error()
	}
}

// Location returns the current source location.
func (l *Lexer) Location() Position { return l.loc }

func (l *Lexer) eof() bool { return l.pos >= len(l.src) }

// advance consumes one byte of horizontal content.
func (l *Lexer) advance() {
	l.pos++
	l.loc.Offset = l.pos
	l.loc.Column++
}

// skipSpace consumes whitespace, maintaining line and column counts.
// A vertical break resets the column to 1 and increments the line.
func (l *Lexer) skipSpace() {
	for !l.eof() {
		switch l.src[l.pos] {
		case ' ', '\t':
			l.advance()
		case '\n', '\r', '\v':
			l.pos++
			l.loc.Offset = l.pos
			l.loc.Line++
			l.loc.Column = 1
		default:
			return
		}
	}
}

// punctuation emits the fixed symbol for a single-byte punctuator.
func (l *Lexer) punctuation(kind Kind) Token {
	tok := Token{Sym: l.table.Kind(kind), Pos: l.loc}
	l.advance()

	return tok
}

// identifier greedily consumes letters, digits, and underscores, then
// interns the spelling through the table's identifier path.
func (l *Lexer) identifier() Token {
	start := l.pos
	pos := l.loc

	for !l.eof() && isIdentByte(l.src[l.pos]) {
		l.advance()
	}

	sym := l.table.Put(KindIdent, string(l.src[start:l.pos]))

	return Token{Sym: sym, Pos: pos}
}

// error emits an error token for one unrecognized byte.
func (l *Lexer) error() Token {
	tok := Token{Sym: l.table.Kind(KindError), Pos: l.loc}
	l.advance()

	return tok
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isIdentByte(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}
