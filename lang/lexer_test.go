package lang

import "testing"

// lexAll drains the lexer, returning every token up to and including EOF.
func lexAll(src string) []Token {
	lex := NewLexer(NewTable(), []byte(src))

	var toks []Token

	for {
		tok := lex.Next()
		toks = append(toks, tok)

		if tok.Is(KindEOF) {
			return toks
		}
	}
}

func TestLexerTokenKinds(t *testing.T) {
	toks := lexAll(`id = \x. x;`)

	want := []Kind{
		KindIdent,
		KindEqual,
		KindBackslash,
		KindIdent,
		KindDot,
		KindIdent,
		KindSemicolon,
		KindEOF,
	}

	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}

	for i, kind := range want {
		if !toks[i].Is(kind) {
			t.Errorf("token %d = %v, want kind %v", i, toks[i], kind)
		}
	}
}

func TestLexerInternsSpellings(t *testing.T) {
	toks := lexAll(`\x. x x`)

	// Tokens at indexes 1, 3, and 4 all spell "x" and must share one
	// symbol handle.
	x := toks[1].Sym
	for _, i := range []int{3, 4} {
		if toks[i].Sym != x {
			t.Errorf("token %d has a distinct handle for the same spelling", i)
		}
	}
}

func TestLexerIdentifierSpellings(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"foo", "foo"},
		{"_bar", "_bar"},
		{"x1", "x1"},
		{"camelCase", "camelCase"},
		{"snake_case_2", "snake_case_2"},
	}

	for _, tt := range tests {
		toks := lexAll(tt.src)
		if len(toks) != 2 || !toks[0].Is(KindIdent) {
			t.Errorf("lex %q: expected a single identifier", tt.src)

			continue
		}

		if got := toks[0].Spelling(); got != tt.want {
			t.Errorf("lex %q: spelling = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestLexerErrorRecovery(t *testing.T) {
	// An unrecognized byte becomes an error token and lexing continues.
	toks := lexAll(`a @ b`)

	want := []Kind{KindIdent, KindError, KindIdent, KindEOF}

	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}

	for i, kind := range want {
		if !toks[i].Is(kind) {
			t.Errorf("token %d = %v, want kind %v", i, toks[i], kind)
		}
	}
}

func TestLexerPositions(t *testing.T) {
	toks := lexAll("a b\n  c")

	tests := []struct {
		idx    int
		line   int
		column int
	}{
		{0, 1, 1}, // a
		{1, 1, 3}, // b
		{2, 2, 3}, // c
	}

	for _, tt := range tests {
		pos := toks[tt.idx].Pos
		if pos.Line != tt.line || pos.Column != tt.column {
			t.Errorf("token %d at line %d, column %d; want line %d, column %d",
				tt.idx, pos.Line, pos.Column, tt.line, tt.column)
		}
	}
}

func TestLexerEmptyInput(t *testing.T) {
	toks := lexAll("")

	if len(toks) != 1 || !toks[0].Is(KindEOF) {
		t.Errorf("empty input should lex to a single EOF token, got %v", toks)
	}

	toks = lexAll("  \t\n ")
	if len(toks) != 1 || !toks[0].Is(KindEOF) {
		t.Errorf("blank input should lex to a single EOF token, got %v", toks)
	}
}
