package lang

import (
	"log/slog"

	"github.com/ardnew/ulc/log"
)

// parser holds the parser state: the token stream and a single token of
// lookahead, advanced explicitly by consume.
type parser struct {
	cxt    *Context
	lex    *Lexer
	tok    Token
	logger log.Logger
}

func newParser(cxt *Context, lex *Lexer, logger log.Logger) *parser {
	return &parser{
		cxt:    cxt,
		lex:    lex,
		tok:    lex.Next(),
		logger: logger,
	}
}

// consume returns the current token and moves to the next.
func (p *parser) consume() Token {
	tok := p.tok
	p.tok = p.lex.Next()

	return tok
}

// expect consumes and returns the current token when it has the given
// kind. Otherwise it returns a syntax error describing what was
// expected at the current position.
func (p *parser) expect(kind Kind, what string) (Token, error) {
	if p.tok.Is(kind) {
		return p.consume(), nil
	}

	return Token{}, ErrParse.
		WithPosition(p.tok.Pos).
		With(
			slog.String("expected", what),
			slog.String("found", p.tok.String()),
		)
}

// parseProgram parses statements until end of input. The first error
// aborts the whole parse; there is no recovery.
//
//	program := statement*
func (p *parser) parseProgram() (*Program, error) {
	prog := &Program{}

	for !p.tok.Is(KindEOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		prog.Statements = append(prog.Statements, stmt)
	}

	p.logger.Trace(
		"parse complete",
		slog.Int("statement_count", len(prog.Statements)),
		slog.Int("node_count", p.cxt.NodeCount()),
	)

	return prog, nil
}

// parseStatement disambiguates definitions from evaluations.
//
//	statement := IDENT '=' expression ';'
//	           | expression ';'
//
// A statement beginning with an identifier needs one extra token of
// lookahead: '=' after the identifier opens a definition; anything else
// makes the identifier the first primary of an evaluated expression.
func (p *parser) parseStatement() (Statement, error) {
	if p.tok.Is(KindIdent) {
		ident := p.consume()
		if p.tok.Is(KindEqual) {
			return p.parseDefinition(ident)
		}

		return p.parseEvaluation(&ident)
	}

	return p.parseEvaluation(nil)
}

// parseDefinition parses the remainder of a definition statement whose
// leading identifier has already been consumed. The definition is
// registered in the context's environment: redefining a name fails at
// the second '='.
func (p *parser) parseDefinition(ident Token) (Statement, error) {
	eq, err := p.expect(KindEqual, "'=' after identifier")
	if err != nil {
		return nil, err
	}

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(KindSemicolon, "';' after definition"); err != nil {
		return nil, err
	}

	def := p.cxt.Definition(p.cxt.Variable(ident.Sym), value)

	if err := p.cxt.DefineTerm(def); err != nil {
		return nil, WrapError(err).WithPosition(eq.Pos)
	}

	p.logger.Trace(
		"definition parsed",
		slog.String("name", ident.Spelling()),
	)

	return def, nil
}

// parseEvaluation parses an evaluation statement. When statement
// disambiguation has already consumed a leading identifier, lead is
// that token and becomes the first primary of the application chain.
func (p *parser) parseEvaluation(lead *Token) (Statement, error) {
	var (
		pos  Position
		term Term
		err  error
	)

	if lead != nil {
		pos = lead.Pos
		term, err = p.parseApplication(p.cxt.Variable(lead.Sym))
	} else {
		pos = p.tok.Pos
		term, err = p.parseExpression()
	}

	if err != nil {
		return nil, err
	}

	if _, err := p.expect(KindSemicolon, "';' after expression"); err != nil {
		return nil, err
	}

	return p.cxt.Evaluation(term, pos), nil
}

// parseExpression parses a term.
//
//	expression := abstraction | application
func (p *parser) parseExpression() (Term, error) {
	if p.tok.Is(KindBackslash) {
		return p.parseAbstraction()
	}

	return p.parseApplication(nil)
}

// parseAbstraction parses a lambda abstraction.
//
//	abstraction := '\' variable '.' expression
func (p *parser) parseAbstraction() (Term, error) {
	if _, err := p.expect(KindBackslash, `'\' opening abstraction`); err != nil {
		return nil, err
	}

	param, err := p.parseVariable()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(KindDot, "'.' after variable in abstraction"); err != nil {
		return nil, err
	}

	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return p.cxt.Abstraction(param, body), nil
}

// parseApplication parses a left-associative chain of primaries. A
// pre-parsed left operand may be supplied from statement lookahead.
//
//	application := primary primary*
func (p *parser) parseApplication(left Term) (Term, error) {
	if left == nil {
		var err error

		left, err = p.parsePrimary()
		if err != nil {
			return nil, err
		}
	}

	for p.startsPrimary() {
		arg, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		left = p.cxt.Application(left, arg)
	}

	return left, nil
}

// startsPrimary reports whether the current token can begin a primary.
func (p *parser) startsPrimary() bool {
	return p.tok.Is(KindLParen) || p.tok.Is(KindIdent)
}

// parsePrimary parses a parenthesized expression or a variable.
//
//	primary := '(' expression ')' | variable
func (p *parser) parsePrimary() (Term, error) {
	switch {
	case p.tok.Is(KindLParen):
		p.consume()

		term, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(KindRParen, "')' after expression"); err != nil {
			return nil, err
		}

		return term, nil

	case p.tok.Is(KindIdent):
		return p.parseVariable()

	default:
		return nil, ErrParse.
			WithPosition(p.tok.Pos).
			With(
				slog.String("expected", "primary expression"),
				slog.String("found", p.tok.String()),
			)
	}
}

// parseVariable allocates a variable node for the current identifier.
func (p *parser) parseVariable() (*Variable, error) {
	tok, err := p.expect(KindIdent, "identifier")
	if err != nil {
		return nil, err
	}

	return p.cxt.Variable(tok.Sym), nil
}
