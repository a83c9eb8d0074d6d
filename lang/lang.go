package lang

import (
	"context"
	"log/slog"

	"github.com/ardnew/ulc/log"
)

// Result bundles everything produced by a parse: the symbol table, the
// node-owning environment, and the parsed program. The program's nodes
// remain valid as long as the context is reachable.
type Result struct {
	Table   *Table
	Context *Context
	Program *Program
}

// config holds parse configuration assembled from options.
type config struct {
	logger log.Logger
}

// Option configures a parse.
type Option func(*config)

// WithLogger sets the logger used to trace parse progress. If not
// provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func applyOptions(opts ...Option) config {
	var cfg config

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Parse parses source into a fresh symbol table and context.
func Parse(ctx context.Context, source string, opts ...Option) (*Result, error) {
	cfg := applyOptions(opts...)

	table := NewTable()
	cxt := NewContext()

	prog, err := ParseInto(ctx, cxt, table, source, opts...)
	if err != nil {
		return nil, err
	}

	cfg.logger.TraceContext(
		ctx,
		"parsed source",
		slog.Int("source_bytes", len(source)),
		slog.Int("node_count", cxt.NodeCount()),
	)

	return &Result{Table: table, Context: cxt, Program: prog}, nil
}

// ParseInto parses source using an existing symbol table and context,
// so successive inputs share interned symbols and accumulate
// definitions in one environment. The REPL parses each line this way.
func ParseInto(
	ctx context.Context,
	cxt *Context,
	table *Table,
	source string,
	opts ...Option,
) (*Program, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := applyOptions(opts...)

	p := newParser(cxt, NewLexer(table, []byte(source)), cfg.logger)

	prog, err := p.parseProgram()
	if err != nil {
		return nil, &SourceError{Err: err, Source: source}
	}

	return prog, nil
}

// ParseString parses source and returns the result. Parses with
// default options are cached by source hash; repeated parses of
// identical input return the same result.
func ParseString(ctx context.Context, source string, opts ...Option) (*Result, error) {
	if len(opts) > 0 {
		// Non-default options may carry state the cache cannot key on.
		return Parse(ctx, source, opts...)
	}

	return parseStringCached(ctx, source)
}

// ParseBytes parses source bytes. See [ParseString].
func ParseBytes(ctx context.Context, source []byte, opts ...Option) (*Result, error) {
	return ParseString(ctx, string(source), opts...)
}
