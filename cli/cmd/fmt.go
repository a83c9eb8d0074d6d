package cmd

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/ulc/lang"
)

// Fmt reads input, parses it, and formats it in the chosen format.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Format as native lambda syntax (default)."`
	JSON   JSON   `cmd:""                    help:"Format as JSON."`
	YAML   YAML   `cmd:""                    help:"Format as YAML."`
	Sexpr  Sexpr  `cmd:""                    help:"Format as s-expressions."`
}

// Native formats input as native lambda syntax.
type Native struct {
	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin." name:"source"`
}

// Run executes the fmt command.
func (f *Native) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	result, err := parseSource(ctx, f.Source)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("format", "native"))
	}

	return result.Program.Format(ctx, os.Stdout)
}

// JSON reads input, parses it, and outputs as JSON.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin." name:"source"`
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	result, err := parseSource(ctx, j.Source)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("format", "json"))
	}

	return result.Program.FormatJSON(ctx, os.Stdout, j.Indent)
}

// YAML reads input, parses it, and outputs as YAML.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin." name:"source"`
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	result, err := parseSource(ctx, y.Source)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("format", "yaml"))
	}

	return result.Program.FormatYAML(ctx, os.Stdout, y.Indent)
}

// Sexpr formats input as s-expressions, one statement per line.
type Sexpr struct {
	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin." name:"source"`
}

// Run executes the sexpr command.
func (s *Sexpr) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	result, err := parseSource(ctx, s.Source)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("format", "sexpr"))
	}

	result.Program.Print(os.Stdout)

	return nil
}

// parseSource parses the named file. When source is "-", it reads any
// --source files carried in the context followed by stdin.
func parseSource(ctx context.Context, source string) (*lang.Result, error) {
	if source == stdinSource {
		if srcs := sourceFilesFrom(ctx); srcs != nil {
			return lang.ParseReader(ctx, srcs)
		}

		return lang.ParseReader(ctx, bufio.NewReader(os.Stdin))
	}

	file, err := os.Open(source)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return lang.ParseReader(ctx, bufio.NewReader(file))
}
