package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/ulc/lang"
	"github.com/ardnew/ulc/log"
)

// Eval parses a source file and reduces each top-level term with the
// selected strategies.
type Eval struct {
	Strategy []string `default:"value,name,normal" enum:"value,name,normal" help:"Reduction strategies to apply"               short:"r"`
	MaxSteps int      `default:"0"                                          help:"Abort reduction after this many steps (0 = unlimited)"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin." name:"source"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	result, err := parseSource(ctx, e.Source)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("command", "eval"))
	}

	strategies := make([]lang.Strategy, len(e.Strategy))

	for i, name := range e.Strategy {
		strategies[i], err = lang.ParseStrategy(name)
		if err != nil {
			return err
		}
	}

	for eval := range result.Program.Evaluations() {
		fmt.Println("term:", lang.Sexpr(eval.Term))

		for _, strategy := range strategies {
			e.reduce(ctx, result.Context, eval.Term, strategy)
		}
	}

	return nil
}

// reduce reduces term with one strategy and prints the labeled result.
func (e *Eval) reduce(
	ctx context.Context,
	cxt *lang.Context,
	term lang.Term,
	strategy lang.Strategy,
) {
	if e.MaxSteps <= 0 {
		fmt.Printf("%s: %s\n",
			strategy, lang.Sexpr(lang.Reduce(cxt, term, strategy.Step())))

		return
	}

	reduced, done := lang.ReduceN(cxt, term, strategy.Step(), e.MaxSteps)
	if !done {
		log.WarnContext(ctx, "step limit reached",
			slog.String("strategy", strategy.String()),
			slog.Int("max_steps", e.MaxSteps),
		)
	}

	fmt.Printf("%s: %s\n", strategy, lang.Sexpr(reduced))
}
