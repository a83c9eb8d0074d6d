package cmd

import (
	"context"
	"io"

	"github.com/ardnew/ulc/cli/cmd/repl"
	"github.com/ardnew/ulc/log"
)

// Repl starts an interactive session for defining and reducing terms.
type Repl struct{}

// Run executes the repl command. Any source files given on the command line
// are parsed before the first prompt so their definitions are in scope.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	var reader io.Reader
	if srcs := sourceFilesFrom(ctx); srcs != nil {
		reader = srcs
	}

	var cacheDir string
	if ktx := kongContextFrom(ctx); ktx != nil {
		cacheDir = ktx.Model.Vars()[CacheIdentifier]
	}

	return repl.Run(ctx, reader, cacheDir, log.Default())
}
