package log_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/ulc/log"
)

func Example_basic() {
	logger := log.Make(os.Stdout)
	logger.Info("session started", slog.String("version", "0.1.0"))
}

func Example_configuration() {
	logger := log.Make(os.Stdout,
		log.WithLevel(log.LevelTrace),
		log.WithTimeLayout("RFC3339Nano"),
		log.WithCaller(true))

	logger.Trace("stepping term", slog.Int("depth", 3))
}

func Example_levels() {
	logger := log.Make(os.Stdout, log.WithLevel(log.LevelWarn))

	logger.Debug("entering parse")
	logger.Info("statement reduced")
	logger.Warn("step limit reached", slog.Int("max_steps", 100))
	logger.Error("parse failed", slog.String("error", "unexpected token"))
}

func Example_textFormat() {
	logger := log.Make(os.Stdout, log.WithFormat(log.FormatText))
	logger.Info("statement parsed", slog.String("name", "id"))
}

func Example_withAttributes() {
	logger := log.Make(os.Stdout)
	logger = logger.With(slog.String("component", "repl"))

	logger.Info("session restored")
	logger.Debug("history loaded", slog.Int("entries", 12))
}

func Example_withContext() {
	type sessionKey struct{}

	ctx := context.WithValue(context.Background(), sessionKey{}, "repl-1")

	logger := log.Make(os.Stdout)

	logger.InfoContext(ctx, "evaluating input")
	logger.DebugContext(ctx, "reduction complete", slog.Int("steps", 4))
}
