// Package log is a thin, concurrency-safe layer over [log/slog] with a
// Trace level below Debug, configurable timestamps and caller info, and
// optional colorized output.
//
// # Basic usage
//
//	logger := log.Make(os.Stdout)
//	logger.Info("session started", slog.String("version", pkg.Version))
//	logger.Error("cannot read source", slog.Any("error", err))
//
// # Configuration
//
// All configuration happens through functional options at creation:
//
//	logger := log.Make(os.Stdout,
//		log.WithLevel(log.LevelTrace),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// [Logger.Wrap] derives a reconfigured logger from an existing one, and
// [Logger.With] attaches attributes to every subsequent record:
//
//	logger = logger.With(slog.String("component", "repl"))
//
// # Context-aware logging
//
// Every level has a context-aware method ([Logger.InfoContext] and so
// on) and a plain variant that calls it with [DefaultContextProvider],
// which returns [context.TODO] unless reassigned.
//
// # Levels
//
// Five levels are defined: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. Records below the configured minimum
// are discarded. Trace renders as "trace" rather than slog's "DEBUG-4".
//
// # Timestamps
//
// [WithTimeLayout] accepts the named layouts of the [time] package
// ("RFC3339", "Kitchen", ...) case-insensitively, a custom layout
// string passed verbatim to [time.Time.Format], or "none" to omit
// timestamps entirely.
//
// # Formats
//
// Output is [FormatJSON] (default) or [FormatText], each with a
// colorized variant toggled by [WithPretty].
package log
