package cli

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/ulc/log"
)

// logFormat reconfigures the default logger as a side effect of flag
// parsing, so that messages emitted while kong is still parsing already
// use the requested format.
type logFormat string

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel reconfigures the default logger's level the same way.
type logLevel string

// UnmarshalText implements [encoding.TextUnmarshaler].
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"info"    enum:"trace,debug,info,warn,error" help:"Set log level."`
	Format     logFormat `default:"json"    enum:"json,text"             help:"Set log format."`
	TimeLayout string    `default:"RFC3339"                              help:"Set timestamp format."`
	Caller     bool      `default:"false"                                help:"Include caller information."       negatable:""`
	Pretty     bool      `default:"true"                                 help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

func (f *logConfig) start(ctx context.Context) {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)
}

// scan applies logger flags ahead of kong's parse so that any error
// kong reports is already rendered with the requested level and format.
// logLevel and logFormat configure the logger through TextUnmarshaler
// once kong reaches them, but boolean flags never pass through that
// interface, so every logger flag is handled here regardless of its
// position in args.
func (f *logConfig) scan(args []string) {
	for i := 0; i < len(args); i++ {
		name := args[i]

		value, assigned := "", false
		if j := strings.IndexByte(name, '='); j >= 0 {
			name, value, assigned = name[:j], name[j+1:], true
		}

		// Non-boolean flags consume the following argument when the
		// value is not attached with '='.
		takeValue := func() string {
			if !assigned && i+1 < len(args) && len(args[i+1]) > 0 &&
				args[i+1][0] != '-' {
				i++

				return args[i]
			}

			return value
		}

		// Boolean flags take a value only when attached with '='; a
		// bare flag means true.
		setBool := func(set func(bool)) {
			v := true

			if assigned {
				parsed, err := strconv.ParseBool(value)
				if err != nil {
					return
				}

				v = parsed
			}

			set(v)
		}

		switch name {
		case "--log-level":
			_ = f.Level.UnmarshalText([]byte(takeValue()))

		case "--log-format":
			_ = f.Format.UnmarshalText([]byte(takeValue()))

		case "--log-pretty":
			setBool(func(v bool) {
				f.Pretty = v
				log.Config(log.WithPretty(v))
			})

		case "--no-log-pretty":
			setBool(func(v bool) {
				f.Pretty = !v
				log.Config(log.WithPretty(!v))
			})

		case "--log-caller":
			setBool(func(v bool) {
				f.Caller = v
				log.Config(log.WithCaller(v))
			})

		case "--no-log-caller":
			setBool(func(v bool) {
				f.Caller = !v
				log.Config(log.WithCaller(!v))
			})
		}
	}
}
