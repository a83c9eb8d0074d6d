package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestPackageLevelFunctions(t *testing.T) {
	original := defaultLog
	defer func() { defaultLog = original }()

	var buf bytes.Buffer
	defaultLog = Make(&buf,
		WithLevel(LevelTrace), WithFormat(FormatJSON), WithPretty(false))

	tests := []struct {
		name  string
		fn    func(string, ...slog.Attr)
		level string
		msg   string
	}{
		{"Trace", Trace, "TRACE", "stepping term"},
		{"Debug", Debug, "DEBUG", "entering parse"},
		{"Info", Info, "INFO", "statement reduced"},
		{"Warn", Warn, "WARN", "step limit reached"},
		{"Error", Error, "ERROR", "parse failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn(tt.msg, slog.String("strategy", "normal"))

			output := buf.String()
			if !strings.Contains(output, tt.msg) {
				t.Errorf(
					"expected output to contain message %q, got: %s",
					tt.msg,
					output,
				)
			}
			if !strings.Contains(output, tt.level) {
				t.Errorf(
					"expected output to contain level %q, got: %s",
					tt.level,
					output,
				)
			}
			if !strings.Contains(output, `"strategy":"normal"`) {
				t.Errorf("expected output to contain attribute, got: %s", output)
			}
		})
	}
}
