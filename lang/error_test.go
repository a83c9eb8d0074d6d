package lang

import (
	"context"
	"strings"
	"testing"
)

func TestSourceErrorSnippet(t *testing.T) {
	tests := []struct {
		name   string
		source string
		pos    Position
		want   string
	}{
		{
			name:   "caret_under_error_column",
			source: "id = \\x. x;\ny =;",
			pos:    Position{Offset: 15, Line: 2, Column: 4},
			want: "syntax error at line 2, column 4\n" +
				"  2 | y =;\n" +
				"         ^",
		},
		{
			name:   "multi_digit_line_number_widens_padding",
			source: strings.Repeat("x;\n", 9) + "y =;",
			pos:    Position{Line: 10, Column: 3},
			want: "syntax error at line 10, column 3\n" +
				"  10 | y =;\n" +
				"         ^",
		},
		{
			name:   "first_column",
			source: ";",
			pos:    Position{Line: 1, Column: 1},
			want: "syntax error at line 1, column 1\n" +
				"  1 | ;\n" +
				"      ^",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &SourceError{
				Err:    ErrParse.WithPosition(tt.pos),
				Source: tt.source,
			}

			if got := err.Error(); got != tt.want {
				t.Errorf("SourceError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSourceErrorWithoutPosition(t *testing.T) {
	err := &SourceError{Err: ErrParse, Source: "x;"}

	if got := err.Error(); got != "syntax error" {
		t.Errorf("SourceError.Error() = %q, want plain message", got)
	}
}

func TestParseErrorIncludesSnippet(t *testing.T) {
	_, err := Parse(context.Background(), "id = \\x. x;\ny =;")
	if err == nil {
		t.Fatal("Parse() expected error for malformed definition")
	}

	msg := err.Error()

	if !strings.Contains(msg, "\n  2 | y =;\n") {
		t.Errorf("Parse() error = %q, want offending line rendered", msg)
	}

	if !strings.HasSuffix(msg, "^") {
		t.Errorf("Parse() error = %q, want caret marker on last line", msg)
	}
}
