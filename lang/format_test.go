package lang

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
)

func parseProgram(t *testing.T, source string) *Program {
	t.Helper()

	result, err := Parse(t.Context(), source)
	if err != nil {
		t.Fatalf("Parse(%q): %v", source, err)
	}

	return result.Program
}

func TestFormatNative(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "definition",
			source: `id = \x. x;`,
			want:   "id = \\x. x;\n",
		},
		{
			name:   "application",
			source: `id y;`,
			want:   "id y;\n",
		},
		{
			name:   "abstraction_in_function_position",
			source: `(\x. x) y;`,
			want:   "(\\x. x) y;\n",
		},
		{
			name:   "abstraction_in_argument_position",
			source: `f (\x. x);`,
			want:   "f (\\x. x);\n",
		},
		{
			name:   "left_associative_chain_unparenthesized",
			source: `a b c;`,
			want:   "a b c;\n",
		},
		{
			name:   "right_nested_application_parenthesized",
			source: `a (b c);`,
			want:   "a (b c);\n",
		},
		{
			name:   "abstraction_body_unparenthesized",
			source: `\x. x y;`,
			want:   "\\x. x y;\n",
		},
		{
			name:   "multiple_statements",
			source: `id = \x. x; id y;`,
			want:   "id = \\x. x;\nid y;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := parseProgram(t, tt.source)

			var buf bytes.Buffer
			if err := prog.Format(t.Context(), &buf); err != nil {
				t.Fatalf("Format: %v", err)
			}

			if got := buf.String(); got != tt.want {
				t.Errorf("Format = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatNativeRoundTrip(t *testing.T) {
	source := `id = \x. x; k = \x. \y. x; k (id a) ((\z. z) b);`

	prog := parseProgram(t, source)

	var buf bytes.Buffer
	if err := prog.Format(t.Context(), &buf); err != nil {
		t.Fatalf("Format: %v", err)
	}

	reparsed := parseProgram(t, buf.String())

	// Formatting and reparsing must preserve structure exactly.
	if len(reparsed.Statements) != len(prog.Statements) {
		t.Fatalf("round trip changed statement count: %d != %d",
			len(reparsed.Statements), len(prog.Statements))
	}

	for i := range prog.Statements {
		want := Sexpr(prog.Statements[i])
		got := Sexpr(reparsed.Statements[i])

		if got != want {
			t.Errorf("statement %d round-tripped to %q, want %q", i, got, want)
		}
	}
}

func TestFormatJSON(t *testing.T) {
	prog := parseProgram(t, `id = \x. x; id y;`)

	var buf bytes.Buffer
	if err := prog.FormatJSON(t.Context(), &buf, 2); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}

	var doc struct {
		Statements []map[string]any `json:"statements"`
	}

	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}

	if len(doc.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(doc.Statements))
	}

	decl, ok := doc.Statements[0]["decl"].(map[string]any)
	if !ok {
		t.Fatalf("statement 0 is not a decl: %v", doc.Statements[0])
	}

	if decl["name"] != "id" {
		t.Errorf("decl name = %v, want %q", decl["name"], "id")
	}

	if _, ok := doc.Statements[1]["eval"]; !ok {
		t.Errorf("statement 1 is not an eval: %v", doc.Statements[1])
	}
}

func TestFormatJSONCompact(t *testing.T) {
	prog := parseProgram(t, `x;`)

	var buf bytes.Buffer
	if err := prog.FormatJSON(t.Context(), &buf, 0); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}

	if got := strings.TrimSpace(buf.String()); strings.Contains(got, "\n") {
		t.Errorf("compact JSON should be one line, got %q", got)
	}
}

func TestFormatYAML(t *testing.T) {
	prog := parseProgram(t, `id = \x. x;`)

	var buf bytes.Buffer
	if err := prog.FormatYAML(t.Context(), &buf, 2); err != nil {
		t.Fatalf("FormatYAML: %v", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}

	if _, ok := doc["statements"]; !ok {
		t.Errorf("YAML output missing statements key: %q", buf.String())
	}
}

func TestProgramPrint(t *testing.T) {
	prog := parseProgram(t, `id = \x. x; id y;`)

	var buf bytes.Buffer

	prog.Print(&buf)

	want := "(decl id (lambda x x))\n(eval (id y))\n"
	if got := buf.String(); got != want {
		t.Errorf("Print = %q, want %q", got, want)
	}
}
