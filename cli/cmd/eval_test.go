package cmd

import (
	"bytes"
	"io"
	"os"
	"testing"
)

// writeSource writes a temp source file and returns its path.
func writeSource(t *testing.T, source string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp(t.TempDir(), "ulc-eval-*.ulc")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := tmpfile.WriteString(source); err != nil {
		t.Fatal(err)
	}

	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	return tmpfile.Name()
}

func TestEvalRun(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		strategy []string
		maxSteps int
		wantErr  bool
	}{
		{
			name:     "identity_application",
			source:   `id = \x. x; id y;`,
			strategy: []string{"value"},
		},
		{
			name:     "all_strategies",
			source:   `(\x. x) y;`,
			strategy: []string{"value", "name", "normal"},
		},
		{
			name:     "bounded_steps",
			source:   `id = \x. x; id (id (id y));`,
			strategy: []string{"normal"},
			maxSteps: 100,
		},
		{
			name:     "invalid_syntax",
			source:   `\. broken`,
			strategy: []string{"value"},
			wantErr:  true,
		},
		{
			name:     "duplicate_definition",
			source:   `x = \a. a; x = \b. b;`,
			strategy: []string{"value"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evalCmd := &Eval{
				Strategy: tt.strategy,
				MaxSteps: tt.maxSteps,
				Source:   writeSource(t, tt.source),
			}

			err := evalCmd.Run(t.Context())
			if (err != nil) != tt.wantErr {
				t.Errorf("Eval.Run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEvalRunOutput(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		strategy []string
		maxSteps int
		want     string
	}{
		{
			name:     "labeled_line_per_strategy",
			source:   `id = \x. x; id y;`,
			strategy: []string{"value", "name", "normal"},
			want:     "term: (id y)\nvalue: y\nname: y\nnormal: y\n",
		},
		{
			name:     "strategy_order_preserved",
			source:   `(\x. x) y;`,
			strategy: []string{"normal", "value"},
			want:     "term: ((lambda x x) y)\nnormal: y\nvalue: y\n",
		},
		{
			name:     "term_line_per_evaluation",
			source:   `id = \x. x; id y; id z;`,
			strategy: []string{"value"},
			want:     "term: (id y)\nvalue: y\nterm: (id z)\nvalue: z\n",
		},
		{
			name:     "bounded_reduction_still_labeled",
			source:   `id = \x. x; id (id y);`,
			strategy: []string{"name"},
			maxSteps: 100,
			want:     "term: (id (id y))\nname: y\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Capture stdout
			oldStdout := os.Stdout
			r, w, _ := os.Pipe()
			os.Stdout = w

			evalCmd := &Eval{
				Strategy: tt.strategy,
				MaxSteps: tt.maxSteps,
				Source:   writeSource(t, tt.source),
			}

			err := evalCmd.Run(t.Context())

			// Restore stdout
			w.Close()
			os.Stdout = oldStdout

			if err != nil {
				t.Fatalf("Eval.Run() unexpected error = %v", err)
			}

			var buf bytes.Buffer
			io.Copy(&buf, r)

			if got := buf.String(); got != tt.want {
				t.Errorf("Eval.Run() output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEvalRun_UnknownStrategy(t *testing.T) {
	evalCmd := &Eval{
		Strategy: []string{"lazy"},
		Source:   writeSource(t, `(\x. x) y;`),
	}

	if err := evalCmd.Run(t.Context()); err == nil {
		t.Error("Eval.Run() expected error for unknown strategy")
	}
}

func TestEvalRun_MissingSource(t *testing.T) {
	evalCmd := &Eval{
		Strategy: []string{"value"},
		Source:   "/nonexistent/path/file.ulc",
	}

	if err := evalCmd.Run(t.Context()); err == nil {
		t.Error("Eval.Run() expected error for missing source file")
	}
}
