package repl

import (
	"testing"

	"github.com/ardnew/ulc/lang"
)

func TestWordBounds_LambdaPunctuation(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		cursor    int
		wantWord  string
		wantStart int
		wantEnd   int
	}{
		{"simple", "foo", 3, "foo", 0, 3},
		{"after_lambda", `\x`, 2, "x", 1, 2},
		{"after_dot", `\x. fo`, 6, "fo", 4, 6},
		{"after_paren", "(fo", 3, "fo", 1, 3},
		{"before_close_paren", "(foo)", 4, "foo", 1, 4},
		{"after_equals", "id = fo", 7, "fo", 5, 7},
		{"application", "id arg", 6, "arg", 3, 6},
		{"empty_at_boundary", "id ", 3, "", 3, 3},
		{"mid_word", "foobar", 3, "foobar", 0, 6},
		{"at_start", "foo", 0, "foo", 0, 3},
		{"empty_after_dot", `\x.`, 3, "", 3, 3},
		{"before_semicolon", "id x;", 4, "x", 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)
			if word != tt.wantWord || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("wordBounds(%q, %d) = (%q, %d, %d), want (%q, %d, %d)",
					tt.input, tt.cursor, word, start, end,
					tt.wantWord, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestDefinedNames(t *testing.T) {
	table := lang.NewTable()
	cxt := lang.NewContext()

	prog, err := lang.ParseInto(
		t.Context(), cxt, table, `id = \x. x; const = \x. \y. x;`,
	)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if prog == nil {
		t.Fatal("nil program")
	}

	names := definedNames(cxt)
	want := []string{"id", "const"}

	if len(names) != len(want) {
		t.Fatalf("definedNames = %v, want %v", names, want)
	}

	for i, name := range want {
		if names[i] != name {
			t.Errorf("definedNames[%d] = %q, want %q", i, names[i], name)
		}
	}
}

func TestFormatPreview_Truncation(t *testing.T) {
	table := lang.NewTable()
	cxt := lang.NewContext()

	// A deeply nested abstraction whose s-expression exceeds the preview
	// limit.
	_, err := lang.ParseInto(
		t.Context(), cxt, table,
		`long = \a. \b. \c. \d. \e. \f. \g. \h. \i. \j. a;`,
	)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	def := cxt.FindTerm(table.Spelling("long"))
	if def == nil {
		t.Fatal("definition not found")
	}

	preview := formatPreview(def)
	if len(preview) > previewLimit {
		t.Errorf("preview length %d exceeds limit %d", len(preview), previewLimit)
	}

	if preview[len(preview)-3:] != "..." {
		t.Errorf("truncated preview %q missing ellipsis", preview)
	}
}
