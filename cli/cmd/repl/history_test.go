package repl

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func historyPath(t *testing.T) string {
	t.Helper()

	return filepath.Join(t.TempDir(), baseHistory)
}

func TestHistoryLoadMissingFile(t *testing.T) {
	h := NewHistory(historyPath(t))

	if err := h.Load(); err != nil {
		t.Fatalf("Load of missing file: %v", err)
	}

	if h.Len() != 0 {
		t.Errorf("expected empty history, got %d entries", h.Len())
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	path := historyPath(t)

	h := NewHistory(path)
	if _, err := h.WriteWithMode(`id = \x. x;`, modeEval); err != nil {
		t.Fatalf("WriteWithMode: %v", err)
	}
	if _, err := h.WriteWithMode("strategy normal", modeCtrl); err != nil {
		t.Fatalf("WriteWithMode: %v", err)
	}

	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if reloaded.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", reloaded.Len())
	}

	first, err := reloaded.GetEntry(0)
	if err != nil {
		t.Fatalf("GetEntry(0): %v", err)
	}
	if first.Line != `id = \x. x;` || first.Mode != modeEval {
		t.Errorf("unexpected first entry: %+v", first)
	}

	second, err := reloaded.GetEntry(1)
	if err != nil {
		t.Fatalf("GetEntry(1): %v", err)
	}
	if second.Line != "strategy normal" || second.Mode != modeCtrl {
		t.Errorf("unexpected second entry: %+v", second)
	}
}

func TestHistoryDeduplicatesRepeats(t *testing.T) {
	h := NewHistory(historyPath(t))

	for _, line := range []string{"id y;", "const a b;", "id y;"} {
		if _, err := h.WriteWithMode(line, modeEval); err != nil {
			t.Fatalf("WriteWithMode(%q): %v", line, err)
		}
	}

	if h.Len() != 2 {
		t.Fatalf("expected 2 entries after dedup, got %d", h.Len())
	}

	last, err := h.GetEntry(h.Len() - 1)
	if err != nil {
		t.Fatalf("GetEntry: %v", err)
	}
	if last.Line != "id y;" {
		t.Errorf("expected repeated entry moved to end, got %q", last.Line)
	}
}

func TestHistorySameLineDifferentModes(t *testing.T) {
	h := NewHistory(historyPath(t))

	if _, err := h.WriteWithMode("list", modeEval); err != nil {
		t.Fatalf("WriteWithMode: %v", err)
	}
	if _, err := h.WriteWithMode("list", modeCtrl); err != nil {
		t.Fatalf("WriteWithMode: %v", err)
	}

	if h.Len() != 2 {
		t.Errorf("entries in distinct modes must not collapse, got %d", h.Len())
	}
}

func TestHistoryIgnoresBlankInput(t *testing.T) {
	h := NewHistory(historyPath(t))

	if _, err := h.WriteWithMode("   ", modeEval); err != nil {
		t.Fatalf("WriteWithMode: %v", err)
	}

	if h.Len() != 0 {
		t.Errorf("blank input must not be recorded, got %d entries", h.Len())
	}
}

func TestHistoryLoadLegacyLines(t *testing.T) {
	path := historyPath(t)

	if err := os.WriteFile(path, []byte("id y;\nC:quit\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	first, err := h.GetEntry(0)
	if err != nil {
		t.Fatalf("GetEntry(0): %v", err)
	}
	if first.Mode != modeEval || first.Line != "id y;" {
		t.Errorf("legacy line should default to eval mode, got %+v", first)
	}
}

func TestHistoryGetEntryOutOfBounds(t *testing.T) {
	h := NewHistory(historyPath(t))

	if _, err := h.GetEntry(0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
}
