package lsp

import "testing"

func TestFormatEdits(t *testing.T) {
	edits, err := formatEdits("figure {\n  axes {}\n}\n")
	if err != nil {
		t.Fatalf("formatEdits() error: %v", err)
	}
	if len(edits) != 0 {
		t.Errorf("expected no edits for formatted content, got %+v", edits)
	}

	edits, err = formatEdits("figure{\naxes{title=\"x\"}\n}\n")
	if err != nil {
		t.Fatalf("formatEdits() error: %v", err)
	}
	if len(edits) != 1 {
		t.Fatalf("expected one edit, got %d", len(edits))
	}
	want := "figure {\n  axes { title = \"x\" }\n}\n"
	if edits[0].NewText != want {
		t.Errorf("NewText = %q, want %q", edits[0].NewText, want)
	}
	if edits[0].Range.Start.Line != 0 || edits[0].Range.End.Line != 3 {
		t.Errorf("edit should cover the whole document, got %+v", edits[0].Range)
	}
}
