package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDefinition(t *testing.T) {
	result := Analyze("test.hcl", validScript)
	uri := "file:///test.hcl"

	symRange, ok := result.Symbols["palette.accent"]
	if !ok {
		t.Fatal("expected palette.accent in symbol table")
	}

	// "      color = palette.accent": "accent" starts at 22
	loc := definition(result, validScript, uri, protocol.Position{Line: 10, Character: 24})
	if loc == nil {
		t.Fatal("expected definition for palette.accent")
	}
	if loc.URI != protocol.DocumentUri(uri) {
		t.Errorf("URI = %q, want %q", loc.URI, uri)
	}
	if loc.Range != symRange {
		t.Errorf("Range = %v, want %v", loc.Range, symRange)
	}
	if loc.Range.Start.Line != 1 {
		t.Errorf("definition on line %d, want 1", loc.Range.Start.Line)
	}
}

func TestDefinition_NotFound(t *testing.T) {
	result := Analyze("test.hcl", validScript)
	tests := []struct {
		name string
		pos  protocol.Position
	}{
		{"namespace only", protocol.Position{Line: 10, Character: 16}},
		{"attribute name", protocol.Position{Line: 10, Character: 7}},
		{"past end of file", protocol.Position{Line: 99, Character: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if loc := definition(result, validScript, "file:///test.hcl", tt.pos); loc != nil {
				t.Errorf("expected nil, got %+v", loc)
			}
		})
	}
}

func TestBlockRefAtCursor(t *testing.T) {
	tests := []struct {
		line string
		char uint32
		want string
	}{
		{"  color = palette.accent", 20, "palette.accent"},
		{"  color = palette.accent", 12, "palette"},
		{"  color = theme.accent", 18, ""},
		{"  color = palette", 12, ""},
		{"", 0, ""},
	}
	for _, tt := range tests {
		if got := blockRefAtCursor(tt.line, tt.char); got != tt.want {
			t.Errorf("blockRefAtCursor(%q, %d) = %q, want %q", tt.line, tt.char, got, tt.want)
		}
	}
}

const cycleListScript = `cycle_list "mine" {
  entry {
    style = ["red"]
  }
}

figure {
  axes {
    cycle_list = "mine"
  }
}
`

func TestDefinition_CycleList(t *testing.T) {
	result := Analyze("test.hcl", cycleListScript)
	if len(result.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", result.Diagnostics)
	}

	// `    cycle_list = "mine"`: the quoted value spans 17..23
	loc := definition(result, cycleListScript, "file:///test.hcl", protocol.Position{Line: 8, Character: 19})
	if loc == nil {
		t.Fatal("expected definition for cycle list")
	}
	if loc.Range.Start.Line != 0 {
		t.Errorf("definition on line %d, want 0", loc.Range.Start.Line)
	}
}

func TestCycleListRefAtCursor(t *testing.T) {
	tests := []struct {
		line string
		char uint32
		want string
	}{
		{`    cycle_list = "mine"`, 17, "cycle_list.mine"},
		{`    cycle_list = "mine"`, 22, "cycle_list.mine"},
		{`    cycle_list = "mine"`, 23, ""},
		{`    cycle_list = "mine"`, 6, ""},
		{`    title = "mine"`, 14, ""},
		{`    cycle_list = mine`, 18, ""},
	}
	for _, tt := range tests {
		if got := cycleListRefAtCursor(tt.line, tt.char); got != tt.want {
			t.Errorf("cycleListRefAtCursor(%q, %d) = %q, want %q", tt.line, tt.char, got, tt.want)
		}
	}
}
