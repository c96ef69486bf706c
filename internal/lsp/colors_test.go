package lsp

import (
	"testing"

	"github.com/jsvensson/pgfplot/internal/color"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestColorToLSP(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  protocol.Color
	}{
		{"pure red", color.Color{R: 255}, protocol.Color{Red: 1.0, Alpha: 1.0}},
		{"pure blue", color.Color{B: 255}, protocol.Color{Blue: 1.0, Alpha: 1.0}},
		{"black", color.Color{}, protocol.Color{Alpha: 1.0}},
		{"mid gray", color.Color{R: 128, G: 128, B: 128}, protocol.Color{Red: float32(128) / 255.0, Green: float32(128) / 255.0, Blue: float32(128) / 255.0, Alpha: 1.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := colorToLSP(tt.input)
			if got != tt.want {
				t.Errorf("colorToLSP() = %+v, want %+v", got, tt.want)
			}
			if back := colorFromLSP(got); back != tt.input {
				t.Errorf("colorFromLSP() = %+v, want %+v", back, tt.input)
			}
		})
	}
}

func TestDocumentColors(t *testing.T) {
	result := Analyze("test.hcl", validScript)
	infos := documentColors(result)
	if len(infos) != len(result.Colors) {
		t.Fatalf("expected %d items, got %d", len(result.Colors), len(infos))
	}
	if infos[0].Color != colorToLSP(accent) {
		t.Errorf("first color = %+v, want accent", infos[0].Color)
	}

	if infos := documentColors(nil); infos == nil || len(infos) != 0 {
		t.Errorf("documentColors(nil) = %v, want empty non-nil", infos)
	}
}

func TestColorPresentation(t *testing.T) {
	red := protocol.Color{Red: 1.0, Alpha: 1.0}
	tests := []struct {
		name    string
		content string
		rng     protocol.Range
		want    string // NewText, "" for no presentation
	}{
		{
			name:    "hex literal",
			content: "palette {\n  accent = \"#0a50e6\"\n}\n",
			rng:     lspRange(1, 11, 1, 20),
			want:    `"#ff0000"`,
		},
		{
			name:    "canonical literal keeps its form",
			content: "palette {\n  accent = \"{rgb:red,1;green,2;blue,3}\"\n}\n",
			rng:     lspRange(1, 11, 1, 40),
			want:    `"{rgb:red,255;green,0;blue,0}"`,
		},
		{
			name:    "palette reference",
			content: "axes {\n  color = palette.accent\n}\n",
			rng:     lspRange(1, 10, 1, 24),
		},
		{
			name:    "function call",
			content: "palette {\n  warm = rgb(255, 83, 204)\n}\n",
			rng:     lspRange(1, 9, 1, 26),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := colorPresentation(tt.content, &protocol.ColorPresentationParams{Color: red, Range: tt.rng})
			if tt.want == "" {
				if len(got) != 0 {
					t.Errorf("expected no presentations, got %+v", got)
				}
				return
			}
			if len(got) != 1 || got[0].TextEdit == nil {
				t.Fatalf("expected one presentation with an edit, got %+v", got)
			}
			if got[0].TextEdit.NewText != tt.want {
				t.Errorf("NewText = %q, want %q", got[0].TextEdit.NewText, tt.want)
			}
			if got[0].TextEdit.Range != tt.rng {
				t.Error("edit range should match the requested range")
			}
		})
	}
}

func lspRange(sl, sc, el, ec uint32) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: sl, Character: sc},
		End:   protocol.Position{Line: el, Character: ec},
	}
}
