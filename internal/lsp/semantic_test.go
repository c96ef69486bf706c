package lsp

import (
	"reflect"
	"testing"
)

func TestEncodeTokens(t *testing.T) {
	tests := []struct {
		name   string
		tokens []SemanticToken
		want   []uint32
	}{
		{"empty", []SemanticToken{}, []uint32{}},
		{
			name:   "single",
			tokens: []SemanticToken{{Line: 2, StartChar: 5, Length: 7}},
			want:   []uint32{2, 5, 7, 0, 0},
		},
		{
			name: "same line is relative",
			tokens: []SemanticToken{
				{Line: 0, StartChar: 0, Length: 4},
				{Line: 0, StartChar: 5, Length: 6, Type: 2},
				{Line: 0, StartChar: 12, Length: 1, Type: 1, Modifiers: 1},
			},
			want: []uint32{0, 0, 4, 0, 0, 0, 5, 6, 2, 0, 0, 7, 1, 1, 1},
		},
		{
			name: "new line is absolute and input is sorted",
			tokens: []SemanticToken{
				{Line: 2, StartChar: 2, Length: 5, Type: 1},
				{Line: 0, StartChar: 0, Length: 6},
			},
			want: []uint32{0, 0, 6, 0, 0, 2, 2, 5, 1, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := encodeTokens(tt.tokens); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("encodeTokens() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSemanticTokensFull(t *testing.T) {
	tests := []struct {
		name    string
		content string
		tokens  int
	}{
		{"empty", "", 0},
		{"parse error", "figure {", 0},
		// palette, accent, "#0a50e6"
		{"palette literal", "palette {\n  accent = \"#0a50e6\"\n}", 3},
		// palette, warm, rgb, 255, 83, 204
		{"function", "palette {\n  warm = rgb(255, 83, 204)\n}", 6},
		// figure, axes, plot, "line", color, palette, accent
		{"reference", "figure {\n  axes {\n    plot \"line\" {\n      color = palette.accent\n    }\n  }\n}", 7},
		// figure, axes, xtick, 1, 2
		{"list", "figure {\n  axes {\n    xtick = [1, 2]\n  }\n}", 5},
		// settings, viewer; plain strings are not colors
		{"plain string", "settings {\n  viewer = \"zathura {file}\"\n}", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := semanticTokensFull(tt.content)
			if len(data) != tt.tokens*5 {
				t.Errorf("semanticTokensFull() returned %d integers, want %d", len(data), tt.tokens*5)
			}
		})
	}
}

func TestSemanticTokensFull_Types(t *testing.T) {
	data := semanticTokensFull("palette {\n  warm = rgb(255, 0, 0)\n}")
	var types []string
	for i := 3; i < len(data); i += 5 {
		types = append(types, semanticTokenTypes[data[i]])
	}
	want := []string{"keyword", "property", "function", "number", "number", "number"}
	if !reflect.DeepEqual(types, want) {
		t.Errorf("token types = %v, want %v", types, want)
	}
}
