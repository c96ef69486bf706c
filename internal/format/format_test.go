package format

import (
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "basic formatting",
			input:    `settings{compiler="latexmk"viewer="zathura"}`,
			expected: `settings { compiler = "latexmk" viewer = "zathura" }`,
		},
		{
			name:     "axes with nested blocks",
			input:    `axes{title="Growth"xlabel="time"legend{location="upper left"}}`,
			expected: `axes { title = "Growth" xlabel = "time" legend { location = "upper left" } }`,
		},
		{
			name: "already formatted stays same",
			input: `settings {
  compiler = "latexmk"
}
`,
			expected: `settings {
  compiler = "latexmk"
}
`,
		},
		{
			name:     "extra whitespace normalized",
			input:    `settings   {   viewer   =   "zathura"   }`,
			expected: `settings { viewer = "zathura" }`,
		},
		{
			name:     "empty content",
			input:    "",
			expected: "",
		},
		{
			name: "multiple blocks",
			input: `settings{viewer="zathura"}
palette{accent="#0a50e6"}
figure{axes{title=palette.accent}}`,
			expected: `settings { viewer = "zathura" }
palette { accent = "#0a50e6" }
figure { axes { title = palette.accent } }`,
		},
		{
			name:     "multiple blank lines collapsed to one",
			input:    "settings { viewer = \"zathura\" }\n\n\n\npalette { accent = \"#0a50e6\" }",
			expected: "settings { viewer = \"zathura\" }\n\npalette { accent = \"#0a50e6\" }",
		},
		{
			name:     "single blank line preserved",
			input:    "settings { viewer = \"zathura\" }\n\npalette { accent = \"#0a50e6\" }",
			expected: "settings { viewer = \"zathura\" }\n\npalette { accent = \"#0a50e6\" }",
		},
		{
			name:     "blank line after opening brace removed",
			input:    "palette {\n\n  accent = \"#0a50e6\"\n}",
			expected: "palette {\n  accent = \"#0a50e6\"\n}",
		},
		{
			name:     "blank line before closing brace removed",
			input:    "palette {\n  accent = \"#0a50e6\"\n\n}",
			expected: "palette {\n  accent = \"#0a50e6\"\n}",
		},
		{
			name:     "nested block blank lines removed",
			input:    "figure {\n\n  axes {\n\n    title = \"Growth\"\n\n  }\n\n}",
			expected: "figure {\n  axes {\n    title = \"Growth\"\n  }\n}",
		},
		{
			name: "plot attributes aligned",
			input: `plot "line" {
  y = [1, 4, 9]
  format = "r--."
  line_width = 2
}
`,
			expected: `plot "line" {
  y          = [1, 4, 9]
  format     = "r--."
  line_width = 2
}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Format(tt.input)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}

			result = strings.TrimSuffix(result, "\n")
			expected := strings.TrimSuffix(tt.expected, "\n")

			if result != expected {
				t.Errorf("Format() = %q, want %q", result, expected)
			}
		})
	}
}

func TestFormatInvalidHCL(t *testing.T) {
	input := `figure { axes { title = "Growth"`
	if _, err := Format(input); err != nil {
		t.Errorf("Format() on incomplete HCL should not error, got: %v", err)
	}
}

func TestCheck(t *testing.T) {
	if diags := Check([]byte("figure {\n  axes {}\n}\n"), "ok.hcl"); diags.HasErrors() {
		t.Errorf("Check() = %v, want no errors", diags)
	}

	diags := Check([]byte("figure {\n  axes {\n"), "bad.hcl")
	if !diags.HasErrors() {
		t.Fatal("Check() found no errors in unclosed blocks")
	}
	if diags[0].Subject == nil || diags[0].Subject.Filename != "bad.hcl" {
		t.Errorf("Subject = %+v, want a range in bad.hcl", diags[0].Subject)
	}
}
