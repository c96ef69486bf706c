// Package tex holds the small text helpers shared by every markup writer.
package tex

import (
	"strconv"
	"strings"
)

// MaxInlineOptions is the length above which an option list is written
// one option per line.
const MaxInlineOptions = 70

// Indent prefixes every line of text with times tabs and strips trailing
// whitespace from each line.
func Indent(text string, times int) string {
	prefix := strings.Repeat("\t", times)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(prefix+line, " \t")
	}
	return strings.Join(lines, "\n")
}

var escaper = strings.NewReplacer(
	`\%`, `\%`,
	`\&`, `\&`,
	`\#`, `\#`,
	`%`, `\%`,
	`&`, `\&`,
	`#`, `\#`,
)

// Escape protects the characters that would break an option value: %
// starts a comment, & and # are alignment and parameter characters.
// Already escaped characters and math mode are left alone.
func Escape(s string) string {
	return escaper.Replace(s)
}

// EscapeAll escapes every element of labels.
func EscapeAll(labels []string) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = Escape(l)
	}
	return out
}

// Num formats a number the shortest way that round-trips.
func Num(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Nums formats and comma-joins numbers.
func Nums(fs []float64) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = Num(f)
	}
	return strings.Join(parts, ",")
}

// Length formats a length in centimeters.
func Length(f float64) string {
	return Num(f) + "cm"
}

// Bool formats a boolean as a PGF key value.
func Bool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// InlineOptions joins options with ", ". Lists longer than
// MaxInlineOptions are broken into one indented option per line.
func InlineOptions(options []string) string {
	s := strings.Join(options, ", ")
	if len(s) <= MaxInlineOptions {
		return s
	}
	return "\n" + Indent(strings.Join(options, ",\n"), 1)
}

// DefaultPreamble loads the packages every generated document needs.
const DefaultPreamble = "\\usepackage[utf8]{inputenc}\n" +
	"\\usepackage{amsmath}\n" +
	"\\usepackage{amssymb}\n" +
	"\\usepackage{pgfplots}\n"
