// Package parser reads HCL figure scripts.
//
// A script may hold a settings block, a palette of named colors, cycle
// lists, and figures made of axes with plots, histograms, text and a
// legend:
//
//	palette {
//	  accent = "#0a50e6"
//	}
//
//	figure {
//	  axes {
//	    title = "Growth"
//	    plot "line" {
//	      y      = [1, 4, 9]
//	      format = "r--."
//	      color  = brighten(palette.accent, 0.1)
//	    }
//	  }
//	}
package parser

import (
	"fmt"
	"os"
	"slices"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/pgfplot/internal/color"
	"github.com/jsvensson/pgfplot/internal/config"
	"github.com/zclconf/go-cty/cty"
)

// PlotKinds are the labels a plot block accepts.
var PlotKinds = []string{"line", "stem", "bar", "barh", "errorbar", "surf"}

// Script is a decoded figure script.
type Script struct {
	Settings   *config.Overrides
	Palette    map[string]color.Color
	CycleLists []CycleListBlock
	Figures    []FigureBlock
}

// PaletteBlock wraps the palette block for gohcl decoding.
type PaletteBlock struct {
	Entries hcl.Body `hcl:",remain"`
}

// RawScript captures the palette block first (no EvalContext needed).
type RawScript struct {
	Palette *PaletteBlock `hcl:"palette,block"`
	Remain  hcl.Body      `hcl:",remain"`
}

// ResolvedScript decodes the blocks that may reference the palette.
type ResolvedScript struct {
	Settings   *config.Overrides `hcl:"settings,block"`
	CycleLists []CycleListBlock  `hcl:"cycle_list,block"`
	Figures    []FigureBlock     `hcl:"figure,block"`
}

type CycleListBlock struct {
	Name    string       `hcl:"name,label"`
	Entries []EntryBlock `hcl:"entry,block"`
}

type EntryBlock struct {
	Style   []string          `hcl:"style,optional"`
	Options map[string]string `hcl:"options,optional"`
}

// OptionKeys returns the option names in a stable order.
func (e EntryBlock) OptionKeys() []string {
	keys := make([]string, 0, len(e.Options))
	for k := range e.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type FigureBlock struct {
	Index  *int        `hcl:"index,optional"`
	Width  *float64    `hcl:"width,optional"`
	Height *float64    `hcl:"height,optional"`
	Margin *float64    `hcl:"margin,optional"`
	Axes   []AxesBlock `hcl:"axes,block"`
}

type AxesBlock struct {
	// Row and Col place the axes in the figure's grid.
	Row *int `hcl:"row,optional"`
	Col *int `hcl:"col,optional"`

	Width  *float64 `hcl:"width,optional"`
	Height *float64 `hcl:"height,optional"`

	Title  string `hcl:"title,optional"`
	XLabel string `hcl:"xlabel,optional"`
	YLabel string `hcl:"ylabel,optional"`
	ZLabel string `hcl:"zlabel,optional"`

	XMin *float64 `hcl:"xmin,optional"`
	XMax *float64 `hcl:"xmax,optional"`
	YMin *float64 `hcl:"ymin,optional"`
	YMax *float64 `hcl:"ymax,optional"`

	// Ticks are kept as values so that [] can mean "no ticks".
	XTick       cty.Value `hcl:"xtick,optional"`
	YTick       cty.Value `hcl:"ytick,optional"`
	XTickLabels []string  `hcl:"xticklabels,optional"`
	YTickLabels []string  `hcl:"yticklabels,optional"`

	Axis      string `hcl:"axis,optional"`
	Variant   string `hcl:"variant,optional"`
	Grid      *bool  `hcl:"grid,optional"`
	Box       *bool  `hcl:"box,optional"`
	Colormap  string `hcl:"colormap,optional"`
	Colorbar  bool   `hcl:"colorbar,optional"`
	CycleList string `hcl:"cycle_list,optional"`

	Legend *LegendBlock `hcl:"legend,block"`
	Plots  []PlotBlock  `hcl:"plot,block"`
	Hists  []HistBlock  `hcl:"hist,block"`
	Texts  []TextBlock  `hcl:"text,block"`

	Options []string `hcl:"options,optional"`
}

type PlotBlock struct {
	Kind string `hcl:"kind,label"`

	// X, Y and Z take a list of numbers or a list of rows.
	X    cty.Value `hcl:"x,optional"`
	Y    cty.Value `hcl:"y,optional"`
	Z    cty.Value `hcl:"z,optional"`
	XErr cty.Value `hcl:"xerr,optional"`
	YErr cty.Value `hcl:"yerr,optional"`

	Format          string   `hcl:"format,optional"`
	Color           string   `hcl:"color,optional"`
	Fill            string   `hcl:"fill,optional"`
	LineStyle       string   `hcl:"line_style,optional"`
	LineWidth       *float64 `hcl:"line_width,optional"`
	Opacity         *float64 `hcl:"opacity,optional"`
	Marker          string   `hcl:"marker,optional"`
	MarkerSize      *float64 `hcl:"marker_size,optional"`
	MarkerEdgeColor string   `hcl:"marker_edge_color,optional"`
	MarkerFaceColor string   `hcl:"marker_face_color,optional"`
	Shading         string   `hcl:"shading,optional"`
	Options         []string `hcl:"options,optional"`

	Range hcl.Range
}

type HistBlock struct {
	Values  []float64 `hcl:"values"`
	Bins    *int      `hcl:"bins,optional"`
	Range   []float64 `hcl:"range,optional"`
	Density bool      `hcl:"density,optional"`
	Normed  bool      `hcl:"normed,optional"`
	Format  string    `hcl:"format,optional"`
	Color   string    `hcl:"color,optional"`
	Options []string  `hcl:"options,optional"`
}

type TextBlock struct {
	X      float64 `hcl:"x"`
	Y      float64 `hcl:"y"`
	Text   string  `hcl:"text"`
	Color  string  `hcl:"color,optional"`
	Anchor string  `hcl:"anchor,optional"`
}

type LegendBlock struct {
	Entries  []string `hcl:"entries,optional"`
	Location string   `hcl:"location,optional"`
	Box      *bool    `hcl:"box,optional"`
	Align    string   `hcl:"align,optional"`
}

// Parse reads and decodes a figure script.
func Parse(path string) (*Script, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	script, diags := ParseSource(src, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing script: %s", diags.Error())
	}
	return script, nil
}

// ParseSource decodes a figure script and reports every problem as a
// diagnostic with its source range.
func ParseSource(src []byte, filename string) (*Script, hcl.Diagnostics) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, diags
	}

	// First pass: extract palette (functions only, no variables)
	var raw RawScript
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, diags
	}

	palette := make(map[string]color.Color)
	if raw.Palette != nil {
		if diags := parsePalette(raw.Palette.Entries, palette); diags.HasErrors() {
			return nil, diags
		}
	}

	// Second pass: everything else, with the palette in scope
	var resolved ResolvedScript
	if diags := gohcl.DecodeBody(raw.Remain, EvalContext(palette), &resolved); diags.HasErrors() {
		return nil, diags
	}

	if diags := validate(&resolved, file.Body); diags.HasErrors() {
		return nil, diags
	}

	return &Script{
		Settings:   resolved.Settings,
		Palette:    palette,
		CycleLists: resolved.CycleLists,
		Figures:    resolved.Figures,
	}, nil
}

func parsePalette(body hcl.Body, dest map[string]color.Color) hcl.Diagnostics {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return diags
	}
	ctx := &hcl.EvalContext{Functions: Functions()}
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(ctx)
		if diags.HasErrors() {
			return diags
		}
		if val.Type() != cty.String {
			return hcl.Diagnostics{{
				Severity: hcl.DiagError,
				Summary:  "Invalid palette color",
				Detail:   fmt.Sprintf("palette.%s must be a color string, got %s", name, val.Type().FriendlyName()),
				Subject:  attr.Expr.Range().Ptr(),
			}}
		}
		c, err := ParseColor(val.AsString())
		if err != nil {
			return hcl.Diagnostics{{
				Severity: hcl.DiagError,
				Summary:  "Invalid palette color",
				Detail:   fmt.Sprintf("palette.%s: %s", name, err),
				Subject:  attr.Expr.Range().Ptr(),
			}}
		}
		dest[name] = c
	}
	return nil
}

// validate checks what gohcl cannot: plot kinds and the shape of numeric
// values. Plot ranges are recovered from the syntax tree.
func validate(s *ResolvedScript, body hcl.Body) hcl.Diagnostics {
	var diags hcl.Diagnostics
	ranges := plotRanges(body)

	n := 0
	for fi := range s.Figures {
		for ai := range s.Figures[fi].Axes {
			axes := &s.Figures[fi].Axes[ai]
			for _, tick := range []struct {
				name string
				v    cty.Value
			}{{"xtick", axes.XTick}, {"ytick", axes.YTick}} {
				if _, err := Vector(tick.v); err != nil {
					diags = append(diags, &hcl.Diagnostic{
						Severity: hcl.DiagError,
						Summary:  "Invalid " + tick.name,
						Detail:   err.Error(),
					})
				}
			}

			for pi := range axes.Plots {
				p := &axes.Plots[pi]
				if n < len(ranges) {
					p.Range = ranges[n]
				}
				n++
				diags = append(diags, validatePlot(p)...)
			}
		}
	}
	return diags
}

func validatePlot(p *PlotBlock) hcl.Diagnostics {
	var diags hcl.Diagnostics
	fail := func(summary, detail string) {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  summary,
			Detail:   detail,
			Subject:  p.Range.Ptr(),
		})
	}

	if !slices.Contains(PlotKinds, p.Kind) {
		fail("Unknown plot kind", fmt.Sprintf("%q is not one of %v", p.Kind, PlotKinds))
		return diags
	}

	for _, m := range []struct {
		name string
		v    cty.Value
	}{{"x", p.X}, {"y", p.Y}, {"z", p.Z}, {"xerr", p.XErr}, {"yerr", p.YErr}} {
		if _, err := Matrix(m.v); err != nil {
			fail("Invalid "+m.name, err.Error())
		}
	}

	if p.Kind == "surf" {
		if p.Z.IsNull() {
			fail("Missing z", "surf plots need z")
		}
	} else if p.Y.IsNull() {
		fail("Missing y", p.Kind+" plots need y")
	}
	return diags
}

// plotRanges lists the range of every plot block in document order.
func plotRanges(body hcl.Body) []hcl.Range {
	sb, ok := body.(*hclsyntax.Body)
	if !ok {
		return nil
	}
	var out []hcl.Range
	for _, fig := range sb.Blocks {
		if fig.Type != "figure" {
			continue
		}
		for _, axes := range fig.Body.Blocks {
			if axes.Type != "axes" {
				continue
			}
			for _, b := range axes.Body.Blocks {
				if b.Type == "plot" {
					out = append(out, b.DefRange())
				}
			}
		}
	}
	return out
}
