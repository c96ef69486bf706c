package scene

import (
	"strings"

	"github.com/jsvensson/pgfplot/internal/tex"
)

// Legend describes the legend of one axes. It is rendered as axis options.
type Legend struct {
	Entries []string

	// Location is a PGFPlots legend position such as "north east", or one
	// of "upper right", "upper left", "lower left", "lower right",
	// "upper center", "lower center", "center left", "center right",
	// "center" and "outside".
	Location string

	// Box draws a frame around the legend. Nil keeps the PGFPlots default.
	Box *bool

	// Align is the cell alignment: "left", "center" or "right".
	Align string

	// Options are added to the legend style.
	Options []string
}

var legendPos = map[string]string{
	"upper right":      "north east",
	"upper left":       "north west",
	"lower left":       "south west",
	"lower right":      "south east",
	"outside":          "outer north east",
	"north east":       "north east",
	"north west":       "north west",
	"south west":       "south west",
	"south east":       "south east",
	"outer north east": "outer north east",
}

var legendAnchor = map[string]struct {
	at, anchor string
}{
	"upper center": {"(0.5,0.97)", "north"},
	"lower center": {"(0.5,0.03)", "south"},
	"center left":  {"(0.03,0.5)", "west"},
	"center right": {"(0.97,0.5)", "east"},
	"center":       {"(0.5,0.5)", "center"},
}

func (l *Legend) options() []string {
	var opts []string

	if len(l.Entries) > 0 {
		entries := make([]string, len(l.Entries))
		for i, e := range l.Entries {
			entries[i] = "{" + tex.Escape(e) + "}"
		}
		opts = append(opts, "legend entries={"+strings.Join(entries, ",")+"}")
	}

	var style []string
	if pos, ok := legendPos[l.Location]; ok {
		opts = append(opts, "legend pos="+pos)
	} else if a, ok := legendAnchor[l.Location]; ok {
		style = append(style, "at={"+a.at+"}", "anchor="+a.anchor)
	}
	if l.Align != "" {
		opts = append(opts, "legend cell align="+l.Align)
	}

	if l.Box != nil && !*l.Box {
		style = append(style, "draw=none")
	}
	style = append(style, l.Options...)
	if len(style) > 0 {
		opts = append(opts, "legend style={"+strings.Join(style, ", ")+"}")
	}
	return opts
}
