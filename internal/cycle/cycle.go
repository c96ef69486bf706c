// Package cycle implements PGFPlots cycle lists: the ordered, repeating
// styles assigned to successive plots that carry no explicit style.
package cycle

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jsvensson/pgfplot/internal/color"
)

// ErrEmptyEntry is returned by Append when neither style tokens nor
// options are given.
var ErrEmptyEntry = errors.New("cycle list entry needs at least one style or option")

// Word is a bare style token such as "dotted" or "mark=*".
type Word string

func (w Word) String() string { return string(w) }

// Option is a named key=value style setting.
type Option struct {
	Key   string
	Value fmt.Stringer
}

// Entry is one style of a cycle list, stored as given.
type Entry struct {
	Style   []fmt.Stringer
	Options []Option
}

// List is an ordered cycle list.
type List struct {
	entries []Entry
}

// New builds a List from entries, validating each of them.
func New(entries ...Entry) (*List, error) {
	l := &List{}
	for i, e := range entries {
		if err := l.Append(e.Style, e.Options); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return l, nil
}

// Append adds an entry made of positional style tokens and named options.
func (l *List) Append(style []fmt.Stringer, options []Option) error {
	if len(style) == 0 && len(options) == 0 {
		return ErrEmptyEntry
	}
	l.entries = append(l.entries, Entry{
		Style:   append([]fmt.Stringer(nil), style...),
		Options: append([]Option(nil), options...),
	})
	return nil
}

// Len returns the number of entries.
func (l *List) Len() int { return len(l.entries) }

// Entry returns the i-th entry.
func (l *List) Entry(i int) Entry { return l.entries[i] }

// Clone returns a copy of l that can be changed without affecting l.
func (l *List) Clone() *List {
	c := &List{entries: make([]Entry, len(l.entries))}
	for i, e := range l.entries {
		c.entries[i] = Entry{
			Style:   append([]fmt.Stringer(nil), e.Style...),
			Options: append([]Option(nil), e.Options...),
		}
	}
	return c
}

// Delete removes the i-th entry.
func (l *List) Delete(i int) {
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
}

// Render returns the "cycle list={...}" axis option.
func (l *List) Render() string {
	groups := make([]string, 0, len(l.entries))
	for _, e := range l.entries {
		parts := make([]string, 0, len(e.Style)+len(e.Options))
		for _, s := range e.Style {
			parts = append(parts, token(s))
		}
		for _, o := range e.Options {
			parts = append(parts, o.Key+"="+o.Value.String())
		}
		groups = append(groups, "\t{"+strings.Join(parts, ", ")+"}")
	}
	return "cycle list={\n" + strings.Join(groups, ",\n") + "}"
}

// token renders a positional token; RGB values need an explicit key.
func token(s fmt.Stringer) string {
	if c, ok := s.(color.Color); ok {
		return color.Bare(c)
	}
	return s.String()
}

var predefined = map[string]*List{
	"fancy": fancy(),
}

func fancy() *List {
	l := &List{}
	for _, c := range []color.Color{
		{R: 10, G: 80, B: 230},
		{R: 255, G: 83, B: 204},
		{R: 170, G: 250, B: 120},
		{R: 0, G: 0, B: 0},
		{R: 255, G: 200, B: 0},
	} {
		l.entries = append(l.entries, Entry{Options: []Option{
			{Key: "color", Value: c},
			{Key: "fill", Value: c},
		}})
	}
	return l
}

// Lookup returns a copy of a predefined cycle list.
func Lookup(name string) (*List, bool) {
	l, ok := predefined[name]
	if !ok {
		return nil, false
	}
	return l.Clone(), true
}

// Names returns the names of the predefined cycle lists, sorted.
func Names() []string {
	names := make([]string, 0, len(predefined))
	for name := range predefined {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
