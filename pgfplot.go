// Package pgfplot builds PGFPlots figures from Go and turns them into
// LaTeX documents, PDFs and images.
//
// A Session tracks the current figure and axes the way interactive
// plotting front ends do:
//
//	s := pgfplot.NewSession(pgfplot.DefaultSettings())
//	s.Plot(pgfplot.Vec{1, 4, 9}, pgfplot.Fmt("r--."))
//	s.Title("Growth")
//	err := s.Savefig("growth.pdf")
package pgfplot

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jsvensson/pgfplot/internal/color"
	"github.com/jsvensson/pgfplot/internal/config"
	"github.com/jsvensson/pgfplot/internal/cycle"
	"github.com/jsvensson/pgfplot/internal/engine"
	"github.com/jsvensson/pgfplot/internal/scene"
)

var (
	// ErrRowMismatch is returned when more than two data arguments have
	// row counts that are neither equal nor 1.
	ErrRowMismatch = errors.New("data arguments have different row counts")
	// ErrNoData is returned by operations that need data and got none.
	ErrNoData = errors.New("no data")
	// ErrArgs is returned for argument lists no plot form accepts.
	ErrArgs = errors.New("invalid plot arguments")
	// ErrAxisMode is returned by Axis for unknown modes.
	ErrAxisMode = errors.New("unknown axis mode")
	// ErrFigureIndex is returned by scripts that name a negative figure
	// index.
	ErrFigureIndex = errors.New("figure index must not be negative")
)

type (
	Figure    = scene.Figure
	Axes      = scene.Axes
	Plot      = scene.Plot
	Surface   = scene.Surface
	Image     = scene.Image
	Legend    = scene.Legend
	Text      = scene.Text
	Arrow     = scene.Arrow
	Rectangle = scene.Rectangle
	Circle    = scene.Circle
	Box       = scene.Box

	Color     = color.Color
	ColorSpec = color.Spec
	ColorName = color.Name
	Colormap  = color.Colormap

	CycleList   = cycle.List
	CycleEntry  = cycle.Entry
	CycleOption = cycle.Option
	CycleWord   = cycle.Word

	MatrixOptions = scene.MatrixOptions
	Settings      = config.Settings
)

// RGB returns the color with the given channels, each in 0..255.
func RGB(r, g, b int) (Color, error) { return color.New(r, g, b) }

// LookupColormap returns a predefined colormap by name.
func LookupColormap(name string) (*Colormap, bool) { return color.LookupColormap(name) }

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings { return config.Default() }

// Session owns a set of figures and the notion of the current figure and
// axes. All methods are safe for concurrent use; the figures and axes they
// return are not.
type Session struct {
	mu       sync.Mutex
	id       string
	settings Settings
	registry *scene.Registry
	runner   *engine.Runner

	// cycleLists holds the named lists of loaded scripts.
	cycleLists map[string]*cycle.List
}

// NewSession returns an empty session.
func NewSession(settings Settings) *Session {
	s := &Session{
		id:       strings.Split(uuid.NewString(), "-")[0],
		settings: settings,
		runner:   engine.New(settings),

		cycleLists: make(map[string]*cycle.List),
	}
	s.registry = scene.NewRegistry(s.id, s.initFigure)
	return s
}

// initFigure runs with s.mu held, from inside registry calls.
func (s *Session) initFigure(f *scene.Figure) {
	f.Preamble = s.settings.Preamble
	f.ImageFolder = s.settings.ImageFolder
	f.ImageFormat = s.settings.ImageFormat
}

// ID returns the identifier used in generated file names.
func (s *Session) ID() string { return s.id }

// Settings returns the current settings.
func (s *Session) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Gcf returns the current figure, creating one when there is none.
func (s *Session) Gcf() *Figure {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Current()
}

// Gca returns the current axes, creating a figure and axes as needed.
func (s *Session) Gca() *Axes {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.CurrentAxes()
}

// Figure makes the figure with index idx current, creating it when needed.
// A negative idx behaves like NewFigure.
func (s *Session) Figure(idx int) *Figure {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Figure(idx)
}

// NewFigure creates a figure at the lowest unused index and makes it
// current.
func (s *Session) NewFigure() *Figure {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.NewFigure()
}

// Figures returns every figure ordered by index.
func (s *Session) Figures() []*Figure {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Figures()
}

// Subplot makes the axes at row, col of the current figure's grid current.
func (s *Session) Subplot(row, col int) *Axes {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Current().Subplot(row, col)
}

// Render returns the LaTeX document of the current figure.
func (s *Session) Render() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Current().Render()
}

// Draw compiles the current figure and opens it in the viewer.
func (s *Session) Draw() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runner.Draw(s.registry.Current())
}

// Savefig writes the current figure to filename. The extension picks the
// output: .tex writes the document and its images, .pdf compiles it.
func (s *Session) Savefig(filename string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runner.Save(s.registry.Current(), filename, "")
}
