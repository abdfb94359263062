package nativewin

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"

	"github.com/1broseidon/nativewin/internal/config"
	"github.com/1broseidon/nativewin/internal/geom"
	"github.com/1broseidon/nativewin/internal/platform"
)

// unboundedDip is the maximum used when only a minimum size is given.
const unboundedDip Dip = 1 << 20

// Parameters describes a window to open. The zero value is not valid; start
// from DefaultParameters or a Builder.
type Parameters struct {
	Title string
	// Position places the window in the usable area of the screen, 0 for
	// the left/top edge and 1 for the right/bottom edge.
	Position Factor
	Size     Size
	// MinMax bounds resizing. Nil pins the window to Size.
	MinMax *MinMax
	Style  StyleFlags
	State  State
	Parent *Window

	// Display overrides $DISPLAY on X11.
	Display string
	// DPI overrides the system DPI when positive.
	DPI float64
}

// DefaultParameters returns a centred 800x600 window with the default style.
func DefaultParameters(title string) Parameters {
	return Parameters{
		Title:    title,
		Position: geom.V(0.5, 0.5),
		Size:     Sz(800, 600),
		Style:    DefaultStyle,
		State:    Restored,
	}
}

// Validate reports the first invalid field. Every error wraps
// ErrInvalidParameters.
func (p Parameters) Validate() error {
	if strings.ContainsRune(p.Title, 0) {
		return invalid("title contains a NUL byte")
	}
	if !unitFactor(p.Position.X) || !unitFactor(p.Position.Y) {
		return invalid("position %g,%g outside 0..1", p.Position.X, p.Position.Y)
	}
	if !positiveSize(p.Size) {
		return invalid("size %gx%g must be positive", p.Size.X, p.Size.Y)
	}
	if p.MinMax != nil {
		if err := validateBounds(*p.MinMax); err != nil {
			return err
		}
		if !p.MinMax.Min.LessEq(p.Size) || !p.Size.LessEq(p.MinMax.Max) {
			return invalid("size %gx%g outside bounds %gx%g..%gx%g",
				p.Size.X, p.Size.Y, p.MinMax.Min.X, p.MinMax.Min.Y, p.MinMax.Max.X, p.MinMax.Max.Y)
		}
	}
	switch p.State {
	case Restored, Minimized, Maximized:
	default:
		return invalid("unknown state %v", p.State)
	}
	if p.Parent != nil && !p.Parent.IsOpen() {
		return invalid("parent window is closed")
	}
	if math.IsNaN(p.DPI) || p.DPI < 0 {
		return invalid("dpi %g must be >= 0", p.DPI)
	}
	return nil
}

func (p Parameters) native() platform.Params {
	out := platform.Params{
		Title:    p.Title,
		Position: p.Position,
		Size:     p.Size,
		Style:    p.Style,
		State:    p.State,
		Display:  p.Display,
		DPI:      p.DPI,
	}
	if p.MinMax != nil {
		mm := *p.MinMax
		out.MinMax = &mm
	}
	if p.Parent != nil {
		out.Parent = p.Parent.implementation()
	}
	return out
}

func validateBounds(m MinMax) error {
	if !positiveSize(m.Min) || !positiveSize(m.Max) {
		return invalid("bounds %gx%g..%gx%g must be positive", m.Min.X, m.Min.Y, m.Max.X, m.Max.Y)
	}
	if !m.Valid() {
		return invalid("minimum %gx%g exceeds maximum %gx%g", m.Min.X, m.Min.Y, m.Max.X, m.Max.Y)
	}
	return nil
}

func positiveSize(s Size) bool {
	return s.X > 0 && s.Y > 0 && !math.IsInf(float64(s.X), 0) && !math.IsInf(float64(s.Y), 0)
}

func unitFactor(f float64) bool {
	return f >= 0 && f <= 1
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidParameters}, args...)...)
}

// Builder accumulates Parameters and opens exactly one window.
type Builder struct {
	params   Parameters
	consumed atomic.Bool
}

// NewBuilder starts from DefaultParameters(title).
func NewBuilder(title string) *Builder {
	return &Builder{params: DefaultParameters(title)}
}

// NewBuilderFromConfig seeds a builder with the window defaults, display
// and DPI from cfg.
func NewBuilderFromConfig(cfg *config.Config) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := cfg.Window
	flags, _ := w.Flags()
	state, _ := w.ParsedState()

	b := NewBuilder(w.Title).
		Position(geom.V(w.PositionX, w.PositionY)).
		Size(Sz(Dip(w.Width), Dip(w.Height))).
		Style(flags).
		State(state).
		Display(cfg.Display).
		DPI(cfg.DPI)

	if w.HasBounds() {
		b.MinMaxSize(MinMax{
			Min: Sz(orDip(w.MinWidth, 1), orDip(w.MinHeight, 1)),
			Max: Sz(orDip(w.MaxWidth, unboundedDip), orDip(w.MaxHeight, unboundedDip)),
		})
	}
	return b, nil
}

// NewBuilderFromConfigFile loads path (missing files yield defaults) and
// seeds a builder from it.
func NewBuilderFromConfigFile(path string) (*Builder, error) {
	res, err := config.LoadFromPath(path)
	if err != nil {
		return nil, err
	}
	return NewBuilderFromConfig(res.Config)
}

func orDip(v float64, fallback Dip) Dip {
	if v > 0 {
		return Dip(v)
	}
	return fallback
}

func (b *Builder) Title(title string) *Builder {
	b.params.Title = title
	return b
}

// Position sets the placement factor, 0..1 per axis.
func (b *Builder) Position(f Factor) *Builder {
	b.params.Position = f
	return b
}

func (b *Builder) Size(s Size) *Builder {
	b.params.Size = s
	return b
}

// MinSize bounds shrinking. Without a maximum the window may grow freely.
func (b *Builder) MinSize(s Size) *Builder {
	mm := b.bounds()
	mm.Min = s
	b.params.MinMax = &mm
	return b
}

// MaxSize bounds growing. Without a minimum the window may shrink to 1x1.
func (b *Builder) MaxSize(s Size) *Builder {
	mm := b.bounds()
	mm.Max = s
	b.params.MinMax = &mm
	return b
}

func (b *Builder) MinMaxSize(m MinMax) *Builder {
	b.params.MinMax = &m
	return b
}

func (b *Builder) bounds() MinMax {
	if b.params.MinMax != nil {
		return *b.params.MinMax
	}
	return MinMax{Min: Sz(1, 1), Max: Sz(unboundedDip, unboundedDip)}
}

func (b *Builder) Style(f StyleFlags) *Builder {
	b.params.Style = f
	return b
}

func (b *Builder) State(s State) *Builder {
	b.params.State = s
	return b
}

// WithParent makes the new window a transient of parent.
func (b *Builder) WithParent(parent *Window) *Builder {
	b.params.Parent = parent
	return b
}

func (b *Builder) Display(display string) *Builder {
	b.params.Display = display
	return b
}

func (b *Builder) DPI(dpi float64) *Builder {
	b.params.DPI = dpi
	return b
}

// Parameters returns a copy of the accumulated parameters.
func (b *Builder) Parameters() Parameters {
	p := b.params
	if p.MinMax != nil {
		mm := *p.MinMax
		p.MinMax = &mm
	}
	return p
}

// Open validates the parameters and opens the window. A builder opens at
// most one window; later calls return ErrBuilderConsumed, including after a
// failed open.
func (b *Builder) Open() (*Window, error) {
	if !b.consumed.CompareAndSwap(false, true) {
		return nil, ErrBuilderConsumed
	}
	return Open(b.Parameters())
}

// String summarises the builder for logs.
func (b *Builder) String() string {
	p := b.params
	return fmt.Sprintf("%q %gx%g at %g,%g style=%s state=%s", p.Title, p.Size.X, p.Size.Y,
		p.Position.X, p.Position.Y, p.Style, p.State)
}
