// Package nativewin opens native OS windows and delivers their input as
// portable events.
//
// A window is described with a Builder, opened once, and then driven by a
// dedicated event pump goroutine that translates X11 or Win32 events into
// the event types below. Listeners run on that goroutine.
//
//	w, err := nativewin.NewBuilder("demo").Size(nativewin.Sz(800, 600)).Open()
//	if err != nil {
//		return err
//	}
//	defer w.Close()
//	nativewin.On(w, func(e nativewin.KeyDown) { fmt.Println(e.Key) })
//	return w.Wait(ctx)
package nativewin

import (
	"errors"
	"log/slog"

	"github.com/1broseidon/nativewin/internal/geom"
	"github.com/1broseidon/nativewin/internal/ids"
	"github.com/1broseidon/nativewin/internal/input"
	"github.com/1broseidon/nativewin/internal/logging"
	"github.com/1broseidon/nativewin/internal/platform"
	"github.com/1broseidon/nativewin/internal/style"
)

// Units and geometry.
type (
	Dip    = geom.Dip
	Pixels = geom.Pixels

	// Size is a size in density-independent pixels.
	Size = geom.Vec2[geom.Dip]
	// PixelPoint is a position in physical screen pixels.
	PixelPoint = geom.Vec2[geom.Pixels]
	// Factor locates a window within the usable screen area, 0..1 per
	// axis.
	Factor = geom.Vec2[float64]
	// MinMax bounds the size of a resizable window.
	MinMax = geom.MinMax[geom.Dip]
)

// Sz builds a Size.
func Sz(w, h Dip) Size { return geom.V(w, h) }

// Style and state.
type (
	StyleFlags = style.Flags
	State      = style.State
)

const (
	CloseButton    = style.CloseButton
	Invisible      = style.Invisible
	MinimizeButton = style.MinimizeButton
	MaximizeButton = style.MaximizeButton
	Resizable      = style.Resizable
	CustomBorder   = style.CustomBorder

	DefaultStyle         = style.Default
	DefaultStyleNoResize = style.DefaultNoResize
	DefaultStyleCustom   = style.DefaultCustom

	Restored  = style.Restored
	Minimized = style.Minimized
	Maximized = style.Maximized
)

// Input.
type (
	KeyboardKey = input.KeyboardKey
	MouseButton = input.MouseButton
	Modifiers   = input.Modifiers

	Event           = input.Event
	Listener        = input.Listener
	KeyDown         = input.KeyDown
	KeyUp           = input.KeyUp
	TextInput       = input.TextInput
	Resize          = input.Resize
	Move            = input.Move
	MouseButtonDown = input.MouseButtonDown
	MouseButtonUp   = input.MouseButtonUp
	MouseMotion     = input.MouseMotion
	Scroll          = input.Scroll
	MouseEnter      = input.MouseEnter
	MouseLeave      = input.MouseLeave
	FocusIn         = input.FocusIn
	FocusOut        = input.FocusOut
	CloseRequested  = input.CloseRequested

	// ListenerID identifies a registered listener for removal.
	ListenerID = ids.ID
	// WindowID identifies a window in log output.
	WindowID = ids.ID
)

// OpenError reports the native step that failed while opening a window.
type OpenError = platform.OpenError

var (
	// ErrBuilderConsumed is returned by Open on a builder that already
	// opened a window.
	ErrBuilderConsumed = errors.New("nativewin: builder already used")
	// ErrInvalidParameters wraps every parameter validation failure.
	ErrInvalidParameters = errors.New("nativewin: invalid window parameters")
	// ErrClosed is returned by every Window method after Close.
	ErrClosed = errors.New("nativewin: window closed")
	// ErrUnsupportedPlatform is returned by Open where no backend exists.
	ErrUnsupportedPlatform = platform.ErrUnsupported
)

// SetLogger routes library logging to l. Passing nil silences it again,
// which is the default.
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}
