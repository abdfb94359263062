// Package platform defines the contract every native window backend
// implements. Exactly one backend is compiled into a binary; the selection
// happens by build tag in the nativewin package.
package platform

import (
	"errors"
	"fmt"

	"github.com/1broseidon/nativewin/internal/geom"
	"github.com/1broseidon/nativewin/internal/input"
	"github.com/1broseidon/nativewin/internal/style"
)

// ErrUnsupported is returned by Open on systems without a backend.
var ErrUnsupported = errors.New("no native window backend for this platform")

// Params is the validated, immutable description of a window to create.
type Params struct {
	Title string
	// Position is a factor in 0..1 per axis locating the window within the
	// usable area of the screen; 0.5,0.5 centres it.
	Position geom.Vec2[float64]
	Size     geom.Size[geom.Dip]
	// MinMax bounds resizing. Nil pins the window to Size.
	MinMax *geom.MinMax[geom.Dip]
	Style  style.Flags
	State  style.State
	// Parent, if set, must come from the same backend.
	Parent Implementation

	// Display overrides $DISPLAY on X11.
	Display string
	// DPI overrides the value read from the system when positive.
	DPI float64
}

// Implementation is one open native window plus its event pump.
// Accessors are safe to call from any goroutine. Listeners run on the
// pump goroutine.
type Implementation interface {
	Title() (string, error)
	SetTitle(title string) error

	Position() (geom.Point[geom.Pixels], error)
	SetPosition(p geom.Point[geom.Pixels]) error

	Size() geom.Size[geom.Dip]
	SetSize(s geom.Size[geom.Dip]) error

	// MinMaxSize returns the current resize bounds. ok is false when the
	// window is pinned to its size.
	MinMaxSize() (bounds geom.MinMax[geom.Dip], ok bool)
	SetMinMaxSize(bounds geom.MinMax[geom.Dip]) error

	ToggleFullscreen() (bool, error)
	SetState(s style.State) error

	IsOpen() bool
	IsKeyDown(k input.KeyboardKey) bool
	IsMouseButtonDown(b input.MouseButton) bool

	// NativeHandle exposes the OS window for attaching a rendering
	// surface.
	NativeHandle() any
	DPI() float64

	Listeners() *input.Listeners
	// Done is closed when the event pump has exited.
	Done() <-chan struct{}
	// Close stops the pump, waits for it and releases native resources.
	Close() error
}

// OpenError reports which native step failed while creating a window.
type OpenError struct {
	Op  string
	Err error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open window: %s: %v", e.Op, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// Fail wraps err as an OpenError for step op.
func Fail(op string, err error) error {
	return &OpenError{Op: op, Err: err}
}
