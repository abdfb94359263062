package input

import (
	"fmt"

	"github.com/1broseidon/nativewin/internal/geom"
)

// Event is one decoded record produced by the event pump. The concrete
// types below are the only implementations.
type Event interface {
	fmt.Stringer
	event()
}

// KeyDown is emitted when a key is pressed. Native carries the platform
// code (X11 keysym or Win32 virtual key) even when Key is KeyUnknown.
type KeyDown struct {
	Key       KeyboardKey
	Native    uint32
	Modifiers Modifiers
	Repeat    bool
}

// KeyUp is emitted when a key is released.
type KeyUp struct {
	Key       KeyboardKey
	Native    uint32
	Modifiers Modifiers
}

// TextInput carries text produced by a key press after input-method
// filtering.
type TextInput struct {
	Text string
}

// Resize reports a new client-area size.
type Resize struct {
	Size   geom.Size[geom.Dip]
	Pixels geom.Size[geom.Pixels]
}

// Move reports a new window position in screen pixels.
type Move struct {
	Position geom.Point[geom.Pixels]
}

// MouseButtonDown is emitted when a mouse button is pressed.
type MouseButtonDown struct {
	Button    MouseButton
	Position  geom.Point[geom.Dip]
	Modifiers Modifiers
}

// MouseButtonUp is emitted when a mouse button is released.
type MouseButtonUp struct {
	Button    MouseButton
	Position  geom.Point[geom.Dip]
	Modifiers Modifiers
}

// MouseMotion reports the pointer position relative to the client area.
type MouseMotion struct {
	Position  geom.Point[geom.Dip]
	Modifiers Modifiers
}

// Scroll reports wheel movement in notches. Positive DY scrolls up,
// positive DX scrolls right.
type Scroll struct {
	DX, DY    float64
	Position  geom.Point[geom.Dip]
	Modifiers Modifiers
}

// MouseEnter is emitted when the pointer enters the client area.
type MouseEnter struct {
	Position geom.Point[geom.Dip]
}

// MouseLeave is emitted when the pointer leaves the client area.
type MouseLeave struct{}

// FocusIn is emitted when the window gains keyboard focus.
type FocusIn struct{}

// FocusOut is emitted when the window loses keyboard focus.
type FocusOut struct{}

// CloseRequested is emitted when the window manager asks the window to
// close. The pump stops right after delivering it.
type CloseRequested struct{}

func (KeyDown) event()         {}
func (KeyUp) event()           {}
func (TextInput) event()       {}
func (Resize) event()          {}
func (Move) event()            {}
func (MouseButtonDown) event() {}
func (MouseButtonUp) event()   {}
func (MouseMotion) event()     {}
func (Scroll) event()          {}
func (MouseEnter) event()      {}
func (MouseLeave) event()      {}
func (FocusIn) event()         {}
func (FocusOut) event()        {}
func (CloseRequested) event()  {}

func (e KeyDown) String() string {
	if e.Repeat {
		return fmt.Sprintf("KeyDown{%s %s repeat}", e.Key, e.Modifiers)
	}
	return fmt.Sprintf("KeyDown{%s %s}", e.Key, e.Modifiers)
}

func (e KeyUp) String() string { return fmt.Sprintf("KeyUp{%s %s}", e.Key, e.Modifiers) }

func (e TextInput) String() string { return fmt.Sprintf("TextInput{%q}", e.Text) }

func (e Resize) String() string {
	return fmt.Sprintf("Resize{%gx%g dip, %dx%d px}", e.Size.X, e.Size.Y, e.Pixels.X, e.Pixels.Y)
}

func (e Move) String() string { return fmt.Sprintf("Move{%d,%d}", e.Position.X, e.Position.Y) }

func (e MouseButtonDown) String() string {
	return fmt.Sprintf("MouseButtonDown{%s at %g,%g}", e.Button, e.Position.X, e.Position.Y)
}

func (e MouseButtonUp) String() string {
	return fmt.Sprintf("MouseButtonUp{%s at %g,%g}", e.Button, e.Position.X, e.Position.Y)
}

func (e MouseMotion) String() string {
	return fmt.Sprintf("MouseMotion{%g,%g}", e.Position.X, e.Position.Y)
}

func (e Scroll) String() string { return fmt.Sprintf("Scroll{dx=%g dy=%g}", e.DX, e.DY) }

func (e MouseEnter) String() string {
	return fmt.Sprintf("MouseEnter{%g,%g}", e.Position.X, e.Position.Y)
}

func (MouseLeave) String() string     { return "MouseLeave{}" }
func (FocusIn) String() string        { return "FocusIn{}" }
func (FocusOut) String() string       { return "FocusOut{}" }
func (CloseRequested) String() string { return "CloseRequested{}" }
