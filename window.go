package nativewin

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/1broseidon/nativewin/internal/geom"
	"github.com/1broseidon/nativewin/internal/ids"
	"github.com/1broseidon/nativewin/internal/input"
	"github.com/1broseidon/nativewin/internal/logging"
	"github.com/1broseidon/nativewin/internal/platform"
)

// opener creates the native window. Tests swap it for a fake.
var opener = openNative

// Window is an open native window. Methods are safe for concurrent use.
// After Close every method returns ErrClosed or a zero value.
type Window struct {
	id  WindowID
	log *slog.Logger

	mu   sync.RWMutex
	impl platform.Implementation
	// done outlives impl so Wait keeps working after Close.
	done <-chan struct{}
}

// Open validates p and opens a window. Native failures are returned as
// *OpenError.
func Open(p Parameters) (*Window, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	id := ids.Next()
	log := logging.L().With("window", id)

	impl, err := opener(p.native())
	if err != nil {
		log.Warn("open failed", "title", p.Title, "error", err)
		return nil, err
	}
	log.Info("window opened", "title", p.Title, "size", fmt.Sprintf("%gx%g", p.Size.X, p.Size.Y), "dpi", impl.DPI())
	return &Window{id: id, log: log, impl: impl, done: impl.Done()}, nil
}

func (w *Window) implementation() platform.Implementation {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.impl
}

// ID identifies the window in log output.
func (w *Window) ID() WindowID { return w.id }

func (w *Window) Title() (string, error) {
	impl := w.implementation()
	if impl == nil {
		return "", ErrClosed
	}
	return impl.Title()
}

func (w *Window) SetTitle(title string) error {
	impl := w.implementation()
	if impl == nil {
		return ErrClosed
	}
	return impl.SetTitle(title)
}

// Position returns the top-left corner of the client area in screen
// pixels.
func (w *Window) Position() (PixelPoint, error) {
	impl := w.implementation()
	if impl == nil {
		return PixelPoint{}, ErrClosed
	}
	return impl.Position()
}

// SetPosition moves the client area's top-left corner to p.
func (w *Window) SetPosition(p PixelPoint) error {
	impl := w.implementation()
	if impl == nil {
		return ErrClosed
	}
	return impl.SetPosition(p)
}

// Size returns the last known client size. It may lag a resize still in
// flight on the event goroutine.
func (w *Window) Size() Size {
	impl := w.implementation()
	if impl == nil {
		return Size{}
	}
	return impl.Size()
}

// SetSize resizes the client area. Without bounds the window is pinned to
// the new size.
func (w *Window) SetSize(s Size) error {
	impl := w.implementation()
	if impl == nil {
		return ErrClosed
	}
	if !positiveSize(s) {
		return invalid("size %gx%g must be positive", s.X, s.Y)
	}
	return impl.SetSize(s)
}

// MinMaxSize returns the resize bounds. A window without bounds reports
// its current size as both.
func (w *Window) MinMaxSize() MinMax {
	impl := w.implementation()
	if impl == nil {
		return MinMax{}
	}
	if bounds, ok := impl.MinMaxSize(); ok {
		return bounds
	}
	return geom.Fixed(impl.Size())
}

func (w *Window) MinSize() Size { return w.MinMaxSize().Min }

func (w *Window) MaxSize() Size { return w.MinMaxSize().Max }

func (w *Window) SetMinMaxSize(m MinMax) error {
	impl := w.implementation()
	if impl == nil {
		return ErrClosed
	}
	if err := validateBounds(m); err != nil {
		return err
	}
	return impl.SetMinMaxSize(m)
}

// SetMinSize keeps the current maximum. The result must still satisfy
// min <= max.
func (w *Window) SetMinSize(s Size) error {
	m := w.MinMaxSize()
	m.Min = s
	return w.SetMinMaxSize(m)
}

// SetMaxSize keeps the current minimum.
func (w *Window) SetMaxSize(s Size) error {
	m := w.MinMaxSize()
	m.Max = s
	return w.SetMinMaxSize(m)
}

// ToggleFullscreen switches between fullscreen and the previous geometry
// and returns the new state.
func (w *Window) ToggleFullscreen() (bool, error) {
	impl := w.implementation()
	if impl == nil {
		return false, ErrClosed
	}
	on, err := impl.ToggleFullscreen()
	if err == nil {
		w.log.Debug("fullscreen toggled", "fullscreen", on)
	}
	return on, err
}

// SetState minimizes, maximizes or restores the window.
func (w *Window) SetState(s State) error {
	impl := w.implementation()
	if impl == nil {
		return ErrClosed
	}
	switch s {
	case Restored, Minimized, Maximized:
	default:
		return invalid("unknown state %v", s)
	}
	return impl.SetState(s)
}

// IsOpen reports whether the event pump is still running. It turns false
// once the user closes the window, before Close is called.
func (w *Window) IsOpen() bool {
	impl := w.implementation()
	return impl != nil && impl.IsOpen()
}

// IsKeyDown reports whether k is held. Keys without a native mapping are
// never down.
func (w *Window) IsKeyDown(k KeyboardKey) bool {
	impl := w.implementation()
	return impl != nil && impl.IsKeyDown(k)
}

func (w *Window) IsMouseButtonDown(b MouseButton) bool {
	impl := w.implementation()
	return impl != nil && impl.IsMouseButtonDown(b)
}

// NativeHandle returns the backend handle for attaching a rendering
// surface: x11.Handle on Linux, win32.Handle on Windows.
func (w *Window) NativeHandle() any {
	impl := w.implementation()
	if impl == nil {
		return nil
	}
	return impl.NativeHandle()
}

// DPI is the dots per inch used for Dip conversion.
func (w *Window) DPI() float64 {
	impl := w.implementation()
	if impl == nil {
		return 0
	}
	return impl.DPI()
}

// Listen registers fn for every event. fn runs on the event goroutine and
// must not block. The returned id is 0 when the window is closed.
func (w *Window) Listen(fn Listener) ListenerID {
	impl := w.implementation()
	if impl == nil {
		return 0
	}
	return impl.Listeners().Add(fn)
}

// Unlisten removes a listener registered with Listen or On.
func (w *Window) Unlisten(id ListenerID) bool {
	impl := w.implementation()
	return impl != nil && impl.Listeners().Remove(id)
}

// On registers fn for events of type E only.
func On[E Event](w *Window, fn func(E)) ListenerID {
	impl := w.implementation()
	if impl == nil {
		return 0
	}
	return input.On(impl.Listeners(), fn)
}

// Wait blocks until the event pump stops or ctx ends.
func (w *Window) Wait(ctx context.Context) error {
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops the event pump and releases the native window. Calling it
// again returns ErrClosed.
func (w *Window) Close() error {
	w.mu.Lock()
	impl := w.impl
	w.impl = nil
	w.mu.Unlock()
	if impl == nil {
		return ErrClosed
	}
	err := impl.Close()
	w.log.Info("window closed")
	return err
}
