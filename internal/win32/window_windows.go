//go:build windows

package win32

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/1broseidon/nativewin/internal/geom"
	"github.com/1broseidon/nativewin/internal/ids"
	"github.com/1broseidon/nativewin/internal/input"
	"github.com/1broseidon/nativewin/internal/keymap"
	"github.com/1broseidon/nativewin/internal/logging"
	"github.com/1broseidon/nativewin/internal/platform"
	"github.com/1broseidon/nativewin/internal/pump"
	"github.com/1broseidon/nativewin/internal/style"
	"github.com/1broseidon/nativewin/internal/unicode"
	"github.com/1broseidon/nativewin/internal/units"
)

// joinTimeout bounds how long Close waits for a listener that is still
// running on the pump thread.
const joinTimeout = 2 * time.Second

const exStyle = wsExAppWindow | wsExWindowEdge

// Handle is the value returned by NativeHandle.
type Handle struct {
	HWND windows.Handle
}

var class struct {
	once     sync.Once
	err      error
	instance windows.Handle
	atom     uint16
}

var (
	// windowsByHandle maps live HWNDs to their *Window for the window
	// procedure.
	windowsByHandle sync.Map
	// creating maps the CreateWindowEx parameter to the *Window being
	// created, until WM_NCCREATE records its HWND.
	creating sync.Map
)

// event is one entry produced by the message loop.
type event struct {
	ev   input.Event
	wake bool
}

// Window is a top-level Win32 window. The HWND is created, pumped and
// destroyed on the event pump's locked OS thread.
type Window struct {
	log  *slog.Logger
	key  ids.ID
	hwnd windows.Handle

	units     units.Converter
	tr        *translator
	pump      *pump.Manager[event]
	listeners input.Listeners

	// pending is filled by the window procedure and drained by Next. Both
	// run on the pump thread.
	pending []input.Event

	mu         sync.Mutex
	flags      style.Flags
	size       geom.Size[geom.Pixels]
	bounds     *geom.MinMax[geom.Pixels]
	fullscreen bool
	saved      windowPlacement
	savedStyle uintptr

	closeOnce sync.Once
}

var _ platform.Implementation = (*Window)(nil)

// Open creates the window on a new pump thread and shows it. On failure
// the error is a *platform.OpenError naming the failed step.
func Open(p platform.Params) (*Window, error) {
	w := &Window{
		key:   ids.Next(),
		flags: p.Style,
		tr:    &translator{},
	}
	w.log = logging.L().With("backend", "win32", "window", uint64(w.key))

	var parent windows.Handle
	if pw, ok := p.Parent.(*Window); ok && pw != nil {
		parent = pw.hwnd
	}

	w.pump = pump.New[event](&source{w: w}, w.handle, pump.Options[event]{
		Name:       fmt.Sprintf("win32:%d", w.key),
		Filter:     w.consume,
		LockThread: true,
		Setup:      func() error { return w.create(p, parent) },
		Teardown:   w.destroy,
	})
	if err := w.pump.Start(); err != nil {
		var oe *platform.OpenError
		if errors.As(err, &oe) {
			return nil, err
		}
		return nil, platform.Fail("start event pump", err)
	}

	w.log.Info("window opened", "size", w.size, "dpi", w.units.DPI(), "style", p.Style)
	return w, nil
}

func registerClass() error {
	class.once.Do(func() {
		setProcessDPIAware()
		inst, err := getModuleHandle()
		if err != nil {
			class.err = err
			return
		}
		name, err := windows.UTF16PtrFromString("NativewinWindow")
		if err != nil {
			class.err = err
			return
		}
		wc := wndClassEx{
			Style:         csHRedraw | csVRedraw | csOwnDC,
			LpfnWndProc:   windows.NewCallback(windowProc),
			HInstance:     inst,
			HCursor:       loadCursor(idcArrow),
			LpszClassName: name,
		}
		wc.CbSize = uint32(unsafe.Sizeof(wc))
		class.atom, class.err = registerClassEx(&wc)
		class.instance = inst
	})
	return class.err
}

// create runs on the pump thread.
func (w *Window) create(p platform.Params, parent windows.Handle) error {
	if err := registerClass(); err != nil {
		return platform.Fail("register class", err)
	}
	title, err := unicode.ToUTF16(p.Title)
	if err != nil {
		return platform.Fail("encode title", err)
	}

	dpi := p.DPI
	if dpi <= 0 {
		dpi = systemDPI()
	}
	w.units = units.NewConverter(dpi)
	w.tr.units = w.units
	w.size = w.units.SizeToPixels(p.Size)
	w.tr.size = w.size
	if p.MinMax != nil {
		b := w.units.BoundsToPixels(*p.MinMax)
		w.bounds = &b
	}

	ws := style.Win32Style(p.Style, parent != 0)
	visible := ws&style.WSVisible != 0
	ws &^= style.WSVisible

	outer := outerSize(w.size, ws)
	work := primaryMonitor().WorkArea
	pos := toRect(work).Place(p.Position, outer)

	creating.Store(uintptr(w.key), w)
	defer creating.Delete(uintptr(w.key))

	hwnd, err := createWindowEx(exStyle, class.atom, &title[0], ws,
		int32(pos.X), int32(pos.Y), int32(outer.X), int32(outer.Y),
		parent, class.instance, uintptr(w.key))
	if err != nil {
		return platform.Fail("create window", err)
	}
	w.hwnd = hwnd
	windowsByHandle.Store(hwnd, w)

	if visible {
		showWindow(hwnd, style.ShowCommand(p.State, p.Style))
		setForegroundWindow(hwnd)
	}
	return nil
}

// destroy runs on the pump thread after the loop exits.
func (w *Window) destroy() {
	destroyWindow(w.hwnd)
	windowsByHandle.Delete(w.hwnd)
	w.pending = nil
}

func outerSize(client geom.Size[geom.Pixels], ws uint32) geom.Size[geom.Pixels] {
	r := rect{Right: int32(client.X), Bottom: int32(client.Y)}
	adjustWindowRectEx(&r, ws, exStyle)
	return geom.V(geom.Pixels(r.Right-r.Left), geom.Pixels(r.Bottom-r.Top))
}

func toRect(r rect) geom.Rect {
	return geom.Rect{X: int(r.Left), Y: int(r.Top), Width: int(r.Right - r.Left), Height: int(r.Bottom - r.Top)}
}

// createStruct is the leading part of CREATESTRUCTW.
type createStruct struct {
	CreateParams uintptr
}

func windowProc(hwnd windows.Handle, msg uint32, wParam, lParam uintptr) uintptr {
	if msg == wmNCCreate {
		cs := (*createStruct)(unsafe.Pointer(lParam))
		if v, ok := creating.Load(cs.CreateParams); ok {
			windowsByHandle.Store(hwnd, v)
		}
	}
	v, ok := windowsByHandle.Load(hwnd)
	if !ok {
		return defWindowProc(hwnd, msg, wParam, lParam)
	}
	w := v.(*Window)

	switch msg {
	case wmGetMinMaxInfo:
		w.minMaxInfo(hwnd, (*minMaxInfo)(unsafe.Pointer(lParam)))
		return 0
	}

	evs := w.tr.translate(message{msg: msg, wParam: wParam, lParam: lParam}, modifiers(getKeyState))
	for _, ev := range evs {
		if _, ok := ev.(input.MouseEnter); ok {
			trackMouseLeave(hwnd)
		}
	}
	w.pending = append(w.pending, evs...)

	switch msg {
	case wmClose:
		// Closing is the application's decision; the pump stops after
		// CloseRequested reaches the listeners.
		return 0
	case wmChar:
		return 0
	}
	return defWindowProc(hwnd, msg, wParam, lParam)
}

// minMaxInfo applies the resize bounds. Without bounds the window is
// pinned to its size.
func (w *Window) minMaxInfo(hwnd windows.Handle, mm *minMaxInfo) {
	w.mu.Lock()
	lo, hi := w.size, w.size
	if w.bounds != nil && w.flags.Has(style.Resizable) {
		lo, hi = w.bounds.Min, w.bounds.Max
	}
	fullscreen := w.fullscreen
	w.mu.Unlock()
	if fullscreen {
		return
	}

	ws := uint32(getWindowLong(hwnd, gwlStyle))
	lo, hi = outerSize(lo, ws), outerSize(hi, ws)
	mm.PtMinTrackSize = point{X: int32(lo.X), Y: int32(lo.Y)}
	mm.PtMaxTrackSize = point{X: int32(hi.X), Y: int32(hi.Y)}
}

// consume swallows wake-ups. Input-method composition is handled by
// TranslateMessage before WM_CHAR is produced.
func (w *Window) consume(ev event) bool {
	return ev.wake
}

func (w *Window) handle(ev event) {
	w.log.Debug("event", "event", ev.ev)

	if r, ok := ev.ev.(input.Resize); ok {
		w.mu.Lock()
		w.size = r.Pixels
		w.mu.Unlock()
	}
	w.listeners.Dispatch(ev.ev)

	if _, ok := ev.ev.(input.CloseRequested); ok {
		w.log.Info("close requested")
		w.pump.Stop()
	}
}

func (w *Window) Title() (string, error) {
	return unicode.FromUTF16(getWindowText(w.hwnd)), nil
}

func (w *Window) SetTitle(title string) error {
	buf, err := unicode.ToUTF16(title)
	if err != nil {
		return err
	}
	return setWindowText(w.hwnd, &buf[0])
}

// Position returns the top-left corner of the client area in screen
// pixels.
func (w *Window) Position() (geom.Point[geom.Pixels], error) {
	var p point
	clientToScreen(w.hwnd, &p)
	return geom.V(geom.Pixels(p.X), geom.Pixels(p.Y)), nil
}

// SetPosition moves the window so that its client area starts at p.
func (w *Window) SetPosition(p geom.Point[geom.Pixels]) error {
	var origin point
	clientToScreen(w.hwnd, &origin)
	frame := getWindowRect(w.hwnd)
	dx, dy := origin.X-frame.Left, origin.Y-frame.Top
	return setWindowPos(w.hwnd, int32(p.X)-dx, int32(p.Y)-dy, 0, 0, swpNoSize|swpNoZOrder)
}

// Size returns the last known client size.
func (w *Window) Size() geom.Size[geom.Dip] {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.units.SizeToDip(w.size)
}

func (w *Window) SetSize(s geom.Size[geom.Dip]) error {
	px := w.units.SizeToPixels(s)
	if !px.Positive() {
		return fmt.Errorf("invalid window size %vx%v", s.X, s.Y)
	}
	w.mu.Lock()
	w.size = px
	w.mu.Unlock()

	outer := outerSize(px, uint32(getWindowLong(w.hwnd, gwlStyle)))
	return setWindowPos(w.hwnd, 0, 0, int32(outer.X), int32(outer.Y), swpNoMove|swpNoZOrder)
}

func (w *Window) MinMaxSize() (geom.MinMax[geom.Dip], bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.bounds == nil {
		return geom.Fixed(w.units.SizeToDip(w.size)), false
	}
	return w.units.BoundsToDip(*w.bounds), true
}

// SetMinMaxSize replaces the resize bounds, resizing the window when its
// current size falls outside them.
func (w *Window) SetMinMaxSize(b geom.MinMax[geom.Dip]) error {
	if !b.Valid() {
		return fmt.Errorf("min size %v exceeds max size %v", b.Min, b.Max)
	}
	px := w.units.BoundsToPixels(b)

	w.mu.Lock()
	w.bounds = &px
	clamped := geom.V(
		min(max(w.size.X, px.Min.X), px.Max.X),
		min(max(w.size.Y, px.Min.Y), px.Max.Y),
	)
	resize := clamped != w.size
	w.mu.Unlock()

	if resize {
		return w.SetSize(w.units.SizeToDip(clamped))
	}
	return nil
}

// ToggleFullscreen swaps the frame for a borderless popup covering the
// monitor, and back.
func (w *Window) ToggleFullscreen() (bool, error) {
	w.mu.Lock()
	on := !w.fullscreen
	w.fullscreen = on
	w.mu.Unlock()

	if on {
		saved := getWindowPlacement(w.hwnd)
		savedStyle := getWindowLong(w.hwnd, gwlStyle)
		w.mu.Lock()
		w.saved, w.savedStyle = saved, savedStyle
		w.mu.Unlock()

		setWindowLong(w.hwnd, gwlStyle, uintptr(style.WSPopup|style.WSVisible))
		mon := monitorForWindow(w.hwnd).Monitor
		err := setWindowPos(w.hwnd, mon.Left, mon.Top, mon.Right-mon.Left, mon.Bottom-mon.Top,
			swpNoOwnerZOrder|swpFrameChanged)
		return true, err
	}

	w.mu.Lock()
	saved, savedStyle := w.saved, w.savedStyle
	w.mu.Unlock()
	setWindowLong(w.hwnd, gwlStyle, savedStyle)
	setWindowPlacement(w.hwnd, &saved)
	err := setWindowPos(w.hwnd, 0, 0, 0, 0,
		swpNoOwnerZOrder|swpFrameChanged|swpNoMove|swpNoSize|swpNoZOrder)
	return false, err
}

// SetState minimizes, maximizes or restores the window. An invisible
// window becomes visible.
func (w *Window) SetState(s style.State) error {
	w.mu.Lock()
	flags := w.flags &^ style.Invisible
	w.mu.Unlock()
	showWindow(w.hwnd, style.ShowCommand(s, flags))
	return nil
}

func (w *Window) IsOpen() bool {
	return w.pump.Running()
}

func (w *Window) IsKeyDown(k input.KeyboardKey) bool {
	vk, ok := keymap.Win32Keys.Native(k)
	if !ok {
		return false
	}
	return getAsyncKeyState(int32(vk))
}

func (w *Window) IsMouseButtonDown(b input.MouseButton) bool {
	vk, ok := keymap.Win32Buttons.Native(b)
	if !ok {
		return false
	}
	return getAsyncKeyState(int32(vk))
}

func (w *Window) NativeHandle() any { return Handle{HWND: w.hwnd} }

func (w *Window) DPI() float64 { return w.units.DPI() }

func (w *Window) Listeners() *input.Listeners { return &w.listeners }

func (w *Window) Done() <-chan struct{} { return w.pump.Done() }

// Close stops the pump; the pump thread destroys the window on its way
// out.
func (w *Window) Close() error {
	w.closeOnce.Do(func() {
		w.pump.Stop()
		if err := w.pump.Join(joinTimeout); err != nil {
			w.log.Warn("event pump did not exit", "error", err)
		}
		w.log.Info("window closed")
	})
	return nil
}
