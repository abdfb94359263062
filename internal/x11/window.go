package x11

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/motif"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/1broseidon/nativewin/internal/geom"
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
// running on the pump goroutine.
const joinTimeout = 2 * time.Second

const eventMask = xproto.EventMaskKeyPress |
	xproto.EventMaskKeyRelease |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskEnterWindow |
	xproto.EventMaskLeaveWindow |
	xproto.EventMaskPointerMotion |
	xproto.EventMaskExposure |
	xproto.EventMaskStructureNotify |
	xproto.EventMaskFocusChange

// Handle is the value returned by NativeHandle. A rendering context needs
// both the connection and the window id.
type Handle struct {
	XUtil  *xgbutil.XUtil
	Window xproto.Window
}

// Window is an X11 top-level window with its own connection and event
// pump.
type Window struct {
	log  *slog.Logger
	conn *Connection
	id   xproto.Window

	// Released in field order, after the pump has been joined.
	xwin  owned[*xwindow.Window]
	cmap  owned[xproto.Colormap]
	xconn owned[*Connection]

	units     units.Converter
	src       *source
	tr        *translator
	pump      *pump.Manager[nativeEvent]
	listeners input.Listeners

	// kbMu guards the keybind maps, which the pump reloads on
	// MappingNotify.
	kbMu sync.RWMutex

	mu         sync.Mutex
	flags      style.Flags
	size       geom.Size[geom.Pixels]
	bounds     *geom.MinMax[geom.Pixels]
	fullscreen bool

	closeOnce sync.Once
}

var _ platform.Implementation = (*Window)(nil)

// Open connects to the X server, creates and maps the window and starts
// its event pump. On failure everything acquired so far is released and
// the error is a *platform.OpenError naming the failed step.
func Open(p platform.Params) (*Window, error) {
	conn, err := Connect(p.Display)
	if err != nil {
		return nil, platform.Fail("connect", err)
	}

	w := &Window{
		conn:  conn,
		xconn: own(conn, (*Connection).Close),
		flags: p.Style,
	}
	ok := false
	defer func() {
		if ok {
			return
		}
		var (
			stop func() error
			done <-chan struct{}
		)
		if w.pump != nil {
			stop, done = w.stopPump, w.pump.Done()
		}
		teardown(stop, done, &w.xwin, &w.cmap, &w.xconn)
	}()

	dpi := p.DPI
	if dpi <= 0 {
		dpi = conn.DPI()
	}
	w.units = units.NewConverter(dpi)
	w.size = w.units.SizeToPixels(p.Size)
	if p.MinMax != nil {
		b := w.units.BoundsToPixels(*p.MinMax)
		w.bounds = &b
	}
	pos := conn.UsableBounds().Place(p.Position, w.size)

	if err := w.create(pos); err != nil {
		return nil, err
	}
	w.log = logging.L().With("backend", "x11", "window", uint32(w.id))

	if err := w.setProperties(p, pos); err != nil {
		return nil, err
	}
	if err := w.startPump(pos); err != nil {
		return nil, err
	}

	if !p.Style.Has(style.Invisible) {
		if err := xproto.MapWindowChecked(conn.XUtil.Conn(), w.id).Check(); err != nil {
			return nil, platform.Fail("map window", err)
		}
	}

	ok = true
	w.log.Info("window opened", "size", w.size, "position", pos, "dpi", dpi, "style", p.Style)
	return w, nil
}

func (w *Window) create(pos geom.Point[geom.Pixels]) error {
	xc := w.conn.XUtil.Conn()
	screen := w.conn.XUtil.Screen()

	cmap, err := xproto.NewColormapId(xc)
	if err != nil {
		return platform.Fail("create colormap", err)
	}
	if err := xproto.CreateColormapChecked(xc, xproto.ColormapAllocNone, cmap, w.conn.Root, screen.RootVisual).Check(); err != nil {
		return platform.Fail("create colormap", err)
	}
	w.cmap = own(cmap, func(c xproto.Colormap) { xproto.FreeColormap(xc, c) })

	xw, err := xwindow.Generate(w.conn.XUtil)
	if err != nil {
		return platform.Fail("create window", err)
	}
	// Value list order follows the bit positions of the mask (low to high).
	err = xw.CreateChecked(w.conn.Root,
		int(pos.X), int(pos.Y), int(w.size.X), int(w.size.Y),
		xproto.CwBackPixel|xproto.CwBorderPixel|xproto.CwEventMask|xproto.CwColormap,
		screen.BlackPixel, 0, eventMask, uint32(cmap),
	)
	if err != nil {
		return platform.Fail("create window", err)
	}
	w.xwin = own(xw, (*xwindow.Window).Destroy)
	w.id = xw.Id
	return nil
}

func (w *Window) setProperties(p platform.Params, pos geom.Point[geom.Pixels]) error {
	xu := w.conn.XUtil

	if err := icccm.WmProtocolsSet(xu, w.id, []string{"WM_DELETE_WINDOW"}); err != nil {
		return platform.Fail("set WM_PROTOCOLS", err)
	}

	// The remaining properties are hints; a window manager that rejects
	// them still leaves a usable window.
	warn := func(prop string, err error) {
		if err != nil {
			w.log.Warn("could not set window property", "property", prop, "error", err)
		}
	}

	warn("WM_CLASS", icccm.WmClassSet(xu, w.id, &icccm.WmClass{Instance: "nativewin", Class: "Nativewin"}))
	warn("_NET_WM_PID", ewmh.WmPidSet(xu, w.id, uint(os.Getpid())))
	warn("WM_NAME", w.SetTitle(p.Title))
	warn("_MOTIF_WM_HINTS", motif.WmHintsSet(xu, w.id, style.MotifHints(p.Style)))
	warn("WM_NORMAL_HINTS", w.writeNormalHints(&pos))

	if parent, ok := p.Parent.(*Window); ok && parent != nil {
		warn("WM_TRANSIENT_FOR", icccm.WmTransientForSet(xu, w.id, parent.id))
	}

	// Initial state is expressed through properties before mapping.
	hints := &icccm.Hints{
		Flags:        icccm.HintInput | icccm.HintState,
		Input:        1,
		InitialState: icccm.StateNormal,
	}
	switch p.State {
	case style.Minimized:
		hints.InitialState = icccm.StateIconic
	case style.Maximized:
		warn("_NET_WM_STATE", ewmh.WmStateSet(xu, w.id, style.StateAtoms(style.Maximized)))
	}
	warn("WM_HINTS", icccm.WmHintsSet(xu, w.id, hints))
	return nil
}

// writeNormalHints publishes WM_NORMAL_HINTS for the current size and
// bounds. pos is only set when creating the window.
func (w *Window) writeNormalHints(pos *geom.Point[geom.Pixels]) error {
	w.mu.Lock()
	nh := style.NormalHints(w.flags, w.size, w.bounds)
	w.mu.Unlock()

	if pos != nil {
		nh.Flags |= icccm.SizeHintUSPosition
		nh.X, nh.Y = int(pos.X), int(pos.Y)
	}
	return icccm.WmNormalHintsSet(w.conn.XUtil, w.id, nh)
}

func (w *Window) startPump(pos geom.Point[geom.Pixels]) error {
	protocols, err := w.conn.Atom("WM_PROTOCOLS")
	if err != nil {
		return platform.Fail("intern atoms", err)
	}
	deleteWindow, err := w.conn.Atom("WM_DELETE_WINDOW")
	if err != nil {
		return platform.Fail("intern atoms", err)
	}
	wake, err := w.conn.Atom(wakeAtomName)
	if err != nil {
		return platform.Fail("intern atoms", err)
	}

	w.src = &source{xu: w.conn.XUtil, window: w.id, wake: wake}
	w.tr = &translator{
		window:       w.id,
		units:        w.units,
		mods:         discoverModMasks(w.conn.XUtil),
		keysym:       w.lookupKeysym,
		wmProtocols:  protocols,
		deleteWindow: deleteWindow,
		size:         w.size,
		pos:          pos,
	}
	w.pump = pump.New[nativeEvent](w.src, w.handle, pump.Options[nativeEvent]{
		Name:   fmt.Sprintf("x11:%d", w.id),
		Filter: w.consume,
	})
	if err := w.pump.Start(); err != nil {
		return platform.Fail("start event pump", err)
	}
	return nil
}

// consume handles events that never reach listeners: wake-ups and
// keyboard mapping changes. The core protocol has no input method, so
// there is no composition stage to filter.
func (w *Window) consume(ne nativeEvent) bool {
	if w.src.isWake(ne) {
		return true
	}
	if mn, ok := ne.ev.(xproto.MappingNotifyEvent); ok {
		if mn.Request == xproto.MappingKeyboard || mn.Request == xproto.MappingModifier {
			w.kbMu.Lock()
			w.tr.mods = w.conn.refreshKeyboard()
			w.kbMu.Unlock()
		}
		return true
	}
	return false
}

func (w *Window) handle(ne nativeEvent) {
	// Every ConfigureNotify is authoritative for the cache, including one
	// that undoes a SetSize the window manager refused. The translator only
	// reports changes relative to the last server size.
	if cn, ok := ne.ev.(xproto.ConfigureNotifyEvent); ok && cn.Window == w.id {
		w.mu.Lock()
		w.size = geom.V(geom.Pixels(cn.Width), geom.Pixels(cn.Height))
		w.mu.Unlock()
	}

	for _, ev := range w.tr.translate(ne) {
		w.log.Debug("event", "event", ev)
		w.listeners.Dispatch(ev)

		if _, ok := ev.(input.CloseRequested); ok {
			w.log.Info("close requested")
			w.pump.Stop()
		}
	}
}

func (w *Window) lookupKeysym(code xproto.Keycode, col byte) xproto.Keysym {
	w.kbMu.RLock()
	defer w.kbMu.RUnlock()

	setup := w.conn.XUtil.Setup()
	keyMap := keybind.KeyMapGet(w.conn.XUtil)
	if keyMap == nil || code < setup.MinKeycode || code > setup.MaxKeycode || col >= keyMap.KeysymsPerKeycode {
		return 0
	}
	return keybind.KeysymGet(w.conn.XUtil, code, col)
}

// Title returns _NET_WM_NAME, falling back to the Latin-1 WM_NAME.
func (w *Window) Title() (string, error) {
	if name, err := ewmh.WmNameGet(w.conn.XUtil, w.id); err == nil {
		return name, nil
	}
	name, err := icccm.WmNameGet(w.conn.XUtil, w.id)
	if err != nil {
		return "", err
	}
	return unicode.FromLatin1(name), nil
}

// SetTitle writes both the UTF-8 EWMH name and the legacy WM_NAME.
func (w *Window) SetTitle(title string) error {
	errNet := ewmh.WmNameSet(w.conn.XUtil, w.id, title)
	errLegacy := icccm.WmNameSet(w.conn.XUtil, w.id, unicode.ToLatin1(title))
	return errors.Join(errNet, errLegacy)
}

// Position returns the top-left corner of the client area in root
// coordinates.
func (w *Window) Position() (geom.Point[geom.Pixels], error) {
	reply, err := xproto.TranslateCoordinates(w.conn.XUtil.Conn(), w.id, w.conn.Root, 0, 0).Reply()
	if err != nil {
		return geom.Point[geom.Pixels]{}, err
	}
	return geom.V(geom.Pixels(reply.DstX), geom.Pixels(reply.DstY)), nil
}

func (w *Window) SetPosition(p geom.Point[geom.Pixels]) error {
	return xproto.ConfigureWindowChecked(w.conn.XUtil.Conn(), w.id,
		xproto.ConfigWindowX|xproto.ConfigWindowY,
		[]uint32{uint32(int32(p.X)), uint32(int32(p.Y))},
	).Check()
}

// Size returns the last known client size. It reflects SetSize
// immediately and the server's size from each ConfigureNotify as the pump
// processes them.
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

	// A pinned window has min = max = size, so the hints move first.
	if err := w.writeNormalHints(nil); err != nil {
		w.log.Warn("could not update size hints", "error", err)
	}
	return xproto.ConfigureWindowChecked(w.conn.XUtil.Conn(), w.id,
		xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(px.X), uint32(px.Y)},
	).Check()
}

func (w *Window) MinMaxSize() (geom.MinMax[geom.Dip], bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.bounds == nil {
		return geom.Fixed(w.units.SizeToDip(w.size)), false
	}
	return w.units.BoundsToDip(*w.bounds), true
}

// SetMinMaxSize replaces the resize bounds, shrinking or growing the
// window when its current size falls outside them.
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

	if err := w.writeNormalHints(nil); err != nil {
		return err
	}
	if resize {
		return w.SetSize(w.units.SizeToDip(clamped))
	}
	return nil
}

// ToggleFullscreen flips _NET_WM_STATE_FULLSCREEN and returns the state
// requested.
func (w *Window) ToggleFullscreen() (bool, error) {
	w.mu.Lock()
	current := w.fullscreen
	w.mu.Unlock()
	if w.conn.hasWMState(w.id, style.AtomFullscreen) {
		current = true
	}

	action := style.ActionAdd
	if current {
		action = style.ActionRemove
	}
	if err := w.conn.changeWMState(w.id, action, style.AtomFullscreen); err != nil {
		return current, err
	}

	w.mu.Lock()
	w.fullscreen = !current
	w.mu.Unlock()
	return !current, nil
}

func (w *Window) SetState(s style.State) error {
	return w.conn.applyState(w.id, s)
}

func (w *Window) IsOpen() bool {
	return w.pump.Running()
}

// IsKeyDown queries the server keyboard state. Keys without an X11
// keysym report false.
func (w *Window) IsKeyDown(k input.KeyboardKey) bool {
	ks, ok := keymap.X11Keys.Native(k)
	if !ok {
		return false
	}
	w.kbMu.RLock()
	codes := keycodesFor(w.conn.XUtil, xproto.Keysym(ks))
	w.kbMu.RUnlock()
	if len(codes) == 0 {
		return false
	}

	reply, err := xproto.QueryKeymap(w.conn.XUtil.Conn()).Reply()
	if err != nil {
		return false
	}
	for _, code := range codes {
		if keyBitSet(reply.Keys, code) {
			return true
		}
	}
	return false
}

// IsMouseButtonDown queries the pointer state. The core protocol only
// reports buttons 1 to 5, so Back and Forward always read false.
func (w *Window) IsMouseButtonDown(b input.MouseButton) bool {
	code, ok := keymap.X11Buttons.Native(b)
	if !ok {
		return false
	}
	mask, ok := buttonMask(code)
	if !ok {
		return false
	}
	reply, err := xproto.QueryPointer(w.conn.XUtil.Conn(), w.id).Reply()
	if err != nil {
		return false
	}
	return reply.Mask&mask != 0
}

func (w *Window) NativeHandle() any {
	return Handle{XUtil: w.conn.XUtil, Window: w.id}
}

func (w *Window) DPI() float64 { return w.units.DPI() }

func (w *Window) Listeners() *input.Listeners { return &w.listeners }

func (w *Window) Done() <-chan struct{} { return w.pump.Done() }

// Close stops and joins the event pump, then destroys the window, frees
// the colormap and closes the connection. If the pump is still inside a
// listener after joinTimeout (or Close was called from one), the native
// resources are released when the pump goroutine exits.
func (w *Window) Close() error {
	w.closeOnce.Do(func() {
		teardown(func() error {
			err := w.stopPump()
			if err != nil {
				w.log.Warn("event pump did not exit; release deferred", "error", err)
			}
			return err
		}, w.pump.Done(), &w.xwin, &w.cmap, &w.xconn)
		w.log.Info("window closed")
	})
	return nil
}

func (w *Window) stopPump() error {
	w.pump.Stop()
	return w.pump.Join(joinTimeout)
}
