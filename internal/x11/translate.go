package x11

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/nativewin/internal/geom"
	"github.com/1broseidon/nativewin/internal/input"
	"github.com/1broseidon/nativewin/internal/keymap"
	"github.com/1broseidon/nativewin/internal/units"
)

// nativeEvent is one entry read from the X event queue. repeat marks a key
// press that the server generated through autorepeat.
type nativeEvent struct {
	ev     xgb.Event
	repeat bool
}

// translator turns core protocol events for one window into portable
// events. It runs only on the pump goroutine and keeps the last geometry
// so unchanged ConfigureNotify events are not reported.
type translator struct {
	window       xproto.Window
	units        units.Converter
	mods         modMasks
	keysym       keysymLookup
	wmProtocols  xproto.Atom
	deleteWindow xproto.Atom

	size geom.Size[geom.Pixels]
	pos  geom.Point[geom.Pixels]
}

func (t *translator) translate(ne nativeEvent) []input.Event {
	switch ev := ne.ev.(type) {
	case xproto.ConfigureNotifyEvent:
		return t.configure(ev)

	case xproto.ClientMessageEvent:
		if ev.Format == 32 && ev.Type == t.wmProtocols && len(ev.Data.Data32) > 0 &&
			xproto.Atom(ev.Data.Data32[0]) == t.deleteWindow {
			return []input.Event{input.CloseRequested{}}
		}

	case xproto.KeyPressEvent:
		return t.keyPress(ev, ne.repeat)

	case xproto.KeyReleaseEvent:
		ks := t.keysym(ev.Detail, 0)
		key, _ := keymap.X11Keys.Portable(uint32(ks))
		return []input.Event{input.KeyUp{Key: key, Native: uint32(ks), Modifiers: t.mods.modifiers(ev.State)}}

	case xproto.ButtonPressEvent:
		return t.button(xproto.ButtonReleaseEvent(ev), true)

	case xproto.ButtonReleaseEvent:
		return t.button(ev, false)

	case xproto.MotionNotifyEvent:
		return []input.Event{input.MouseMotion{
			Position:  t.point(ev.EventX, ev.EventY),
			Modifiers: t.mods.modifiers(ev.State),
		}}

	case xproto.EnterNotifyEvent:
		return []input.Event{input.MouseEnter{Position: t.point(ev.EventX, ev.EventY)}}

	case xproto.LeaveNotifyEvent:
		return []input.Event{input.MouseLeave{}}

	case xproto.FocusInEvent:
		if ev.Detail != xproto.NotifyDetailPointer {
			return []input.Event{input.FocusIn{}}
		}

	case xproto.FocusOutEvent:
		if ev.Detail != xproto.NotifyDetailPointer {
			return []input.Event{input.FocusOut{}}
		}
	}
	return nil
}

func (t *translator) configure(ev xproto.ConfigureNotifyEvent) []input.Event {
	if ev.Window != t.window {
		return nil
	}
	var out []input.Event

	size := geom.V(geom.Pixels(ev.Width), geom.Pixels(ev.Height))
	if size != t.size {
		t.size = size
		out = append(out, input.Resize{Size: t.units.SizeToDip(size), Pixels: size})
	}
	pos := geom.V(geom.Pixels(ev.X), geom.Pixels(ev.Y))
	if pos != t.pos {
		t.pos = pos
		out = append(out, input.Move{Position: pos})
	}
	return out
}

func (t *translator) keyPress(ev xproto.KeyPressEvent, repeat bool) []input.Event {
	mods := t.mods.modifiers(ev.State)
	ks := t.keysym(ev.Detail, 0)
	key, _ := keymap.X11Keys.Portable(uint32(ks))

	out := []input.Event{input.KeyDown{Key: key, Native: uint32(ks), Modifiers: mods, Repeat: repeat}}

	// Control and Alt chords are shortcuts, not text.
	if mods.Has(input.ModControl) || mods.Has(input.ModAlt) {
		return out
	}
	if r := keysymRune(textKeysym(t.keysym, ev.Detail, mods)); r != 0 {
		out = append(out, input.TextInput{Text: string(r)})
	}
	return out
}

func (t *translator) button(ev xproto.ButtonReleaseEvent, press bool) []input.Event {
	pos := t.point(ev.EventX, ev.EventY)
	mods := t.mods.modifiers(ev.State)

	if dx, dy, ok := wheelDelta(ev.Detail); ok {
		if !press {
			return nil
		}
		return []input.Event{input.Scroll{DX: dx, DY: dy, Position: pos, Modifiers: mods}}
	}

	button, ok := keymap.X11Buttons.Portable(uint32(ev.Detail))
	if !ok {
		return nil
	}
	if press {
		return []input.Event{input.MouseButtonDown{Button: button, Position: pos, Modifiers: mods}}
	}
	return []input.Event{input.MouseButtonUp{Button: button, Position: pos, Modifiers: mods}}
}

// wheelDelta decodes the core protocol wheel buttons 4 to 7.
func wheelDelta(b xproto.Button) (dx, dy float64, ok bool) {
	switch b {
	case 4:
		return 0, 1, true
	case 5:
		return 0, -1, true
	case 6:
		return -1, 0, true
	case 7:
		return 1, 0, true
	}
	return 0, 0, false
}

func (t *translator) point(x, y int16) geom.Point[geom.Dip] {
	return geom.V(t.units.ToDip(geom.Pixels(x)), t.units.ToDip(geom.Pixels(y)))
}
