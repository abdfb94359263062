// Package win32 is the Windows backend. The window and its message loop
// live on one locked OS thread owned by the event pump; this file holds
// the message decoding, which does not touch the system and builds on
// every platform.
package win32

import (
	"unicode/utf16"

	"github.com/1broseidon/nativewin/internal/geom"
	"github.com/1broseidon/nativewin/internal/input"
	"github.com/1broseidon/nativewin/internal/keymap"
	"github.com/1broseidon/nativewin/internal/units"
)

// Window messages from winuser.h.
const (
	wmMove          = 0x0003
	wmSize          = 0x0005
	wmSetFocus      = 0x0007
	wmKillFocus     = 0x0008
	wmClose         = 0x0010
	wmGetMinMaxInfo = 0x0024
	wmKeyDown       = 0x0100
	wmKeyUp         = 0x0101
	wmChar          = 0x0102
	wmSysKeyDown    = 0x0104
	wmSysKeyUp      = 0x0105
	wmMouseMove     = 0x0200
	wmLButtonDown   = 0x0201
	wmLButtonUp     = 0x0202
	wmRButtonDown   = 0x0204
	wmRButtonUp     = 0x0205
	wmMButtonDown   = 0x0207
	wmMButtonUp     = 0x0208
	wmMouseWheel    = 0x020a
	wmXButtonDown   = 0x020b
	wmXButtonUp     = 0x020c
	wmMouseHWheel   = 0x020e
	wmMouseLeave    = 0x02a3
	wmApp           = 0x8000

	// wmWake is posted by Wake to unblock GetMessage.
	wmWake = wmApp + 1
)

const (
	sizeMinimized = 1
	wheelDelta    = 120

	vkReturn  = 0x0d
	vkShift   = 0x10
	vkControl = 0x11
	vkMenu    = 0x12
	vkLShift  = 0xa0
	vkRShift  = 0xa1
	vkLCtrl   = 0xa2
	vkRCtrl   = 0xa3
	vkLMenu   = 0xa4
	vkRMenu   = 0xa5

	vkCapital = 0x14
	vkLWin    = 0x5b
	vkRWin    = 0x5c
	vkNumLock = 0x90

	vkLButton  = 0x01
	vkRButton  = 0x02
	vkMButton  = 0x04
	vkXButton1 = 0x05
	vkXButton2 = 0x06

	scanRShift = 0x36
)

// message is one window message as seen by the window procedure.
type message struct {
	msg    uint32
	wParam uintptr
	lParam uintptr
}

// translator turns window messages into portable events. It runs only on
// the pump thread. pos is the client-area origin in screen pixels, used
// to map wheel coordinates, which arrive in screen space.
type translator struct {
	units units.Converter

	size geom.Size[geom.Pixels]
	pos  geom.Point[geom.Pixels]

	// tracking is set while a TrackMouseEvent request is outstanding.
	tracking bool
	// highSurrogate holds the first half of a UTF-16 pair from WM_CHAR.
	highSurrogate uint16
}

func (t *translator) translate(m message, mods input.Modifiers) []input.Event {
	switch m.msg {
	case wmClose:
		return []input.Event{input.CloseRequested{}}

	case wmSize:
		if m.wParam == sizeMinimized {
			return nil
		}
		size := geom.V(geom.Pixels(loword(m.lParam)), geom.Pixels(hiword(m.lParam)))
		if size == t.size {
			return nil
		}
		t.size = size
		return []input.Event{input.Resize{Size: t.units.SizeToDip(size), Pixels: size}}

	case wmMove:
		x, y := lparamPoint(m.lParam)
		pos := geom.V(geom.Pixels(x), geom.Pixels(y))
		if pos == t.pos {
			return nil
		}
		t.pos = pos
		return []input.Event{input.Move{Position: pos}}

	case wmKeyDown, wmSysKeyDown:
		vk, key := resolveKey(uint32(m.wParam), m.lParam)
		repeat := m.lParam&(1<<30) != 0
		return []input.Event{input.KeyDown{Key: key, Native: vk, Modifiers: mods, Repeat: repeat}}

	case wmKeyUp, wmSysKeyUp:
		vk, key := resolveKey(uint32(m.wParam), m.lParam)
		return []input.Event{input.KeyUp{Key: key, Native: vk, Modifiers: mods}}

	case wmChar:
		if text := t.char(uint16(m.wParam)); text != "" {
			return []input.Event{input.TextInput{Text: text}}
		}

	case wmLButtonDown, wmRButtonDown, wmMButtonDown, wmXButtonDown,
		wmLButtonUp, wmRButtonUp, wmMButtonUp, wmXButtonUp:
		return t.button(m, mods)

	case wmMouseMove:
		pos := t.clientPoint(m.lParam)
		out := make([]input.Event, 0, 2)
		if !t.tracking {
			t.tracking = true
			out = append(out, input.MouseEnter{Position: pos})
		}
		return append(out, input.MouseMotion{Position: pos, Modifiers: mods})

	case wmMouseLeave:
		t.tracking = false
		return []input.Event{input.MouseLeave{}}

	case wmMouseWheel, wmMouseHWheel:
		notches := float64(int16(hiword(m.wParam))) / wheelDelta
		x, y := lparamPoint(m.lParam)
		local := geom.V(geom.Pixels(x), geom.Pixels(y)).Sub(t.pos)
		ev := input.Scroll{
			Position:  geom.V(t.units.ToDip(local.X), t.units.ToDip(local.Y)),
			Modifiers: mods,
		}
		if m.msg == wmMouseWheel {
			ev.DY = notches
		} else {
			ev.DX = notches
		}
		return []input.Event{ev}

	case wmSetFocus:
		return []input.Event{input.FocusIn{}}

	case wmKillFocus:
		return []input.Event{input.FocusOut{}}
	}
	return nil
}

func (t *translator) button(m message, mods input.Modifiers) []input.Event {
	var vk uint32
	press := false
	switch m.msg {
	case wmLButtonDown, wmLButtonUp:
		vk, press = vkLButton, m.msg == wmLButtonDown
	case wmRButtonDown, wmRButtonUp:
		vk, press = vkRButton, m.msg == wmRButtonDown
	case wmMButtonDown, wmMButtonUp:
		vk, press = vkMButton, m.msg == wmMButtonDown
	case wmXButtonDown, wmXButtonUp:
		vk, press = vkXButton1, m.msg == wmXButtonDown
		if hiword(m.wParam) == 2 {
			vk = vkXButton2
		}
	}
	button, ok := keymap.Win32Buttons.Portable(vk)
	if !ok {
		return nil
	}
	pos := t.clientPoint(m.lParam)
	if press {
		return []input.Event{input.MouseButtonDown{Button: button, Position: pos, Modifiers: mods}}
	}
	return []input.Event{input.MouseButtonUp{Button: button, Position: pos, Modifiers: mods}}
}

// char decodes one UTF-16 unit from WM_CHAR. Control characters are not
// text.
func (t *translator) char(u uint16) string {
	r := rune(u)
	switch {
	case utf16.IsSurrogate(r) && u < 0xdc00:
		t.highSurrogate = u
		return ""
	case utf16.IsSurrogate(r):
		high := t.highSurrogate
		t.highSurrogate = 0
		if high == 0 {
			return ""
		}
		r = utf16.DecodeRune(rune(high), r)
	default:
		t.highSurrogate = 0
	}
	if r < 0x20 || r == 0x7f {
		return ""
	}
	return string(r)
}

func (t *translator) clientPoint(lParam uintptr) geom.Point[geom.Dip] {
	x, y := lparamPoint(lParam)
	return geom.V(t.units.ToDip(geom.Pixels(x)), t.units.ToDip(geom.Pixels(y)))
}

// resolveKey replaces the generic modifier virtual keys with their
// left/right variants using the scan code and extended-key bit, and maps
// the keypad Enter, which shares VK_RETURN.
func resolveKey(vk uint32, lParam uintptr) (uint32, input.KeyboardKey) {
	extended := lParam&(1<<24) != 0
	switch vk {
	case vkShift:
		vk = vkLShift
		if (lParam>>16)&0xff == scanRShift {
			vk = vkRShift
		}
	case vkControl:
		vk = vkLCtrl
		if extended {
			vk = vkRCtrl
		}
	case vkMenu:
		vk = vkLMenu
		if extended {
			vk = vkRMenu
		}
	case vkReturn:
		if extended {
			return vk, input.KeyNumpadEnter
		}
	}
	key, _ := keymap.Win32Keys.Portable(vk)
	return vk, key
}

// modifiers reads the modifier state through a GetKeyState-like function:
// the high bit means pressed, the low bit means toggled on.
func modifiers(keyState func(vk int32) int16) input.Modifiers {
	var m input.Modifiers
	down := func(vk int32) bool { return keyState(vk) < 0 }
	if down(vkShift) {
		m |= input.ModShift
	}
	if down(vkControl) {
		m |= input.ModControl
	}
	if down(vkMenu) {
		m |= input.ModAlt
	}
	if down(vkLWin) || down(vkRWin) {
		m |= input.ModSuper
	}
	if keyState(vkCapital)&1 != 0 {
		m |= input.ModCapsLock
	}
	if keyState(vkNumLock)&1 != 0 {
		m |= input.ModNumLock
	}
	return m
}

func loword(v uintptr) uint16 { return uint16(v & 0xffff) }
func hiword(v uintptr) uint16 { return uint16((v >> 16) & 0xffff) }

// lparamPoint decodes signed client or screen coordinates.
func lparamPoint(lParam uintptr) (x, y int) {
	return int(int16(loword(lParam))), int(int16(hiword(lParam)))
}
