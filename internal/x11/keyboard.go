package x11

import (
	"unicode"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"

	"github.com/1broseidon/nativewin/internal/input"
)

// modMasks records which ModN bit each logical modifier is bound to on the
// current server. Alt, Super and NumLock move between Mod1..Mod5 depending
// on the keymap.
type modMasks struct {
	alt     uint16
	super   uint16
	numLock uint16
}

func discoverModMasks(xu *xgbutil.XUtil) modMasks {
	m := modMasks{
		alt:     modMaskForKeysym(xu, "Alt_L"),
		super:   modMaskForKeysym(xu, "Super_L"),
		numLock: modMaskForKeysym(xu, "Num_Lock"),
	}
	// Conventional bindings when the keymap does not say otherwise.
	if m.alt == 0 {
		m.alt = xproto.ModMask1
	}
	if m.super == 0 {
		m.super = xproto.ModMask4
	}
	if m.numLock == 0 {
		m.numLock = xproto.ModMask2
	}
	return m
}

func modMaskForKeysym(xu *xgbutil.XUtil, keysym string) uint16 {
	for _, keycode := range keybind.StrToKeycodes(xu, keysym) {
		if mask := keybind.ModGet(xu, keycode); mask != 0 {
			return mask
		}
	}
	return 0
}

// modifiers converts a core event state mask to portable modifiers.
func (m modMasks) modifiers(state uint16) input.Modifiers {
	var mods input.Modifiers
	if state&xproto.ModMaskShift != 0 {
		mods |= input.ModShift
	}
	if state&xproto.ModMaskControl != 0 {
		mods |= input.ModControl
	}
	if state&m.alt != 0 {
		mods |= input.ModAlt
	}
	if state&m.super != 0 {
		mods |= input.ModSuper
	}
	if state&xproto.ModMaskLock != 0 {
		mods |= input.ModCapsLock
	}
	if state&m.numLock != 0 {
		mods |= input.ModNumLock
	}
	return mods
}

// keysymLookup returns the keysym in column col for a keycode.
type keysymLookup func(code xproto.Keycode, col byte) xproto.Keysym

// textKeysym picks the keysym that a key press produces given the
// modifier state, following the ICCCM rules for the first keysym group.
func textKeysym(lookup keysymLookup, code xproto.Keycode, mods input.Modifiers) xproto.Keysym {
	lower := lookup(code, 0)
	upper := lookup(code, 1)
	if upper == 0 {
		upper = lower
	}

	if isKeypadKeysym(upper) && mods.Has(input.ModNumLock) {
		if mods.Has(input.ModShift) {
			return lower
		}
		return upper
	}

	shift := mods.Has(input.ModShift)
	caps := mods.Has(input.ModCapsLock)
	switch {
	case !shift && !caps:
		return lower
	case !shift && caps:
		if r := keysymRune(lower); unicode.IsLower(r) {
			return upper
		}
		return lower
	default:
		return upper
	}
}

func isKeypadKeysym(ks xproto.Keysym) bool {
	return ks >= 0xff80 && ks <= 0xffbd
}

// keysymRune converts a keysym to the character it types, or 0 when it
// types nothing.
func keysymRune(ks xproto.Keysym) rune {
	switch {
	case ks >= 0x20 && ks <= 0x7e, ks >= 0xa0 && ks <= 0xff:
		return rune(ks)
	case ks >= 0x01000100 && ks <= 0x0110ffff:
		return rune(ks - 0x01000000)
	case ks >= 0xffb0 && ks <= 0xffb9:
		return rune('0' + ks - 0xffb0)
	}
	switch ks {
	case 0xff80: // KP_Space
		return ' '
	case 0xffaa:
		return '*'
	case 0xffab:
		return '+'
	case 0xffac:
		return ','
	case 0xffad:
		return '-'
	case 0xffae:
		return '.'
	case 0xffaf:
		return '/'
	case 0xffbd:
		return '='
	}
	return 0
}

// keycodesFor lists every keycode whose mapping contains keysym in any
// column.
func keycodesFor(xu *xgbutil.XUtil, keysym xproto.Keysym) []xproto.Keycode {
	setup := xu.Setup()
	keyMap := keybind.KeyMapGet(xu)
	if keyMap == nil {
		return nil
	}
	per := int(keyMap.KeysymsPerKeycode)

	var codes []xproto.Keycode
	for code := int(setup.MinKeycode); code <= int(setup.MaxKeycode); code++ {
		base := (code - int(setup.MinKeycode)) * per
		for col := 0; col < per && base+col < len(keyMap.Keysyms); col++ {
			if keyMap.Keysyms[base+col] == keysym {
				codes = append(codes, xproto.Keycode(code))
				break
			}
		}
	}
	return codes
}

// keyBitSet tests keycode in a QueryKeymap bit vector.
func keyBitSet(keys []byte, code xproto.Keycode) bool {
	i := int(code) / 8
	if i >= len(keys) {
		return false
	}
	return keys[i]&(1<<(code%8)) != 0
}

// buttonMask returns the core pointer state bit for an X button number.
// Only buttons 1 to 5 have one.
func buttonMask(button uint32) (uint16, bool) {
	if button < 1 || button > 5 {
		return 0, false
	}
	return xproto.ButtonMask1 << (button - 1), true
}
