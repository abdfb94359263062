package keymap

import "github.com/1broseidon/nativewin/internal/input"

type keyPair = Pair[uint32, input.KeyboardKey]
type buttonPair = Pair[uint32, input.MouseButton]

// X11 keysym values from keysymdef.h that have a portable equivalent.
const (
	xkSpace        = 0x0020
	xkApostrophe   = 0x0027
	xkComma        = 0x002c
	xkMinus        = 0x002d
	xkPeriod       = 0x002e
	xkSlash        = 0x002f
	xk0            = 0x0030
	xkSemicolon    = 0x003b
	xkEqual        = 0x003d
	xkUpperA       = 0x0041
	xkBracketLeft  = 0x005b
	xkBackslash    = 0x005c
	xkBracketRight = 0x005d
	xkGrave        = 0x0060
	xkLowerA       = 0x0061

	xkISOLevel3Shift = 0xfe03
	xkISOLeftTab     = 0xfe20

	xkBackSpace  = 0xff08
	xkTab        = 0xff09
	xkReturn     = 0xff0d
	xkPause      = 0xff13
	xkScrollLock = 0xff14
	xkEscape     = 0xff1b
	xkHome       = 0xff50
	xkLeft       = 0xff51
	xkUp         = 0xff52
	xkRight      = 0xff53
	xkDown       = 0xff54
	xkPrior      = 0xff55
	xkNext       = 0xff56
	xkEnd        = 0xff57
	xkPrint      = 0xff61
	xkInsert     = 0xff63
	xkMenu       = 0xff67
	xkNumLock    = 0xff7f

	xkKPEnter    = 0xff8d
	xkKPHome     = 0xff95
	xkKPLeft     = 0xff96
	xkKPUp       = 0xff97
	xkKPRight    = 0xff98
	xkKPDown     = 0xff99
	xkKPPrior    = 0xff9a
	xkKPNext     = 0xff9b
	xkKPEnd      = 0xff9c
	xkKPBegin    = 0xff9d
	xkKPInsert   = 0xff9e
	xkKPDelete   = 0xff9f
	xkKPMultiply = 0xffaa
	xkKPAdd      = 0xffab
	xkKPSubtract = 0xffad
	xkKPDecimal  = 0xffae
	xkKPDivide   = 0xffaf
	xkKP0        = 0xffb0
	xkF1         = 0xffbe

	xkShiftL   = 0xffe1
	xkShiftR   = 0xffe2
	xkControlL = 0xffe3
	xkControlR = 0xffe4
	xkCapsLock = 0xffe5
	xkAltL     = 0xffe9
	xkAltR     = 0xffea
	xkSuperL   = 0xffeb
	xkSuperR   = 0xffec
	xkDelete   = 0xffff
)

// X11Keys maps X11 keysyms to portable keys. Lowercase letters come first so
// the reverse lookup yields the unshifted keysym.
var X11Keys = NewTable(x11KeyPairs())

// X11Buttons maps core-protocol pointer buttons to portable buttons.
// Buttons 4 to 7 are wheel notches and are decoded as scroll events.
var X11Buttons = NewTable([]buttonPair{
	{Native: 1, Portable: input.ButtonLeft},
	{Native: 2, Portable: input.ButtonMiddle},
	{Native: 3, Portable: input.ButtonRight},
	{Native: 8, Portable: input.ButtonBack},
	{Native: 9, Portable: input.ButtonForward},
})

func x11KeyPairs() []keyPair {
	pairs := make([]keyPair, 0, 160)

	for i := 0; i < 26; i++ {
		pairs = append(pairs, keyPair{Native: uint32(xkLowerA + i), Portable: input.KeyA + input.KeyboardKey(i)})
	}
	for i := 0; i < 26; i++ {
		pairs = append(pairs, keyPair{Native: uint32(xkUpperA + i), Portable: input.KeyA + input.KeyboardKey(i)})
	}
	for i := 0; i < 10; i++ {
		pairs = append(pairs, keyPair{Native: uint32(xk0 + i), Portable: input.Key0 + input.KeyboardKey(i)})
	}
	for i := 0; i < 12; i++ {
		pairs = append(pairs, keyPair{Native: uint32(xkF1 + i), Portable: input.KeyF1 + input.KeyboardKey(i)})
	}
	for i := 0; i < 10; i++ {
		pairs = append(pairs, keyPair{Native: uint32(xkKP0 + i), Portable: input.KeyNumpad0 + input.KeyboardKey(i)})
	}

	return append(pairs, []keyPair{
		{xkShiftL, input.KeyLeftShift},
		{xkShiftR, input.KeyRightShift},
		{xkControlL, input.KeyLeftControl},
		{xkControlR, input.KeyRightControl},
		{xkAltL, input.KeyLeftAlt},
		{xkAltR, input.KeyRightAlt},
		{xkISOLevel3Shift, input.KeyRightAlt},
		{xkSuperL, input.KeyLeftSuper},
		{xkSuperR, input.KeyRightSuper},
		{xkMenu, input.KeyMenu},

		{xkSpace, input.KeySpace},
		{xkReturn, input.KeyEnter},
		{xkEscape, input.KeyEscape},
		{xkBackSpace, input.KeyBackspace},
		{xkDelete, input.KeyDelete},
		{xkTab, input.KeyTab},
		{xkISOLeftTab, input.KeyTab},
		{xkCapsLock, input.KeyCapsLock},
		{xkScrollLock, input.KeyScrollLock},
		{xkNumLock, input.KeyNumLock},
		{xkPrint, input.KeyPrintScreen},
		{xkPause, input.KeyPause},

		{xkUp, input.KeyArrowUp},
		{xkDown, input.KeyArrowDown},
		{xkLeft, input.KeyArrowLeft},
		{xkRight, input.KeyArrowRight},
		{xkHome, input.KeyHome},
		{xkEnd, input.KeyEnd},
		{xkPrior, input.KeyPageUp},
		{xkNext, input.KeyPageDown},
		{xkInsert, input.KeyInsert},

		{xkGrave, input.KeyGraveAccent},
		{xkMinus, input.KeyMinus},
		{xkEqual, input.KeyEqual},
		{xkBracketLeft, input.KeyLeftBracket},
		{xkBracketRight, input.KeyRightBracket},
		{xkBackslash, input.KeyBackslash},
		{xkSemicolon, input.KeySemicolon},
		{xkApostrophe, input.KeyApostrophe},
		{xkComma, input.KeyComma},
		{xkPeriod, input.KeyPeriod},
		{xkSlash, input.KeySlash},

		{xkKPDecimal, input.KeyNumpadDecimal},
		{xkKPDivide, input.KeyNumpadDivide},
		{xkKPMultiply, input.KeyNumpadMultiply},
		{xkKPSubtract, input.KeyNumpadSubtract},
		{xkKPAdd, input.KeyNumpadAdd},
		{xkKPEnter, input.KeyNumpadEnter},

		// Numpad keysyms reported with NumLock off.
		{xkKPInsert, input.KeyNumpad0},
		{xkKPEnd, input.KeyNumpad1},
		{xkKPDown, input.KeyNumpad2},
		{xkKPNext, input.KeyNumpad3},
		{xkKPLeft, input.KeyNumpad4},
		{xkKPBegin, input.KeyNumpad5},
		{xkKPRight, input.KeyNumpad6},
		{xkKPHome, input.KeyNumpad7},
		{xkKPUp, input.KeyNumpad8},
		{xkKPPrior, input.KeyNumpad9},
		{xkKPDelete, input.KeyNumpadDecimal},
	}...)
}
