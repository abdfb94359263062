package keymap

import "github.com/1broseidon/nativewin/internal/input"

// Win32 virtual-key codes from winuser.h that have a portable equivalent.
const (
	vkLButton  = 0x01
	vkRButton  = 0x02
	vkMButton  = 0x04
	vkXButton1 = 0x05
	vkXButton2 = 0x06

	vkBack     = 0x08
	vkTab      = 0x09
	vkReturn   = 0x0d
	vkShift    = 0x10
	vkControl  = 0x11
	vkMenu     = 0x12
	vkPause    = 0x13
	vkCapital  = 0x14
	vkEscape   = 0x1b
	vkSpace    = 0x20
	vkPrior    = 0x21
	vkNext     = 0x22
	vkEnd      = 0x23
	vkHome     = 0x24
	vkLeft     = 0x25
	vkUp       = 0x26
	vkRight    = 0x27
	vkDown     = 0x28
	vkSnapshot = 0x2c
	vkInsert   = 0x2d
	vkDelete   = 0x2e
	vk0        = 0x30
	vkA        = 0x41
	vkLWin     = 0x5b
	vkRWin     = 0x5c
	vkApps     = 0x5d
	vkNumpad0  = 0x60
	vkMultiply = 0x6a
	vkAdd      = 0x6b
	vkSubtract = 0x6d
	vkDecimal  = 0x6e
	vkDivide   = 0x6f
	vkF1       = 0x70
	vkNumLock  = 0x90
	vkScroll   = 0x91
	vkLShift   = 0xa0
	vkRShift   = 0xa1
	vkLControl = 0xa2
	vkRControl = 0xa3
	vkLMenu    = 0xa4
	vkRMenu    = 0xa5

	vkOEM1      = 0xba // ;:
	vkOEMPlus   = 0xbb // =+
	vkOEMComma  = 0xbc
	vkOEMMinus  = 0xbd
	vkOEMPeriod = 0xbe
	vkOEM2      = 0xbf // /?
	vkOEM3      = 0xc0 // `~
	vkOEM4      = 0xdb // [{
	vkOEM5      = 0xdc // \|
	vkOEM6      = 0xdd // ]}
	vkOEM7      = 0xde // '"
)

// Win32Keys maps virtual-key codes to portable keys. The side-specific
// modifier codes precede the generic ones, so the reverse lookup yields
// VK_LSHIFT rather than VK_SHIFT. The numpad Enter key shares VK_RETURN and
// has no entry of its own.
var Win32Keys = NewTable(win32KeyPairs())

// Win32Buttons maps the mouse virtual-key codes accepted by
// GetAsyncKeyState to portable buttons.
var Win32Buttons = NewTable([]buttonPair{
	{Native: vkLButton, Portable: input.ButtonLeft},
	{Native: vkMButton, Portable: input.ButtonMiddle},
	{Native: vkRButton, Portable: input.ButtonRight},
	{Native: vkXButton1, Portable: input.ButtonBack},
	{Native: vkXButton2, Portable: input.ButtonForward},
})

func win32KeyPairs() []keyPair {
	pairs := make([]keyPair, 0, 120)

	for i := 0; i < 26; i++ {
		pairs = append(pairs, keyPair{Native: uint32(vkA + i), Portable: input.KeyA + input.KeyboardKey(i)})
	}
	for i := 0; i < 10; i++ {
		pairs = append(pairs, keyPair{Native: uint32(vk0 + i), Portable: input.Key0 + input.KeyboardKey(i)})
	}
	for i := 0; i < 12; i++ {
		pairs = append(pairs, keyPair{Native: uint32(vkF1 + i), Portable: input.KeyF1 + input.KeyboardKey(i)})
	}
	for i := 0; i < 10; i++ {
		pairs = append(pairs, keyPair{Native: uint32(vkNumpad0 + i), Portable: input.KeyNumpad0 + input.KeyboardKey(i)})
	}

	return append(pairs, []keyPair{
		{vkLShift, input.KeyLeftShift},
		{vkRShift, input.KeyRightShift},
		{vkLControl, input.KeyLeftControl},
		{vkRControl, input.KeyRightControl},
		{vkLMenu, input.KeyLeftAlt},
		{vkRMenu, input.KeyRightAlt},
		{vkShift, input.KeyLeftShift},
		{vkControl, input.KeyLeftControl},
		{vkMenu, input.KeyLeftAlt},
		{vkLWin, input.KeyLeftSuper},
		{vkRWin, input.KeyRightSuper},
		{vkApps, input.KeyMenu},

		{vkSpace, input.KeySpace},
		{vkReturn, input.KeyEnter},
		{vkEscape, input.KeyEscape},
		{vkBack, input.KeyBackspace},
		{vkDelete, input.KeyDelete},
		{vkTab, input.KeyTab},
		{vkCapital, input.KeyCapsLock},
		{vkScroll, input.KeyScrollLock},
		{vkNumLock, input.KeyNumLock},
		{vkSnapshot, input.KeyPrintScreen},
		{vkPause, input.KeyPause},

		{vkUp, input.KeyArrowUp},
		{vkDown, input.KeyArrowDown},
		{vkLeft, input.KeyArrowLeft},
		{vkRight, input.KeyArrowRight},
		{vkHome, input.KeyHome},
		{vkEnd, input.KeyEnd},
		{vkPrior, input.KeyPageUp},
		{vkNext, input.KeyPageDown},
		{vkInsert, input.KeyInsert},

		{vkOEM3, input.KeyGraveAccent},
		{vkOEMMinus, input.KeyMinus},
		{vkOEMPlus, input.KeyEqual},
		{vkOEM4, input.KeyLeftBracket},
		{vkOEM6, input.KeyRightBracket},
		{vkOEM5, input.KeyBackslash},
		{vkOEM1, input.KeySemicolon},
		{vkOEM7, input.KeyApostrophe},
		{vkOEMComma, input.KeyComma},
		{vkOEMPeriod, input.KeyPeriod},
		{vkOEM2, input.KeySlash},

		{vkDecimal, input.KeyNumpadDecimal},
		{vkDivide, input.KeyNumpadDivide},
		{vkMultiply, input.KeyNumpadMultiply},
		{vkSubtract, input.KeyNumpadSubtract},
		{vkAdd, input.KeyNumpadAdd},
	}...)
}
