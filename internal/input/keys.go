// Package input defines the portable keyboard/mouse vocabulary and the event
// records delivered to listeners.
package input

import "fmt"

// KeyboardKey is a portable key identifier, independent of any platform's
// virtual-key or keysym numbering.
type KeyboardKey int

const (
	KeyUnknown KeyboardKey = iota

	// Letters
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Digits on the main row
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Modifiers
	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftSuper
	KeyRightSuper
	KeyMenu

	// Editing and control
	KeySpace
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyTab
	KeyCapsLock
	KeyScrollLock
	KeyNumLock
	KeyPrintScreen
	KeyPause

	// Arrows
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight

	// Navigation
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	// Punctuation
	KeyGraveAccent
	KeyMinus
	KeyEqual
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	KeySemicolon
	KeyApostrophe
	KeyComma
	KeyPeriod
	KeySlash

	// Numpad
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyNumpadDecimal
	KeyNumpadDivide
	KeyNumpadMultiply
	KeyNumpadSubtract
	KeyNumpadAdd
	KeyNumpadEnter

	keyCount
)

var keyNames = map[KeyboardKey]string{
	KeyUnknown: "Unknown",
	KeyF1:      "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5", KeyF6: "F6",
	KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",
	KeyLeftShift: "LeftShift", KeyRightShift: "RightShift",
	KeyLeftControl: "LeftControl", KeyRightControl: "RightControl",
	KeyLeftAlt: "LeftAlt", KeyRightAlt: "RightAlt",
	KeyLeftSuper: "LeftSuper", KeyRightSuper: "RightSuper", KeyMenu: "Menu",
	KeySpace: "Space", KeyEnter: "Enter", KeyEscape: "Escape", KeyBackspace: "Backspace",
	KeyDelete: "Delete", KeyTab: "Tab", KeyCapsLock: "CapsLock", KeyScrollLock: "ScrollLock",
	KeyNumLock: "NumLock", KeyPrintScreen: "PrintScreen", KeyPause: "Pause",
	KeyArrowUp: "ArrowUp", KeyArrowDown: "ArrowDown", KeyArrowLeft: "ArrowLeft", KeyArrowRight: "ArrowRight",
	KeyHome: "Home", KeyEnd: "End", KeyPageUp: "PageUp", KeyPageDown: "PageDown", KeyInsert: "Insert",
	KeyGraveAccent: "GraveAccent", KeyMinus: "Minus", KeyEqual: "Equal",
	KeyLeftBracket: "LeftBracket", KeyRightBracket: "RightBracket", KeyBackslash: "Backslash",
	KeySemicolon: "Semicolon", KeyApostrophe: "Apostrophe", KeyComma: "Comma",
	KeyPeriod: "Period", KeySlash: "Slash",
	KeyNumpadDecimal: "NumpadDecimal", KeyNumpadDivide: "NumpadDivide",
	KeyNumpadMultiply: "NumpadMultiply", KeyNumpadSubtract: "NumpadSubtract",
	KeyNumpadAdd: "NumpadAdd", KeyNumpadEnter: "NumpadEnter",
}

// String returns a stable name such as "A", "7", "Numpad3" or "PageUp".
func (k KeyboardKey) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + int(k-KeyA)))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + int(k-Key0)))
	case k >= KeyNumpad0 && k <= KeyNumpad9:
		return fmt.Sprintf("Numpad%d", int(k-KeyNumpad0))
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KeyboardKey(%d)", int(k))
}

// Valid reports whether k is a defined key other than KeyUnknown.
func (k KeyboardKey) Valid() bool {
	return k > KeyUnknown && k < keyCount
}

// AllKeys returns every defined key except KeyUnknown, in declaration order.
func AllKeys() []KeyboardKey {
	keys := make([]KeyboardKey, 0, int(keyCount)-1)
	for k := KeyUnknown + 1; k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// MouseButton is a portable mouse button identifier.
type MouseButton int

const (
	ButtonUnknown MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	ButtonBack    // often the thumb button nearest the user
	ButtonForward // often the thumb button farther from the user
)

// String returns the button name.
func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonMiddle:
		return "Middle"
	case ButtonRight:
		return "Right"
	case ButtonBack:
		return "Back"
	case ButtonForward:
		return "Forward"
	default:
		return "Unknown"
	}
}

// Modifiers is a bitset of modifier keys and lock states held while an
// event was generated.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModSuper
	ModCapsLock
	ModNumLock
)

// Has reports whether every bit of m2 is set in m.
func (m Modifiers) Has(m2 Modifiers) bool {
	return m&m2 == m2
}

// String renders the set as "Shift+Control" style text, "" when empty.
func (m Modifiers) String() string {
	names := []struct {
		bit  Modifiers
		name string
	}{
		{ModShift, "Shift"},
		{ModControl, "Control"},
		{ModAlt, "Alt"},
		{ModSuper, "Super"},
		{ModCapsLock, "CapsLock"},
		{ModNumLock, "NumLock"},
	}
	out := ""
	for _, n := range names {
		if m&n.bit == 0 {
			continue
		}
		if out != "" {
			out += "+"
		}
		out += n.name
	}
	return out
}
