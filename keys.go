package nativewin

import "github.com/1broseidon/nativewin/internal/input"

// AllKeys returns every key except KeyUnknown, in declaration order.
func AllKeys() []KeyboardKey { return input.AllKeys() }

// Portable keyboard keys.
const (
	KeyUnknown        = input.KeyUnknown
	KeyA              = input.KeyA
	KeyB              = input.KeyB
	KeyC              = input.KeyC
	KeyD              = input.KeyD
	KeyE              = input.KeyE
	KeyF              = input.KeyF
	KeyG              = input.KeyG
	KeyH              = input.KeyH
	KeyI              = input.KeyI
	KeyJ              = input.KeyJ
	KeyK              = input.KeyK
	KeyL              = input.KeyL
	KeyM              = input.KeyM
	KeyN              = input.KeyN
	KeyO              = input.KeyO
	KeyP              = input.KeyP
	KeyQ              = input.KeyQ
	KeyR              = input.KeyR
	KeyS              = input.KeyS
	KeyT              = input.KeyT
	KeyU              = input.KeyU
	KeyV              = input.KeyV
	KeyW              = input.KeyW
	KeyX              = input.KeyX
	KeyY              = input.KeyY
	KeyZ              = input.KeyZ
	Key0              = input.Key0
	Key1              = input.Key1
	Key2              = input.Key2
	Key3              = input.Key3
	Key4              = input.Key4
	Key5              = input.Key5
	Key6              = input.Key6
	Key7              = input.Key7
	Key8              = input.Key8
	Key9              = input.Key9
	KeyF1             = input.KeyF1
	KeyF2             = input.KeyF2
	KeyF3             = input.KeyF3
	KeyF4             = input.KeyF4
	KeyF5             = input.KeyF5
	KeyF6             = input.KeyF6
	KeyF7             = input.KeyF7
	KeyF8             = input.KeyF8
	KeyF9             = input.KeyF9
	KeyF10            = input.KeyF10
	KeyF11            = input.KeyF11
	KeyF12            = input.KeyF12
	KeyLeftShift      = input.KeyLeftShift
	KeyRightShift     = input.KeyRightShift
	KeyLeftControl    = input.KeyLeftControl
	KeyRightControl   = input.KeyRightControl
	KeyLeftAlt        = input.KeyLeftAlt
	KeyRightAlt       = input.KeyRightAlt
	KeyLeftSuper      = input.KeyLeftSuper
	KeyRightSuper     = input.KeyRightSuper
	KeyMenu           = input.KeyMenu
	KeySpace          = input.KeySpace
	KeyEnter          = input.KeyEnter
	KeyEscape         = input.KeyEscape
	KeyBackspace      = input.KeyBackspace
	KeyDelete         = input.KeyDelete
	KeyTab            = input.KeyTab
	KeyCapsLock       = input.KeyCapsLock
	KeyScrollLock     = input.KeyScrollLock
	KeyNumLock        = input.KeyNumLock
	KeyPrintScreen    = input.KeyPrintScreen
	KeyPause          = input.KeyPause
	KeyArrowUp        = input.KeyArrowUp
	KeyArrowDown      = input.KeyArrowDown
	KeyArrowLeft      = input.KeyArrowLeft
	KeyArrowRight     = input.KeyArrowRight
	KeyHome           = input.KeyHome
	KeyEnd            = input.KeyEnd
	KeyPageUp         = input.KeyPageUp
	KeyPageDown       = input.KeyPageDown
	KeyInsert         = input.KeyInsert
	KeyGraveAccent    = input.KeyGraveAccent
	KeyMinus          = input.KeyMinus
	KeyEqual          = input.KeyEqual
	KeyLeftBracket    = input.KeyLeftBracket
	KeyRightBracket   = input.KeyRightBracket
	KeyBackslash      = input.KeyBackslash
	KeySemicolon      = input.KeySemicolon
	KeyApostrophe     = input.KeyApostrophe
	KeyComma          = input.KeyComma
	KeyPeriod         = input.KeyPeriod
	KeySlash          = input.KeySlash
	KeyNumpad0        = input.KeyNumpad0
	KeyNumpad1        = input.KeyNumpad1
	KeyNumpad2        = input.KeyNumpad2
	KeyNumpad3        = input.KeyNumpad3
	KeyNumpad4        = input.KeyNumpad4
	KeyNumpad5        = input.KeyNumpad5
	KeyNumpad6        = input.KeyNumpad6
	KeyNumpad7        = input.KeyNumpad7
	KeyNumpad8        = input.KeyNumpad8
	KeyNumpad9        = input.KeyNumpad9
	KeyNumpadDecimal  = input.KeyNumpadDecimal
	KeyNumpadDivide   = input.KeyNumpadDivide
	KeyNumpadMultiply = input.KeyNumpadMultiply
	KeyNumpadSubtract = input.KeyNumpadSubtract
	KeyNumpadAdd      = input.KeyNumpadAdd
	KeyNumpadEnter    = input.KeyNumpadEnter
)

// Mouse buttons.
const (
	ButtonUnknown = input.ButtonUnknown
	ButtonLeft    = input.ButtonLeft
	ButtonMiddle  = input.ButtonMiddle
	ButtonRight   = input.ButtonRight
	ButtonBack    = input.ButtonBack
	ButtonForward = input.ButtonForward
)

// Modifier bits carried by key and mouse events.
const (
	ModShift    = input.ModShift
	ModControl  = input.ModControl
	ModAlt      = input.ModAlt
	ModSuper    = input.ModSuper
	ModCapsLock = input.ModCapsLock
	ModNumLock  = input.ModNumLock
)
