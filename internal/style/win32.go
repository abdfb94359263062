package style

// Win32 window style bits from winuser.h.
const (
	WSPopup       uint32 = 0x80000000
	WSVisible     uint32 = 0x10000000
	WSCaption     uint32 = 0x00C00000
	WSSysMenu     uint32 = 0x00080000
	WSThickFrame  uint32 = 0x00040000
	WSMinimizeBox uint32 = 0x00020000
	WSMaximizeBox uint32 = 0x00010000
)

// ShowWindow commands.
const (
	SWHide          int32 = 0
	SWShowNormal    int32 = 1
	SWShowMinimized int32 = 2
	SWShowMaximized int32 = 3
	SWRestore       int32 = 9
)

// Win32Style computes the CreateWindowEx dwStyle for flags. Child windows
// and custom-border windows are popups.
func Win32Style(f Flags, hasParent bool) uint32 {
	var ws uint32
	if hasParent || f.Has(CustomBorder) {
		ws |= WSPopup
	}
	if !f.Has(Invisible) {
		ws |= WSVisible
	}
	if f.Has(CloseButton) || f.Has(CustomBorder) {
		ws |= WSCaption | WSSysMenu
	}
	if f.Has(MinimizeButton) {
		ws |= WSMinimizeBox
	}
	if f.Has(MaximizeButton) {
		ws |= WSMaximizeBox
	}
	if f.Has(Resizable) {
		ws |= WSThickFrame
	}
	return ws
}

// ShowCommand maps a state to the ShowWindow command that applies it.
// Invisible windows are only shown when a state change is requested
// explicitly later.
func ShowCommand(s State, f Flags) int32 {
	if f.Has(Invisible) {
		return SWHide
	}
	switch s {
	case Minimized:
		return SWShowMinimized
	case Maximized:
		return SWShowMaximized
	default:
		return SWShowNormal
	}
}
