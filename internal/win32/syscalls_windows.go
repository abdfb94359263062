//go:build windows

package win32

import (
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"
)

type point struct {
	X, Y int32
}

type rect struct {
	Left, Top, Right, Bottom int32
}

type msg struct {
	Hwnd     windows.Handle
	Message  uint32
	WParam   uintptr
	LParam   uintptr
	Time     uint32
	Pt       point
	LPrivate uint32
}

type wndClassEx struct {
	CbSize        uint32
	Style         uint32
	LpfnWndProc   uintptr
	CnClsExtra    int32
	CbWndExtra    int32
	HInstance     windows.Handle
	HIcon         windows.Handle
	HCursor       windows.Handle
	HbrBackground windows.Handle
	LpszMenuName  *uint16
	LpszClassName *uint16
	HIconSm       windows.Handle
}

type minMaxInfo struct {
	PtReserved     point
	PtMaxSize      point
	PtMaxPosition  point
	PtMinTrackSize point
	PtMaxTrackSize point
}

type trackMouseEvent struct {
	CbSize      uint32
	DwFlags     uint32
	HwndTrack   windows.Handle
	DwHoverTime uint32
}

type monitorInfo struct {
	CbSize   uint32
	Monitor  rect
	WorkArea rect
	Flags    uint32
}

type windowPlacement struct {
	Length           uint32
	Flags            uint32
	ShowCmd          uint32
	PtMinPosition    point
	PtMaxPosition    point
	RcNormalPosition rect
	RcDevice         rect
}

const (
	csHRedraw = 0x0002
	csVRedraw = 0x0001
	csOwnDC   = 0x0020

	gwlStyle = ^(uintptr(16) - 1) // -16

	idcArrow = 32512

	monitorDefaultToNearest = 2
	monitorDefaultToPrimary = 1

	swpFrameChanged  = 0x0020
	swpNoMove        = 0x0002
	swpNoOwnerZOrder = 0x0200
	swpNoSize        = 0x0001
	swpNoZOrder      = 0x0004

	tmeLeave = 0x00000002

	wsExAppWindow  = 0x00040000
	wsExWindowEdge = 0x00000100

	wmNCCreate = 0x0081

	logPixelsX = 88
)

var (
	kernel32          = windows.NewLazySystemDLL("kernel32.dll")
	_GetModuleHandleW = kernel32.NewProc("GetModuleHandleW")

	user32               = windows.NewLazySystemDLL("user32.dll")
	_AdjustWindowRectEx  = user32.NewProc("AdjustWindowRectEx")
	_CreateWindowEx      = user32.NewProc("CreateWindowExW")
	_DefWindowProc       = user32.NewProc("DefWindowProcW")
	_DestroyWindow       = user32.NewProc("DestroyWindow")
	_DispatchMessage     = user32.NewProc("DispatchMessageW")
	_GetAsyncKeyState    = user32.NewProc("GetAsyncKeyState")
	_GetDC               = user32.NewProc("GetDC")
	_GetDpiForWindow     = user32.NewProc("GetDpiForWindow")
	_GetKeyState         = user32.NewProc("GetKeyState")
	_GetMessage          = user32.NewProc("GetMessageW")
	_GetMonitorInfo      = user32.NewProc("GetMonitorInfoW")
	_GetWindowLong       = user32.NewProc("GetWindowLongPtrW")
	_GetWindowLong32     = user32.NewProc("GetWindowLongW")
	_GetWindowPlacement  = user32.NewProc("GetWindowPlacement")
	_GetWindowRect       = user32.NewProc("GetWindowRect")
	_GetWindowText       = user32.NewProc("GetWindowTextW")
	_GetWindowTextLength = user32.NewProc("GetWindowTextLengthW")
	_LoadCursor          = user32.NewProc("LoadCursorW")
	_MonitorFromPoint    = user32.NewProc("MonitorFromPoint")
	_MonitorFromWindow   = user32.NewProc("MonitorFromWindow")
	_PostMessage         = user32.NewProc("PostMessageW")
	_RegisterClassExW    = user32.NewProc("RegisterClassExW")
	_ReleaseDC           = user32.NewProc("ReleaseDC")
	_SetForegroundWindow = user32.NewProc("SetForegroundWindow")
	_SetProcessDPIAware  = user32.NewProc("SetProcessDPIAware")
	_SetWindowLong       = user32.NewProc("SetWindowLongPtrW")
	_SetWindowLong32     = user32.NewProc("SetWindowLongW")
	_SetWindowPlacement  = user32.NewProc("SetWindowPlacement")
	_SetWindowPos        = user32.NewProc("SetWindowPos")
	_SetWindowText       = user32.NewProc("SetWindowTextW")
	_ShowWindow          = user32.NewProc("ShowWindow")
	_TrackMouseEvent     = user32.NewProc("TrackMouseEvent")
	_TranslateMessage    = user32.NewProc("TranslateMessage")
	_ClientToScreen      = user32.NewProc("ClientToScreen")

	gdi32          = windows.NewLazySystemDLL("gdi32")
	_GetDeviceCaps = gdi32.NewProc("GetDeviceCaps")
)

func adjustWindowRectEx(r *rect, style uint32, exStyle uint32) {
	_AdjustWindowRectEx.Call(uintptr(unsafe.Pointer(r)), uintptr(style), 0, uintptr(exStyle))
}

func createWindowEx(exStyle uint32, class uint16, title *uint16, style uint32, x, y, w, h int32, parent, instance windows.Handle, param uintptr) (windows.Handle, error) {
	hwnd, _, err := _CreateWindowEx.Call(
		uintptr(exStyle),
		uintptr(class),
		uintptr(unsafe.Pointer(title)),
		uintptr(style),
		uintptr(x), uintptr(y),
		uintptr(w), uintptr(h),
		uintptr(parent),
		0,
		uintptr(instance),
		param)
	if hwnd == 0 {
		return 0, fmt.Errorf("CreateWindowEx failed: %v", err)
	}
	return windows.Handle(hwnd), nil
}

func defWindowProc(hwnd windows.Handle, msg uint32, wParam, lParam uintptr) uintptr {
	r, _, _ := _DefWindowProc.Call(uintptr(hwnd), uintptr(msg), wParam, lParam)
	return r
}

func destroyWindow(hwnd windows.Handle) {
	_DestroyWindow.Call(uintptr(hwnd))
}

func dispatchMessage(m *msg) {
	_DispatchMessage.Call(uintptr(unsafe.Pointer(m)))
}

func getAsyncKeyState(vk int32) bool {
	r, _, _ := _GetAsyncKeyState.Call(uintptr(vk))
	return int16(r) < 0
}

func getKeyState(vk int32) int16 {
	r, _, _ := _GetKeyState.Call(uintptr(vk))
	return int16(r)
}

func getWindowRect(hwnd windows.Handle) rect {
	var r rect
	_GetWindowRect.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&r)))
	return r
}

func clientToScreen(hwnd windows.Handle, p *point) {
	_ClientToScreen.Call(uintptr(hwnd), uintptr(unsafe.Pointer(p)))
}

func getModuleHandle() (windows.Handle, error) {
	h, _, err := _GetModuleHandleW.Call(0)
	if h == 0 {
		return 0, fmt.Errorf("GetModuleHandleW failed: %v", err)
	}
	return windows.Handle(h), nil
}

func getMessage(m *msg) int32 {
	r, _, _ := _GetMessage.Call(uintptr(unsafe.Pointer(m)), 0, 0, 0)
	return int32(r)
}

func translateMessage(m *msg) {
	_TranslateMessage.Call(uintptr(unsafe.Pointer(m)))
}

func postMessage(hwnd windows.Handle, msg uint32, wParam, lParam uintptr) error {
	r, _, err := _PostMessage.Call(uintptr(hwnd), uintptr(msg), wParam, lParam)
	if r == 0 {
		return fmt.Errorf("PostMessage failed: %v", err)
	}
	return nil
}

// windowDPI prefers GetDpiForWindow (Windows 10) and falls back to the
// device caps of the screen.
func windowDPI(hwnd windows.Handle) float64 {
	if _GetDpiForWindow.Find() == nil {
		if dpi, _, _ := _GetDpiForWindow.Call(uintptr(hwnd)); dpi != 0 {
			return float64(dpi)
		}
	}
	hdc, _, _ := _GetDC.Call(0)
	if hdc == 0 {
		return 96
	}
	defer _ReleaseDC.Call(0, hdc)
	c, _, _ := _GetDeviceCaps.Call(hdc, logPixelsX)
	if c == 0 {
		return 96
	}
	return float64(c)
}

// systemDPI is the DPI of the primary monitor, used before a window
// exists.
func systemDPI() float64 {
	return windowDPI(0)
}

func monitorForWindow(hwnd windows.Handle) monitorInfo {
	var mi monitorInfo
	mi.CbSize = uint32(unsafe.Sizeof(mi))
	mon, _, _ := _MonitorFromWindow.Call(uintptr(hwnd), monitorDefaultToNearest)
	_GetMonitorInfo.Call(mon, uintptr(unsafe.Pointer(&mi)))
	return mi
}

func primaryMonitor() monitorInfo {
	var mi monitorInfo
	mi.CbSize = uint32(unsafe.Sizeof(mi))
	mon, _, _ := _MonitorFromPoint.Call(0, monitorDefaultToPrimary)
	_GetMonitorInfo.Call(mon, uintptr(unsafe.Pointer(&mi)))
	return mi
}

func getWindowLong(hwnd windows.Handle, index uintptr) uintptr {
	var val uintptr
	if runtime.GOARCH == "386" {
		val, _, _ = _GetWindowLong32.Call(uintptr(hwnd), index)
	} else {
		val, _, _ = _GetWindowLong.Call(uintptr(hwnd), index)
	}
	return val
}

func setWindowLong(hwnd windows.Handle, index uintptr, value uintptr) {
	if runtime.GOARCH == "386" {
		_SetWindowLong32.Call(uintptr(hwnd), index, value)
	} else {
		_SetWindowLong.Call(uintptr(hwnd), index, value)
	}
}

func getWindowPlacement(hwnd windows.Handle) windowPlacement {
	var wp windowPlacement
	wp.Length = uint32(unsafe.Sizeof(wp))
	_GetWindowPlacement.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&wp)))
	return wp
}

func setWindowPlacement(hwnd windows.Handle, wp *windowPlacement) {
	_SetWindowPlacement.Call(uintptr(hwnd), uintptr(unsafe.Pointer(wp)))
}

func setWindowPos(hwnd windows.Handle, x, y, w, h int32, flags uintptr) error {
	r, _, err := _SetWindowPos.Call(uintptr(hwnd), 0,
		uintptr(x), uintptr(y),
		uintptr(w), uintptr(h),
		flags,
	)
	if r == 0 {
		return fmt.Errorf("SetWindowPos failed: %v", err)
	}
	return nil
}

func getWindowText(hwnd windows.Handle) []uint16 {
	n, _, _ := _GetWindowTextLength.Call(uintptr(hwnd))
	buf := make([]uint16, n+1)
	_GetWindowText.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return buf
}

func setWindowText(hwnd windows.Handle, title *uint16) error {
	r, _, err := _SetWindowText.Call(uintptr(hwnd), uintptr(unsafe.Pointer(title)))
	if r == 0 {
		return fmt.Errorf("SetWindowTextW failed: %v", err)
	}
	return nil
}

func showWindow(hwnd windows.Handle, cmd int32) {
	_ShowWindow.Call(uintptr(hwnd), uintptr(cmd))
}

func setForegroundWindow(hwnd windows.Handle) {
	_SetForegroundWindow.Call(uintptr(hwnd))
}

func setProcessDPIAware() {
	_SetProcessDPIAware.Call()
}

func trackMouseLeave(hwnd windows.Handle) {
	tme := trackMouseEvent{DwFlags: tmeLeave, HwndTrack: hwnd}
	tme.CbSize = uint32(unsafe.Sizeof(tme))
	_TrackMouseEvent.Call(uintptr(unsafe.Pointer(&tme)))
}

func loadCursor(id uint16) windows.Handle {
	h, _, _ := _LoadCursor.Call(0, uintptr(id))
	return windows.Handle(h)
}

func registerClassEx(cls *wndClassEx) (uint16, error) {
	a, _, err := _RegisterClassExW.Call(uintptr(unsafe.Pointer(cls)))
	if a == 0 {
		return 0, fmt.Errorf("RegisterClassExW failed: %v", err)
	}
	return uint16(a), nil
}
