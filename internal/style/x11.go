package style

import (
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/motif"

	"github.com/1broseidon/nativewin/internal/geom"
)

// Action is the first data word of a _NET_WM_STATE client message.
type Action uint32

const (
	ActionRemove Action = iota
	ActionAdd
	ActionToggle
)

// EWMH state atoms.
const (
	AtomWMState              = "_NET_WM_STATE"
	AtomFullscreen           = "_NET_WM_STATE_FULLSCREEN"
	AtomMaximizedVert        = "_NET_WM_STATE_MAXIMIZED_VERT"
	AtomMaximizedHorz        = "_NET_WM_STATE_MAXIMIZED_HORZ"
	AtomHidden               = "_NET_WM_STATE_HIDDEN"
	AtomWMChangeState        = "WM_CHANGE_STATE"
	IconicState       uint32 = 3
)

// MotifHints builds the _MOTIF_WM_HINTS value for flags. Moving is always
// allowed; CustomBorder strips every decoration while keeping the
// functions the other flags grant.
func MotifHints(f Flags) *motif.Hints {
	h := &motif.Hints{
		Flags:    motif.HintFunctions | motif.HintDecorations,
		Function: motif.FunctionMove,
	}
	if f.Has(Resizable) {
		h.Function |= motif.FunctionResize
	}
	if f.Has(MinimizeButton) {
		h.Function |= motif.FunctionMinimize
	}
	if f.Has(MaximizeButton) {
		h.Function |= motif.FunctionMaximize
	}
	if f.Has(CloseButton) {
		h.Function |= motif.FunctionClose
	}

	if f.Has(CustomBorder) {
		h.Decoration = motif.DecorationNone
		return h
	}
	h.Decoration = motif.DecorationBorder | motif.DecorationTitle | motif.DecorationMenu
	if f.Has(Resizable) {
		h.Decoration |= motif.DecorationResizeH
	}
	if f.Has(MinimizeButton) {
		h.Decoration |= motif.DecorationMinimize
	}
	if f.Has(MaximizeButton) {
		h.Decoration |= motif.DecorationMaximize
	}
	return h
}

// NormalHints builds WM_NORMAL_HINTS. Without bounds, or without the
// Resizable flag, the window is pinned to size.
func NormalHints(f Flags, size geom.Size[geom.Pixels], bounds *geom.MinMax[geom.Pixels]) *icccm.NormalHints {
	limits := geom.Fixed(size)
	if bounds != nil && f.Has(Resizable) {
		limits = *bounds
	}
	return &icccm.NormalHints{
		Flags:     icccm.SizeHintPSize | icccm.SizeHintPMinSize | icccm.SizeHintPMaxSize,
		Width:     pixelsToUint(size.X),
		Height:    pixelsToUint(size.Y),
		MinWidth:  pixelsToUint(limits.Min.X),
		MinHeight: pixelsToUint(limits.Min.Y),
		MaxWidth:  pixelsToUint(limits.Max.X),
		MaxHeight: pixelsToUint(limits.Max.Y),
	}
}

// StateAtoms lists the _NET_WM_STATE atoms that represent s. Restored and
// Minimized have none; minimizing goes through WM_CHANGE_STATE instead.
func StateAtoms(s State) []string {
	if s == Maximized {
		return []string{AtomMaximizedVert, AtomMaximizedHorz}
	}
	return nil
}

func pixelsToUint(p geom.Pixels) uint {
	if p < 0 {
		return 0
	}
	return uint(p)
}
