package style

import (
	"testing"

	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/motif"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1broseidon/nativewin/internal/geom"
)

var allSingles = []Flags{CloseButton, Invisible, MinimizeButton, MaximizeButton, Resizable, CustomBorder}

func TestUnionThenIntersectYieldsOperand(t *testing.T) {
	for a := Flags(0); a < 1<<6; a++ {
		for b := Flags(0); b < 1<<6; b++ {
			if got := (a | b) & a; got != a {
				t.Fatalf("(%v | %v) & %v = %v", a, b, a, got)
			}
		}
	}
}

func TestDefaultContainsCapabilities(t *testing.T) {
	for _, f := range []Flags{CloseButton, MinimizeButton, MaximizeButton, Resizable} {
		assert.True(t, Default.Has(f), f.String())
	}
	assert.False(t, Default.Has(Invisible))
	assert.False(t, DefaultNoResize.Has(Resizable))
	assert.True(t, DefaultCustom.Has(CustomBorder|Default))
}

func TestFlagsString(t *testing.T) {
	assert.Equal(t, "none", Flags(0).String())
	assert.Equal(t, "close|resizable", (CloseButton | Resizable).String())
	assert.Equal(t, "custom_border|0x80", (CustomBorder | 0x80).String())
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		in   []string
		want Flags
	}{
		{nil, Default},
		{[]string{"none"}, 0},
		{[]string{"close", "Minimize"}, CloseButton | MinimizeButton},
		{[]string{"default_no_resize", "invisible"}, DefaultNoResize | Invisible},
		{[]string{" custom_border "}, CustomBorder},
	}
	for _, tt := range tests {
		got, err := ParseFlags(tt.in)
		require.NoError(t, err, "%v", tt.in)
		assert.Equal(t, tt.want, got, "%v", tt.in)
	}

	_, err := ParseFlags([]string{"close", "sparkly"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sparkly")
}

func TestParseState(t *testing.T) {
	for _, s := range []State{Restored, Minimized, Maximized} {
		got, err := ParseState(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	got, err := ParseState("")
	require.NoError(t, err)
	assert.Equal(t, Restored, got)

	_, err = ParseState("fullscreen")
	assert.Error(t, err)
}

func TestMotifHints(t *testing.T) {
	h := MotifHints(Default)
	assert.Equal(t, uint(motif.HintFunctions|motif.HintDecorations), h.Flags)
	assert.Equal(t, uint(motif.FunctionMove|motif.FunctionResize|motif.FunctionMinimize|motif.FunctionMaximize|motif.FunctionClose), h.Function)
	assert.NotZero(t, h.Decoration&motif.DecorationTitle)
	assert.NotZero(t, h.Decoration&motif.DecorationResizeH)

	h = MotifHints(DefaultNoResize)
	assert.Zero(t, h.Function&motif.FunctionResize)
	assert.Zero(t, h.Function&motif.FunctionMaximize)
	assert.Zero(t, h.Decoration&motif.DecorationResizeH)

	h = MotifHints(DefaultCustom)
	assert.Equal(t, uint(motif.DecorationNone), h.Decoration)
	assert.False(t, motif.Decor(h))
	assert.NotZero(t, h.Function&motif.FunctionClose)
}

func TestMotifHintsTotal(t *testing.T) {
	for f := Flags(0); f < 1<<6; f++ {
		h := MotifHints(f)
		require.NotNil(t, h)
		assert.NotZero(t, h.Function&motif.FunctionMove)
	}
}

func TestNormalHints(t *testing.T) {
	size := geom.V[geom.Pixels](500, 400)
	bounds := &geom.MinMax[geom.Pixels]{Min: geom.V[geom.Pixels](200, 100), Max: geom.V[geom.Pixels](900, 800)}

	fixed := NormalHints(Default, size, nil)
	assert.Equal(t, uint(icccm.SizeHintPSize|icccm.SizeHintPMinSize|icccm.SizeHintPMaxSize), fixed.Flags)
	assert.Equal(t, uint(500), fixed.MinWidth)
	assert.Equal(t, uint(500), fixed.MaxWidth)
	assert.Equal(t, uint(400), fixed.MinHeight)
	assert.Equal(t, uint(400), fixed.MaxHeight)

	free := NormalHints(Default, size, bounds)
	assert.Equal(t, uint(200), free.MinWidth)
	assert.Equal(t, uint(800), free.MaxHeight)

	pinned := NormalHints(DefaultNoResize, size, bounds)
	assert.Equal(t, uint(500), pinned.MaxWidth, "non-resizable windows ignore bounds")
}

func TestStateAtoms(t *testing.T) {
	assert.Nil(t, StateAtoms(Restored))
	assert.Nil(t, StateAtoms(Minimized))
	assert.Equal(t, []string{AtomMaximizedVert, AtomMaximizedHorz}, StateAtoms(Maximized))
	assert.Equal(t, []Action{0, 1, 2}, []Action{ActionRemove, ActionAdd, ActionToggle})
}

func TestWin32Style(t *testing.T) {
	tests := []struct {
		name      string
		flags     Flags
		hasParent bool
		want      uint32
	}{
		{"default", Default, false, WSVisible | WSCaption | WSSysMenu | WSMinimizeBox | WSMaximizeBox | WSThickFrame},
		{"no resize", DefaultNoResize, false, WSVisible | WSCaption | WSSysMenu | WSMinimizeBox},
		{"invisible", CloseButton | Invisible, false, WSCaption | WSSysMenu},
		{"child", 0, true, WSPopup | WSVisible},
		{"custom border", CustomBorder, false, WSPopup | WSVisible | WSCaption | WSSysMenu},
		{"nothing", 0, false, WSVisible},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Win32Style(tt.flags, tt.hasParent))
		})
	}
}

func TestWin32StyleSingleFlags(t *testing.T) {
	for _, f := range allSingles {
		ws := Win32Style(f, false)
		if f == Invisible {
			assert.Zero(t, ws&WSVisible)
		} else {
			assert.NotZero(t, ws&WSVisible, f.String())
		}
	}
}

func TestShowCommand(t *testing.T) {
	assert.Equal(t, SWShowNormal, ShowCommand(Restored, Default))
	assert.Equal(t, SWShowMinimized, ShowCommand(Minimized, Default))
	assert.Equal(t, SWShowMaximized, ShowCommand(Maximized, Default))
	assert.Equal(t, SWHide, ShowCommand(Maximized, Default|Invisible))
}
