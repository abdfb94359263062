package x11

import (
	"log/slog"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1broseidon/nativewin/internal/geom"
	"github.com/1broseidon/nativewin/internal/input"
	"github.com/1broseidon/nativewin/internal/units"
)

const (
	testWindow   xproto.Window  = 0x400001
	testProtos   xproto.Atom    = 301
	testDelete   xproto.Atom    = 302
	keycodeA     xproto.Keycode = 38
	keycodeOne   xproto.Keycode = 10
	keycodeKP7   xproto.Keycode = 79
	keycodeCtrlL xproto.Keycode = 37
)

var testKeyboard = map[xproto.Keycode][2]xproto.Keysym{
	keycodeA:     {0x61, 0x41},
	keycodeOne:   {0x31, 0x21},
	keycodeKP7:   {0xff95, 0xffb7},
	keycodeCtrlL: {0xffe3, 0},
}

func fakeKeysyms(code xproto.Keycode, col byte) xproto.Keysym {
	if col > 1 {
		return 0
	}
	return testKeyboard[code][col]
}

func newTestTranslator(dpi float64) *translator {
	return &translator{
		window:       testWindow,
		units:        units.NewConverter(dpi),
		mods:         modMasks{alt: xproto.ModMask1, super: xproto.ModMask4, numLock: xproto.ModMask2},
		keysym:       fakeKeysyms,
		wmProtocols:  testProtos,
		deleteWindow: testDelete,
		size:         geom.V[geom.Pixels](500, 400),
	}
}

func keyPress(code xproto.Keycode, state uint16) nativeEvent {
	return nativeEvent{ev: xproto.KeyPressEvent{Detail: code, Event: testWindow, State: state}}
}

func TestKeyPressProducesKeyDownAndText(t *testing.T) {
	tr := newTestTranslator(96)

	got := tr.translate(keyPress(keycodeA, 0))
	require.Len(t, got, 2)
	assert.Equal(t, input.KeyDown{Key: input.KeyA, Native: 0x61}, got[0])
	assert.Equal(t, input.TextInput{Text: "a"}, got[1])
}

func TestKeyPressText(t *testing.T) {
	tests := []struct {
		name  string
		code  xproto.Keycode
		state uint16
		want  string
	}{
		{"shift letter", keycodeA, xproto.ModMaskShift, "A"},
		{"caps letter", keycodeA, xproto.ModMaskLock, "A"},
		{"shift digit", keycodeOne, xproto.ModMaskShift, "!"},
		{"caps digit", keycodeOne, xproto.ModMaskLock, "1"},
		{"keypad with numlock", keycodeKP7, xproto.ModMask2, "7"},
		{"keypad without numlock", keycodeKP7, 0, ""},
		{"control chord", keycodeA, xproto.ModMaskControl, ""},
		{"alt chord", keycodeA, xproto.ModMask1, ""},
		{"modifier key", keycodeCtrlL, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestTranslator(96)
			var text string
			for _, ev := range tr.translate(keyPress(tt.code, tt.state)) {
				if ti, ok := ev.(input.TextInput); ok {
					text = ti.Text
				}
			}
			assert.Equal(t, tt.want, text)
		})
	}
}

func TestKeyPressModifiersAndRepeat(t *testing.T) {
	tr := newTestTranslator(96)
	ne := keyPress(keycodeA, xproto.ModMaskShift|xproto.ModMaskControl)
	ne.repeat = true

	got := tr.translate(ne)
	require.Len(t, got, 1)
	down := got[0].(input.KeyDown)
	assert.True(t, down.Repeat)
	assert.Equal(t, input.ModShift|input.ModControl, down.Modifiers)
	assert.Equal(t, input.KeyA, down.Key)
}

func TestKeypadKeyMapsRegardlessOfNumLock(t *testing.T) {
	tr := newTestTranslator(96)
	got := tr.translate(keyPress(keycodeKP7, 0))
	require.NotEmpty(t, got)
	assert.Equal(t, input.KeyNumpad7, got[0].(input.KeyDown).Key)
}

func TestUnmappedKeyKeepsNativeCode(t *testing.T) {
	testKeyboard[200] = [2]xproto.Keysym{0x1008ff13, 0}
	defer delete(testKeyboard, 200)

	tr := newTestTranslator(96)
	got := tr.translate(keyPress(200, 0))
	require.Len(t, got, 1)
	assert.Equal(t, input.KeyDown{Key: input.KeyUnknown, Native: 0x1008ff13}, got[0])
}

func TestKeyRelease(t *testing.T) {
	tr := newTestTranslator(96)
	got := tr.translate(nativeEvent{ev: xproto.KeyReleaseEvent{Detail: keycodeA, State: xproto.ModMaskShift}})
	assert.Equal(t, []input.Event{input.KeyUp{Key: input.KeyA, Native: 0x61, Modifiers: input.ModShift}}, got)
}

func TestButtonsScaleToDip(t *testing.T) {
	tr := newTestTranslator(192)

	got := tr.translate(nativeEvent{ev: xproto.ButtonPressEvent{Detail: 1, EventX: 100, EventY: 40}})
	assert.Equal(t, []input.Event{input.MouseButtonDown{Button: input.ButtonLeft, Position: geom.V[geom.Dip](50, 20)}}, got)

	got = tr.translate(nativeEvent{ev: xproto.ButtonReleaseEvent{Detail: 3, EventX: 10, EventY: 10}})
	assert.Equal(t, []input.Event{input.MouseButtonUp{Button: input.ButtonRight, Position: geom.V[geom.Dip](5, 5)}}, got)

	got = tr.translate(nativeEvent{ev: xproto.ButtonPressEvent{Detail: 9}})
	require.Len(t, got, 1)
	assert.Equal(t, input.ButtonForward, got[0].(input.MouseButtonDown).Button)

	assert.Empty(t, tr.translate(nativeEvent{ev: xproto.ButtonPressEvent{Detail: 12}}))
}

func TestWheelButtonsBecomeScroll(t *testing.T) {
	tr := newTestTranslator(96)
	tests := []struct {
		button xproto.Button
		dx, dy float64
	}{
		{4, 0, 1},
		{5, 0, -1},
		{6, -1, 0},
		{7, 1, 0},
	}
	for _, tt := range tests {
		got := tr.translate(nativeEvent{ev: xproto.ButtonPressEvent{Detail: tt.button}})
		require.Len(t, got, 1)
		scroll := got[0].(input.Scroll)
		assert.Equal(t, tt.dx, scroll.DX)
		assert.Equal(t, tt.dy, scroll.DY)

		assert.Empty(t, tr.translate(nativeEvent{ev: xproto.ButtonReleaseEvent{Detail: tt.button}}),
			"wheel release is not reported")
	}
}

func TestConfigureNotify(t *testing.T) {
	tr := newTestTranslator(192)

	got := tr.translate(nativeEvent{ev: xproto.ConfigureNotifyEvent{Window: testWindow, X: 10, Y: 20, Width: 600, Height: 400}})
	require.Len(t, got, 2)
	assert.Equal(t, input.Resize{Size: geom.V[geom.Dip](300, 200), Pixels: geom.V[geom.Pixels](600, 400)}, got[0])
	assert.Equal(t, input.Move{Position: geom.V[geom.Pixels](10, 20)}, got[1])

	got = tr.translate(nativeEvent{ev: xproto.ConfigureNotifyEvent{Window: testWindow, X: 10, Y: 20, Width: 600, Height: 400}})
	assert.Empty(t, got, "unchanged geometry is not reported")

	got = tr.translate(nativeEvent{ev: xproto.ConfigureNotifyEvent{Window: 0x99, Width: 1, Height: 1}})
	assert.Empty(t, got)
}

func TestDeleteWindowMessage(t *testing.T) {
	tr := newTestTranslator(96)

	msg := xproto.ClientMessageEvent{
		Format: 32,
		Window: testWindow,
		Type:   testProtos,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{uint32(testDelete), 0, 0, 0, 0}),
	}
	assert.Equal(t, []input.Event{input.CloseRequested{}}, tr.translate(nativeEvent{ev: msg}))

	msg.Data = xproto.ClientMessageDataUnionData32New([]uint32{999, 0, 0, 0, 0})
	assert.Empty(t, tr.translate(nativeEvent{ev: msg}))

	msg.Type = 7
	msg.Data = xproto.ClientMessageDataUnionData32New([]uint32{uint32(testDelete), 0, 0, 0, 0})
	assert.Empty(t, tr.translate(nativeEvent{ev: msg}))
}

func TestPointerCrossingAndFocus(t *testing.T) {
	tr := newTestTranslator(96)

	assert.Equal(t, []input.Event{input.MouseEnter{Position: geom.V[geom.Dip](3, 4)}},
		tr.translate(nativeEvent{ev: xproto.EnterNotifyEvent{EventX: 3, EventY: 4}}))
	assert.Equal(t, []input.Event{input.MouseLeave{}},
		tr.translate(nativeEvent{ev: xproto.LeaveNotifyEvent{}}))
	assert.Equal(t, []input.Event{input.MouseMotion{Position: geom.V[geom.Dip](7, 8), Modifiers: input.ModSuper}},
		tr.translate(nativeEvent{ev: xproto.MotionNotifyEvent{EventX: 7, EventY: 8, State: xproto.ModMask4}}))

	assert.Equal(t, []input.Event{input.FocusIn{}},
		tr.translate(nativeEvent{ev: xproto.FocusInEvent{Detail: xproto.NotifyDetailNonlinear}}))
	assert.Equal(t, []input.Event{input.FocusOut{}},
		tr.translate(nativeEvent{ev: xproto.FocusOutEvent{Detail: xproto.NotifyDetailAncestor}}))
	assert.Empty(t, tr.translate(nativeEvent{ev: xproto.FocusInEvent{Detail: xproto.NotifyDetailPointer}}))
}

func TestUnknownEventsAreDropped(t *testing.T) {
	tr := newTestTranslator(96)
	assert.Empty(t, tr.translate(nativeEvent{ev: xproto.ExposeEvent{Window: testWindow}}))
	assert.Empty(t, tr.translate(nativeEvent{ev: xproto.MapNotifyEvent{Window: testWindow}}))
}

func TestConfigureNotifyOverridesRequestedSize(t *testing.T) {
	w := &Window{
		log:   slog.New(slog.DiscardHandler),
		id:    testWindow,
		units: units.NewConverter(96),
		tr:    newTestTranslator(96),
		size:  geom.V[geom.Pixels](500, 400),
	}
	var resizes []input.Resize
	input.On(&w.listeners, func(e input.Resize) { resizes = append(resizes, e) })

	// SetSize caches the request before the server answers.
	w.size = geom.V[geom.Pixels](300, 300)

	// The window manager refuses and reports the old size.
	w.handle(nativeEvent{ev: xproto.ConfigureNotifyEvent{Window: testWindow, Width: 500, Height: 400}})
	assert.Equal(t, geom.V[geom.Dip](500, 400), w.Size())
	assert.Empty(t, resizes, "server size did not change")

	w.handle(nativeEvent{ev: xproto.ConfigureNotifyEvent{Window: testWindow, Width: 640, Height: 480}})
	assert.Equal(t, geom.V[geom.Dip](640, 480), w.Size())
	require.Len(t, resizes, 1)
	assert.Equal(t, geom.V[geom.Pixels](640, 480), resizes[0].Pixels)

	// Events for other windows leave the cache alone.
	w.handle(nativeEvent{ev: xproto.ConfigureNotifyEvent{Window: testWindow + 1, Width: 10, Height: 10}})
	assert.Equal(t, geom.V[geom.Dip](640, 480), w.Size())
}
