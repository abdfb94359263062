package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1broseidon/nativewin/internal/input"
)

func TestX11KeyLookups(t *testing.T) {
	tests := []struct {
		name   string
		keysym uint32
		want   input.KeyboardKey
	}{
		{"lowercase letter", 0x61, input.KeyA},
		{"uppercase letter", 0x5a, input.KeyZ},
		{"digit", 0x37, input.Key7},
		{"function key", 0xffc9, input.KeyF12},
		{"left shift", 0xffe1, input.KeyLeftShift},
		{"altgr", 0xfe03, input.KeyRightAlt},
		{"keypad home", 0xff95, input.KeyNumpad7},
		{"keypad seven", 0xffb7, input.KeyNumpad7},
		{"keypad enter", 0xff8d, input.KeyNumpadEnter},
		{"bracket", 0x5d, input.KeyRightBracket},
		{"arrow up", 0xff52, input.KeyArrowUp},
		{"arrow right", 0xff53, input.KeyArrowRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := X11Keys.Portable(tt.keysym)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestX11ReverseLookupIsCanonical(t *testing.T) {
	keysym, ok := X11Keys.Native(input.KeyA)
	require.True(t, ok)
	assert.Equal(t, uint32(0x61), keysym, "letters map back to the unshifted keysym")

	keysym, ok = X11Keys.Native(input.KeyNumpad7)
	require.True(t, ok)
	assert.Equal(t, uint32(0xffb7), keysym)

	keysym, ok = X11Keys.Native(input.KeyTab)
	require.True(t, ok)
	assert.Equal(t, uint32(0xff09), keysym)
}

func TestLookupMissReportsNotFound(t *testing.T) {
	_, ok := X11Keys.Portable(0x1008ff13) // XF86AudioRaiseVolume
	assert.False(t, ok)

	_, ok = X11Keys.Native(input.KeyUnknown)
	assert.False(t, ok)

	_, ok = Win32Keys.Native(input.KeyNumpadEnter)
	assert.False(t, ok)

	_, ok = X11Buttons.Portable(4)
	assert.False(t, ok, "wheel buttons are not mouse buttons")

	_, ok = Win32Buttons.Native(input.ButtonUnknown)
	assert.False(t, ok)
}

func TestLookupsAreStable(t *testing.T) {
	first, ok := Win32Keys.Portable(0xbb)
	require.True(t, ok)
	for i := 0; i < 10; i++ {
		again, ok := Win32Keys.Portable(0xbb)
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, input.KeyEqual, first)
}

func TestWin32ModifierPrecedence(t *testing.T) {
	vk, ok := Win32Keys.Native(input.KeyLeftShift)
	require.True(t, ok)
	assert.Equal(t, uint32(0xa0), vk)

	key, ok := Win32Keys.Portable(0x10)
	require.True(t, ok)
	assert.Equal(t, input.KeyLeftShift, key)
}

func TestEveryPortableKeyRoundTrips(t *testing.T) {
	for _, tbl := range []struct {
		name string
		t    *KeyTable
	}{{"x11", X11Keys}, {"win32", Win32Keys}} {
		for _, k := range input.AllKeys() {
			native, ok := tbl.t.Native(k)
			if !ok {
				continue
			}
			back, ok := tbl.t.Portable(native)
			require.True(t, ok, "%s: %s", tbl.name, k)
			assert.Equal(t, k, back, "%s: %s", tbl.name, k)
		}
	}
}

func TestButtonTables(t *testing.T) {
	for _, b := range []input.MouseButton{
		input.ButtonLeft, input.ButtonMiddle, input.ButtonRight, input.ButtonBack, input.ButtonForward,
	} {
		code, ok := X11Buttons.Native(b)
		require.True(t, ok, b.String())
		back, _ := X11Buttons.Portable(code)
		assert.Equal(t, b, back)

		code, ok = Win32Buttons.Native(b)
		require.True(t, ok, b.String())
		back, _ = Win32Buttons.Portable(code)
		assert.Equal(t, b, back)
	}
	right, _ := X11Buttons.Portable(3)
	assert.Equal(t, input.ButtonRight, right)
}

func TestTableKeepsFirstNativeMapping(t *testing.T) {
	tbl := NewTable([]Pair[uint32, string]{
		{Native: 1, Portable: "one"},
		{Native: 1, Portable: "uno"},
		{Native: 2, Portable: "one"},
	})
	assert.Equal(t, 2, tbl.Len())
	p, _ := tbl.Portable(1)
	assert.Equal(t, "one", p)
	n, _ := tbl.Native("one")
	assert.Equal(t, uint32(1), n)
	_, ok := tbl.Native("uno")
	assert.True(t, ok)
}
