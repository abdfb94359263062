package input

import (
	"sync"
	"testing"

	"github.com/1broseidon/nativewin/internal/ids"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyboardKeyString(t *testing.T) {
	tests := map[KeyboardKey]string{
		KeyA:            "A",
		KeyZ:            "Z",
		Key0:            "0",
		Key9:            "9",
		KeyNumpad3:      "Numpad3",
		KeyF11:          "F11",
		KeyPageUp:       "PageUp",
		KeyUnknown:      "Unknown",
		KeyboardKey(-4): "KeyboardKey(-4)",
	}
	for key, want := range tests {
		assert.Equal(t, want, key.String())
	}
}

func TestEveryKeyHasAName(t *testing.T) {
	for _, k := range AllKeys() {
		require.True(t, k.Valid())
		assert.NotContains(t, k.String(), "KeyboardKey(", "key %d has no name", int(k))
	}
	assert.False(t, KeyUnknown.Valid())
}

func TestArrowKeysInKeyEvents(t *testing.T) {
	assert.Equal(t, "ArrowUp", KeyArrowUp.String())
	assert.Equal(t, "ArrowRight", KeyArrowRight.String())

	var l Listeners
	var keys []KeyboardKey
	On(&l, func(e KeyDown) { keys = append(keys, e.Key) })
	On(&l, func(e KeyUp) { keys = append(keys, e.Key) })

	l.Dispatch(KeyDown{Key: KeyArrowDown})
	l.Dispatch(KeyUp{Key: KeyArrowLeft})
	assert.Equal(t, []KeyboardKey{KeyArrowDown, KeyArrowLeft}, keys)
	assert.Equal(t, "KeyDown{ArrowDown }", KeyDown{Key: KeyArrowDown}.String())
}

func TestModifiersString(t *testing.T) {
	assert.Equal(t, "", Modifiers(0).String())
	assert.Equal(t, "Shift+Control", (ModShift | ModControl).String())
	assert.True(t, (ModShift | ModAlt).Has(ModAlt))
	assert.False(t, ModShift.Has(ModShift|ModAlt))
}

func TestListenersDispatchInOrder(t *testing.T) {
	var l Listeners
	var got []string

	l.Add(func(ev Event) { got = append(got, "first:"+ev.String()) })
	l.Add(func(ev Event) { got = append(got, "second:"+ev.String()) })

	l.Dispatch(FocusIn{})
	assert.Equal(t, []string{"first:FocusIn{}", "second:FocusIn{}"}, got)
}

func TestListenersRemove(t *testing.T) {
	var l Listeners
	calls := 0
	id := l.Add(func(Event) { calls++ })

	require.True(t, l.Remove(id))
	assert.False(t, l.Remove(id), "second remove should report nothing removed")

	l.Dispatch(FocusOut{})
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, l.Len())
}

func TestOnFiltersByType(t *testing.T) {
	var l Listeners
	var keys []KeyboardKey
	On(&l, func(e KeyDown) { keys = append(keys, e.Key) })

	l.Dispatch(KeyUp{Key: KeyB})
	l.Dispatch(KeyDown{Key: KeyA})
	l.Dispatch(MouseLeave{})

	assert.Equal(t, []KeyboardKey{KeyA}, keys)
}

func TestListenerMayRemoveItselfDuringDispatch(t *testing.T) {
	var l Listeners
	calls := 0

	var self ids.ID
	self = l.Add(func(Event) {
		calls++
		l.Remove(self)
	})

	l.Dispatch(FocusIn{})
	l.Dispatch(FocusIn{})
	assert.Equal(t, 1, calls)
}

func TestListenersConcurrentAddDispatch(t *testing.T) {
	var l Listeners
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				l.Add(func(Event) {})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				l.Dispatch(MouseLeave{})
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 400, l.Len())
}
