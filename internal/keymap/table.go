// Package keymap holds the read-only lookup tables between platform key and
// button codes and the portable input enumeration.
//
// A platform may list several native codes for one portable key (X11 has
// both "a" and "A", and two keysyms per numpad key). The first pair listed
// for a portable value is the one returned by the reverse lookup.
package keymap

import "github.com/1broseidon/nativewin/internal/input"

// Pair binds one native code to one portable value.
type Pair[N comparable, P comparable] struct {
	Native   N
	Portable P
}

// Table is an immutable bidirectional map. Build it once with NewTable;
// lookups are safe from any goroutine.
type Table[N comparable, P comparable] struct {
	toPortable map[N]P
	toNative   map[P]N
}

// NewTable indexes pairs in both directions. Duplicate native codes keep
// their first mapping.
func NewTable[N comparable, P comparable](pairs []Pair[N, P]) *Table[N, P] {
	t := &Table[N, P]{
		toPortable: make(map[N]P, len(pairs)),
		toNative:   make(map[P]N, len(pairs)),
	}
	for _, p := range pairs {
		if _, seen := t.toPortable[p.Native]; !seen {
			t.toPortable[p.Native] = p.Portable
		}
		if _, seen := t.toNative[p.Portable]; !seen {
			t.toNative[p.Portable] = p.Native
		}
	}
	return t
}

// Portable finds the portable value for a native code.
func (t *Table[N, P]) Portable(native N) (P, bool) {
	p, ok := t.toPortable[native]
	return p, ok
}

// Native finds the canonical native code for a portable value.
func (t *Table[N, P]) Native(portable P) (N, bool) {
	n, ok := t.toNative[portable]
	return n, ok
}

// Len returns the number of distinct native codes.
func (t *Table[N, P]) Len() int {
	return len(t.toPortable)
}

// KeyTable maps native key codes to portable keys.
type KeyTable = Table[uint32, input.KeyboardKey]

// ButtonTable maps native button codes to portable mouse buttons.
type ButtonTable = Table[uint32, input.MouseButton]
