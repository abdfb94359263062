package input

import (
	"sync"

	"github.com/1broseidon/nativewin/internal/ids"
)

// Listener receives decoded events. Listeners run on the event pump
// goroutine, never on the goroutine that owns the window.
type Listener func(Event)

type entry struct {
	id ids.ID
	fn Listener
}

// Listeners is a registry of event callbacks. Registration copies the
// slice so Dispatch can iterate without holding the lock while callbacks
// run; callbacks may add or remove listeners.
type Listeners struct {
	mu      sync.RWMutex
	entries []entry
}

// Add registers fn and returns a token for Remove.
func (l *Listeners) Add(fn Listener) ids.ID {
	id := ids.Next()

	l.mu.Lock()
	defer l.mu.Unlock()

	next := make([]entry, len(l.entries), len(l.entries)+1)
	copy(next, l.entries)
	l.entries = append(next, entry{id: id, fn: fn})
	return id
}

// Remove unregisters the listener with the given token. It reports whether
// a listener was removed.
func (l *Listeners) Remove(id ids.ID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, e := range l.entries {
		if e.id != id {
			continue
		}
		next := make([]entry, 0, len(l.entries)-1)
		next = append(next, l.entries[:i]...)
		next = append(next, l.entries[i+1:]...)
		l.entries = next
		return true
	}
	return false
}

// Len returns the number of registered listeners.
func (l *Listeners) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Dispatch calls every listener, in registration order, with ev.
func (l *Listeners) Dispatch(ev Event) {
	l.mu.RLock()
	entries := l.entries
	l.mu.RUnlock()

	for _, e := range entries {
		e.fn(ev)
	}
}

// On registers a callback that only sees events of type E.
func On[E Event](l *Listeners, fn func(E)) ids.ID {
	return l.Add(func(ev Event) {
		if typed, ok := ev.(E); ok {
			fn(typed)
		}
	})
}
