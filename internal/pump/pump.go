// Package pump runs the per-window event loop: one goroutine that blocks on
// a native event source and hands each event to a handler, in the order the
// source delivers them.
//
// The lifecycle is Created -> Running -> Stopping -> Stopped. Stop may be
// called from any goroutine, including the handler itself; it flips the
// state and asks the source to post a wake-up event so a blocked Next
// returns promptly.
package pump

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/1broseidon/nativewin/internal/logging"
)

// State is a lifecycle stage of a Manager.
type State int32

const (
	Created State = iota
	Running
	Stopping
	Stopped
)

func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case Running:
		return "running"
	case Stopping:
		return "stopping"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

var (
	// ErrSourceClosed is returned by a Source whose native queue is gone.
	// The loop exits without logging it.
	ErrSourceClosed = errors.New("pump: event source closed")
	// ErrJoinTimeout is returned by Join when the loop did not exit in time.
	ErrJoinTimeout = errors.New("pump: timed out waiting for event loop")
	// ErrNotCreated is returned by Start on a manager that already ran.
	ErrNotCreated = errors.New("pump: manager already started or stopped")
)

// Source is a blocking native event queue.
type Source[E any] interface {
	// Next blocks until an event is available.
	Next() (E, error)
	// Wake posts a no-op event so that a pending Next returns. It must
	// not block and must be safe to call from any goroutine.
	Wake() error
}

// Options tune a Manager.
type Options[E any] struct {
	// Name identifies the loop in log output.
	Name string
	// Filter reports events that are consumed before dispatch, such as
	// input-method composition events.
	Filter func(E) bool
	// LockThread pins the event goroutine to its OS thread. Systems whose
	// message queues belong to the creating thread need it.
	LockThread bool
	// Setup runs on the event goroutine before the first Next. A Setup
	// error is returned by Start and the manager ends Stopped.
	Setup func() error
	// Teardown runs on the event goroutine after the loop exits, when
	// Setup succeeded.
	Teardown func()
}

// Manager owns the event goroutine for one window.
type Manager[E any] struct {
	src     Source[E]
	handle  func(E)
	filter  func(E) bool
	lock    bool
	setup   func() error
	down    func()
	log     *slog.Logger
	state   atomic.Int32
	done    chan struct{}
	endOnce sync.Once
}

// New returns a manager in the Created state.
func New[E any](src Source[E], handle func(E), opts Options[E]) *Manager[E] {
	name := opts.Name
	if name == "" {
		name = "events"
	}
	return &Manager[E]{
		src:    src,
		handle: handle,
		filter: opts.Filter,
		lock:   opts.LockThread,
		setup:  opts.Setup,
		down:   opts.Teardown,
		log:    logging.L().With("pump", name),
		done:   make(chan struct{}),
	}
}

// Start spawns the event goroutine and waits for Setup, if any.
func (m *Manager[E]) Start() error {
	if !m.state.CompareAndSwap(int32(Created), int32(Running)) {
		return ErrNotCreated
	}
	m.log.Debug("event loop starting")
	ready := make(chan error, 1)
	go m.loop(ready)
	return <-ready
}

func (m *Manager[E]) loop(ready chan<- error) {
	defer m.finish()

	if m.lock {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
	}
	if m.setup != nil {
		if err := m.setup(); err != nil {
			ready <- err
			return
		}
	}
	if m.down != nil {
		defer m.down()
	}
	ready <- nil

	for m.State() == Running {
		ev, err := m.src.Next()
		if err != nil {
			if errors.Is(err, ErrSourceClosed) {
				return
			}
			m.log.Warn("event source error", "error", err)
			continue
		}
		// Stop may have landed while Next was blocked. The event that
		// woke us is dropped.
		if m.State() != Running {
			return
		}
		if m.filter != nil && m.filter(ev) {
			continue
		}
		m.handle(ev)
	}
}

func (m *Manager[E]) finish() {
	m.endOnce.Do(func() {
		m.state.Store(int32(Stopped))
		close(m.done)
		m.log.Debug("event loop stopped")
	})
}

// Stop requests the loop to exit. Calls after the first have no effect.
func (m *Manager[E]) Stop() {
	if m.state.CompareAndSwap(int32(Created), int32(Stopped)) {
		m.finish()
		return
	}
	if !m.state.CompareAndSwap(int32(Running), int32(Stopping)) {
		return
	}
	if err := m.src.Wake(); err != nil {
		m.log.Warn("could not wake event loop", "error", err)
	}
}

// State returns the current lifecycle stage.
func (m *Manager[E]) State() State {
	return State(m.state.Load())
}

// Running reports whether the loop is accepting events.
func (m *Manager[E]) Running() bool {
	return m.State() == Running
}

// Done is closed once the event goroutine has exited.
func (m *Manager[E]) Done() <-chan struct{} {
	return m.done
}

// Join waits for the event goroutine to exit. A non-positive timeout waits
// forever.
func (m *Manager[E]) Join(timeout time.Duration) error {
	if timeout <= 0 {
		<-m.done
		return nil
	}
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case <-m.done:
		return nil
	case <-t.C:
		return ErrJoinTimeout
	}
}
