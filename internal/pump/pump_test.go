package pump

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	wakeEvent  = -1
	closeEvent = 99
)

type fakeSource struct {
	ch     chan int
	wakes  atomic.Int32
	errs   chan error
	closed chan struct{}
	once   sync.Once
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		ch:     make(chan int, 64),
		errs:   make(chan error, 4),
		closed: make(chan struct{}),
	}
}

func (s *fakeSource) Next() (int, error) {
	select {
	case err := <-s.errs:
		return 0, err
	case v := <-s.ch:
		return v, nil
	case <-s.closed:
		return 0, ErrSourceClosed
	}
}

func (s *fakeSource) Wake() error {
	s.wakes.Add(1)
	select {
	case s.ch <- wakeEvent:
	default:
	}
	return nil
}

func (s *fakeSource) close() { s.once.Do(func() { close(s.closed) }) }

type recorder struct {
	mu  sync.Mutex
	got []int
}

func (r *recorder) add(v int) {
	r.mu.Lock()
	r.got = append(r.got, v)
	r.mu.Unlock()
}

func (r *recorder) snapshot() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.got...)
}

func TestRunningAfterStart(t *testing.T) {
	src := newFakeSource()
	m := New[int](src, func(int) {}, Options[int]{})
	assert.Equal(t, Created, m.State())
	assert.False(t, m.Running())

	require.NoError(t, m.Start())
	assert.True(t, m.Running())
	assert.ErrorIs(t, m.Start(), ErrNotCreated)

	m.Stop()
	require.NoError(t, m.Join(time.Second))
}

func TestStopWakesBlockedLoop(t *testing.T) {
	src := newFakeSource()
	m := New[int](src, func(int) {}, Options[int]{})
	require.NoError(t, m.Start())

	m.Stop()
	assert.False(t, m.Running())
	require.NoError(t, m.Join(time.Second), "loop should exit after the wake event")
	assert.Equal(t, Stopped, m.State())
	assert.EqualValues(t, 1, src.wakes.Load())
}

func TestStopIsIdempotent(t *testing.T) {
	src := newFakeSource()
	m := New[int](src, func(int) {}, Options[int]{})
	require.NoError(t, m.Start())

	m.Stop()
	m.Stop()
	require.NoError(t, m.Join(time.Second))
	m.Stop()

	assert.EqualValues(t, 1, src.wakes.Load())
	assert.Equal(t, Stopped, m.State())
}

func TestStopBeforeStart(t *testing.T) {
	src := newFakeSource()
	m := New[int](src, func(int) {}, Options[int]{})
	m.Stop()

	assert.Equal(t, Stopped, m.State())
	assert.ErrorIs(t, m.Start(), ErrNotCreated)
	select {
	case <-m.Done():
	default:
		t.Fatal("Done should be closed")
	}
	assert.Zero(t, src.wakes.Load())
}

func TestCloseMessageStopsFromHandler(t *testing.T) {
	src := newFakeSource()
	rec := &recorder{}
	var m *Manager[int]
	m = New[int](src, func(v int) {
		rec.add(v)
		if v == closeEvent {
			m.Stop()
		}
	}, Options[int]{Name: "test"})
	require.NoError(t, m.Start())

	src.ch <- 1
	src.ch <- 2
	src.ch <- closeEvent

	select {
	case <-m.Done():
	case <-time.After(time.Second):
		t.Fatal("loop did not stop after close message")
	}
	assert.Equal(t, []int{1, 2, closeEvent}, rec.snapshot())
	assert.False(t, m.Running())
}

func TestFilterConsumesEvents(t *testing.T) {
	src := newFakeSource()
	rec := &recorder{}
	var m *Manager[int]
	m = New[int](src, func(v int) {
		if v == closeEvent {
			m.Stop()
			return
		}
		rec.add(v)
	}, Options[int]{Filter: func(v int) bool { return v%2 == 0 }})
	require.NoError(t, m.Start())

	for i := 1; i <= 6; i++ {
		src.ch <- i
	}
	src.ch <- closeEvent
	require.NoError(t, m.Join(time.Second))

	assert.Equal(t, []int{1, 3, 5}, rec.snapshot())
}

func TestEventsDispatchedInOrder(t *testing.T) {
	src := newFakeSource()
	rec := &recorder{}
	var m *Manager[int]
	m = New[int](src, func(v int) {
		if v == closeEvent {
			m.Stop()
			return
		}
		rec.add(v)
	}, Options[int]{})
	require.NoError(t, m.Start())

	want := make([]int, 0, 40)
	for i := 0; i < 40; i++ {
		src.ch <- i
		want = append(want, i)
	}
	src.ch <- closeEvent
	require.NoError(t, m.Join(time.Second))
	assert.Equal(t, want, rec.snapshot())
}

func TestSourceClosedEndsLoop(t *testing.T) {
	src := newFakeSource()
	m := New[int](src, func(int) {}, Options[int]{})
	require.NoError(t, m.Start())

	src.close()
	require.NoError(t, m.Join(time.Second))
	assert.Equal(t, Stopped, m.State())
}

func TestTransientSourceErrorKeepsRunning(t *testing.T) {
	src := newFakeSource()
	rec := &recorder{}
	var m *Manager[int]
	m = New[int](src, func(v int) {
		rec.add(v)
		if v == closeEvent {
			m.Stop()
		}
	}, Options[int]{})
	require.NoError(t, m.Start())

	src.errs <- errors.New("BadWindow")
	time.Sleep(10 * time.Millisecond)
	assert.True(t, m.Running())

	src.ch <- closeEvent
	require.NoError(t, m.Join(time.Second))
	assert.Equal(t, []int{closeEvent}, rec.snapshot())
}

func TestJoinTimeout(t *testing.T) {
	src := newFakeSource()
	block := make(chan struct{})
	m := New[int](src, func(int) { <-block }, Options[int]{})
	require.NoError(t, m.Start())

	src.ch <- 1
	time.Sleep(10 * time.Millisecond)
	m.Stop()
	assert.ErrorIs(t, m.Join(20*time.Millisecond), ErrJoinTimeout)

	close(block)
	require.NoError(t, m.Join(time.Second))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "State(9)", State(9).String())
}

func TestSetupRunsOnEventGoroutineBeforeNext(t *testing.T) {
	src := newFakeSource()
	rec := &recorder{}
	var m *Manager[int]
	m = New[int](src, func(v int) {
		rec.add(v)
		if v == closeEvent {
			m.Stop()
		}
	}, Options[int]{
		LockThread: true,
		Setup: func() error {
			rec.add(0)
			return nil
		},
	})
	require.NoError(t, m.Start())

	src.ch <- closeEvent
	require.NoError(t, m.Join(time.Second))
	assert.Equal(t, []int{0, closeEvent}, rec.snapshot())
}

func TestSetupErrorFailsStart(t *testing.T) {
	src := newFakeSource()
	setupErr := errors.New("RegisterClassExW failed")
	m := New[int](src, func(int) { t.Error("handler must not run") }, Options[int]{
		Setup: func() error { return setupErr },
	})

	assert.ErrorIs(t, m.Start(), setupErr)
	require.NoError(t, m.Join(time.Second))
	assert.Equal(t, Stopped, m.State())
	assert.ErrorIs(t, m.Start(), ErrNotCreated)
}

func TestTeardownRunsBeforeDone(t *testing.T) {
	src := newFakeSource()
	var tornDown atomic.Bool
	m := New[int](src, func(int) {}, Options[int]{
		Teardown: func() { tornDown.Store(true) },
	})
	require.NoError(t, m.Start())
	assert.False(t, tornDown.Load())

	m.Stop()
	<-m.Done()
	assert.True(t, tornDown.Load())
}
