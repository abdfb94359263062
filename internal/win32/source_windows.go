//go:build windows

package win32

import (
	"errors"

	"github.com/1broseidon/nativewin/internal/pump"
)

// source runs the thread message loop. Window procedures append decoded
// events to the window's pending queue during DispatchMessage; Next hands
// them out one at a time.
type source struct {
	w *Window
}

var _ pump.Source[event] = (*source)(nil)

func (s *source) Next() (event, error) {
	w := s.w
	for len(w.pending) == 0 {
		var m msg
		switch getMessage(&m) {
		case -1:
			return event{}, errors.New("GetMessage failed")
		case 0:
			return event{}, pump.ErrSourceClosed
		}
		if m.Message == wmWake && m.Hwnd == w.hwnd {
			return event{wake: true}, nil
		}
		translateMessage(&m)
		dispatchMessage(&m)
	}
	ev := w.pending[0]
	w.pending = w.pending[1:]
	return event{ev: ev}, nil
}

// Wake posts wmWake to the window. PostMessage is safe from any thread.
func (s *source) Wake() error {
	return postMessage(s.w.hwnd, wmWake, 0, 0)
}
