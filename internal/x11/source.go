package x11

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xevent"

	"github.com/1broseidon/nativewin/internal/pump"
)

// wakeAtomName is the ClientMessage type a window sends itself to unblock
// its event pump.
const wakeAtomName = "_NATIVEWIN_WAKE"

// source reads the X event queue of one connection. Events are buffered in
// the xgbutil queue so autorepeat pairs can be inspected before dispatch.
type source struct {
	xu     *xgbutil.XUtil
	window xproto.Window
	wake   xproto.Atom
}

var _ pump.Source[nativeEvent] = (*source)(nil)

// Next returns the next event. Protocol errors from unchecked requests go
// to the connection's xevent error handler and are not returned.
func (s *source) Next() (nativeEvent, error) {
	var ev xgb.Event
	for ev == nil {
		if xevent.Empty(s.xu) {
			e, err := s.xu.Conn().WaitForEvent()
			if e == nil && err == nil {
				return nativeEvent{}, pump.ErrSourceClosed
			}
			xevent.Enqueue(s.xu, e, err)
		}

		var xerr xgb.Error
		ev, xerr = xevent.Dequeue(s.xu)
		if xerr != nil {
			xevent.ErrorHandlerGet(s.xu)(xerr)
		}
	}

	// Autorepeat arrives as a release immediately followed by a press with
	// the same keycode and timestamp. Fold the pair into one repeat press.
	if rel, ok := ev.(xproto.KeyReleaseEvent); ok {
		s.poll()
		if queued := xevent.Peek(s.xu); len(queued) > 0 {
			if press, ok := queued[0].Event.(xproto.KeyPressEvent); ok &&
				press.Detail == rel.Detail && press.Time == rel.Time {
				xevent.Dequeue(s.xu)
				return nativeEvent{ev: press, repeat: true}, nil
			}
		}
	}
	return nativeEvent{ev: ev}, nil
}

// poll moves everything the server has already sent into the queue
// without blocking.
func (s *source) poll() {
	for {
		ev, err := s.xu.Conn().PollForEvent()
		if ev == nil && err == nil {
			return
		}
		xevent.Enqueue(s.xu, ev, err)
	}
}

// Wake sends the window a client message of the wake type. With an empty
// event mask the server delivers it to the client that created the
// window, which is this connection.
func (s *source) Wake() error {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: s.window,
		Type:   s.wake,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{0, 0, 0, 0, 0}),
	}
	return xproto.SendEventChecked(s.xu.Conn(), false, s.window, 0, string(ev.Bytes())).Check()
}

// isWake reports whether ne is a wake message sent by Wake.
func (s *source) isWake(ne nativeEvent) bool {
	cm, ok := ne.ev.(xproto.ClientMessageEvent)
	return ok && cm.Type == s.wake
}
