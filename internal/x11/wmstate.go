package x11

import (
	"fmt"
	"slices"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"

	"github.com/1broseidon/nativewin/internal/style"
)

// sourceIndication marks requests as coming from a normal application.
const sourceIndication = 1

// sendRootMessage delivers a client message about window to the window
// manager through the root window. The message is built by hand because
// the xgbutil ewmh request helpers panic on this library version.
func (c *Connection) sendRootMessage(window xproto.Window, msgType string, data ...uint32) error {
	atom, err := c.Atom(msgType)
	if err != nil {
		return err
	}

	words := make([]uint32, 5)
	copy(words, data)
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: window,
		Type:   atom,
		Data:   xproto.ClientMessageDataUnionData32New(words),
	}

	return xproto.SendEventChecked(
		c.XUtil.Conn(),
		false,
		c.Root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
}

// changeWMState adds, removes or toggles up to two _NET_WM_STATE atoms.
func (c *Connection) changeWMState(window xproto.Window, action style.Action, states ...string) error {
	if len(states) == 0 || len(states) > 2 {
		return fmt.Errorf("_NET_WM_STATE takes one or two properties, got %d", len(states))
	}
	data := []uint32{uint32(action), 0, 0, sourceIndication}
	for i, name := range states {
		atom, err := c.Atom(name)
		if err != nil {
			return err
		}
		data[i+1] = uint32(atom)
	}
	return c.sendRootMessage(window, style.AtomWMState, data...)
}

// iconify asks the window manager to minimize window.
func (c *Connection) iconify(window xproto.Window) error {
	return c.sendRootMessage(window, style.AtomWMChangeState, style.IconicState)
}

// activate raises and focuses window using _NET_ACTIVE_WINDOW.
func (c *Connection) activate(window xproto.Window) error {
	return c.sendRootMessage(window, "_NET_ACTIVE_WINDOW", sourceIndication)
}

// hasWMState reports whether window currently carries the state atom.
func (c *Connection) hasWMState(window xproto.Window, state string) bool {
	states, err := ewmh.WmStateGet(c.XUtil, window)
	if err != nil {
		return false
	}
	return slices.Contains(states, state)
}

// applyState moves a mapped window to s.
func (c *Connection) applyState(window xproto.Window, s style.State) error {
	switch s {
	case style.Minimized:
		return c.iconify(window)
	case style.Maximized:
		return c.changeWMState(window, style.ActionAdd, style.StateAtoms(style.Maximized)...)
	default:
		if err := c.changeWMState(window, style.ActionRemove, style.StateAtoms(style.Maximized)...); err != nil {
			return err
		}
		// Mapping an iconic window restores it; activation raises it.
		if err := xproto.MapWindowChecked(c.XUtil.Conn(), window).Check(); err != nil {
			return err
		}
		return c.activate(window)
	}
}
