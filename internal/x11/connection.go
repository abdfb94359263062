package x11

import (
	"fmt"
	"os"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"

	"github.com/1broseidon/nativewin/internal/logging"
)

// Connection manages one X11 connection and the keyboard state derived
// from it. Each window owns its own connection so its event queue is not
// shared.
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window
}

// Connect opens a connection to display. An empty display is resolved
// from $DISPLAY, the login session or a local socket; errors name the
// display and where it came from.
func Connect(display string) (*Connection, error) {
	env, err := resolveDisplay(display)
	if err != nil {
		return nil, err
	}
	// xgb reads the authority file from the environment only.
	if env.XAuthority != "" && os.Getenv("XAUTHORITY") == "" {
		os.Setenv("XAUTHORITY", env.XAuthority)
	}

	xu, err := xgbutil.NewConnDisplay(env.Display)
	if err != nil {
		return nil, fmt.Errorf("display %s: %w", env, err)
	}
	logging.L().Debug("x11 connected", "display", env.Display, "source", env.Source)

	// Loads the keyboard and modifier maps used for keysym lookups.
	keybind.Initialize(xu)

	// Errors from unchecked requests reach this through source.Next.
	xevent.ErrorHandlerSet(xu, func(err xgb.Error) {
		logging.L().Warn("x11 protocol error", "display", env.Display, "error", err)
	})

	return &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
	}, nil
}

// Atom interns name.
func (c *Connection) Atom(name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(c.XUtil.Conn(), false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("intern %s: %w", name, err)
	}
	return reply.Atom, nil
}

// refreshKeyboard reloads the keyboard and modifier maps after a
// MappingNotify and returns the new modifier masks.
func (c *Connection) refreshKeyboard() modMasks {
	keyMap, modMap := keybind.MapsGet(c.XUtil)
	keybind.KeyMapSet(c.XUtil, keyMap)
	keybind.ModMapSet(c.XUtil, modMap)
	return discoverModMasks(c.XUtil)
}

// Close disconnects from the X server.
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}
