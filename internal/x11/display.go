package x11

import (
	"errors"
	"fmt"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Seams for display lookup.
var (
	getenvFn      = os.Getenv
	loginctlFn    = loginctl
	procEnvironFn = procEnviron
	socketsFn     = localDisplays
	liveSocketFn  = socketAccepts
)

const x11SocketDir = "/tmp/.X11-unix"

var errNoDisplay = errors.New("no X display: set display in the config file or DISPLAY, or start a graphical session")

// displayEnv is the display a connection will use, the authority file for
// it and a description of where the display name came from.
type displayEnv struct {
	Display    string
	XAuthority string
	Source     string
}

func (e displayEnv) String() string {
	return fmt.Sprintf("%s (from %s)", e.Display, e.Source)
}

// resolveDisplay picks the display for a new connection. Candidates are
// tried in order: the explicit name, $DISPLAY, a graphical logind session
// of the current user, then the lowest local socket that accepts
// connections. The authority file is $XAUTHORITY, the session leader's,
// or ~/.Xauthority when it exists.
func resolveDisplay(explicit string) (displayEnv, error) {
	env := displayEnv{XAuthority: strings.TrimSpace(getenvFn("XAUTHORITY"))}

	switch {
	case strings.TrimSpace(explicit) != "":
		env.Display, env.Source = strings.TrimSpace(explicit), "config"
	case strings.TrimSpace(getenvFn("DISPLAY")) != "":
		env.Display, env.Source = strings.TrimSpace(getenvFn("DISPLAY")), "$DISPLAY"
	}

	if env.Display == "" || env.XAuthority == "" {
		if s, ok := sessionDisplay(); ok {
			if env.Display == "" {
				env.Display, env.Source = s.Display, "login session "+s.ID
			}
			if env.XAuthority == "" {
				env.XAuthority = s.XAuthority
			}
		}
	}

	if env.Display == "" {
		for _, n := range socketsFn(x11SocketDir) {
			path := filepath.Join(x11SocketDir, "X"+strconv.Itoa(n))
			if liveSocketFn(path) {
				env.Display, env.Source = ":"+strconv.Itoa(n), path
				break
			}
		}
	}
	if env.Display == "" {
		return displayEnv{}, errNoDisplay
	}

	if env.XAuthority == "" {
		if home := getenvFn("HOME"); home != "" {
			if _, err := os.Stat(filepath.Join(home, ".Xauthority")); err == nil {
				env.XAuthority = filepath.Join(home, ".Xauthority")
			}
		}
	}
	return env, nil
}

// logindSession is what a display lookup needs from one session.
type logindSession struct {
	ID         string
	Display    string
	Leader     string
	XAuthority string
}

// sessionDisplay returns the first session of the current user that has
// an X display. The leader's environment wins over logind's Display
// property, since Xwayland sessions only expose it there.
func sessionDisplay() (logindSession, bool) {
	out, err := loginctlFn("list-sessions", "--no-legend")
	if err != nil {
		return logindSession{}, false
	}
	for _, id := range userSessions(out, os.Getuid()) {
		props, err := loginctlFn("show-session", id, "-p", "Display", "-p", "Leader")
		if err != nil {
			continue
		}
		s := parseSession(id, props)
		if env := procEnvironFn(s.Leader); env != nil {
			if d := env["DISPLAY"]; d != "" {
				s.Display = d
			}
			s.XAuthority = env["XAUTHORITY"]
		}
		if s.Display != "" {
			return s, true
		}
	}
	return logindSession{}, false
}

// userSessions picks the session IDs owned by uid from list-sessions
// output (ID UID USER SEAT TTY).
func userSessions(out string, uid int) []string {
	want := strconv.Itoa(uid)
	var ids []string
	for _, line := range strings.Split(out, "\n") {
		if f := strings.Fields(line); len(f) >= 2 && f[1] == want {
			ids = append(ids, f[0])
		}
	}
	return ids
}

// parseSession reads KEY=VALUE lines from show-session.
func parseSession(id, props string) logindSession {
	s := logindSession{ID: id}
	for _, line := range strings.Split(props, "\n") {
		k, v, _ := strings.Cut(strings.TrimSpace(line), "=")
		switch k {
		case "Display":
			s.Display = v
		case "Leader":
			if v != "0" {
				s.Leader = v
			}
		}
	}
	return s
}

func loginctl(args ...string) (string, error) {
	out, err := exec.Command("loginctl", args...).Output()
	return string(out), err
}

// procEnviron returns the environment of pid, or nil if it is unreadable.
func procEnviron(pid string) map[string]string {
	if pid == "" {
		return nil
	}
	data, err := os.ReadFile(filepath.Join("/proc", pid, "environ"))
	if err != nil {
		return nil
	}
	env := make(map[string]string)
	for _, kv := range strings.Split(string(data), "\x00") {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = v
		}
	}
	return env
}

// localDisplays lists the display numbers with a socket in dir, lowest
// first.
func localDisplays(dir string) []int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var displays []int
	for _, e := range entries {
		if n, ok := strings.CutPrefix(e.Name(), "X"); ok {
			if d, err := strconv.Atoi(n); err == nil {
				displays = append(displays, d)
			}
		}
	}
	slices.Sort(displays)
	return displays
}

// socketAccepts reports whether a server is listening on path. Sockets
// left behind by a crashed server refuse connections.
func socketAccepts(path string) bool {
	c, err := net.DialTimeout("unix", path, 250*time.Millisecond)
	if err != nil {
		return false
	}
	c.Close()
	return true
}
