// Package style describes window decorations and capabilities and translates
// them into the native window-manager vocabulary of each backend. Every
// translator is total over the flag space: combinations a platform cannot
// express are passed through best-effort, never rejected.
package style

import (
	"fmt"
	"sort"
	"strings"
)

// Flags is a set of decoration and capability bits.
type Flags uint32

const (
	CloseButton Flags = 1 << iota
	Invisible
	MinimizeButton
	MaximizeButton
	Resizable
	// CustomBorder removes the native frame. The client area covers the
	// whole window and the application draws and hit-tests its own title
	// bar and resize edges.
	CustomBorder

	Default         = CloseButton | MinimizeButton | MaximizeButton | Resizable
	DefaultNoResize = CloseButton | MinimizeButton
	DefaultCustom   = Default | CustomBorder
)

// Has reports whether every bit of other is set in f.
func (f Flags) Has(other Flags) bool {
	return f&other == other
}

var flagNames = []struct {
	flag Flags
	name string
}{
	{CloseButton, "close"},
	{Invisible, "invisible"},
	{MinimizeButton, "minimize"},
	{MaximizeButton, "maximize"},
	{Resizable, "resizable"},
	{CustomBorder, "custom_border"},
}

var presets = map[string]Flags{
	"default":           Default,
	"default_no_resize": DefaultNoResize,
	"default_custom":    DefaultCustom,
	"none":              0,
}

func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	rest := f
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
			rest &^= fn.flag
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// ParseFlags combines flag and preset names, as written in configuration
// files, into a Flags value. An empty list yields Default.
func ParseFlags(names []string) (Flags, error) {
	if len(names) == 0 {
		return Default, nil
	}
	var f Flags
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if p, ok := presets[name]; ok {
			f |= p
			continue
		}
		found := false
		for _, fn := range flagNames {
			if fn.name == name {
				f |= fn.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown style %q (valid: %s)", raw, strings.Join(Names(), ", "))
		}
	}
	return f, nil
}

// Names lists every accepted flag and preset name.
func Names() []string {
	out := make([]string, 0, len(flagNames)+len(presets))
	for _, fn := range flagNames {
		out = append(out, fn.name)
	}
	for name := range presets {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// State is the initial or requested show state of a window.
type State int

const (
	Restored State = iota
	Minimized
	Maximized
)

func (s State) String() string {
	switch s {
	case Restored:
		return "restored"
	case Minimized:
		return "minimized"
	case Maximized:
		return "maximized"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ParseState accepts the names produced by State.String. An empty string
// is Restored.
func ParseState(s string) (State, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "restored", "normal":
		return Restored, nil
	case "minimized", "iconic":
		return Minimized, nil
	case "maximized":
		return Maximized, nil
	default:
		return Restored, fmt.Errorf("unknown window state %q", s)
	}
}
