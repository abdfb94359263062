// Package tui holds the terminal front ends of the nativewin command: a live
// event log for an open window and a form for describing a new one.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/1broseidon/nativewin"
)

// maxLogLines bounds the event history kept in memory.
const maxLogLines = 500

// Target is the part of a window the watch view drives.
type Target interface {
	ID() nativewin.WindowID
	SetTitle(title string) error
	Size() nativewin.Size
	Position() (nativewin.PixelPoint, error)
	DPI() float64
	IsOpen() bool
}

type eventMsg struct{ ev nativewin.Event }

type closedMsg struct{}

// watchModel is the bubbletea model for `nativewin watch`.
type watchModel struct {
	target Target

	lines  []string
	held   map[nativewin.KeyboardKey]bool
	closed bool
	err    error

	retitling bool
	input     textinput.Model

	width  int
	height int
}

func newWatchModel(t Target) watchModel {
	ti := textinput.New()
	ti.Placeholder = "new window title"
	ti.CharLimit = 256
	ti.Prompt = "title> "

	return watchModel{
		target: t,
		held:   map[nativewin.KeyboardKey]bool{},
		input:  ti,
		width:  80,
		height: 24,
	}
}

// Init implements tea.Model.
func (m watchModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case eventMsg:
		m.record(msg.ev)
		return m, nil

	case closedMsg:
		m.closed = true
		m.lines = appendBounded(m.lines, closedStyle.Render("window closed"))
		return m, nil

	case tea.KeyMsg:
		if m.retitling {
			return m.updateRetitle(msg)
		}
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "t":
			if m.closed {
				return m, nil
			}
			m.retitling = true
			m.err = nil
			m.input.Reset()
			m.input.Focus()
			return m, textinput.Blink
		case "c":
			m.lines = nil
			return m, nil
		}
	}
	return m, nil
}

func (m watchModel) updateRetitle(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		title := strings.TrimSpace(m.input.Value())
		if title != "" {
			m.err = m.target.SetTitle(title)
		}
		m.retitling = false
		m.input.Blur()
		return m, nil
	case "esc":
		m.retitling = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *watchModel) record(ev nativewin.Event) {
	switch e := ev.(type) {
	case nativewin.KeyDown:
		m.held[e.Key] = true
	case nativewin.KeyUp:
		delete(m.held, e.Key)
	case nativewin.FocusOut:
		clear(m.held)
	}
	m.lines = appendBounded(m.lines, FormatEvent(ev))
}

func appendBounded(lines []string, line string) []string {
	lines = append(lines, line)
	if over := len(lines) - maxLogLines; over > 0 {
		lines = lines[over:]
	}
	return lines
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	closedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)

	kindStyles = map[string]lipgloss.Style{
		"key":    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		"mouse":  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		"window": lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
	}
)

// View implements tea.Model.
func (m watchModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("nativewin watch · window %d", m.target.ID())))
	b.WriteString("\n")

	size := m.target.Size()
	status := labelStyle.Render("size ") + valueStyle.Render(fmt.Sprintf("%gx%g", size.X, size.Y))
	if pos, err := m.target.Position(); err == nil {
		status += labelStyle.Render("  pos ") + valueStyle.Render(fmt.Sprintf("%d,%d", pos.X, pos.Y))
	}
	status += labelStyle.Render("  dpi ") + valueStyle.Render(fmt.Sprintf("%g", m.target.DPI()))
	status += labelStyle.Render("  held ") + valueStyle.Render(m.heldKeys())
	b.WriteString(status)
	b.WriteString("\n\n")

	logHeight := m.height - 6
	if logHeight < 1 {
		logHeight = 1
	}
	start := len(m.lines) - logHeight
	if start < 0 {
		start = 0
	}
	for _, line := range m.lines[start:] {
		b.WriteString(line)
		b.WriteString("\n")
	}
	for i := len(m.lines) - start; i < logHeight; i++ {
		b.WriteString("\n")
	}

	switch {
	case m.retitling:
		b.WriteString(m.input.View())
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()))
	default:
		b.WriteString(dimStyle.Render("t retitle · c clear · q quit"))
	}
	return b.String()
}

func (m watchModel) heldKeys() string {
	if len(m.held) == 0 {
		return "-"
	}
	var names []string
	for _, k := range nativewin.AllKeys() {
		if m.held[k] {
			names = append(names, k.String())
		}
	}
	return strings.Join(names, "+")
}

// FormatEvent renders one event as a coloured log line.
func FormatEvent(ev nativewin.Event) string {
	kind := "window"
	switch ev.(type) {
	case nativewin.KeyDown, nativewin.KeyUp, nativewin.TextInput:
		kind = "key"
	case nativewin.MouseButtonDown, nativewin.MouseButtonUp, nativewin.MouseMotion,
		nativewin.Scroll, nativewin.MouseEnter, nativewin.MouseLeave:
		kind = "mouse"
	}
	return kindStyles[kind].Render(fmt.Sprintf("%-6s", kind)) + " " + fmt.Sprint(ev)
}

// IsInteractive reports whether stdin and stdout are both terminals.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Watch shows a live event log for w until the user quits or ctx ends.
// Closing the native window keeps the log on screen until the user quits.
func Watch(ctx context.Context, w *nativewin.Window) error {
	if !IsInteractive() {
		return fmt.Errorf("watch requires an interactive terminal (stdin/stdout must be TTYs)")
	}

	p := tea.NewProgram(newWatchModel(w), tea.WithAltScreen(), tea.WithContext(ctx))

	id := w.Listen(func(ev nativewin.Event) { p.Send(eventMsg{ev}) })
	defer w.Unlisten(id)

	go func() {
		if err := w.Wait(ctx); err == nil {
			p.Send(closedMsg{})
		}
	}()

	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
