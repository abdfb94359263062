package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1broseidon/nativewin"
)

type fakeTarget struct {
	title    string
	titleErr error
}

func (f *fakeTarget) ID() nativewin.WindowID { return 7 }
func (f *fakeTarget) SetTitle(title string) error {
	if f.titleErr != nil {
		return f.titleErr
	}
	f.title = title
	return nil
}
func (f *fakeTarget) Size() nativewin.Size { return nativewin.Sz(640, 480) }
func (f *fakeTarget) Position() (nativewin.PixelPoint, error) {
	return nativewin.PixelPoint{X: 10, Y: 20}, nil
}
func (f *fakeTarget) DPI() float64 { return 96 }
func (f *fakeTarget) IsOpen() bool { return true }

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m watchModel, msg tea.Msg) watchModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(watchModel)
	require.True(t, ok)
	return out
}

func TestWatchRecordsEventsAndHeldKeys(t *testing.T) {
	m := newWatchModel(&fakeTarget{})

	m = update(t, m, eventMsg{nativewin.KeyDown{Key: nativewin.KeyLeftShift}})
	m = update(t, m, eventMsg{nativewin.KeyDown{Key: nativewin.KeyA}})
	assert.Equal(t, "A+LeftShift", m.heldKeys())

	m = update(t, m, eventMsg{nativewin.KeyUp{Key: nativewin.KeyA}})
	assert.Equal(t, "LeftShift", m.heldKeys())

	m = update(t, m, eventMsg{nativewin.FocusOut{}})
	assert.Equal(t, "-", m.heldKeys())
	assert.Len(t, m.lines, 4)
	assert.Contains(t, m.lines[3], "FocusOut{}")
}

func TestWatchLogIsBounded(t *testing.T) {
	m := newWatchModel(&fakeTarget{})
	for i := 0; i < maxLogLines+20; i++ {
		m = update(t, m, eventMsg{nativewin.MouseLeave{}})
	}
	assert.Len(t, m.lines, maxLogLines)
}

func TestWatchRetitle(t *testing.T) {
	target := &fakeTarget{}
	m := newWatchModel(target)

	m = update(t, m, key("t"))
	require.True(t, m.retitling)
	for _, r := range "Hello" {
		m = update(t, m, key(string(r)))
	}
	m = update(t, m, key("enter"))

	assert.False(t, m.retitling)
	assert.Equal(t, "Hello", target.title)
	assert.NoError(t, m.err)
}

func TestWatchRetitleShowsError(t *testing.T) {
	target := &fakeTarget{titleErr: errors.New("gone")}
	m := newWatchModel(target)

	m = update(t, m, key("t"))
	m = update(t, m, key("x"))
	m = update(t, m, key("enter"))

	require.Error(t, m.err)
	assert.Contains(t, m.View(), "gone")
}

func TestWatchEscCancelsRetitle(t *testing.T) {
	target := &fakeTarget{title: "keep"}
	m := newWatchModel(target)

	m = update(t, m, key("t"))
	m = update(t, m, key("z"))
	m = update(t, m, key("esc"))

	assert.False(t, m.retitling)
	assert.Equal(t, "keep", target.title)
}

func TestWatchClosedDisablesRetitle(t *testing.T) {
	m := newWatchModel(&fakeTarget{})
	m = update(t, m, closedMsg{})
	m = update(t, m, key("t"))

	assert.True(t, m.closed)
	assert.False(t, m.retitling)
	assert.Contains(t, m.lines[len(m.lines)-1], "window closed")
}

func TestWatchQuit(t *testing.T) {
	m := newWatchModel(&fakeTarget{})
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestWatchViewShowsStatus(t *testing.T) {
	m := newWatchModel(&fakeTarget{})
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 12})
	view := m.View()

	assert.Contains(t, view, "window 7")
	assert.Contains(t, view, "640x480")
	assert.Contains(t, view, "10,20")
	assert.Contains(t, view, "q quit")
}

func TestFormatEventKinds(t *testing.T) {
	assert.True(t, strings.HasSuffix(FormatEvent(nativewin.KeyUp{Key: nativewin.KeyB}), "KeyUp{B }"))
	assert.Contains(t, FormatEvent(nativewin.Scroll{DY: 1}), "mouse")
	assert.Contains(t, FormatEvent(nativewin.CloseRequested{}), "window")
}

func TestOpenFormApply(t *testing.T) {
	b := nativewin.NewBuilder("start")
	f := newOpenForm(b.Parameters())
	assert.Equal(t, "default", f.style)
	assert.Equal(t, "800", f.width)
	assert.Equal(t, "0.5", f.posX)

	f.title = "changed"
	f.width = "1024"
	f.height = "768.5"
	f.posX = "0"
	f.posY = "1"
	f.style = "default_no_resize"
	f.state = "maximized"
	require.NoError(t, f.apply(b))

	p := b.Parameters()
	assert.Equal(t, "changed", p.Title)
	assert.Equal(t, nativewin.Sz(1024, 768.5), p.Size)
	assert.Equal(t, nativewin.Factor{X: 0, Y: 1}, p.Position)
	assert.Equal(t, nativewin.DefaultStyleNoResize, p.Style)
	assert.Equal(t, nativewin.Maximized, p.State)
}

func TestOpenFormRejectsBadInput(t *testing.T) {
	tests := map[string]func(*openForm){
		"width text":     func(f *openForm) { f.width = "wide" },
		"zero height":    func(f *openForm) { f.height = "0" },
		"factor above 1": func(f *openForm) { f.posY = "1.5" },
		"bad style":      func(f *openForm) { f.style = "glassy" },
		"bad state":      func(f *openForm) { f.state = "floating" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			b := nativewin.NewBuilder("x")
			f := newOpenForm(b.Parameters())
			mutate(f)
			assert.Error(t, f.apply(b))
		})
	}
}

func TestPresetNameFallsBackToFlags(t *testing.T) {
	assert.Equal(t, "default_custom", presetName(nativewin.DefaultStyleCustom))
	assert.Equal(t, "close|resizable", presetName(nativewin.CloseButton|nativewin.Resizable))

	p := nativewin.DefaultParameters("x")
	p.Style = nativewin.CloseButton | nativewin.Resizable
	f := newOpenForm(p)
	b := nativewin.NewBuilder("x")
	require.NoError(t, f.apply(b))
	assert.Equal(t, nativewin.CloseButton|nativewin.Resizable, b.Parameters().Style)
}
