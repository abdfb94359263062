package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/1broseidon/nativewin"
	"github.com/1broseidon/nativewin/internal/style"
)

// ErrAborted is returned by Describe when the user cancels the form.
var ErrAborted = errors.New("aborted")

// openForm holds the string-typed form fields for `nativewin open -i`.
type openForm struct {
	title  string
	width  string
	height string
	posX   string
	posY   string
	style  string
	state  string
}

func newOpenForm(p nativewin.Parameters) *openForm {
	return &openForm{
		title:  p.Title,
		width:  formatFloat(float64(p.Size.X)),
		height: formatFloat(float64(p.Size.Y)),
		posX:   formatFloat(p.Position.X),
		posY:   formatFloat(p.Position.Y),
		style:  presetName(p.Style),
		state:  p.State.String(),
	}
}

func (f *openForm) build() *huh.Form {
	styleOpts := []huh.Option[string]{
		huh.NewOption("default", "default"),
		huh.NewOption("default_no_resize", "default_no_resize"),
		huh.NewOption("default_custom", "default_custom"),
		huh.NewOption("none", "none"),
	}
	if _, ok := presetFlags(f.style); !ok {
		styleOpts = append(styleOpts, huh.NewOption(f.style+" (current)", f.style))
	}
	stateOpts := []huh.Option[string]{
		huh.NewOption("restored", "restored"),
		huh.NewOption("minimized", "minimized"),
		huh.NewOption("maximized", "maximized"),
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("title").
				Title("Title").
				Value(&f.title),
			huh.NewInput().
				Key("width").
				Title("Width").
				Description("Density-independent pixels").
				Validate(validateDip).
				Value(&f.width),
			huh.NewInput().
				Key("height").
				Title("Height").
				Description("Density-independent pixels").
				Validate(validateDip).
				Value(&f.height),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("position_x").
				Title("Horizontal position").
				Description("0 = left edge, 1 = right edge").
				Validate(validateFactor).
				Value(&f.posX),
			huh.NewInput().
				Key("position_y").
				Title("Vertical position").
				Description("0 = top edge, 1 = bottom edge").
				Validate(validateFactor).
				Value(&f.posY),
			huh.NewSelect[string]().
				Key("style").
				Title("Style").
				Options(styleOpts...).
				Value(&f.style),
			huh.NewSelect[string]().
				Key("state").
				Title("Initial state").
				Options(stateOpts...).
				Value(&f.state),
		),
	).WithShowHelp(true).WithShowErrors(true)
}

// apply copies the form values onto b. Values are re-validated so apply is
// safe on unvalidated input.
func (f *openForm) apply(b *nativewin.Builder) error {
	w, err := parseDip(f.width)
	if err != nil {
		return fmt.Errorf("width: %w", err)
	}
	h, err := parseDip(f.height)
	if err != nil {
		return fmt.Errorf("height: %w", err)
	}
	x, err := parseFactor(f.posX)
	if err != nil {
		return fmt.Errorf("position_x: %w", err)
	}
	y, err := parseFactor(f.posY)
	if err != nil {
		return fmt.Errorf("position_y: %w", err)
	}
	flags, err := style.ParseFlags(strings.Split(f.style, "|"))
	if err != nil {
		return err
	}
	state, err := style.ParseState(f.state)
	if err != nil {
		return err
	}

	b.Title(f.title).
		Size(nativewin.Sz(w, h)).
		Position(nativewin.Factor{X: x, Y: y}).
		Style(flags).
		State(state)
	return nil
}

// Describe asks the user to adjust the parameters of b before it opens.
func Describe(b *nativewin.Builder) error {
	if !IsInteractive() {
		return fmt.Errorf("interactive mode requires a terminal")
	}
	f := newOpenForm(b.Parameters())
	if err := f.build().Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return f.apply(b)
}

func validateDip(s string) error {
	_, err := parseDip(s)
	return err
}

func validateFactor(s string) error {
	_, err := parseFactor(s)
	return err
}

func parseDip(s string) (nativewin.Dip, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("not a number")
	}
	if !(v > 0) {
		return 0, fmt.Errorf("must be > 0")
	}
	return nativewin.Dip(v), nil
}

func parseFactor(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("not a number")
	}
	if v < 0 || v > 1 {
		return 0, fmt.Errorf("must be between 0 and 1")
	}
	return v, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func presetFlags(name string) (nativewin.StyleFlags, bool) {
	switch name {
	case "default":
		return nativewin.DefaultStyle, true
	case "default_no_resize":
		return nativewin.DefaultStyleNoResize, true
	case "default_custom":
		return nativewin.DefaultStyleCustom, true
	case "none":
		return 0, true
	}
	return 0, false
}

// presetName names f by preset when it is one, else by its flag list.
func presetName(f nativewin.StyleFlags) string {
	for _, name := range []string{"default", "default_no_resize", "default_custom", "none"} {
		if p, _ := presetFlags(name); p == f {
			return name
		}
	}
	return f.String()
}
