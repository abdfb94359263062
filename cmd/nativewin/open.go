package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/1broseidon/nativewin"
	"github.com/1broseidon/nativewin/internal/config"
	"github.com/1broseidon/nativewin/internal/style"
	"github.com/1broseidon/nativewin/internal/tui"
)

// openFlags overrides the config file. Unset flags keep the config value.
type openFlags struct {
	path        string
	title       string
	width       float64
	height      float64
	x           float64
	y           float64
	style       string
	state       string
	display     string
	dpi         float64
	logLevel    string
	interactive bool
}

func (o *openFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&o.path, "path", "", "Config file path (default: ~/.config/nativewin/config.yaml)")
	fs.StringVar(&o.title, "title", "", "Window title")
	fs.Float64Var(&o.width, "width", 0, "Client width in density-independent pixels")
	fs.Float64Var(&o.height, "height", 0, "Client height in density-independent pixels")
	fs.Float64Var(&o.x, "x", -1, "Horizontal position factor, 0..1")
	fs.Float64Var(&o.y, "y", -1, "Vertical position factor, 0..1")
	fs.StringVar(&o.style, "style", "", "Comma-separated style flags or preset ("+strings.Join(style.Names(), ", ")+")")
	fs.StringVar(&o.state, "state", "", "Initial state: restored, minimized, maximized")
	fs.StringVar(&o.display, "display", "", "X11 display, overrides $DISPLAY")
	fs.Float64Var(&o.dpi, "dpi", 0, "DPI override (0 = ask the system)")
	fs.StringVar(&o.logLevel, "log-level", "", "Log level: debug, info, warning, error")
	fs.BoolVar(&o.interactive, "interactive", false, "Edit the window parameters in a form before opening")
	fs.BoolVar(&o.interactive, "i", false, "Shorthand for --interactive")
}

// apply merges the flags that were set into cfg.
func (o *openFlags) apply(cfg *config.Config, set map[string]bool) {
	if set["title"] {
		cfg.Window.Title = o.title
	}
	if set["width"] {
		cfg.Window.Width = o.width
	}
	if set["height"] {
		cfg.Window.Height = o.height
	}
	if set["x"] {
		cfg.Window.PositionX = o.x
	}
	if set["y"] {
		cfg.Window.PositionY = o.y
	}
	if set["style"] {
		cfg.Window.Style = splitList(o.style)
	}
	if set["state"] {
		cfg.Window.State = o.state
	}
	if set["display"] {
		cfg.Display = o.display
	}
	if set["dpi"] {
		cfg.DPI = o.dpi
	}
	if set["log-level"] {
		cfg.LogLevel = o.logLevel
	}
}

func splitList(s string) config.StyleList {
	var out config.StyleList
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '|' }) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func runOpen(args []string, watch bool) int {
	name := "open"
	if watch {
		name = "watch"
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var o openFlags
	o.register(fs)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: nativewin %s [options]\n\n", name)
		if watch {
			fmt.Fprintln(os.Stderr, "Open a window and show its events in a terminal view.")
		} else {
			fmt.Fprintln(os.Stderr, "Open a window and print its events until it is closed.")
		}
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "%s takes no arguments\n", name)
		fs.Usage()
		return 2
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, err := loadConfig(o.path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	o.apply(cfg, set)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	nativewin.SetLogger(logger)
	if cfg.XAuthority != "" {
		os.Setenv("XAUTHORITY", cfg.XAuthority)
	}

	b, err := nativewin.NewBuilderFromConfig(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if o.interactive {
		if err := tui.Describe(b); err != nil {
			if errors.Is(err, tui.ErrAborted) {
				return 0
			}
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	logger.Debug("opening window", "params", b.String())

	w, err := b.Open()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		var oerr *nativewin.OpenError
		if errors.As(err, &oerr) && oerr.Op == "connect" {
			fmt.Fprintln(os.Stderr, "is an X server running and DISPLAY set?")
		}
		return 1
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if watch && tui.IsInteractive() {
		if err := tui.Watch(ctx, w); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}
	if watch {
		logger.Warn("stdout is not a terminal, printing events instead")
	}

	printEvents(w, os.Stdout, tui.IsInteractive())
	if err := w.Wait(ctx); err != nil {
		logger.Info("interrupted", "error", err)
	}
	return 0
}

// printEvents writes one line per event. Lines are coloured on a terminal.
func printEvents(w *nativewin.Window, out io.Writer, styled bool) {
	w.Listen(func(ev nativewin.Event) {
		if styled {
			fmt.Fprintln(out, tui.FormatEvent(ev))
			return
		}
		fmt.Fprintln(out, ev)
	})
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	res, err := config.LoadFromPath(path)
	if err != nil {
		return nil, err
	}
	return res.Config, nil
}
