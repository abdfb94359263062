package main

import (
	"flag"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/1broseidon/nativewin/internal/config"
)

func TestLookupResolvesNestedPaths(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Window.Title = "sample"

	got, err := lookup(cfg, "window.title")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got != "sample" {
		t.Fatalf("window.title=%v, want sample", got)
	}

	if _, err := lookup(cfg, "window.nope"); err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if _, err := lookup(cfg, "log_level.deeper"); err == nil {
		t.Fatalf("expected error for path through a scalar")
	}
}

func TestOpenFlagsOverrideOnlySetValues(t *testing.T) {
	fs := flag.NewFlagSet("open", flag.ContinueOnError)
	var o openFlags
	o.register(fs)
	if err := fs.Parse([]string{"--width", "1024", "--style", "close,resizable", "--x", "0"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg := config.DefaultConfig()
	o.apply(cfg, set)

	if cfg.Window.Width != 1024 {
		t.Fatalf("width=%g, want 1024", cfg.Window.Width)
	}
	if cfg.Window.Height != 600 {
		t.Fatalf("height=%g, want default 600", cfg.Window.Height)
	}
	if cfg.Window.PositionX != 0 || cfg.Window.PositionY != 0.5 {
		t.Fatalf("position=%g,%g, want 0,0.5", cfg.Window.PositionX, cfg.Window.PositionY)
	}
	if !reflect.DeepEqual(cfg.Window.Style, config.StyleList{"close", "resizable"}) {
		t.Fatalf("style=%v", cfg.Window.Style)
	}
	if cfg.Window.Title != "nativewin" {
		t.Fatalf("title=%q, want default", cfg.Window.Title)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" close | minimize,,resizable ")
	want := config.StyleList{"close", "minimize", "resizable"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("splitList=%v, want %v", got, want)
	}
	if splitList("") != nil {
		t.Fatalf("expected nil for empty input")
	}
}

func TestRunConfigInitThenValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nativewin", "config.yaml")

	if rc := runConfig([]string{"init", "--path", path}); rc != 0 {
		t.Fatalf("config init rc=%d, want 0", rc)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat: %v", err)
	}
	if rc := runConfig([]string{"init", "--path", path}); rc != 1 {
		t.Fatalf("second init rc=%d, want 1", rc)
	}
	if rc := runConfig([]string{"validate", "--path", path}); rc != 0 {
		t.Fatalf("config validate rc=%d, want 0", rc)
	}
}

func TestRunConfigValidateRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("window:\n  state: sideways\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if rc := runConfig([]string{"validate", "--path", path}); rc != 1 {
		t.Fatalf("config validate rc=%d, want 1", rc)
	}
}

func TestRunConfigUnknownSubcommand(t *testing.T) {
	if rc := runConfig([]string{"frobnicate"}); rc != 2 {
		t.Fatalf("rc=%d, want 2", rc)
	}
}
