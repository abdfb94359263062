package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/1broseidon/nativewin"
)

func runKeys(args []string) int {
	fs := flag.NewFlagSet("keys", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: nativewin keys")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List every portable keyboard key reported in KeyDown/KeyUp events.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	for _, k := range nativewin.AllKeys() {
		fmt.Printf("%3d  %s\n", int(k), k)
	}
	return 0
}
