package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "open":
		os.Exit(runOpen(os.Args[2:], false))
	case "watch":
		os.Exit(runOpen(os.Args[2:], true))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "keys":
		os.Exit(runKeys(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: nativewin <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  open                Open a window and print its events until it closes")
	fmt.Fprintln(w, "  watch               Open a window with a live event view")
	fmt.Fprintln(w, "  keys                List the portable keyboard keys")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print configuration")
	fmt.Fprintln(w, "  config explain      Show where a config value was set")
	fmt.Fprintln(w, "  config init         Write the defaults to the config file")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'nativewin <command> --help' for command-specific options.")
}
