// Command colorprobe reports what color support the current terminal
// negotiates and renders a swatch to verify it.
//
// Usage:
//
//	colorprobe [-q] [-reset]
//
// -q prints only the negotiation result; -reset restores the terminal's
// default colors and exits.
package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	conscolor "github.com/grindlemire/go-conscolor"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "colorprobe:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	quiet := false
	reset := false
	for _, arg := range args {
		switch arg {
		case "-q", "--quiet":
			quiet = true
		case "-reset", "--reset":
			reset = true
		case "-h", "--help":
			usage()
			return nil
		default:
			usage()
			return fmt.Errorf("unknown argument: %s", arg)
		}
	}

	family := conscolor.Classify(os.Getenv, conscolor.HostKernelVersion)
	profile := conscolor.ProfileFor(family)
	fmt.Printf("terminal family: %s\n", family)
	fmt.Printf("capability profile: %s\n", profile)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "stdout is not a terminal; not emitting escape sequences")
		return nil
	}

	console := conscolor.New(conscolor.WithDiagnostic(func(msg string) {
		fmt.Fprintln(os.Stderr, "colorprobe:", msg)
	}))

	if reset {
		console.Reset()
		return nil
	}
	if !quiet {
		console.Swatch(os.Stdout)
	}
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: colorprobe [-q] [-reset]

Prints the negotiated terminal family and capability profile, then renders
a color swatch when stdout is a terminal.

  -q       skip the swatch
  -reset   restore the terminal's default colors and exit`)
}
