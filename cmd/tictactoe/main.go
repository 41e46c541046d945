package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

var errNotInteractive = errors.New("this game requires an interactive terminal")

func main() {
	if err := newRootCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "tictactoe: %v\n", err)
		os.Exit(1)
	}
}

// isInteractive reports whether both stdin and stdout are attached to a terminal.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
