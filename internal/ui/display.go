package ui

import (
	"os"

	"github.com/charmbracelet/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(f.Fd())
}

// StdoutIsTerminal decides whether listings get styled output.
func StdoutIsTerminal() bool {
	return IsTerminal(os.Stdout)
}
