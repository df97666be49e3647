package environment

import (
	"os"

	"github.com/mattn/go-isatty"
)

var interactiveOverride *bool

// ForceSetIsInteractive overrides the terminal detection. Used by tests and
// by callers that already know which mode they want.
func ForceSetIsInteractive(value bool) {
	interactiveOverride = &value
}

// IsInteractive reports whether statements can be read from a user at a
// terminal. It checks stdin because that is where the REPL reads from.
func IsInteractive() bool {
	if interactiveOverride != nil {
		return *interactiveOverride
	}
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
