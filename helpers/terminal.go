package helpers

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	BoldC    = color.New(color.Bold)
	FaintC   = color.New(color.Faint)
	AccentC  = color.New(color.FgCyan)
	SuccessC = color.New(color.FgGreen)
	WarningC = color.New(color.FgYellow)
	FailureC = color.New(color.FgRed)
)

var (
	Bold    = BoldC.Sprint
	Faint   = FaintC.Sprint
	Accent  = AccentC.Sprint
	Success = SuccessC.Sprint
	Warning = WarningC.Sprint
	Failure = FailureC.Sprint
)

// IsTerminal reports whether f is attached to an interactive terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// SetColorEnabled overrides terminal detection (NO_COLOR, TERM=dumb, pipes).
func SetColorEnabled(enabled bool) {
	color.NoColor = !enabled
}
