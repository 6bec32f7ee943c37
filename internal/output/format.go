// Package output provides terminal output helpers for the wikify CLI.
// This package is designed to have minimal dependencies to avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// PrintPageSummary prints a colored one-line summary of a generated page.
// Uses a green checkmark and cyan for the version.
func PrintPageSummary(out io.Writer, version string, files, noteLines int) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	notes := fmt.Sprintf("%d note lines", noteLines)
	if noteLines == 0 {
		notes = "no release notes found"
	}
	fmt.Fprintf(out, "%s %s %s\n", green("✓"), cyan("release page for "+version),
		dim(fmt.Sprintf("(%d files, %s)", files, notes)))
}
