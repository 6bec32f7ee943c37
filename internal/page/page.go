// Package page writes the complete release page: the download table
// followed by the release notes taken from NEWS.
package page

import (
	"fmt"
	"io"

	"github.com/wildbearsoftware/wikify/internal/notes"
	"github.com/wildbearsoftware/wikify/internal/release"
)

// NotesHeading introduces the release notes section.
const NotesHeading = "=== Release Notes ==="

// Summary describes what a run produced.
type Summary struct {
	Version   string
	Files     int
	NoteLines int
}

// Generator composes the table builder and the notes extractor.
type Generator struct {
	Table    *release.Builder
	NewsFile string
	Rules    notes.Rules
}

// New returns a Generator with the default listing, NEWS file and rules.
func New(dir string) *Generator {
	return &Generator{
		Table:    release.NewBuilder(dir),
		NewsFile: notes.DefaultNewsFile,
		Rules:    notes.DefaultRules(),
	}
}

// Write emits the page for version to w.
//
// Output is written progressively. If a release file is missing the error is
// returned right away and NEWS is never read. The notes heading is written
// before NEWS is opened, so a missing NEWS leaves the table and the heading
// in w.
func (g *Generator) Write(w io.Writer, version string) (Summary, error) {
	sum := Summary{Version: version}

	rows, err := g.Table.WriteTable(w, version)
	sum.Files = rows
	if err != nil {
		return sum, err
	}

	if _, err := fmt.Fprintf(w, "\n\n%s\n\n", NotesHeading); err != nil {
		return sum, fmt.Errorf("writing release notes heading: %w", err)
	}

	lines, err := notes.Load(g.Table.Dir, g.NewsFile)
	if err != nil {
		return sum, err
	}
	section := notes.Extract(lines, version, g.Rules)
	sum.NoteLines = len(section)

	if _, err := fmt.Fprintln(w, notes.Text(section)); err != nil {
		return sum, fmt.Errorf("writing release notes: %w", err)
	}
	return sum, nil
}
