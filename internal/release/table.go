package release

import (
	"fmt"
	"io"
	"log"
)

// DefaultStability is the label shown next to the version in the title.
const DefaultStability = "Stable"

// File is one resolved release artifact.
type File struct {
	Name   string
	URL    string
	Digest string
}

// Row renders the file as a table row.
func (f File) Row() string {
	return FormatRow(f.URL, f.Name, f.Digest)
}

// FormatRow renders one download table row.
func FormatRow(url, filename, digest string) string {
	return fmt.Sprintf("|| [[%s|%s]] ||  %s ||", url, filename, digest)
}

// Header returns the section title and the table header row.
func Header(version, stability string, algo Algorithm) []string {
	return []string{
		fmt.Sprintf("== %s (%s) ==", version, stability),
		fmt.Sprintf(`||<tablestyle="float:right;margin:2em;">'''Files''' ||<:>'''%s'''||`, algo.Label()),
	}
}

// Builder writes the download table for a version.
type Builder struct {
	// Dir holds the release files.
	Dir string
	// BaseURL is the download area prefix.
	BaseURL string
	// Templates is the ordered release listing.
	Templates []string
	// Algorithm selects the digest; empty means MD5.
	Algorithm Algorithm
	// Stability is the label in the section title.
	Stability string
}

// NewBuilder returns a Builder using the default listing and base URL.
func NewBuilder(dir string) *Builder {
	return &Builder{
		Dir:       dir,
		BaseURL:   DefaultBaseURL,
		Templates: DefaultTemplates(),
		Algorithm: MD5,
		Stability: DefaultStability,
	}
}

func (b *Builder) file(name string) (File, error) {
	sum, err := HashFile(b.Dir, name, b.Algorithm)
	if err != nil {
		return File{}, err
	}
	log.Printf("[release] debug: %s %s=%s", name, b.Algorithm.Label(), sum)
	return File{Name: name, URL: URL(b.BaseURL, name), Digest: sum}, nil
}

// WriteTable writes the title, the table header and one row per template.
// Each row is written as soon as its file is hashed, so on failure the rows
// for earlier files have already reached w. It returns the number of rows
// written.
func (b *Builder) WriteTable(w io.Writer, version string) (int, error) {
	stability := b.Stability
	if stability == "" {
		stability = DefaultStability
	}
	for _, line := range Header(version, stability, b.Algorithm) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return 0, fmt.Errorf("writing table header: %w", err)
		}
	}

	rows := 0
	for _, name := range ResolveAll(b.Templates, version) {
		f, err := b.file(name)
		if err != nil {
			return rows, err
		}
		if _, err := fmt.Fprintln(w, f.Row()); err != nil {
			return rows, fmt.Errorf("writing table row: %w", err)
		}
		rows++
	}
	return rows, nil
}
