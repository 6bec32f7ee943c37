package notes

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// DefaultNewsFile is the changelog read for release notes.
const DefaultNewsFile = "NEWS"

// Function variables for testability.
var readFileFn = os.ReadFile

// NewsError reports a NEWS file that could not be read.
type NewsError struct {
	Path string
	Err  error
}

func (e *NewsError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *NewsError) Unwrap() error {
	return e.Err
}

// Load reads dir/name in full and splits it into lines.
func Load(dir, name string) ([]string, error) {
	path := filepath.Join(dir, name)
	data, err := readFileFn(path)
	if err != nil {
		return nil, &NewsError{Path: name, Err: err}
	}
	lines := SplitLines(string(data))
	log.Printf("[notes] debug: loaded %s (%d lines)", path, len(lines))
	return lines, nil
}
