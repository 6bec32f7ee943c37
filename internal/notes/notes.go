// Package notes extracts the release notes for one version from a NEWS file.
//
// Extraction is a fold over the file's lines: a line mentioning the version
// starts a section, a "What's New" style header ends it, and dash rules
// inside the section are dropped. Lines keep their terminators so the
// section can be reproduced byte for byte.
package notes

import (
	"strings"
)

const (
	// DefaultEndMarker starts the header line that closes a section.
	DefaultEndMarker = "Whats"
	// DefaultRulePrefix marks underline rules that are left out of the notes.
	DefaultRulePrefix = "-----"
)

// Rules configures the section boundaries.
type Rules struct {
	EndMarker  string
	RulePrefix string
}

// DefaultRules returns the boundaries used by fctx NEWS files.
func DefaultRules() Rules {
	return Rules{EndMarker: DefaultEndMarker, RulePrefix: DefaultRulePrefix}
}

// State is the accumulator threaded through the fold.
type State struct {
	Collecting bool
	Lines      []string
}

// Step applies one line to the state.
//
// The version test runs first, so a line that both mentions the version and
// starts with the end marker opens a section.
func Step(s State, line, version string, r Rules) State {
	switch {
	case strings.Contains(line, version):
		s.Collecting = true
	case strings.HasPrefix(line, r.EndMarker):
		s.Collecting = false
	case s.Collecting && !strings.HasPrefix(line, r.RulePrefix):
		s.Lines = append(s.Lines, line)
	}
	return s
}

// Extract folds lines into the section for version.
// It returns nil when the version is never mentioned.
func Extract(lines []string, version string, r Rules) []string {
	var s State
	for _, line := range lines {
		s = Step(s, line, version, r)
	}
	return s.Lines
}

// Text joins extracted lines. Lines already carry their terminators.
func Text(lines []string) string {
	return strings.Join(lines, "")
}

// SplitLines splits text after each newline, keeping the terminator.
// The last line has no terminator if the text does not end with one.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
