package config

import (
	"github.com/wildbearsoftware/wikify/internal/notes"
	"github.com/wildbearsoftware/wikify/internal/release"
)

// GetDefaultConfigTemplate returns a commented project config template
func GetDefaultConfigTemplate() string {
	return `# wikify configuration (.wikify.yml)

base_url: http://fctx.wildbearsoftware.com/static/fctx/download/
files:                                # Release listing, in page order
  - fct.h
  - fctx-doc-{{VERSION}}.tar.gz
  - fctx-src-{{VERSION}}.tar.gz
  - patch-{{VERSION}}.gz
  - README
  - NEWS-{{VERSION}}
  - diffstat-{{VERSION}}
  - ChangeLog-{{VERSION}}
news_file: NEWS                       # Changelog the release notes come from
dir: .                                # Directory holding release files and NEWS
digest: md5                           # md5 | sha1 | sha256
stability: Stable                     # Label in the page title

notes:
  end_marker: Whats                   # Line prefix that ends a section
  rule_prefix: "-----"                # Underline rules dropped from notes
`
}

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"base_url":  release.DefaultBaseURL,
		"files":     release.DefaultTemplates(),
		"news_file": notes.DefaultNewsFile,
		"dir":       ".",
		// md5 reproduces the digests of previously published pages
		"digest":    string(release.MD5),
		"stability": release.DefaultStability,
		"notes": map[string]interface{}{
			"end_marker":  notes.DefaultEndMarker,
			"rule_prefix": notes.DefaultRulePrefix,
		},
		"debug": false,
	}
}
