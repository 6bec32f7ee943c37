package release

import "strings"

// Placeholder is replaced by the version in filename templates.
const Placeholder = "{{VERSION}}"

// DefaultBaseURL is the download area the table links point into.
const DefaultBaseURL = "http://fctx.wildbearsoftware.com/static/fctx/download/"

// DefaultTemplates returns the release listing in page order.
// A new slice is returned on every call so callers may modify it.
func DefaultTemplates() []string {
	return []string{
		"fct.h",
		"fctx-doc-" + Placeholder + ".tar.gz",
		"fctx-src-" + Placeholder + ".tar.gz",
		"patch-" + Placeholder + ".gz",
		"README",
		"NEWS-" + Placeholder,
		"diffstat-" + Placeholder,
		"ChangeLog-" + Placeholder,
	}
}

// Resolve substitutes the version into a filename template.
// Templates without a placeholder are returned unchanged.
func Resolve(template, version string) string {
	return strings.ReplaceAll(template, Placeholder, version)
}

// ResolveAll resolves every template, preserving order.
func ResolveAll(templates []string, version string) []string {
	names := make([]string, len(templates))
	for i, t := range templates {
		names[i] = Resolve(t, version)
	}
	return names
}

// URL joins the base URL and a filename with exactly one slash.
func URL(baseURL, filename string) string {
	return strings.TrimSuffix(baseURL, "/") + "/" + filename
}
