// Package release builds the download table of a release page.
//
// A fixed list of filename templates is resolved against the version being
// released. Each resolved file is read in full, hashed, and rendered as one
// wiki-markup table row linking to the download area.
package release
