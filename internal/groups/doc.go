// Package groups maps taxon labels to analysis group names.
//
// A group table is an optional CSV or TSV file with taxon and group
// columns; the delimiter and an optional header row are auto-detected.
// Taxa missing from the table fall back to a default-group policy:
// self-mapping (each taxon is its own group), the literal "NA", or the
// empty string.
package groups
