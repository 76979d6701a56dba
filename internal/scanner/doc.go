// Package scanner discovers alignment files under an input directory and
// aggregates taxon labels across them into a single deduplicated set.
//
// Files are processed strictly sequentially in sorted path order. In
// non-strict mode, per-file failures (unreadable file, unrecognized
// format, malformed block) are logged as warnings and the file is
// skipped; in strict mode any of them aborts the scan. A scan that
// matches no files at all, or matches files but extracts zero taxa,
// always fails with a distinct sentinel so callers can exit with
// distinct status codes.
package scanner
