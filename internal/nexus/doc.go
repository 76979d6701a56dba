// Package nexus extracts taxon labels from NEXUS alignment files.
//
// Extraction runs as an ordered strategy chain: the TAXLABELS block is
// authoritative when present; the MATRIX block is consulted only as a
// fallback, reading the first token of each data row (which is correct
// for interleaved matrices too, because every row group starts each row
// with the taxon name). Bracketed comments are stripped before any block
// search so that a comment containing a keyword or ';' cannot corrupt
// block boundaries.
//
// Known limitation, kept for compatibility with established map files:
// the MATRIX fallback skips rows whose first word is one of the block
// keywords (matrix, format, dimensions, end, begin), so a taxon whose
// name starts with one of those words is silently dropped.
package nexus
