// Package fasta extracts taxon labels from FASTA alignment files.
// The label is the first whitespace-delimited token after each '>' header
// marker; the rest of the header line is treated as free-form description.
package fasta
