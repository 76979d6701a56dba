// Package model defines the core data structures shared across astralmap:
// alignment file formats, the deduplicated taxon set, and the scan report
// that records per-file extraction results.
package model
