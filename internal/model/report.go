package model

import "time"

// FileResult records the outcome of processing one input file.
type FileResult struct {
	// Path is the file path as discovered under the input directory.
	Path string `json:"path"`

	// Format is the detected alignment format.
	Format Format `json:"format"`

	// TaxaCount is the number of unique labels extracted from this file.
	TaxaCount int `json:"taxa_count"`

	// Skipped is true when the file was passed over (unknown format or
	// extraction failure in non-strict mode).
	Skipped bool `json:"skipped,omitempty"`

	// Error holds the failure message when extraction failed.
	Error string `json:"error,omitempty"`
}

// ScanReport is the result of scanning one input directory.
// It accumulates per-file results and the union TaxonSet, and is the
// unit stored in the scan-history database.
type ScanReport struct {
	// Root is the input directory that was scanned.
	Root string `json:"root"`

	// Patterns are the glob patterns used for file discovery.
	Patterns []string `json:"patterns"`

	// DateScanned is when the scan started.
	DateScanned time.Time `json:"date_scanned"`

	// Duration is the total wall-clock time of the scan.
	Duration time.Duration `json:"duration"`

	// Files holds one entry per discovered file, in processing order.
	Files []FileResult `json:"files"`

	// Taxa is the union of all labels extracted across files.
	Taxa TaxonSet `json:"taxa"`
}

// NewScanReport creates an empty report for the given input directory.
func NewScanReport(root string, patterns []string) *ScanReport {
	return &ScanReport{
		Root:        root,
		Patterns:    patterns,
		DateScanned: time.Now(),
		Taxa:        make(TaxonSet),
	}
}

// FileCount returns the number of discovered files.
func (r *ScanReport) FileCount() int {
	return len(r.Files)
}

// SkippedCount returns the number of files that were skipped.
func (r *ScanReport) SkippedCount() int {
	n := 0
	for _, f := range r.Files {
		if f.Skipped {
			n++
		}
	}
	return n
}

// CountByFormat returns the number of files detected as the given format.
func (r *ScanReport) CountByFormat(format Format) int {
	n := 0
	for _, f := range r.Files {
		if f.Format == format {
			n++
		}
	}
	return n
}

// TaxonCount returns the number of unique taxa extracted.
func (r *ScanReport) TaxonCount() int {
	return r.Taxa.Len()
}
