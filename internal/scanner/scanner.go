package scanner

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/phylokit/astralmap/internal/detect"
	"github.com/phylokit/astralmap/internal/fasta"
	"github.com/phylokit/astralmap/internal/model"
	"github.com/phylokit/astralmap/internal/nexus"
)

// Scanner aggregates taxon labels across many alignment files.
type Scanner struct {
	// strict aborts the scan on the first per-file failure instead of
	// warning and skipping.
	strict bool

	// logger receives per-file diagnostics on the side channel.
	logger *slog.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithStrict makes every per-file failure fatal.
func WithStrict(strict bool) Option {
	return func(s *Scanner) {
		s.strict = strict
	}
}

// WithLogger sets the diagnostics logger. If not set, slog.Default()
// is used.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// New creates a Scanner with the given options.
func New(opts ...Option) *Scanner {
	s := &Scanner{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Scan discovers files under root matching the glob patterns and merges
// the taxon labels of every parseable file into one report.
//
// Scan fails with ErrNoInputFiles when nothing matches, and with
// ErrEmptyResultSet when files were processed but no taxa were found;
// in the latter case the partial report is returned alongside the error
// for diagnostics. In strict mode the first per-file failure aborts with
// that file's error.
func (s *Scanner) Scan(root string, patterns []string) (*model.ScanReport, error) {
	files, err := Discover(root, patterns)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w (root %s, patterns %v)", ErrNoInputFiles, root, patterns)
	}

	s.logger.Debug("scanning files", "root", root, "count", len(files))

	report := model.NewScanReport(root, patterns)
	start := time.Now()

	for _, path := range files {
		result, labels, err := s.scanFile(path)
		if err != nil {
			if s.strict {
				return nil, err
			}
			s.logger.Warn("skipping file", "path", path, "error", err)
			result.Skipped = true
			result.Error = err.Error()
		}
		report.Taxa.AddAll(labels)
		report.Files = append(report.Files, result)
	}

	report.Duration = time.Since(start)
	for _, f := range report.Files {
		s.logger.Debug("file processed",
			"path", f.Path,
			"format", f.Format,
			"taxa", f.TaxaCount,
			"skipped", f.Skipped,
		)
	}

	if report.TaxonCount() == 0 {
		return report, fmt.Errorf("%w (%d file(s) scanned)", ErrEmptyResultSet, report.FileCount())
	}

	s.logger.Debug("scan complete",
		"files", report.FileCount(),
		"skipped", report.SkippedCount(),
		"taxa", report.TaxonCount(),
		"duration", report.Duration,
	)
	return report, nil
}

// scanFile detects the format of one file and runs the matching
// extractor. The returned FileResult is valid even when err is non-nil
// so the caller can record the skip.
func (s *Scanner) scanFile(path string) (model.FileResult, []string, error) {
	format := detect.File(path)
	result := model.FileResult{Path: path, Format: format}

	var (
		labels []string
		err    error
	)
	switch format {
	case model.FormatFASTA:
		labels, err = fasta.ExtractFile(path)
	case model.FormatNexus:
		labels, err = nexus.ExtractFile(path)
	default:
		return result, nil, fmt.Errorf("%s: %w", path, ErrUnrecognizedFormat)
	}
	if err != nil {
		return result, nil, fmt.Errorf("%s: %w", path, err)
	}

	result.TaxaCount = len(labels)
	return result, labels, nil
}
