package scanner

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/phylokit/astralmap/internal/model"
)

// quietLogger discards diagnostics during tests.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeFile creates one file under dir.
func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
}

// TestScanAggregation covers the union across mixed-format files.
func TestScanAggregation(t *testing.T) {
	t.Parallel()

	t.Run("merges fasta and nexus taxa into one set", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeFile(t, root, "a.fasta", ">taxA desc\nACGT\n>taxB\nACGA\n")
		writeFile(t, root, "b.nex", "#NEXUS\ntaxlabels taxB 'tax c';\n")

		sc := New(WithLogger(quietLogger()))
		report, err := sc.Scan(root, []string{"*.fasta", "*.nex"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{"tax c", "taxA", "taxB"}
		if got := report.Taxa.Sorted(); !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
		if report.FileCount() != 2 {
			t.Errorf("expected 2 files, got %d", report.FileCount())
		}
		if report.SkippedCount() != 0 {
			t.Errorf("expected no skips, got %d", report.SkippedCount())
		}
	})

	t.Run("per-file results record format and count", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeFile(t, root, "a.fasta", ">taxA\nACGT\n")

		sc := New(WithLogger(quietLogger()))
		report, err := sc.Scan(root, []string{"*.fasta"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(report.Files) != 1 {
			t.Fatalf("expected 1 file result, got %d", len(report.Files))
		}
		f := report.Files[0]
		if f.Format != model.FormatFASTA {
			t.Errorf("expected fasta format, got %s", f.Format)
		}
		if f.TaxaCount != 1 {
			t.Errorf("expected 1 taxon, got %d", f.TaxaCount)
		}
	})
}

// TestScanFailures covers the sentinel errors and strict/non-strict
// recovery policy.
func TestScanFailures(t *testing.T) {
	t.Parallel()

	t.Run("no matching files returns ErrNoInputFiles", func(t *testing.T) {
		t.Parallel()
		sc := New(WithLogger(quietLogger()))
		_, err := sc.Scan(t.TempDir(), []string{"*.nex"})
		if !errors.Is(err, ErrNoInputFiles) {
			t.Errorf("expected ErrNoInputFiles, got %v", err)
		}
	})

	t.Run("zero taxa returns ErrEmptyResultSet with partial report", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeFile(t, root, "a.dat", "no signature at all\n")

		sc := New(WithLogger(quietLogger()))
		report, err := sc.Scan(root, []string{"*.dat"})
		if !errors.Is(err, ErrEmptyResultSet) {
			t.Errorf("expected ErrEmptyResultSet, got %v", err)
		}
		if report == nil {
			t.Fatal("expected partial report alongside the error")
		}
		if report.SkippedCount() != 1 {
			t.Errorf("expected the unknown file to be skipped, got %d skips", report.SkippedCount())
		}
	})

	t.Run("non-strict skips unknown format and continues", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeFile(t, root, "a.dat", "junk\n")
		writeFile(t, root, "b.fasta", ">taxA\nACGT\n")

		sc := New(WithLogger(quietLogger()))
		report, err := sc.Scan(root, []string{"*"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !report.Taxa.Contains("taxA") {
			t.Error("expected taxA from the parseable file")
		}
		if report.SkippedCount() != 1 {
			t.Errorf("expected 1 skipped file, got %d", report.SkippedCount())
		}
	})

	t.Run("strict aborts on unknown format", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeFile(t, root, "a.dat", "junk\n")
		writeFile(t, root, "b.fasta", ">taxA\nACGT\n")

		sc := New(WithStrict(true), WithLogger(quietLogger()))
		_, err := sc.Scan(root, []string{"*"})
		if !errors.Is(err, ErrUnrecognizedFormat) {
			t.Errorf("expected ErrUnrecognizedFormat, got %v", err)
		}
	})

	t.Run("non-strict skips malformed nexus and continues", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeFile(t, root, "bad.nex", "#NEXUS\ntaxlabels taxA taxB\n")
		writeFile(t, root, "good.fasta", ">taxC\nACGT\n")

		sc := New(WithLogger(quietLogger()))
		report, err := sc.Scan(root, []string{"*.nex", "*.fasta"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"taxC"}
		if got := report.Taxa.Sorted(); !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("strict aborts on malformed nexus", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeFile(t, root, "bad.nex", "#NEXUS\ntaxlabels taxA taxB\n")

		sc := New(WithStrict(true), WithLogger(quietLogger()))
		_, err := sc.Scan(root, []string{"*.nex"})
		if err == nil {
			t.Error("expected error for malformed block in strict mode")
		}
	})
}
