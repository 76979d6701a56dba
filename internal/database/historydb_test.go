package database

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/phylokit/astralmap/internal/model"
)

// openTestDB opens a HistoryDB in a temp dir and registers cleanup.
func openTestDB(t *testing.T) *HistoryDB {
	t.Helper()
	hdb, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		if err := hdb.Close(); err != nil {
			t.Errorf("failed to close database: %v", err)
		}
	})
	return hdb
}

// sampleReport builds a small completed scan report.
func sampleReport(root string) *model.ScanReport {
	report := model.NewScanReport(root, []string{"*.nex", "*.fasta"})
	report.Files = []model.FileResult{
		{Path: "a.fasta", Format: model.FormatFASTA, TaxaCount: 2},
		{Path: "c.dat", Format: model.FormatUnknown, Skipped: true, Error: "unrecognized format"},
	}
	report.Taxa.AddAll([]string{"taxA", "taxB"})
	return report
}

// TestOpen covers database creation behavior.
func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("creates the database file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		hdb, err := Open(dir, DefaultOptions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer hdb.Close()

		if _, err := os.Stat(hdb.Path()); err != nil {
			t.Errorf("expected database file to exist: %v", err)
		}
		if want := filepath.Join(dir, "astralmap.db"); hdb.Path() != want {
			t.Errorf("expected path %s, got %s", want, hdb.Path())
		}
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		t.Parallel()
		dir := filepath.Join(t.TempDir(), "data", "astralmap")
		hdb, err := Open(dir, DefaultOptions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer hdb.Close()
	})

	t.Run("refuses a missing database without create", func(t *testing.T) {
		t.Parallel()
		opts := Options{CreateIfNotExists: false}
		if _, err := Open(t.TempDir(), opts); err == nil {
			t.Error("expected error for missing database")
		}
	})
}

// TestSaveAndGetRun verifies the report round trip through SQLite.
func TestSaveAndGetRun(t *testing.T) {
	t.Parallel()

	t.Run("stored report round-trips", func(t *testing.T) {
		t.Parallel()
		hdb := openTestDB(t)
		ctx := context.Background()

		orig := sampleReport("/data/run1")
		id, err := hdb.SaveRun(ctx, orig)
		if err != nil {
			t.Fatalf("failed to save run: %v", err)
		}
		if id <= 0 {
			t.Errorf("expected positive run ID, got %d", id)
		}

		got, err := hdb.GetRun(ctx, id)
		if err != nil {
			t.Fatalf("failed to get run: %v", err)
		}
		if got == nil {
			t.Fatal("expected stored report, got nil")
		}
		if got.Root != orig.Root {
			t.Errorf("expected root %s, got %s", orig.Root, got.Root)
		}
		if !reflect.DeepEqual(got.Files, orig.Files) {
			t.Errorf("expected files %v, got %v", orig.Files, got.Files)
		}
		if !reflect.DeepEqual(got.Taxa.Sorted(), orig.Taxa.Sorted()) {
			t.Errorf("expected taxa %v, got %v", orig.Taxa.Sorted(), got.Taxa.Sorted())
		}
	})

	t.Run("unknown run ID returns nil without error", func(t *testing.T) {
		t.Parallel()
		hdb := openTestDB(t)

		got, err := hdb.GetRun(context.Background(), 9999)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil report, got %v", got)
		}
	})
}

// TestListRuns verifies ordering and the limit clause.
func TestListRuns(t *testing.T) {
	t.Parallel()

	t.Run("newest run first", func(t *testing.T) {
		t.Parallel()
		hdb := openTestDB(t)
		ctx := context.Background()

		for _, root := range []string{"/data/run1", "/data/run2", "/data/run3"} {
			if _, err := hdb.SaveRun(ctx, sampleReport(root)); err != nil {
				t.Fatalf("failed to save run: %v", err)
			}
		}

		runs, err := hdb.ListRuns(ctx, 0)
		if err != nil {
			t.Fatalf("failed to list runs: %v", err)
		}
		if len(runs) != 3 {
			t.Fatalf("expected 3 runs, got %d", len(runs))
		}
		if runs[0].Root != "/data/run3" {
			t.Errorf("expected newest run first, got %s", runs[0].Root)
		}
		if runs[0].FileCount != 2 || runs[0].SkippedCount != 1 || runs[0].TaxonCount != 2 {
			t.Errorf("unexpected summary counters: %+v", runs[0])
		}
	})

	t.Run("limit restricts the listing", func(t *testing.T) {
		t.Parallel()
		hdb := openTestDB(t)
		ctx := context.Background()

		for range 5 {
			if _, err := hdb.SaveRun(ctx, sampleReport("/data")); err != nil {
				t.Fatalf("failed to save run: %v", err)
			}
		}

		runs, err := hdb.ListRuns(ctx, 2)
		if err != nil {
			t.Fatalf("failed to list runs: %v", err)
		}
		if len(runs) != 2 {
			t.Errorf("expected 2 runs, got %d", len(runs))
		}
	})

	t.Run("listed timestamps are parsed", func(t *testing.T) {
		t.Parallel()
		hdb := openTestDB(t)
		ctx := context.Background()

		if _, err := hdb.SaveRun(ctx, sampleReport("/data")); err != nil {
			t.Fatalf("failed to save run: %v", err)
		}
		runs, err := hdb.ListRuns(ctx, 0)
		if err != nil {
			t.Fatalf("failed to list runs: %v", err)
		}
		if runs[0].Timestamp.IsZero() {
			t.Error("expected a parsed timestamp, got the zero time")
		}
	})

	t.Run("empty database lists nothing", func(t *testing.T) {
		t.Parallel()
		hdb := openTestDB(t)

		runs, err := hdb.ListRuns(context.Background(), 0)
		if err != nil {
			t.Fatalf("failed to list runs: %v", err)
		}
		if len(runs) != 0 {
			t.Errorf("expected no runs, got %d", len(runs))
		}
	})
}

// TestParseTimestamp covers the timestamp formats SQLite emits.
func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	t.Run("sqlite default format", func(t *testing.T) {
		t.Parallel()
		got, err := parseTimestamp("2026-08-23 10:11:12")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2026, 8, 23, 10, 11, 12, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("rfc3339", func(t *testing.T) {
		t.Parallel()
		got, err := parseTimestamp("2026-08-23T10:11:12Z")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.IsZero() {
			t.Error("expected a parsed timestamp")
		}
	})

	t.Run("unrecognized format errors", func(t *testing.T) {
		t.Parallel()
		if _, err := parseTimestamp("not a date"); err == nil {
			t.Error("expected error for unrecognized timestamp")
		}
	})
}
