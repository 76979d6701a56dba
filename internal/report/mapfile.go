package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// MapWriter writes the taxon→group map file: one `taxon<TAB>group` line
// per taxon, UTF-8, taxa sorted ascending.
type MapWriter struct {
	baseWriter
}

// NewMapWriter creates a MapWriter that outputs to the given writer.
func NewMapWriter(output io.Writer) *MapWriter {
	return &MapWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs all rows. Returns the number of bytes written.
func (w *MapWriter) Write(rows []Row) (int, error) {
	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(row.Taxon)
		sb.WriteByte('\t')
		sb.WriteString(row.Group)
		sb.WriteByte('\n')
	}
	return io.WriteString(w.output, sb.String())
}

// TaxaWriter writes the optional taxa list: one taxon per line, same
// sort order as the map file.
type TaxaWriter struct {
	baseWriter
}

// NewTaxaWriter creates a TaxaWriter that outputs to the given writer.
func NewTaxaWriter(output io.Writer) *TaxaWriter {
	return &TaxaWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs all taxa. Returns the number of bytes written.
func (w *TaxaWriter) Write(taxa []string) (int, error) {
	var sb strings.Builder
	for _, taxon := range taxa {
		sb.WriteString(taxon)
		sb.WriteByte('\n')
	}
	return io.WriteString(w.output, sb.String())
}

// WriteMapFile writes rows to path, creating parent directories as
// needed.
func WriteMapFile(path string, rows []Row) error {
	return writeFile(path, func(f io.Writer) error {
		_, err := NewMapWriter(f).Write(rows)
		return err
	})
}

// WriteTaxaFile writes the taxa list to path, creating parent
// directories as needed.
func WriteTaxaFile(path string, taxa []string) error {
	return writeFile(path, func(f io.Writer) error {
		_, err := NewTaxaWriter(f).Write(taxa)
		return err
	})
}

// writeFile creates path (and its parent directories) and hands the open
// file to write. The file is truncated if it already exists.
func writeFile(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
