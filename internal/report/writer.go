package report

import (
	"io"

	"github.com/phylokit/astralmap/internal/model"
)

// Row is one output line of the map file: a taxon and its resolved group.
type Row struct {
	Taxon string
	Group string
}

// BuildRows materializes the sorted output rows for a taxon set, using
// resolve to pick each taxon's group. This is the only place output
// ordering is decided.
func BuildRows(taxa model.TaxonSet, resolve func(taxon string) string) []Row {
	sorted := taxa.Sorted()
	rows := make([]Row, 0, len(sorted))
	for _, taxon := range sorted {
		rows = append(rows, Row{Taxon: taxon, Group: resolve(taxon)})
	}
	return rows
}

// baseWriter provides the shared output destination for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
