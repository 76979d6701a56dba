package groups

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/phylokit/astralmap/internal/textenc"
)

// Table maps taxon labels to group names. A taxon may legitimately map
// to the empty string; presence in the table is what matters.
type Table map[string]string

// LoadTable reads a taxon→group table from a CSV or TSV file.
//
// The field delimiter is auto-detected: tab is chosen only when the raw
// content contains strictly more tabs than commas. A header row is
// recognized when the first record contains both "taxon" and "group"
// column names (case-insensitive), in which case those columns are used;
// otherwise the first two columns are taxon and group and every row is
// data. Rows with too few columns are skipped without error.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read group table: %w", err)
	}
	return parseTable(textenc.Decode(data))
}

// parseTable parses decoded table content.
func parseTable(content string) (Table, error) {
	delim := ','
	if strings.Count(content, "\t") > strings.Count(content, ",") {
		delim = '\t'
	}

	reader := csv.NewReader(strings.NewReader(content))
	reader.Comma = delim
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse group table: %w", err)
	}

	table := make(Table)
	if len(records) == 0 {
		return table, nil
	}

	taxonIdx, groupIdx, start := 0, 1, 0
	if ti, gi, ok := headerIndices(records[0]); ok {
		taxonIdx, groupIdx = ti, gi
		start = 1
	}

	widest := max(taxonIdx, groupIdx)
	for _, rec := range records[start:] {
		if len(rec) <= widest {
			continue
		}
		taxon := strings.TrimSpace(rec[taxonIdx])
		group := strings.TrimSpace(rec[groupIdx])
		if taxon == "" {
			continue
		}
		table[taxon] = group
	}
	return table, nil
}

// headerIndices reports the taxon and group column positions when the
// record looks like a header row.
func headerIndices(record []string) (taxonIdx, groupIdx int, ok bool) {
	taxonIdx, groupIdx = -1, -1
	for i, col := range record {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "taxon":
			taxonIdx = i
		case "group":
			groupIdx = i
		}
	}
	if taxonIdx == -1 || groupIdx == -1 {
		return 0, 0, false
	}
	return taxonIdx, groupIdx, true
}
