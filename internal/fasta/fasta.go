package fasta

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/phylokit/astralmap/internal/textenc"
)

// maxLineSize bounds a single scanned line. Sequence lines in unwrapped
// FASTA exports can run to the full alignment length.
const maxLineSize = 16 * 1024 * 1024

// ExtractFile reads a FASTA file and returns its taxon labels.
// Read failures propagate; decoding is best-effort and never fails.
func ExtractFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fasta file: %w", err)
	}
	return ExtractTaxa(strings.NewReader(textenc.Decode(data)))
}

// ExtractTaxa returns the deduplicated taxon labels found in FASTA text,
// in first-seen order. For every line beginning with '>', the first
// whitespace-delimited token after the marker is the label; headers that
// are empty after the marker are skipped. Duplicate headers within one
// file collapse to a single label.
func ExtractTaxa(r io.Reader) ([]string, error) {
	var (
		labels []string
		seen   = make(map[string]struct{})
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, ">") {
			continue
		}
		header := strings.TrimSpace(line[1:])
		if header == "" {
			continue
		}
		label := strings.Fields(header)[0]
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan fasta text: %w", err)
	}

	return labels, nil
}
