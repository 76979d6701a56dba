package nexus

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/phylokit/astralmap/internal/textenc"
)

// ErrMalformedBlock is returned when a TAXLABELS or MATRIX keyword is
// located but the block is unusable: the terminating ';' is missing or a
// quoted name is left open. Missing the terminator means the block may
// have been truncated, so parsing it would risk inventing labels.
var ErrMalformedBlock = errors.New("malformed block: missing terminator")

// matrixSkipPrefixes are header echoes that may appear inside a MATRIX
// span and must not be mistaken for taxon rows.
var matrixSkipPrefixes = []string{"matrix", "format", "dimensions", "end", "begin"}

// strategy extracts candidate labels from comment-stripped NEXUS text.
// A strategy that finds nothing relevant returns (nil, nil) so the next
// one in the chain is tried.
type strategy interface {
	name() string
	extract(text string) ([]string, error)
}

// extractionStrategies is the ordered chain: TAXLABELS is authoritative,
// MATRIX is the fallback. Append here to support further dialects.
var extractionStrategies = []strategy{
	taxLabelsStrategy{},
	matrixStrategy{},
}

// ExtractFile reads a NEXUS file and returns its taxon labels.
// Read failures propagate; decoding is best-effort and never fails.
func ExtractFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read nexus file: %w", err)
	}
	return ExtractTaxa(textenc.Decode(data))
}

// ExtractTaxa returns the deduplicated taxon labels found in NEXUS text,
// in first-seen order. Comments are stripped first, then each strategy
// runs in turn; the first strategy to yield any raw label wins and its
// cleaned result is returned even if cleaning empties it. No strategy
// matching at all is not an error: the file simply contributes nothing.
func ExtractTaxa(text string) ([]string, error) {
	clean := StripComments(text)

	for _, s := range extractionStrategies {
		labels, err := s.extract(clean)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.name(), err)
		}
		if len(labels) > 0 {
			return cleanLabels(labels), nil
		}
	}
	return nil, nil
}

// cleanLabels trims surrounding whitespace and trailing ';' from each
// label, discards empties, and removes duplicates preserving order.
func cleanLabels(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	cleaned := make([]string, 0, len(labels))
	for _, l := range labels {
		l = strings.TrimRight(strings.TrimSpace(l), ";")
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		cleaned = append(cleaned, l)
	}
	return cleaned
}

// taxLabelsStrategy parses the TAXLABELS block: everything between the
// keyword and the next ';', tokenized with quote awareness.
type taxLabelsStrategy struct{}

func (taxLabelsStrategy) name() string { return "taxlabels" }

func (taxLabelsStrategy) extract(text string) ([]string, error) {
	idx := indexFold(text, "taxlabels")
	if idx == -1 {
		return nil, nil
	}

	sub := text[idx:]
	end := strings.Index(sub, ";")
	if end == -1 {
		return nil, ErrMalformedBlock
	}
	sub = sub[len("taxlabels"):end]

	labels, err := Tokenize(sub)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBlock, err)
	}
	return labels, nil
}

// matrixStrategy parses the MATRIX block, taking the first token of each
// data row. Interleaved matrices repeat each taxon across row groups;
// duplicates collapse during final cleanup.
type matrixStrategy struct{}

func (matrixStrategy) name() string { return "matrix" }

func (matrixStrategy) extract(text string) ([]string, error) {
	idx := indexFold(text, "matrix")
	if idx == -1 {
		return nil, nil
	}

	sub := text[idx+len("matrix"):]
	end := strings.Index(sub, ";")
	if end == -1 {
		return nil, ErrMalformedBlock
	}
	sub = sub[:end]

	var labels []string
	for _, raw := range strings.Split(sub, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || isMatrixHeaderEcho(line) {
			continue
		}
		tokens, err := Tokenize(line)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedBlock, err)
		}
		if len(tokens) == 0 {
			continue
		}
		labels = append(labels, tokens[0])
	}
	return labels, nil
}

// indexFold returns the byte offset of the first case-insensitive
// occurrence of keyword in text, or -1. Only ASCII letters are folded:
// general Unicode lowering can change byte lengths (the Kelvin sign K
// lowers to a shorter k), which would make the offset invalid as a
// slice index into text. NEXUS keywords are plain ASCII, so ASCII
// folding finds every legitimate spelling.
func indexFold(text, keyword string) int {
	return strings.Index(lowerASCII(text), keyword)
}

// lowerASCII lowercases ASCII letters only, preserving byte offsets.
func lowerASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

// isMatrixHeaderEcho reports whether a trimmed line is a stray block
// header rather than a data row.
func isMatrixHeaderEcho(line string) bool {
	lower := strings.ToLower(line)
	for _, prefix := range matrixSkipPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
