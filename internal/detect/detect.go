package detect

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/phylokit/astralmap/internal/model"
	"github.com/phylokit/astralmap/internal/textenc"
)

// sniffLineLimit is how many non-empty lines are inspected before giving
// up on content-based detection.
const sniffLineLimit = 50

// maxLineSize mirrors the fasta package limit: unwrapped sequence lines
// can be very long.
const maxLineSize = 16 * 1024 * 1024

// File classifies the file at path. Content signatures win over
// extensions; a file that cannot be opened or read is classified by
// extension alone. File never returns an error by contract.
func File(path string) model.Format {
	f, err := os.Open(path)
	if err == nil {
		defer f.Close()
		if format, ok := sniff(f); ok {
			return format
		}
	}
	return byExtension(path)
}

// sniff inspects up to sniffLineLimit non-empty lines for a format
// signature. The second return value is false when no signature was found
// or reading failed.
func sniff(r io.Reader) (model.Format, bool) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	inspected := 0
	for inspected < sniffLineLimit && scanner.Scan() {
		line := strings.TrimSpace(textenc.Decode(scanner.Bytes()))
		if line == "" {
			continue
		}
		inspected++

		if strings.HasPrefix(line, ">") {
			return model.FormatFASTA, true
		}
		if strings.HasPrefix(strings.ToUpper(line), "#NEXUS") {
			return model.FormatNexus, true
		}
	}
	// Scanner errors (unreadable media, oversized lines) degrade to the
	// extension fallback, same as finding no signature.
	return model.FormatUnknown, false
}

// byExtension classifies by file extension, case-insensitively.
func byExtension(path string) model.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".fasta", ".fa", ".fas":
		return model.FormatFASTA
	case ".nex", ".nexus":
		return model.FormatNexus
	default:
		return model.FormatUnknown
	}
}
