package scanner

import "errors"

// Scan failure sentinels. These are matched with errors.Is by the CLI to
// choose distinct exit codes, so they must stay stable.
var (
	// ErrNoInputFiles is returned when no file under the input directory
	// matched any of the glob patterns. This always aborts the run: it
	// indicates a configuration problem the user must address.
	ErrNoInputFiles = errors.New("no files matched the input patterns")

	// ErrEmptyResultSet is returned when files were found and processed
	// but zero taxa were extracted. Distinct from ErrNoInputFiles so the
	// user can tell a bad pattern from unparseable data.
	ErrEmptyResultSet = errors.New("no taxa extracted from matched files")

	// ErrUnrecognizedFormat is returned (strict mode) or warned
	// (non-strict mode) for a file that carries neither a FASTA nor a
	// NEXUS signature and no matching extension.
	ErrUnrecognizedFormat = errors.New("unrecognized alignment format")
)
