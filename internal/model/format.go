package model

// Format classifies the on-disk layout of an alignment file.
type Format string

// Supported alignment file formats.
const (
	// FormatFASTA is a FASTA file: records introduced by '>' header lines.
	FormatFASTA Format = "fasta"

	// FormatNexus is a NEXUS file: block-structured text with TAXLABELS
	// and/or MATRIX blocks terminated by ';'.
	FormatNexus Format = "nexus"

	// FormatUnknown means neither a content signature nor a known file
	// extension identified the format.
	FormatUnknown Format = "unknown"
)

// String returns the format name.
func (f Format) String() string {
	return string(f)
}

// Known reports whether the format is one astralmap can extract labels from.
func (f Format) Known() bool {
	return f == FormatFASTA || f == FormatNexus
}
