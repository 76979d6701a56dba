// Package detect classifies alignment files as FASTA, NEXUS, or unknown.
//
// Classification prefers content signatures over file extensions: the
// first 50 non-empty lines are sniffed for a '>' header or a '#NEXUS'
// magic line. Extension matching is the fallback, and any read failure
// during sniffing silently degrades to extension-only classification so
// that detection itself never fails a scan.
package detect
