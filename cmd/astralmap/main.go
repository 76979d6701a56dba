// Package main provides the entry point for the astralmap CLI.
//
// astralmap scans a directory of phylogenetic alignment files (NEXUS and
// FASTA), extracts every distinct taxon label, and writes a taxon→group
// map file for species-tree inference tools such as ASTRAL.
//
// Usage:
//
//	astralmap scan --input ./alignments --out-map astral.map
//
// See --help for all available options.
package main

// main is the entry point for astralmap.
func main() {
	Execute()
}
