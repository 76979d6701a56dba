package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phylokit/astralmap/internal/scanner"
)

// Exit codes. No-input and no-taxa failures get distinct codes so shell
// pipelines can tell a bad pattern from unparseable data.
const (
	// ExitCodeOK means the scan succeeded.
	ExitCodeOK = 0

	// ExitCodeError is the catch-all for fatal errors.
	ExitCodeError = 1

	// ExitCodeNoInputFiles means no file matched the input patterns.
	ExitCodeNoInputFiles = 2

	// ExitCodeNoTaxa means files were scanned but zero taxa extracted.
	ExitCodeNoTaxa = 3
)

// NewRootCmd creates the root command for astralmap.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "astralmap",
		Short: "Generate ASTRAL map files from alignment directories",
		Long: `astralmap scans a folder of phylogenetic alignments (NEXUS and FASTA),
extracts all taxon labels, and generates a taxon→group map file for
species-tree inference tools such as ASTRAL.

Supported formats (detected by content signature, falling back to extension):
- NEXUS: .nex, .nexus (TAXLABELS or MATRIX blocks, interleaved included)
- FASTA: .fasta, .fa, .fas (label after '>')`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose diagnostics on stderr")

	// Add subcommands
	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command and exits with a status code derived
// from the error category.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps scan failure sentinels to their distinct exit codes.
func exitCode(err error) int {
	switch {
	case errors.Is(err, scanner.ErrNoInputFiles):
		return ExitCodeNoInputFiles
	case errors.Is(err, scanner.ErrEmptyResultSet):
		return ExitCodeNoTaxa
	default:
		return ExitCodeError
	}
}
