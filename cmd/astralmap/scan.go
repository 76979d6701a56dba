package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/phylokit/astralmap/internal/config"
	"github.com/phylokit/astralmap/internal/database"
	"github.com/phylokit/astralmap/internal/groups"
	logpkg "github.com/phylokit/astralmap/internal/log"
	"github.com/phylokit/astralmap/internal/model"
	"github.com/phylokit/astralmap/internal/report"
	"github.com/phylokit/astralmap/internal/scanner"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan alignment files and generate a taxon→group map file",
		Long: `Scan walks an input directory recursively, extracts taxon labels from
every NEXUS and FASTA alignment it finds, and writes a two-column map
file (taxon<TAB>group) with taxa sorted ascending.

Group assignment: taxa listed in the --groups table get their mapped
value; everything else follows --default-group ("species" maps a taxon
to itself, "NA" uses the literal NA, "none" leaves the group empty).

Examples:
  # Basic usage
  astralmap scan --input ./alignments --out-map astral.map

  # With a group table and NA fallback
  astralmap scan -i ./alignments -g groups.csv -d NA -o astral.map

  # Save the unique taxa list and a Markdown summary too
  astralmap scan -i ./alignments -o astral.map --out-taxa taxa.txt --report scan.md

  # Fail on the first unreadable or unrecognized file
  astralmap scan -i ./alignments -o astral.map --strict

Exit codes: 0 success, 2 no files matched the patterns, 3 files matched
but zero taxa were extracted, 1 any other error.`,
		Args: cobra.NoArgs,
		RunE: runScanCmd,
	}

	// Input flags
	cmd.Flags().StringP("input", "i", "",
		"Directory with alignment files (required)")
	cmd.Flags().StringP("pattern", "p", config.DefaultPattern,
		"Comma-separated glob patterns matched against file names")

	// Grouping flags
	cmd.Flags().StringP("groups", "g", "",
		"CSV/TSV file with 'taxon,group' columns (delimiter auto-detected)")
	cmd.Flags().StringP("default-group", "d", config.DefaultGroupPolicy,
		"Group for taxa missing from the table: species|NA|none")

	// Output flags
	cmd.Flags().StringP("out-map", "o", "",
		"Output map file path, TSV taxon<TAB>group (required)")
	cmd.Flags().String("out-taxa", "",
		"Optional output path for the unique taxa list")
	cmd.Flags().String("report", "",
		"Optional output path for a Markdown scan summary")

	// Behavior flags
	cmd.Flags().Bool("strict", false,
		"Abort the scan on the first unreadable or unrecognized file")
	cmd.Flags().Bool("save", false,
		"Save the run to the scan-history database")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .astralmap.yaml in cwd or XDG config dir)")

	return cmd
}

// runScanCmd executes the scan command.
func runScanCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	return runScan(cfg, logger)
}

// buildConfig creates a Config from the configuration file and cobra
// flags. File values seed the config; flags the user actually set win.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg.ConfigFilePath = configPath

	// If the user explicitly specified a config file, error when it is
	// missing; an absent default config file is fine.
	found := config.FindConfigFile(cfg.ConfigFilePath)
	if found != "" {
		cf, err := config.LoadConfigFile(found)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", found, err)
		}
		cf.Apply(cfg)
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	if cfg.InputDir, err = cmd.Flags().GetString("input"); err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("pattern") || cfg.Pattern == "" {
		if cfg.Pattern, err = cmd.Flags().GetString("pattern"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("groups") {
		if cfg.GroupsFile, err = cmd.Flags().GetString("groups"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("default-group") {
		if cfg.DefaultGroup, err = cmd.Flags().GetString("default-group"); err != nil {
			return nil, err
		}
	}
	if cfg.OutMap, err = cmd.Flags().GetString("out-map"); err != nil {
		return nil, err
	}
	if cfg.OutTaxa, err = cmd.Flags().GetString("out-taxa"); err != nil {
		return nil, err
	}
	if cfg.ReportFile, err = cmd.Flags().GetString("report"); err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("strict") {
		if cfg.Strict, err = cmd.Flags().GetBool("strict"); err != nil {
			return nil, err
		}
	}
	if cfg.SaveToDB, err = cmd.Flags().GetBool("save"); err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates the diagnostics logger. Warnings always show;
// verbose mode lowers the threshold to debug.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(logpkg.NewConsoleHandler(os.Stderr, level))
}

// runScan executes the scan and writes all requested outputs.
func runScan(cfg *config.Config, logger *slog.Logger) error {
	info, err := os.Stat(cfg.InputDir)
	if err != nil {
		return fmt.Errorf("cannot read input directory %s: %w", cfg.InputDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("input path is not a directory: %s", cfg.InputDir)
	}

	sc := scanner.New(
		scanner.WithStrict(cfg.Strict),
		scanner.WithLogger(logger),
	)

	scanReport, err := sc.Scan(cfg.InputDir, cfg.PatternList())
	if err != nil {
		// ErrNoInputFiles / ErrEmptyResultSet bubble to Execute, which
		// turns them into their distinct exit codes. No output file is
		// written on either.
		return err
	}

	// Resolve groups
	var table groups.Table
	if cfg.GroupsFile != "" {
		table, err = groups.LoadTable(cfg.GroupsFile)
		if err != nil {
			return err
		}
		logger.Debug("group table loaded", "path", cfg.GroupsFile, "entries", len(table))
	}
	policy, err := groups.ParsePolicy(cfg.DefaultGroup)
	if err != nil {
		return err
	}
	resolver := groups.NewResolver(table, policy)

	// Primary output: the map file
	rows := report.BuildRows(scanReport.Taxa, resolver.Resolve)
	if err := report.WriteMapFile(cfg.OutMap, rows); err != nil {
		return err
	}

	// Optional outputs
	if cfg.OutTaxa != "" {
		if err := report.WriteTaxaFile(cfg.OutTaxa, scanReport.Taxa.Sorted()); err != nil {
			return err
		}
	}
	if cfg.ReportFile != "" {
		if err := report.WriteMarkdownFile(cfg.ReportFile, scanReport); err != nil {
			return err
		}
	}

	if cfg.SaveToDB {
		if err := saveRun(cfg, scanReport, logger); err != nil {
			// History is a convenience; its failure should not undo a
			// scan whose outputs are already on disk.
			logger.Warn("failed to save scan run", "error", err)
		}
	}

	printSummary(cfg, scanReport)
	return nil
}

// saveRun stores the completed scan in the history database.
func saveRun(cfg *config.Config, scanReport *model.ScanReport, logger *slog.Logger) error {
	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := db.SaveRun(context.Background(), scanReport)
	if err != nil {
		return err
	}
	logger.Debug("scan run saved", "id", id, "db", db.Path())
	return nil
}

// printSummary reports the outcome on stdout.
func printSummary(cfg *config.Config, scanReport *model.ScanReport) {
	fmt.Printf("Scanned %d file(s), %d skipped, %d unique taxa.\n",
		scanReport.FileCount(), scanReport.SkippedCount(), scanReport.TaxonCount())
	fmt.Printf("Map written to %s\n", cfg.OutMap)
	if cfg.OutTaxa != "" {
		fmt.Printf("Taxa list written to %s\n", cfg.OutTaxa)
	}
	if cfg.ReportFile != "" {
		fmt.Printf("Report written to %s\n", cfg.ReportFile)
	}
}
