package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phylokit/astralmap/internal/config"
	"github.com/phylokit/astralmap/internal/database"
)

// NewHistoryCmd creates the history command.
// It reads the scan-history database populated by `scan --save`.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved scan runs",
		Long: `History lists scan runs saved with 'astralmap scan --save', newest
first, so dataset growth can be tracked across assembly iterations.

Examples:
  # List the 20 most recent runs
  astralmap history

  # List more
  astralmap history --limit 100

  # Print one stored run as JSON (includes the full taxa list)
  astralmap history --run-id 5`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().Int64P("run-id", "r", 0,
		"Print the stored report for a specific run as JSON")
	cmd.Flags().IntP("limit", "n", 20,
		"Maximum number of runs to list")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	runID, err := cmd.Flags().GetInt64("run-id")
	if err != nil {
		return err
	}
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	db, err := database.Open(config.XDGDataDir(), database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	if runID > 0 {
		return printRun(ctx, cmd, db, runID)
	}
	return printRunList(ctx, cmd, db, limit)
}

// printRun writes one stored report as indented JSON.
func printRun(ctx context.Context, cmd *cobra.Command, db *database.HistoryDB, runID int64) error {
	run, err := db.GetRun(ctx, runID)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("no scan run with id %d (use 'astralmap history' to list runs)", runID)
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(run)
}

// printRunList writes the run listing in a fixed-width layout.
func printRunList(ctx context.Context, cmd *cobra.Command, db *database.HistoryDB, limit int) error {
	runs, err := db.ListRuns(ctx, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No saved scan runs. Use 'astralmap scan --save' to record one.")
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-5s  %-19s  %6s  %7s  %6s  %s\n",
		"ID", "DATE", "FILES", "SKIPPED", "TAXA", "ROOT")
	for _, run := range runs {
		fmt.Fprintf(out, "%-5d  %-19s  %6d  %7d  %6d  %s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.FileCount,
			run.SkippedCount,
			run.TaxonCount,
			run.Root,
		)
	}
	return nil
}
