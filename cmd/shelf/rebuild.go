package main

import (
	"fmt"

	"github.com/mkline/shelf/internal/index"
	"github.com/mkline/shelf/internal/inventory"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(rebuildCmd)
}

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the query index from the catalog",
	Long: `Rebuild the SQLite full-text index from the bookInventory snapshot.

The index is derived data; run this after editing the snapshot by hand or
if the index becomes corrupted.`,
	RunE: runRebuild,
}

// RebuildResult is the response for the rebuild command.
type RebuildResult struct {
	Status string `json:"status"`
	Books  int    `json:"books"`
}

func runRebuild(cmd *cobra.Command, args []string) error {
	dir := mustLibraryDir()
	store := inventory.Open(dir)

	db, err := index.Open(index.PathFor(dir))
	if err != nil {
		exitWithError(ExitError, "opening index: %v", err)
	}
	defer db.Close()

	count, err := db.Rebuild(store.Books())
	if err != nil {
		exitWithError(ExitError, "rebuilding index: %v", err)
	}

	if humanOutput {
		fmt.Printf("Indexed %d books\n", count)
	} else {
		outputJSON(RebuildResult{Status: "ok", Books: count})
	}
	return nil
}
