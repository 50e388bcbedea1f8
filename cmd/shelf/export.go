package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export PATH",
	Short: "Export the catalog to a CSV file",
	Long: `Write the catalog to PATH as CSV, sorted by author, replacing any
existing file. Title and author columns are quoted; ISBN and read status
are not.

Examples:
  shelf export books.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	store := openStore()
	if err := store.ExportCSV(args[0]); err != nil {
		exitWithError(ExitError, "exporting CSV: %v", err)
	}

	if humanOutput {
		fmt.Printf("Exported %d books to %s\n", store.Count(), args[0])
	} else {
		outputJSON(StatusResponse{Status: "exported", Path: args[0]})
	}
	return nil
}
