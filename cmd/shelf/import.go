package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import PATH",
	Short: "Import books from a CSV file",
	Long: `Import books from a CSV file with columns Title, Author, ISBN,
Read Status. The first line is treated as a header and skipped. Malformed
rows and duplicate ISBNs are skipped and counted.

Examples:
  shelf import books.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	store := openStore()
	res, err := store.ImportCSV(args[0])
	if err != nil {
		exitWithError(ExitError, "importing CSV: %v", err)
	}

	if humanOutput {
		fmt.Printf("Imported %d books, skipped %d\n", res.Imported, res.Skipped)
	} else {
		outputJSON(res)
	}
	return nil
}
