package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove ISBN",
	Short: "Remove a book from the catalog",
	Long: `Remove the book with the given ISBN from the catalog.

Removing an ISBN that is not in the catalog is not an error; the result
reports whether anything was removed.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	store := openStore()
	res := store.Remove(args[0])

	if humanOutput {
		if res.Removed {
			fmt.Printf("Removed book with ISBN %s\n", res.ISBN)
		} else {
			fmt.Printf("No book with ISBN %s\n", res.ISBN)
		}
	} else {
		outputJSON(res)
	}
	return nil
}
