package main

import (
	"fmt"

	"github.com/mkline/shelf/internal/book"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all books sorted by author",
	Long: `List every book in the catalog, sorted by author (case-insensitive).

Examples:
  shelf list
  shelf list --human`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	store := openStore()
	books := store.List()

	if humanOutput {
		if len(books) == 0 {
			fmt.Println("No books in catalog")
		} else {
			fmt.Printf("%d books in catalog:\n\n", len(books))
			printBooksHuman(books)
		}
	} else {
		if books == nil {
			books = []book.Book{}
		}
		outputJSON(books)
	}
	return nil
}
