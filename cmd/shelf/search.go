package main

import (
	"fmt"

	"github.com/mkline/shelf/internal/book"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(isbnCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search TERM",
	Short: "Search books by title or author",
	Long: `Search for books whose title or author contains TERM,
case-insensitive. Results are sorted by author.

Examples:
  shelf search dune
  shelf search "herbert"`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	store := openStore()
	matches := store.Search(args[0])

	if humanOutput {
		if len(matches) == 0 {
			fmt.Println("No matches")
		} else {
			fmt.Printf("%d matches:\n\n", len(matches))
			printBooksHuman(matches)
		}
	} else {
		if matches == nil {
			matches = []book.Book{}
		}
		outputJSON(matches)
	}
	return nil
}

var isbnCmd = &cobra.Command{
	Use:   "isbn ISBN",
	Short: "Find a book by ISBN",
	Long: `Find the book with the given ISBN. The match is exact but
case-insensitive.`,
	Args: cobra.ExactArgs(1),
	RunE: runISBN,
}

// ISBNSearchResult is the response for the isbn command.
type ISBNSearchResult struct {
	Found bool       `json:"found"`
	Book  *book.Book `json:"book,omitempty"`
}

func runISBN(cmd *cobra.Command, args []string) error {
	store := openStore()
	b, found := store.SearchISBN(args[0])

	if humanOutput {
		if found {
			printBookHuman(b)
		} else {
			fmt.Printf("No book with ISBN %s\n", args[0])
		}
	} else {
		res := ISBNSearchResult{Found: found}
		if found {
			res.Book = &b
		}
		outputJSON(res)
	}
	return nil
}
