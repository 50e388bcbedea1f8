package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	addRead   bool
	addLookup bool
)

func init() {
	addCmd.Flags().BoolVar(&addRead, "read", false, "Mark the book as already read")
	addCmd.Flags().BoolVar(&addLookup, "lookup", false, "Fill missing title/author from Open Library")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add ISBN [TITLE AUTHOR]",
	Short: "Add a book to the catalog",
	Long: `Add a book to the catalog.

With --lookup, title and author are fetched from Open Library and the
positional TITLE and AUTHOR arguments may be omitted.

Examples:
  shelf add 9780441013593 "Dune" "Herbert, Frank"
  shelf add 9780441013593 --lookup --read`,
	Args: cobra.RangeArgs(1, 3),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	isbn := args[0]
	var title, author string
	if len(args) == 3 {
		title, author = args[1], args[2]
	} else if len(args) == 2 {
		title = args[1]
	}

	if addLookup && (title == "" || author == "") {
		_ = godotenv.Load()
		data, found, err := lookupISBN(cmd.Context(), isbn)
		if err != nil {
			exitWithError(ExitError, "looking up ISBN %s: %v", isbn, err)
		}
		if !found {
			exitWithError(ExitDataError, "no Open Library record for ISBN %s", isbn)
		}
		if title == "" {
			title = data.Title
		}
		if author == "" {
			author = data.CatalogAuthor()
		}
	}

	if title == "" || author == "" {
		exitWithError(ExitDataError, "title and author are required (or pass --lookup)")
	}

	store := openStore()
	res := store.Add(title, author, isbn, addRead)

	if humanOutput {
		if res.Added {
			fmt.Print("Added: ")
			printBookHuman(res.Book)
		} else {
			fmt.Printf("A book with ISBN %s already exists\n", isbn)
		}
	} else {
		outputJSON(res)
	}
	return nil
}
