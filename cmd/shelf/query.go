package main

import (
	"fmt"

	"github.com/mkline/shelf/internal/book"
	"github.com/mkline/shelf/internal/index"
	"github.com/spf13/cobra"
)

// DefaultQueryLimit is the default number of query results.
const DefaultQueryLimit = 50

var queryLimit int

func init() {
	queryCmd.Flags().IntVar(&queryLimit, "limit", DefaultQueryLimit, "Maximum results to return")
	rootCmd.AddCommand(queryCmd)
}

var queryCmd = &cobra.Command{
	Use:   "query TERM",
	Short: "Full-text search via the query index",
	Long: `Search title and author through the SQLite full-text index.

Unlike 'shelf search', this uses FTS5 term matching and requires the index
to be up to date (see 'shelf rebuild').

Examples:
  shelf query herbert
  shelf query "dune" --limit 10`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	dir := mustLibraryDir()

	db, err := index.Open(index.PathFor(dir))
	if err != nil {
		exitWithError(ExitError, "opening index: %v", err)
	}
	defer db.Close()

	matches, err := db.Search(args[0], queryLimit)
	if err != nil {
		exitWithError(ExitError, "querying index: %v", err)
	}

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
