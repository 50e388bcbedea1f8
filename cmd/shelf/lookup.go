package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/mkline/shelf/internal/config"
	"github.com/mkline/shelf/internal/openlibrary"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(lookupCmd)
}

var lookupCmd = &cobra.Command{
	Use:   "lookup ISBN",
	Short: "Look up book metadata on Open Library",
	Long: `Fetch title and author for an ISBN from Open Library without
touching the catalog.

Examples:
  shelf lookup 9780441013593`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

// LookupResult is the response for the lookup command.
type LookupResult struct {
	Found       bool   `json:"found"`
	ISBN        string `json:"isbn"`
	Title       string `json:"title,omitempty"`
	Author      string `json:"author,omitempty"`
	PublishDate string `json:"publish_date,omitempty"`
}

func runLookup(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	isbn := args[0]
	data, found, err := lookupISBN(cmd.Context(), isbn)
	if err != nil {
		exitWithError(ExitError, "looking up ISBN %s: %v", isbn, err)
	}

	res := LookupResult{Found: found, ISBN: isbn}
	if found {
		res.Title = data.Title
		res.Author = data.CatalogAuthor()
		res.PublishDate = data.PublishDate
	}

	if humanOutput {
		if found {
			fmt.Printf("%s by %s", res.Title, res.Author)
			if res.PublishDate != "" {
				fmt.Printf(" (%s)", res.PublishDate)
			}
			fmt.Println()
		} else {
			fmt.Printf("No Open Library record for ISBN %s\n", isbn)
		}
	} else {
		outputJSON(res)
	}
	return nil
}

// lookupISBN builds a client from the global config and queries Open Library.
func lookupISBN(ctx context.Context, isbn string) (openlibrary.BookData, bool, error) {
	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{}
	}

	var opts []openlibrary.ClientOption
	if cfg.OpenLibraryUserAgent != "" {
		opts = append(opts, openlibrary.WithUserAgent(cfg.OpenLibraryUserAgent))
	}
	if cfg.OpenLibraryRPS > 0 {
		opts = append(opts, openlibrary.WithRPS(cfg.OpenLibraryRPS))
	}

	client := openlibrary.NewClient(opts...)
	return client.LookupISBN(ctx, isbn)
}
