package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(toggleCmd)
}

var toggleCmd = &cobra.Command{
	Use:   "toggle ISBN",
	Short: "Toggle a book's read status",
	Long: `Flip the read status of the book with the given ISBN.

Examples:
  shelf toggle 9780441013593`,
	Args: cobra.ExactArgs(1),
	RunE: runToggle,
}

func runToggle(cmd *cobra.Command, args []string) error {
	store := openStore()
	res := store.Toggle(args[0])

	if humanOutput {
		if res.Found {
			fmt.Print("Updated: ")
			printBookHuman(*res.Book)
		} else {
			fmt.Printf("No book with ISBN %s\n", res.ISBN)
		}
	} else {
		outputJSON(res)
	}
	return nil
}
