package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mkline/shelf/internal/book"
)

// ListTitleMaxLen bounds titles in list and search output.
const ListTitleMaxLen = 50

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON)
// and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// printBooksHuman prints books one per line with ISBN, status, title, author.
func printBooksHuman(books []book.Book) {
	for _, b := range books {
		fmt.Printf("  %-15s %-8s %s (%s)\n",
			b.ISBN, b.ReadStatus(), truncateString(b.Title, ListTitleMaxLen), b.Author)
	}
}

// printBookHuman prints a single book on one line.
func printBookHuman(b book.Book) {
	fmt.Printf("%s by %s (%s, %s)\n", b.Title, b.Author, b.ISBN, b.ReadStatus())
}
