// Package export writes the inventory to external formats.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/mkline/shelf/internal/book"
)

// Header is the first line of every CSV export.
const Header = "Title,Author,ISBN,Read Status"

// CSV renders books as a CSV table. Title and author are always wrapped in
// double quotes with embedded quotes doubled; ISBN and the read-status
// word are written bare. Rows appear in the order given, so callers pass
// an author-sorted slice.
//
// encoding/csv is deliberately not used here: it quotes fields only when
// necessary, while this format quotes exactly two of the four columns
// unconditionally.
func CSV(books []book.Book) string {
	var sb strings.Builder
	sb.WriteString(Header)
	sb.WriteString("\n")
	for _, b := range books {
		sb.WriteString(fmt.Sprintf("%s,%s,%s,%s\n",
			quote(b.Title), quote(b.Author), b.ISBN, b.ReadStatus()))
	}
	return sb.String()
}

// WriteCSV writes the CSV rendering of books to path, replacing any
// existing file.
func WriteCSV(path string, books []book.Book) error {
	if err := os.WriteFile(path, []byte(CSV(books)), 0644); err != nil {
		return fmt.Errorf("writing CSV file: %w", err)
	}
	return nil
}

// quote wraps a field in double quotes, doubling any embedded quotes.
func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
