// Package book defines the core domain type for catalog entries.
package book

import (
	"sort"
	"strings"
)

// Book represents a single catalog entry. The ISBN is the natural key:
// an inventory holds at most one book per exact ISBN string.
type Book struct {
	Title  string `json:"title"`
	Author string `json:"author"` // Conventionally "Last, First", not validated
	ISBN   string `json:"isbn"`
	IsRead bool   `json:"isRead"`
}

// ReadStatus returns the display word for the read flag.
func (b Book) ReadStatus() string {
	if b.IsRead {
		return "Read"
	}
	return "Unread"
}

// SortByAuthor returns a copy of books ordered by author, case-insensitive
// ascending. The sort is stable: books with equal authors keep their
// original relative order.
func SortByAuthor(books []Book) []Book {
	sorted := make([]Book, len(books))
	copy(sorted, books)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Author) < strings.ToLower(sorted[j].Author)
	})
	return sorted
}
