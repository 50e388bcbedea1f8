// Package inventory implements the book inventory store: the in-memory
// collection of catalog entries backed by a JSON snapshot file.
//
// The snapshot is loaded once when the store is opened and rewritten whole
// after every mutation. Persistence is best effort: a failed load degrades
// to an empty inventory and a failed save leaves the file unchanged, while
// the in-memory state stays authoritative for the rest of the run. Both
// failure kinds are recorded on the store so tests can observe them.
package inventory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mkline/shelf/internal/book"
	"github.com/mkline/shelf/internal/export"
	"github.com/mkline/shelf/internal/importer"
)

// SnapshotFile is the name of the persistence file inside the library directory.
const SnapshotFile = "bookInventory"

// TopAuthorCount is how many authors Stats reports.
const TopAuthorCount = 5

// Store owns the inventory and its snapshot file. It is not safe for
// concurrent use; the CLI drives it strictly sequentially.
type Store struct {
	path  string
	books []book.Book

	// LoadErr records a failed snapshot load. LoadErr is nil when the
	// snapshot simply didn't exist yet.
	LoadErr error
	// SaveErr records the most recent persist outcome.
	SaveErr error
}

// Open creates a store backed by dir/bookInventory and loads the snapshot.
// A missing or unparsable snapshot yields an empty inventory, not an error.
func Open(dir string) *Store {
	s := &Store{path: filepath.Join(dir, SnapshotFile)}
	s.load()
	return s
}

// Path returns the snapshot file path.
func (s *Store) Path() string {
	return s.path
}

// Count returns the number of books in the inventory.
func (s *Store) Count() int {
	return len(s.books)
}

// Books returns the inventory in insertion order.
func (s *Store) Books() []book.Book {
	out := make([]book.Book, len(s.books))
	copy(out, s.books)
	return out
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.LoadErr = fmt.Errorf("reading snapshot: %w", err)
		}
		return
	}

	var books []book.Book
	if err := json.Unmarshal(data, &books); err != nil {
		s.LoadErr = fmt.Errorf("parsing snapshot: %w", err)
		return
	}
	s.books = books
}

// persist rewrites the snapshot after a mutation, swallowing any error.
func (s *Store) persist() {
	s.SaveErr = s.writeSnapshot()
}

// writeSnapshot writes the full inventory via a temp file and atomic rename.
func (s *Store) writeSnapshot() error {
	books := s.books
	if books == nil {
		books = []book.Book{}
	}
	data, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".tmp-inventory-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	// Clean up temp file on error
	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if _, err := tmp.WriteString("\n"); err != nil {
		tmp.Close()
		return fmt.Errorf("writing newline: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}

	success = true
	return nil
}

// findExact returns the index of the book with an exactly equal ISBN.
func (s *Store) findExact(isbn string) (int, bool) {
	for i, b := range s.books {
		if b.ISBN == isbn {
			return i, true
		}
	}
	return -1, false
}

// Add appends a new book unless a book with the same ISBN already exists.
// The ISBN comparison is exact and case-sensitive.
func (s *Store) Add(title, author, isbn string, isRead bool) AddResult {
	b := book.Book{Title: title, Author: author, ISBN: isbn, IsRead: isRead}
	if _, found := s.findExact(isbn); found {
		return AddResult{Added: false, Book: b}
	}

	s.books = append(s.books, b)
	s.persist()
	return AddResult{Added: true, Book: b}
}

// Remove deletes every book whose ISBN is exactly equal to isbn. Zero
// matches is not an error; the snapshot is rewritten only when the
// inventory shrank.
func (s *Store) Remove(isbn string) RemoveResult {
	var kept []book.Book
	for _, b := range s.books {
		if b.ISBN == isbn {
			continue
		}
		kept = append(kept, b)
	}

	removed := len(kept) < len(s.books)
	if removed {
		s.books = kept
		s.persist()
	}
	return RemoveResult{Removed: removed, ISBN: isbn}
}

// Toggle flips the read flag of the first book with an exactly equal ISBN.
func (s *Store) Toggle(isbn string) ToggleResult {
	i, found := s.findExact(isbn)
	if !found {
		return ToggleResult{Found: false, ISBN: isbn}
	}

	s.books[i].IsRead = !s.books[i].IsRead
	s.persist()
	b := s.books[i]
	return ToggleResult{Found: true, ISBN: isbn, Book: &b}
}

// List returns the inventory sorted by author, case-insensitive ascending,
// stable for equal authors.
func (s *Store) List() []book.Book {
	return book.SortByAuthor(s.books)
}

// SearchISBN finds the book whose ISBN matches case-insensitively.
// Unlike Add/Remove/Toggle, this lookup ignores case.
func (s *Store) SearchISBN(isbn string) (book.Book, bool) {
	want := strings.ToLower(isbn)
	for _, b := range s.books {
		if strings.ToLower(b.ISBN) == want {
			return b, true
		}
	}
	return book.Book{}, false
}

// Search returns books whose title or author contains term,
// case-insensitive, sorted by author like List.
func (s *Store) Search(term string) []book.Book {
	want := strings.ToLower(term)
	var matches []book.Book
	for _, b := range s.books {
		if strings.Contains(strings.ToLower(b.Title), want) ||
			strings.Contains(strings.ToLower(b.Author), want) {
			matches = append(matches, b)
		}
	}
	return book.SortByAuthor(matches)
}

// ExportCSV writes the author-sorted inventory to path in CSV form.
// The store is not mutated.
func (s *Store) ExportCSV(path string) error {
	return export.WriteCSV(path, book.SortByAuthor(s.books))
}

// ImportCSV parses a CSV file and adds each valid row. Rows that are
// malformed or collide with an existing ISBN (including duplicates within
// the same file) are counted as skipped. A file-level read error aborts
// the import with no counts.
func (s *Store) ImportCSV(path string) (ImportResult, error) {
	rows, skipped, err := importer.ParseFile(path)
	if err != nil {
		return ImportResult{}, err
	}

	res := ImportResult{Skipped: skipped}
	for _, r := range rows {
		if s.Add(r.Title, r.Author, r.ISBN, r.IsRead).Added {
			res.Imported++
		} else {
			res.Skipped++
		}
	}
	return res, nil
}
