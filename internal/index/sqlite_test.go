package index

import (
	"path/filepath"
	"testing"

	"github.com/mkline/shelf/internal/book"
)

func testBooks() []book.Book {
	return []book.Book{
		{Title: "Dune", Author: "Herbert, Frank", ISBN: "9780441013593", IsRead: false},
		{Title: "Dune Messiah", Author: "Herbert, Frank", ISBN: "9780593098233", IsRead: true},
		{Title: "1984", Author: "Orwell, George", ISBN: "9780451524935", IsRead: true},
	}
}

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), IndexFile))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRebuild_PopulatesIndex(t *testing.T) {
	db := openTestDB(t)

	count, err := db.Rebuild(testBooks())
	if err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}
	if count != 3 {
		t.Errorf("Rebuild() = %d, want 3", count)
	}

	got, err := db.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
}

func TestRebuild_ReplacesPreviousContents(t *testing.T) {
	db := openTestDB(t)

	if _, err := db.Rebuild(testBooks()); err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}
	if _, err := db.Rebuild(testBooks()[:1]); err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}

	got, err := db.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if got != 1 {
		t.Errorf("Count() after second rebuild = %d, want 1", got)
	}
}

func TestSearch_ByAuthor(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.Rebuild(testBooks()); err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}

	books, err := db.Search("herbert", 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("Search(herbert) returned %d books, want 2", len(books))
	}
	for _, b := range books {
		if b.Author != "Herbert, Frank" {
			t.Errorf("Search(herbert) returned author %q", b.Author)
		}
	}
}

func TestSearch_ByTitle(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.Rebuild(testBooks()); err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}

	books, err := db.Search("messiah", 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(books) != 1 {
		t.Fatalf("Search(messiah) returned %d books, want 1", len(books))
	}
	if books[0].ISBN != "9780593098233" {
		t.Errorf("Search(messiah) ISBN = %q", books[0].ISBN)
	}
	if !books[0].IsRead {
		t.Errorf("Search(messiah) lost the read flag")
	}
}

func TestSearch_NoMatch(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.Rebuild(testBooks()); err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}

	books, err := db.Search("austen", 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(books) != 0 {
		t.Errorf("Search(austen) returned %d books, want 0", len(books))
	}
}

func TestSearch_SpecialCharactersQuoted(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.Rebuild(testBooks()); err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}

	// Must not produce an FTS5 syntax error.
	if _, err := db.Search(`herbert "frank"`, 10); err != nil {
		t.Fatalf("Search() with special chars error = %v", err)
	}
}

func TestPathFor(t *testing.T) {
	got := PathFor("/tmp/lib")
	want := filepath.Join("/tmp/lib", IndexFile)
	if got != want {
		t.Errorf("PathFor() = %q, want %q", got, want)
	}
}
