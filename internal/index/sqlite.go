// Package index maintains the ephemeral SQLite query layer.
//
// The index is derived data: it is rebuilt wholesale from the inventory
// snapshot and never consulted by the core store operations, so a stale
// index cannot affect catalog semantics.
package index

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mkline/shelf/internal/book"
	_ "modernc.org/sqlite"
)

// IndexFile is the name of the index database inside the library directory.
const IndexFile = "bookIndex.db"

// PathFor returns the index database path for a library directory.
func PathFor(dir string) string {
	return filepath.Join(dir, IndexFile)
}

// DB wraps the SQLite connection holding the derived book index.
type DB struct {
	db *sql.DB
}

// Open opens or creates the index database at the given path.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening index database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		-- Main books table
		CREATE TABLE IF NOT EXISTS books (
			isbn TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			author TEXT NOT NULL,
			is_read INTEGER NOT NULL
		);

		-- Full-text search virtual table (standalone, not external content)
		CREATE VIRTUAL TABLE IF NOT EXISTS books_fts USING fts5(
			isbn,
			title,
			author
		);
	`

	_, err := db.Exec(schema)
	return err
}

// Rebuild clears the index and repopulates it from books.
// Returns the number of books indexed.
func (d *DB) Rebuild(books []book.Book) (int, error) {
	if _, err := d.db.Exec("DELETE FROM books"); err != nil {
		return 0, fmt.Errorf("clearing books table: %w", err)
	}
	if _, err := d.db.Exec("DELETE FROM books_fts"); err != nil {
		return 0, fmt.Errorf("clearing books_fts table: %w", err)
	}

	bookStmt, err := d.db.Prepare(`
		INSERT INTO books (isbn, title, author, is_read)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing books insert: %w", err)
	}
	defer bookStmt.Close()

	ftsStmt, err := d.db.Prepare(`
		INSERT INTO books_fts (isbn, title, author)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing fts insert: %w", err)
	}
	defer ftsStmt.Close()

	for _, b := range books {
		isRead := 0
		if b.IsRead {
			isRead = 1
		}

		if _, err := bookStmt.Exec(b.ISBN, b.Title, b.Author, isRead); err != nil {
			return 0, fmt.Errorf("inserting book %s: %w", b.ISBN, err)
		}
		if _, err := ftsStmt.Exec(b.ISBN, b.Title, b.Author); err != nil {
			return 0, fmt.Errorf("inserting fts for %s: %w", b.ISBN, err)
		}
	}

	return len(books), nil
}

// Search performs a full-text search over title and author.
func (d *DB) Search(query string, limit int) ([]book.Book, error) {
	rows, err := d.db.Query(`
		SELECT isbn, title, author, is_read
		FROM books
		WHERE isbn IN (SELECT isbn FROM books_fts WHERE books_fts MATCH ?)
		LIMIT ?`, prepareFTSQuery(query), limit)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}
	defer rows.Close()

	return scanBooks(rows)
}

// Count returns the number of indexed books.
func (d *DB) Count() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM books").Scan(&count)
	return count, err
}

func scanBooks(rows *sql.Rows) ([]book.Book, error) {
	var books []book.Book
	for rows.Next() {
		var b book.Book
		var isRead int
		if err := rows.Scan(&b.ISBN, &b.Title, &b.Author, &isRead); err != nil {
			return nil, err
		}
		b.IsRead = isRead != 0
		books = append(books, b)
	}
	return books, rows.Err()
}

// prepareFTSQuery escapes special characters for FTS5 queries.
func prepareFTSQuery(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	// If query contains special chars, quote it
	if strings.ContainsAny(query, "\"*+-:(){}[]^~") {
		query = strings.ReplaceAll(query, "\"", "\"\"")
		return "\"" + query + "\""
	}

	return query
}
