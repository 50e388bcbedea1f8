// Package importer parses external formats into catalog rows.
package importer

import (
	"fmt"
	"os"
	"strings"
)

// MinFields is the number of columns a row needs to be usable.
const MinFields = 4

// Row is one parsed CSV line ready to be added to the inventory.
type Row struct {
	Title  string
	Author string
	ISBN   string
	IsRead bool
}

// ParseFile reads a CSV export and returns the usable rows plus the number
// of malformed rows that were skipped. A file-level read error aborts the
// whole import; no partial counts are reported in that case.
func ParseFile(path string) ([]Row, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("reading CSV file: %w", err)
	}
	rows, skipped := Parse(string(data))
	return rows, skipped, nil
}

// Parse splits data into lines, discards the first line as the header and
// any empty lines, and parses the rest. Malformed lines are counted, not
// returned.
func Parse(data string) ([]Row, int) {
	lines := strings.Split(data, "\n")
	var rows []Row
	skipped := 0
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if i == 0 || strings.TrimSpace(line) == "" {
			continue
		}
		row, ok := ParseRow(line)
		if !ok {
			skipped++
			continue
		}
		rows = append(rows, row)
	}
	return rows, skipped
}

// ParseRow splits one line with the quote-aware scanner and validates it.
// A row is usable only if it has at least MinFields fields and title,
// author, and ISBN are non-empty after quote trimming. The read-status
// field maps to true only on a case-insensitive match of "read".
//
// Trimming strips leading and trailing quote characters from each field
// but does not collapse doubled internal quotes, so a title exported as
// "say ""hi""" comes back as `say ""hi`. This asymmetry with the exporter
// is kept for compatibility with previously exported files.
func ParseRow(line string) (Row, bool) {
	fields := SplitFields(line)
	if len(fields) < MinFields {
		return Row{}, false
	}

	title := strings.Trim(fields[0], `"`)
	author := strings.Trim(fields[1], `"`)
	isbn := strings.Trim(fields[2], `"`)
	if title == "" || author == "" || isbn == "" {
		return Row{}, false
	}

	status := strings.Trim(fields[3], `"`)
	return Row{
		Title:  title,
		Author: author,
		ISBN:   isbn,
		IsRead: strings.EqualFold(status, "read"),
	}, true
}

// SplitFields scans one CSV line statefully: a double quote toggles
// in-quote mode (and is kept in the field buffer), a comma separates
// fields only while outside quotes, and every other character is appended
// to the current field. The final field is flushed at end of line.
func SplitFields(line string) []string {
	var fields []string
	var field strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			field.WriteRune(r)
		case r == ',' && !inQuotes:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}
	fields = append(fields, field.String())

	return fields
}
