package inventory

import (
	"sort"

	"github.com/mkline/shelf/internal/book"
)

// AddResult reports the outcome of Add. Added is false when a book with
// the same ISBN already existed.
type AddResult struct {
	Added bool      `json:"added"`
	Book  book.Book `json:"book"`
}

// RemoveResult reports whether Remove deleted anything.
type RemoveResult struct {
	Removed bool   `json:"removed"`
	ISBN    string `json:"isbn"`
}

// ToggleResult reports the outcome of Toggle. Book is the updated record
// when Found is true.
type ToggleResult struct {
	Found bool       `json:"found"`
	ISBN  string     `json:"isbn"`
	Book  *book.Book `json:"book,omitempty"`
}

// ImportResult reports how many rows a CSV import added and skipped.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// AuthorCount pairs an author with the number of their books in the
// inventory. Grouping is by exact author string.
type AuthorCount struct {
	Author string `json:"author"`
	Count  int    `json:"count"`
}

// Statistics summarizes the inventory. ReadPercent is 0 for an empty
// inventory and is rendered with one decimal place in human output.
type Statistics struct {
	Total       int           `json:"total"`
	Read        int           `json:"read"`
	Unread      int           `json:"unread"`
	ReadPercent float64       `json:"read_percent"`
	TopAuthors  []AuthorCount `json:"top_authors"`
}

// Stats computes counts, the read percentage, and the top authors by
// descending book count. Ties keep first-seen order, so the result is
// deterministic for a given inventory.
func (s *Store) Stats() Statistics {
	stats := Statistics{Total: len(s.books)}
	for _, b := range s.books {
		if b.IsRead {
			stats.Read++
		}
	}
	stats.Unread = stats.Total - stats.Read
	if stats.Total > 0 {
		stats.ReadPercent = float64(stats.Read) / float64(stats.Total) * 100
	}

	counts := make(map[string]int)
	var order []string
	for _, b := range s.books {
		if counts[b.Author] == 0 {
			order = append(order, b.Author)
		}
		counts[b.Author]++
	}

	top := make([]AuthorCount, len(order))
	for i, author := range order {
		top[i] = AuthorCount{Author: author, Count: counts[author]}
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Count > top[j].Count
	})
	if len(top) > TopAuthorCount {
		top = top[:TopAuthorCount]
	}
	stats.TopAuthors = top

	return stats
}
