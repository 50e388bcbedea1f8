package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadStatus(t *testing.T) {
	assert.Equal(t, "Read", Book{IsRead: true}.ReadStatus())
	assert.Equal(t, "Unread", Book{IsRead: false}.ReadStatus())
}

func TestSortByAuthor_CaseInsensitive(t *testing.T) {
	books := []Book{
		{Title: "B", Author: "orwell", ISBN: "2"},
		{Title: "A", Author: "Herbert", ISBN: "1"},
		{Title: "C", Author: "Atwood", ISBN: "3"},
	}

	sorted := SortByAuthor(books)

	assert.Equal(t, "Atwood", sorted[0].Author)
	assert.Equal(t, "Herbert", sorted[1].Author)
	assert.Equal(t, "orwell", sorted[2].Author)
}

func TestSortByAuthor_StableForEqualAuthors(t *testing.T) {
	books := []Book{
		{Title: "first", Author: "Lee", ISBN: "1"},
		{Title: "second", Author: "lee", ISBN: "2"},
		{Title: "third", Author: "LEE", ISBN: "3"},
	}

	sorted := SortByAuthor(books)

	// All three compare equal case-insensitively; original order holds.
	assert.Equal(t, "first", sorted[0].Title)
	assert.Equal(t, "second", sorted[1].Title)
	assert.Equal(t, "third", sorted[2].Title)
}

func TestSortByAuthor_DoesNotMutateInput(t *testing.T) {
	books := []Book{
		{Author: "Zed", ISBN: "1"},
		{Author: "Abe", ISBN: "2"},
	}

	SortByAuthor(books)

	assert.Equal(t, "Zed", books[0].Author)
	assert.Equal(t, "Abe", books[1].Author)
}
