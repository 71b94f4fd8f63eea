//go:build unit

package library_test

import (
	"testing"

	"campushub/internal/domain/library"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBook(t *testing.T) {
	ids := library.CopyIdentifiers{
		AccessionNumber: "ACC-2026-CS-000001",
		BookNumber:      "LIB-CS-000001",
	}

	book := library.NewBook(ids, "The Go Programming Language", "Donovan", "978-0134190440", "CS", "Addison-Wesley", 2015)
	require.NotNil(t, book)

	assert.NotEqual(t, uuid.Nil, book.ID())
	assert.Equal(t, "ACC-2026-CS-000001", book.AccessionNumber())
	assert.Equal(t, "LIB-CS-000001", book.BookNumber())
	assert.Equal(t, "CS", book.Category())
	assert.Equal(t, library.BookAvailable, book.Status())
	assert.True(t, book.IsAvailable())
}

func TestBookStatus(t *testing.T) {
	t.Run("validity", func(t *testing.T) {
		valid := []library.BookStatus{
			library.BookAvailable,
			library.BookIssued,
			library.BookLost,
			library.BookDamaged,
		}
		for _, s := range valid {
			assert.True(t, s.IsValid(), string(s))
		}
		assert.False(t, library.BookStatus("MISSING").IsValid())
		assert.False(t, library.BookStatus("available").IsValid(), "statuses are upper case")
	})

	t.Run("overrides", func(t *testing.T) {
		assert.True(t, library.BookLost.IsOverride())
		assert.True(t, library.BookDamaged.IsOverride())
		assert.False(t, library.BookAvailable.IsOverride())
		assert.False(t, library.BookIssued.IsOverride())
	})
}

func TestGenerateCopyIdentifiers(t *testing.T) {
	testCases := []struct {
		name          string
		last          string
		count         int
		category      string
		year          int
		wantAccession []string
		wantBook      []string
		errIs         error
	}{
		{
			name:          "first copies of a category start at one",
			last:          "",
			count:         2,
			category:      "CS",
			year:          2026,
			wantAccession: []string{"ACC-2026-CS-000001", "ACC-2026-CS-000002"},
			wantBook:      []string{"LIB-CS-000001", "LIB-CS-000002"},
		},
		{
			name:          "sequence continues from the last accession",
			last:          "ACC-2025-CS-000123",
			count:         3,
			category:      "CS",
			year:          2026,
			wantAccession: []string{"ACC-2026-CS-000124", "ACC-2026-CS-000125", "ACC-2026-CS-000126"},
			wantBook:      []string{"LIB-CS-000124", "LIB-CS-000125", "LIB-CS-000126"},
		},
		{
			name:          "unparsable last accession restarts at one",
			last:          "legacy-catalog-entry",
			count:         1,
			category:      "EE",
			year:          2026,
			wantAccession: []string{"ACC-2026-EE-000001"},
			wantBook:      []string{"LIB-EE-000001"},
		},
		{
			name:     "zero copies rejected",
			count:    0,
			category: "CS",
			year:     2026,
			errIs:    library.ErrNoCopies,
		},
		{
			name:     "negative copies rejected",
			count:    -3,
			category: "CS",
			year:     2026,
			errIs:    library.ErrNoCopies,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ids, err := library.GenerateCopyIdentifiers(tc.last, tc.count, tc.category, tc.year)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			require.Len(t, ids, tc.count)
			for i, id := range ids {
				assert.Equal(t, tc.wantAccession[i], id.AccessionNumber)
				assert.Equal(t, tc.wantBook[i], id.BookNumber)
			}
		})
	}
}
