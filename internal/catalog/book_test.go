package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Run("accepts the two defined labels", func(t *testing.T) {
		got, err := ParseStatus("Available")
		require.NoError(t, err)
		assert.Equal(t, StatusAvailable, got)

		got, err = ParseStatus("CheckedOut")
		require.NoError(t, err)
		assert.Equal(t, StatusCheckedOut, got)
	})

	t.Run("rejects anything else", func(t *testing.T) {
		for _, label := range []string{"", "available", "checked_out", "borrowed-invalid-value"} {
			_, err := ParseStatus(label)
			assert.Error(t, err, "label %q", label)
		}
	})
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusAvailable.Valid())
	assert.True(t, StatusCheckedOut.Valid())
	assert.False(t, Status("").Valid())
	assert.False(t, Status("Lost").Valid())
}

func TestNewBook_DefaultsToAvailable(t *testing.T) {
	b := NewBook(7, "Dune", "Frank Herbert", 1965)

	assert.Equal(t, 7, b.ID)
	assert.Equal(t, "Dune", b.Title)
	assert.Equal(t, "Frank Herbert", b.Author)
	assert.Equal(t, 1965, b.Year)
	assert.Equal(t, StatusAvailable, b.Status)
}

func TestRecordRoundTrip(t *testing.T) {
	b := Book{ID: 3, Title: "Neuromancer", Author: "William Gibson", Year: 1984, Status: StatusCheckedOut}

	back, err := BookFromRecord(b.ToRecord())
	require.NoError(t, err)
	assert.Equal(t, b, back)
}

func TestBookFromRecord(t *testing.T) {
	t.Run("missing status defaults to Available", func(t *testing.T) {
		b, err := BookFromRecord(Record{ID: 1, Title: "Dune", Author: "Frank Herbert", Year: 1965})
		require.NoError(t, err)
		assert.Equal(t, StatusAvailable, b.Status)
	})

	t.Run("persisted status is carried through", func(t *testing.T) {
		b, err := BookFromRecord(Record{ID: 1, Title: "Dune", Author: "Frank Herbert", Year: 1965, Status: "CheckedOut"})
		require.NoError(t, err)
		assert.Equal(t, StatusCheckedOut, b.Status)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := BookFromRecord(Record{ID: 1, Title: "Dune", Author: "Frank Herbert", Year: 1965, Status: "lost"})
		assert.Error(t, err)
	})
}
