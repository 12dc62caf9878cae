package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinema_rooms/constants"
)

func TestNewSeatRow(t *testing.T) {
	t.Parallel()

	t.Run("valid row with preferential seats", func(t *testing.T) {
		row, failures := NewSeatRow(1, "H", []string{"a", "B"})
		require.Empty(t, failures)
		assert.Equal(t, 8, row.Capacity())
		assert.Equal(t, "H", row.LastColumn())
		assert.Equal(t, []string{"A", "B"}, row.PreferentialSeats())
	})

	t.Run("letters are normalized to uppercase", func(t *testing.T) {
		row, failures := NewSeatRow(1, "h", []string{"c"})
		require.Empty(t, failures)
		assert.True(t, row.IsPreferentialSeat("C"))
		assert.True(t, row.IsPreferentialSeat("c"))
	})

	t.Run("rejects non-letter column", func(t *testing.T) {
		for _, bad := range []string{"", "1", "AB", "é", " "} {
			_, failures := NewSeatRow(1, bad, nil)
			require.True(t, failures.Has(constants.INVALID_SEAT_COLUMN), "column %q", bad)
		}
	})

	t.Run("rejects span outside 4..26", func(t *testing.T) {
		_, failures := NewSeatRow(1, "C", nil)
		assert.True(t, failures.Has(constants.SEAT_COLUMN_OUT_OF_RANGE))

		row, failures := NewSeatRow(1, "D", nil)
		require.Empty(t, failures)
		assert.Equal(t, 4, row.Capacity())

		row, failures = NewSeatRow(1, "Z", nil)
		require.Empty(t, failures)
		assert.Equal(t, 26, row.Capacity())
	})

	t.Run("rejects more than four preferential seats", func(t *testing.T) {
		_, failures := NewSeatRow(2, "J", []string{"A", "B", "C", "D", "E"})
		assert.True(t, failures.Has(constants.PREFERENTIAL_SEATS_LIMIT_EXCEEDED))
	})

	t.Run("rejects preferential seat beyond last column", func(t *testing.T) {
		_, failures := NewSeatRow(3, "E", []string{"F"})
		require.True(t, failures.Has(constants.PREFERENTIAL_SEAT_NOT_IN_ROW))
		assert.Equal(t, "F", failures[0].Details["column"])
	})

	t.Run("rejects duplicate preferential seats case-insensitively", func(t *testing.T) {
		_, failures := NewSeatRow(4, "H", []string{"B", "b"})
		assert.True(t, failures.Has(constants.DUPLICATE_PREFERENTIAL_SEAT))
	})

	t.Run("accumulates independent failures", func(t *testing.T) {
		_, failures := NewSeatRow(5, "E", []string{"F", "A", "a"})
		assert.True(t, failures.Has(constants.PREFERENTIAL_SEAT_NOT_IN_ROW))
		assert.True(t, failures.Has(constants.DUPLICATE_PREFERENTIAL_SEAT))
	})
}

func TestSeatRowLookups(t *testing.T) {
	t.Parallel()

	row, failures := NewSeatRow(1, "F", []string{"C"})
	require.Empty(t, failures)

	// HasSeat is true iff the column position is within the span.
	assert.True(t, row.HasSeat("A"))
	assert.True(t, row.HasSeat("f"))
	assert.False(t, row.HasSeat("G"))
	assert.False(t, row.HasSeat("7"))

	assert.True(t, row.IsPreferentialSeat("C"))
	assert.False(t, row.IsPreferentialSeat("D"))
	assert.False(t, row.IsPreferentialSeat(""))
}

func TestHydrateSeatRow(t *testing.T) {
	t.Parallel()

	row := HydrateSeatRow("J", []string{"A", "J"})
	assert.Equal(t, 10, row.Capacity())
	assert.True(t, row.IsPreferentialSeat("J"))

	assert.Panics(t, func() { HydrateSeatRow("", nil) })
	assert.Panics(t, func() { HydrateSeatRow("J", []string{"??"}) })
}
