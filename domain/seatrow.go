package domain

import (
	"fmt"
	"sort"
	"strings"

	"cinema_rooms/constants"
)

const (
	minRowSeats           = 4
	maxRowSeats           = 26
	maxPreferentialPerRow = 4
)

// SeatRow is one horizontal row of seats. Columns run A..lastColumn; a
// subset of them can be marked preferential (accessibility seats).
type SeatRow struct {
	lastColumn   rune
	preferential []rune
}

// columnPosition maps a single letter A-Z (any case) to its 1-indexed
// alphabet position. ok is false for anything that is not one letter A-Z.
func columnPosition(column string) (rune, int, bool) {
	c := strings.ToUpper(strings.TrimSpace(column))
	if len(c) != 1 {
		return 0, 0, false
	}
	r := rune(c[0])
	if r < 'A' || r > 'Z' {
		return 0, 0, false
	}
	return r, int(r-'A') + 1, true
}

// NewSeatRow validates one row configuration. row is carried only for
// failure details so the caller can tell which row broke.
func NewSeatRow(row int, lastColumn string, preferential []string) (SeatRow, Failures) {
	var failures Failures

	last, capacity, ok := columnPosition(lastColumn)
	if !ok {
		return SeatRow{}, fail(constants.INVALID_SEAT_COLUMN, map[string]any{
			"row": row, "column": lastColumn,
		})
	}
	if capacity < minRowSeats || capacity > maxRowSeats {
		failures = append(failures, Failure{
			Code: constants.SEAT_COLUMN_OUT_OF_RANGE,
			Details: map[string]any{
				"row": row, "actual": capacity, "min": minRowSeats, "max": maxRowSeats,
			},
		})
	}
	if len(preferential) > maxPreferentialPerRow {
		failures = append(failures, Failure{
			Code: constants.PREFERENTIAL_SEATS_LIMIT_EXCEEDED,
			Details: map[string]any{
				"row": row, "actual": len(preferential), "max": maxPreferentialPerRow,
			},
		})
	}

	seen := map[rune]bool{}
	var prefs []rune
	for _, p := range preferential {
		letter, position, ok := columnPosition(p)
		if !ok {
			failures = append(failures, Failure{
				Code:    constants.INVALID_SEAT_COLUMN,
				Details: map[string]any{"row": row, "column": p},
			})
			continue
		}
		if position > capacity {
			failures = append(failures, Failure{
				Code: constants.PREFERENTIAL_SEAT_NOT_IN_ROW,
				Details: map[string]any{
					"row": row, "column": string(letter), "lastColumn": string(last),
				},
			})
			continue
		}
		if seen[letter] {
			failures = append(failures, Failure{
				Code:    constants.DUPLICATE_PREFERENTIAL_SEAT,
				Details: map[string]any{"row": row, "column": string(letter)},
			})
			continue
		}
		seen[letter] = true
		prefs = append(prefs, letter)
	}

	if len(failures) > 0 {
		return SeatRow{}, failures
	}
	sort.Slice(prefs, func(i, j int) bool { return prefs[i] < prefs[j] })
	return SeatRow{lastColumn: last, preferential: prefs}, nil
}

// HydrateSeatRow rebuilds a row from trusted storage. Business rules are
// not re-run; an empty lastColumn means the stored data is corrupt.
func HydrateSeatRow(lastColumn string, preferential []string) SeatRow {
	last, _, ok := columnPosition(lastColumn)
	if !ok {
		panic(fmt.Sprintf("domain: hydrating seat row with invalid last column %q", lastColumn))
	}
	var prefs []rune
	for _, p := range preferential {
		letter, _, ok := columnPosition(p)
		if !ok {
			panic(fmt.Sprintf("domain: hydrating seat row with invalid preferential seat %q", p))
		}
		prefs = append(prefs, letter)
	}
	sort.Slice(prefs, func(i, j int) bool { return prefs[i] < prefs[j] })
	return SeatRow{lastColumn: last, preferential: prefs}
}

// Capacity is the number of seats in the row.
func (r SeatRow) Capacity() int {
	return int(r.lastColumn-'A') + 1
}

// LastColumn returns the highest column letter, e.g. "H".
func (r SeatRow) LastColumn() string {
	return string(r.lastColumn)
}

// HasSeat reports whether the column exists in this row.
func (r SeatRow) HasSeat(column string) bool {
	_, position, ok := columnPosition(column)
	return ok && position <= r.Capacity()
}

// IsPreferentialSeat reports whether the column is marked preferential.
func (r SeatRow) IsPreferentialSeat(column string) bool {
	letter, _, ok := columnPosition(column)
	if !ok {
		return false
	}
	for _, p := range r.preferential {
		if p == letter {
			return true
		}
	}
	return false
}

// PreferentialSeats returns the preferential columns in seating order.
func (r SeatRow) PreferentialSeats() []string {
	out := make([]string, len(r.preferential))
	for i, p := range r.preferential {
		out[i] = string(p)
	}
	return out
}
