package domain

import (
	"cinema_rooms/constants"
)

const (
	minLayoutRows = 4
	maxLayoutRows = 20
	minCapacity   = 20
	maxCapacity   = 250

	// Preferential seats must cover at least 5% and at most 20% of the
	// room's capacity.
	minPreferentialPct = 5
	maxPreferentialPct = 20
)

// SeatRowConfig is the caller-facing description of one row.
type SeatRowConfig struct {
	Row               int      `json:"row"`
	LastColumn        string   `json:"lastColumn"`
	PreferentialSeats []string `json:"preferentialSeats"`
}

// SeatLayout is a room-wide seating arrangement. Rows are stored in order;
// row number n lives at index n-1 and row numbers are contiguous 1..N.
type SeatLayout struct {
	rows          []SeatRow
	totalCapacity int
}

// NewSeatLayout validates a full layout. Row-level failures are accumulated
// across every row so the caller sees all problems at once; the row-count
// check runs first and alone because nothing else is meaningful without it.
func NewSeatLayout(configs []SeatRowConfig) (SeatLayout, Failures) {
	if len(configs) < minLayoutRows || len(configs) > maxLayoutRows {
		return SeatLayout{}, fail(constants.ARRAY_LENGTH_OUT_OF_RANGE, map[string]any{
			"actual": len(configs), "min": minLayoutRows, "max": maxLayoutRows,
		})
	}

	var failures Failures
	rows := make([]SeatRow, len(configs))
	placed := make([]bool, len(configs))
	totalCapacity := 0
	totalPreferential := 0

	for _, cfg := range configs {
		if cfg.Row < 1 || cfg.Row > len(configs) || placed[cfg.Row-1] {
			failures = append(failures, Failure{
				Code: constants.INVALID_SEAT_ROW,
				Details: map[string]any{
					"row": cfg.Row, "min": 1, "max": len(configs),
				},
			})
			continue
		}
		row, rowFailures := NewSeatRow(cfg.Row, cfg.LastColumn, cfg.PreferentialSeats)
		if len(rowFailures) > 0 {
			failures = append(failures, rowFailures...)
			continue
		}
		rows[cfg.Row-1] = row
		placed[cfg.Row-1] = true
		totalCapacity += row.Capacity()
		totalPreferential += len(row.preferential)
	}

	if totalCapacity < minCapacity || totalCapacity > maxCapacity {
		failures = append(failures, Failure{
			Code: constants.INVALID_ROOM_CAPACITY,
			Details: map[string]any{
				"actual": totalCapacity, "min": minCapacity, "max": maxCapacity,
			},
		})
	}
	// The ratio band is only meaningful once some capacity validated.
	if totalCapacity > 0 {
		minPreferential := (totalCapacity*minPreferentialPct + 99) / 100
		maxPreferential := totalCapacity * maxPreferentialPct / 100
		if totalPreferential < minPreferential || totalPreferential > maxPreferential {
			failures = append(failures, Failure{
				Code: constants.INVALID_NUMBER_OF_PREFERENTIAL_SEATS,
				Details: map[string]any{
					"actual":        totalPreferential,
					"min":           minPreferential,
					"max":           maxPreferential,
					"minPercentage": minPreferentialPct,
					"maxPercentage": maxPreferentialPct,
				},
			})
		}
	}

	if len(failures) > 0 {
		return SeatLayout{}, failures
	}
	return SeatLayout{rows: rows, totalCapacity: totalCapacity}, nil
}

// HydrateSeatLayout rebuilds a layout from trusted storage, recomputing the
// derived capacity. A nil row set is corrupted state, not user input.
func HydrateSeatLayout(rows []SeatRow) SeatLayout {
	if rows == nil {
		panic("domain: hydrating seat layout with nil rows")
	}
	total := 0
	for _, r := range rows {
		total += r.Capacity()
	}
	return SeatLayout{rows: rows, totalCapacity: total}
}

// RowCount returns the number of rows.
func (l SeatLayout) RowCount() int {
	return len(l.rows)
}

// TotalCapacity returns the seat count across all rows.
func (l SeatLayout) TotalCapacity() int {
	return l.totalCapacity
}

// Row returns the seat row with the given 1-based number.
func (l SeatLayout) Row(row int) (SeatRow, bool) {
	if row < 1 || row > len(l.rows) {
		return SeatRow{}, false
	}
	return l.rows[row-1], true
}

// Rows returns every row in order, row 1 first.
func (l SeatLayout) Rows() []SeatRow {
	out := make([]SeatRow, len(l.rows))
	copy(out, l.rows)
	return out
}

// HasSeat reports whether the seat exists. Unknown rows are simply absent,
// not an error.
func (l SeatLayout) HasSeat(row int, column string) bool {
	r, ok := l.Row(row)
	return ok && r.HasSeat(column)
}

// IsPreferentialSeat reports whether the seat exists and is preferential.
func (l SeatLayout) IsPreferentialSeat(row int, column string) bool {
	r, ok := l.Row(row)
	return ok && r.IsPreferentialSeat(column)
}

// PreferentialSeatsByRow maps row number to its preferential columns in
// order. Rows without preferential seats are omitted.
func (l SeatLayout) PreferentialSeatsByRow() map[int][]string {
	out := map[int][]string{}
	for i, r := range l.rows {
		if len(r.preferential) > 0 {
			out[i+1] = r.PreferentialSeats()
		}
	}
	return out
}

// TotalPreferentialSeats counts preferential seats across the layout.
func (l SeatLayout) TotalPreferentialSeats() int {
	total := 0
	for _, r := range l.rows {
		total += len(r.preferential)
	}
	return total
}
