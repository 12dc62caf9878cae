package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinema_rooms/constants"
)

var testPolicy = SchedulingPolicy{
	Buffer:            time.Minute,
	EntryTime:         15 * time.Minute,
	ExitTime:          10 * time.Minute,
	ScreeningCleaning: 20 * time.Minute,
}

func validRoomParams() NewRoomParams {
	return NewRoomParams{
		Identifier: 7,
		SeatRows: []SeatRowConfig{
			rowCfg(1, "E", "A", "B"),
			rowCfg(2, "F", "C"),
			rowCfg(3, "G"),
			rowCfg(4, "H"),
		},
		ScreenSize: 20,
		ScreenType: "2D_3D",
	}
}

func mustRoom(t *testing.T) Room {
	t.Helper()
	room, failures := NewRoom(validRoomParams())
	require.Empty(t, failures)
	return room
}

func TestNewRoom(t *testing.T) {
	t.Parallel()

	t.Run("valid room defaults to AVAILABLE", func(t *testing.T) {
		room := mustRoom(t)
		assert.Equal(t, 7, room.Identifier())
		assert.NotEmpty(t, room.UID())
		assert.Equal(t, RoomAvailable, room.Status())
		assert.Equal(t, 26, room.Layout().TotalCapacity())
		assert.Empty(t, room.AllBookings())
	})

	t.Run("explicit status is honored", func(t *testing.T) {
		p := validRoomParams()
		p.Status = "CLOSED"
		room, failures := NewRoom(p)
		require.Empty(t, failures)
		assert.Equal(t, RoomClosed, room.Status())
	})

	t.Run("identifier bounds", func(t *testing.T) {
		for _, id := range []int{0, -3, 101} {
			p := validRoomParams()
			p.Identifier = id
			_, failures := NewRoom(p)
			assert.True(t, failures.Has(constants.INVALID_ROOM_IDENTIFIER), "id %d", id)
		}
	})

	t.Run("failures accumulate across independent fields", func(t *testing.T) {
		p := validRoomParams()
		p.Identifier = 0
		p.Status = "DEMOLISHED"
		p.ScreenSize = 5
		p.ScreenType = "4D"
		p.SeatRows = p.SeatRows[:2]
		_, failures := NewRoom(p)
		assert.True(t, failures.Has(constants.INVALID_ROOM_IDENTIFIER))
		assert.True(t, failures.Has(constants.INVALID_ROOM_STATUS))
		assert.True(t, failures.Has(constants.INVALID_SCREEN_SIZE))
		assert.True(t, failures.Has(constants.INVALID_SCREEN_TYPE))
		assert.True(t, failures.Has(constants.ARRAY_LENGTH_OUT_OF_RANGE))
	})
}

func TestHydrateRoom(t *testing.T) {
	t.Parallel()

	layout := HydrateSeatLayout([]SeatRow{
		HydrateSeatRow("E", []string{"A"}),
		HydrateSeatRow("F", nil),
		HydrateSeatRow("G", nil),
		HydrateSeatRow("H", nil),
	})
	room := HydrateRoom(HydrateRoomParams{
		Identifier: 3,
		UID:        "room-uid",
		Layout:     layout,
		Screen:     HydrateScreen(25, "3D"),
		Schedule:   NewRoomSchedule(),
		Status:     "MAINTENANCE",
	})
	assert.Equal(t, RoomMaintenance, room.Status())
	assert.Equal(t, 26, room.Layout().TotalCapacity())

	assert.Panics(t, func() {
		HydrateRoom(HydrateRoomParams{Identifier: 0, UID: "x", Status: "AVAILABLE"})
	})
	assert.Panics(t, func() {
		HydrateRoom(HydrateRoomParams{Identifier: 1, UID: "", Status: "AVAILABLE"})
	})
	assert.Panics(t, func() {
		HydrateRoom(HydrateRoomParams{Identifier: 1, UID: "x", Status: "WHATEVER"})
	})
}

func TestRoomGetSeat(t *testing.T) {
	t.Parallel()
	room := mustRoom(t)

	t.Run("existing seat with preferential flag", func(t *testing.T) {
		seat, failures := room.GetSeat("A", 1)
		require.Empty(t, failures)
		assert.True(t, seat.Preferential)

		seat, failures = room.GetSeat("D", 3)
		require.Empty(t, failures)
		assert.False(t, seat.Preferential)
	})

	t.Run("row validated before column", func(t *testing.T) {
		_, failures := room.GetSeat("??", 5)
		require.Len(t, failures, 1)
		assert.Equal(t, constants.INVALID_SEAT_ROW, failures[0].Code)
	})

	t.Run("column beyond the row", func(t *testing.T) {
		_, failures := room.GetSeat("F", 1) // row 1 ends at E
		assert.True(t, failures.Has(constants.INVALID_SEAT_COLUMN))
	})
}

func TestRoomAllSeats(t *testing.T) {
	t.Parallel()
	room := mustRoom(t)

	seats := room.AllSeats()
	require.Len(t, seats, 4)
	assert.Len(t, seats[0], 5)
	assert.Len(t, seats[3], 8)
	assert.Equal(t, Seat{Row: 1, Column: "A", Preferential: true}, seats[0][0])
	assert.Equal(t, Seat{Row: 4, Column: "H", Preferential: false}, seats[3][7])
}

func TestRoomChangeStatus(t *testing.T) {
	t.Parallel()
	room := mustRoom(t)

	t.Run("valid transition returns new value", func(t *testing.T) {
		next, failures := room.ChangeStatus("CLEANING")
		require.Empty(t, failures)
		assert.Equal(t, RoomCleaning, next.Status())
		assert.Equal(t, RoomAvailable, room.Status())
	})

	t.Run("no-op on unchanged status", func(t *testing.T) {
		next, failures := room.ChangeStatus("AVAILABLE")
		require.Empty(t, failures)
		assert.Equal(t, room, next)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, failures := room.ChangeStatus("BROKEN")
		assert.True(t, failures.Has(constants.INVALID_ROOM_STATUS))
	})
}

func TestRoomScheduling(t *testing.T) {
	t.Parallel()
	room := mustRoom(t)

	t.Run("cleaning then conflicting maintenance", func(t *testing.T) {
		start := testNow.Add(2 * time.Hour)
		next, failures := room.ScheduleCleaning(testNow, start, 30, testPolicy)
		require.Empty(t, failures)
		require.Len(t, next.AllBookings(), 1)
		slot := next.AllBookings()[0]
		assert.Equal(t, BookingCleaning, slot.Type)
		assert.Equal(t, start.Add(31*time.Minute), slot.EndTime)
		assert.Nil(t, slot.ScreeningUID)

		// Overlapping maintenance is refused, schedule unchanged.
		_, failures = next.ScheduleMaintenance(testNow, start.Add(10*time.Minute), 60, testPolicy)
		assert.True(t, failures.Has(constants.ROOM_NOT_AVAILABLE_FOR_PERIOD))
		assert.Len(t, next.AllBookings(), 1)

		// Touching is allowed.
		after, failures := next.ScheduleMaintenance(testNow, slot.EndTime, 60, testPolicy)
		require.Empty(t, failures)
		assert.Len(t, after.AllBookings(), 2)
	})

	t.Run("original room never mutates", func(t *testing.T) {
		_, failures := room.ScheduleMaintenance(testNow, testNow.Add(time.Hour), 45, testPolicy)
		require.Empty(t, failures)
		assert.Empty(t, room.AllBookings())
	})

	t.Run("rejects past start", func(t *testing.T) {
		_, failures := room.ScheduleCleaning(testNow, testNow.Add(-time.Minute), 30, testPolicy)
		assert.True(t, failures.Has(constants.INVALID_BOOKING_START_TIME))
	})

	t.Run("rejects non-positive duration", func(t *testing.T) {
		_, failures := room.ScheduleMaintenance(testNow, testNow.Add(time.Hour), 0, testPolicy)
		assert.True(t, failures.Has(constants.INVALID_BOOKING_DURATION))
	})
}

func TestRoomScheduleScreening(t *testing.T) {
	t.Parallel()
	room := mustRoom(t)

	t.Run("books the full chain", func(t *testing.T) {
		start := testNow.Add(3 * time.Hour)
		next, failures := room.ScheduleScreening(testNow, "screening-1", start, 120, testPolicy)
		require.Empty(t, failures)

		slots := next.AllBookings()
		require.Len(t, slots, 4)
		assert.Equal(t, BookingEntryTime, slots[0].Type)
		assert.Equal(t, start.Add(-15*time.Minute), slots[0].StartTime)
		assert.Equal(t, BookingScreening, slots[1].Type)
		assert.Equal(t, start, slots[1].StartTime)
		assert.Equal(t, start.Add(2*time.Hour), slots[1].EndTime)
		assert.Equal(t, BookingExitTime, slots[2].Type)
		assert.Equal(t, BookingCleaning, slots[3].Type)
		// Cleaning tail: 20 min cleaning + 1 min buffer after the exit window.
		assert.Equal(t, start.Add(2*time.Hour+10*time.Minute+21*time.Minute), slots[3].EndTime)
		for _, slot := range slots {
			require.NotNil(t, slot.ScreeningUID)
			assert.Equal(t, "screening-1", *slot.ScreeningUID)
		}
	})

	t.Run("chain is all-or-nothing on conflict", func(t *testing.T) {
		start := testNow.Add(3 * time.Hour)
		busy, failures := room.ScheduleMaintenance(testNow, start.Add(2*time.Hour), 30, testPolicy)
		require.Empty(t, failures)

		_, failures = busy.ScheduleScreening(testNow, "screening-2", start, 120, testPolicy)
		assert.True(t, failures.Has(constants.ROOM_NOT_AVAILABLE_FOR_PERIOD))
		assert.Len(t, busy.AllBookings(), 1)
	})

	t.Run("entry window cannot start in the past", func(t *testing.T) {
		_, failures := room.ScheduleScreening(testNow, "screening-3", testNow.Add(10*time.Minute), 90, testPolicy)
		assert.True(t, failures.Has(constants.INVALID_BOOKING_START_TIME))
	})

	t.Run("cancel removes the chain, tied cleaning is otherwise protected", func(t *testing.T) {
		start := testNow.Add(3 * time.Hour)
		next, failures := room.ScheduleScreening(testNow, "screening-4", start, 120, testPolicy)
		require.Empty(t, failures)

		var tiedCleaning BookingSlot
		for _, slot := range next.AllBookings() {
			if slot.Type == BookingCleaning {
				tiedCleaning = slot
			}
		}
		_, failures = next.RemoveScheduledActivity(testNow, tiedCleaning.UID)
		assert.True(t, failures.Has(constants.CLEANING_ASSOCIATED_WITH_SCREENING))

		cancelled, failures := next.CancelScreening(testNow, "screening-4")
		require.Empty(t, failures)
		assert.Empty(t, cancelled.AllBookings())
	})
}

func TestRoomRemoveScheduledActivity(t *testing.T) {
	t.Parallel()
	room := mustRoom(t)

	next, failures := room.ScheduleCleaning(testNow, testNow.Add(2*time.Hour), 30, testPolicy)
	require.Empty(t, failures)
	uid := next.AllBookings()[0].UID

	removed, failures := next.RemoveScheduledActivity(testNow, uid)
	require.Empty(t, failures)
	assert.Empty(t, removed.AllBookings())
	assert.Len(t, next.AllBookings(), 1)

	_, failures = next.RemoveScheduledActivity(testNow, "missing")
	assert.True(t, failures.Has(constants.BOOKING_NOT_FOUND_IN_FUTURE_SCHEDULE))
}

func TestNewScreen(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		size int
		typ  string
		code string
	}{
		{9, "2D", constants.INVALID_SCREEN_SIZE},
		{51, "3D", constants.INVALID_SCREEN_SIZE},
		{30, "IMAX", constants.INVALID_SCREEN_TYPE},
		{30, "", constants.INVALID_SCREEN_TYPE},
	} {
		_, failures := NewScreen(tc.size, tc.typ)
		assert.True(t, failures.Has(tc.code), "size=%d type=%q", tc.size, tc.typ)
	}

	screen, failures := NewScreen(10, "2D")
	require.Empty(t, failures)
	assert.Equal(t, Screen2D, screen.Type)

	_, failures = NewScreen(50, "2D_3D")
	assert.Empty(t, failures)

	assert.Panics(t, func() { HydrateScreen(0, "2D") })
	assert.Panics(t, func() { HydrateScreen(20, "") })
}
