package handler

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinema_rooms/constants"
	"cinema_rooms/domain"
	"cinema_rooms/utils"
)

func testRoom(t *testing.T) domain.Room {
	t.Helper()
	room, failures := domain.NewRoom(domain.NewRoomParams{
		Identifier: 3,
		SeatRows: []domain.SeatRowConfig{
			{Row: 1, LastColumn: "E", PreferentialSeats: []string{"A", "B"}},
			{Row: 2, LastColumn: "F", PreferentialSeats: []string{"C"}},
			{Row: 3, LastColumn: "G"},
			{Row: 4, LastColumn: "H"},
		},
		ScreenSize: 20,
		ScreenType: "2D_3D",
	})
	require.Empty(t, failures)
	return room
}

func TestFailuresStatus(t *testing.T) {
	t.Parallel()

	conflict := domain.Failures{{Code: constants.ROOM_NOT_AVAILABLE_FOR_PERIOD}}
	assert.Equal(t, fiber.StatusConflict, failuresStatus(conflict))

	missing := domain.Failures{{Code: constants.BOOKING_NOT_FOUND_IN_FUTURE_SCHEDULE}}
	assert.Equal(t, fiber.StatusNotFound, failuresStatus(missing))

	badInput := domain.Failures{{Code: constants.INVALID_BOOKING_DURATION}}
	assert.Equal(t, fiber.StatusBadRequest, failuresStatus(badInput))

	// Conflict wins over bad input when both are present.
	mixed := append(badInput, conflict...)
	assert.Equal(t, fiber.StatusConflict, failuresStatus(mixed))
}

func TestNewSlots(t *testing.T) {
	t.Parallel()

	policy := domain.SchedulingPolicy{
		Buffer:            time.Minute,
		EntryTime:         15 * time.Minute,
		ExitTime:          10 * time.Minute,
		ScreeningCleaning: 20 * time.Minute,
	}
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	prev := testRoom(t)

	const screeningUID = "11f9b2aa-4b7a-4ce1-9f07-02f33a5d9a61"
	next, failures := prev.ScheduleScreening(now, screeningUID, now.Add(2*time.Hour), 120, policy)
	require.Empty(t, failures)

	added := newSlots(prev, next)
	require.Len(t, added, 4)
	for _, slot := range added {
		assert.Equal(t, utils.StringPtr(screeningUID), slot.ScreeningUID)
	}
	assert.Empty(t, newSlots(next, next))
}
