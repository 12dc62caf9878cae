package handler

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"cinema_rooms/clock"
	"cinema_rooms/config"
	"cinema_rooms/constants"
	"cinema_rooms/database"
	"cinema_rooms/domain"
	"cinema_rooms/repository"
)

var (
	roomRepo  repository.RoomRepository
	repoOnce  sync.Once
	roomClock clock.Clock = clock.NewSystem()
)

func repo() repository.RoomRepository {
	repoOnce.Do(func() {
		roomRepo = repository.NewCachedRoomRepository(
			repository.NewRoomRepository(database.DB),
			database.Redis,
		)
	})
	return roomRepo
}

func schedulingPolicy() domain.SchedulingPolicy {
	return domain.SchedulingPolicy{
		Buffer:            time.Duration(config.BookingBufferSeconds()) * time.Second,
		EntryTime:         time.Duration(config.EntryTimeMinutes()) * time.Minute,
		ExitTime:          time.Duration(config.ExitTimeMinutes()) * time.Minute,
		ScreeningCleaning: time.Duration(config.ScreeningCleaningMinutes()) * time.Minute,
	}
}

// failuresStatus maps a failure list to the HTTP status of the response.
// Conflicts are 409, missing bookings 404, everything else bad input.
func failuresStatus(failures domain.Failures) int {
	if failures.Has(constants.ROOM_NOT_AVAILABLE_FOR_PERIOD) {
		return fiber.StatusConflict
	}
	if failures.Has(constants.BOOKING_NOT_FOUND_IN_FUTURE_SCHEDULE) {
		return fiber.StatusNotFound
	}
	return fiber.StatusBadRequest
}

// newSlots returns the bookings present in next but not in prev, in start
// order. Domain operations return the whole room; persistence only needs
// the delta.
func newSlots(prev, next domain.Room) []domain.BookingSlot {
	existing := make(map[string]bool)
	for _, slot := range prev.AllBookings() {
		existing[slot.UID] = true
	}
	var added []domain.BookingSlot
	for _, slot := range next.AllBookings() {
		if !existing[slot.UID] {
			added = append(added, slot)
		}
	}
	return added
}
