package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"cinema_rooms/constants"
)

// BookingType classifies what a room is occupied with.
type BookingType string

const (
	BookingScreening   BookingType = "SCREENING"
	BookingCleaning    BookingType = "CLEANING"
	BookingMaintenance BookingType = "MAINTENANCE"
	BookingEntryTime   BookingType = "ENTRY_TIME"
	BookingExitTime    BookingType = "EXIT_TIME"
)

// ParseBookingType returns the typed value for a stored string.
func ParseBookingType(s string) (BookingType, bool) {
	switch BookingType(s) {
	case BookingScreening, BookingCleaning, BookingMaintenance, BookingEntryTime, BookingExitTime:
		return BookingType(s), true
	}
	return "", false
}

// BookingSlot is one time-boxed occupation of a room. The interval is
// half-open [StartTime, EndTime): two slots touching at a boundary do not
// overlap. Slots are immutable once created.
type BookingSlot struct {
	UID          string      `json:"bookingUid"`
	Type         BookingType `json:"type"`
	StartTime    time.Time   `json:"startTime"`
	EndTime      time.Time   `json:"endTime"`
	ScreeningUID *string     `json:"screeningUid,omitempty"`
}

// newBookingSlot validates the start/duration pair. buffer is the fixed
// post-activity window appended to EndTime.
func newBookingSlot(t BookingType, start time.Time, duration, buffer time.Duration, screeningUID *string, now time.Time) (BookingSlot, Failures) {
	var failures Failures
	if start.IsZero() || start.Before(now) {
		failures = append(failures, Failure{
			Code:    constants.INVALID_BOOKING_START_TIME,
			Details: map[string]any{"startTime": start},
		})
	}
	if duration <= 0 {
		failures = append(failures, Failure{
			Code:    constants.INVALID_BOOKING_DURATION,
			Details: map[string]any{"durationMinutes": duration.Minutes()},
		})
	}
	if len(failures) > 0 {
		return BookingSlot{}, failures
	}
	return BookingSlot{
		UID:          uuid.NewString(),
		Type:         t,
		StartTime:    start,
		EndTime:      start.Add(duration + buffer),
		ScreeningUID: screeningUID,
	}, nil
}

// overlaps implements the half-open interval conflict rule:
// [s1,e1) and [s2,e2) conflict iff s2 < e1 AND s1 < e2.
func overlaps(s1, e1, s2, e2 time.Time) bool {
	return s2.Before(e1) && s1.Before(e2)
}

// RoomSchedule is the full set of booking slots held by one room. Values
// are immutable: every mutation returns a new schedule.
type RoomSchedule struct {
	slots []BookingSlot
}

// NewRoomSchedule returns an empty schedule.
func NewRoomSchedule() RoomSchedule {
	return RoomSchedule{}
}

// HydrateRoomSchedule rebuilds a schedule from trusted storage.
func HydrateRoomSchedule(slots []BookingSlot) RoomSchedule {
	copied := make([]BookingSlot, len(slots))
	copy(copied, slots)
	return RoomSchedule{slots: copied}
}

// Slots returns every slot ordered by start time.
func (s RoomSchedule) Slots() []BookingSlot {
	out := make([]BookingSlot, len(s.slots))
	copy(out, s.slots)
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out
}

// FindByUID looks a slot up by its booking UID.
func (s RoomSchedule) FindByUID(uid string) (BookingSlot, bool) {
	for _, slot := range s.slots {
		if slot.UID == uid {
			return slot, true
		}
	}
	return BookingSlot{}, false
}

// conflicting returns the first existing slot overlapping the candidate.
func (s RoomSchedule) conflicting(candidate BookingSlot) (BookingSlot, bool) {
	for _, slot := range s.slots {
		if overlaps(slot.StartTime, slot.EndTime, candidate.StartTime, candidate.EndTime) {
			return slot, true
		}
	}
	return BookingSlot{}, false
}

// add appends the slots to a new schedule after checking each against the
// existing slots and against its siblings. The receiver is unchanged on
// failure, so a rejected batch leaves no partial mutation behind.
func (s RoomSchedule) add(candidates ...BookingSlot) (RoomSchedule, Failures) {
	next := RoomSchedule{slots: append([]BookingSlot{}, s.slots...)}
	for _, candidate := range candidates {
		if conflict, found := next.conflicting(candidate); found {
			return RoomSchedule{}, fail(constants.ROOM_NOT_AVAILABLE_FOR_PERIOD, map[string]any{
				"startTime":          candidate.StartTime,
				"endTime":            candidate.EndTime,
				"conflictingBooking": conflict.UID,
			})
		}
		next.slots = append(next.slots, candidate)
	}
	return next, nil
}

// Remove applies the removal rule for directly cancellable activities.
// Only future CLEANING and MAINTENANCE slots not tied to a screening can
// be removed through this path.
func (s RoomSchedule) Remove(uid string, now time.Time) (RoomSchedule, Failures) {
	slot, found := s.FindByUID(uid)
	if !found {
		return RoomSchedule{}, fail(constants.BOOKING_NOT_FOUND_IN_FUTURE_SCHEDULE, map[string]any{
			"bookingUid": uid,
		})
	}
	if !slot.StartTime.After(now) {
		return RoomSchedule{}, fail(constants.BOOKING_ALREADY_STARTED, map[string]any{
			"bookingUid": uid, "startTime": slot.StartTime,
		})
	}
	if slot.Type != BookingCleaning && slot.Type != BookingMaintenance {
		return RoomSchedule{}, fail(constants.INVALID_BOOKING_TYPE_FOR_REMOVAL, map[string]any{
			"bookingUid": uid, "type": string(slot.Type),
		})
	}
	if slot.Type == BookingCleaning && slot.ScreeningUID != nil {
		return RoomSchedule{}, fail(constants.CLEANING_ASSOCIATED_WITH_SCREENING, map[string]any{
			"bookingUid": uid, "screeningUid": *slot.ScreeningUID,
		})
	}

	remaining := make([]BookingSlot, 0, len(s.slots)-1)
	for _, existing := range s.slots {
		if existing.UID != uid {
			remaining = append(remaining, existing)
		}
	}
	return RoomSchedule{slots: remaining}, nil
}

// RemoveScreening drops every slot tied to a screening (entry, screening,
// exit and its cleaning). Cancellation is refused once the earliest slot of
// the chain has started: the audience is already entering.
func (s RoomSchedule) RemoveScreening(screeningUID string, now time.Time) (RoomSchedule, Failures) {
	var chain []BookingSlot
	for _, slot := range s.slots {
		if slot.ScreeningUID != nil && *slot.ScreeningUID == screeningUID {
			chain = append(chain, slot)
		}
	}
	if len(chain) == 0 {
		return RoomSchedule{}, fail(constants.BOOKING_NOT_FOUND_IN_FUTURE_SCHEDULE, map[string]any{
			"screeningUid": screeningUID,
		})
	}
	for _, slot := range chain {
		if !slot.StartTime.After(now) {
			return RoomSchedule{}, fail(constants.BOOKING_ALREADY_STARTED, map[string]any{
				"screeningUid": screeningUID, "startTime": slot.StartTime,
			})
		}
	}

	remaining := make([]BookingSlot, 0, len(s.slots)-len(chain))
	for _, slot := range s.slots {
		if slot.ScreeningUID == nil || *slot.ScreeningUID != screeningUID {
			remaining = append(remaining, slot)
		}
	}
	return RoomSchedule{slots: remaining}, nil
}
