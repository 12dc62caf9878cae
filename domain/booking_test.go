package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinema_rooms/constants"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func slotAt(t BookingType, start time.Time, length time.Duration, screeningUID *string) BookingSlot {
	return BookingSlot{
		UID:          "slot-" + start.Format("150405"),
		Type:         t,
		StartTime:    start,
		EndTime:      start.Add(length),
		ScreeningUID: screeningUID,
	}
}

func TestScheduleConflictRule(t *testing.T) {
	t.Parallel()

	base := slotAt(BookingCleaning, testNow.Add(2*time.Hour), time.Hour, nil)
	schedule, failures := NewRoomSchedule().add(base)
	require.Empty(t, failures)

	cases := []struct {
		name     string
		start    time.Time
		end      time.Time
		conflict bool
	}{
		{"identical range", base.StartTime, base.EndTime, true},
		{"starts inside", base.StartTime.Add(30 * time.Minute), base.EndTime.Add(time.Hour), true},
		{"ends inside", base.StartTime.Add(-time.Hour), base.StartTime.Add(time.Minute), true},
		{"fully covers", base.StartTime.Add(-time.Hour), base.EndTime.Add(time.Hour), true},
		{"fully inside", base.StartTime.Add(10 * time.Minute), base.EndTime.Add(-10 * time.Minute), true},
		{"touches at end", base.EndTime, base.EndTime.Add(time.Hour), false},
		{"touches at start", base.StartTime.Add(-time.Hour), base.StartTime, false},
		{"disjoint after", base.EndTime.Add(time.Hour), base.EndTime.Add(2 * time.Hour), false},
		{"disjoint before", base.StartTime.Add(-2 * time.Hour), base.StartTime.Add(-time.Hour), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			candidate := BookingSlot{UID: "candidate", Type: BookingMaintenance, StartTime: tc.start, EndTime: tc.end}
			next, failures := schedule.add(candidate)
			if tc.conflict {
				require.True(t, failures.Has(constants.ROOM_NOT_AVAILABLE_FOR_PERIOD))
				// No partial mutation on the original schedule.
				assert.Len(t, schedule.Slots(), 1)
			} else {
				require.Empty(t, failures)
				assert.Len(t, next.Slots(), 2)
			}
		})
	}
}

func TestScheduleAddIsAllOrNothing(t *testing.T) {
	t.Parallel()

	existing := slotAt(BookingMaintenance, testNow.Add(3*time.Hour), time.Hour, nil)
	schedule, failures := NewRoomSchedule().add(existing)
	require.Empty(t, failures)

	ok := slotAt(BookingCleaning, testNow.Add(time.Hour), 30*time.Minute, nil)
	clash := slotAt(BookingCleaning, testNow.Add(3*time.Hour), 30*time.Minute, nil)

	_, failures = schedule.add(ok, clash)
	require.True(t, failures.Has(constants.ROOM_NOT_AVAILABLE_FOR_PERIOD))
	assert.Len(t, schedule.Slots(), 1)
}

func TestNewBookingSlotValidation(t *testing.T) {
	t.Parallel()

	t.Run("computes end from duration plus buffer", func(t *testing.T) {
		start := testNow.Add(2 * time.Hour)
		slot, failures := newBookingSlot(BookingCleaning, start, 45*time.Minute, time.Minute, nil, testNow)
		require.Empty(t, failures)
		assert.NotEmpty(t, slot.UID)
		assert.Equal(t, start.Add(46*time.Minute), slot.EndTime)
	})

	t.Run("rejects past start", func(t *testing.T) {
		_, failures := newBookingSlot(BookingCleaning, testNow.Add(-time.Minute), time.Hour, 0, nil, testNow)
		assert.True(t, failures.Has(constants.INVALID_BOOKING_START_TIME))
	})

	t.Run("rejects zero start", func(t *testing.T) {
		_, failures := newBookingSlot(BookingCleaning, time.Time{}, time.Hour, 0, nil, testNow)
		assert.True(t, failures.Has(constants.INVALID_BOOKING_START_TIME))
	})

	t.Run("rejects non-positive duration", func(t *testing.T) {
		_, failures := newBookingSlot(BookingMaintenance, testNow.Add(time.Hour), 0, 0, nil, testNow)
		assert.True(t, failures.Has(constants.INVALID_BOOKING_DURATION))
	})

	t.Run("accumulates both failures", func(t *testing.T) {
		_, failures := newBookingSlot(BookingMaintenance, testNow.Add(-time.Hour), -time.Minute, 0, nil, testNow)
		assert.Len(t, failures, 2)
	})
}

func TestScheduleRemove(t *testing.T) {
	t.Parallel()

	screeningUID := "screening-1"
	future := testNow.Add(4 * time.Hour)

	cleaning := slotAt(BookingCleaning, future, time.Hour, nil)
	maintenance := slotAt(BookingMaintenance, future.Add(2*time.Hour), time.Hour, nil)
	tied := slotAt(BookingCleaning, future.Add(4*time.Hour), time.Hour, &screeningUID)
	screening := slotAt(BookingScreening, future.Add(6*time.Hour), 2*time.Hour, &screeningUID)
	started := slotAt(BookingCleaning, testNow.Add(-time.Hour), 3*time.Hour, nil)

	schedule := HydrateRoomSchedule([]BookingSlot{cleaning, maintenance, tied, screening, started})

	t.Run("unknown uid", func(t *testing.T) {
		_, failures := schedule.Remove("nope", testNow)
		assert.True(t, failures.Has(constants.BOOKING_NOT_FOUND_IN_FUTURE_SCHEDULE))
	})

	t.Run("already started regardless of type", func(t *testing.T) {
		_, failures := schedule.Remove(started.UID, testNow)
		assert.True(t, failures.Has(constants.BOOKING_ALREADY_STARTED))
	})

	t.Run("start equal to now counts as started", func(t *testing.T) {
		boundary := slotAt(BookingMaintenance, testNow, time.Hour, nil)
		s := HydrateRoomSchedule([]BookingSlot{boundary})
		_, failures := s.Remove(boundary.UID, testNow)
		assert.True(t, failures.Has(constants.BOOKING_ALREADY_STARTED))
	})

	t.Run("screening slots are never directly removable", func(t *testing.T) {
		_, failures := schedule.Remove(screening.UID, testNow)
		assert.True(t, failures.Has(constants.INVALID_BOOKING_TYPE_FOR_REMOVAL))

		entry := slotAt(BookingEntryTime, future, 15*time.Minute, &screeningUID)
		exit := slotAt(BookingExitTime, future.Add(time.Hour), 10*time.Minute, &screeningUID)
		s := HydrateRoomSchedule([]BookingSlot{entry, exit})
		_, failures = s.Remove(entry.UID, testNow)
		assert.True(t, failures.Has(constants.INVALID_BOOKING_TYPE_FOR_REMOVAL))
		_, failures = s.Remove(exit.UID, testNow)
		assert.True(t, failures.Has(constants.INVALID_BOOKING_TYPE_FOR_REMOVAL))
	})

	t.Run("cleaning tied to a screening is protected", func(t *testing.T) {
		_, failures := schedule.Remove(tied.UID, testNow)
		assert.True(t, failures.Has(constants.CLEANING_ASSOCIATED_WITH_SCREENING))
	})

	t.Run("free cleaning and maintenance are removable", func(t *testing.T) {
		next, failures := schedule.Remove(cleaning.UID, testNow)
		require.Empty(t, failures)
		_, found := next.FindByUID(cleaning.UID)
		assert.False(t, found)
		// Original schedule untouched.
		_, found = schedule.FindByUID(cleaning.UID)
		assert.True(t, found)

		next, failures = schedule.Remove(maintenance.UID, testNow)
		require.Empty(t, failures)
		assert.Len(t, next.Slots(), 4)
	})
}

func TestScheduleRemoveScreening(t *testing.T) {
	t.Parallel()

	screeningUID := "screening-9"
	start := testNow.Add(5 * time.Hour)
	entry := slotAt(BookingEntryTime, start.Add(-15*time.Minute), 15*time.Minute, &screeningUID)
	show := slotAt(BookingScreening, start, 2*time.Hour, &screeningUID)
	tail := slotAt(BookingCleaning, start.Add(2*time.Hour), 30*time.Minute, &screeningUID)
	other := slotAt(BookingMaintenance, start.Add(10*time.Hour), time.Hour, nil)

	schedule := HydrateRoomSchedule([]BookingSlot{entry, show, tail, other})

	t.Run("removes the whole chain", func(t *testing.T) {
		next, failures := schedule.RemoveScreening(screeningUID, testNow)
		require.Empty(t, failures)
		assert.Len(t, next.Slots(), 1)
		_, found := next.FindByUID(other.UID)
		assert.True(t, found)
	})

	t.Run("unknown screening", func(t *testing.T) {
		_, failures := schedule.RemoveScreening("missing", testNow)
		assert.True(t, failures.Has(constants.BOOKING_NOT_FOUND_IN_FUTURE_SCHEDULE))
	})

	t.Run("refused once entry started", func(t *testing.T) {
		_, failures := schedule.RemoveScreening(screeningUID, entry.StartTime)
		assert.True(t, failures.Has(constants.BOOKING_ALREADY_STARTED))
	})
}

func TestFindByUIDAndSlotsOrdering(t *testing.T) {
	t.Parallel()

	a := slotAt(BookingCleaning, testNow.Add(6*time.Hour), time.Hour, nil)
	b := slotAt(BookingMaintenance, testNow.Add(2*time.Hour), time.Hour, nil)
	schedule := HydrateRoomSchedule([]BookingSlot{a, b})

	slot, found := schedule.FindByUID(b.UID)
	require.True(t, found)
	assert.Equal(t, BookingMaintenance, slot.Type)

	_, found = schedule.FindByUID("absent")
	assert.False(t, found)

	slots := schedule.Slots()
	require.Len(t, slots, 2)
	assert.True(t, slots[0].StartTime.Before(slots[1].StartTime))
}

func TestParseBookingType(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"SCREENING", "CLEANING", "MAINTENANCE", "ENTRY_TIME", "EXIT_TIME"} {
		_, ok := ParseBookingType(valid)
		assert.True(t, ok, valid)
	}
	_, ok := ParseBookingType("PARTY")
	assert.False(t, ok)
}
