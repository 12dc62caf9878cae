package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"cinema_rooms/constants"
)

// RoomStatus is the administrative lifecycle state of a room. Any status
// can follow any other at the type level; business preconditions (such as
// "no future bookings before CLOSED") belong to the calling service.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "AVAILABLE"
	RoomReserved    RoomStatus = "RESERVED"
	RoomClosed      RoomStatus = "CLOSED"
	RoomMaintenance RoomStatus = "MAINTENANCE"
	RoomCleaning    RoomStatus = "CLEANING"
)

// ParseRoomStatus returns the typed status for a stored string.
func ParseRoomStatus(s string) (RoomStatus, bool) {
	switch RoomStatus(s) {
	case RoomAvailable, RoomReserved, RoomClosed, RoomMaintenance, RoomCleaning:
		return RoomStatus(s), true
	}
	return "", false
}

const (
	minRoomIdentifier = 1
	maxRoomIdentifier = 100
)

// SchedulingPolicy carries the configurable windows around scheduled
// activities. Values come from config, never hard-coded at call sites.
type SchedulingPolicy struct {
	// Buffer is the fixed post-activity window appended to every
	// standalone activity and to the tail of a screening chain.
	Buffer time.Duration
	// EntryTime is how long doors open before a screening starts.
	EntryTime time.Duration
	// ExitTime is how long the room stays blocked after the credits.
	ExitTime time.Duration
	// ScreeningCleaning is the cleaning slot length booked after the
	// exit window of each screening.
	ScreeningCleaning time.Duration
}

// Seat is one concrete seat materialized from a layout.
type Seat struct {
	Row          int    `json:"row"`
	Column       string `json:"column"`
	Preferential bool   `json:"preferential"`
}

// Room is the aggregate root: seating layout, screen, activity schedule
// and administrative status. Rooms are immutable values; every mutation
// returns a new Room or a failure list, never changes the receiver.
type Room struct {
	identifier int
	uid        string
	layout     SeatLayout
	screen     Screen
	schedule   RoomSchedule
	status     RoomStatus
}

// NewRoomParams is the input for NewRoom. Status may be empty, which
// defaults to AVAILABLE.
type NewRoomParams struct {
	Identifier int
	SeatRows   []SeatRowConfig
	ScreenSize int
	ScreenType string
	Status     string
}

// NewRoom validates every independent field and accumulates all failures
// so the caller sees every problem at once.
func NewRoom(p NewRoomParams) (Room, Failures) {
	var failures Failures

	if p.Identifier < minRoomIdentifier || p.Identifier > maxRoomIdentifier {
		failures = append(failures, Failure{
			Code: constants.INVALID_ROOM_IDENTIFIER,
			Details: map[string]any{
				"actual": p.Identifier, "min": minRoomIdentifier, "max": maxRoomIdentifier,
			},
		})
	}

	status := RoomAvailable
	if p.Status != "" {
		parsed, ok := ParseRoomStatus(p.Status)
		if !ok {
			failures = append(failures, Failure{
				Code:    constants.INVALID_ROOM_STATUS,
				Details: map[string]any{"actual": p.Status},
			})
		} else {
			status = parsed
		}
	}

	layout, layoutFailures := NewSeatLayout(p.SeatRows)
	failures = append(failures, layoutFailures...)

	screen, screenFailures := NewScreen(p.ScreenSize, p.ScreenType)
	failures = append(failures, screenFailures...)

	if len(failures) > 0 {
		return Room{}, failures
	}
	return Room{
		identifier: p.Identifier,
		uid:        uuid.NewString(),
		layout:     layout,
		screen:     screen,
		schedule:   NewRoomSchedule(),
		status:     status,
	}, nil
}

// HydrateRoomParams is the trusted-storage input for HydrateRoom.
type HydrateRoomParams struct {
	Identifier int
	UID        string
	Layout     SeatLayout
	Screen     Screen
	Schedule   RoomSchedule
	Status     string
}

// HydrateRoom reconstructs a room from persisted state. It only checks
// that required fields are present; absent data means corrupt storage.
func HydrateRoom(p HydrateRoomParams) Room {
	if p.Identifier == 0 || p.UID == "" {
		panic(fmt.Sprintf("domain: hydrating room with missing identity (id=%d uid=%q)", p.Identifier, p.UID))
	}
	status, ok := ParseRoomStatus(p.Status)
	if !ok {
		panic(fmt.Sprintf("domain: hydrating room %d with unknown status %q", p.Identifier, p.Status))
	}
	return Room{
		identifier: p.Identifier,
		uid:        p.UID,
		layout:     p.Layout,
		screen:     p.Screen,
		schedule:   p.Schedule,
		status:     status,
	}
}

func (r Room) Identifier() int        { return r.identifier }
func (r Room) UID() string            { return r.uid }
func (r Room) Layout() SeatLayout     { return r.layout }
func (r Room) Screen() Screen         { return r.screen }
func (r Room) Status() RoomStatus     { return r.status }
func (r Room) Schedule() RoomSchedule { return r.schedule }

// GetSeat validates the coordinates and returns the concrete seat. The row
// check runs first; the column is only meaningful inside a known row.
func (r Room) GetSeat(column string, row int) (Seat, Failures) {
	if row < 1 || row > r.layout.RowCount() {
		return Seat{}, fail(constants.INVALID_SEAT_ROW, map[string]any{
			"row": row, "min": 1, "max": r.layout.RowCount(),
		})
	}
	if !r.layout.HasSeat(row, column) {
		return Seat{}, fail(constants.INVALID_SEAT_COLUMN, map[string]any{
			"row": row, "column": column,
		})
	}
	return Seat{
		Row:          row,
		Column:       column,
		Preferential: r.layout.IsPreferentialSeat(row, column),
	}, nil
}

// AllSeats materializes the whole seating map, row 1 first. Presentation
// only; decisions go through GetSeat and the layout lookups.
func (r Room) AllSeats() [][]Seat {
	rows := r.layout.Rows()
	out := make([][]Seat, len(rows))
	for i, row := range rows {
		seats := make([]Seat, row.Capacity())
		for c := 0; c < row.Capacity(); c++ {
			column := string(rune('A' + c))
			seats[c] = Seat{
				Row:          i + 1,
				Column:       column,
				Preferential: row.IsPreferentialSeat(column),
			}
		}
		out[i] = seats
	}
	return out
}

// ChangeStatus validates the target status. Changing to the current status
// is a no-op returning the receiver unchanged.
func (r Room) ChangeStatus(status string) (Room, Failures) {
	parsed, ok := ParseRoomStatus(status)
	if !ok {
		return Room{}, fail(constants.INVALID_ROOM_STATUS, map[string]any{"actual": status})
	}
	if parsed == r.status {
		return r, nil
	}
	next := r
	next.status = parsed
	return next, nil
}

// ScheduleCleaning books a standalone cleaning slot.
func (r Room) ScheduleCleaning(now, startAt time.Time, durationMinutes int, policy SchedulingPolicy) (Room, Failures) {
	return r.scheduleActivity(BookingCleaning, now, startAt, durationMinutes, policy)
}

// ScheduleMaintenance books a standalone maintenance slot.
func (r Room) ScheduleMaintenance(now, startAt time.Time, durationMinutes int, policy SchedulingPolicy) (Room, Failures) {
	return r.scheduleActivity(BookingMaintenance, now, startAt, durationMinutes, policy)
}

func (r Room) scheduleActivity(t BookingType, now, startAt time.Time, durationMinutes int, policy SchedulingPolicy) (Room, Failures) {
	slot, failures := newBookingSlot(t, startAt, time.Duration(durationMinutes)*time.Minute, policy.Buffer, nil, now)
	if len(failures) > 0 {
		return Room{}, failures
	}
	schedule, failures := r.schedule.add(slot)
	if len(failures) > 0 {
		return Room{}, failures
	}
	next := r
	next.schedule = schedule
	return next, nil
}

// ScheduleScreening books the full chain a screening occupies: the entry
// window, the screening itself, the exit window and a trailing cleaning
// tied to the screening. The chain is all-or-nothing; on any conflict the
// room is unchanged.
func (r Room) ScheduleScreening(now time.Time, screeningUID string, startAt time.Time, durationMinutes int, policy SchedulingPolicy) (Room, Failures) {
	screening, failures := newBookingSlot(
		BookingScreening, startAt, time.Duration(durationMinutes)*time.Minute, 0, &screeningUID, now)
	if len(failures) > 0 {
		return Room{}, failures
	}
	entryStart := startAt.Add(-policy.EntryTime)
	if entryStart.Before(now) {
		return Room{}, fail(constants.INVALID_BOOKING_START_TIME, map[string]any{
			"startTime": entryStart, "entryMinutes": policy.EntryTime.Minutes(),
		})
	}

	// Chain slots touch at their boundaries; half-open intervals keep
	// that conflict-free. Only the cleaning tail carries the buffer.
	entry := BookingSlot{
		UID: uuid.NewString(), Type: BookingEntryTime,
		StartTime: entryStart, EndTime: screening.StartTime,
		ScreeningUID: &screeningUID,
	}
	exit := BookingSlot{
		UID: uuid.NewString(), Type: BookingExitTime,
		StartTime: screening.EndTime, EndTime: screening.EndTime.Add(policy.ExitTime),
		ScreeningUID: &screeningUID,
	}
	cleaning := BookingSlot{
		UID: uuid.NewString(), Type: BookingCleaning,
		StartTime: exit.EndTime, EndTime: exit.EndTime.Add(policy.ScreeningCleaning + policy.Buffer),
		ScreeningUID: &screeningUID,
	}

	schedule, failures := r.schedule.add(entry, screening, exit, cleaning)
	if len(failures) > 0 {
		return Room{}, failures
	}
	next := r
	next.schedule = schedule
	return next, nil
}

// CancelScreening removes every slot tied to the screening.
func (r Room) CancelScreening(now time.Time, screeningUID string) (Room, Failures) {
	schedule, failures := r.schedule.RemoveScreening(screeningUID, now)
	if len(failures) > 0 {
		return Room{}, failures
	}
	next := r
	next.schedule = schedule
	return next, nil
}

// RemoveScheduledActivity removes a directly cancellable booking.
func (r Room) RemoveScheduledActivity(now time.Time, bookingUID string) (Room, Failures) {
	schedule, failures := r.schedule.Remove(bookingUID, now)
	if len(failures) > 0 {
		return Room{}, failures
	}
	next := r
	next.schedule = schedule
	return next, nil
}

// FindBookingByUID is a read-only schedule lookup.
func (r Room) FindBookingByUID(uid string) (BookingSlot, bool) {
	return r.schedule.FindByUID(uid)
}

// AllBookings returns the schedule ordered by start time.
func (r Room) AllBookings() []BookingSlot {
	return r.schedule.Slots()
}
