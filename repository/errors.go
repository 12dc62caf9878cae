package repository

import "errors"

var (
	// ErrRoomNotFound is returned when a room lookup matches nothing.
	ErrRoomNotFound = errors.New("room not found")
	// ErrBookingNotFound is returned when a booking lookup matches nothing.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrBookingConflict is returned when the transactional overlap
	// re-check finds a slot that was persisted after the caller read the
	// schedule. The domain check runs on a snapshot; this one closes the
	// race between two concurrent writers.
	ErrBookingConflict = errors.New("booking period conflicts with persisted schedule")
)
