package model

import "time"

// Room is the persisted shape of a cinema room. The domain aggregate is the
// source of truth for every business rule; these records only store what it
// validated.
type Room struct {
	DTO
	UID        string    `gorm:"size:36;uniqueIndex;not null" json:"uid"`
	Number     int       `gorm:"uniqueIndex;not null" json:"number"` // 1..100
	Name       string    `gorm:"not null" json:"name"`               // "Room 7"
	Slug       string    `gorm:"uniqueIndex;not null" json:"slug"`
	ScreenSize int       `gorm:"not null" json:"screenSize"`
	ScreenType string    `gorm:"size:10;not null" json:"screenType"` // 2D, 3D, 2D_3D
	Status     string    `gorm:"size:20;not null" json:"status"`
	SeatRows   []SeatRow `gorm:"foreignKey:RoomId;constraint:OnDelete:CASCADE" json:"seatRows"`
	Bookings   []Booking `gorm:"foreignKey:RoomId;constraint:OnDelete:CASCADE" json:"bookings"`
}

// SeatRow persists one row of a room's layout. Preferential columns are a
// comma-joined letter list ("A,B"), empty when the row has none.
type SeatRow struct {
	DTO
	RoomId       uint   `gorm:"index;not null" json:"roomId"`
	RowNumber    int    `gorm:"not null" json:"rowNumber"`
	LastColumn   string `gorm:"size:1;not null" json:"lastColumn"`
	Preferential string `json:"preferential"`
}

// Booking persists one slot of a room's schedule.
type Booking struct {
	DTO
	UID          string    `gorm:"size:36;uniqueIndex;not null" json:"uid"`
	PublicCode   string    `gorm:"size:16;uniqueIndex" json:"publicCode"`
	RoomId       uint      `gorm:"index;not null" json:"roomId"`
	Type         string    `gorm:"size:20;not null" json:"type"`
	StartTime    time.Time `gorm:"index;not null" json:"startTime"`
	EndTime      time.Time `gorm:"not null" json:"endTime"`
	ScreeningUID *string   `gorm:"size:36;index" json:"screeningUid"`
}

type SeatRowInput struct {
	Row               int      `json:"row" validate:"required,min=1"`
	LastColumn        string   `json:"lastColumn" validate:"required,len=1"`
	PreferentialSeats []string `json:"preferentialSeats" validate:"omitempty,dive,len=1"`
}

type CreateRoomInput struct {
	Number     int            `json:"number" validate:"required,min=1,max=100"`
	SeatRows   []SeatRowInput `json:"seatRows" validate:"required,dive"`
	ScreenSize int            `json:"screenSize" validate:"required"`
	ScreenType string         `json:"screenType" validate:"required"`
	Status     string         `json:"status" validate:"omitempty"`
}

type ChangeRoomStatusInput struct {
	Status string `json:"status" validate:"required"`
}

type ScheduleActivityInput struct {
	StartTime       time.Time `json:"startTime" validate:"required"`
	DurationMinutes int       `json:"durationMinutes" validate:"required,gt=0"`
}

type ScheduleScreeningInput struct {
	ScreeningUID    string    `json:"screeningUid" validate:"required,uuid4"`
	StartTime       time.Time `json:"startTime" validate:"required"`
	DurationMinutes int       `json:"durationMinutes" validate:"required,gt=0"`
}
