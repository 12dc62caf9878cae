package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cinema_rooms/domain"
	"cinema_rooms/model"
	"cinema_rooms/utils"
)

// RoomRepository is the persistence boundary around the Room aggregate.
// Callers load a room, run pure domain operations on it, then persist the
// outcome through these methods.
type RoomRepository interface {
	RoomExists(ctx context.Context, number int) (bool, error)
	FindById(ctx context.Context, number int) (domain.Room, error)
	FindBySlug(ctx context.Context, slug string) (domain.Room, error)
	List(ctx context.Context, limit *int, page *int) ([]model.Room, int64, error)
	Create(ctx context.Context, room domain.Room, name, slug string) error
	UpdateStatus(ctx context.Context, room domain.Room) error
	Delete(ctx context.Context, number int) error
	AddBookings(ctx context.Context, number int, slots ...domain.BookingSlot) error
	DeleteBooking(ctx context.Context, number int, bookingUID string) error
	DeleteScreeningBookings(ctx context.Context, number int, screeningUID string) error
	FindBookingByUID(ctx context.Context, bookingUID string) (domain.BookingSlot, int, error)
	HasFutureBookings(ctx context.Context, number int, now time.Time) (bool, error)
	RecordForNumber(ctx context.Context, number int) (model.Room, error)
}

type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository builds the gorm-backed repository.
func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) RoomExists(ctx context.Context, number int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Room{}).
		Where("number = ?", number).Count(&count).Error
	return count > 0, err
}

func (r *roomRepository) record(ctx context.Context, number int) (model.Room, error) {
	var rec model.Room
	err := r.db.WithContext(ctx).
		Preload("SeatRows", func(db *gorm.DB) *gorm.DB { return db.Order("row_number ASC") }).
		Preload("Bookings").
		Where("number = ?", number).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Room{}, ErrRoomNotFound
	}
	return rec, err
}

// RecordForNumber exposes the raw record for presentation fields the domain
// does not carry (name, slug, booking public codes).
func (r *roomRepository) RecordForNumber(ctx context.Context, number int) (model.Room, error) {
	return r.record(ctx, number)
}

func (r *roomRepository) FindById(ctx context.Context, number int) (domain.Room, error) {
	rec, err := r.record(ctx, number)
	if err != nil {
		return domain.Room{}, err
	}
	return Hydrate(rec), nil
}

func (r *roomRepository) FindBySlug(ctx context.Context, slug string) (domain.Room, error) {
	var rec model.Room
	err := r.db.WithContext(ctx).
		Preload("SeatRows", func(db *gorm.DB) *gorm.DB { return db.Order("row_number ASC") }).
		Preload("Bookings").
		Where("slug = ?", slug).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Room{}, ErrRoomNotFound
	}
	if err != nil {
		return domain.Room{}, err
	}
	return Hydrate(rec), nil
}

// List returns one page of room records plus the unpaginated total. Callers
// rebuild the aggregates with Hydrate, so the page is fetched exactly once.
func (r *roomRepository) List(ctx context.Context, limit *int, page *int) ([]model.Room, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Room{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.WithContext(ctx).
		Preload("SeatRows", func(db *gorm.DB) *gorm.DB { return db.Order("row_number ASC") }).
		Preload("Bookings").
		Order("number ASC")
	var records []model.Room
	if err := utils.ApplyPagination(query, limit, page).Find(&records).Error; err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (r *roomRepository) Create(ctx context.Context, room domain.Room, name, slug string) error {
	rec := model.Room{
		UID:        room.UID(),
		Number:     room.Identifier(),
		Name:       name,
		Slug:       slug,
		ScreenSize: room.Screen().Size,
		ScreenType: string(room.Screen().Type),
		Status:     string(room.Status()),
	}
	for i, row := range room.Layout().Rows() {
		rec.SeatRows = append(rec.SeatRows, model.SeatRow{
			RowNumber:    i + 1,
			LastColumn:   row.LastColumn(),
			Preferential: strings.Join(row.PreferentialSeats(), ","),
		})
	}
	return r.db.WithContext(ctx).Create(&rec).Error
}

func (r *roomRepository) UpdateStatus(ctx context.Context, room domain.Room) error {
	res := r.db.WithContext(ctx).Model(&model.Room{}).
		Where("number = ?", room.Identifier()).
		Update("status", string(room.Status()))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

func (r *roomRepository) Delete(ctx context.Context, number int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec model.Room
		if err := tx.Where("number = ?", number).First(&rec).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		if err := tx.Where("room_id = ?", rec.ID).Delete(&model.Booking{}).Error; err != nil {
			return err
		}
		if err := tx.Where("room_id = ?", rec.ID).Delete(&model.SeatRow{}).Error; err != nil {
			return err
		}
		return tx.Delete(&rec).Error
	})
}

// AddBookings persists new slots for a room. The domain already validated
// the batch against its schedule snapshot; the overlap re-check here runs
// under a row lock on the room so two concurrent writers cannot both pass.
func (r *roomRepository) AddBookings(ctx context.Context, number int, slots ...domain.BookingSlot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec model.Room
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("number = ?", number).First(&rec).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		if err != nil {
			return err
		}
		for _, slot := range slots {
			var count int64
			if err := tx.Model(&model.Booking{}).
				Where("room_id = ? AND start_time < ? AND ? < end_time", rec.ID, slot.EndTime, slot.StartTime).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return ErrBookingConflict
			}
			booking := model.Booking{
				UID:          slot.UID,
				PublicCode:   PublicCode(slot.UID),
				RoomId:       rec.ID,
				Type:         string(slot.Type),
				StartTime:    slot.StartTime,
				EndTime:      slot.EndTime,
				ScreeningUID: slot.ScreeningUID,
			}
			if err := tx.Create(&booking).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *roomRepository) DeleteBooking(ctx context.Context, number int, bookingUID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec model.Room
		if err := tx.Where("number = ?", number).First(&rec).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		res := tx.Where("room_id = ? AND uid = ?", rec.ID, bookingUID).Delete(&model.Booking{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrBookingNotFound
		}
		return nil
	})
}

func (r *roomRepository) DeleteScreeningBookings(ctx context.Context, number int, screeningUID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec model.Room
		if err := tx.Where("number = ?", number).First(&rec).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		res := tx.Where("room_id = ? AND screening_uid = ?", rec.ID, screeningUID).Delete(&model.Booking{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrBookingNotFound
		}
		return nil
	})
}

func (r *roomRepository) FindBookingByUID(ctx context.Context, bookingUID string) (domain.BookingSlot, int, error) {
	var booking model.Booking
	err := r.db.WithContext(ctx).Where("uid = ?", bookingUID).First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.BookingSlot{}, 0, ErrBookingNotFound
	}
	if err != nil {
		return domain.BookingSlot{}, 0, err
	}
	var rec model.Room
	if err := r.db.WithContext(ctx).First(&rec, booking.RoomId).Error; err != nil {
		return domain.BookingSlot{}, 0, err
	}
	return toSlot(booking), rec.Number, nil
}

func (r *roomRepository) HasFutureBookings(ctx context.Context, number int, now time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Booking{}).
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Where("rooms.number = ? AND bookings.start_time > ?", number, now).
		Count(&count).Error
	return count > 0, err
}

// Hydrate rebuilds the domain aggregate from a persisted record. Stored
// data was validated on the way in, so this path trusts it.
func Hydrate(rec model.Room) domain.Room {
	sort.Slice(rec.SeatRows, func(i, j int) bool {
		return rec.SeatRows[i].RowNumber < rec.SeatRows[j].RowNumber
	})
	rows := make([]domain.SeatRow, len(rec.SeatRows))
	for i, row := range rec.SeatRows {
		var prefs []string
		if row.Preferential != "" {
			prefs = strings.Split(row.Preferential, ",")
		}
		rows[i] = domain.HydrateSeatRow(row.LastColumn, prefs)
	}

	slots := make([]domain.BookingSlot, len(rec.Bookings))
	for i, booking := range rec.Bookings {
		slots[i] = toSlot(booking)
	}

	return domain.HydrateRoom(domain.HydrateRoomParams{
		Identifier: rec.Number,
		UID:        rec.UID,
		Layout:     domain.HydrateSeatLayout(rows),
		Screen:     domain.HydrateScreen(rec.ScreenSize, rec.ScreenType),
		Schedule:   domain.HydrateRoomSchedule(slots),
		Status:     rec.Status,
	})
}

func toSlot(booking model.Booking) domain.BookingSlot {
	return domain.BookingSlot{
		UID:          booking.UID,
		Type:         domain.BookingType(booking.Type),
		StartTime:    booking.StartTime,
		EndTime:      booking.EndTime,
		ScreeningUID: booking.ScreeningUID,
	}
}

// PublicCode derives the short staff-facing code printed on work orders.
func PublicCode(uid string) string {
	return strings.ToUpper(strings.ReplaceAll(uid, "-", ""))[:12]
}
