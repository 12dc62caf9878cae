package helper

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"

	"cinema_rooms/database"
	"cinema_rooms/domain"
	"cinema_rooms/model"
)

var roomScheduler *cron.Cron

// StartRoomStatusScheduler releases rooms stuck in CLEANING or MAINTENANCE
// back to AVAILABLE once their last activity booking has ended.
func StartRoomStatusScheduler() {
	roomScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := roomScheduler.AddFunc("*/5 * * * *", releaseFinishedRooms)
	if err != nil {
		log.Printf("Failed to start room status scheduler: %v", err)
		return
	}

	roomScheduler.Start()
	log.Println("Room status scheduler started (every 5 minutes)")
}

func releaseFinishedRooms() {
	now := time.Now().UTC()

	activity := database.DB.Model(&model.Booking{}).
		Select("1").
		Where("bookings.room_id = rooms.id").
		Where("type IN ?", []string{string(domain.BookingCleaning), string(domain.BookingMaintenance)}).
		Where("end_time > ?", now)

	result := database.DB.Model(&model.Room{}).
		Where("status IN ?", []string{string(domain.RoomCleaning), string(domain.RoomMaintenance)}).
		Where("NOT EXISTS (?)", activity).
		Update("status", string(domain.RoomAvailable))

	if result.Error != nil {
		log.Printf("Failed to release finished rooms: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Released %d room(s) back to AVAILABLE", result.RowsAffected)
	}
}

func StopRoomStatusScheduler() {
	if roomScheduler != nil {
		roomScheduler.Stop()
		log.Println("Room status scheduler stopped")
	}
}

var bookingScheduler gocron.Scheduler

// Bookings older than this are purely historical and get purged nightly.
const bookingRetention = 90 * 24 * time.Hour

func PurgeExpiredBookings() {
	log.Println("[CRON] PurgeExpiredBookings triggered")

	cutoff := time.Now().UTC().Add(-bookingRetention)

	result := database.DB.
		Where("end_time < ?", cutoff).
		Delete(&model.Booking{})

	if result.Error != nil {
		log.Printf("Failed to purge expired bookings: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Purged %d expired booking(s)", result.RowsAffected)
	}
}

func StartBookingPurgeScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		log.Fatal(err)
	}

	bookingScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(PurgeExpiredBookings),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Booking purge scheduler started (00:05 UTC)")
}

func StopBookingPurgeScheduler() {
	if bookingScheduler != nil {
		if err := bookingScheduler.Shutdown(); err != nil {
			log.Printf("Failed to stop booking purge scheduler: %v", err)
		}
	}
}
