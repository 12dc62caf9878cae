package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/gomail.v2"
)

// MaintenanceNoticeData feeds the facilities notification email.
type MaintenanceNoticeData struct {
	RoomName        string
	PublicCode      string
	StartTime       time.Time
	DurationMinutes int
}

// SendMaintenanceNotice mails the facilities team when maintenance is
// scheduled. Async so the response never waits on SMTP; silently skipped
// when SMTP is not configured.
func SendMaintenanceNotice(data MaintenanceNoticeData) {
	go func() {
		host := os.Getenv("SMTP_HOST")
		to := os.Getenv("FACILITIES_EMAIL")
		if host == "" || to == "" {
			return
		}
		port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

		body := fmt.Sprintf(
			"Maintenance scheduled for %s.\n\nWork order: %s\nStarts: %s\nDuration: %d minutes\n",
			data.RoomName, data.PublicCode,
			data.StartTime.Format(time.RFC1123), data.DurationMinutes)

		m := gomail.NewMessage()
		m.SetHeader("From", os.Getenv("SMTP_FROM"))
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Maintenance scheduled: "+data.RoomName)
		m.SetBody("text/plain", body)

		d := gomail.NewDialer(host, port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
		if err := d.DialAndSend(m); err != nil {
			log.Printf("failed to send maintenance notice: %v", err)
		}
	}()
}
