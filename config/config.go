package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config reads a variable from the environment, loading .env once per call
// the same way the rest of the stack expects (missing .env is fine in prod).
func Config(key string) string {
	// .env is optional; real deployments set variables directly.
	godotenv.Load(".env")
	return os.Getenv(key)
}

func intConfig(key string, fallback int) int {
	raw := Config(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d", key, raw, fallback)
		return fallback
	}
	return v
}

// BookingBufferSeconds is the fixed buffer appended after every scheduled
// activity before the room frees up again.
func BookingBufferSeconds() int {
	return intConfig("BOOKING_BUFFER_SECONDS", 60)
}

// EntryTimeMinutes is how long doors open before a screening starts.
func EntryTimeMinutes() int {
	return intConfig("ENTRY_TIME_MINUTES", 15)
}

// ExitTimeMinutes is how long the room stays blocked for audience exit.
func ExitTimeMinutes() int {
	return intConfig("EXIT_TIME_MINUTES", 10)
}

// ScreeningCleaningMinutes is the length of the cleaning slot booked after
// each screening's exit window.
func ScreeningCleaningMinutes() int {
	return intConfig("SCREENING_CLEANING_MINUTES", 20)
}
