package validate

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"cinema_rooms/clock"
	"cinema_rooms/repository"
)

type stubRoomRepository struct {
	repository.RoomRepository
	gotNumber int
	gotNow    time.Time
	has       bool
}

func (s *stubRoomRepository) HasFutureBookings(_ context.Context, number int, now time.Time) (bool, error) {
	s.gotNumber = number
	s.gotNow = now
	return s.has, nil
}

func TestHasFutureBookingsUsesPackageClock(t *testing.T) {
	fixed := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	stub := &stubRoomRepository{has: true}

	prevClock, prevRepo := validateClock, roomRepo
	t.Cleanup(func() { validateClock, roomRepo = prevClock, prevRepo })
	validateClock = clock.NewFixed(fixed)
	roomRepo = func() repository.RoomRepository { return stub }

	app := fiber.New()
	c := app.AcquireCtx(&fasthttp.RequestCtx{})
	defer app.ReleaseCtx(c)

	has, ok := hasFutureBookings(c, 7)
	require.True(t, ok)
	assert.True(t, has)
	assert.Equal(t, 7, stub.gotNumber)
	assert.Equal(t, fixed, stub.gotNow)
}
