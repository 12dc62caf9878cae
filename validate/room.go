package validate

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cinema_rooms/clock"
	"cinema_rooms/constants"
	"cinema_rooms/database"
	"cinema_rooms/domain"
	"cinema_rooms/helper"
	"cinema_rooms/model"
	"cinema_rooms/repository"
	"cinema_rooms/utils"
)

var (
	validateClock = clock.NewSystem()
	roomRepo      = func() repository.RoomRepository { return repository.NewRoomRepository(database.DB) }
)

// hasFutureBookings runs the service-layer precondition shared by close
// and delete. On error the response is already written and ok is false.
func hasFutureBookings(c *fiber.Ctx, number int) (bool, bool) {
	has, err := roomRepo().HasFutureBookings(c.Context(), number, validateClock.Now())
	if err != nil {
		utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		return false, false
	}
	return has, true
}

// roomNumberParam parses the :roomId path segment. Rooms are addressed by
// their business number (1..100), not the database id. On bad input the
// response is already written and ok is false.
func roomNumberParam(c *fiber.Ctx, key string) (int, bool) {
	number, err := strconv.Atoi(c.Params(key))
	if err != nil {
		utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		return 0, false
	}
	return number, true
}

func findRoomRecord(c *fiber.Ctx, number int) (*model.Room, bool) {
	var room model.Room
	if err := database.DB.Where("number = ?", number).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, nil)
		} else {
			utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		return nil, false
	}
	return &room, true
}

func CreateRoom() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateRoomInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse request: %s", err.Error()), err)
		}

		validate := validator.New()
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
		if !isAdmin && !isManager {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}

		// Room numbers are unique across the site.
		var existing model.Room
		if err := database.DB.Where("number = ?", input.Number).First(&existing).Error; err == nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Room number already exists", fmt.Errorf("number already exists"), "number")
		}

		c.Locals("inputCreateRoom", input)
		return c.Next()
	}
}

func ChangeRoomStatus(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
		if !isAdmin && !isManager {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}

		number, ok := roomNumberParam(c, key)
		if !ok {
			return nil
		}

		var input model.ChangeRoomStatusInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse request: %s", err.Error()), err)
		}
		validate := validator.New()
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		if _, ok := findRoomRecord(c, number); !ok {
			return nil
		}

		// A room with future bookings cannot be closed. The check lives
		// here, outside the aggregate, so hydrating old records with any
		// status stays possible.
		if input.Status == string(domain.RoomClosed) {
			has, ok := hasFutureBookings(c, number)
			if !ok {
				return nil
			}
			if has {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ROOM_HAS_FUTURE_BOOKINGS, errors.New("future bookings exist"), "status")
			}
		}

		c.Locals("roomNumber", number)
		c.Locals("inputChangeRoomStatus", input)
		return c.Next()
	}
}

func DeleteRoom(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, isAdmin, _, _ := helper.GetInfoAccountFromToken(c)
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}

		number, ok := roomNumberParam(c, key)
		if !ok {
			return nil
		}

		if _, ok := findRoomRecord(c, number); !ok {
			return nil
		}

		has, ok := hasFutureBookings(c, number)
		if !ok {
			return nil
		}
		if has {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ROOM_HAS_FUTURE_BOOKINGS, errors.New("future bookings exist"), "ids")
		}

		c.Locals("roomNumber", number)
		return c.Next()
	}
}

func ScheduleActivity(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number, ok := roomNumberParam(c, key)
		if !ok {
			return nil
		}

		var input model.ScheduleActivityInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse request: %s", err.Error()), err)
		}
		validate := validator.New()
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		if _, ok := findRoomRecord(c, number); !ok {
			return nil
		}

		c.Locals("roomNumber", number)
		c.Locals("inputScheduleActivity", input)
		return c.Next()
	}
}

func ScheduleScreening(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
		if !isAdmin && !isManager {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}

		number, ok := roomNumberParam(c, key)
		if !ok {
			return nil
		}

		var input model.ScheduleScreeningInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse request: %s", err.Error()), err)
		}
		validate := validator.New()
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		if _, ok := findRoomRecord(c, number); !ok {
			return nil
		}

		c.Locals("roomNumber", number)
		c.Locals("inputScheduleScreening", input)
		return c.Next()
	}
}

func RemoveBooking(key, bookingKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
		if !isAdmin && !isManager {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}

		number, ok := roomNumberParam(c, key)
		if !ok {
			return nil
		}
		bookingUID := c.Params(bookingKey)
		if bookingUID == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.BOOKING_NOT_FOUND, errors.New("params invalid"))
		}

		if _, ok := findRoomRecord(c, number); !ok {
			return nil
		}

		c.Locals("roomNumber", number)
		c.Locals("bookingUid", bookingUID)
		return c.Next()
	}
}

func CancelScreening(key, screeningKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
		if !isAdmin && !isManager {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}

		number, ok := roomNumberParam(c, key)
		if !ok {
			return nil
		}
		screeningUID := c.Params(screeningKey)
		if screeningUID == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.BOOKING_NOT_FOUND, errors.New("params invalid"))
		}

		if _, ok := findRoomRecord(c, number); !ok {
			return nil
		}

		c.Locals("roomNumber", number)
		c.Locals("screeningUid", screeningUID)
		return c.Next()
	}
}
