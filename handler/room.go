package handler

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"

	"cinema_rooms/constants"
	"cinema_rooms/database"
	"cinema_rooms/domain"
	"cinema_rooms/helper"
	"cinema_rooms/model"
	"cinema_rooms/repository"
	"cinema_rooms/utils"
)

type RoomSummary struct {
	Number            int    `json:"number"`
	Name              string `json:"name"`
	Slug              string `json:"slug"`
	Status            string `json:"status"`
	ScreenSize        int    `json:"screenSize"`
	ScreenType        string `json:"screenType"`
	Rows              int    `json:"rows"`
	Capacity          int    `json:"capacity"`
	PreferentialSeats int    `json:"preferentialSeats"`
}

type RoomDetail struct {
	RoomSummary
	SeatRows []RowDetail          `json:"seatRows"`
	Bookings []domain.BookingSlot `json:"bookings"`
}

type RowDetail struct {
	Row               int      `json:"row"`
	LastColumn        string   `json:"lastColumn"`
	Capacity          int      `json:"capacity"`
	PreferentialSeats []string `json:"preferentialSeats"`
}

func summarize(room domain.Room, rec model.Room) RoomSummary {
	return RoomSummary{
		Number:            room.Identifier(),
		Name:              rec.Name,
		Slug:              rec.Slug,
		Status:            string(room.Status()),
		ScreenSize:        room.Screen().Size,
		ScreenType:        string(room.Screen().Type),
		Rows:              room.Layout().RowCount(),
		Capacity:          room.Layout().TotalCapacity(),
		PreferentialSeats: room.Layout().TotalPreferentialSeats(),
	}
}

func detail(room domain.Room, rec model.Room) RoomDetail {
	rows := room.Layout().Rows()
	rowDetails := make([]RowDetail, len(rows))
	for i, row := range rows {
		rowDetails[i] = RowDetail{
			Row:               i + 1,
			LastColumn:        row.LastColumn(),
			Capacity:          row.Capacity(),
			PreferentialSeats: row.PreferentialSeats(),
		}
	}
	return RoomDetail{
		RoomSummary: summarize(room, rec),
		SeatRows:    rowDetails,
		Bookings:    room.AllBookings(),
	}
}

func GetAllRooms(c *fiber.Ctx) error {
	var pagination model.Pagination
	if err := c.QueryParser(&pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse request: %s", err.Error()), err)
	}

	records, total, err := repo().List(c.Context(), pagination.Limit, pagination.Page)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	summaries := make([]RoomSummary, len(records))
	for i, rec := range records {
		summaries[i] = summarize(repository.Hydrate(rec), rec)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       summaries,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: total,
	})
}

func GetRoom(c *fiber.Ctx) error {
	number, err := strconv.Atoi(c.Params("roomId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	room, err := repo().FindById(c.Context(), number)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	rec, err := repo().RecordForNumber(c.Context(), number)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, detail(room, rec))
}

func CreateRoom(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateRoom").(model.CreateRoomInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}

	var rowConfigs []domain.SeatRowConfig
	copier.Copy(&rowConfigs, &input.SeatRows)

	room, failures := domain.NewRoom(domain.NewRoomParams{
		Identifier: input.Number,
		SeatRows:   rowConfigs,
		ScreenSize: input.ScreenSize,
		ScreenType: input.ScreenType,
		Status:     input.Status,
	})
	if len(failures) > 0 {
		return utils.FailuresResponse(c, fiber.StatusBadRequest, failures)
	}

	name := fmt.Sprintf("Room %d", room.Identifier())
	slug := helper.GenerateUniqueRoomSlug(database.DB, name)

	if err := repo().Create(c.Context(), room, name, slug); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	rec, err := repo().RecordForNumber(c.Context(), room.Identifier())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, detail(room, rec))
}

func DeleteRoom(c *fiber.Ctx) error {
	number, ok := c.Locals("roomNumber").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}

	if err := repo().Delete(c.Context(), number); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"number": number})
}

func ChangeRoomStatus(c *fiber.Ctx) error {
	number, ok := c.Locals("roomNumber").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}
	input, ok := c.Locals("inputChangeRoomStatus").(model.ChangeRoomStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}

	room, err := repo().FindById(c.Context(), number)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	next, failures := room.ChangeStatus(input.Status)
	if len(failures) > 0 {
		return utils.FailuresResponse(c, fiber.StatusBadRequest, failures)
	}

	if err := repo().UpdateStatus(c.Context(), next); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	BroadcastBoard(number)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"number": number,
		"status": string(next.Status()),
	})
}

func GetRoomSeats(c *fiber.Ctx) error {
	number, err := strconv.Atoi(c.Params("roomId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	room, err := repo().FindById(c.Context(), number)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, room.AllSeats())
}

func GetRoomSeat(c *fiber.Ctx) error {
	number, err := strconv.Atoi(c.Params("roomId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}
	row, err := strconv.Atoi(c.Params("row"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}
	column := c.Params("column")

	room, err := repo().FindById(c.Context(), number)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	seat, failures := room.GetSeat(column, row)
	if len(failures) > 0 {
		return utils.FailuresResponse(c, fiber.StatusNotFound, failures)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, seat)
}

func GetRoomBookings(c *fiber.Ctx) error {
	number, err := strconv.Atoi(c.Params("roomId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	room, err := repo().FindById(c.Context(), number)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, room.AllBookings())
}

func ScheduleCleaning(c *fiber.Ctx) error {
	return scheduleActivity(c, domain.BookingCleaning)
}

func ScheduleMaintenance(c *fiber.Ctx) error {
	return scheduleActivity(c, domain.BookingMaintenance)
}

func scheduleActivity(c *fiber.Ctx, activity domain.BookingType) error {
	number, ok := c.Locals("roomNumber").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}
	input, ok := c.Locals("inputScheduleActivity").(model.ScheduleActivityInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}

	room, err := repo().FindById(c.Context(), number)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	now := roomClock.Now()
	var next domain.Room
	var failures domain.Failures
	switch activity {
	case domain.BookingCleaning:
		next, failures = room.ScheduleCleaning(now, input.StartTime, input.DurationMinutes, schedulingPolicy())
	default:
		next, failures = room.ScheduleMaintenance(now, input.StartTime, input.DurationMinutes, schedulingPolicy())
	}
	if len(failures) > 0 {
		return utils.FailuresResponse(c, failuresStatus(failures), failures)
	}

	added := newSlots(room, next)
	if err := repo().AddBookings(c.Context(), number, added...); err != nil {
		if errors.Is(err, repository.ErrBookingConflict) {
			return utils.ErrorResponse(c, fiber.StatusConflict, "Room is no longer available for that period", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if activity == domain.BookingMaintenance && len(added) > 0 {
		rec, recErr := repo().RecordForNumber(c.Context(), number)
		if recErr == nil {
			utils.SendMaintenanceNotice(utils.MaintenanceNoticeData{
				RoomName:        rec.Name,
				PublicCode:      repository.PublicCode(added[0].UID),
				StartTime:       added[0].StartTime,
				DurationMinutes: input.DurationMinutes,
			})
		}
	}

	BroadcastBoard(number)
	return utils.SuccessResponse(c, fiber.StatusCreated, added)
}

func ScheduleScreening(c *fiber.Ctx) error {
	number, ok := c.Locals("roomNumber").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}
	input, ok := c.Locals("inputScheduleScreening").(model.ScheduleScreeningInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}

	room, err := repo().FindById(c.Context(), number)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	next, failures := room.ScheduleScreening(
		roomClock.Now(), input.ScreeningUID, input.StartTime, input.DurationMinutes, schedulingPolicy())
	if len(failures) > 0 {
		return utils.FailuresResponse(c, failuresStatus(failures), failures)
	}

	added := newSlots(room, next)
	if err := repo().AddBookings(c.Context(), number, added...); err != nil {
		if errors.Is(err, repository.ErrBookingConflict) {
			return utils.ErrorResponse(c, fiber.StatusConflict, "Room is no longer available for that period", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	BroadcastBoard(number)
	return utils.SuccessResponse(c, fiber.StatusCreated, added)
}

func CancelScreening(c *fiber.Ctx) error {
	number, ok := c.Locals("roomNumber").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}
	screeningUID, ok := c.Locals("screeningUid").(string)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}

	room, err := repo().FindById(c.Context(), number)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if _, failures := room.CancelScreening(roomClock.Now(), screeningUID); len(failures) > 0 {
		return utils.FailuresResponse(c, failuresStatus(failures), failures)
	}

	if err := repo().DeleteScreeningBookings(c.Context(), number, screeningUID); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	BroadcastBoard(number)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"screeningUid": screeningUID})
}

func RemoveBooking(c *fiber.Ctx) error {
	number, ok := c.Locals("roomNumber").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}
	bookingUID, ok := c.Locals("bookingUid").(string)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}

	room, err := repo().FindById(c.Context(), number)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if _, failures := room.RemoveScheduledActivity(roomClock.Now(), bookingUID); len(failures) > 0 {
		return utils.FailuresResponse(c, failuresStatus(failures), failures)
	}

	if err := repo().DeleteBooking(c.Context(), number, bookingUID); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	BroadcastBoard(number)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"bookingUid": bookingUID})
}

type BookingDetail struct {
	domain.BookingSlot
	RoomNumber int    `json:"roomNumber"`
	PublicCode string `json:"publicCode"`
	QRCode     string `json:"qrCode"`
	Duration   string `json:"duration"`
}

// GetBookingDetail returns one booking with the QR work-order code staff
// print and scan on site.
func GetBookingDetail(c *fiber.Ctx) error {
	number, err := strconv.Atoi(c.Params("roomId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}
	bookingUID := c.Params("bookingUid")

	slot, roomNumber, err := repo().FindBookingByUID(c.Context(), bookingUID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if roomNumber != number {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, errors.New("booking belongs to another room"))
	}

	code := repository.PublicCode(slot.UID)
	qr, err := utils.GenerateQRCodeDataURI(code, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, BookingDetail{
		BookingSlot: slot,
		RoomNumber:  roomNumber,
		PublicCode:  code,
		QRCode:      qr,
		Duration:    slot.EndTime.Sub(slot.StartTime).Round(time.Minute).String(),
	})
}
