package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cinema_rooms/constants"
	"cinema_rooms/database"
	"cinema_rooms/domain"
	"cinema_rooms/model"
	"cinema_rooms/repository"
	"cinema_rooms/utils"
)

type BoardEntry struct {
	Type      string `json:"type"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type Board struct {
	Name     string       `json:"name"`
	Number   int          `json:"number"`
	Status   string       `json:"status"`
	Schedule []BoardEntry `json:"schedule"`
}

// GetBoard is the public schedule board for lobby displays. Only upcoming
// entries show; internal slot identifiers stay off the wire.
func GetBoard(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var rec model.Room
	if err := database.DB.Where("slug = ?", slug).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	room, err := repo().FindBySlug(c.Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, buildBoard(room, rec.Name))
}

func buildBoard(room domain.Room, name string) Board {
	now := roomClock.Now()
	var entries []BoardEntry
	for _, slot := range room.AllBookings() {
		if slot.EndTime.Before(now) {
			continue
		}
		entries = append(entries, BoardEntry{
			Type:      string(slot.Type),
			StartTime: slot.StartTime.Format("2006-01-02 15:04"),
			EndTime:   slot.EndTime.Format("2006-01-02 15:04"),
		})
	}
	return Board{
		Name:     name,
		Number:   room.Identifier(),
		Status:   string(room.Status()),
		Schedule: entries,
	}
}
