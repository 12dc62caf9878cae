package router

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"cinema_rooms/handler"
	"cinema_rooms/middleware"
	"cinema_rooms/validate"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)

	room := v1.Group("/room", logger.New())
	room.Get("/", middleware.Protected(), handler.GetAllRooms)
	room.Get("/:roomId", middleware.Protected(), handler.GetRoom)
	room.Post("/", middleware.Protected(), validate.CreateRoom(), handler.CreateRoom)
	room.Delete("/:roomId", middleware.Protected(), validate.DeleteRoom("roomId"), handler.DeleteRoom)
	room.Patch("/:roomId/status", middleware.Protected(), validate.ChangeRoomStatus("roomId"), handler.ChangeRoomStatus)

	room.Get("/:roomId/seats", middleware.Protected(), handler.GetRoomSeats)
	room.Get("/:roomId/seats/:row/:column", middleware.Protected(), handler.GetRoomSeat)

	room.Get("/:roomId/bookings", middleware.Protected(), handler.GetRoomBookings)
	room.Get("/:roomId/bookings/:bookingUid", middleware.Protected(), handler.GetBookingDetail)
	room.Delete("/:roomId/bookings/:bookingUid", middleware.Protected(), validate.RemoveBooking("roomId", "bookingUid"), handler.RemoveBooking)

	room.Post("/:roomId/cleaning", middleware.Protected(), validate.ScheduleActivity("roomId"), handler.ScheduleCleaning)
	room.Post("/:roomId/maintenance", middleware.Protected(), validate.ScheduleActivity("roomId"), handler.ScheduleMaintenance)
	room.Post("/:roomId/screening", middleware.Protected(), validate.ScheduleScreening("roomId"), handler.ScheduleScreening)
	room.Delete("/:roomId/screening/:screeningUid", middleware.Protected(), validate.CancelScreening("roomId", "screeningUid"), handler.CancelScreening)

	// Public lobby board, no auth.
	board := v1.Group("/board", logger.New())
	board.Get("/:slug", handler.GetBoard)

	ws := app.Group("/ws")
	ws.Get("/board/:roomId", websocket.New(handler.BoardWebsocket))
}
