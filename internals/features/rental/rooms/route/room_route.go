// file: internals/features/rental/rooms/route/room_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	roomController "rentalku_backend/internals/features/rental/rooms/controller"
)

func RoomRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := roomController.NewRoomController(db)

	rooms := api.Group("/rooms")
	rooms.Post("/", ctrl.Create)
	rooms.Get("/", ctrl.GetAll)
	// registered before /:id so the param route does not shadow it
	rooms.Get("/occupancy", ctrl.GetOccupancy)
	rooms.Get("/:id", ctrl.GetByID)
	rooms.Put("/:id", ctrl.Update)
}
