// file: internals/features/rental/buildings/route/building_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	buildingController "rentalku_backend/internals/features/rental/buildings/controller"
)

func BuildingRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := buildingController.NewBuildingController(db)

	buildings := api.Group("/buildings")
	buildings.Post("/", ctrl.Create)
	buildings.Get("/", ctrl.GetAll)
	buildings.Get("/:id", ctrl.GetByID)
	buildings.Put("/:id", ctrl.Update)
	buildings.Delete("/:id", ctrl.Delete)
}
