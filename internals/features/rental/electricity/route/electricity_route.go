// file: internals/features/rental/electricity/route/electricity_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	electricityController "rentalku_backend/internals/features/rental/electricity/controller"
)

func ElectricityRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := electricityController.NewElectricityController(db)

	electricity := api.Group("/electricity")

	rates := electricity.Group("/rates")
	rates.Post("/", ctrl.CreateRate)
	rates.Get("/", ctrl.GetRates)
	rates.Delete("/:id", ctrl.DeleteRate)

	readings := electricity.Group("/readings")
	readings.Post("/", ctrl.UpsertReading)
	readings.Get("/", ctrl.GetReadings)

	electricity.Post("/calculate-bill", ctrl.CalculateBill)
}
