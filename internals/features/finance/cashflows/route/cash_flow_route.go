// file: internals/features/finance/cashflows/route/cash_flow_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cashFlowController "rentalku_backend/internals/features/finance/cashflows/controller"
)

func CashFlowRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := cashFlowController.NewCashFlowController(db)

	cashFlows := api.Group("/cash-flows")

	cashFlows.Post("/categories", ctrl.CreateCategory)
	cashFlows.Get("/categories", ctrl.GetCategories)
	cashFlows.Post("/accounts", ctrl.CreateAccount)
	cashFlows.Get("/accounts", ctrl.GetAccounts)

	cashFlows.Post("/", ctrl.Create)
	cashFlows.Get("/", ctrl.GetAll)
	cashFlows.Get("/:id", ctrl.GetByID)
	cashFlows.Put("/:id", ctrl.Update)
	cashFlows.Delete("/:id", ctrl.Delete)
}
