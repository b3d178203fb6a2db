// file: internals/features/finance/invoices/route/invoice_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	invoiceController "rentalku_backend/internals/features/finance/invoices/controller"
)

func InvoiceRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := invoiceController.NewInvoiceController(db)

	invoices := api.Group("/invoices")
	invoices.Post("/", ctrl.Create)
	invoices.Get("/", ctrl.GetAll)

	// calculators before /:id so the literal paths are matched first
	invoices.Post("/calculate-rent", ctrl.CalculateRent)
	invoices.Post("/calculate-period-end", ctrl.CalculatePeriodEnd)
	invoices.Post("/format-rent-note", ctrl.FormatRentNote)

	invoices.Get("/:id", ctrl.GetByID)
	invoices.Put("/:id", ctrl.Update)
}
