// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cashFlowRoute "rentalku_backend/internals/features/finance/cashflows/route"
	invoiceRoute "rentalku_backend/internals/features/finance/invoices/route"
	buildingRoute "rentalku_backend/internals/features/rental/buildings/route"
	electricityRoute "rentalku_backend/internals/features/rental/electricity/route"
	leaseRoute "rentalku_backend/internals/features/rental/leases/route"
	roomRoute "rentalku_backend/internals/features/rental/rooms/route"
	tenantRoute "rentalku_backend/internals/features/rental/tenants/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	api := app.Group("/api")

	// ===================== RENTAL =====================
	log.Println("[INFO] Setting up BuildingRoutes...")
	buildingRoute.BuildingRoutes(api, db)

	log.Println("[INFO] Setting up RoomRoutes...")
	roomRoute.RoomRoutes(api, db)

	log.Println("[INFO] Setting up TenantRoutes...")
	tenantRoute.TenantRoutes(api, db)

	log.Println("[INFO] Setting up LeaseRoutes...")
	leaseRoute.LeaseRoutes(api, db)

	log.Println("[INFO] Setting up ElectricityRoutes...")
	electricityRoute.ElectricityRoutes(api, db)

	// ===================== FINANCE =====================
	log.Println("[INFO] Setting up InvoiceRoutes...")
	invoiceRoute.InvoiceRoutes(api, db)

	log.Println("[INFO] Setting up CashFlowRoutes...")
	cashFlowRoute.CashFlowRoutes(api, db)

	// ===================== MISC =====================
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"uptime": time.Since(startTime).String(),
		})
	})
}
