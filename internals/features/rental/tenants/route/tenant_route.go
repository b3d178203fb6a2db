// file: internals/features/rental/tenants/route/tenant_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tenantController "rentalku_backend/internals/features/rental/tenants/controller"
)

func TenantRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := tenantController.NewTenantController(db)

	tenants := api.Group("/tenants")
	tenants.Post("/", ctrl.Create)
	tenants.Get("/", ctrl.GetAll)
	tenants.Get("/:id", ctrl.GetByID)
	tenants.Put("/:id", ctrl.Update)
}
