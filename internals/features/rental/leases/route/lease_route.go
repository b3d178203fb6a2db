// file: internals/features/rental/leases/route/lease_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	leaseController "rentalku_backend/internals/features/rental/leases/controller"
	"rentalku_backend/internals/middlewares"
)

func LeaseRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := leaseController.NewLeaseController(db)

	leases := api.Group("/leases")
	leases.Post("/", ctrl.Create)
	leases.Get("/", ctrl.GetAll)
	leases.Get("/:id", ctrl.GetByID)
	leases.Put("/:id", ctrl.Update)

	leases.Get("/:id/amendments", ctrl.GetAmendments)
	leases.Post("/:id/calculate-proration", ctrl.CalculateProration)

	// Lifecycle transitions get a tighter limiter: they mutate contract
	// state and are never something a client needs to hammer.
	transitions := leases.Group("/", middlewares.TransitionRateLimiter())
	transitions.Post("/:id/submit", ctrl.Submit)
	transitions.Post("/:id/amend", ctrl.Amend)
	transitions.Post("/:id/renew", ctrl.Renew)
	transitions.Post("/:id/terminate", ctrl.Terminate)
}
