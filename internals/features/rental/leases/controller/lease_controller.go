// file: internals/features/rental/leases/controller/lease_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/rental/leases/dto"
	"rentalku_backend/internals/features/rental/leases/model"
	"rentalku_backend/internals/features/rental/leases/service"
	helper "rentalku_backend/internals/helpers"
)

type LeaseController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewLeaseController(db *gorm.DB) *LeaseController {
	return &LeaseController{DB: db, Validator: validator.New()}
}

// =======================================================
// CREATE — POST /leases
// =======================================================

func (ctrl *LeaseController) Create(c *fiber.Ctx) error {
	var req dto.LeaseCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	lease, err := service.CreateLease(ctrl.DB, req, helper.DateOnly(time.Now()), helper.ActorID(c))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "lease created",
		dto.ToLeaseResponse(*lease, helper.DateOnly(time.Now())))
}

// =======================================================
// READ — GET /leases, GET /leases/:id
// =======================================================

func (ctrl *LeaseController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	today := helper.DateOnly(time.Now())

	filter := service.ListFilter{
		Offset: paging.Offset,
		Limit:  paging.Limit,
	}
	if raw := c.QueryInt("tenant_id"); raw > 0 {
		id := int64(raw)
		filter.TenantID = &id
	}
	if raw := c.QueryInt("room_id"); raw > 0 {
		id := int64(raw)
		filter.RoomID = &id
	}
	if raw := c.Query("status"); raw != "" {
		s := model.LeaseStatus(raw)
		switch s {
		case model.LeaseStatusDraft, model.LeaseStatusPending, model.LeaseStatusActive,
			model.LeaseStatusExpired, model.LeaseStatusTerminated:
			filter.Status = &s
		default:
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid status filter")
		}
	}

	leases, total, err := service.ListLeases(ctrl.DB, filter, today)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "leases fetched",
		dto.ToLeaseResponses(leases, today),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *LeaseController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	lease, err := service.GetLease(ctrl.DB, id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "lease fetched",
		dto.ToLeaseResponse(*lease, helper.DateOnly(time.Now())))
}

// =======================================================
// UPDATE — PUT /leases/:id
// =======================================================

func (ctrl *LeaseController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}

	var req dto.LeaseUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	lease, err := service.UpdateLease(ctrl.DB, id, req, helper.DateOnly(time.Now()), helper.ActorID(c))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "lease updated",
		dto.ToLeaseResponse(*lease, helper.DateOnly(time.Now())))
}

// =======================================================
// TRANSITIONS — POST /leases/:id/{submit,amend,renew,terminate}
// =======================================================

func (ctrl *LeaseController) Submit(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}

	lease, err := service.SubmitLease(ctrl.DB, id, time.Now(), helper.ActorID(c))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "lease submitted",
		dto.ToLeaseResponse(*lease, helper.DateOnly(time.Now())))
}

func (ctrl *LeaseController) Amend(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}

	var req dto.LeaseAmendDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	amendment, err := service.AmendLease(ctrl.DB, id, req, helper.DateOnly(time.Now()), helper.ActorID(c))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "lease amended", dto.ToLeaseAmendmentResponse(*amendment))
}

func (ctrl *LeaseController) Renew(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}

	var req dto.LeaseRenewDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	lease, err := service.RenewLease(ctrl.DB, id, req, helper.DateOnly(time.Now()), helper.ActorID(c))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "lease renewed",
		dto.ToLeaseResponse(*lease, helper.DateOnly(time.Now())))
}

func (ctrl *LeaseController) Terminate(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}

	var req dto.LeaseTerminateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	lease, err := service.TerminateLease(ctrl.DB, id, req, time.Now(), helper.ActorID(c))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "lease terminated",
		dto.ToLeaseResponse(*lease, helper.DateOnly(time.Now())))
}

// =======================================================
// PRORATION — POST /leases/:id/calculate-proration
// =======================================================

// CalculateProration is a pure computation on the lease's monthly rent.
// Nothing is persisted; callers pair it with terminate when settling.
func (ctrl *LeaseController) CalculateProration(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}

	var req dto.ProrationRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	terminationDate, err := helper.ParseDate(req.TerminationDate)
	if err != nil {
		return helper.FromError(c, err)
	}

	lease, err := service.GetLease(ctrl.DB, id)
	if err != nil {
		return helper.FromError(c, err)
	}

	result, err := service.CalculateProration(lease.LeaseMonthlyRent, terminationDate)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "proration calculated", dto.ProrationResponse{
		ProratedAmount: result.ProratedAmount,
		MonthlyRent:    result.MonthlyRent,
		DaysUsed:       result.DaysUsed,
		DaysInMonth:    result.DaysInMonth,
	})
}

// =======================================================
// AMENDMENTS — GET /leases/:id/amendments
// =======================================================

func (ctrl *LeaseController) GetAmendments(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	if _, err := service.GetLease(ctrl.DB, id); err != nil {
		return helper.FromError(c, err)
	}

	var amendments []model.LeaseAmendmentModel
	if err := ctrl.DB.
		Where("amendment_lease_id = ?", id).
		Order("amendment_effective_date ASC, amendment_id ASC").
		Find(&amendments).Error; err != nil {
		return helper.FromError(c, err)
	}

	out := make([]dto.LeaseAmendmentResponse, 0, len(amendments))
	for i := range amendments {
		out = append(out, dto.ToLeaseAmendmentResponse(amendments[i]))
	}
	return helper.JsonOK(c, "amendments fetched", out)
}
