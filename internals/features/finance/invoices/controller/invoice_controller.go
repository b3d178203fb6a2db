// file: internals/features/finance/invoices/controller/invoice_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/finance/invoices/dto"
	"rentalku_backend/internals/features/finance/invoices/model"
	"rentalku_backend/internals/features/finance/invoices/service"
	leaseModel "rentalku_backend/internals/features/rental/leases/model"
	helper "rentalku_backend/internals/helpers"
)

type InvoiceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewInvoiceController(db *gorm.DB) *InvoiceController {
	return &InvoiceController{DB: db, Validator: validator.New()}
}

// =======================================================
// CRUD — /invoices
// =======================================================

func (ctrl *InvoiceController) Create(c *fiber.Ctx) error {
	var req dto.InvoiceCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.DueAmount.IsNegative() {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "due_amount cannot be negative")
	}

	periodStart, err := helper.ParseDate(req.PeriodStart)
	if err != nil {
		return helper.FromError(c, err)
	}
	periodEnd, err := helper.ParseDate(req.PeriodEnd)
	if err != nil {
		return helper.FromError(c, err)
	}
	dueDate, err := helper.ParseDate(req.DueDate)
	if err != nil {
		return helper.FromError(c, err)
	}
	if periodEnd.Before(periodStart) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "period_end cannot be before period_start")
	}

	var lease leaseModel.LeaseModel
	if err := ctrl.DB.First(&lease, "lease_id = ?", req.LeaseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "lease not found")
		}
		return helper.FromError(c, err)
	}

	status := model.PaymentStatusUnmatured
	if req.Status != nil {
		status = model.PaymentStatus(*req.Status)
	}

	invoice, err := service.CreateInvoice(ctrl.DB, req.LeaseID, model.InvoiceCategory(req.Category),
		periodStart, periodEnd, dueDate, req.DueAmount, status, helper.ActorID(c))
	if err != nil {
		if errors.Is(err, service.ErrDuplicatePeriod) {
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		}
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "invoice created", dto.ToInvoiceResponse(invoice))
}

func (ctrl *InvoiceController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.InvoiceModel{})
	if raw := c.QueryInt("lease_id"); raw > 0 {
		q = q.Where("invoice_lease_id = ?", raw)
	}
	if raw := c.Query("status"); raw != "" {
		if !model.PaymentStatus(raw).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid status filter")
		}
		q = q.Where("invoice_status = ?", raw)
	}
	if raw := c.Query("category"); raw != "" {
		if !model.InvoiceCategory(raw).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid category filter")
		}
		q = q.Where("invoice_category = ?", raw)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.FromError(c, err)
	}

	var invoices []model.InvoiceModel
	if err := q.Order("invoice_period_start DESC, invoice_id DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&invoices).Error; err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "invoices fetched",
		dto.ToInvoiceResponses(invoices),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *InvoiceController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}

	var invoice model.InvoiceModel
	if err := ctrl.DB.First(&invoice, "invoice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "invoice not found")
		}
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "invoice fetched", dto.ToInvoiceResponse(&invoice))
}

func (ctrl *InvoiceController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}

	var req dto.InvoiceUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var invoice model.InvoiceModel
	if err := ctrl.DB.First(&invoice, "invoice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "invoice not found")
		}
		return helper.FromError(c, err)
	}

	if req.DueDate != nil {
		dueDate, err := helper.ParseDate(*req.DueDate)
		if err != nil {
			return helper.FromError(c, err)
		}
		invoice.InvoiceDueDate = dueDate
	}
	if req.DueAmount != nil {
		if req.DueAmount.IsNegative() {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "due_amount cannot be negative")
		}
		invoice.InvoiceDueAmount = *req.DueAmount
	}
	if req.PaidAmount != nil {
		if req.PaidAmount.IsNegative() {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "paid_amount cannot be negative")
		}
		invoice.InvoicePaidAmount = *req.PaidAmount
	}
	if req.Status != nil {
		invoice.InvoiceStatus = model.PaymentStatus(*req.Status)
	}
	invoice.InvoiceUpdatedBy = helper.ActorID(c)

	if err := ctrl.DB.Save(&invoice).Error; err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "invoice updated", dto.ToInvoiceResponse(&invoice))
}

// =======================================================
// CALCULATORS — pure, nothing persisted
// =======================================================

func termMonths(term string) int {
	return leaseModel.PaymentTerm(term).Months()
}

func (ctrl *InvoiceController) CalculateRent(c *fiber.Ctx) error {
	var req dto.RentAmountRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	discount := decimal.Zero
	if req.Discount != nil {
		discount = *req.Discount
	}

	months := termMonths(req.PaymentTerm)
	amount, err := service.CalculateRentAmount(req.MonthlyRent, months, discount)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	return helper.JsonOK(c, "rent amount calculated", dto.RentAmountResponse{
		Amount:      amount,
		TermMonths:  months,
		MonthlyRent: req.MonthlyRent,
	})
}

func (ctrl *InvoiceController) CalculatePeriodEnd(c *fiber.Ctx) error {
	var req dto.PeriodEndRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	periodStart, err := helper.ParseDate(req.PeriodStart)
	if err != nil {
		return helper.FromError(c, err)
	}

	periodEnd, err := service.CalculatePeriodEnd(periodStart, termMonths(req.PaymentTerm))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	return helper.JsonOK(c, "period end calculated", dto.PeriodEndResponse{
		PeriodStart: req.PeriodStart,
		PeriodEnd:   helper.FormatDate(periodEnd),
	})
}

func (ctrl *InvoiceController) FormatRentNote(c *fiber.Ctx) error {
	var req dto.RentNoteRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	return helper.JsonOK(c, "rent note formatted", dto.RentNoteResponse{
		Note: service.FormatRentNote(req.BaseNote, req.Discount),
	})
}
