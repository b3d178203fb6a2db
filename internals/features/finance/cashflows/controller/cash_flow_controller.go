// file: internals/features/finance/cashflows/controller/cash_flow_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/finance/cashflows/dto"
	"rentalku_backend/internals/features/finance/cashflows/model"
	leaseModel "rentalku_backend/internals/features/rental/leases/model"
	helper "rentalku_backend/internals/helpers"
)

type CashFlowController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCashFlowController(db *gorm.DB) *CashFlowController {
	return &CashFlowController{DB: db, Validator: validator.New()}
}

// =======================================================
// CATEGORIES — /cash-flows/categories
// =======================================================

func (ctrl *CashFlowController) CreateCategory(c *fiber.Ctx) error {
	var req dto.CashFlowCategoryCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	category := model.CashFlowCategoryModel{
		CategoryCode:        req.Code,
		CategoryName:        req.Name,
		CategoryDirection:   model.CashDirection(req.Direction),
		CategoryDescription: req.Description,
	}
	if err := ctrl.DB.Create(&category).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key value") ||
			strings.Contains(err.Error(), "UNIQUE constraint") {
			return helper.JsonError(c, fiber.StatusConflict, "category code already exists")
		}
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "cash flow category created", dto.ToCategoryResponse(&category))
}

func (ctrl *CashFlowController) GetCategories(c *fiber.Ctx) error {
	var categories []model.CashFlowCategoryModel
	if err := ctrl.DB.Order("category_code ASC").Find(&categories).Error; err != nil {
		return helper.FromError(c, err)
	}
	out := make([]dto.CashFlowCategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, dto.ToCategoryResponse(&categories[i]))
	}
	return helper.JsonOK(c, "cash flow categories fetched", out)
}

// =======================================================
// ACCOUNTS — /cash-flows/accounts
// =======================================================

func (ctrl *CashFlowController) CreateAccount(c *fiber.Ctx) error {
	var req dto.CashAccountCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	account := model.CashAccountModel{
		AccountName: req.Name,
		AccountType: model.CashAccountType(req.Type),
		AccountNote: req.Note,
	}
	if err := ctrl.DB.Create(&account).Error; err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "cash account created", dto.ToAccountResponse(&account))
}

func (ctrl *CashFlowController) GetAccounts(c *fiber.Ctx) error {
	var accounts []model.CashAccountModel
	if err := ctrl.DB.Order("account_id ASC").Find(&accounts).Error; err != nil {
		return helper.FromError(c, err)
	}
	out := make([]dto.CashAccountResponse, 0, len(accounts))
	for i := range accounts {
		out = append(out, dto.ToAccountResponse(&accounts[i]))
	}
	return helper.JsonOK(c, "cash accounts fetched", out)
}

// =======================================================
// CASH FLOWS — /cash-flows
// =======================================================

func (ctrl *CashFlowController) Create(c *fiber.Ctx) error {
	var req dto.CashFlowCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Amount.IsNegative() {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "amount cannot be negative")
	}

	date, err := helper.ParseDate(req.Date)
	if err != nil {
		return helper.FromError(c, err)
	}

	var flow model.CashFlowModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var category model.CashFlowCategoryModel
		if err := tx.First(&category, "category_id = ?", req.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "cash flow category not found")
			}
			return err
		}
		var account model.CashAccountModel
		if err := tx.First(&account, "account_id = ?", req.AccountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "cash account not found")
			}
			return err
		}
		if req.LeaseID != nil {
			var lease leaseModel.LeaseModel
			if err := tx.First(&lease, "lease_id = ?", *req.LeaseID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusNotFound, "lease not found")
				}
				return err
			}
		}

		flow = model.CashFlowModel{
			CashFlowCategoryID:    req.CategoryID,
			CashFlowAccountID:     req.AccountID,
			CashFlowLeaseID:       req.LeaseID,
			CashFlowBuildingID:    req.BuildingID,
			CashFlowRoomID:        req.RoomID,
			CashFlowInvoiceID:     req.InvoiceID,
			CashFlowDate:          date,
			CashFlowAmount:        req.Amount,
			CashFlowPaymentMethod: model.PaymentMethod(req.PaymentMethod),
			CashFlowNote:          req.Note,
			CashFlowCreatedBy:     helper.ActorID(c),
		}
		if err := tx.Create(&flow).Error; err != nil {
			return err
		}

		for _, url := range req.AttachmentURLs {
			att := model.CashFlowAttachmentModel{
				AttachmentCashFlowID: flow.CashFlowID,
				AttachmentFileURL:    url,
			}
			if err := tx.Create(&att).Error; err != nil {
				return err
			}
		}

		return tx.Preload("Attachments").First(&flow, "cash_flow_id = ?", flow.CashFlowID).Error
	})
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "cash flow recorded", dto.ToCashFlowResponse(&flow))
}

func (ctrl *CashFlowController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.CashFlowModel{})
	if raw := c.QueryInt("lease_id"); raw > 0 {
		q = q.Where("cash_flow_lease_id = ?", raw)
	}
	if raw := c.QueryInt("category_id"); raw > 0 {
		q = q.Where("cash_flow_category_id = ?", raw)
	}
	if raw := c.QueryInt("account_id"); raw > 0 {
		q = q.Where("cash_flow_account_id = ?", raw)
	}
	if from, err := helper.ParseDateQuery(c, "from", time.Time{}); err != nil {
		return helper.FromError(c, err)
	} else if !from.IsZero() {
		q = q.Where("cash_flow_date >= ?", from)
	}
	if to, err := helper.ParseDateQuery(c, "to", time.Time{}); err != nil {
		return helper.FromError(c, err)
	} else if !to.IsZero() {
		q = q.Where("cash_flow_date <= ?", to)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.FromError(c, err)
	}

	var flows []model.CashFlowModel
	if err := q.Preload("Attachments").
		Order("cash_flow_date DESC, cash_flow_id DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&flows).Error; err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "cash flows fetched",
		dto.ToCashFlowResponses(flows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *CashFlowController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}

	var flow model.CashFlowModel
	if err := ctrl.DB.Preload("Attachments").
		First(&flow, "cash_flow_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "cash flow not found")
		}
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "cash flow fetched", dto.ToCashFlowResponse(&flow))
}

func (ctrl *CashFlowController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}

	var req dto.CashFlowUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var flow model.CashFlowModel
	if err := ctrl.DB.First(&flow, "cash_flow_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "cash flow not found")
		}
		return helper.FromError(c, err)
	}

	if req.CategoryID != nil {
		flow.CashFlowCategoryID = *req.CategoryID
	}
	if req.AccountID != nil {
		flow.CashFlowAccountID = *req.AccountID
	}
	if req.Date != nil {
		date, err := helper.ParseDate(*req.Date)
		if err != nil {
			return helper.FromError(c, err)
		}
		flow.CashFlowDate = date
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "amount cannot be negative")
		}
		flow.CashFlowAmount = *req.Amount
	}
	if req.PaymentMethod != nil {
		flow.CashFlowPaymentMethod = model.PaymentMethod(*req.PaymentMethod)
	}
	if req.Note != nil {
		flow.CashFlowNote = req.Note
	}
	flow.CashFlowUpdatedBy = helper.ActorID(c)

	if err := ctrl.DB.Save(&flow).Error; err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "cash flow updated", dto.ToCashFlowResponse(&flow))
}

func (ctrl *CashFlowController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}

	res := ctrl.DB.Delete(&model.CashFlowModel{}, "cash_flow_id = ?", id)
	if res.Error != nil {
		return helper.FromError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "cash flow not found")
	}
	return helper.JsonDeleted(c, "cash flow deleted", fiber.Map{"cash_flow_id": id})
}
