// file: internals/features/rental/tenants/controller/tenant_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/rental/tenants/dto"
	"rentalku_backend/internals/features/rental/tenants/model"
	"rentalku_backend/internals/features/rental/tenants/service"
	helper "rentalku_backend/internals/helpers"
)

type TenantController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTenantController(db *gorm.DB) *TenantController {
	return &TenantController{DB: db, Validator: validator.New()}
}

// Create upserts by personal_id: posting an existing tenant's personal_id
// refreshes their demographics instead of failing on the unique index.
func (ctrl *TenantController) Create(c *fiber.Ctx) error {
	var req dto.TenantUpsertDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var tenant *model.TenantModel
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		tenant, err = service.ResolveOrCreate(tx, req, helper.ActorID(c))
		return err
	})
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "tenant saved", dto.ToTenantResponse(*tenant))
}

func (ctrl *TenantController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.TenantModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"tenant_first_name LIKE ? OR tenant_last_name LIKE ? OR tenant_phone LIKE ? OR tenant_personal_id LIKE ?",
			like, like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.FromError(c, err)
	}

	var tenants []model.TenantModel
	if err := q.Preload("EmergencyContacts").
		Order("tenant_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&tenants).Error; err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "tenants fetched",
		dto.ToTenantResponses(tenants),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *TenantController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}

	var tenant model.TenantModel
	if err := ctrl.DB.Preload("EmergencyContacts").
		First(&tenant, "tenant_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "tenant not found")
		}
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "tenant fetched", dto.ToTenantResponse(tenant))
}

func (ctrl *TenantController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}

	var req dto.TenantUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var tenant *model.TenantModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		tenant, err = service.UpdateTenant(tx, id, req, helper.ActorID(c))
		return err
	})
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "tenant updated", dto.ToTenantResponse(*tenant))
}
