// file: internals/features/rental/buildings/controller/building_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/rental/buildings/dto"
	"rentalku_backend/internals/features/rental/buildings/model"
	helper "rentalku_backend/internals/helpers"
)

type BuildingController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewBuildingController(db *gorm.DB) *BuildingController {
	return &BuildingController{DB: db, Validator: validator.New()}
}

func (ctrl *BuildingController) Create(c *fiber.Ctx) error {
	var req dto.BuildingCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	building := model.BuildingModel{
		BuildingNo:              req.BuildingNo,
		BuildingAddress:         req.Address,
		BuildingLandlordName:    req.LandlordName,
		BuildingLandlordAddress: req.LandlordAddress,
		BuildingCreatedBy:       helper.ActorID(c),
	}
	if err := ctrl.DB.Create(&building).Error; err != nil {
		if isDuplicate(err) {
			return helper.JsonError(c, fiber.StatusConflict, "building_no already exists")
		}
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "building created", dto.ToBuildingResponse(&building))
}

func (ctrl *BuildingController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.BuildingModel{}).Count(&total).Error; err != nil {
		return helper.FromError(c, err)
	}

	var buildings []model.BuildingModel
	if err := ctrl.DB.
		Order("building_no ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&buildings).Error; err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "buildings fetched",
		dto.ToBuildingResponses(buildings),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *BuildingController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}

	var building model.BuildingModel
	if err := ctrl.DB.First(&building, "building_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "building not found")
		}
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "building fetched", dto.ToBuildingResponse(&building))
}

func (ctrl *BuildingController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}

	var req dto.BuildingUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var building model.BuildingModel
	if err := ctrl.DB.First(&building, "building_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "building not found")
		}
		return helper.FromError(c, err)
	}

	if req.BuildingNo != nil {
		building.BuildingNo = *req.BuildingNo
	}
	if req.Address != nil {
		building.BuildingAddress = *req.Address
	}
	if req.LandlordName != nil {
		building.BuildingLandlordName = req.LandlordName
	}
	if req.LandlordAddress != nil {
		building.BuildingLandlordAddress = req.LandlordAddress
	}
	building.BuildingUpdatedBy = helper.ActorID(c)

	if err := ctrl.DB.Save(&building).Error; err != nil {
		if isDuplicate(err) {
			return helper.JsonError(c, fiber.StatusConflict, "building_no already exists")
		}
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "building updated", dto.ToBuildingResponse(&building))
}

func (ctrl *BuildingController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}

	res := ctrl.DB.Delete(&model.BuildingModel{}, "building_id = ?", id)
	if res.Error != nil {
		return helper.FromError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "building not found")
	}
	return helper.JsonDeleted(c, "building deleted", fiber.Map{"building_id": id})
}

func isDuplicate(err error) bool {
	return err != nil &&
		(strings.Contains(err.Error(), "duplicate key value") ||
			strings.Contains(err.Error(), "UNIQUE constraint"))
}
