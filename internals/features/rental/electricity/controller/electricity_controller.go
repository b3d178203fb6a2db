// file: internals/features/rental/electricity/controller/electricity_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"rentalku_backend/internals/configs"
	buildingModel "rentalku_backend/internals/features/rental/buildings/model"
	"rentalku_backend/internals/features/rental/electricity/dto"
	"rentalku_backend/internals/features/rental/electricity/model"
	"rentalku_backend/internals/features/rental/electricity/service"
	roomModel "rentalku_backend/internals/features/rental/rooms/model"
	helper "rentalku_backend/internals/helpers"
)

type ElectricityController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewElectricityController(db *gorm.DB) *ElectricityController {
	return &ElectricityController{DB: db, Validator: validator.New()}
}

// =======================================================
// RATES — POST /electricity/rates, GET /electricity/rates
// =======================================================

func (ctrl *ElectricityController) CreateRate(c *fiber.Ctx) error {
	var req dto.RateCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Exactly one scope: room-level shadows building-level.
	if (req.RoomID == nil) == (req.BuildingID == nil) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			"exactly one of room_id or building_id is required")
	}
	if req.RatePerKwh.IsNegative() {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "rate_per_kwh cannot be negative")
	}

	startDate, err := helper.ParseDate(req.StartDate)
	if err != nil {
		return helper.FromError(c, err)
	}
	endDate, err := helper.ParseDate(req.EndDate)
	if err != nil {
		return helper.FromError(c, err)
	}
	if endDate.Before(startDate) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "end_date cannot be before start_date")
	}

	if req.RoomID != nil {
		var room roomModel.RoomModel
		if err := ctrl.DB.First(&room, "room_id = ?", *req.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "room not found")
			}
			return helper.FromError(c, err)
		}
	} else {
		var building buildingModel.BuildingModel
		if err := ctrl.DB.First(&building, "building_id = ?", *req.BuildingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "building not found")
			}
			return helper.FromError(c, err)
		}
	}

	rate := model.ElectricityRateModel{
		RateRoomID:     req.RoomID,
		RateBuildingID: req.BuildingID,
		RateStartDate:  startDate,
		RateEndDate:    endDate,
		RatePerKwh:     req.RatePerKwh,
		RateCreatedBy:  helper.ActorID(c),
	}
	if err := ctrl.DB.Create(&rate).Error; err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "electricity rate created", dto.ToRateResponse(&rate))
}

func (ctrl *ElectricityController) GetRates(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.ElectricityRateModel{})
	if raw := c.QueryInt("room_id"); raw > 0 {
		q = q.Where("rate_room_id = ?", raw)
	}
	if raw := c.QueryInt("building_id"); raw > 0 {
		q = q.Where("rate_building_id = ?", raw)
	}

	var rates []model.ElectricityRateModel
	if err := q.Order("rate_start_date DESC").Find(&rates).Error; err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "electricity rates fetched", dto.ToRateResponses(rates))
}

func (ctrl *ElectricityController) DeleteRate(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}

	res := ctrl.DB.Delete(&model.ElectricityRateModel{}, "rate_id = ?", id)
	if res.Error != nil {
		return helper.FromError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "electricity rate not found")
	}
	return helper.JsonDeleted(c, "electricity rate deleted", fiber.Map{"rate_id": id})
}

// =======================================================
// READINGS — POST /electricity/readings, GET /electricity/readings
// =======================================================

// UpsertReading records a meter value; a repeated (room, date) pair
// overwrites the stored amount instead of conflicting.
func (ctrl *ElectricityController) UpsertReading(c *fiber.Ctx) error {
	var req dto.ReadingUpsertDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Amount.IsNegative() {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "amount cannot be negative")
	}

	readingDate, err := helper.ParseDate(req.ReadingDate)
	if err != nil {
		return helper.FromError(c, err)
	}

	var room roomModel.RoomModel
	if err := ctrl.DB.First(&room, "room_id = ?", req.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "room not found")
		}
		return helper.FromError(c, err)
	}

	reading, err := service.RecordReading(ctrl.DB, req.RoomID, readingDate, req.Amount, helper.ActorID(c))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "meter reading recorded", dto.ToReadingResponse(reading))
}

func (ctrl *ElectricityController) GetReadings(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.MeterReadingModel{})
	if raw := c.QueryInt("room_id"); raw > 0 {
		q = q.Where("reading_room_id = ?", raw)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.FromError(c, err)
	}

	var readings []model.MeterReadingModel
	if err := q.Order("reading_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&readings).Error; err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "meter readings fetched",
		dto.ToReadingResponses(readings),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================================================
// BILLING — POST /electricity/calculate-bill
// =======================================================

// CalculateBill previews a bill for a prospective reading. Pure computation;
// the reading itself is not stored.
func (ctrl *ElectricityController) CalculateBill(c *fiber.Ctx) error {
	var req dto.BillRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	readingDate, err := helper.ParseDate(req.ReadingDate)
	if err != nil {
		return helper.FromError(c, err)
	}

	defaultRate := req.DefaultRatePerKwh
	if defaultRate == nil {
		if parsed, perr := decimal.NewFromString(configs.DefaultElectricityRate); perr == nil {
			defaultRate = &parsed
		}
	}

	bill, err := service.CalculateBill(ctrl.DB, req.RoomID, req.CurrentReading, readingDate, defaultRate)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "electricity bill calculated", dto.BillResponse{
		RoomID:          req.RoomID,
		UsageKwh:        bill.UsageKwh,
		RatePerKwh:      bill.RatePerKwh,
		Amount:          bill.Amount,
		PreviousReading: bill.PreviousValue,
		PreviousDate:    bill.PreviousDate.Format(helper.DateLayout),
		ReadingDate:     bill.ReadingDate.Format(helper.DateLayout),
	})
}
