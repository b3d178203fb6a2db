// file: internals/features/rental/rooms/controller/room_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	buildingModel "rentalku_backend/internals/features/rental/buildings/model"
	leaseModel "rentalku_backend/internals/features/rental/leases/model"
	"rentalku_backend/internals/features/rental/rooms/dto"
	"rentalku_backend/internals/features/rental/rooms/model"
	helper "rentalku_backend/internals/helpers"
)

type RoomController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewRoomController(db *gorm.DB) *RoomController {
	return &RoomController{DB: db, Validator: validator.New()}
}

func (ctrl *RoomController) Create(c *fiber.Ctx) error {
	var req dto.RoomCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var building buildingModel.BuildingModel
	if err := ctrl.DB.First(&building, "building_id = ?", req.BuildingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "building not found")
		}
		return helper.FromError(c, err)
	}

	room := model.RoomModel{
		RoomBuildingID: req.BuildingID,
		RoomFloorNo:    req.FloorNo,
		RoomNo:         req.RoomNo,
		RoomSizePing:   req.SizePing,
		RoomCreatedBy:  helper.ActorID(c),
	}
	if err := ctrl.DB.Create(&room).Error; err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "room created", dto.ToRoomResponse(&room))
}

func (ctrl *RoomController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.RoomModel{})
	if raw := c.QueryInt("building_id"); raw > 0 {
		q = q.Where("room_building_id = ?", raw)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.FromError(c, err)
	}

	var rooms []model.RoomModel
	if err := q.
		Order("room_building_id ASC, room_floor_no ASC, room_no ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rooms).Error; err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "rooms fetched",
		dto.ToRoomResponses(rooms),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *RoomController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}

	var room model.RoomModel
	if err := ctrl.DB.First(&room, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "room not found")
		}
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "room fetched", dto.ToRoomResponse(&room))
}

func (ctrl *RoomController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}

	var req dto.RoomUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var room model.RoomModel
	if err := ctrl.DB.First(&room, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "room not found")
		}
		return helper.FromError(c, err)
	}

	if req.FloorNo != nil {
		room.RoomFloorNo = *req.FloorNo
	}
	if req.RoomNo != nil {
		room.RoomNo = *req.RoomNo
	}
	if req.SizePing != nil {
		room.RoomSizePing = req.SizePing
	}
	room.RoomUpdatedBy = helper.ActorID(c)

	if err := ctrl.DB.Save(&room).Error; err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "room updated", dto.ToRoomResponse(&room))
}

// GetOccupancy lists rooms with their tenancy state on a reference date
// (?date=YYYY-MM-DD, default today). A room is occupied when a submitted,
// non-terminated lease covers the date.
func (ctrl *RoomController) GetOccupancy(c *fiber.Ctx) error {
	date, err := helper.ParseDateQuery(c, "date", helper.DateOnly(time.Now()))
	if err != nil {
		return helper.FromError(c, err)
	}

	q := ctrl.DB.Model(&model.RoomModel{})
	if raw := c.QueryInt("building_id"); raw > 0 {
		q = q.Where("room_building_id = ?", raw)
	}

	var rooms []model.RoomModel
	if err := q.
		Order("room_building_id ASC, room_floor_no ASC, room_no ASC").
		Find(&rooms).Error; err != nil {
		return helper.FromError(c, err)
	}

	roomIDs := make([]int64, 0, len(rooms))
	for _, r := range rooms {
		roomIDs = append(roomIDs, r.RoomID)
	}

	// One query for the whole listing: all leases covering the date.
	occupied := map[int64]int64{} // room_id -> lease_id
	if len(roomIDs) > 0 {
		var leases []leaseModel.LeaseModel
		if err := ctrl.DB.
			Where("lease_room_id IN ?", roomIDs).
			Where("lease_submitted_at IS NOT NULL").
			Where("lease_terminated_at IS NULL").
			Where("lease_start_date <= ? AND lease_end_date >= ?", date, date).
			Find(&leases).Error; err != nil {
			return helper.FromError(c, err)
		}
		for _, l := range leases {
			occupied[l.LeaseRoomID] = l.LeaseID
		}
	}

	out := make([]dto.RoomOccupancyResponse, 0, len(rooms))
	for i := range rooms {
		entry := dto.RoomOccupancyResponse{RoomResponse: dto.ToRoomResponse(&rooms[i])}
		if leaseID, ok := occupied[rooms[i].RoomID]; ok {
			entry.Occupied = true
			entry.CurrentLeaseID = &leaseID
		}
		out = append(out, entry)
	}
	return helper.JsonOK(c, "room occupancy fetched", out)
}
