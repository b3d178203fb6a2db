// file: internals/features/rental/rooms/dto/room_dto.go
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"rentalku_backend/internals/features/rental/rooms/model"
)

////////////////////////////////////////////////////////////////////////////////
// REQUESTS
////////////////////////////////////////////////////////////////////////////////

type RoomCreateDTO struct {
	BuildingID int64            `json:"building_id" validate:"required,min=1"`
	FloorNo    int              `json:"floor_no" validate:"required,min=1"`
	RoomNo     string           `json:"room_no" validate:"required,max=8"`
	SizePing   *decimal.Decimal `json:"size_ping,omitempty"`
}

type RoomUpdateDTO struct {
	FloorNo  *int             `json:"floor_no,omitempty" validate:"omitempty,min=1"`
	RoomNo   *string          `json:"room_no,omitempty" validate:"omitempty,max=8"`
	SizePing *decimal.Decimal `json:"size_ping,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// RESPONSES
////////////////////////////////////////////////////////////////////////////////

type RoomResponse struct {
	RoomID     int64            `json:"room_id"`
	BuildingID int64            `json:"building_id"`
	FloorNo    int              `json:"floor_no"`
	RoomNo     string           `json:"room_no"`
	SizePing   *decimal.Decimal `json:"size_ping,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// RoomOccupancyResponse is the room enriched with its tenancy state on a
// reference date: occupied when a submitted, non-terminated lease covers it.
type RoomOccupancyResponse struct {
	RoomResponse
	Occupied       bool   `json:"occupied"`
	CurrentLeaseID *int64 `json:"current_lease_id,omitempty"`
}

func ToRoomResponse(m *model.RoomModel) RoomResponse {
	return RoomResponse{
		RoomID:     m.RoomID,
		BuildingID: m.RoomBuildingID,
		FloorNo:    m.RoomFloorNo,
		RoomNo:     m.RoomNo,
		SizePing:   m.RoomSizePing,
		CreatedAt:  m.RoomCreatedAt,
		UpdatedAt:  m.RoomUpdatedAt,
	}
}

func ToRoomResponses(models []model.RoomModel) []RoomResponse {
	out := make([]RoomResponse, 0, len(models))
	for i := range models {
		out = append(out, ToRoomResponse(&models[i]))
	}
	return out
}
