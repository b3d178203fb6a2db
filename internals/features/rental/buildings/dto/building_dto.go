// file: internals/features/rental/buildings/dto/building_dto.go
package dto

import (
	"time"

	"rentalku_backend/internals/features/rental/buildings/model"
)

////////////////////////////////////////////////////////////////////////////////
// REQUESTS
////////////////////////////////////////////////////////////////////////////////

type BuildingCreateDTO struct {
	BuildingNo      int     `json:"building_no" validate:"required,min=1"`
	Address         string  `json:"address" validate:"required"`
	LandlordName    *string `json:"landlord_name,omitempty"`
	LandlordAddress *string `json:"landlord_address,omitempty"`
}

type BuildingUpdateDTO struct {
	BuildingNo      *int    `json:"building_no,omitempty" validate:"omitempty,min=1"`
	Address         *string `json:"address,omitempty"`
	LandlordName    *string `json:"landlord_name,omitempty"`
	LandlordAddress *string `json:"landlord_address,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// RESPONSES
////////////////////////////////////////////////////////////////////////////////

type BuildingResponse struct {
	BuildingID      int64     `json:"building_id"`
	BuildingNo      int       `json:"building_no"`
	Address         string    `json:"address"`
	LandlordName    *string   `json:"landlord_name,omitempty"`
	LandlordAddress *string   `json:"landlord_address,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ToBuildingResponse(m *model.BuildingModel) BuildingResponse {
	return BuildingResponse{
		BuildingID:      m.BuildingID,
		BuildingNo:      m.BuildingNo,
		Address:         m.BuildingAddress,
		LandlordName:    m.BuildingLandlordName,
		LandlordAddress: m.BuildingLandlordAddress,
		CreatedAt:       m.BuildingCreatedAt,
		UpdatedAt:       m.BuildingUpdatedAt,
	}
}

func ToBuildingResponses(models []model.BuildingModel) []BuildingResponse {
	out := make([]BuildingResponse, 0, len(models))
	for i := range models {
		out = append(out, ToBuildingResponse(&models[i]))
	}
	return out
}
