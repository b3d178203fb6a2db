// file: internals/features/rental/electricity/dto/electricity_dto.go
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"rentalku_backend/internals/features/rental/electricity/model"
)

////////////////////////////////////////////////////////////////////////////////
// REQUESTS
////////////////////////////////////////////////////////////////////////////////

// RateCreateDTO scopes a tariff to exactly one of room_id or building_id.
// A room-level rate shadows the building rate for its validity window.
type RateCreateDTO struct {
	RoomID     *int64 `json:"room_id,omitempty"`
	BuildingID *int64 `json:"building_id,omitempty"`

	StartDate  string          `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string          `json:"end_date" validate:"required,datetime=2006-01-02"`
	RatePerKwh decimal.Decimal `json:"rate_per_kwh" validate:"required"`
}

type ReadingUpsertDTO struct {
	RoomID      int64           `json:"room_id" validate:"required,min=1"`
	ReadingDate string          `json:"reading_date" validate:"required,datetime=2006-01-02"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
}

type BillRequestDTO struct {
	RoomID         int64           `json:"room_id" validate:"required,min=1"`
	CurrentReading decimal.Decimal `json:"current_reading" validate:"required"`
	ReadingDate    string          `json:"reading_date" validate:"required,datetime=2006-01-02"`
	// Fallback rate per kWh when no rate row covers the date.
	DefaultRatePerKwh *decimal.Decimal `json:"default_rate_per_kwh,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// RESPONSES
////////////////////////////////////////////////////////////////////////////////

type RateResponse struct {
	RateID     int64           `json:"rate_id"`
	RoomID     *int64          `json:"room_id,omitempty"`
	BuildingID *int64          `json:"building_id,omitempty"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	RatePerKwh decimal.Decimal `json:"rate_per_kwh"`
	CreatedAt  time.Time       `json:"created_at"`
}

type ReadingResponse struct {
	ReadingID   int64           `json:"reading_id"`
	RoomID      int64           `json:"room_id"`
	ReadingDate string          `json:"reading_date"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type BillResponse struct {
	RoomID          int64           `json:"room_id"`
	UsageKwh        decimal.Decimal `json:"usage_kwh"`
	RatePerKwh      decimal.Decimal `json:"rate_per_kwh"`
	Amount          decimal.Decimal `json:"amount"`
	PreviousReading decimal.Decimal `json:"previous_reading"`
	PreviousDate    string          `json:"previous_date"`
	ReadingDate     string          `json:"reading_date"`
}

func ToRateResponse(m *model.ElectricityRateModel) RateResponse {
	return RateResponse{
		RateID:     m.RateID,
		RoomID:     m.RateRoomID,
		BuildingID: m.RateBuildingID,
		StartDate:  m.RateStartDate.Format("2006-01-02"),
		EndDate:    m.RateEndDate.Format("2006-01-02"),
		RatePerKwh: m.RatePerKwh,
		CreatedAt:  m.RateCreatedAt,
	}
}

func ToRateResponses(models []model.ElectricityRateModel) []RateResponse {
	out := make([]RateResponse, 0, len(models))
	for i := range models {
		out = append(out, ToRateResponse(&models[i]))
	}
	return out
}

func ToReadingResponse(m *model.MeterReadingModel) ReadingResponse {
	return ReadingResponse{
		ReadingID:   m.ReadingID,
		RoomID:      m.ReadingRoomID,
		ReadingDate: m.ReadingDate.Format("2006-01-02"),
		Amount:      m.ReadingAmount,
		CreatedAt:   m.ReadingCreatedAt,
		UpdatedAt:   m.ReadingUpdatedAt,
	}
}

func ToReadingResponses(models []model.MeterReadingModel) []ReadingResponse {
	out := make([]ReadingResponse, 0, len(models))
	for i := range models {
		out = append(out, ToReadingResponse(&models[i]))
	}
	return out
}
