// file: internals/features/rental/electricity/service/electricity_service.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	emodel "rentalku_backend/internals/features/rental/electricity/model"
	roommodel "rentalku_backend/internals/features/rental/rooms/model"
)

// Functions take the caller's *gorm.DB so they run inside whatever
// transaction the caller owns (lease termination bills inside its own tx).

// RateFor resolves the applicable rate per kWh for a room on a date.
// Resolution order: room-specific rate, then building-level rate, then nil.
func RateFor(db *gorm.DB, roomID int64, date time.Time) (*emodel.ElectricityRateModel, error) {
	var room roommodel.RoomModel
	if err := db.First(&room, "room_id = ?", roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("room %d not found", roomID))
		}
		return nil, err
	}

	var roomRate emodel.ElectricityRateModel
	err := db.
		Where("rate_room_id = ? AND rate_start_date <= ? AND rate_end_date >= ?", roomID, date, date).
		Order("rate_start_date DESC").
		First(&roomRate).Error
	if err == nil {
		return &roomRate, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var buildingRate emodel.ElectricityRateModel
	err = db.
		Where("rate_room_id IS NULL AND rate_building_id = ? AND rate_start_date <= ? AND rate_end_date >= ?",
			room.RoomBuildingID, date, date).
		Order("rate_start_date DESC").
		First(&buildingRate).Error
	if err == nil {
		return &buildingRate, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return nil, err
}

// LatestReadingBefore returns the most recent reading strictly before a date,
// or nil when the room has no earlier reading.
func LatestReadingBefore(db *gorm.DB, roomID int64, before time.Time) (*emodel.MeterReadingModel, error) {
	var reading emodel.MeterReadingModel
	err := db.
		Where("reading_room_id = ? AND reading_date < ?", roomID, before).
		Order("reading_date DESC").
		First(&reading).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reading, nil
}

// RecordReading upserts a meter reading keyed by (room, date).
// A second call with the same date overwrites instead of duplicating.
func RecordReading(db *gorm.DB, roomID int64, date time.Time, amount decimal.Decimal, recordedBy *int64) (*emodel.MeterReadingModel, error) {
	reading := emodel.MeterReadingModel{
		ReadingRoomID:    roomID,
		ReadingDate:      date,
		ReadingAmount:    amount,
		ReadingCreatedBy: recordedBy,
	}
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "reading_room_id"}, {Name: "reading_date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"reading_amount":     amount,
			"reading_updated_by": recordedBy,
			"reading_updated_at": time.Now(),
		}),
	}).Create(&reading).Error
	if err != nil {
		return nil, err
	}
	// Re-read so the caller sees the row as stored (id on conflict path).
	var stored emodel.MeterReadingModel
	if err := db.First(&stored, "reading_room_id = ? AND reading_date = ?", roomID, date).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// BillResult is the outcome of a consumption calculation.
type BillResult struct {
	UsageKwh      decimal.Decimal
	RatePerKwh    decimal.Decimal
	Amount        decimal.Decimal
	PreviousValue decimal.Decimal
	PreviousDate  time.Time
	ReadingDate   time.Time
}

// CalculateBill computes usage and cost between the latest prior reading and
// a current reading. defaultRate is the caller-defined fallback when neither
// a room nor a building rate covers the date; pass nil to require a rate row.
func CalculateBill(db *gorm.DB, roomID int64, current decimal.Decimal, readingDate time.Time, defaultRate *decimal.Decimal) (*BillResult, error) {
	previous, err := LatestReadingBefore(db, roomID, readingDate)
	if err != nil {
		return nil, err
	}
	if previous == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("no previous meter reading for room %d before %s", roomID, readingDate.Format("2006-01-02")))
	}

	if current.LessThan(previous.ReadingAmount) {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("current reading (%s) cannot be less than previous reading (%s)",
				current.String(), previous.ReadingAmount.String()))
	}

	usage := current.Sub(previous.ReadingAmount)

	rateRow, err := RateFor(db, roomID, readingDate)
	if err != nil {
		return nil, err
	}

	var rate decimal.Decimal
	switch {
	case rateRow != nil:
		rate = rateRow.RatePerKwh
	case defaultRate != nil:
		rate = *defaultRate
	default:
		return nil, fiber.NewError(fiber.StatusNotFound,
			fmt.Sprintf("no electricity rate for room %d on %s", roomID, readingDate.Format("2006-01-02")))
	}

	return &BillResult{
		UsageKwh:      usage,
		RatePerKwh:    rate,
		Amount:        usage.Mul(rate),
		PreviousValue: previous.ReadingAmount,
		PreviousDate:  previous.ReadingDate,
		ReadingDate:   readingDate,
	}, nil
}
