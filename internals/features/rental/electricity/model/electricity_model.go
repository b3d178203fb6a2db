// file: internals/features/rental/electricity/model/electricity_model.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// =========================================================
// ELECTRICITY RATE — room-specific or building-wide
// =========================================================

// A rate row applies to one room (room_id set) or a whole building
// (room_id null, building_id set) for a validity window.
type ElectricityRateModel struct {
	// PK
	RateID int64 `gorm:"column:rate_id;primaryKey;autoIncrement" json:"rate_id"`

	RateRoomID     *int64 `gorm:"column:rate_room_id;index:ix_rate_room" json:"rate_room_id,omitempty"`
	RateBuildingID *int64 `gorm:"column:rate_building_id;index:ix_rate_building" json:"rate_building_id,omitempty"`

	RateStartDate time.Time       `gorm:"column:rate_start_date;type:date;not null" json:"rate_start_date"`
	RateEndDate   time.Time       `gorm:"column:rate_end_date;type:date;not null" json:"rate_end_date"`
	RatePerKwh    decimal.Decimal `gorm:"column:rate_per_kwh;type:numeric(10,4);not null" json:"rate_per_kwh"`

	// Audit
	RateCreatedBy *int64         `gorm:"column:rate_created_by" json:"rate_created_by,omitempty"`
	RateUpdatedBy *int64         `gorm:"column:rate_updated_by" json:"rate_updated_by,omitempty"`
	RateCreatedAt time.Time      `gorm:"column:rate_created_at;not null;default:CURRENT_TIMESTAMP" json:"rate_created_at"`
	RateUpdatedAt time.Time      `gorm:"column:rate_updated_at;not null;default:CURRENT_TIMESTAMP" json:"rate_updated_at"`
	RateDeletedAt gorm.DeletedAt `gorm:"column:rate_deleted_at;index" json:"-"`
}

func (ElectricityRateModel) TableName() string {
	return "electricity_rates"
}

func (m *ElectricityRateModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.RateCreatedAt.IsZero() {
		m.RateCreatedAt = now
	}
	m.RateUpdatedAt = now
	return nil
}

func (m *ElectricityRateModel) BeforeUpdate(tx *gorm.DB) error {
	m.RateUpdatedAt = time.Now()
	return nil
}

// =========================================================
// METER READING — monotonic time series per room
// =========================================================

// One reading per room per date; re-recording the same date overwrites.
type MeterReadingModel struct {
	// PK
	ReadingID int64 `gorm:"column:reading_id;primaryKey;autoIncrement" json:"reading_id"`

	ReadingRoomID int64           `gorm:"column:reading_room_id;not null;uniqueIndex:uq_meter_reading,priority:1;index:ix_reading_room_date,priority:1" json:"reading_room_id"`
	ReadingDate   time.Time       `gorm:"column:reading_date;type:date;not null;uniqueIndex:uq_meter_reading,priority:2;index:ix_reading_room_date,priority:2" json:"reading_date"`
	ReadingAmount decimal.Decimal `gorm:"column:reading_amount;type:numeric(10,2);not null" json:"reading_amount"`

	// Audit
	ReadingCreatedBy *int64    `gorm:"column:reading_created_by" json:"reading_created_by,omitempty"`
	ReadingUpdatedBy *int64    `gorm:"column:reading_updated_by" json:"reading_updated_by,omitempty"`
	ReadingCreatedAt time.Time `gorm:"column:reading_created_at;not null;default:CURRENT_TIMESTAMP" json:"reading_created_at"`
	ReadingUpdatedAt time.Time `gorm:"column:reading_updated_at;not null;default:CURRENT_TIMESTAMP" json:"reading_updated_at"`
}

func (MeterReadingModel) TableName() string {
	return "meter_readings"
}

func (m *MeterReadingModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.ReadingCreatedAt.IsZero() {
		m.ReadingCreatedAt = now
	}
	m.ReadingUpdatedAt = now
	return nil
}

func (m *MeterReadingModel) BeforeUpdate(tx *gorm.DB) error {
	m.ReadingUpdatedAt = time.Now()
	return nil
}
