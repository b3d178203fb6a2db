// file: internals/features/rental/rooms/model/room_model.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RoomModel struct {
	// PK
	RoomID int64 `gorm:"column:room_id;primaryKey;autoIncrement" json:"room_id"`

	// FK → buildings(building_id)
	RoomBuildingID int64 `gorm:"column:room_building_id;not null;index:ix_room_building" json:"room_building_id"`

	RoomFloorNo  int              `gorm:"column:room_floor_no;not null" json:"room_floor_no"`
	RoomNo       string           `gorm:"column:room_no;type:varchar(8);not null" json:"room_no"`
	RoomSizePing *decimal.Decimal `gorm:"column:room_size_ping;type:numeric(6,2)" json:"room_size_ping,omitempty"`

	// Audit
	RoomCreatedBy *int64         `gorm:"column:room_created_by" json:"room_created_by,omitempty"`
	RoomUpdatedBy *int64         `gorm:"column:room_updated_by" json:"room_updated_by,omitempty"`
	RoomCreatedAt time.Time      `gorm:"column:room_created_at;not null;default:CURRENT_TIMESTAMP" json:"room_created_at"`
	RoomUpdatedAt time.Time      `gorm:"column:room_updated_at;not null;default:CURRENT_TIMESTAMP" json:"room_updated_at"`
	RoomDeletedAt gorm.DeletedAt `gorm:"column:room_deleted_at;index" json:"-"`
}

func (RoomModel) TableName() string {
	return "rooms"
}

func (m *RoomModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.RoomCreatedAt.IsZero() {
		m.RoomCreatedAt = now
	}
	m.RoomUpdatedAt = now
	return nil
}

func (m *RoomModel) BeforeUpdate(tx *gorm.DB) error {
	m.RoomUpdatedAt = time.Now()
	return nil
}
