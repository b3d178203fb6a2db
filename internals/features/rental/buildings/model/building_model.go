// file: internals/features/rental/buildings/model/building_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

type BuildingModel struct {
	// PK
	BuildingID int64 `gorm:"column:building_id;primaryKey;autoIncrement" json:"building_id"`

	BuildingNo              int     `gorm:"column:building_no;not null;uniqueIndex:uq_building_no" json:"building_no"`
	BuildingAddress         string  `gorm:"column:building_address;type:text;not null" json:"building_address"`
	BuildingLandlordName    *string `gorm:"column:building_landlord_name;type:text" json:"building_landlord_name,omitempty"`
	BuildingLandlordAddress *string `gorm:"column:building_landlord_address;type:text" json:"building_landlord_address,omitempty"`

	// Audit
	BuildingCreatedBy *int64         `gorm:"column:building_created_by" json:"building_created_by,omitempty"`
	BuildingUpdatedBy *int64         `gorm:"column:building_updated_by" json:"building_updated_by,omitempty"`
	BuildingCreatedAt time.Time      `gorm:"column:building_created_at;not null;default:CURRENT_TIMESTAMP" json:"building_created_at"`
	BuildingUpdatedAt time.Time      `gorm:"column:building_updated_at;not null;default:CURRENT_TIMESTAMP" json:"building_updated_at"`
	BuildingDeletedAt gorm.DeletedAt `gorm:"column:building_deleted_at;index" json:"-"`
}

func (BuildingModel) TableName() string {
	return "buildings"
}

func (m *BuildingModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.BuildingCreatedAt.IsZero() {
		m.BuildingCreatedAt = now
	}
	m.BuildingUpdatedAt = now
	return nil
}

func (m *BuildingModel) BeforeUpdate(tx *gorm.DB) error {
	m.BuildingUpdatedAt = time.Now()
	return nil
}
