// file: internals/features/rental/tenants/model/tenant_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

// =========================================================
// ENUM — tenant gender
// =========================================================

type TenantGender string

const (
	TenantGenderMale   TenantGender = "male"
	TenantGenderFemale TenantGender = "female"
	TenantGenderOther  TenantGender = "other"
)

// =========================================================
// MODEL
// =========================================================

type TenantModel struct {
	// PK
	TenantID int64 `gorm:"column:tenant_id;primaryKey;autoIncrement" json:"tenant_id"`

	TenantFirstName string       `gorm:"column:tenant_first_name;type:text;not null" json:"tenant_first_name"`
	TenantLastName  string       `gorm:"column:tenant_last_name;type:text;not null" json:"tenant_last_name"`
	TenantGender    TenantGender `gorm:"column:tenant_gender;type:varchar(10);not null" json:"tenant_gender"`
	TenantBirthday  time.Time    `gorm:"column:tenant_birthday;type:date;not null" json:"tenant_birthday"`

	// National ID; the natural key used for idempotent upsert
	TenantPersonalID string `gorm:"column:tenant_personal_id;type:text;not null;uniqueIndex:uq_tenant_personal_id" json:"tenant_personal_id"`

	TenantPhone   string  `gorm:"column:tenant_phone;type:text;not null" json:"tenant_phone"`
	TenantEmail   *string `gorm:"column:tenant_email;type:text" json:"tenant_email,omitempty"`
	TenantLineID  *string `gorm:"column:tenant_line_id;type:text" json:"tenant_line_id,omitempty"`
	TenantAddress string  `gorm:"column:tenant_address;type:text;not null" json:"tenant_address"`

	// Audit
	TenantCreatedBy *int64         `gorm:"column:tenant_created_by" json:"tenant_created_by,omitempty"`
	TenantUpdatedBy *int64         `gorm:"column:tenant_updated_by" json:"tenant_updated_by,omitempty"`
	TenantCreatedAt time.Time      `gorm:"column:tenant_created_at;not null;default:CURRENT_TIMESTAMP" json:"tenant_created_at"`
	TenantUpdatedAt time.Time      `gorm:"column:tenant_updated_at;not null;default:CURRENT_TIMESTAMP" json:"tenant_updated_at"`
	TenantDeletedAt gorm.DeletedAt `gorm:"column:tenant_deleted_at;index" json:"-"`

	// Owned (cascade)
	EmergencyContacts []TenantEmergencyContactModel `gorm:"foreignKey:ContactTenantID;references:TenantID;constraint:OnDelete:CASCADE" json:"emergency_contacts,omitempty"`
}

func (TenantModel) TableName() string {
	return "tenants"
}

func (m *TenantModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.TenantCreatedAt.IsZero() {
		m.TenantCreatedAt = now
	}
	m.TenantUpdatedAt = now
	return nil
}

func (m *TenantModel) BeforeUpdate(tx *gorm.DB) error {
	m.TenantUpdatedAt = time.Now()
	return nil
}

// =========================================================
// EMERGENCY CONTACT — cascade-owned by tenant
// =========================================================

type TenantEmergencyContactModel struct {
	ContactID           int64  `gorm:"column:contact_id;primaryKey;autoIncrement" json:"contact_id"`
	ContactTenantID     int64  `gorm:"column:contact_tenant_id;not null;index:ix_contact_tenant" json:"contact_tenant_id"`
	ContactFirstName    string `gorm:"column:contact_first_name;type:text;not null" json:"contact_first_name"`
	ContactLastName     string `gorm:"column:contact_last_name;type:text;not null" json:"contact_last_name"`
	ContactRelationship string `gorm:"column:contact_relationship;type:text;not null" json:"contact_relationship"`
	ContactPhone        string `gorm:"column:contact_phone;type:text;not null" json:"contact_phone"`
}

func (TenantEmergencyContactModel) TableName() string {
	return "tenant_emergency_contacts"
}
