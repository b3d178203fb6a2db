// file: internals/features/rental/leases/model/lease_amendment_model.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// =========================================================
// ENUMS — amendment type, discount type
// =========================================================

type AmendmentType string

const (
	AmendmentTypeRentChange AmendmentType = "rent_change"
	AmendmentTypeDiscount   AmendmentType = "discount"
	AmendmentTypeOther      AmendmentType = "other"
)

func (t AmendmentType) Valid() bool {
	switch t {
	case AmendmentTypeRentChange, AmendmentTypeDiscount, AmendmentTypeOther:
		return true
	}
	return false
}

type DiscountType string

const (
	DiscountTypeFixed   DiscountType = "fixed"
	DiscountTypePercent DiscountType = "percent"
)

// =========================================================
// MODEL — immutable side record of an active lease's economics
// =========================================================

// Amendments never mutate the lease row; they preserve history while the
// rent actually charged evolves. Only one active rent_change amendment may
// exist per (lease, effective_date).
type LeaseAmendmentModel struct {
	// PK
	AmendmentID int64 `gorm:"column:amendment_id;primaryKey;autoIncrement" json:"amendment_id"`

	// FK → leases(lease_id), cascade-owned
	AmendmentLeaseID int64 `gorm:"column:amendment_lease_id;not null;index:ix_amendment_lease" json:"amendment_lease_id"`

	AmendmentType          AmendmentType `gorm:"column:amendment_type;type:varchar(20);not null" json:"amendment_type"`
	AmendmentEffectiveDate time.Time     `gorm:"column:amendment_effective_date;type:date;not null" json:"amendment_effective_date"`

	// rent_change fields
	AmendmentOldMonthlyRent *decimal.Decimal `gorm:"column:amendment_old_monthly_rent;type:numeric(10,2)" json:"amendment_old_monthly_rent,omitempty"`
	AmendmentNewMonthlyRent *decimal.Decimal `gorm:"column:amendment_new_monthly_rent;type:numeric(10,2)" json:"amendment_new_monthly_rent,omitempty"`

	// discount fields
	AmendmentDiscountType  *DiscountType    `gorm:"column:amendment_discount_type;type:varchar(10)" json:"amendment_discount_type,omitempty"`
	AmendmentDiscountValue *decimal.Decimal `gorm:"column:amendment_discount_value;type:numeric(10,2)" json:"amendment_discount_value,omitempty"`

	AmendmentReason *string `gorm:"column:amendment_reason;type:text" json:"amendment_reason,omitempty"`

	// Audit (immutable: no updated_at)
	AmendmentCreatedBy *int64         `gorm:"column:amendment_created_by" json:"amendment_created_by,omitempty"`
	AmendmentCreatedAt time.Time      `gorm:"column:amendment_created_at;not null;default:CURRENT_TIMESTAMP" json:"amendment_created_at"`
	AmendmentDeletedAt gorm.DeletedAt `gorm:"column:amendment_deleted_at;index" json:"-"`
}

func (LeaseAmendmentModel) TableName() string {
	return "lease_amendments"
}

func (m *LeaseAmendmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.AmendmentCreatedAt.IsZero() {
		m.AmendmentCreatedAt = time.Now()
	}
	return nil
}
