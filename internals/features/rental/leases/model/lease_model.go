// file: internals/features/rental/leases/model/lease_model.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// =========================================================
// ENUMS — derived status, payment term, asset types
// =========================================================

// LeaseStatus is never stored. It is derived from the lease facts
// (dates + submitted/terminated flags) on every read; see StatusOn.
type LeaseStatus string

const (
	LeaseStatusDraft      LeaseStatus = "draft"
	LeaseStatusPending    LeaseStatus = "pending"
	LeaseStatusActive     LeaseStatus = "active"
	LeaseStatusExpired    LeaseStatus = "expired"
	LeaseStatusTerminated LeaseStatus = "terminated"
)

type PaymentTerm string

const (
	PaymentTermAnnual     PaymentTerm = "annual"
	PaymentTermSemiAnnual PaymentTerm = "semi_annual"
	PaymentTermSeasonal   PaymentTerm = "seasonal"
	PaymentTermMonthly    PaymentTerm = "monthly"
)

// Months covered by one payment of the given term.
func (t PaymentTerm) Months() int {
	switch t {
	case PaymentTermAnnual:
		return 12
	case PaymentTermSemiAnnual:
		return 6
	case PaymentTermSeasonal:
		return 3
	default:
		return 1
	}
}

func (t PaymentTerm) Valid() bool {
	switch t {
	case PaymentTermAnnual, PaymentTermSemiAnnual, PaymentTermSeasonal, PaymentTermMonthly:
		return true
	}
	return false
}

type LeaseAssetType string

const (
	LeaseAssetKey        LeaseAssetType = "key"
	LeaseAssetFob        LeaseAssetType = "fob"
	LeaseAssetController LeaseAssetType = "remote-controller"
)

func (t LeaseAssetType) Valid() bool {
	switch t {
	case LeaseAssetKey, LeaseAssetFob, LeaseAssetController:
		return true
	}
	return false
}

// LeaseAsset is one entry of the JSONB assets list.
type LeaseAsset struct {
	Type     LeaseAssetType `json:"type"`
	Quantity int            `json:"quantity"`
}

// =========================================================
// MODEL
// =========================================================

type LeaseModel struct {
	// PK
	LeaseID int64 `gorm:"column:lease_id;primaryKey;autoIncrement" json:"lease_id"`

	// FK → rooms(room_id)
	LeaseRoomID int64 `gorm:"column:lease_room_id;not null;index:ix_lease_room" json:"lease_room_id"`

	// Contracted period (inclusive bounds)
	LeaseStartDate time.Time `gorm:"column:lease_start_date;type:date;not null" json:"lease_start_date"`
	LeaseEndDate   time.Time `gorm:"column:lease_end_date;type:date;not null;check:chk_lease_dates,lease_end_date > lease_start_date" json:"lease_end_date"`

	LeaseMonthlyRent decimal.Decimal `gorm:"column:lease_monthly_rent;type:numeric(10,2);not null;check:chk_lease_monthly_rent,lease_monthly_rent >= 0" json:"lease_monthly_rent"`
	LeaseDeposit     decimal.Decimal `gorm:"column:lease_deposit;type:numeric(10,2);not null;check:chk_lease_deposit,lease_deposit >= 0" json:"lease_deposit"`
	LeasePayRentOn   int             `gorm:"column:lease_pay_rent_on;not null;check:chk_lease_pay_rent_on,lease_pay_rent_on BETWEEN 1 AND 31" json:"lease_pay_rent_on"`
	LeasePaymentTerm PaymentTerm     `gorm:"column:lease_payment_term;type:varchar(20);not null" json:"lease_payment_term"`

	LeaseVehiclePlate *string                         `gorm:"column:lease_vehicle_plate;type:text" json:"lease_vehicle_plate,omitempty"`
	LeaseAssets       datatypes.JSONSlice[LeaseAsset] `gorm:"column:lease_assets" json:"lease_assets,omitempty"`

	// Lifecycle facts — set once, never cleared
	LeaseSubmittedAt       *time.Time `gorm:"column:lease_submitted_at" json:"lease_submitted_at,omitempty"`
	LeaseTerminatedAt      *time.Time `gorm:"column:lease_terminated_at;type:date" json:"lease_terminated_at,omitempty"`
	LeaseTerminationReason *string    `gorm:"column:lease_termination_reason;type:text" json:"lease_termination_reason,omitempty"`

	// Audit
	LeaseCreatedBy *int64         `gorm:"column:lease_created_by" json:"lease_created_by,omitempty"`
	LeaseUpdatedBy *int64         `gorm:"column:lease_updated_by" json:"lease_updated_by,omitempty"`
	LeaseCreatedAt time.Time      `gorm:"column:lease_created_at;not null;default:CURRENT_TIMESTAMP;index:ix_lease_created_at" json:"lease_created_at"`
	LeaseUpdatedAt time.Time      `gorm:"column:lease_updated_at;not null;default:CURRENT_TIMESTAMP" json:"lease_updated_at"`
	LeaseDeletedAt gorm.DeletedAt `gorm:"column:lease_deleted_at;index" json:"-"`

	// Owned (cascade) — tenant links and amendments die with the lease.
	// Invoices and cash flows are NOT owned: restrict-on-delete, kept for audit.
	Tenants    []LeaseTenantModel    `gorm:"foreignKey:LeaseTenantLeaseID;references:LeaseID;constraint:OnDelete:CASCADE" json:"tenants,omitempty"`
	Amendments []LeaseAmendmentModel `gorm:"foreignKey:AmendmentLeaseID;references:LeaseID;constraint:OnDelete:CASCADE" json:"amendments,omitempty"`
}

func (LeaseModel) TableName() string {
	return "leases"
}

func (m *LeaseModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.LeaseCreatedAt.IsZero() {
		m.LeaseCreatedAt = now
	}
	m.LeaseUpdatedAt = now
	return nil
}

func (m *LeaseModel) BeforeUpdate(tx *gorm.DB) error {
	m.LeaseUpdatedAt = time.Now()
	return nil
}

// =========================================================
// STATUS DERIVATION — pure function of facts + "today"
// =========================================================

// StatusOn derives the lifecycle status for a reference date.
// First matching rule wins:
//  1. terminated_at set            → terminated
//  2. today past end_date          → expired
//  3. never submitted              → draft
//  4. today before start_date      → pending
//  5. otherwise                    → active
//
// Callers pass "today" explicitly; only the outermost HTTP layer
// defaults it to the wall clock. The result is never persisted.
func (m *LeaseModel) StatusOn(today time.Time) LeaseStatus {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(m.LeaseStartDate.Year(), m.LeaseStartDate.Month(), m.LeaseStartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(m.LeaseEndDate.Year(), m.LeaseEndDate.Month(), m.LeaseEndDate.Day(), 0, 0, 0, 0, time.UTC)

	switch {
	case m.LeaseTerminatedAt != nil:
		return LeaseStatusTerminated
	case day.After(end):
		return LeaseStatusExpired
	case m.LeaseSubmittedAt == nil:
		return LeaseStatusDraft
	case day.Before(start):
		return LeaseStatusPending
	default:
		return LeaseStatusActive
	}
}

// Terminal reports whether the status can never change again.
func (s LeaseStatus) Terminal() bool {
	return s == LeaseStatusTerminated || s == LeaseStatusExpired
}
