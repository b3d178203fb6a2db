// file: internals/features/finance/invoices/model/invoice_model.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// =========================================================
// ENUMS — invoice category, payment status
// =========================================================

type InvoiceCategory string

const (
	InvoiceCategoryRent        InvoiceCategory = "rent"
	InvoiceCategoryElectricity InvoiceCategory = "electricity"
	InvoiceCategoryPenalty     InvoiceCategory = "penalty"
	InvoiceCategoryDeposit     InvoiceCategory = "deposit"
)

func (c InvoiceCategory) Valid() bool {
	switch c {
	case InvoiceCategoryRent, InvoiceCategoryElectricity, InvoiceCategoryPenalty, InvoiceCategoryDeposit:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusUnmatured     PaymentStatus = "unmatured"
	PaymentStatusOverdue       PaymentStatus = "overdue"
	PaymentStatusPaid          PaymentStatus = "paid"
	PaymentStatusPartial       PaymentStatus = "partial"
	PaymentStatusUncollectable PaymentStatus = "uncollectable"
	PaymentStatusReturned      PaymentStatus = "returned"
	PaymentStatusCanceled      PaymentStatus = "canceled"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusUnmatured, PaymentStatusOverdue, PaymentStatusPaid,
		PaymentStatusPartial, PaymentStatusUncollectable, PaymentStatusReturned, PaymentStatusCanceled:
		return true
	}
	return false
}

// =========================================================
// MODEL
// =========================================================

// Loosely owned by the lease: restrict-on-delete, kept for audit.
// Unique active period per (lease, category, period_start, period_end).
type InvoiceModel struct {
	// PK
	InvoiceID int64 `gorm:"column:invoice_id;primaryKey;autoIncrement" json:"invoice_id"`

	// FK → leases(lease_id), ON DELETE RESTRICT
	InvoiceLeaseID int64 `gorm:"column:invoice_lease_id;not null;index:ix_invoice_lease;index:uq_invoice_active_period,unique,where:invoice_deleted_at IS NULL,priority:1" json:"invoice_lease_id"`

	InvoiceCategory    InvoiceCategory `gorm:"column:invoice_category;type:varchar(20);not null;index:uq_invoice_active_period,priority:2" json:"invoice_category"`
	InvoicePeriodStart time.Time       `gorm:"column:invoice_period_start;type:date;not null;index:uq_invoice_active_period,priority:3" json:"invoice_period_start"`
	InvoicePeriodEnd   time.Time       `gorm:"column:invoice_period_end;type:date;not null;index:uq_invoice_active_period,priority:4" json:"invoice_period_end"`
	InvoiceDueDate     time.Time       `gorm:"column:invoice_due_date;type:date;not null" json:"invoice_due_date"`

	InvoiceDueAmount  decimal.Decimal `gorm:"column:invoice_due_amount;type:numeric(10,2);not null;check:chk_invoice_due_amount,invoice_due_amount >= 0" json:"invoice_due_amount"`
	InvoicePaidAmount decimal.Decimal `gorm:"column:invoice_paid_amount;type:numeric(10,2);not null;default:0;check:chk_invoice_paid_amount,invoice_paid_amount >= 0" json:"invoice_paid_amount"`

	InvoiceStatus PaymentStatus `gorm:"column:invoice_status;type:varchar(20);not null;index:ix_invoice_status" json:"invoice_status"`

	// Audit
	InvoiceCreatedBy *int64         `gorm:"column:invoice_created_by" json:"invoice_created_by,omitempty"`
	InvoiceUpdatedBy *int64         `gorm:"column:invoice_updated_by" json:"invoice_updated_by,omitempty"`
	InvoiceCreatedAt time.Time      `gorm:"column:invoice_created_at;not null;default:CURRENT_TIMESTAMP" json:"invoice_created_at"`
	InvoiceUpdatedAt time.Time      `gorm:"column:invoice_updated_at;not null;default:CURRENT_TIMESTAMP" json:"invoice_updated_at"`
	InvoiceDeletedAt gorm.DeletedAt `gorm:"column:invoice_deleted_at;index" json:"-"`
}

func (InvoiceModel) TableName() string {
	return "invoices"
}

func (m *InvoiceModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.InvoiceCreatedAt.IsZero() {
		m.InvoiceCreatedAt = now
	}
	m.InvoiceUpdatedAt = now
	return nil
}

func (m *InvoiceModel) BeforeUpdate(tx *gorm.DB) error {
	m.InvoiceUpdatedAt = time.Now()
	return nil
}
