// file: internals/features/finance/invoices/service/invoice_ledger.go
package service

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	invmodel "rentalku_backend/internals/features/finance/invoices/model"
)

// ErrDuplicatePeriod reports that a non-deleted invoice already covers the
// same (lease, category, period_start, period_end) window.
var ErrDuplicatePeriod = errors.New("an invoice for this period already exists")

// Ledger boundary consumed by the lease lifecycle engine. All calls take
// the caller's *gorm.DB so they participate in the caller's transaction.

// CountActive counts non-deleted invoices referencing a lease. Any non-zero
// count freezes the lease against destructive edits.
func CountActive(db *gorm.DB, leaseID int64) (int64, error) {
	var n int64
	err := db.Model(&invmodel.InvoiceModel{}).
		Where("invoice_lease_id = ?", leaseID).
		Count(&n).Error
	return n, err
}

// CancelFuture marks every non-deleted invoice whose period starts strictly
// after the given date as canceled. Invoices on or before the date are left
// untouched.
func CancelFuture(db *gorm.DB, leaseID int64, after time.Time, updatedBy *int64) (int64, error) {
	res := db.Model(&invmodel.InvoiceModel{}).
		Where("invoice_lease_id = ? AND invoice_period_start > ? AND invoice_status <> ?",
			leaseID, after, invmodel.PaymentStatusCanceled).
		Updates(map[string]interface{}{
			"invoice_status":     invmodel.PaymentStatusCanceled,
			"invoice_updated_by": updatedBy,
			"invoice_updated_at": time.Now(),
		})
	return res.RowsAffected, res.Error
}

// CreateInvoice inserts one invoice row for a lease. At most one non-deleted
// invoice may cover a given (lease, category, period) window; the second
// writer is rejected with ErrDuplicatePeriod.
func CreateInvoice(db *gorm.DB, leaseID int64, category invmodel.InvoiceCategory,
	periodStart, periodEnd, dueDate time.Time, dueAmount decimal.Decimal,
	status invmodel.PaymentStatus, createdBy *int64) (*invmodel.InvoiceModel, error) {

	var dup int64
	err := db.Model(&invmodel.InvoiceModel{}).
		Where("invoice_lease_id = ? AND invoice_category = ? AND invoice_period_start = ? AND invoice_period_end = ?",
			leaseID, category, periodStart, periodEnd).
		Count(&dup).Error
	if err != nil {
		return nil, err
	}
	if dup > 0 {
		return nil, ErrDuplicatePeriod
	}

	inv := invmodel.InvoiceModel{
		InvoiceLeaseID:     leaseID,
		InvoiceCategory:    category,
		InvoicePeriodStart: periodStart,
		InvoicePeriodEnd:   periodEnd,
		InvoiceDueDate:     dueDate,
		InvoiceDueAmount:   dueAmount,
		InvoicePaidAmount:  decimal.Zero,
		InvoiceStatus:      status,
		InvoiceCreatedBy:   createdBy,
	}
	if err := db.Create(&inv).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}
