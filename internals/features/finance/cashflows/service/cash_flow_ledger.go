// file: internals/features/finance/cashflows/service/cash_flow_ledger.go
package service

import (
	"gorm.io/gorm"

	cfmodel "rentalku_backend/internals/features/finance/cashflows/model"
)

// CountActive counts non-deleted cash flows referencing a lease. Together
// with the invoice count it is the financial-activity gate that freezes a
// lease against destructive edits.
func CountActive(db *gorm.DB, leaseID int64) (int64, error) {
	var n int64
	err := db.Model(&cfmodel.CashFlowModel{}).
		Where("cash_flow_lease_id = ?", leaseID).
		Count(&n).Error
	return n, err
}
