// file: internals/features/finance/invoices/service/invoice_ledger_test.go
package service

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	invmodel "rentalku_backend/internals/features/finance/invoices/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&invmodel.InvoiceModel{}))
	return db
}

func mustInvoice(t *testing.T, db *gorm.DB, leaseID int64, category invmodel.InvoiceCategory, start, end string) *invmodel.InvoiceModel {
	t.Helper()
	inv, err := CreateInvoice(db, leaseID, category,
		d(start), d(end), d(end), decimal.NewFromInt(12000),
		invmodel.PaymentStatusUnmatured, nil)
	require.NoError(t, err)
	return inv
}

func TestCreateInvoiceRejectsDuplicatePeriod(t *testing.T) {
	db := openTestDB(t)

	first := mustInvoice(t, db, 1, invmodel.InvoiceCategoryRent, "2024-06-01", "2024-06-30")
	require.NotZero(t, first.InvoiceID)

	_, err := CreateInvoice(db, 1, invmodel.InvoiceCategoryRent,
		d("2024-06-01"), d("2024-06-30"), d("2024-06-30"), decimal.NewFromInt(9000),
		invmodel.PaymentStatusUnmatured, nil)
	require.ErrorIs(t, err, ErrDuplicatePeriod)

	var n int64
	require.NoError(t, db.Model(&invmodel.InvoiceModel{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestCreateInvoiceDuplicateScope(t *testing.T) {
	db := openTestDB(t)
	mustInvoice(t, db, 1, invmodel.InvoiceCategoryRent, "2024-06-01", "2024-06-30")

	// Same period under another category, lease, or window is a new bill.
	mustInvoice(t, db, 1, invmodel.InvoiceCategoryElectricity, "2024-06-01", "2024-06-30")
	mustInvoice(t, db, 2, invmodel.InvoiceCategoryRent, "2024-06-01", "2024-06-30")
	mustInvoice(t, db, 1, invmodel.InvoiceCategoryRent, "2024-07-01", "2024-07-31")

	var n int64
	require.NoError(t, db.Model(&invmodel.InvoiceModel{}).Count(&n).Error)
	assert.Equal(t, int64(4), n)
}

func TestCreateInvoiceAllowsReissueAfterSoftDelete(t *testing.T) {
	db := openTestDB(t)

	first := mustInvoice(t, db, 1, invmodel.InvoiceCategoryRent, "2024-06-01", "2024-06-30")
	require.NoError(t, db.Delete(first).Error)

	reissued := mustInvoice(t, db, 1, invmodel.InvoiceCategoryRent, "2024-06-01", "2024-06-30")
	assert.NotEqual(t, first.InvoiceID, reissued.InvoiceID)
}

func TestCancelFutureSkipsCurrentPeriod(t *testing.T) {
	db := openTestDB(t)

	mustInvoice(t, db, 1, invmodel.InvoiceCategoryRent, "2024-06-01", "2024-06-30")
	future := mustInvoice(t, db, 1, invmodel.InvoiceCategoryRent, "2024-07-01", "2024-07-31")

	affected, err := CancelFuture(db, 1, d("2024-06-15"), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	var reloaded invmodel.InvoiceModel
	require.NoError(t, db.First(&reloaded, "invoice_id = ?", future.InvoiceID).Error)
	assert.Equal(t, invmodel.PaymentStatusCanceled, reloaded.InvoiceStatus)
}
