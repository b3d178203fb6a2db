// file: internals/features/rental/leases/service/lease_service_test.go
package service

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	cfmodel "rentalku_backend/internals/features/finance/cashflows/model"
	invmodel "rentalku_backend/internals/features/finance/invoices/model"
	bmodel "rentalku_backend/internals/features/rental/buildings/model"
	emodel "rentalku_backend/internals/features/rental/electricity/model"
	eservice "rentalku_backend/internals/features/rental/electricity/service"
	"rentalku_backend/internals/features/rental/leases/dto"
	lmodel "rentalku_backend/internals/features/rental/leases/model"
	roommodel "rentalku_backend/internals/features/rental/rooms/model"
	tenantdto "rentalku_backend/internals/features/rental/tenants/dto"
	tmodel "rentalku_backend/internals/features/rental/tenants/model"
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

	require.NoError(t, db.AutoMigrate(
		&bmodel.BuildingModel{},
		&roommodel.RoomModel{},
		&tmodel.TenantModel{},
		&tmodel.TenantEmergencyContactModel{},
		&lmodel.LeaseModel{},
		&lmodel.LeaseTenantModel{},
		&lmodel.LeaseAmendmentModel{},
		&emodel.ElectricityRateModel{},
		&emodel.MeterReadingModel{},
		&invmodel.InvoiceModel{},
		&cfmodel.CashFlowCategoryModel{},
		&cfmodel.CashAccountModel{},
		&cfmodel.CashFlowModel{},
		&cfmodel.CashFlowAttachmentModel{},
	))
	return db
}

func seedRoom(t *testing.T, db *gorm.DB) *roommodel.RoomModel {
	t.Helper()
	building := bmodel.BuildingModel{BuildingNo: 1, BuildingAddress: "1 Minsheng E Rd"}
	require.NoError(t, db.Create(&building).Error)
	room := roommodel.RoomModel{RoomBuildingID: building.BuildingID, RoomFloorNo: 3, RoomNo: "3A"}
	require.NoError(t, db.Create(&room).Error)
	return &room
}

func tenantData(personalID string) *tenantdto.TenantUpsertDTO {
	return &tenantdto.TenantUpsertDTO{
		FirstName:  "Mei",
		LastName:   "Lin",
		Gender:     "female",
		Birthday:   "1990-04-12",
		PersonalID: personalID,
		Phone:      "0912-345-678",
		Address:    "22 Datong Rd",
	}
}

func createDTO(roomID int64, start, end string) dto.LeaseCreateDTO {
	return dto.LeaseCreateDTO{
		RoomID:      roomID,
		TenantData:  tenantData("A123456789"),
		StartDate:   start,
		EndDate:     end,
		MonthlyRent: decimal.NewFromInt(15000),
		Deposit:     decimal.NewFromInt(30000),
		PayRentOn:   5,
		PaymentTerm: "monthly",
	}
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "expected *fiber.Error, got %T: %v", err, err)
	return fe.Code
}

func strPtr(s string) *string { return &s }

func decPtr(v decimal.Decimal) *decimal.Decimal { return &v }

// =======================================================
// CREATE
// =======================================================

func TestCreateLeaseBuildsDraftWithPrimaryTenant(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db)
	today := d("2024-01-10")

	lease, err := CreateLease(db, createDTO(room.RoomID, "2024-02-01", "2025-01-31"), today, nil)
	require.NoError(t, err)

	assert.Equal(t, lmodel.LeaseStatusDraft, lease.StatusOn(today))
	assert.Nil(t, lease.LeaseSubmittedAt)
	require.Len(t, lease.Tenants, 1)
	assert.Equal(t, lmodel.LeaseTenantRolePrimary, lease.Tenants[0].LeaseTenantRole)

	// tenant was created from the inline payload
	var tenant tmodel.TenantModel
	require.NoError(t, db.First(&tenant, "tenant_personal_id = ?", "A123456789").Error)
	assert.Equal(t, tenant.TenantID, lease.Tenants[0].LeaseTenantTenantID)
}

func TestCreateLeaseReusesTenantByPersonalID(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db)
	today := d("2024-01-10")

	first, err := CreateLease(db, createDTO(room.RoomID, "2024-02-01", "2024-07-31"), today, nil)
	require.NoError(t, err)

	// same personal_id on a different room: no duplicate tenant row
	room2 := roommodel.RoomModel{RoomBuildingID: room.RoomBuildingID, RoomFloorNo: 3, RoomNo: "3B"}
	require.NoError(t, db.Create(&room2).Error)
	second, err := CreateLease(db, createDTO(room2.RoomID, "2024-02-01", "2024-07-31"), today, nil)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&tmodel.TenantModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
	assert.Equal(t, first.Tenants[0].LeaseTenantTenantID, second.Tenants[0].LeaseTenantTenantID)
}

func TestCreateLeaseRejectsBadDatesAndMissingRefs(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db)
	today := d("2024-01-10")

	_, err := CreateLease(db, createDTO(room.RoomID, "2024-02-01", "2024-02-01"), today, nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fiberCode(t, err))

	_, err = CreateLease(db, createDTO(999, "2024-02-01", "2025-01-31"), today, nil)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))

	missing := int64(999)
	in := createDTO(room.RoomID, "2024-02-01", "2025-01-31")
	in.TenantData = nil
	in.TenantID = &missing
	_, err = CreateLease(db, in, today, nil)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

// Drafts never block a room: only submitted leases participate in the
// overlap rule.
func TestCreateLeaseAllowsOverlappingDrafts(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db)
	today := d("2024-01-10")

	_, err := CreateLease(db, createDTO(room.RoomID, "2024-02-01", "2025-01-31"), today, nil)
	require.NoError(t, err)
	_, err = CreateLease(db, createDTO(room.RoomID, "2024-02-01", "2025-01-31"), today, nil)
	require.NoError(t, err)
}

func TestCreateLeaseRejectsOverlapWithSubmitted(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db)
	today := d("2024-01-10")

	existing, err := CreateLease(db, createDTO(room.RoomID, "2024-02-01", "2025-01-31"), today, nil)
	require.NoError(t, err)
	_, err = SubmitLease(db, existing.LeaseID, today, nil)
	require.NoError(t, err)

	// boundary-inclusive: starting on the existing end date still overlaps
	_, err = CreateLease(db, createDTO(room.RoomID, "2025-01-31", "2025-12-31"), today, nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fiberCode(t, err))

	// the day after the end date is free
	_, err = CreateLease(db, createDTO(room.RoomID, "2025-02-01", "2025-12-31"), today, nil)
	require.NoError(t, err)
}

// =======================================================
// SUBMIT
// =======================================================

func TestSubmitLeaseSingleFire(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db)
	today := d("2024-01-10")

	lease, err := CreateLease(db, createDTO(room.RoomID, "2024-02-01", "2025-01-31"), today, nil)
	require.NoError(t, err)

	submitted, err := SubmitLease(db, lease.LeaseID, today, nil)
	require.NoError(t, err)
	require.NotNil(t, submitted.LeaseSubmittedAt)
	assert.Equal(t, lmodel.LeaseStatusPending, submitted.StatusOn(today))

	// second call conflicts regardless of current status
	_, err = SubmitLease(db, lease.LeaseID, today, nil)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
}

func TestSubmitLeaseRechecksOverlap(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db)
	today := d("2024-01-10")

	a, err := CreateLease(db, createDTO(room.RoomID, "2024-02-01", "2025-01-31"), today, nil)
	require.NoError(t, err)
	b, err := CreateLease(db, createDTO(room.RoomID, "2024-06-01", "2025-05-31"), today, nil)
	require.NoError(t, err)

	_, err = SubmitLease(db, a.LeaseID, today, nil)
	require.NoError(t, err)

	// the second draft lost the race for the room
	_, err = SubmitLease(db, b.LeaseID, today, nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fiberCode(t, err))
}

func TestSubmitLeaseNotFound(t *testing.T) {
	db := openTestDB(t)
	_, err := SubmitLease(db, 12345, d("2024-01-10"), nil)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

// =======================================================
// UPDATE / EDITABILITY
// =======================================================

func TestUpdateLeaseEditableWhileDraftAndPending(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db)
	today := d("2024-01-10")

	lease, err := CreateLease(db, createDTO(room.RoomID, "2024-02-01", "2025-01-31"), today, nil)
	require.NoError(t, err)

	newRent := decimal.NewFromInt(16000)
	updated, err := UpdateLease(db, lease.LeaseID, dto.LeaseUpdateDTO{MonthlyRent: &newRent}, today, nil)
	require.NoError(t, err)
	assert.True(t, newRent.Equal(updated.LeaseMonthlyRent))

	// still editable while pending
	_, err = SubmitLease(db, lease.LeaseID, today, nil)
	require.NoError(t, err)
	newRent = decimal.NewFromInt(17000)
	updated, err = UpdateLease(db, lease.LeaseID, dto.LeaseUpdateDTO{MonthlyRent: &newRent}, today, nil)
	require.NoError(t, err)
	assert.True(t, newRent.Equal(updated.LeaseMonthlyRent))
}

func TestUpdateLeaseRejectedOnceActive(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db)

	lease, err := CreateLease(db, createDTO(room.RoomID, "2024-02-01", "2025-01-31"), d("2024-01-10"), nil)
	require.NoError(t, err)
	_, err = SubmitLease(db, lease.LeaseID, d("2024-01-10"), nil)
	require.NoError(t, err)

	newRent := decimal.NewFromInt(16000)
	_, err = UpdateLease(db, lease.LeaseID, dto.LeaseUpdateDTO{MonthlyRent: &newRent}, d("2024-03-01"), nil)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))

	// row unchanged after the rejection
	var row lmodel.LeaseModel
	require.NoError(t, db.First(&row, "lease_id = ?", lease.LeaseID).Error)
	assert.True(t, decimal.NewFromInt(15000).Equal(row.LeaseMonthlyRent))
}

func TestUpdateLeaseBlockedByFinancialRecords(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db)
	today := d("2024-01-10")

	lease, err := CreateLease(db, createDTO(room.RoomID, "2024-02-01", "2025-01-31"), today, nil)
	require.NoError(t, err)

	invoice := invmodel.InvoiceModel{
		InvoiceLeaseID:     lease.LeaseID,
		InvoiceCategory:    invmodel.InvoiceCategoryRent,
		InvoicePeriodStart: d("2024-02-01"),
		InvoicePeriodEnd:   d("2024-02-29"),
		InvoiceDueDate:     d("2024-02-05"),
		InvoiceDueAmount:   decimal.NewFromInt(15000),
		InvoiceStatus:      invmodel.PaymentStatusUnmatured,
	}
	require.NoError(t, db.Create(&invoice).Error)

	newRent := decimal.NewFromInt(16000)
	_, err = UpdateLease(db, lease.LeaseID, dto.LeaseUpdateDTO{MonthlyRent: &newRent}, today, nil)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

// Tenant demographics are exempt from the guard: fixing a phone number on
// an active lease is always allowed.
func TestUpdateLeaseTenantDataBypassesGuard(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db)

	lease, err := CreateLease(db, createDTO(room.RoomID, "2024-02-01", "2025-01-31"), d("2024-01-10"), nil)
	require.NoError(t, err)
	_, err = SubmitLease(db, lease.LeaseID, d("2024-01-10"), nil)
	require.NoError(t, err)

	phone := "0987-654-321"
	_, err = UpdateLease(db, lease.LeaseID, dto.LeaseUpdateDTO{
		TenantData: &tenantdto.TenantUpdateDTO{Phone: &phone},
	}, d("2024-03-01"), nil)
	require.NoError(t, err)

	var tenant tmodel.TenantModel
	require.NoError(t, db.First(&tenant, "tenant_personal_id = ?", "A123456789").Error)
	assert.Equal(t, phone, tenant.TenantPhone)
}

// =======================================================
// AMEND
// =======================================================

func activeLease(t *testing.T, db *gorm.DB, roomID int64) *lmodel.LeaseModel {
	t.Helper()
	lease, err := CreateLease(db, createDTO(roomID, "2024-02-01", "2025-01-31"), d("2024-01-10"), nil)
	require.NoError(t, err)
	_, err = SubmitLease(db, lease.LeaseID, d("2024-01-10"), nil)
	require.NoError(t, err)
	return lease
}

func TestAmendLeaseRentChange(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db)
	lease := activeLease(t, db, room.RoomID)
	today := d("2024-03-01") // active

	amendment, err := AmendLease(db, lease.LeaseID, dto.LeaseAmendDTO{
		AmendmentType:  "rent_change",
		EffectiveDate:  "2024-05-01",
		OldMonthlyRent: decPtr(decimal.NewFromInt(15000)),
		NewMonthlyRent: decPtr(decimal.NewFromInt(16000)),
	}, today, nil)
	require.NoError(t, err)
	assert.Equal(t, lmodel.AmendmentTypeRentChange, amendment.AmendmentType)

	// lease row itself is untouched
	var row lmodel.LeaseModel
	require.NoError(t, db.First(&row, "lease_id = ?", lease.LeaseID).Error)
	assert.True(t, decimal.NewFromInt(15000).Equal(row.LeaseMonthlyRent))
}

func TestAmendLeaseDuplicateRentChangeConflicts(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db)
	lease := activeLease(t, db, room.RoomID)
	today := d("2024-03-01")

	in := dto.LeaseAmendDTO{
		AmendmentType:  "rent_change",
		EffectiveDate:  "2024-05-01",
		OldMonthlyRent: decPtr(decimal.NewFromInt(15000)),
		NewMonthlyRent: decPtr(decimal.NewFromInt(16000)),
	}
	_, err := AmendLease(db, lease.LeaseID, in, today, nil)
	require.NoError(t, err)

	_, err = AmendLease(db, lease.LeaseID, in, today, nil)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
}

func TestAmendLeasePreconditions(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db)
	lease := activeLease(t, db, room.RoomID)

	in := dto.LeaseAmendDTO{
		AmendmentType:  "rent_change",
		EffectiveDate:  "2024-05-01",
		OldMonthlyRent: decPtr(decimal.NewFromInt(15000)),
		NewMonthlyRent: decPtr(decimal.NewFromInt(16000)),
	}

	// pending, not active yet
	_, err := AmendLease(db, lease.LeaseID, in, d("2024-01-15"), nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fiberCode(t, err))

	// effective date not in the future
	in.EffectiveDate = "2024-03-01"
	_, err = AmendLease(db, lease.LeaseID, in, d("2024-03-01"), nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fiberCode(t, err))

	// rent_change without amounts
	_, err = AmendLease(db, lease.LeaseID, dto.LeaseAmendDTO{
		AmendmentType: "rent_change",
		EffectiveDate: "2024-05-01",
	}, d("2024-03-01"), nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fiberCode(t, err))
}

// =======================================================
// RENEW
// =======================================================

func TestRenewLeaseExtendsEndDate(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db)
	lease := activeLease(t, db, room.RoomID)

	newRent := decimal.NewFromInt(15500)
	renewed, err := RenewLease(db, lease.LeaseID, dto.LeaseRenewDTO{
		NewEndDate:     "2026-01-31",
		NewMonthlyRent: &newRent,
	}, d("2024-12-01"), nil)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-31", renewed.LeaseEndDate.Format("2006-01-02"))
	assert.True(t, newRent.Equal(renewed.LeaseMonthlyRent))
}

func TestRenewLeaseRejectsEarlierEndDate(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db)
	lease := activeLease(t, db, room.RoomID)

	_, err := RenewLease(db, lease.LeaseID, dto.LeaseRenewDTO{NewEndDate: "2025-01-31"}, d("2024-12-01"), nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fiberCode(t, err))

	_, err = RenewLease(db, lease.LeaseID, dto.LeaseRenewDTO{NewEndDate: "2024-06-30"}, d("2024-12-01"), nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fiberCode(t, err))
}

func TestRenewLeaseRequiresActive(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db)
	lease, err := CreateLease(db, createDTO(room.RoomID, "2024-02-01", "2025-01-31"), d("2024-01-10"), nil)
	require.NoError(t, err)

	_, err = RenewLease(db, lease.LeaseID, dto.LeaseRenewDTO{NewEndDate: "2026-01-31"}, d("2024-06-01"), nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fiberCode(t, err))
}

// =======================================================
// TERMINATE
// =======================================================

func TestTerminateLeaseMarksIrrevocably(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db)
	lease := activeLease(t, db, room.RoomID)

	terminated, err := TerminateLease(db, lease.LeaseID, dto.LeaseTerminateDTO{
		TerminationDate: "2024-06-15",
		Reason:          strPtr("tenant relocating"),
	}, d("2024-06-10"), nil)
	require.NoError(t, err)
	require.NotNil(t, terminated.LeaseTerminatedAt)
	assert.Equal(t, lmodel.LeaseStatusTerminated, terminated.StatusOn(d("2024-06-10")))

	// no path out of terminated
	_, err = TerminateLease(db, lease.LeaseID, dto.LeaseTerminateDTO{TerminationDate: "2024-07-01"}, d("2024-06-20"), nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fiberCode(t, err))
	_, err = RenewLease(db, lease.LeaseID, dto.LeaseRenewDTO{NewEndDate: "2026-01-31"}, d("2024-06-20"), nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fiberCode(t, err))
}

func TestTerminateLeaseDateBounds(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db)
	lease := activeLease(t, db, room.RoomID)

	_, err := TerminateLease(db, lease.LeaseID, dto.LeaseTerminateDTO{TerminationDate: "2024-01-31"}, d("2024-06-10"), nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fiberCode(t, err))

	_, err = TerminateLease(db, lease.LeaseID, dto.LeaseTerminateDTO{TerminationDate: "2025-02-01"}, d("2024-06-10"), nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fiberCode(t, err))
}

func TestTerminateLeaseCancelsStrictlyFutureInvoices(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db)
	lease := activeLease(t, db, room.RoomID)

	mk := func(start, end string) invmodel.InvoiceModel {
		return invmodel.InvoiceModel{
			InvoiceLeaseID:     lease.LeaseID,
			InvoiceCategory:    invmodel.InvoiceCategoryRent,
			InvoicePeriodStart: d(start),
			InvoicePeriodEnd:   d(end),
			InvoiceDueDate:     d(start),
			InvoiceDueAmount:   decimal.NewFromInt(15000),
			InvoiceStatus:      invmodel.PaymentStatusUnmatured,
		}
	}
	current := mk("2024-06-01", "2024-06-30")
	future := mk("2024-07-01", "2024-07-31")
	require.NoError(t, db.Create(&current).Error)
	require.NoError(t, db.Create(&future).Error)

	_, err := TerminateLease(db, lease.LeaseID, dto.LeaseTerminateDTO{TerminationDate: "2024-06-15"}, d("2024-06-10"), nil)
	require.NoError(t, err)

	// period starting after the termination date is canceled, the one
	// covering it is not
	var rows []invmodel.InvoiceModel
	require.NoError(t, db.Order("invoice_period_start ASC").Find(&rows, "invoice_lease_id = ?", lease.LeaseID).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, invmodel.PaymentStatusUnmatured, rows[0].InvoiceStatus)
	assert.Equal(t, invmodel.PaymentStatusCanceled, rows[1].InvoiceStatus)
}

func TestTerminateLeaseWithFinalMeterReading(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db)
	lease := activeLease(t, db, room.RoomID)

	// prior reading of 300 and a room rate of 6.0 per kWh
	_, err := eservice.RecordReading(db, room.RoomID, d("2024-05-15"), decimal.NewFromInt(300), nil)
	require.NoError(t, err)
	rate := emodel.ElectricityRateModel{
		RateRoomID:    &room.RoomID,
		RateStartDate: d("2024-01-01"),
		RateEndDate:   d("2024-12-31"),
		RatePerKwh:    decimal.NewFromFloat(6.0),
	}
	require.NoError(t, db.Create(&rate).Error)

	_, err = TerminateLease(db, lease.LeaseID, dto.LeaseTerminateDTO{
		TerminationDate:   "2024-06-15",
		FinalMeterReading: decPtr(decimal.NewFromInt(450)),
	}, d("2024-06-10"), nil)
	require.NoError(t, err)

	// 150 kWh * 6.0 = 900, billed over [previous reading date, termination]
	var invoice invmodel.InvoiceModel
	require.NoError(t, db.First(&invoice,
		"invoice_lease_id = ? AND invoice_category = ?",
		lease.LeaseID, invmodel.InvoiceCategoryElectricity).Error)
	assert.True(t, decimal.NewFromInt(900).Equal(invoice.InvoiceDueAmount))
	assert.Equal(t, "2024-05-15", invoice.InvoicePeriodStart.Format("2006-01-02"))
	assert.Equal(t, "2024-06-15", invoice.InvoicePeriodEnd.Format("2006-01-02"))
	assert.Equal(t, invmodel.PaymentStatusOverdue, invoice.InvoiceStatus)
}

func TestTerminateLeaseAllowedWhilePending(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db)
	lease := activeLease(t, db, room.RoomID)

	// still pending on 2024-01-20
	terminated, err := TerminateLease(db, lease.LeaseID, dto.LeaseTerminateDTO{
		TerminationDate: "2024-02-01",
	}, d("2024-01-20"), nil)
	require.NoError(t, err)
	require.NotNil(t, terminated.LeaseTerminatedAt)
}

// =======================================================
// READS
// =======================================================

func TestListLeasesFiltersByDerivedStatus(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db)
	today := d("2024-06-01")

	draft, err := CreateLease(db, createDTO(room.RoomID, "2024-02-01", "2025-01-31"), d("2024-01-10"), nil)
	require.NoError(t, err)

	room2 := roommodel.RoomModel{RoomBuildingID: room.RoomBuildingID, RoomFloorNo: 4, RoomNo: "4A"}
	require.NoError(t, db.Create(&room2).Error)
	active := activeLease(t, db, room2.RoomID)

	status := lmodel.LeaseStatusActive
	got, total, err := ListLeases(db, ListFilter{Status: &status}, today)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, got, 1)
	assert.Equal(t, active.LeaseID, got[0].LeaseID)

	status = lmodel.LeaseStatusDraft
	got, _, err = ListLeases(db, ListFilter{Status: &status}, today)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, draft.LeaseID, got[0].LeaseID)
}

func TestListLeasesFiltersByTenantAndRoom(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db)
	lease := activeLease(t, db, room.RoomID)

	got, _, err := ListLeases(db, ListFilter{RoomID: &room.RoomID}, d("2024-06-01"))
	require.NoError(t, err)
	require.Len(t, got, 1)

	tenantID := lease.Tenants[0].LeaseTenantTenantID
	got, _, err = ListLeases(db, ListFilter{TenantID: &tenantID}, d("2024-06-01"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, lease.LeaseID, got[0].LeaseID)

	other := int64(999)
	got, total, err := ListLeases(db, ListFilter{TenantID: &other}, d("2024-06-01"))
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
	assert.Empty(t, got)
}

// The §-style end-to-end walk: draft → submit → pending → active → guarded
// edit → amendment → terminate with a final metered bill.
func TestLeaseLifecycleEndToEnd(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db)

	lease, err := CreateLease(db, createDTO(room.RoomID, "2024-02-01", "2025-01-31"), d("2024-01-10"), nil)
	require.NoError(t, err)
	assert.Equal(t, lmodel.LeaseStatusDraft, lease.StatusOn(d("2024-01-10")))

	submitted, err := SubmitLease(db, lease.LeaseID, d("2024-01-15"), nil)
	require.NoError(t, err)
	assert.Equal(t, lmodel.LeaseStatusPending, submitted.StatusOn(d("2024-01-20")))
	assert.Equal(t, lmodel.LeaseStatusActive, submitted.StatusOn(d("2024-02-01")))

	// contract edits are now rejected
	newRent := decimal.NewFromInt(20000)
	_, err = UpdateLease(db, lease.LeaseID, dto.LeaseUpdateDTO{MonthlyRent: &newRent}, d("2024-03-01"), nil)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))

	// economics change goes through an amendment instead
	_, err = AmendLease(db, lease.LeaseID, dto.LeaseAmendDTO{
		AmendmentType:  "rent_change",
		EffectiveDate:  "2024-05-01",
		OldMonthlyRent: decPtr(decimal.NewFromInt(15000)),
		NewMonthlyRent: decPtr(decimal.NewFromInt(16000)),
	}, d("2024-03-01"), nil)
	require.NoError(t, err)

	// close out with a final metered bill
	_, err = eservice.RecordReading(db, room.RoomID, d("2024-05-20"), decimal.NewFromInt(300), nil)
	require.NoError(t, err)
	rate := emodel.ElectricityRateModel{
		RateRoomID:    &room.RoomID,
		RateStartDate: d("2024-01-01"),
		RateEndDate:   d("2024-12-31"),
		RatePerKwh:    decimal.NewFromFloat(6.0),
	}
	require.NoError(t, db.Create(&rate).Error)

	terminated, err := TerminateLease(db, lease.LeaseID, dto.LeaseTerminateDTO{
		TerminationDate:   "2024-06-15",
		Reason:            strPtr("early move-out"),
		FinalMeterReading: decPtr(decimal.NewFromInt(450)),
	}, d("2024-06-10"), nil)
	require.NoError(t, err)
	assert.Equal(t, lmodel.LeaseStatusTerminated, terminated.StatusOn(d("2024-06-10")))

	var invoice invmodel.InvoiceModel
	require.NoError(t, db.First(&invoice,
		"invoice_lease_id = ? AND invoice_category = ?",
		lease.LeaseID, invmodel.InvoiceCategoryElectricity).Error)
	assert.True(t, decimal.NewFromInt(900).Equal(invoice.InvoiceDueAmount))
}
