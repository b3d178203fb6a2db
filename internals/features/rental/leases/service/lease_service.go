// file: internals/features/rental/leases/service/lease_service.go
package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rentalku_backend/internals/configs"
	cfservice "rentalku_backend/internals/features/finance/cashflows/service"
	invmodel "rentalku_backend/internals/features/finance/invoices/model"
	invservice "rentalku_backend/internals/features/finance/invoices/service"
	eservice "rentalku_backend/internals/features/rental/electricity/service"
	"rentalku_backend/internals/features/rental/leases/dto"
	lmodel "rentalku_backend/internals/features/rental/leases/model"
	roommodel "rentalku_backend/internals/features/rental/rooms/model"
	tmodel "rentalku_backend/internals/features/rental/tenants/model"
	tservice "rentalku_backend/internals/features/rental/tenants/service"

	helper "rentalku_backend/internals/helpers"
)

// Every transition runs in one transaction. Rooms are locked FOR UPDATE while
// the overlap rule is evaluated, and a lease row is locked for the duration of
// its own transition, so concurrent submissions cannot both pass the checks.

func isUniqueViolation(err error) bool {
	return err != nil &&
		(strings.Contains(err.Error(), "duplicate key value") ||
			strings.Contains(err.Error(), "UNIQUE constraint") ||
			strings.Contains(err.Error(), "unique constraint"))
}

// SQLite (tests) has no row locks; its transactions serialize on the
// database lock instead.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func findLeaseLocked(tx *gorm.DB, leaseID int64) (*lmodel.LeaseModel, error) {
	var lease lmodel.LeaseModel
	err := lockForUpdate(tx).First(&lease, "lease_id = ?", leaseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("lease %d not found", leaseID))
	}
	if err != nil {
		return nil, err
	}
	return &lease, nil
}

func reloadWithTenants(tx *gorm.DB, leaseID int64) (*lmodel.LeaseModel, error) {
	var lease lmodel.LeaseModel
	if err := tx.Preload("Tenants").First(&lease, "lease_id = ?", leaseID).Error; err != nil {
		return nil, err
	}
	return &lease, nil
}

// overlappingLease finds a submitted, non-terminated, non-deleted lease on
// the room whose interval touches [start, end]. Boundary-inclusive: intervals
// sharing a single day overlap. Draft proposals (never submitted) are exempt.
func overlappingLease(tx *gorm.DB, roomID int64, start, end time.Time, excludeLeaseID int64) (*lmodel.LeaseModel, error) {
	var existing lmodel.LeaseModel
	q := tx.
		Where("lease_room_id = ?", roomID).
		Where("lease_submitted_at IS NOT NULL").
		Where("lease_terminated_at IS NULL").
		Where("lease_start_date <= ? AND lease_end_date >= ?", end, start)
	if excludeLeaseID != 0 {
		q = q.Where("lease_id <> ?", excludeLeaseID)
	}
	err := q.First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

// guardEditable enforces the contract-term mutation gate: status must be
// draft or pending and no financial record may reference the lease.
func guardEditable(tx *gorm.DB, lease *lmodel.LeaseModel, today time.Time) error {
	status := lease.StatusOn(today)
	if status != lmodel.LeaseStatusDraft && status != lmodel.LeaseStatusPending {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("lease not editable: status is %s", status))
	}

	invoices, err := invservice.CountActive(tx, lease.LeaseID)
	if err != nil {
		return err
	}
	if invoices > 0 {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("lease not editable: %d invoice(s) reference it", invoices))
	}

	cashFlows, err := cfservice.CountActive(tx, lease.LeaseID)
	if err != nil {
		return err
	}
	if cashFlows > 0 {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("lease not editable: %d cash flow(s) reference it", cashFlows))
	}
	return nil
}

// =======================================================
// CREATE (draft)
// =======================================================

func CreateLease(db *gorm.DB, in dto.LeaseCreateDTO, today time.Time, actorID *int64) (*lmodel.LeaseModel, error) {
	startDate, err := helper.ParseDate(in.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := helper.ParseDate(in.EndDate)
	if err != nil {
		return nil, err
	}
	if !endDate.After(startDate) {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "end_date must be after start_date")
	}
	if in.MonthlyRent.IsNegative() || in.Deposit.IsNegative() {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "monthly_rent and deposit cannot be negative")
	}

	var created *lmodel.LeaseModel
	err = db.Transaction(func(tx *gorm.DB) error {
		// Lock the room row so the overlap check serializes against
		// concurrent creations/submissions on the same room.
		var room roommodel.RoomModel
		if err := lockForUpdate(tx).First(&room, "room_id = ?", in.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("room %d not found", in.RoomID))
			}
			return err
		}

		// Resolve the primary tenant.
		var tenantID int64
		switch {
		case in.TenantID != nil:
			var tenant tmodel.TenantModel
			if err := tx.First(&tenant, "tenant_id = ?", *in.TenantID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("tenant %d not found", *in.TenantID))
				}
				return err
			}
			tenantID = tenant.TenantID
		case in.TenantData != nil:
			tenant, err := tservice.ResolveOrCreate(tx, *in.TenantData, actorID)
			if err != nil {
				return err
			}
			tenantID = tenant.TenantID
		default:
			return fiber.NewError(fiber.StatusBadRequest, "either tenant_id or tenant_data is required")
		}

		// Double-booking guard against committed (submitted) leases.
		if existing, err := overlappingLease(tx, in.RoomID, startDate, endDate, 0); err != nil {
			return err
		} else if existing != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				fmt.Sprintf("room %d already has a submitted lease (lease_id %d) overlapping %s..%s",
					in.RoomID, existing.LeaseID, in.StartDate, in.EndDate))
		}

		lease := lmodel.LeaseModel{
			LeaseRoomID:       in.RoomID,
			LeaseStartDate:    startDate,
			LeaseEndDate:      endDate,
			LeaseMonthlyRent:  in.MonthlyRent,
			LeaseDeposit:      in.Deposit,
			LeasePayRentOn:    in.PayRentOn,
			LeasePaymentTerm:  lmodel.PaymentTerm(in.PaymentTerm),
			LeaseVehiclePlate: in.VehiclePlate,
			LeaseAssets:       dto.ToAssets(in.Assets),
			LeaseCreatedBy:    actorID,
		}
		if err := tx.Create(&lease).Error; err != nil {
			return err
		}

		link := lmodel.LeaseTenantModel{
			LeaseTenantLeaseID:  lease.LeaseID,
			LeaseTenantTenantID: tenantID,
			LeaseTenantRole:     lmodel.LeaseTenantRolePrimary,
			LeaseTenantJoinedAt: today,
		}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}

		created, err = reloadWithTenants(tx, lease.LeaseID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// =======================================================
// UPDATE (guarded contract terms; exempt tenant data)
// =======================================================

func UpdateLease(db *gorm.DB, leaseID int64, in dto.LeaseUpdateDTO, today time.Time, actorID *int64) (*lmodel.LeaseModel, error) {
	var updated *lmodel.LeaseModel
	err := db.Transaction(func(tx *gorm.DB) error {
		lease, err := findLeaseLocked(tx, leaseID)
		if err != nil {
			return err
		}

		// Tenant demographics bypass the guard: they have no financial effect.
		if in.TenantData != nil {
			var primary lmodel.LeaseTenantModel
			err := tx.First(&primary,
				"lease_tenant_lease_id = ? AND lease_tenant_role = ?",
				leaseID, lmodel.LeaseTenantRolePrimary).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusNotFound, "lease has no primary tenant")
				}
				return err
			}
			if _, err := tservice.UpdateTenant(tx, primary.LeaseTenantTenantID, *in.TenantData, actorID); err != nil {
				return err
			}
		}

		if in.HasContractChange() {
			if err := guardEditable(tx, lease, today); err != nil {
				return err
			}

			startDate := lease.LeaseStartDate
			endDate := lease.LeaseEndDate
			if in.StartDate != nil {
				if startDate, err = helper.ParseDate(*in.StartDate); err != nil {
					return err
				}
			}
			if in.EndDate != nil {
				if endDate, err = helper.ParseDate(*in.EndDate); err != nil {
					return err
				}
			}
			if !endDate.After(startDate) {
				return fiber.NewError(fiber.StatusUnprocessableEntity, "end_date must be after start_date")
			}

			if in.StartDate != nil || in.EndDate != nil {
				// Re-run the double-booking guard when dates move.
				var room roommodel.RoomModel
				if err := lockForUpdate(tx).First(&room, "room_id = ?", lease.LeaseRoomID).Error; err != nil {
					return err
				}
				if existing, err := overlappingLease(tx, lease.LeaseRoomID, startDate, endDate, lease.LeaseID); err != nil {
					return err
				} else if existing != nil {
					return fiber.NewError(fiber.StatusUnprocessableEntity,
						fmt.Sprintf("room %d already has a submitted lease (lease_id %d) overlapping the new dates",
							lease.LeaseRoomID, existing.LeaseID))
				}
			}

			lease.LeaseStartDate = startDate
			lease.LeaseEndDate = endDate
			if in.MonthlyRent != nil {
				if in.MonthlyRent.IsNegative() {
					return fiber.NewError(fiber.StatusUnprocessableEntity, "monthly_rent cannot be negative")
				}
				lease.LeaseMonthlyRent = *in.MonthlyRent
			}
			if in.Deposit != nil {
				if in.Deposit.IsNegative() {
					return fiber.NewError(fiber.StatusUnprocessableEntity, "deposit cannot be negative")
				}
				lease.LeaseDeposit = *in.Deposit
			}
			if in.PayRentOn != nil {
				lease.LeasePayRentOn = *in.PayRentOn
			}
			if in.PaymentTerm != nil {
				lease.LeasePaymentTerm = lmodel.PaymentTerm(*in.PaymentTerm)
			}
			if in.VehiclePlate != nil {
				lease.LeaseVehiclePlate = in.VehiclePlate
			}
			if in.Assets != nil {
				lease.LeaseAssets = dto.ToAssets(in.Assets)
			}
			lease.LeaseUpdatedBy = actorID

			if err := tx.Save(lease).Error; err != nil {
				return err
			}
		}

		updated, err = reloadWithTenants(tx, leaseID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// =======================================================
// SUBMIT (draft → pending/active boundary)
// =======================================================

// SubmitLease finalizes a draft. Pure status advance: it never touches the
// dates and never generates an invoice. Single-fire: a second call is a 409.
func SubmitLease(db *gorm.DB, leaseID int64, now time.Time, actorID *int64) (*lmodel.LeaseModel, error) {
	today := helper.DateOnly(now)

	var submitted *lmodel.LeaseModel
	err := db.Transaction(func(tx *gorm.DB) error {
		lease, err := findLeaseLocked(tx, leaseID)
		if err != nil {
			return err
		}

		if lease.LeaseSubmittedAt != nil {
			return fiber.NewError(fiber.StatusConflict,
				fmt.Sprintf("lease %d already submitted at %s", leaseID, lease.LeaseSubmittedAt.Format(time.RFC3339)))
		}
		if status := lease.StatusOn(today); status != lmodel.LeaseStatusDraft {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				fmt.Sprintf("cannot submit lease with status %s", status))
		}

		invoices, err := invservice.CountActive(tx, leaseID)
		if err != nil {
			return err
		}
		if invoices > 0 {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				fmt.Sprintf("cannot submit: %d invoice(s) already reference the lease", invoices))
		}
		cashFlows, err := cfservice.CountActive(tx, leaseID)
		if err != nil {
			return err
		}
		if cashFlows > 0 {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				fmt.Sprintf("cannot submit: %d cash flow(s) already reference the lease", cashFlows))
		}

		// Submission commits the date range: re-run the overlap rule under
		// the room lock so two concurrent submissions cannot both pass.
		var room roommodel.RoomModel
		if err := lockForUpdate(tx).First(&room, "room_id = ?", lease.LeaseRoomID).Error; err != nil {
			return err
		}
		if existing, err := overlappingLease(tx, lease.LeaseRoomID, lease.LeaseStartDate, lease.LeaseEndDate, lease.LeaseID); err != nil {
			return err
		} else if existing != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				fmt.Sprintf("room %d already has a submitted lease (lease_id %d) overlapping this one",
					lease.LeaseRoomID, existing.LeaseID))
		}

		ts := now
		lease.LeaseSubmittedAt = &ts
		lease.LeaseUpdatedBy = actorID
		if err := tx.Save(lease).Error; err != nil {
			return err
		}

		submitted, err = reloadWithTenants(tx, leaseID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return submitted, nil
}

// =======================================================
// AMEND (active only)
// =======================================================

// AmendLease records an immutable economics change without touching the
// lease row. The only sanctioned mutation path while a lease is active.
func AmendLease(db *gorm.DB, leaseID int64, in dto.LeaseAmendDTO, today time.Time, actorID *int64) (*lmodel.LeaseAmendmentModel, error) {
	effectiveDate, err := helper.ParseDate(in.EffectiveDate)
	if err != nil {
		return nil, err
	}

	amendType := lmodel.AmendmentType(in.AmendmentType)
	switch amendType {
	case lmodel.AmendmentTypeRentChange:
		if in.OldMonthlyRent == nil || in.NewMonthlyRent == nil {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity,
				"rent_change amendment requires old_monthly_rent and new_monthly_rent")
		}
		if in.OldMonthlyRent.IsNegative() || in.NewMonthlyRent.IsNegative() {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "rent amounts cannot be negative")
		}
	case lmodel.AmendmentTypeDiscount:
		if in.DiscountType == nil || in.DiscountValue == nil {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity,
				"discount amendment requires discount_type and discount_value")
		}
	}

	var amendment *lmodel.LeaseAmendmentModel
	err = db.Transaction(func(tx *gorm.DB) error {
		lease, err := findLeaseLocked(tx, leaseID)
		if err != nil {
			return err
		}

		if status := lease.StatusOn(today); status != lmodel.LeaseStatusActive {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				fmt.Sprintf("cannot amend lease with status %s; only active leases can be amended", status))
		}
		if !effectiveDate.After(helper.DateOnly(today)) {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "effective_date must be in the future")
		}

		if amendType == lmodel.AmendmentTypeRentChange {
			var dup lmodel.LeaseAmendmentModel
			err := tx.First(&dup,
				"amendment_lease_id = ? AND amendment_type = ? AND amendment_effective_date = ?",
				leaseID, lmodel.AmendmentTypeRentChange, effectiveDate).Error
			if err == nil {
				return fiber.NewError(fiber.StatusConflict,
					fmt.Sprintf("a rent_change amendment effective %s already exists for lease %d", in.EffectiveDate, leaseID))
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		var discountType *lmodel.DiscountType
		if in.DiscountType != nil {
			dt := lmodel.DiscountType(*in.DiscountType)
			discountType = &dt
		}
		row := lmodel.LeaseAmendmentModel{
			AmendmentLeaseID:        leaseID,
			AmendmentType:           amendType,
			AmendmentEffectiveDate:  effectiveDate,
			AmendmentOldMonthlyRent: in.OldMonthlyRent,
			AmendmentNewMonthlyRent: in.NewMonthlyRent,
			AmendmentDiscountType:   discountType,
			AmendmentDiscountValue:  in.DiscountValue,
			AmendmentReason:         in.Reason,
			AmendmentCreatedBy:      actorID,
		}
		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict,
					fmt.Sprintf("a rent_change amendment effective %s already exists for lease %d", in.EffectiveDate, leaseID))
			}
			return err
		}
		amendment = &row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return amendment, nil
}

// =======================================================
// RENEW (active only)
// =======================================================

// RenewLease extends the contract forward. Unlike amendment this mutates the
// lease row directly; a renewal is a forward-looking extension, not a
// retroactive adjustment, so no side record is kept.
func RenewLease(db *gorm.DB, leaseID int64, in dto.LeaseRenewDTO, today time.Time, actorID *int64) (*lmodel.LeaseModel, error) {
	newEndDate, err := helper.ParseDate(in.NewEndDate)
	if err != nil {
		return nil, err
	}

	var renewed *lmodel.LeaseModel
	err = db.Transaction(func(tx *gorm.DB) error {
		lease, err := findLeaseLocked(tx, leaseID)
		if err != nil {
			return err
		}

		if status := lease.StatusOn(today); status != lmodel.LeaseStatusActive {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				fmt.Sprintf("cannot renew lease with status %s; only active leases can be renewed", status))
		}
		if !newEndDate.After(lease.LeaseEndDate) {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				fmt.Sprintf("new_end_date (%s) must be after current end_date (%s)",
					in.NewEndDate, lease.LeaseEndDate.Format("2006-01-02")))
		}

		lease.LeaseEndDate = newEndDate
		if in.NewMonthlyRent != nil {
			if in.NewMonthlyRent.IsNegative() {
				return fiber.NewError(fiber.StatusUnprocessableEntity, "new_monthly_rent cannot be negative")
			}
			lease.LeaseMonthlyRent = *in.NewMonthlyRent
		}
		if in.NewDeposit != nil {
			if in.NewDeposit.IsNegative() {
				return fiber.NewError(fiber.StatusUnprocessableEntity, "new_deposit cannot be negative")
			}
			lease.LeaseDeposit = *in.NewDeposit
		}
		if in.NewPayRentOn != nil {
			lease.LeasePayRentOn = *in.NewPayRentOn
		}
		if in.NewPaymentTerm != nil {
			lease.LeasePaymentTerm = lmodel.PaymentTerm(*in.NewPaymentTerm)
		}
		if in.NewVehiclePlate != nil {
			lease.LeaseVehiclePlate = in.NewVehiclePlate
		}
		lease.LeaseUpdatedBy = actorID

		if err := tx.Save(lease).Error; err != nil {
			return err
		}
		renewed, err = reloadWithTenants(tx, leaseID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return renewed, nil
}

// =======================================================
// TERMINATE (active or pending)
// =======================================================

// TerminateLease ends a tenancy early or at term. Effects, in order and in
// one transaction: optional final metered electricity invoice, cancellation
// of strictly-future invoices, then the irrevocable terminated_at mark.
func TerminateLease(db *gorm.DB, leaseID int64, in dto.LeaseTerminateDTO, now time.Time, actorID *int64) (*lmodel.LeaseModel, error) {
	terminationDate, err := helper.ParseDate(in.TerminationDate)
	if err != nil {
		return nil, err
	}
	today := helper.DateOnly(now)

	var terminated *lmodel.LeaseModel
	err = db.Transaction(func(tx *gorm.DB) error {
		lease, err := findLeaseLocked(tx, leaseID)
		if err != nil {
			return err
		}

		status := lease.StatusOn(today)
		if status != lmodel.LeaseStatusActive && status != lmodel.LeaseStatusPending {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				fmt.Sprintf("cannot terminate lease with status %s; only active or pending leases can be terminated", status))
		}
		if terminationDate.Before(lease.LeaseStartDate) {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				fmt.Sprintf("termination_date (%s) cannot be before lease start_date (%s)",
					in.TerminationDate, lease.LeaseStartDate.Format("2006-01-02")))
		}
		if terminationDate.After(lease.LeaseEndDate) {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				fmt.Sprintf("termination_date (%s) cannot be after lease end_date (%s)",
					in.TerminationDate, lease.LeaseEndDate.Format("2006-01-02")))
		}

		// 1. Final metered billing, when a closing reading is supplied.
		if in.FinalMeterReading != nil {
			if _, err := eservice.RecordReading(tx, lease.LeaseRoomID, terminationDate, *in.FinalMeterReading, actorID); err != nil {
				return err
			}
			defaultRate := in.DefaultRatePerKwh
			if defaultRate == nil {
				if parsed, perr := decimal.NewFromString(configs.DefaultElectricityRate); perr == nil {
					defaultRate = &parsed
				}
			}
			bill, err := eservice.CalculateBill(tx, lease.LeaseRoomID, *in.FinalMeterReading, terminationDate, defaultRate)
			if err != nil {
				return err
			}

			periodStart := bill.PreviousDate
			if periodStart.Before(lease.LeaseStartDate) {
				periodStart = lease.LeaseStartDate
			}
			if _, err := invservice.CreateInvoice(tx, leaseID, invmodel.InvoiceCategoryElectricity,
				periodStart, terminationDate, terminationDate, bill.Amount,
				invmodel.PaymentStatusOverdue, actorID); err != nil {
				if errors.Is(err, invservice.ErrDuplicatePeriod) || isUniqueViolation(err) {
					return fiber.NewError(fiber.StatusConflict,
						"an electricity invoice for this period already exists")
				}
				return err
			}
		}

		// 2. Future-dated obligations are void once the tenancy ends.
		if _, err := invservice.CancelFuture(tx, leaseID, terminationDate, actorID); err != nil {
			return err
		}

		// 3. The irrevocable mark. There is no un-terminate.
		td := terminationDate
		lease.LeaseTerminatedAt = &td
		lease.LeaseTerminationReason = in.Reason
		lease.LeaseUpdatedBy = actorID
		if err := tx.Save(lease).Error; err != nil {
			return err
		}

		terminated, err = reloadWithTenants(tx, leaseID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return terminated, nil
}

// =======================================================
// READS
// =======================================================

func GetLease(db *gorm.DB, leaseID int64) (*lmodel.LeaseModel, error) {
	var lease lmodel.LeaseModel
	err := db.Preload("Tenants").First(&lease, "lease_id = ?", leaseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("lease %d not found", leaseID))
	}
	if err != nil {
		return nil, err
	}
	return &lease, nil
}

type ListFilter struct {
	TenantID *int64
	RoomID   *int64
	Status   *lmodel.LeaseStatus // derived filter, applied after the fetch
	Offset   int
	Limit    int
}

// ListLeases returns leases newest-first. The status filter works on the
// derived status, so it is applied in memory after the scan.
func ListLeases(db *gorm.DB, f ListFilter, today time.Time) ([]lmodel.LeaseModel, int64, error) {
	q := db.Model(&lmodel.LeaseModel{}).Preload("Tenants")
	if f.RoomID != nil {
		q = q.Where("lease_room_id = ?", *f.RoomID)
	}
	if f.TenantID != nil {
		q = q.Where("lease_id IN (?)",
			db.Model(&lmodel.LeaseTenantModel{}).
				Select("lease_tenant_lease_id").
				Where("lease_tenant_tenant_id = ?", *f.TenantID))
	}

	var leases []lmodel.LeaseModel
	if err := q.Order("lease_created_at DESC").Find(&leases).Error; err != nil {
		return nil, 0, err
	}

	if f.Status != nil {
		filtered := leases[:0]
		for _, l := range leases {
			if l.StatusOn(today) == *f.Status {
				filtered = append(filtered, l)
			}
		}
		leases = filtered
	}

	total := int64(len(leases))
	if f.Offset > 0 {
		if f.Offset >= len(leases) {
			leases = nil
		} else {
			leases = leases[f.Offset:]
		}
	}
	if f.Limit > 0 && len(leases) > f.Limit {
		leases = leases[:f.Limit]
	}
	return leases, total, nil
}
