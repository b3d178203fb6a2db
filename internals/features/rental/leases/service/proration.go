// file: internals/features/rental/leases/service/proration.go
package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// ProrationResult breaks down a partial-month rent calculation.
type ProrationResult struct {
	ProratedAmount decimal.Decimal
	MonthlyRent    decimal.Decimal
	DaysUsed       int
	DaysInMonth    int
}

// CalculateProration computes the rent owed for the partial month ending on
// the termination date: round(monthly_rent × day / days_in_month).
//
// Rounding is half-up (shopspring Round — half away from zero, identical for
// the non-negative rents admitted here). 30000 on 2024-02-15 → 15517.
func CalculateProration(monthlyRent decimal.Decimal, terminationDate time.Time) (*ProrationResult, error) {
	if monthlyRent.IsNegative() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "monthly_rent cannot be negative")
	}

	daysUsed := terminationDate.Day()
	// Day 0 of the next month is the last day of the termination month.
	daysInMonth := time.Date(terminationDate.Year(), terminationDate.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()

	prorated := monthlyRent.
		Mul(decimal.NewFromInt(int64(daysUsed))).
		Div(decimal.NewFromInt(int64(daysInMonth))).
		Round(0)

	return &ProrationResult{
		ProratedAmount: prorated,
		MonthlyRent:    monthlyRent,
		DaysUsed:       daysUsed,
		DaysInMonth:    daysInMonth,
	}, nil
}
