// file: internals/features/finance/invoices/service/invoice_calc.go
package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Pure rent/period calculators used when constructing invoices.

// CalculateRentAmount returns monthly_rent × term_months − discount,
// floored at zero.
func CalculateRentAmount(monthlyRent decimal.Decimal, paymentTermMonths int, discount decimal.Decimal) (decimal.Decimal, error) {
	if paymentTermMonths < 1 {
		return decimal.Zero, fmt.Errorf("payment_term_months must be at least 1")
	}
	if discount.IsNegative() {
		return decimal.Zero, fmt.Errorf("discount cannot be negative")
	}

	total := monthlyRent.Mul(decimal.NewFromInt(int64(paymentTermMonths))).Sub(discount)
	if total.IsNegative() {
		return decimal.Zero, nil
	}
	return total, nil
}

// CalculatePeriodEnd adds the payment term to period_start and lands on the
// day before the same day-of-month in the target month:
//
//	2024-01-01 + 1 month → 2024-01-31
//	2024-01-15 + 1 month → 2024-02-14
//	2024-01-31 + 1 month → 2024-02-29 (day 31 overflows February; the
//	clamped last day of the month is already the period end)
func CalculatePeriodEnd(periodStart time.Time, paymentTermMonths int) (time.Time, error) {
	if paymentTermMonths < 1 {
		return time.Time{}, fmt.Errorf("payment_term_months must be at least 1")
	}

	year := periodStart.Year()
	month := int(periodStart.Month()) + paymentTermMonths
	for month > 12 {
		month -= 12
		year++
	}

	lastDay := daysInMonth(year, time.Month(month))
	if periodStart.Day() > lastDay {
		return time.Date(year, time.Month(month), lastDay, 0, 0, 0, 0, time.UTC), nil
	}
	sameDay := time.Date(year, time.Month(month), periodStart.Day(), 0, 0, 0, 0, time.UTC)
	return sameDay.AddDate(0, 0, -1), nil
}

// FormatRentNote appends discount information to a rent payment note.
func FormatRentNote(baseNote string, discount decimal.Decimal) string {
	if !discount.IsPositive() {
		return baseNote
	}
	discountText := fmt.Sprintf("(Includes NT$%s discount)", groupThousands(discount))
	if strings.TrimSpace(baseNote) == "" {
		return discountText
	}
	return strings.TrimSpace(baseNote) + " " + discountText
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func groupThousands(d decimal.Decimal) string {
	s := d.Round(0).String()
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}
