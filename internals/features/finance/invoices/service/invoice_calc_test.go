// file: internals/features/finance/invoices/service/invoice_calc_test.go
package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCalculateRentAmount(t *testing.T) {
	tests := []struct {
		name     string
		monthly  int64
		months   int
		discount int64
		want     string
	}{
		{"monthly no discount", 15000, 1, 0, "15000"},
		{"annual no discount", 15000, 12, 0, "180000"},
		{"seasonal with discount", 15000, 3, 5000, "40000"},
		{"discount floors at zero", 1000, 1, 5000, "0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CalculateRentAmount(
				decimal.NewFromInt(tc.monthly), tc.months, decimal.NewFromInt(tc.discount))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestCalculateRentAmountRejectsBadInput(t *testing.T) {
	_, err := CalculateRentAmount(decimal.NewFromInt(1000), 0, decimal.Zero)
	require.Error(t, err)

	_, err = CalculateRentAmount(decimal.NewFromInt(1000), 1, decimal.NewFromInt(-1))
	require.Error(t, err)
}

func TestCalculatePeriodEnd(t *testing.T) {
	tests := []struct {
		name   string
		start  string
		months int
		want   string
	}{
		{"first of month plus one month", "2024-01-01", 1, "2024-01-31"},
		{"mid-month plus one month", "2024-01-15", 1, "2024-02-14"},
		// day 31 overflows February; the clamped last day is the period end
		{"month-end overflow into leap february", "2024-01-31", 1, "2024-02-29"},
		{"month-end overflow into non-leap february", "2023-01-31", 1, "2023-02-28"},
		{"31st into a 30-day month", "2024-03-31", 1, "2024-04-30"},
		{"seasonal term", "2024-01-15", 3, "2024-04-14"},
		{"annual term crosses the year", "2024-02-01", 12, "2025-01-31"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CalculatePeriodEnd(d(tc.start), tc.months)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Format("2006-01-02"))
		})
	}
}

func TestCalculatePeriodEndRejectsZeroTerm(t *testing.T) {
	_, err := CalculatePeriodEnd(d("2024-01-01"), 0)
	require.Error(t, err)
}

func TestFormatRentNote(t *testing.T) {
	assert.Equal(t, "March rent", FormatRentNote("March rent", decimal.Zero))
	assert.Equal(t,
		"March rent (Includes NT$1,500 discount)",
		FormatRentNote("March rent", decimal.NewFromInt(1500)))
	assert.Equal(t,
		"(Includes NT$25,000 discount)",
		FormatRentNote("", decimal.NewFromInt(25000)))
	assert.Equal(t,
		"(Includes NT$500 discount)",
		FormatRentNote("  ", decimal.NewFromInt(500)))
}
