// file: internals/features/rental/leases/model/lease_model_test.go
package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func timePtr(t time.Time) *time.Time { return &t }

func TestStatusOn(t *testing.T) {
	start := date("2024-03-01")
	end := date("2025-02-28")
	submitted := date("2024-02-20")

	tests := []struct {
		name  string
		lease LeaseModel
		today string
		want  LeaseStatus
	}{
		{
			name:  "never submitted is draft",
			lease: LeaseModel{LeaseStartDate: start, LeaseEndDate: end},
			today: "2024-06-01",
			want:  LeaseStatusDraft,
		},
		{
			name:  "submitted before start is pending",
			lease: LeaseModel{LeaseStartDate: start, LeaseEndDate: end, LeaseSubmittedAt: timePtr(submitted)},
			today: "2024-02-25",
			want:  LeaseStatusPending,
		},
		{
			name:  "submitted within term is active",
			lease: LeaseModel{LeaseStartDate: start, LeaseEndDate: end, LeaseSubmittedAt: timePtr(submitted)},
			today: "2024-06-15",
			want:  LeaseStatusActive,
		},
		{
			name:  "first day of term is active",
			lease: LeaseModel{LeaseStartDate: start, LeaseEndDate: end, LeaseSubmittedAt: timePtr(submitted)},
			today: "2024-03-01",
			want:  LeaseStatusActive,
		},
		{
			name:  "last day of term is active",
			lease: LeaseModel{LeaseStartDate: start, LeaseEndDate: end, LeaseSubmittedAt: timePtr(submitted)},
			today: "2025-02-28",
			want:  LeaseStatusActive,
		},
		{
			name:  "day after end is expired",
			lease: LeaseModel{LeaseStartDate: start, LeaseEndDate: end, LeaseSubmittedAt: timePtr(submitted)},
			today: "2025-03-01",
			want:  LeaseStatusExpired,
		},
		{
			name:  "unsubmitted past its end is still expired",
			lease: LeaseModel{LeaseStartDate: start, LeaseEndDate: end},
			today: "2025-03-01",
			want:  LeaseStatusExpired,
		},
		{
			name: "terminated wins over everything",
			lease: LeaseModel{
				LeaseStartDate: start, LeaseEndDate: end,
				LeaseSubmittedAt:  timePtr(submitted),
				LeaseTerminatedAt: timePtr(date("2024-08-01")),
			},
			today: "2024-06-15",
			want:  LeaseStatusTerminated,
		},
		{
			name: "terminated wins even after expiry",
			lease: LeaseModel{
				LeaseStartDate: start, LeaseEndDate: end,
				LeaseSubmittedAt:  timePtr(submitted),
				LeaseTerminatedAt: timePtr(date("2024-08-01")),
			},
			today: "2026-01-01",
			want:  LeaseStatusTerminated,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.lease.StatusOn(date(tc.today)))
		})
	}
}

// The derivation only looks at the date component, so any clock reading
// within the same day must agree.
func TestStatusOnIgnoresTimeOfDay(t *testing.T) {
	lease := LeaseModel{
		LeaseStartDate:   date("2024-03-01"),
		LeaseEndDate:     date("2025-02-28"),
		LeaseSubmittedAt: timePtr(date("2024-02-20")),
	}

	morning := time.Date(2025, 2, 28, 0, 0, 1, 0, time.UTC)
	night := time.Date(2025, 2, 28, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, lease.StatusOn(morning), lease.StatusOn(night))
	assert.Equal(t, LeaseStatusActive, lease.StatusOn(night))
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, LeaseStatusTerminated.Terminal())
	assert.True(t, LeaseStatusExpired.Terminal())
	assert.False(t, LeaseStatusDraft.Terminal())
	assert.False(t, LeaseStatusPending.Terminal())
	assert.False(t, LeaseStatusActive.Terminal())
}

func TestPaymentTermMonths(t *testing.T) {
	assert.Equal(t, 12, PaymentTermAnnual.Months())
	assert.Equal(t, 6, PaymentTermSemiAnnual.Months())
	assert.Equal(t, 3, PaymentTermSeasonal.Months())
	assert.Equal(t, 1, PaymentTermMonthly.Months())
}
