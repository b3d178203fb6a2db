// file: internals/features/finance/invoices/dto/invoice_dto.go
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"rentalku_backend/internals/features/finance/invoices/model"
)

////////////////////////////////////////////////////////////////////////////////
// REQUESTS
////////////////////////////////////////////////////////////////////////////////

type InvoiceCreateDTO struct {
	LeaseID     int64           `json:"lease_id" validate:"required,min=1"`
	Category    string          `json:"category" validate:"required,oneof=rent electricity penalty deposit"`
	PeriodStart string          `json:"period_start" validate:"required,datetime=2006-01-02"`
	PeriodEnd   string          `json:"period_end" validate:"required,datetime=2006-01-02"`
	DueDate     string          `json:"due_date" validate:"required,datetime=2006-01-02"`
	DueAmount   decimal.Decimal `json:"due_amount" validate:"required"`
	Status      *string         `json:"status,omitempty" validate:"omitempty,oneof=unmatured overdue paid partial uncollectable returned canceled"`
}

type InvoiceUpdateDTO struct {
	DueDate    *string          `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DueAmount  *decimal.Decimal `json:"due_amount,omitempty"`
	PaidAmount *decimal.Decimal `json:"paid_amount,omitempty"`
	Status     *string          `json:"status,omitempty" validate:"omitempty,oneof=unmatured overdue paid partial uncollectable returned canceled"`
}

// Calculator requests. Pure computations: nothing is persisted.

type RentAmountRequestDTO struct {
	MonthlyRent decimal.Decimal  `json:"monthly_rent" validate:"required"`
	PaymentTerm string           `json:"payment_term" validate:"required,oneof=annual semi_annual seasonal monthly"`
	Discount    *decimal.Decimal `json:"discount,omitempty"`
}

type PeriodEndRequestDTO struct {
	PeriodStart string `json:"period_start" validate:"required,datetime=2006-01-02"`
	PaymentTerm string `json:"payment_term" validate:"required,oneof=annual semi_annual seasonal monthly"`
}

type RentNoteRequestDTO struct {
	BaseNote string          `json:"base_note,omitempty"`
	Discount decimal.Decimal `json:"discount" validate:"required"`
}

////////////////////////////////////////////////////////////////////////////////
// RESPONSES
////////////////////////////////////////////////////////////////////////////////

type InvoiceResponse struct {
	InvoiceID   int64           `json:"invoice_id"`
	LeaseID     int64           `json:"lease_id"`
	Category    string          `json:"category"`
	PeriodStart string          `json:"period_start"`
	PeriodEnd   string          `json:"period_end"`
	DueDate     string          `json:"due_date"`
	DueAmount   decimal.Decimal `json:"due_amount"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type RentAmountResponse struct {
	Amount      decimal.Decimal `json:"amount"`
	TermMonths  int             `json:"term_months"`
	MonthlyRent decimal.Decimal `json:"monthly_rent"`
}

type PeriodEndResponse struct {
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
}

type RentNoteResponse struct {
	Note string `json:"note"`
}

func ToInvoiceResponse(m *model.InvoiceModel) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:   m.InvoiceID,
		LeaseID:     m.InvoiceLeaseID,
		Category:    string(m.InvoiceCategory),
		PeriodStart: m.InvoicePeriodStart.Format("2006-01-02"),
		PeriodEnd:   m.InvoicePeriodEnd.Format("2006-01-02"),
		DueDate:     m.InvoiceDueDate.Format("2006-01-02"),
		DueAmount:   m.InvoiceDueAmount,
		PaidAmount:  m.InvoicePaidAmount,
		Status:      string(m.InvoiceStatus),
		CreatedAt:   m.InvoiceCreatedAt,
		UpdatedAt:   m.InvoiceUpdatedAt,
	}
}

func ToInvoiceResponses(models []model.InvoiceModel) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(models))
	for i := range models {
		out = append(out, ToInvoiceResponse(&models[i]))
	}
	return out
}
