// file: internals/features/finance/cashflows/dto/cash_flow_dto.go
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"rentalku_backend/internals/features/finance/cashflows/model"
)

////////////////////////////////////////////////////////////////////////////////
// REQUESTS
////////////////////////////////////////////////////////////////////////////////

type CashFlowCategoryCreateDTO struct {
	Code        string  `json:"code" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Direction   string  `json:"direction" validate:"required,oneof=in out transfer"`
	Description *string `json:"description,omitempty"`
}

type CashAccountCreateDTO struct {
	Name string  `json:"name" validate:"required"`
	Type string  `json:"type" validate:"required,oneof=cash bank e_wallet"`
	Note *string `json:"note,omitempty"`
}

type CashFlowCreateDTO struct {
	CategoryID int64  `json:"category_id" validate:"required,min=1"`
	AccountID  int64  `json:"account_id" validate:"required,min=1"`
	LeaseID    *int64 `json:"lease_id,omitempty"`
	BuildingID *int64 `json:"building_id,omitempty"`
	RoomID     *int64 `json:"room_id,omitempty"`
	InvoiceID  *int64 `json:"invoice_id,omitempty"`

	Date          string          `json:"date" validate:"required,datetime=2006-01-02"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	PaymentMethod string          `json:"payment_method" validate:"required,oneof=cash bank_transfer line_pay other"`
	Note          *string         `json:"note,omitempty"`

	AttachmentURLs []string `json:"attachment_urls,omitempty" validate:"omitempty,dive,url"`
}

type CashFlowUpdateDTO struct {
	CategoryID    *int64           `json:"category_id,omitempty" validate:"omitempty,min=1"`
	AccountID     *int64           `json:"account_id,omitempty" validate:"omitempty,min=1"`
	Date          *string          `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	PaymentMethod *string          `json:"payment_method,omitempty" validate:"omitempty,oneof=cash bank_transfer line_pay other"`
	Note          *string          `json:"note,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// RESPONSES
////////////////////////////////////////////////////////////////////////////////

type CashFlowCategoryResponse struct {
	CategoryID  int64   `json:"category_id"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Direction   string  `json:"direction"`
	Description *string `json:"description,omitempty"`
}

type CashAccountResponse struct {
	AccountID int64   `json:"account_id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Note      *string `json:"note,omitempty"`
}

type CashFlowResponse struct {
	CashFlowID int64  `json:"cash_flow_id"`
	CategoryID int64  `json:"category_id"`
	AccountID  int64  `json:"account_id"`
	LeaseID    *int64 `json:"lease_id,omitempty"`
	BuildingID *int64 `json:"building_id,omitempty"`
	RoomID     *int64 `json:"room_id,omitempty"`
	InvoiceID  *int64 `json:"invoice_id,omitempty"`

	Date          string          `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	Note          *string         `json:"note,omitempty"`

	AttachmentURLs []string  `json:"attachment_urls,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ToCategoryResponse(m *model.CashFlowCategoryModel) CashFlowCategoryResponse {
	return CashFlowCategoryResponse{
		CategoryID:  m.CategoryID,
		Code:        m.CategoryCode,
		Name:        m.CategoryName,
		Direction:   string(m.CategoryDirection),
		Description: m.CategoryDescription,
	}
}

func ToAccountResponse(m *model.CashAccountModel) CashAccountResponse {
	return CashAccountResponse{
		AccountID: m.AccountID,
		Name:      m.AccountName,
		Type:      string(m.AccountType),
		Note:      m.AccountNote,
	}
}

func ToCashFlowResponse(m *model.CashFlowModel) CashFlowResponse {
	urls := make([]string, 0, len(m.Attachments))
	for _, a := range m.Attachments {
		urls = append(urls, a.AttachmentFileURL)
	}
	return CashFlowResponse{
		CashFlowID:     m.CashFlowID,
		CategoryID:     m.CashFlowCategoryID,
		AccountID:      m.CashFlowAccountID,
		LeaseID:        m.CashFlowLeaseID,
		BuildingID:     m.CashFlowBuildingID,
		RoomID:         m.CashFlowRoomID,
		InvoiceID:      m.CashFlowInvoiceID,
		Date:           m.CashFlowDate.Format("2006-01-02"),
		Amount:         m.CashFlowAmount,
		PaymentMethod:  string(m.CashFlowPaymentMethod),
		Note:           m.CashFlowNote,
		AttachmentURLs: urls,
		CreatedAt:      m.CashFlowCreatedAt,
		UpdatedAt:      m.CashFlowUpdatedAt,
	}
}

func ToCashFlowResponses(models []model.CashFlowModel) []CashFlowResponse {
	out := make([]CashFlowResponse, 0, len(models))
	for i := range models {
		out = append(out, ToCashFlowResponse(&models[i]))
	}
	return out
}
