// file: internals/features/finance/cashflows/model/cash_flow_model.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// =========================================================
// ENUMS — direction, account type, payment method
// =========================================================

type CashDirection string

const (
	CashDirectionIn       CashDirection = "in"
	CashDirectionOut      CashDirection = "out"
	CashDirectionTransfer CashDirection = "transfer"
)

func (d CashDirection) Valid() bool {
	switch d {
	case CashDirectionIn, CashDirectionOut, CashDirectionTransfer:
		return true
	}
	return false
}

type CashAccountType string

const (
	CashAccountTypeCash    CashAccountType = "cash"
	CashAccountTypeBank    CashAccountType = "bank"
	CashAccountTypeEWallet CashAccountType = "e_wallet"
)

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodLinePay      PaymentMethod = "line_pay"
	PaymentMethodOther        PaymentMethod = "other"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodBankTransfer, PaymentMethodLinePay, PaymentMethodOther:
		return true
	}
	return false
}

// =========================================================
// CATEGORY & ACCOUNT — reference tables
// =========================================================

type CashFlowCategoryModel struct {
	CategoryID          int64         `gorm:"column:category_id;primaryKey;autoIncrement" json:"category_id"`
	CategoryCode        string        `gorm:"column:category_code;type:text;not null;uniqueIndex:uq_cash_flow_category_code" json:"category_code"`
	CategoryName        string        `gorm:"column:category_name;type:text;not null" json:"category_name"`
	CategoryDirection   CashDirection `gorm:"column:category_direction;type:varchar(10);not null" json:"category_direction"`
	CategoryDescription *string       `gorm:"column:category_description;type:text" json:"category_description,omitempty"`
}

func (CashFlowCategoryModel) TableName() string {
	return "cash_flow_categories"
}

type CashAccountModel struct {
	AccountID   int64           `gorm:"column:account_id;primaryKey;autoIncrement" json:"account_id"`
	AccountName string          `gorm:"column:account_name;type:text;not null" json:"account_name"`
	AccountType CashAccountType `gorm:"column:account_type;type:varchar(20);not null" json:"account_type"`
	AccountNote *string         `gorm:"column:account_note;type:text" json:"account_note,omitempty"`
}

func (CashAccountModel) TableName() string {
	return "cash_accounts"
}

// =========================================================
// CASH FLOW — ledger entry
// =========================================================

// A room tag requires its building tag; the existence of any non-deleted
// row for a lease freezes that lease against destructive edits.
type CashFlowModel struct {
	// PK
	CashFlowID int64 `gorm:"column:cash_flow_id;primaryKey;autoIncrement" json:"cash_flow_id"`

	// FKs
	CashFlowCategoryID int64  `gorm:"column:cash_flow_category_id;not null;index:ix_cash_flow_category" json:"cash_flow_category_id"`
	CashFlowAccountID  int64  `gorm:"column:cash_flow_account_id;not null;index:ix_cash_flow_account" json:"cash_flow_account_id"`
	CashFlowLeaseID    *int64 `gorm:"column:cash_flow_lease_id;index:ix_cash_flow_lease" json:"cash_flow_lease_id,omitempty"`
	CashFlowBuildingID *int64 `gorm:"column:cash_flow_building_id" json:"cash_flow_building_id,omitempty"`
	CashFlowRoomID     *int64 `gorm:"column:cash_flow_room_id" json:"cash_flow_room_id,omitempty"`
	CashFlowInvoiceID  *int64 `gorm:"column:cash_flow_invoice_id" json:"cash_flow_invoice_id,omitempty"`

	CashFlowDate          time.Time       `gorm:"column:cash_flow_date;type:date;not null;index:ix_cash_flow_date" json:"cash_flow_date"`
	CashFlowAmount        decimal.Decimal `gorm:"column:cash_flow_amount;type:numeric(10,2);not null;check:chk_cash_flow_amount,cash_flow_amount >= 0" json:"cash_flow_amount"`
	CashFlowPaymentMethod PaymentMethod   `gorm:"column:cash_flow_payment_method;type:varchar(20);not null" json:"cash_flow_payment_method"`
	CashFlowNote          *string         `gorm:"column:cash_flow_note;type:text" json:"cash_flow_note,omitempty"`

	// Audit
	CashFlowCreatedBy *int64         `gorm:"column:cash_flow_created_by" json:"cash_flow_created_by,omitempty"`
	CashFlowUpdatedBy *int64         `gorm:"column:cash_flow_updated_by" json:"cash_flow_updated_by,omitempty"`
	CashFlowCreatedAt time.Time      `gorm:"column:cash_flow_created_at;not null;default:CURRENT_TIMESTAMP" json:"cash_flow_created_at"`
	CashFlowUpdatedAt time.Time      `gorm:"column:cash_flow_updated_at;not null;default:CURRENT_TIMESTAMP" json:"cash_flow_updated_at"`
	CashFlowDeletedAt gorm.DeletedAt `gorm:"column:cash_flow_deleted_at;index" json:"-"`

	// Owned (cascade)
	Attachments []CashFlowAttachmentModel `gorm:"foreignKey:AttachmentCashFlowID;references:CashFlowID;constraint:OnDelete:CASCADE" json:"attachments,omitempty"`
}

func (CashFlowModel) TableName() string {
	return "cash_flows"
}

func (m *CashFlowModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.CashFlowCreatedAt.IsZero() {
		m.CashFlowCreatedAt = now
	}
	m.CashFlowUpdatedAt = now
	return nil
}

func (m *CashFlowModel) BeforeUpdate(tx *gorm.DB) error {
	m.CashFlowUpdatedAt = time.Now()
	return nil
}

// =========================================================
// ATTACHMENT — cascade-owned by cash flow
// =========================================================

type CashFlowAttachmentModel struct {
	AttachmentID         int64  `gorm:"column:attachment_id;primaryKey;autoIncrement" json:"attachment_id"`
	AttachmentCashFlowID int64  `gorm:"column:attachment_cash_flow_id;not null;index:ix_attachment_cash_flow" json:"attachment_cash_flow_id"`
	AttachmentFileURL    string `gorm:"column:attachment_file_url;type:text;not null" json:"attachment_file_url"`
}

func (CashFlowAttachmentModel) TableName() string {
	return "cash_flow_attachments"
}
