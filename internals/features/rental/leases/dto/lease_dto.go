// file: internals/features/rental/leases/dto/lease_dto.go
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	lmodel "rentalku_backend/internals/features/rental/leases/model"
	tenantdto "rentalku_backend/internals/features/rental/tenants/dto"
)

////////////////////////////////////////////////////////////////////////////////
// LEASES — DTO
////////////////////////////////////////////////////////////////////////////////

type LeaseAssetDTO struct {
	Type     string `json:"type" validate:"required,oneof=key fob remote-controller"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// Create (draft). Either tenant_id references an existing tenant or
// tenant_data resolves/creates one by personal_id.
type LeaseCreateDTO struct {
	RoomID     int64                      `json:"room_id" validate:"required"`
	TenantID   *int64                     `json:"tenant_id,omitempty"`
	TenantData *tenantdto.TenantUpsertDTO `json:"tenant_data,omitempty"`

	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`

	MonthlyRent decimal.Decimal `json:"monthly_rent" validate:"required"`
	Deposit     decimal.Decimal `json:"deposit"`
	PayRentOn   int             `json:"pay_rent_on" validate:"required,min=1,max=31"`
	PaymentTerm string          `json:"payment_term" validate:"required,oneof=annual semi_annual seasonal monthly"`

	VehiclePlate *string         `json:"vehicle_plate,omitempty"`
	Assets       []LeaseAssetDTO `json:"assets,omitempty" validate:"omitempty,dive"`
}

// Update (partial). Contract terms pass the editability guard; tenant_data
// is exempt from it.
type LeaseUpdateDTO struct {
	StartDate    *string          `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate      *string          `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	MonthlyRent  *decimal.Decimal `json:"monthly_rent,omitempty"`
	Deposit      *decimal.Decimal `json:"deposit,omitempty"`
	PayRentOn    *int             `json:"pay_rent_on,omitempty" validate:"omitempty,min=1,max=31"`
	PaymentTerm  *string          `json:"payment_term,omitempty" validate:"omitempty,oneof=annual semi_annual seasonal monthly"`
	VehiclePlate *string          `json:"vehicle_plate,omitempty"`
	Assets       []LeaseAssetDTO  `json:"assets,omitempty" validate:"omitempty,dive"`

	TenantData *tenantdto.TenantUpdateDTO `json:"tenant_data,omitempty"`
}

// HasContractChange reports whether any guarded field is present.
func (d LeaseUpdateDTO) HasContractChange() bool {
	return d.StartDate != nil || d.EndDate != nil || d.MonthlyRent != nil ||
		d.Deposit != nil || d.PayRentOn != nil || d.PaymentTerm != nil ||
		d.VehiclePlate != nil || d.Assets != nil
}

type LeaseAmendDTO struct {
	AmendmentType string `json:"amendment_type" validate:"required,oneof=rent_change discount other"`
	EffectiveDate string `json:"effective_date" validate:"required,datetime=2006-01-02"`

	OldMonthlyRent *decimal.Decimal `json:"old_monthly_rent,omitempty"`
	NewMonthlyRent *decimal.Decimal `json:"new_monthly_rent,omitempty"`

	DiscountType  *string          `json:"discount_type,omitempty" validate:"omitempty,oneof=fixed percent"`
	DiscountValue *decimal.Decimal `json:"discount_value,omitempty"`

	Reason *string `json:"reason,omitempty"`
}

type LeaseRenewDTO struct {
	NewEndDate      string           `json:"new_end_date" validate:"required,datetime=2006-01-02"`
	NewMonthlyRent  *decimal.Decimal `json:"new_monthly_rent,omitempty"`
	NewDeposit      *decimal.Decimal `json:"new_deposit,omitempty"`
	NewPayRentOn    *int             `json:"new_pay_rent_on,omitempty" validate:"omitempty,min=1,max=31"`
	NewPaymentTerm  *string          `json:"new_payment_term,omitempty" validate:"omitempty,oneof=annual semi_annual seasonal monthly"`
	NewVehiclePlate *string          `json:"new_vehicle_plate,omitempty"`
}

type LeaseTerminateDTO struct {
	TerminationDate string  `json:"termination_date" validate:"required,datetime=2006-01-02"`
	Reason          *string `json:"reason,omitempty"`

	// Optional final metered billing: the closing meter value read on the
	// termination date. When set, an electricity invoice is generated.
	FinalMeterReading *decimal.Decimal `json:"final_meter_reading,omitempty"`
	// Fallback rate per kWh when no rate row covers the date; defaults to
	// DEFAULT_ELECTRICITY_RATE from the environment.
	DefaultRatePerKwh *decimal.Decimal `json:"default_rate_per_kwh,omitempty"`
}

type ProrationRequestDTO struct {
	TerminationDate string `json:"termination_date" validate:"required,datetime=2006-01-02"`
}

type ProrationResponse struct {
	ProratedAmount decimal.Decimal `json:"prorated_amount"`
	MonthlyRent    decimal.Decimal `json:"monthly_rent"`
	DaysUsed       int             `json:"days_used"`
	DaysInMonth    int             `json:"days_in_month"`
}

////////////////////////////////////////////////////////////////////////////////
// RESPONSES
////////////////////////////////////////////////////////////////////////////////

type LeaseTenantResponse struct {
	TenantID int64  `json:"tenant_id"`
	Role     string `json:"tenant_role"`
	JoinedAt string `json:"joined_at"`
}

type LeaseResponse struct {
	LeaseID int64 `json:"lease_id"`
	RoomID  int64 `json:"room_id"`

	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	MonthlyRent decimal.Decimal `json:"monthly_rent"`
	Deposit     decimal.Decimal `json:"deposit"`
	PayRentOn   int             `json:"pay_rent_on"`
	PaymentTerm string          `json:"payment_term"`

	VehiclePlate *string             `json:"vehicle_plate,omitempty"`
	Assets       []lmodel.LeaseAsset `json:"assets,omitempty"`

	// Derived on every read, never stored
	Status string `json:"status"`

	SubmittedAt       *time.Time `json:"submitted_at,omitempty"`
	TerminatedAt      *string    `json:"terminated_at,omitempty"`
	TerminationReason *string    `json:"termination_reason,omitempty"`

	Tenants         []LeaseTenantResponse `json:"tenants,omitempty"`
	PrimaryTenantID *int64                `json:"tenant_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LeaseAmendmentResponse struct {
	AmendmentID   int64  `json:"amendment_id"`
	LeaseID       int64  `json:"lease_id"`
	AmendmentType string `json:"amendment_type"`
	EffectiveDate string `json:"effective_date"`

	OldMonthlyRent *decimal.Decimal `json:"old_monthly_rent,omitempty"`
	NewMonthlyRent *decimal.Decimal `json:"new_monthly_rent,omitempty"`
	DiscountType   *string          `json:"discount_type,omitempty"`
	DiscountValue  *decimal.Decimal `json:"discount_value,omitempty"`

	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS — Model <-> DTO
////////////////////////////////////////////////////////////////////////////////

// ToLeaseResponse derives the status for the given reference date.
func ToLeaseResponse(m lmodel.LeaseModel, today time.Time) LeaseResponse {
	tenants := make([]LeaseTenantResponse, 0, len(m.Tenants))
	var primaryID *int64
	for _, lt := range m.Tenants {
		tenants = append(tenants, LeaseTenantResponse{
			TenantID: lt.LeaseTenantTenantID,
			Role:     string(lt.LeaseTenantRole),
			JoinedAt: lt.LeaseTenantJoinedAt.Format("2006-01-02"),
		})
		if lt.LeaseTenantRole == lmodel.LeaseTenantRolePrimary {
			id := lt.LeaseTenantTenantID
			primaryID = &id
		}
	}

	var terminatedAt *string
	if m.LeaseTerminatedAt != nil {
		s := m.LeaseTerminatedAt.Format("2006-01-02")
		terminatedAt = &s
	}

	return LeaseResponse{
		LeaseID:           m.LeaseID,
		RoomID:            m.LeaseRoomID,
		StartDate:         m.LeaseStartDate.Format("2006-01-02"),
		EndDate:           m.LeaseEndDate.Format("2006-01-02"),
		MonthlyRent:       m.LeaseMonthlyRent,
		Deposit:           m.LeaseDeposit,
		PayRentOn:         m.LeasePayRentOn,
		PaymentTerm:       string(m.LeasePaymentTerm),
		VehiclePlate:      m.LeaseVehiclePlate,
		Assets:            m.LeaseAssets,
		Status:            string(m.StatusOn(today)),
		SubmittedAt:       m.LeaseSubmittedAt,
		TerminatedAt:      terminatedAt,
		TerminationReason: m.LeaseTerminationReason,
		Tenants:           tenants,
		PrimaryTenantID:   primaryID,
		CreatedAt:         m.LeaseCreatedAt,
		UpdatedAt:         m.LeaseUpdatedAt,
	}
}

func ToLeaseResponses(list []lmodel.LeaseModel, today time.Time) []LeaseResponse {
	out := make([]LeaseResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToLeaseResponse(m, today))
	}
	return out
}

func ToLeaseAmendmentResponse(m lmodel.LeaseAmendmentModel) LeaseAmendmentResponse {
	var dt *string
	if m.AmendmentDiscountType != nil {
		s := string(*m.AmendmentDiscountType)
		dt = &s
	}
	return LeaseAmendmentResponse{
		AmendmentID:    m.AmendmentID,
		LeaseID:        m.AmendmentLeaseID,
		AmendmentType:  string(m.AmendmentType),
		EffectiveDate:  m.AmendmentEffectiveDate.Format("2006-01-02"),
		OldMonthlyRent: m.AmendmentOldMonthlyRent,
		NewMonthlyRent: m.AmendmentNewMonthlyRent,
		DiscountType:   dt,
		DiscountValue:  m.AmendmentDiscountValue,
		Reason:         m.AmendmentReason,
		CreatedAt:      m.AmendmentCreatedAt,
	}
}

// ToAssets converts the DTO assets list into the JSONB model slice verbatim.
func ToAssets(in []LeaseAssetDTO) []lmodel.LeaseAsset {
	if in == nil {
		return nil
	}
	out := make([]lmodel.LeaseAsset, 0, len(in))
	for _, a := range in {
		out = append(out, lmodel.LeaseAsset{
			Type:     lmodel.LeaseAssetType(a.Type),
			Quantity: a.Quantity,
		})
	}
	return out
}
