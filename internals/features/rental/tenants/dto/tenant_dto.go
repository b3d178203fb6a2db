// file: internals/features/rental/tenants/dto/tenant_dto.go
package dto

import (
	"time"

	tmodel "rentalku_backend/internals/features/rental/tenants/model"
)

////////////////////////////////////////////////////////////////////////////////
// TENANTS — DTO
////////////////////////////////////////////////////////////////////////////////

type EmergencyContactDTO struct {
	FirstName    string `json:"first_name" validate:"required"`
	LastName     string `json:"last_name" validate:"required"`
	Relationship string `json:"relationship" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
}

// TenantUpsertDTO creates or updates a tenant keyed by personal_id.
type TenantUpsertDTO struct {
	FirstName  string  `json:"first_name" validate:"required"`
	LastName   string  `json:"last_name" validate:"required"`
	Gender     string  `json:"gender" validate:"required,oneof=male female other"`
	Birthday   string  `json:"birthday" validate:"required,datetime=2006-01-02"`
	PersonalID string  `json:"personal_id" validate:"required"`
	Phone      string  `json:"phone" validate:"required"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	LineID     *string `json:"line_id,omitempty"`
	Address    string  `json:"address" validate:"required"`

	EmergencyContacts []EmergencyContactDTO `json:"emergency_contacts,omitempty" validate:"omitempty,dive"`
}

// TenantUpdateDTO is a partial update by id; demographic fields only, so it
// is exempt from the lease editability guard.
type TenantUpdateDTO struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Gender    *string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Birthday  *string `json:"birthday,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	LineID    *string `json:"line_id,omitempty"`
	Address   *string `json:"address,omitempty"`

	EmergencyContacts []EmergencyContactDTO `json:"emergency_contacts,omitempty" validate:"omitempty,dive"`
}

type EmergencyContactResponse struct {
	ContactID    int64  `json:"contact_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
}

type TenantResponse struct {
	TenantID   int64   `json:"tenant_id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Gender     string  `json:"gender"`
	Birthday   string  `json:"birthday"`
	PersonalID string  `json:"personal_id"`
	Phone      string  `json:"phone"`
	Email      *string `json:"email,omitempty"`
	LineID     *string `json:"line_id,omitempty"`
	Address    string  `json:"address"`

	EmergencyContacts []EmergencyContactResponse `json:"emergency_contacts,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToTenantResponse(m tmodel.TenantModel) TenantResponse {
	contacts := make([]EmergencyContactResponse, 0, len(m.EmergencyContacts))
	for _, ec := range m.EmergencyContacts {
		contacts = append(contacts, EmergencyContactResponse{
			ContactID:    ec.ContactID,
			FirstName:    ec.ContactFirstName,
			LastName:     ec.ContactLastName,
			Relationship: ec.ContactRelationship,
			Phone:        ec.ContactPhone,
		})
	}
	return TenantResponse{
		TenantID:          m.TenantID,
		FirstName:         m.TenantFirstName,
		LastName:          m.TenantLastName,
		Gender:            string(m.TenantGender),
		Birthday:          m.TenantBirthday.Format("2006-01-02"),
		PersonalID:        m.TenantPersonalID,
		Phone:             m.TenantPhone,
		Email:             m.TenantEmail,
		LineID:            m.TenantLineID,
		Address:           m.TenantAddress,
		EmergencyContacts: contacts,
		CreatedAt:         m.TenantCreatedAt,
		UpdatedAt:         m.TenantUpdatedAt,
	}
}

func ToTenantResponses(list []tmodel.TenantModel) []TenantResponse {
	out := make([]TenantResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToTenantResponse(m))
	}
	return out
}
