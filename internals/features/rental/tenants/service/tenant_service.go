// file: internals/features/rental/tenants/service/tenant_service.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/rental/tenants/dto"
	tmodel "rentalku_backend/internals/features/rental/tenants/model"
)

// ResolveOrCreate finds a tenant by personal_id, updating its identity
// fields, or creates it when unseen. The upsert is idempotent: repeating
// the same payload converges on one row.
func ResolveOrCreate(db *gorm.DB, in dto.TenantUpsertDTO, actorID *int64) (*tmodel.TenantModel, error) {
	birthday, err := time.Parse("2006-01-02", in.Birthday)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "birthday must be YYYY-MM-DD")
	}

	var tenant tmodel.TenantModel
	err = db.Preload("EmergencyContacts").
		First(&tenant, "tenant_personal_id = ?", in.PersonalID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		tenant = tmodel.TenantModel{
			TenantFirstName:  in.FirstName,
			TenantLastName:   in.LastName,
			TenantGender:     tmodel.TenantGender(in.Gender),
			TenantBirthday:   birthday,
			TenantPersonalID: in.PersonalID,
			TenantPhone:      in.Phone,
			TenantEmail:      in.Email,
			TenantLineID:     in.LineID,
			TenantAddress:    in.Address,
			TenantCreatedBy:  actorID,
		}
		if err := db.Create(&tenant).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		tenant.TenantFirstName = in.FirstName
		tenant.TenantLastName = in.LastName
		tenant.TenantGender = tmodel.TenantGender(in.Gender)
		tenant.TenantBirthday = birthday
		tenant.TenantPhone = in.Phone
		tenant.TenantEmail = in.Email
		tenant.TenantLineID = in.LineID
		tenant.TenantAddress = in.Address
		tenant.TenantUpdatedBy = actorID
		if err := db.Save(&tenant).Error; err != nil {
			return nil, err
		}
	}

	if in.EmergencyContacts != nil {
		if err := replaceEmergencyContacts(db, tenant.TenantID, in.EmergencyContacts); err != nil {
			return nil, err
		}
	}

	if err := db.Preload("EmergencyContacts").First(&tenant, "tenant_id = ?", tenant.TenantID).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

// UpdateTenant applies a partial demographic update by id.
func UpdateTenant(db *gorm.DB, tenantID int64, in dto.TenantUpdateDTO, actorID *int64) (*tmodel.TenantModel, error) {
	var tenant tmodel.TenantModel
	if err := db.First(&tenant, "tenant_id = ?", tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("tenant %d not found", tenantID))
		}
		return nil, err
	}

	if in.FirstName != nil {
		tenant.TenantFirstName = *in.FirstName
	}
	if in.LastName != nil {
		tenant.TenantLastName = *in.LastName
	}
	if in.Gender != nil {
		tenant.TenantGender = tmodel.TenantGender(*in.Gender)
	}
	if in.Birthday != nil {
		birthday, err := time.Parse("2006-01-02", *in.Birthday)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "birthday must be YYYY-MM-DD")
		}
		tenant.TenantBirthday = birthday
	}
	if in.Phone != nil {
		tenant.TenantPhone = *in.Phone
	}
	if in.Email != nil {
		tenant.TenantEmail = in.Email
	}
	if in.LineID != nil {
		tenant.TenantLineID = in.LineID
	}
	if in.Address != nil {
		tenant.TenantAddress = *in.Address
	}
	tenant.TenantUpdatedBy = actorID

	if err := db.Save(&tenant).Error; err != nil {
		return nil, err
	}

	if in.EmergencyContacts != nil {
		if err := replaceEmergencyContacts(db, tenant.TenantID, in.EmergencyContacts); err != nil {
			return nil, err
		}
	}

	if err := db.Preload("EmergencyContacts").First(&tenant, "tenant_id = ?", tenant.TenantID).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

func replaceEmergencyContacts(db *gorm.DB, tenantID int64, contacts []dto.EmergencyContactDTO) error {
	if err := db.Where("contact_tenant_id = ?", tenantID).
		Delete(&tmodel.TenantEmergencyContactModel{}).Error; err != nil {
		return err
	}
	for _, ec := range contacts {
		row := tmodel.TenantEmergencyContactModel{
			ContactTenantID:     tenantID,
			ContactFirstName:    ec.FirstName,
			ContactLastName:     ec.LastName,
			ContactRelationship: ec.Relationship,
			ContactPhone:        ec.Phone,
		}
		if err := db.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
