// file: internals/features/rental/leases/model/lease_tenant_model.go
package model

import (
	"time"
)

// =========================================================
// ENUM — tenant role on a lease
// =========================================================

type LeaseTenantRole string

const (
	LeaseTenantRolePrimary   LeaseTenantRole = "primary"
	LeaseTenantRoleSecondary LeaseTenantRole = "secondary"
)

// =========================================================
// MODEL — lease ↔ tenant link
// =========================================================

// At most one primary tenant per lease (partial unique index on role=primary,
// mirrored by the application check in the lease service).
type LeaseTenantModel struct {
	// Composite PK
	LeaseTenantLeaseID  int64 `gorm:"column:lease_tenant_lease_id;primaryKey" json:"lease_tenant_lease_id"`
	LeaseTenantTenantID int64 `gorm:"column:lease_tenant_tenant_id;primaryKey" json:"lease_tenant_tenant_id"`

	LeaseTenantRole     LeaseTenantRole `gorm:"column:lease_tenant_role;type:varchar(10);not null" json:"lease_tenant_role"`
	LeaseTenantJoinedAt time.Time       `gorm:"column:lease_tenant_joined_at;type:date;not null" json:"lease_tenant_joined_at"`
}

func (LeaseTenantModel) TableName() string {
	return "lease_tenants"
}
