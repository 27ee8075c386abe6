// Package identity models the caller context supplied by the external
// identity service. The scheduling core never authenticates anyone; it only
// consumes an authenticated actor and re-validates tenant ownership.
package identity

import "github.com/google/uuid"

type Role string

const (
	RoleStaff   Role = "staff"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleStaff, RoleManager, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanManageSchedule reports whether the role may create shifts, commit
// assignments, or review requests. Route-level gating uses this; the core
// additionally re-checks tenant scope on every operation.
func (r Role) CanManageSchedule() bool {
	return r == RoleManager || r == RoleAdmin
}

// Actor is the tenant-scoped identity attached to every core call.
type Actor struct {
	UserID    uuid.UUID
	CompanyID uuid.UUID
	Role      Role
}
