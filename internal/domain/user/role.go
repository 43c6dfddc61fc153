package user

import "homeclean-booking/internal/pkg/errs"

var ErrInvalidRole = errs.New("invalid role")

// Role is the account kind carried in access tokens.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleManager, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanBook reports whether the role may open reservation wizards.
func (r Role) CanBook() bool {
	return r == RoleCustomer || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
