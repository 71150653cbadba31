package user

import "time"

type Role string

const (
	RoleOwner    Role = "owner"    // Company owner - full access
	RoleManager  Role = "manager"  // Can read every employee's timecard
	RoleEmployee Role = "employee" // Regular employee
)

// User is the employee snapshot a timecard is issued for. Optional fields are
// left nil; renderers decide on placeholders.
type User struct {
	ID            string
	Name          string
	TaxID         string
	JobTitle      *string
	Department    *string
	AdmissionDate *time.Time
	SocialID      *string // PIS/PASEP
	Role          Role
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ParseRole maps a stored or claimed role string to a Role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleOwner, RoleManager, RoleEmployee:
		return Role(s), true
	}
	return "", false
}
