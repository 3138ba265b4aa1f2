// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular customer who books tours and writes reviews.
	RoleUser Role = "user"
	// RoleGuide indicates a guide attached to tours.
	RoleGuide Role = "guide"
	// RoleLeadGuide indicates a guide who also manages tours.
	RoleLeadGuide Role = "lead-guide"
	// RoleAdmin indicates full administrative access.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleGuide, RoleLeadGuide, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// HasAny reports whether at least one of required is held.
func (rs Roles) HasAny(required ...Role) bool {
	for _, r := range required {
		if rs.Contains(r) {
			return true
		}
	}

	return false
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// Valid reports whether the set is non-empty and every member is known.
func (rs Roles) Valid() bool {
	if len(rs) == 0 {
		return false
	}
	for _, r := range rs {
		if !r.IsValid() {
			return false
		}
	}

	return true
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() && !result.Contains(role) {
			result = append(result, role)
		}
	}

	return result
}
