// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Unrestricted system access
	RoleAdmin UserRole = "admin"

	// Can create, translate, publish and pin posts
	RoleAuthor UserRole = "author"

	// Signed-in reader; may curate the tag vocabulary
	RoleMember UserRole = "member"
)

// AssignableRoles lists the roles shown to administrators, highest first.
var AssignableRoles = []UserRole{RoleAdmin, RoleAuthor}

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// Valid reports whether r is a known role.
func (r UserRole) Valid() bool {
	return r.level() > 0
}

// MessageKey is the i18n key of the role's display name.
func (r UserRole) MessageKey() string {
	return "roles." + string(r)
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 40
	case RoleAuthor:
		return 20
	case RoleMember:
		return 10
	default:
		return 0
	}
}
