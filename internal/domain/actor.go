package domain

import "time"

// Role enumerates the closed set of actor roles.
type Role string

const (
	RoleCitizen    Role = "CITIZEN"
	RoleStaff      Role = "STAFF"
	RoleSupervisor Role = "SUPERVISOR"
)

// Valid reports whether the role is a member of the closed vocabulary.
func (r Role) Valid() bool {
	switch r {
	case RoleCitizen, RoleStaff, RoleSupervisor:
		return true
	}
	return false
}

// Actor models any identity in the system: citizens who submit complaints,
// category-scoped office staff, and the supervisor.
type Actor struct {
	ID            string
	FullName      string
	PhoneNumber   string
	PasswordHash  string
	Role          Role
	CategoryScope []Category
	Area          Area
	Address       string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasFullScope reports whether the actor sees every category: supervisors
// always do, and staff do when explicitly granted the ALL sentinel.
func (a *Actor) HasFullScope() bool {
	if a.Role == RoleSupervisor {
		return true
	}
	if a.Role != RoleStaff {
		return false
	}
	for _, c := range a.CategoryScope {
		if c == CategoryAll {
			return true
		}
	}
	return false
}

// ScopeContains reports whether the given category falls inside the actor's
// category scope. Citizens are scoped by ownership, not category.
func (a *Actor) ScopeContains(category Category) bool {
	if a.HasFullScope() {
		return true
	}
	for _, c := range a.CategoryScope {
		if c == category {
			return true
		}
	}
	return false
}

// CanSee decides membership of the complaint in the actor's visible set.
func (a *Actor) CanSee(c *Complaint) bool {
	switch a.Role {
	case RoleCitizen:
		return c.SubmitterID == a.ID
	case RoleStaff:
		return a.ScopeContains(c.Category)
	case RoleSupervisor:
		return true
	}
	return false
}
