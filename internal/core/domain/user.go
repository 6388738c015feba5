package domain

import (
	"strings"
	"time"
)

// Role is the access level carried by a user and by every issued token.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleJobManager Role = "JOB_MANAGER"
	// RoleSuperAdmin is only ever assigned by the seed command.
	RoleSuperAdmin Role = "SUPERADMIN"
)

// AssignableRoles are the roles the user API may create or assign.
var AssignableRoles = []Role{RoleAdmin, RoleJobManager}

// ParseAssignableRole normalizes a client-supplied role. An empty string
// yields JOB_MANAGER; anything outside AssignableRoles is rejected.
func ParseAssignableRole(raw string) (Role, bool) {
	normalized := Role(strings.ToUpper(strings.TrimSpace(raw)))
	if normalized == "" {
		return RoleJobManager, true
	}
	for _, r := range AssignableRoles {
		if r == normalized {
			return normalized, true
		}
	}
	return "", false
}

// User models an operator account of the site's back office.
type User struct {
	ID               string    `json:"id"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"`
	Role             Role      `json:"role"`
	CreatedAt        time.Time `json:"created_at"`
	CreatedByAdminID *string   `json:"created_by_admin_id"`
}

// AdminRoles is the allow-list for user and form administration.
func AdminRoles(superAdminPrivileged bool) []Role {
	if superAdminPrivileged {
		return []Role{RoleAdmin, RoleSuperAdmin}
	}
	return []Role{RoleAdmin}
}

// JobMutatorRoles is the allow-list for creating, updating and deleting jobs.
func JobMutatorRoles(superAdminPrivileged bool) []Role {
	if superAdminPrivileged {
		return []Role{RoleAdmin, RoleJobManager, RoleSuperAdmin}
	}
	return []Role{RoleAdmin, RoleJobManager}
}
