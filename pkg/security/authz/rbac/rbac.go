// Package rbac implements the role-based access control model for HR-Center.
//
// The model is deliberately small: three fixed roles, four CRUD permissions,
// and an immutable role → permission mapping baked in at build time. The same
// decision functions serve the enforcing middleware and the advisory
// /api/permissions endpoint, so there is exactly one authoritative copy of
// the matrix in the system.
package rbac

// Role is an enumerated subject role. The authoritative source for a
// subject's role is its profile record, never a token claim.
type Role string

const (
	// RoleAdmin has full CRUD access to every resource.
	RoleAdmin Role = "admin"

	// RoleManager can create, read, and update, but never delete.
	RoleManager Role = "manager"

	// RoleEmployee can only read, and only resources it owns.
	RoleEmployee Role = "employee"
)

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// Permission is an enumerated CRUD action. Permissions are evaluated
// per-operation; the same four actions apply uniformly across all
// resource types.
type Permission string

const (
	PermissionCreate Permission = "create"
	PermissionRead   Permission = "read"
	PermissionUpdate Permission = "update"
	PermissionDelete Permission = "delete"
)

// rolePermissions is the fixed permission matrix. It is never mutated at
// runtime; all lookups go through HasPermission.
var rolePermissions = map[Role]map[Permission]bool{
	RoleAdmin: {
		PermissionCreate: true,
		PermissionRead:   true,
		PermissionUpdate: true,
		PermissionDelete: true,
	},
	RoleManager: {
		PermissionCreate: true,
		PermissionRead:   true,
		PermissionUpdate: true,
	},
	RoleEmployee: {
		PermissionRead: true,
	},
}

// HasPermission reports whether role is granted perm by the matrix.
// Unknown roles map to false; the function never panics.
func HasPermission(role Role, perm Permission) bool {
	return rolePermissions[role][perm]
}

// Permissions returns the permission set for role in a stable order.
// Intended for the advisory endpoint; enforcement always uses
// HasPermission / CanAccessResource.
func Permissions(role Role) []Permission {
	var perms []Permission
	for _, p := range []Permission{PermissionCreate, PermissionRead, PermissionUpdate, PermissionDelete} {
		if rolePermissions[role][p] {
			perms = append(perms, p)
		}
	}
	return perms
}

// CanAccessResource decides access when the target resource has an owner.
// Admins and managers are scoped by the matrix alone: ownership never
// changes their outcome. Employees may only read resources they own;
// ownership is never sufficient to grant create/update/delete.
func CanAccessResource(role Role, subjectUID, ownerUID string, perm Permission) bool {
	if role == RoleAdmin || role == RoleManager {
		return HasPermission(role, perm)
	}

	if role == RoleEmployee && perm == PermissionRead {
		return subjectUID != "" && subjectUID == ownerUID
	}

	return false
}
