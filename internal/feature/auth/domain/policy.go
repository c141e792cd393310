// Package domain defines the access policy for the auth feature.
package domain

import "github.com/akhileshms120/irblibrary/internal/feature/auth/domain/entity"

// Operation names one permission-checked action in the system.
type Operation string

const (
	OpBorrowingCreate Operation = "borrowing:create"
	OpBorrowingUpdate Operation = "borrowing:update"
	OpBorrowingDelete Operation = "borrowing:delete"
	OpBorrowingList   Operation = "borrowing:list"
	OpBorrowingSearch Operation = "borrowing:search"
	OpCatalogSuggest  Operation = "catalog:suggest"
	OpProvisionUser   Operation = "user:provision"
)

// borrowingOps are permitted to every authenticated identity, profile or
// not. The role only distinguishes access to user provisioning.
var borrowingOps = []Operation{
	OpBorrowingCreate,
	OpBorrowingUpdate,
	OpBorrowingDelete,
	OpBorrowingList,
	OpBorrowingSearch,
	OpCatalogSuggest,
}

// permissions is the full (role, operation) grant table. Keeping it in one
// place makes the policy auditable at a glance.
var permissions = buildPermissions()

func buildPermissions() map[entity.Role]map[Operation]bool {
	table := make(map[entity.Role]map[Operation]bool)
	for _, role := range []entity.Role{
		entity.RoleAdmin,
		entity.RoleLibrarian,
		entity.RoleUser,
		entity.RoleNone,
	} {
		grants := make(map[Operation]bool, len(borrowingOps)+1)
		for _, op := range borrowingOps {
			grants[op] = true
		}
		table[role] = grants
	}
	table[entity.RoleAdmin][OpProvisionUser] = true
	return table
}

// Allowed reports whether an authenticated identity holding role may
// perform op. Unknown roles are treated like RoleNone: borrowing access
// only. Unauthenticated identities never reach the policy; the auth
// middleware denies them first.
func Allowed(role entity.Role, op Operation) bool {
	grants, ok := permissions[role]
	if !ok {
		grants = permissions[entity.RoleNone]
	}
	return grants[op]
}
