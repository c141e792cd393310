package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akhileshms120/irblibrary/internal/feature/auth/domain/entity"
)

func TestAllowed(t *testing.T) {
	allRoles := []entity.Role{
		entity.RoleAdmin,
		entity.RoleLibrarian,
		entity.RoleUser,
		entity.RoleNone,
	}

	t.Run("every authenticated identity may work with borrowings", func(t *testing.T) {
		for _, role := range allRoles {
			for _, op := range borrowingOps {
				assert.True(t, Allowed(role, op), "role %q op %q", role, op)
			}
		}
	})

	t.Run("only admin may provision users", func(t *testing.T) {
		assert.True(t, Allowed(entity.RoleAdmin, OpProvisionUser))
		assert.False(t, Allowed(entity.RoleLibrarian, OpProvisionUser))
		assert.False(t, Allowed(entity.RoleUser, OpProvisionUser))
		assert.False(t, Allowed(entity.RoleNone, OpProvisionUser))
	})

	t.Run("unknown role falls back to borrowing-only access", func(t *testing.T) {
		assert.True(t, Allowed(entity.Role("intern"), OpBorrowingList))
		assert.False(t, Allowed(entity.Role("intern"), OpProvisionUser))
	})
}
