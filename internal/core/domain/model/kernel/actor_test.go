package kernel_test

import (
	"fmt"
	"testing"

	"bookmarket/internal/core/domain/model/kernel"
	"bookmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Validate(t *testing.T) {
	t.Run("should validate valid roles", func(t *testing.T) {
		for _, role := range []kernel.Role{kernel.RoleUser, kernel.RoleAdmin} {
			t.Run(fmt.Sprintf("should validate %s role", role.String()), func(t *testing.T) {
				require.NoError(t, role.Validate())
			})
		}
	})

	t.Run("should reject RoleUnknown and out-of-range values", func(t *testing.T) {
		for _, role := range []kernel.Role{kernel.RoleUnknown, kernel.Role(-1), kernel.Role(99)} {
			err := role.Validate()

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestRole_FromString(t *testing.T) {
	t.Run("should parse valid role claims", func(t *testing.T) {
		role, err := kernel.RoleFromString("Admin")
		require.NoError(t, err)
		assert.Equal(t, kernel.RoleAdmin, role)

		role, err = kernel.RoleFromString("User")
		require.NoError(t, err)
		assert.Equal(t, kernel.RoleUser, role)
	})

	t.Run("should reject unknown claims", func(t *testing.T) {
		_, err := kernel.RoleFromString("superuser")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestActor_NewActor(t *testing.T) {
	t.Run("should create a valid actor", func(t *testing.T) {
		actor, err := kernel.NewActor(7, kernel.RoleUser)

		require.NoError(t, err)
		require.NoError(t, actor.Validate())
		assert.Equal(t, int64(7), actor.ID())
		assert.Equal(t, kernel.RoleUser, actor.Role())
		assert.False(t, actor.IsAdmin())
	})

	t.Run("admin role is reported by IsAdmin", func(t *testing.T) {
		actor, err := kernel.NewActor(1, kernel.RoleAdmin)

		require.NoError(t, err)
		assert.True(t, actor.IsAdmin())
	})

	t.Run("should reject non-positive ids", func(t *testing.T) {
		for _, id := range []int64{0, -1} {
			_, err := kernel.NewActor(id, kernel.RoleUser)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject invalid roles", func(t *testing.T) {
		_, err := kernel.NewActor(7, kernel.RoleUnknown)
		require.Error(t, err)
	})

	t.Run("zero-value actor fails validation", func(t *testing.T) {
		var actor kernel.Actor
		require.Error(t, actor.Validate())
	})
}
