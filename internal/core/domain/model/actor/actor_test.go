package actor_test

import (
	"testing"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/actor"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	t.Run("should parse all known roles", func(t *testing.T) {
		for _, s := range []string{"admin", "warehouse", "driver", "customer"} {
			role, err := actor.RoleFromString(s)
			require.NoError(t, err)
			assert.Equal(t, actor.Role(s), role)
		}
	})

	t.Run("should fail for unknown role", func(t *testing.T) {
		_, err := actor.RoleFromString("superuser")

		require.Error(t, err)
	})

	t.Run("should fail for empty role", func(t *testing.T) {
		_, err := actor.RoleFromString("")

		require.Error(t, err)
	})
}

func TestNewActor(t *testing.T) {
	t.Run("should create actor with valid ID and role", func(t *testing.T) {
		id := kernel.NewUUID()

		a, err := actor.NewActor(id, actor.RoleCustomer)

		require.NoError(t, err)
		assert.True(t, a.ID.IsEqual(id))
		assert.Equal(t, actor.RoleCustomer, a.Role)
	})

	t.Run("should fail with unconstructed ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := actor.NewActor(invalidID, actor.RoleAdmin)

		require.Error(t, err)
	})
}

func TestActor_Is(t *testing.T) {
	t.Run("should match any of the given roles", func(t *testing.T) {
		a, err := actor.NewActor(kernel.NewUUID(), actor.RoleWarehouse)
		require.NoError(t, err)

		assert.True(t, a.Is(actor.RoleAdmin, actor.RoleWarehouse))
		assert.False(t, a.Is(actor.RoleDriver, actor.RoleCustomer))
	})
}

func TestForbiddenError(t *testing.T) {
	t.Run("should name the role and action", func(t *testing.T) {
		err := actor.NewForbiddenError(actor.RoleDriver, "cancel orders")

		assert.Equal(t, "role driver is not allowed to cancel orders", err.Error())
	})
}
