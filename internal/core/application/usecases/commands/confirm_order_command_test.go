package commands_test

import (
	"testing"

	"bookmarket/internal/core/application/usecases/commands"
	"bookmarket/internal/core/domain/model/kernel"
	"bookmarket/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestNewConfirmOrderCommand(t *testing.T) {
	actor := userActor(t, testSellerID)
	version := kernel.RowVersionFromCounter(3)

	t.Run("should create command with valid parameters", func(t *testing.T) {
		cmd, err := commands.NewConfirmOrderCommand(1, actor, version)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.Equal(t, int64(1), cmd.OrderID())
		require.Equal(t, actor, cmd.Actor())
		require.True(t, version.IsEqual(cmd.RowVersion()))
	})

	t.Run("should return error for non-positive order id", func(t *testing.T) {
		_, err := commands.NewConfirmOrderCommand(0, actor, version)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should return error for unconstructed actor", func(t *testing.T) {
		_, err := commands.NewConfirmOrderCommand(1, kernel.Actor{}, version)

		require.Error(t, err)
	})

	t.Run("should return error for unconstructed row version", func(t *testing.T) {
		_, err := commands.NewConfirmOrderCommand(1, actor, kernel.RowVersion{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail validation for zero-value command", func(t *testing.T) {
		var cmd commands.ConfirmOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrConfirmOrderCommandIsNotConstructed)
	})
}
