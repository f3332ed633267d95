package commands_test

import (
	"strings"
	"testing"

	"bookmarket/internal/core/application/usecases/commands"
	"bookmarket/internal/core/domain/model/kernel"
	"bookmarket/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand(t *testing.T) {
	actor := userActor(t, testBuyerID)
	version := kernel.RowVersionFromCounter(2)

	t.Run("should create command with valid parameters", func(t *testing.T) {
		cmd, err := commands.NewCancelOrderCommand(1, actor, "changed my mind", version)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.Equal(t, "changed my mind", cmd.Reason())
	})

	t.Run("should return error for empty reason", func(t *testing.T) {
		_, err := commands.NewCancelOrderCommand(1, actor, "", version)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should return error for reason above the limit", func(t *testing.T) {
		_, err := commands.NewCancelOrderCommand(1, actor, strings.Repeat("x", 501), version)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should accept reason at the limit", func(t *testing.T) {
		_, err := commands.NewCancelOrderCommand(1, actor, strings.Repeat("x", 500), version)

		require.NoError(t, err)
	})

	t.Run("should fail validation for zero-value command", func(t *testing.T) {
		var cmd commands.CancelOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCancelOrderCommandIsNotConstructed)
	})
}
