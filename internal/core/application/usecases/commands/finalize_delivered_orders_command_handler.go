package commands

import (
	"context"
	"errors"

	"bookmarket/internal/pkg/errs"
)

// FinalizeDeliveredOrdersCommandHandler completes delivered orders whose
// grace period has elapsed. Orders that were concurrently mutated are skipped;
// the next scheduled run picks them up again.
type FinalizeDeliveredOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewFinalizeDeliveredOrdersCommandHandler creates a handler for the finalization sweep.
func NewFinalizeDeliveredOrdersCommandHandler(uowFactory OrderUoWFactory) FinalizeDeliveredOrdersCommandHandler {
	return FinalizeDeliveredOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle finalizes all eligible orders and returns how many were completed.
func (h FinalizeDeliveredOrdersCommandHandler) Handle(
	ctx context.Context,
	command FinalizeDeliveredOrdersCommand,
) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	delivered, err := orderRepo.GetAllDeliveredBefore(ctx, command.DeliveredBefore())
	if err != nil {
		return 0, err
	}

	finalized := 0
	for _, aggregate := range delivered {
		if err := aggregate.Finalize(); err != nil {
			return 0, err
		}

		if err := orderRepo.Update(ctx, aggregate); err != nil {
			if errors.Is(err, errs.ErrConcurrencyConflict) {
				continue
			}
			return 0, err
		}

		finalized++
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return finalized, nil
}
