package commands

import (
	"context"
	"time"

	"bookmarket/internal/core/domain/model/kernel"
	"bookmarket/internal/core/domain/model/order"
	"bookmarket/internal/core/ports"
	"bookmarket/internal/pkg/errs"
)

// applyOrderTransition runs the skeleton shared by every fulfillment
// transition handler: load the aggregate, apply the domain mutation, verify
// the caller's row version and persist through the conditional update.
// The version check runs after the mutation so that authorization and
// invalid-state failures from the aggregate take precedence over a stale token.
func applyOrderTransition(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID int64,
	presented kernel.RowVersion,
	apply func(*order.Order) error,
) (*order.Order, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := apply(aggregate); err != nil {
		return nil, err
	}

	if !presented.IsEqual(aggregate.PersistedRowVersion()) {
		return nil, errs.NewConcurrencyConflictError(
			"order",
			presented.Token(),
			aggregate.PersistedRowVersion().Token(),
		)
	}

	if err := orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// notifyOrderChanged publishes an advisory event after a committed transition.
// Delivery failures are logged by the notifier and never fail the command.
func notifyOrderChanged(ctx context.Context, notifier ports.Notifier, aggregate *order.Order, operation string) {
	if notifier == nil {
		return
	}

	_ = notifier.NotifyOrderChanged(ctx, ports.OrderEvent{
		OrderID:    aggregate.ID(),
		BuyerID:    aggregate.BuyerID(),
		SellerID:   aggregate.SellerID(),
		Status:     aggregate.Status().String(),
		Operation:  operation,
		OccurredAt: time.Now().UTC(),
	})
}
