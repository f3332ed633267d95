package queries

import (
	"errors"

	"bookmarket/internal/core/domain/model/kernel"
	"bookmarket/internal/pkg/guard"
)

var (
	ErrGetOrdersForActorQueryIsNotConstructed = errors.New(
		"GetOrdersForActorQuery must be created via NewGetOrdersForActorQuery constructor",
	)
)

// GetOrdersForActorQuery retrieves every order the caller participates in,
// as buyer or as seller.
type GetOrdersForActorQuery struct {
	actor kernel.Actor

	guard guard.ConstructorGuard
}

// NewGetOrdersForActorQuery creates a query listing the caller's orders.
func NewGetOrdersForActorQuery(actor kernel.Actor) (GetOrdersForActorQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrdersForActorQuery{}, err
	}

	return GetOrdersForActorQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersForActorQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersForActorQueryIsNotConstructed)
}

// Actor returns the caller.
func (q GetOrdersForActorQuery) Actor() kernel.Actor {
	return q.actor
}
