package queries

import (
	"context"
	"database/sql"
	"errors"

	"bookmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order row for one of its parties.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError when the order does
// not exist and ForbiddenError when the caller is neither a party nor an admin.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Row()

	view, err := scanOrderView(row)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderView{}, errs.NewObjectNotFoundError("order id", query.OrderID())
	}
	if err != nil {
		return OrderView{}, err
	}

	actor := query.Actor()
	if !actor.IsAdmin() && actor.ID() != view.BuyerID && actor.ID() != view.SellerID {
		return OrderView{}, errs.NewForbiddenError("only the buyer or the seller may view the order")
	}

	return view, nil
}
