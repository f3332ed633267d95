package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersForActorQueryHandler lists the orders a caller participates in.
// Results are sorted newest first so active orders surface at the top.
type GetOrdersForActorQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersForActorQueryHandler creates a handler for per-actor order listings.
func NewGetOrdersForActorQueryHandler(db *gorm.DB) GetOrdersForActorQueryHandler {
	return GetOrdersForActorQueryHandler{db: db}
}

// Handle executes the query and returns the caller's orders.
func (h GetOrdersForActorQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersForActorQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE buyer_id = ? OR seller_id = ?
		ORDER BY id DESC
	`, query.Actor().ID(), query.Actor().ID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	for rows.Next() {
		view, err := scanOrderView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
