package queries

import (
	"context"

	"storefront/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler counts orders straight from the orders table.
//
// Example:
//
//	handler := NewGetOrderStatsQueryHandler(db)
//	stats, err := handler.Handle(ctx, NewGetOrderStatsQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders in the kitchen\n", stats.Active)
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

func (h GetOrderStatsQueryHandler) Handle(ctx context.Context, query GetOrderStatsQuery) (order.Stats, error) {
	if err := query.Validate(); err != nil {
		return order.Stats{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return order.Stats{}, err
	}
	defer rows.Close()

	counts := make(map[order.Status]int)
	for rows.Next() {
		var status, count int
		if err = rows.Scan(&status, &count); err != nil {
			return order.Stats{}, err
		}
		counts[order.Status(status)] = count
	}

	if err = rows.Err(); err != nil {
		return order.Stats{}, err
	}

	return order.NewStats(counts), nil
}
