package ports

import (
	"context"
	"restock-cycle-analyser/internal/domain"
)

// Port: a boundary for retrieving Delivery records from a data source.
type DeliveryRepository interface {
	// Retrieve every delivery record in the dataset, ordered by id.
	ListDeliveries(ctx context.Context) ([]*domain.Delivery, error)
}
