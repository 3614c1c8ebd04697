package repositories

import (
	"context"

	"storefront-service/internal/domain/entities"
)

// OrderRepository writes submitted orders to the hosted store.
type OrderRepository interface {
	Create(ctx context.Context, order *entities.Order) error
}

var ErrOrderAlreadyExists = &RepositoryError{"order already exists"}

type RepositoryError struct {
	message string
}

func (e *RepositoryError) Error() string {
	return e.message
}
