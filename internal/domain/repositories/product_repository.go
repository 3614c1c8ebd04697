package repositories

import (
	"context"

	"storefront-service/internal/domain/entities"
)

// ProductRepository reads the hosted inventory, already mapped to catalog
// products and filtered to items still for sale.
type ProductRepository interface {
	ListAvailable(ctx context.Context) ([]entities.Product, error)
}
