package memory

import (
	"context"
	"sync"

	"storefront-service/internal/domain/entities"
)

// CatalogRepositoryMemory serves a fixed product list, for tests and
// offline runs.
type CatalogRepositoryMemory struct {
	mu       sync.RWMutex
	products []entities.Product
}

func NewCatalogRepositoryMemory(products []entities.Product) *CatalogRepositoryMemory {
	return &CatalogRepositoryMemory{products: products}
}

func (r *CatalogRepositoryMemory) ListAvailable(ctx context.Context) ([]entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]entities.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}
