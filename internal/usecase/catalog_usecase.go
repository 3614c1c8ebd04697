package usecase

import (
	"context"
	"sync"

	"storefront-service/internal/domain/entities"
	"storefront-service/internal/domain/repositories"
	"storefront-service/internal/infrastructure/logger"
)

// CatalogUseCase holds the in-memory catalog, populated once from the
// hosted store at startup. The catalog is immutable after Load; reads are
// served from memory for the storefront grid and the chat stock lookup
// alike.
type CatalogUseCase struct {
	productRepo repositories.ProductRepository
	logger      *logger.Logger

	mu       sync.RWMutex
	products []entities.Product
}

func NewCatalogUseCase(productRepo repositories.ProductRepository, log *logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		logger:      log,
	}
}

// Load fetches the catalog. A fetch failure is logged and leaves the
// catalog empty; the service stays up and nothing is retried.
func (uc *CatalogUseCase) Load(ctx context.Context) {
	products, err := uc.productRepo.ListAvailable(ctx)
	if err != nil {
		uc.logger.Error("Failed to load catalog, starting empty", "error", err)
		products = nil
	}

	uc.mu.Lock()
	uc.products = products
	uc.mu.Unlock()

	uc.logger.Info("Catalog loaded", "products", len(products))
}

// Products returns the full catalog in load order.
func (uc *CatalogUseCase) Products() []entities.Product {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	products := make([]entities.Product, len(uc.products))
	copy(products, uc.products)
	return products
}

// Filter applies the criteria to the catalog.
func (uc *CatalogUseCase) Filter(c entities.FilterCriteria) []entities.Product {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	return entities.FilterProducts(uc.products, c)
}

// FindByID looks a product up by its catalog id.
func (uc *CatalogUseCase) FindByID(id string) (entities.Product, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	for _, p := range uc.products {
		if p.ID == id {
			return p, true
		}
	}
	return entities.Product{}, false
}

// PriceBounds reports the cheapest and most expensive catalog price,
// bounding the storefront's price slider. Zeroes for an empty catalog.
func (uc *CatalogUseCase) PriceBounds() (min, max int64) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	for i, p := range uc.products {
		if i == 0 || p.Price < min {
			min = p.Price
		}
		if p.Price > max {
			max = p.Price
		}
	}
	return min, max
}

// ShapeStock reports how many products of a shape are in the catalog and
// the cheapest price among them.
func (uc *CatalogUseCase) ShapeStock(shape string) (count int, cheapest int64) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	for _, p := range uc.products {
		if p.Shape != shape {
			continue
		}
		if count == 0 || p.Price < cheapest {
			cheapest = p.Price
		}
		count++
	}
	return count, cheapest
}
