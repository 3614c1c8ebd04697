package memory

import (
	"context"
	"sync"

	"storefront-service/internal/domain/entities"
	"storefront-service/internal/domain/repositories"
)

// OrderRepositoryMemory keeps orders in a map keyed by order id.
type OrderRepositoryMemory struct {
	mu     sync.RWMutex
	orders map[string]*entities.Order
}

func NewOrderRepositoryMemory() *OrderRepositoryMemory {
	return &OrderRepositoryMemory{orders: make(map[string]*entities.Order)}
}

func (r *OrderRepositoryMemory) Create(ctx context.Context, order *entities.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[order.OrderID]; ok {
		return repositories.ErrOrderAlreadyExists
	}
	stored := *order
	r.orders[order.OrderID] = &stored
	return nil
}

// All returns a snapshot of every stored order.
func (r *OrderRepositoryMemory) All() []entities.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]entities.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orders = append(orders, *order)
	}
	return orders
}
