package memory

import (
	"context"
	"testing"

	"storefront-service/internal/domain/entities"
	"storefront-service/internal/domain/repositories"

	"github.com/stretchr/testify/assert"
)

func TestOrderRepositoryMemory_Create(t *testing.T) {
	repo := NewOrderRepositoryMemory()
	ctx := context.Background()

	order := &entities.Order{OrderID: "ord-1", TotalAmount: 2049, Status: entities.OrderStatusPaid}
	assert.NoError(t, repo.Create(ctx, order))

	err := repo.Create(ctx, &entities.Order{OrderID: "ord-1"})
	assert.ErrorIs(t, err, repositories.ErrOrderAlreadyExists)

	all := repo.All()
	assert.Len(t, all, 1)
	assert.Equal(t, int64(2049), all[0].TotalAmount)
}

func TestOrderRepositoryMemory_CreateStoresCopy(t *testing.T) {
	repo := NewOrderRepositoryMemory()

	order := &entities.Order{OrderID: "ord-1", Status: entities.OrderStatusPaid}
	assert.NoError(t, repo.Create(context.Background(), order))

	order.Status = "mutated"
	assert.Equal(t, entities.OrderStatusPaid, repo.All()[0].Status)
}

func TestCatalogRepositoryMemory_ListAvailable(t *testing.T) {
	seed := []entities.Product{
		{ID: "d1", Type: entities.TypeLooseDiamond, Price: 1500},
		{ID: "s1", Type: entities.TypeEngagementRing, Price: 3400},
	}
	repo := NewCatalogRepositoryMemory(seed)

	products, err := repo.ListAvailable(context.Background())
	assert.NoError(t, err)
	assert.Len(t, products, 2)

	products[0].Price = 1
	again, _ := repo.ListAvailable(context.Background())
	assert.Equal(t, int64(1500), again[0].Price)
}
