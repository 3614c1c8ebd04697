package usecase

import (
	"context"
	"errors"
	"testing"

	"storefront-service/internal/domain/entities"
	"storefront-service/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) ListAvailable(ctx context.Context) ([]entities.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Product), args.Error(1)
}

func catalogFixture() []entities.Product {
	return []entities.Product{
		{ID: "d1", Name: "1.00 ct Round Lab Diamond", Type: entities.TypeLooseDiamond, Shape: "Round", Clarity: "VS1", Color: "D", Price: 1500},
		{ID: "d2", Name: "0.70 ct Round Lab Diamond", Type: entities.TypeLooseDiamond, Shape: "Round", Clarity: "SI1", Color: "G", Price: 1200},
		{ID: "d3", Name: "1.20 ct Oval Lab Diamond", Type: entities.TypeLooseDiamond, Shape: "Oval", Clarity: "VVS2", Color: "E", Price: 3600},
	}
}

func TestCatalogUseCase_Load(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockRepo.On("ListAvailable", mock.Anything).Return(catalogFixture(), nil)

	useCase := NewCatalogUseCase(mockRepo, logger.NewNop())
	useCase.Load(context.Background())

	assert.Len(t, useCase.Products(), 3)
	mockRepo.AssertExpectations(t)
}

func TestCatalogUseCase_LoadFailureLeavesCatalogEmpty(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockRepo.On("ListAvailable", mock.Anything).Return(nil, errors.New("connection refused"))

	useCase := NewCatalogUseCase(mockRepo, logger.NewNop())
	useCase.Load(context.Background())

	assert.Empty(t, useCase.Products())

	minPrice, maxPrice := useCase.PriceBounds()
	assert.Equal(t, int64(0), minPrice)
	assert.Equal(t, int64(0), maxPrice)
	mockRepo.AssertExpectations(t)
}

func TestCatalogUseCase_FindByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockRepo.On("ListAvailable", mock.Anything).Return(catalogFixture(), nil)

	useCase := NewCatalogUseCase(mockRepo, logger.NewNop())
	useCase.Load(context.Background())

	p, ok := useCase.FindByID("d2")
	assert.True(t, ok)
	assert.Equal(t, int64(1200), p.Price)

	_, ok = useCase.FindByID("missing")
	assert.False(t, ok)
}

func TestCatalogUseCase_PriceBounds(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockRepo.On("ListAvailable", mock.Anything).Return(catalogFixture(), nil)

	useCase := NewCatalogUseCase(mockRepo, logger.NewNop())
	useCase.Load(context.Background())

	minPrice, maxPrice := useCase.PriceBounds()
	assert.Equal(t, int64(1200), minPrice)
	assert.Equal(t, int64(3600), maxPrice)
}

func TestCatalogUseCase_ShapeStock(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockRepo.On("ListAvailable", mock.Anything).Return(catalogFixture(), nil)

	useCase := NewCatalogUseCase(mockRepo, logger.NewNop())
	useCase.Load(context.Background())

	count, cheapest := useCase.ShapeStock("Round")
	assert.Equal(t, 2, count)
	assert.Equal(t, int64(1200), cheapest)

	count, cheapest = useCase.ShapeStock("Pear")
	assert.Equal(t, 0, count)
	assert.Equal(t, int64(0), cheapest)
}

func TestCatalogUseCase_Filter(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockRepo.On("ListAvailable", mock.Anything).Return(catalogFixture(), nil)

	useCase := NewCatalogUseCase(mockRepo, logger.NewNop())
	useCase.Load(context.Background())

	out := useCase.Filter(entities.FilterCriteria{Shape: "Oval"})
	assert.Len(t, out, 1)
	assert.Equal(t, "d3", out[0].ID)
}
