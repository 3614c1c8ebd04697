package mongodb

import (
	"testing"
	"time"

	"storefront-service/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestToDiamondProduct(t *testing.T) {
	doc := &DiamondDocument{
		ID:       17,
		Carat:    1.52,
		Shape:    "Oval",
		Clarity:  "VVS2",
		Color:    "E",
		Price:    4200,
		Cut:      "Excellent",
		ImageURL: "https://cdn.example.com/d17.jpg",
	}

	p := toDiamondProduct(doc)

	assert.Equal(t, "d_17", p.ID)
	assert.Equal(t, "1.52 ct Oval Lab Diamond", p.Name)
	assert.Equal(t, entities.TypeLooseDiamond, p.Type)
	assert.Equal(t, "Oval", p.Shape)
	assert.Equal(t, int64(4200), p.Price)
	assert.True(t, p.TripleEx)
	assert.True(t, p.BestSeller)
}

func TestToDiamondProduct_Flags(t *testing.T) {
	tests := []struct {
		name       string
		cut        string
		price      int64
		tripleEx   bool
		bestSeller bool
	}{
		{name: "ideal cut cheap stone", cut: "Ideal", price: 1200, tripleEx: true, bestSeller: false},
		{name: "very good cut mid range", cut: "Very Good", price: 3500, tripleEx: false, bestSeller: true},
		{name: "exactly 3000 is not a best seller", cut: "Excellent", price: 3000, tripleEx: true, bestSeller: false},
		{name: "exactly 5000 is not a best seller", cut: "Excellent", price: 5000, tripleEx: true, bestSeller: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := toDiamondProduct(&DiamondDocument{ID: 1, Cut: tt.cut, Price: tt.price, Shape: "Round", Carat: 1})
			assert.Equal(t, tt.tripleEx, p.TripleEx)
			assert.Equal(t, tt.bestSeller, p.BestSeller)
		})
	}
}

func TestToSettingProduct(t *testing.T) {
	ring := toSettingProduct(&SettingDocument{ID: 3, Name: "Classic Solitaire", Type: "Ring", Price: 2400})
	assert.Equal(t, "s_3", ring.ID)
	assert.Equal(t, entities.TypeEngagementRing, ring.Type)
	assert.Equal(t, int64(3400), ring.Price)
	assert.Equal(t, "Round", ring.Shape)
	assert.Equal(t, "VS1", ring.Clarity)
	assert.Equal(t, 1.0, ring.Carat)
	assert.True(t, ring.TripleEx)

	studs := toSettingProduct(&SettingDocument{ID: 7, Name: "Halo Studs", Type: "Earrings", Price: 1900})
	assert.Equal(t, entities.TypeEarrings, studs.Type)
	assert.Equal(t, int64(2900), studs.Price)
}

func TestToOrderDocument(t *testing.T) {
	created := time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)
	order := &entities.Order{
		OrderID:       "ord-1",
		CustomerEmail: "anna@example.ch",
		TotalAmount:   5450,
		Status:        entities.OrderStatusPaid,
		CreatedAt:     created,
		ShippingAddress: entities.ShippingDetails{
			FirstName:  "Anna",
			LastName:   "Keller",
			Email:      "anna@example.ch",
			Street:     "Bahnhofstrasse 1",
			PostalCode: "8001",
			City:       "Zurich",
		},
		Items: []entities.OrderItem{
			{ProductID: "d_17", Name: "1.52 ct Oval Lab Diamond", Price: 4200, Quantity: 1},
			{
				ProductID: "custom-1",
				Name:      "1.00 ct Ring",
				Price:     2450,
				Quantity:  1,
				Config: &entities.JewelleryConfig{
					Mode:          entities.ModeRing,
					Setting:       "Solitaire",
					Metal:         "18k White Gold",
					Size:          "54 (EU)",
					BaseProductID: "d_2",
				},
			},
		},
	}

	doc := toOrderDocument(order)

	assert.Equal(t, "ord-1", doc.OrderID)
	assert.Equal(t, "paid", doc.Status)
	assert.Equal(t, created, doc.CreatedAt)
	assert.Equal(t, "8001", doc.ShippingAddress.PostalCode)
	assert.Len(t, doc.Items, 2)

	assert.Nil(t, doc.Items[0].Config)
	if assert.NotNil(t, doc.Items[1].Config) {
		assert.Equal(t, "ring", doc.Items[1].Config.Mode)
		assert.Equal(t, "d_2", doc.Items[1].Config.BaseProductID)
	}
}
