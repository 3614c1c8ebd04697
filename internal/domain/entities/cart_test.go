package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func diamond(id string, price int64) Product {
	return Product{
		ID:    id,
		Name:  "1.00 ct Round Lab Diamond",
		Type:  TypeLooseDiamond,
		Shape: "Round",
		Price: price,
	}
}

func TestCart_AddProduct_MergesByID(t *testing.T) {
	cart := NewCart()

	cart.AddProduct(diamond("d1", 1000))
	cart.AddProduct(diamond("d2", 2500))
	cart.AddProduct(diamond("d1", 1000))

	lines := cart.Lines()
	assert.Len(t, lines, 2)
	assert.Equal(t, "d1", lines[0].Product.ID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "d2", lines[1].Product.ID)
	assert.Equal(t, 1, lines[1].Quantity)
	assert.Equal(t, 3, cart.Count())
}

func TestCart_SetQuantity_ClampsToOne(t *testing.T) {
	cart := NewCart()
	cart.AddProduct(diamond("d1", 1000))

	cart.SetQuantity("d1", 5)
	assert.Equal(t, 5, cart.Lines()[0].Quantity)

	cart.SetQuantity("d1", 0)
	assert.Equal(t, 1, cart.Lines()[0].Quantity)

	cart.SetQuantity("d1", -3)
	assert.Equal(t, 1, cart.Lines()[0].Quantity)
}

func TestCart_SetQuantity_UnknownProductIgnored(t *testing.T) {
	cart := NewCart()
	cart.AddProduct(diamond("d1", 1000))

	cart.SetQuantity("missing", 4)

	assert.Len(t, cart.Lines(), 1)
	assert.Equal(t, 1, cart.Lines()[0].Quantity)
}

func TestCart_Remove(t *testing.T) {
	cart := NewCart()
	cart.AddProduct(diamond("d1", 1000))
	cart.AddProduct(diamond("d2", 2500))

	cart.Remove("d1")
	lines := cart.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, "d2", lines[0].Product.ID)

	cart.Remove("missing")
	assert.Len(t, cart.Lines(), 1)
}

func TestCart_Totals(t *testing.T) {
	tests := []struct {
		name     string
		build    func(c *Cart)
		subtotal int64
		shipping int64
		total    int64
	}{
		{
			name:     "empty cart ships free",
			build:    func(c *Cart) {},
			subtotal: 0,
			shipping: 0,
			total:    0,
		},
		{
			name: "below threshold pays flat fee",
			build: func(c *Cart) {
				c.AddProduct(diamond("d1", 1000))
				c.AddProduct(diamond("d1", 1000))
			},
			subtotal: 2000,
			shipping: 49,
			total:    2049,
		},
		{
			name: "exactly at threshold ships free",
			build: func(c *Cart) {
				c.AddProduct(diamond("d1", 1500))
				c.AddProduct(diamond("d1", 1500))
			},
			subtotal: 3000,
			shipping: 0,
			total:    3000,
		},
		{
			name: "above threshold ships free",
			build: func(c *Cart) {
				c.AddProduct(diamond("d1", 4200))
			},
			subtotal: 4200,
			shipping: 0,
			total:    4200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := NewCart()
			tt.build(cart)

			assert.Equal(t, tt.subtotal, cart.Subtotal())
			assert.Equal(t, tt.shipping, cart.Shipping())
			assert.Equal(t, tt.total, cart.Total())
		})
	}
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart()
	cart.AddProduct(diamond("d1", 1000))
	assert.False(t, cart.IsEmpty())

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, int64(0), cart.Total())
}
