package entities

// Shipping is free for empty carts and above the threshold, otherwise a
// flat fee applies. Whole CHF.
const (
	FreeShippingThreshold int64 = 3000
	FlatShippingFee       int64 = 49
)

// CartLine is one product's accumulated quantity in a cart.
type CartLine struct {
	Product  Product
	Quantity int
}

// Cart keeps at most one line per product id, in insertion order. It is
// owned by a single session and is not safe for concurrent use.
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// AddProduct increments the quantity of an existing line for the same
// product id, or appends a new line with quantity 1.
func (c *Cart) AddProduct(p Product) {
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, CartLine{Product: p, Quantity: 1})
}

// SetQuantity sets a line's quantity, clamped to a minimum of 1. Lines are
// removed only through Remove. Unknown product ids are ignored.
func (c *Cart) SetQuantity(productID string, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity = qty
			return
		}
	}
}

// Remove deletes the line for the product id; no-op if absent.
func (c *Cart) Remove(productID string) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Invoked after a successful order submission.
func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []CartLine {
	lines := make([]CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Count is the total number of units across all lines.
func (c *Cart) Count() int {
	count := 0
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

func (c *Cart) Subtotal() int64 {
	var subtotal int64
	for _, l := range c.lines {
		subtotal += l.Product.Price * int64(l.Quantity)
	}
	return subtotal
}

func (c *Cart) Shipping() int64 {
	subtotal := c.Subtotal()
	if subtotal == 0 || subtotal >= FreeShippingThreshold {
		return 0
	}
	return FlatShippingFee
}

func (c *Cart) Total() int64 {
	return c.Subtotal() + c.Shipping()
}
