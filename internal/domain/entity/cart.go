package entity

import "github.com/shopspring/decimal"

// CartLine is one product/quantity pairing inside a cart. The product
// snapshot is captured when the line is created and reused for the life of
// the cart, so catalog price edits never reach an open cart.
type CartLine struct {
	Product  ProductSnapshot
	Quantity int64 // Always >= 1; removal is deletion of the line, never quantity 0.
}

// LineTotal returns price x quantity for this line.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(l.Quantity))
}

// ShippingPolicy derives the shipping fee from cart state. FlatRate is
// charged unless the subtotal reaches FreeThreshold.
type ShippingPolicy struct {
	FreeThreshold decimal.Decimal
	FlatRate      decimal.Decimal
}

// FeeFor returns the shipping fee for the given subtotal and item count.
// An empty cart ships nothing and is never charged.
func (p ShippingPolicy) FeeFor(subtotal decimal.Decimal, itemCount int64) decimal.Decimal {
	if itemCount == 0 {
		return decimal.Zero
	}
	if subtotal.GreaterThanOrEqual(p.FreeThreshold) {
		return decimal.Zero
	}

	return p.FlatRate
}

// Cart holds the lines of one shopping session, keyed by product ID.
// Totals are order-independent; display order is insertion order. A cart is
// owned by exactly one session and is never mutated concurrently.
type Cart struct {
	lines map[string]*CartLine
	order []string // product IDs in insertion order
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{lines: make(map[string]*CartLine)}
}

// AddItem adds the product to the cart. If a line for the product already
// exists the quantities are summed; otherwise a new line is created with the
// quantity clamped to at least 1.
func (c *Cart) AddItem(product ProductSnapshot, quantity int64) {
	if quantity < 1 {
		quantity = 1
	}

	if line, ok := c.lines[product.ProductID]; ok {
		line.Quantity += quantity

		return
	}

	c.lines[product.ProductID] = &CartLine{Product: product, Quantity: quantity}
	c.order = append(c.order, product.ProductID)
}

// UpdateQuantity replaces the quantity of an existing line. Quantities below
// 1 are clamped to 1; lowering a quantity never removes the line. Returns
// false when no line exists for the product.
func (c *Cart) UpdateQuantity(productID string, quantity int64) bool {
	line, ok := c.lines[productID]
	if !ok {
		return false
	}

	if quantity < 1 {
		quantity = 1
	}
	line.Quantity = quantity

	return true
}

// RemoveItem deletes the line for the product. Removing an absent product is
// a no-op.
func (c *Cart) RemoveItem(productID string) {
	if _, ok := c.lines[productID]; !ok {
		return
	}

	delete(c.lines, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)

			break
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = make(map[string]*CartLine)
	c.order = nil
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns copies of the cart lines in insertion order.
func (c *Cart) Lines() []CartLine {
	lines := make([]CartLine, 0, len(c.order))
	for _, id := range c.order {
		lines = append(lines, *c.lines[id])
	}

	return lines
}

// Subtotal sums price x quantity over all lines using each line's captured
// price.
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, id := range c.order {
		subtotal = subtotal.Add(c.lines[id].LineTotal())
	}

	return subtotal
}

// ItemCount sums the quantities over all lines.
func (c *Cart) ItemCount() int64 {
	var count int64
	for _, line := range c.lines {
		count += line.Quantity
	}

	return count
}

// ShippingFee applies the policy to the current cart state.
func (c *Cart) ShippingFee(policy ShippingPolicy) decimal.Decimal {
	return policy.FeeFor(c.Subtotal(), c.ItemCount())
}

// GrandTotal is Subtotal + ShippingFee under the given policy.
func (c *Cart) GrandTotal(policy ShippingPolicy) decimal.Decimal {
	return c.Subtotal().Add(c.ShippingFee(policy))
}
