package entity

import "github.com/shopspring/decimal"

// CartLine pairs one product with an ordered quantity. Quantity is >= 1
// for as long as the line exists; a line pushed below 1 is removed, never
// kept at zero.
type CartLine struct {
	Product  Product
	Quantity int
}

// Subtotal is quantity times unit price.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is an ordered collection of lines, at most one per product ID.
// Insertion order is display order. Totals are derived from the lines on
// every read; they are never stored separately.
type Cart struct {
	Lines []CartLine
}

// Add merges quantity into the existing line for the product, or appends a
// new line at the end. Non-positive quantities are clamped up to 1.
func (c *Cart) Add(p Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Lines {
		if c.Lines[i].Product.ID == p.ID {
			c.Lines[i].Quantity += quantity
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{Product: p, Quantity: quantity})
}

// SetQuantity sets the line's quantity, removing the line entirely when the
// new quantity drops below 1. Unknown product IDs are a no-op.
func (c *Cart) SetQuantity(productID string, quantity int) {
	for i := range c.Lines {
		if c.Lines[i].Product.ID != productID {
			continue
		}
		if quantity < 1 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		} else {
			c.Lines[i].Quantity = quantity
		}
		return
	}
}

// Remove deletes the line for productID. Removal is idempotent.
func (c *Cart) Remove(productID string) {
	c.SetQuantity(productID, 0)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = nil
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// TotalItems is the sum of all line quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, l := range c.Lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice is the sum of quantity times unit price across all lines.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Snapshot returns a copy whose line slice is independent of the original,
// so callers can read it without racing later mutations.
func (c *Cart) Snapshot() Cart {
	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return Cart{Lines: lines}
}
