package domain

import "strings"

// PromoCode is the only recognized promo literal. Matching is
// case-insensitive and the discount is a flat 10% of the subtotal.
const PromoCode = "cocoa10"

const (
	freeShippingOver = 5000
	flatShippingFee  = 500
)

type CartLine struct {
	ProductID string
	Size      string
	Color     string
	Quantity  int
}

// A Cart holds the ordered line items and the promo state for one
// shopping session. Lines are unique per (productID, size, color):
// adding an existing combination folds into the present line.
type Cart struct {
	Lines        []CartLine
	PromoApplied bool
}

// Add merges the line into the cart. Lines with a non-positive
// quantity are ignored.
func (c *Cart) Add(l CartLine) {
	if l.Quantity < 1 {
		return
	}
	for i, have := range c.Lines {
		if have.ProductID == l.ProductID &&
			have.Size == l.Size && have.Color == l.Color {
			c.Lines[i].Quantity += l.Quantity
			return
		}
	}
	c.Lines = append(c.Lines, l)
}

// UpdateQuantity sets the quantity of the line at index i.
// Requests below 1 or out of range are no-ops.
func (c *Cart) UpdateQuantity(i, quantity int) {
	if quantity < 1 || i < 0 || i >= len(c.Lines) {
		return
	}
	c.Lines[i].Quantity = quantity
}

// Remove deletes the line at index i. Out-of-range indexes are no-ops.
func (c *Cart) Remove(i int) {
	if i < 0 || i >= len(c.Lines) {
		return
	}
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
}

// ApplyPromo turns the discount on when code matches [PromoCode].
// Application is one-way: once applied it stays applied and further
// calls change nothing. Non-matching codes are silently ignored.
func (c *Cart) ApplyPromo(code string) {
	if c.PromoApplied {
		return
	}
	if strings.EqualFold(code, PromoCode) {
		c.PromoApplied = true
	}
}

type PriceSummary struct {
	Subtotal int64
	Discount int64
	Shipping int64
	Total    int64
}

// ProductLookup resolves a product id to its record;
// ok is false for ids absent from the catalog.
type ProductLookup func(id string) (Product, bool)

// Summarize derives the cart totals. A line whose product is not found
// contributes zero to the subtotal: carts are not cross-validated against
// catalog changes. Shipping is free above the threshold, flat otherwise.
func Summarize(lines []CartLine, lookup ProductLookup, promoApplied bool) PriceSummary {
	var s PriceSummary

	for _, l := range lines {
		p, ok := lookup(l.ProductID)
		if !ok {
			continue
		}
		s.Subtotal += p.Price * int64(l.Quantity)
	}

	if promoApplied {
		s.Discount = s.Subtotal / 10
	}

	if s.Subtotal <= freeShippingOver {
		s.Shipping = flatShippingFee
	}

	s.Total = s.Subtotal - s.Discount + s.Shipping
	return s
}
