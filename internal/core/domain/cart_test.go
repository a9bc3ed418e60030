package domain_test

import (
	"testing"

	"github.com/cocoa-apparel/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogLookup() domain.ProductLookup {
	byID := map[string]domain.Product{
		"1": {ID: "1", Price: 4500},
		"5": {ID: "5", Price: 7800},
	}
	return func(id string) (domain.Product, bool) {
		p, ok := byID[id]
		return p, ok
	}
}

func TestCartAdd(t *testing.T) {
	t.Run("MergesSameTriple", func(t *testing.T) {
		var c domain.Cart
		c.Add(domain.CartLine{ProductID: "1", Size: "L", Color: "Black", Quantity: 1})
		c.Add(domain.CartLine{ProductID: "1", Size: "L", Color: "Black", Quantity: 2})

		require.Len(t, c.Lines, 1)
		assert.Equal(t, 3, c.Lines[0].Quantity)
	})

	t.Run("DifferentSizeIsNewLine", func(t *testing.T) {
		var c domain.Cart
		c.Add(domain.CartLine{ProductID: "1", Size: "L", Color: "Black", Quantity: 1})
		c.Add(domain.CartLine{ProductID: "1", Size: "M", Color: "Black", Quantity: 1})

		assert.Len(t, c.Lines, 2)
	})

	t.Run("IgnoresNonPositiveQuantity", func(t *testing.T) {
		var c domain.Cart
		c.Add(domain.CartLine{ProductID: "1", Size: "L", Color: "Black", Quantity: 0})
		assert.Empty(t, c.Lines)
	})
}

func TestCartUpdateQuantity(t *testing.T) {
	newCart := func() domain.Cart {
		return domain.Cart{Lines: []domain.CartLine{
			{ProductID: "1", Size: "L", Color: "Black", Quantity: 2},
		}}
	}

	t.Run("Sets", func(t *testing.T) {
		c := newCart()
		c.UpdateQuantity(0, 5)
		assert.Equal(t, 5, c.Lines[0].Quantity)
	})

	t.Run("QuantityFloor", func(t *testing.T) {
		c := newCart()
		c.UpdateQuantity(0, 0)
		assert.Equal(t, 2, c.Lines[0].Quantity)

		c.UpdateQuantity(0, -3)
		assert.Equal(t, 2, c.Lines[0].Quantity)
	})

	t.Run("IndexOutOfRange", func(t *testing.T) {
		c := newCart()
		c.UpdateQuantity(7, 1)
		assert.Equal(t, 2, c.Lines[0].Quantity)
	})
}

func TestCartRemove(t *testing.T) {
	c := domain.Cart{Lines: []domain.CartLine{
		{ProductID: "1", Quantity: 1},
		{ProductID: "5", Quantity: 2},
	}}

	c.Remove(0)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, "5", c.Lines[0].ProductID)

	c.Remove(3)
	assert.Len(t, c.Lines, 1)
}

func TestCartApplyPromo(t *testing.T) {
	t.Run("CaseInsensitive", func(t *testing.T) {
		var c domain.Cart
		c.ApplyPromo("COCOA10")
		assert.True(t, c.PromoApplied)
	})

	t.Run("MalformedCodeIgnored", func(t *testing.T) {
		var c domain.Cart
		c.ApplyPromo("cocoa20")
		assert.False(t, c.PromoApplied)
	})

	t.Run("OneWay", func(t *testing.T) {
		var c domain.Cart
		c.ApplyPromo("cocoa10")
		c.ApplyPromo("cocoa10")
		c.ApplyPromo("nonsense")
		assert.True(t, c.PromoApplied)
	})
}

func TestSummarize(t *testing.T) {
	lines := []domain.CartLine{
		{ProductID: "1", Size: "L", Color: "Black", Quantity: 1},
		{ProductID: "5", Size: "M", Color: "Black", Quantity: 2},
	}

	t.Run("WithoutPromo", func(t *testing.T) {
		s := domain.Summarize(lines, catalogLookup(), false)
		assert.Equal(t, int64(20100), s.Subtotal)
		assert.Equal(t, int64(0), s.Discount)
		assert.Equal(t, int64(0), s.Shipping)
		assert.Equal(t, int64(20100), s.Total)
	})

	t.Run("WithPromo", func(t *testing.T) {
		s := domain.Summarize(lines, catalogLookup(), true)
		assert.Equal(t, int64(2010), s.Discount)
		assert.Equal(t, int64(18090), s.Total)
	})

	t.Run("UnknownProductContributesZero", func(t *testing.T) {
		withGhost := append([]domain.CartLine{
			{ProductID: "404", Size: "M", Color: "Black", Quantity: 9},
		}, lines...)
		s := domain.Summarize(withGhost, catalogLookup(), false)
		assert.Equal(t, int64(20100), s.Subtotal)
	})

	t.Run("ShippingThreshold", func(t *testing.T) {
		small := []domain.CartLine{{ProductID: "1", Quantity: 1}} // 4500
		s := domain.Summarize(small, catalogLookup(), false)
		assert.Equal(t, int64(500), s.Shipping)
		assert.Equal(t, int64(5000), s.Total)

		// exactly at the threshold still pays shipping
		atLimit := func(id string) (domain.Product, bool) {
			return domain.Product{ID: id, Price: 5000}, true
		}
		s = domain.Summarize(small, atLimit, false)
		assert.Equal(t, int64(500), s.Shipping)
	})

	t.Run("TotalIdentity", func(t *testing.T) {
		for _, promo := range []bool{false, true} {
			for qty := 1; qty <= 4; qty++ {
				ls := []domain.CartLine{
					{ProductID: "1", Quantity: qty},
					{ProductID: "5", Quantity: 5 - qty},
				}
				s := domain.Summarize(ls, catalogLookup(), promo)
				assert.Equal(t, s.Subtotal-s.Discount+s.Shipping, s.Total)
			}
		}
	})

	t.Run("EmptyCart", func(t *testing.T) {
		s := domain.Summarize(nil, catalogLookup(), true)
		assert.Equal(t, int64(0), s.Subtotal)
		assert.Equal(t, int64(0), s.Discount)
		assert.Equal(t, int64(500), s.Shipping)
		assert.Equal(t, int64(500), s.Total)
	})
}
