package domain_test

import (
	"testing"

	"github.com/cocoa-apparel/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []domain.Product {
	return []domain.Product{
		{
			ID: "1", Name: "Neon Dreams Oversized Tee", Price: 4500,
			Category: "anime", Subcategory: "oversized",
			Sizes:  []string{"S", "M", "L", "XL"},
			Colors: []string{"Black", "White"},
			IsNew:  true, Rating: 4.8, Reviews: 124,
		},
		{
			ID: "2", Name: "Idol Wave Crop Hoodie", Price: 6800,
			OriginalPrice: 8500,
			Category:      "kpop", Subcategory: "hoodies",
			Sizes:  []string{"XS", "S", "M"},
			Colors: []string{"Black", "Pink"},
			Rating: 4.9, Reviews: 89,
		},
		{
			ID: "3", Name: "Pixel Warrior Jersey", Price: 5500,
			Category: "gaming", Subcategory: "basic",
			Sizes:  []string{"M", "L", "XL"},
			Colors: []string{"Navy"},
			IsNew:  true, Rating: 4.7, Reviews: 67,
		},
		{
			ID: "4", Name: "Seoul Nights Hoodie", Price: 7800,
			Category: "kpop", Subcategory: "hoodies",
			Sizes:  []string{"S", "M", "L"},
			Colors: []string{"Black"},
			IsLimited: true, Rating: 4.9, Reviews: 203,
		},
		{
			ID: "5", Name: "Sakura Spirit Tee", Price: 4500,
			Category: "anime", Subcategory: "basic",
			Sizes:  []string{"S", "M"},
			Colors: []string{"White", "Pink"},
			Rating: 4.6, Reviews: 156,
		},
	}
}

func ids(ps []domain.Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestNewProduct(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		p, err := domain.NewProduct(testProducts()[0])
		require.NoError(t, err)
		assert.Equal(t, "1", p.ID)
	})

	t.Run("EmptySizeList", func(t *testing.T) {
		v := testProducts()[0]
		v.Sizes = nil
		_, err := domain.NewProduct(v)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidProduct)
	})

	t.Run("RatingOutOfRange", func(t *testing.T) {
		v := testProducts()[0]
		v.Rating = 5.1
		_, err := domain.NewProduct(v)
		assert.ErrorIs(t, err, domain.ErrInvalidProduct)
	})

	t.Run("NonPositivePrice", func(t *testing.T) {
		v := testProducts()[0]
		v.Price = 0
		_, err := domain.NewProduct(v)
		assert.ErrorIs(t, err, domain.ErrInvalidProduct)
	})
}

func TestFilterProducts(t *testing.T) {
	t.Run("EmptySpecReturnsAllInOrder", func(t *testing.T) {
		ps := testProducts()
		got := domain.FilterProducts(ps, domain.FilterSpec{})
		assert.Equal(t, ps, got)
	})

	t.Run("CategoryFacet", func(t *testing.T) {
		got := domain.FilterProducts(testProducts(), domain.FilterSpec{
			Categories: []string{"kpop"},
		})
		assert.Equal(t, []string{"2", "4"}, ids(got))
	})

	t.Run("SizeFacetAnyOverlap", func(t *testing.T) {
		got := domain.FilterProducts(testProducts(), domain.FilterSpec{
			Sizes: []string{"XL"},
		})
		assert.Equal(t, []string{"1", "3"}, ids(got))
	})

	t.Run("PriceRangeInclusive", func(t *testing.T) {
		got := domain.FilterProducts(testProducts(), domain.FilterSpec{
			MinPrice: 4500, MaxPrice: 5500,
		})
		assert.Equal(t, []string{"1", "3", "5"}, ids(got))
	})

	t.Run("QuickFilters", func(t *testing.T) {
		onSale := domain.FilterProducts(testProducts(), domain.FilterSpec{OnSale: true})
		assert.Equal(t, []string{"2"}, ids(onSale))

		newOnes := domain.FilterProducts(testProducts(), domain.FilterSpec{NewArrivals: true})
		assert.Equal(t, []string{"1", "3"}, ids(newOnes))

		limited := domain.FilterProducts(testProducts(), domain.FilterSpec{Limited: true})
		assert.Equal(t, []string{"4"}, ids(limited))
	})

	t.Run("ConjunctionAcrossFacets", func(t *testing.T) {
		spec := domain.FilterSpec{
			Categories: []string{"anime", "kpop"},
			Colors:     []string{"Pink"},
			MaxPrice:   7000,
		}
		got := domain.FilterProducts(testProducts(), spec)
		require.Equal(t, []string{"2", "5"}, ids(got))

		for _, p := range got {
			assert.True(t, spec.Matches(p))
		}
		for _, p := range testProducts() {
			if !spec.Matches(p) {
				assert.NotContains(t, ids(got), p.ID)
			}
		}
	})
}

func TestSortProducts(t *testing.T) {
	t.Run("FeaturedKeepsInsertionOrder", func(t *testing.T) {
		ps := testProducts()
		got := domain.SortProducts(ps, domain.SortFeatured)
		assert.Equal(t, ids(ps), ids(got))
	})

	t.Run("FeaturedDoesNotAliasInput", func(t *testing.T) {
		ps := testProducts()
		got := domain.SortProducts(ps, domain.SortFeatured)
		got[0].ID = "mutated"
		assert.Equal(t, "1", ps[0].ID)
	})

	t.Run("NewestIsStablePartition", func(t *testing.T) {
		got := domain.SortProducts(testProducts(), domain.SortNewest)
		assert.Equal(t, []string{"1", "3", "2", "4", "5"}, ids(got))
	})

	t.Run("PriceLowStableOnTies", func(t *testing.T) {
		// products 1 and 5 share price 4500; 1 precedes 5 in input
		got := domain.SortProducts(testProducts(), domain.SortPriceLow)
		assert.Equal(t, []string{"1", "5", "3", "2", "4"}, ids(got))
	})

	t.Run("PriceHigh", func(t *testing.T) {
		got := domain.SortProducts(testProducts(), domain.SortPriceHigh)
		assert.Equal(t, []string{"4", "2", "3", "1", "5"}, ids(got))
	})

	t.Run("RatingDescendingStable", func(t *testing.T) {
		// 2 and 4 share rating 4.9; input order preserved between them
		got := domain.SortProducts(testProducts(), domain.SortRating)
		assert.Equal(t, []string{"2", "4", "1", "3", "5"}, ids(got))
	})

	t.Run("UnknownKeyFallsBackToFeatured", func(t *testing.T) {
		assert.Equal(t, domain.SortFeatured, domain.ParseSortKey("trending"))
		assert.Equal(t, domain.SortPriceLow, domain.ParseSortKey("PRICE-LOW"))
	})
}
