package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrInvalidProduct = errors.New("invalid product")

type (
	Product struct {
		ID            string
		Name          string
		Price         int64
		OriginalPrice int64
		Category      string
		Subcategory   string
		Image         string
		Description   string
		Sizes         []string
		Colors        []string
		Tags          []string
		IsNew         bool
		IsLimited     bool
		Rating        float64
		Reviews       int
	}

	Category struct {
		ID           string
		Name         string
		Slug         string
		Image        string
		Description  string
		ProductCount int
	}
)

// NewProduct validates the record fields and returns the product value.
// Malformed entries are rejected at construction time, not at use sites.
func NewProduct(p Product) (Product, error) {
	const op = "NewProduct"

	var errs []error

	if p.ID == "" {
		errs = append(errs, errors.New("empty id"))
	}
	if p.Name == "" {
		errs = append(errs, errors.New("empty name"))
	}
	if p.Price <= 0 {
		errs = append(errs, fmt.Errorf("non-positive price %d", p.Price))
	}
	if p.OriginalPrice < 0 {
		errs = append(errs, fmt.Errorf("negative original price %d", p.OriginalPrice))
	}
	if len(p.Sizes) == 0 {
		errs = append(errs, errors.New("empty size list"))
	}
	if len(p.Colors) == 0 {
		errs = append(errs, errors.New("empty color list"))
	}
	if p.Rating < 0 || p.Rating > 5 {
		errs = append(errs, fmt.Errorf("rating %v out of range", p.Rating))
	}
	if p.Reviews < 0 {
		errs = append(errs, fmt.Errorf("negative reviews %d", p.Reviews))
	}

	if len(errs) != 0 {
		return Product{}, fmt.Errorf(
			"%s: %w: %w", op, ErrInvalidProduct, errors.Join(errs...),
		)
	}
	return p, nil
}

// OnSale reports whether the product carries a crossed-out original price.
func (p Product) OnSale() bool {
	return p.OriginalPrice > 0
}

// A FilterSpec holds the active facet selections for narrowing a product
// list. The zero value constrains nothing: empty facet selections mean
// "no restriction", not "exclude all".
type FilterSpec struct {
	Categories    []string
	Subcategories []string
	Sizes         []string
	Colors        []string
	MinPrice      int64
	MaxPrice      int64 // inclusive; values <= 0 mean unbounded
	OnSale        bool
	NewArrivals   bool
	Limited       bool
}

// Matches reports whether the product satisfies every active facet.
// All predicates are ANDed.
func (f FilterSpec) Matches(p Product) bool {
	if len(f.Categories) > 0 && !contains(f.Categories, p.Category) {
		return false
	}
	if len(f.Subcategories) > 0 && !contains(f.Subcategories, p.Subcategory) {
		return false
	}
	if len(f.Sizes) > 0 && !containsAny(f.Sizes, p.Sizes) {
		return false
	}
	if len(f.Colors) > 0 && !containsAny(f.Colors, p.Colors) {
		return false
	}
	if p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	if f.OnSale && !p.OnSale() {
		return false
	}
	if f.NewArrivals && !p.IsNew {
		return false
	}
	if f.Limited && !p.IsLimited {
		return false
	}
	return true
}

// FilterProducts returns the subset of ps matching the spec,
// preserving input order.
func FilterProducts(ps []Product, f FilterSpec) []Product {
	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsAny(set, vs []string) bool {
	for _, v := range vs {
		if contains(set, v) {
			return true
		}
	}
	return false
}

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
)

// ParseSortKey maps a raw query value to a SortKey,
// falling back to SortFeatured.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(strings.ToLower(s)); k {
	case SortNewest, SortPriceLow, SortPriceHigh, SortRating:
		return k
	default:
		return SortFeatured
	}
}

// SortProducts returns a newly ordered copy of ps. All orders are stable:
// ties keep their original relative order, since products carry no
// secondary sort key. "newest" is a stable partition on IsNew because the
// records hold no timestamp to sort by.
func SortProducts(ps []Product, key SortKey) []Product {
	out := make([]Product, len(ps))
	copy(out, ps)

	switch key {
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].IsNew && !out[j].IsNew
		})
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price < out[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price > out[j].Price
		})
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	}
	return out
}
