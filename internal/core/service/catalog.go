package service

import (
	"context"
	"fmt"

	"github.com/cocoa-apparel/storefront/internal/core/domain"
	"github.com/cocoa-apparel/storefront/internal/core/port"
)

var _ port.ProductBrowser = (*Catalog)(nil)
var _ port.ProductAdmin = (*Catalog)(nil)

// A Catalog serves storefront browsing and admin product management
// over the repository.
type Catalog struct {
	repo port.CatalogRepository
}

func NewCatalog(repo port.CatalogRepository) *Catalog {
	return &Catalog{repo}
}

// Browse returns the products matching f, ordered by key.
func (c *Catalog) Browse(
	ctx context.Context, f domain.FilterSpec, key domain.SortKey,
) ([]domain.Product, error) {
	const op = "Catalog.Browse"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := c.repo.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return domain.SortProducts(domain.FilterProducts(ps, f), key), nil
}

func (c *Catalog) Product(
	ctx context.Context, id string,
) (domain.Product, error) {
	const op = "Catalog.Product"

	p, err := c.repo.ProductByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// Categories returns the category list with ProductCount recomputed from
// the live product list. The seeded counts are ignored: the stored value
// drifts from actual membership and is not a source of truth.
func (c *Catalog) Categories(ctx context.Context) ([]domain.Category, error) {
	const op = "Catalog.Categories"

	cs, err := c.repo.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := c.repo.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	perSlug := make(map[string]int, len(cs))
	for _, p := range ps {
		perSlug[p.Category]++
	}

	for i := range cs {
		cs[i].ProductCount = perSlug[cs[i].Slug]
	}
	return cs, nil
}

// UpsertProduct validates and stores the product record.
func (c *Catalog) UpsertProduct(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	const op = "Catalog.UpsertProduct"

	p, err := domain.NewProduct(p)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := c.repo.SaveProduct(ctx, p); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (c *Catalog) RemoveProduct(ctx context.Context, id string) error {
	const op = "Catalog.RemoveProduct"

	if err := c.repo.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
