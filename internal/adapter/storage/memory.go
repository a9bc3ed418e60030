package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/cocoa-apparel/storefront/internal/core/domain"
	"github.com/cocoa-apparel/storefront/internal/core/port"
)

var _ port.CatalogRepository = (*MemoryCatalog)(nil)

// A MemoryCatalog serves the seeded product list from process memory.
// Admin edits mutate only this copy: a restart reseeds, matching the
// original's local-state-only admin semantics.
type MemoryCatalog struct {
	mu         sync.RWMutex
	products   []domain.Product
	categories []domain.Category
}

func NewMemoryCatalog(
	products []domain.Product, categories []domain.Category,
) *MemoryCatalog {
	m := &MemoryCatalog{
		products:   make([]domain.Product, len(products)),
		categories: make([]domain.Category, len(categories)),
	}
	copy(m.products, products)
	copy(m.categories, categories)
	return m
}

// NewSeededCatalog returns a MemoryCatalog holding the shipped dataset.
func NewSeededCatalog() *MemoryCatalog {
	return NewMemoryCatalog(SeedProducts(), SeedCategories())
}

func (m *MemoryCatalog) Products(ctx context.Context) ([]domain.Product, error) {
	const op = "MemoryCatalog.Products"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *MemoryCatalog) ProductByID(
	ctx context.Context, id string,
) (domain.Product, error) {
	const op = "MemoryCatalog.ProductByID"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
}

func (m *MemoryCatalog) Categories(
	ctx context.Context,
) ([]domain.Category, error) {
	const op = "MemoryCatalog.Categories"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Category, len(m.categories))
	copy(out, m.categories)
	return out, nil
}

func (m *MemoryCatalog) SaveProduct(
	ctx context.Context, p domain.Product,
) error {
	const op = "MemoryCatalog.SaveProduct"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i, have := range m.products {
		if have.ID == p.ID {
			m.products[i] = p
			return nil
		}
	}
	m.products = append(m.products, p)
	return nil
}

func (m *MemoryCatalog) DeleteProduct(ctx context.Context, id string) error {
	const op = "MemoryCatalog.DeleteProduct"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i, have := range m.products {
		if have.ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
}
