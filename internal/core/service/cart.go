package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cocoa-apparel/storefront/internal/core/domain"
	"github.com/cocoa-apparel/storefront/internal/core/port"
)

var _ port.CartEditor = (*Carts)(nil)

// Carts holds the per-session shopping carts and wishlists. State lives
// only in process memory, mirroring the original's browser-local carts:
// a restart starts every session empty.
type Carts struct {
	mu      sync.Mutex
	carts   map[string]*domain.Cart
	wishes  map[string][]string
	catalog port.CatalogRepository
	events  port.ShopperEventsProducer
}

func NewCarts(
	catalog port.CatalogRepository, events port.ShopperEventsProducer,
) *Carts {
	return &Carts{
		carts:   make(map[string]*domain.Cart),
		wishes:  make(map[string][]string),
		catalog: catalog,
		events:  events,
	}
}

// Cart returns a snapshot of the session's cart.
func (s *Carts) Cart(session string) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cartLocked(session)
	snap := domain.Cart{
		Lines:        make([]domain.CartLine, len(c.Lines)),
		PromoApplied: c.PromoApplied,
	}
	copy(snap.Lines, c.Lines)
	return snap
}

// AddLine merges the line into the session's cart and emits an
// added-to-cart event. Event delivery is best-effort: a broker failure
// never fails the cart edit.
func (s *Carts) AddLine(
	ctx context.Context, session string, l domain.CartLine,
) error {
	const op = "Carts.AddLine"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.cartLocked(session).Add(l)
	s.mu.Unlock()

	s.emitAdded(ctx, session, l)
	return nil
}

func (s *Carts) UpdateQuantity(session string, index, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartLocked(session).UpdateQuantity(index, quantity)
}

func (s *Carts) RemoveLine(session string, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartLocked(session).Remove(index)
}

func (s *Carts) ApplyPromo(session, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartLocked(session).ApplyPromo(code)
}

// Totals derives the price summary for the session's cart against the
// current catalog.
func (s *Carts) Totals(
	ctx context.Context, session string,
) (domain.PriceSummary, error) {
	const op = "Carts.Totals"

	ps, err := s.catalog.Products(ctx)
	if err != nil {
		return domain.PriceSummary{}, fmt.Errorf("%s: %w", op, err)
	}

	byID := make(map[string]domain.Product, len(ps))
	for _, p := range ps {
		byID[p.ID] = p
	}
	lookup := func(id string) (domain.Product, bool) {
		p, ok := byID[id]
		return p, ok
	}

	c := s.Cart(session)
	return domain.Summarize(c.Lines, lookup, c.PromoApplied), nil
}

// ToggleWishlist flips the product's wishlist membership and reports the
// resulting state: true when the product is now wished.
func (s *Carts) ToggleWishlist(session, productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.wishes[session]
	for i, id := range list {
		if id == productID {
			s.wishes[session] = append(list[:i], list[i+1:]...)
			return false
		}
	}
	s.wishes[session] = append(list, productID)
	return true
}

func (s *Carts) Wishlist(session string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.wishes[session]))
	copy(out, s.wishes[session])
	return out
}

func (s *Carts) cartLocked(session string) *domain.Cart {
	c, ok := s.carts[session]
	if !ok {
		c = &domain.Cart{}
		s.carts[session] = c
	}
	return c
}

func (s *Carts) emitAdded(
	ctx context.Context, session string, l domain.CartLine,
) {
	const op = "Carts.emitAdded"
	log := slog.With("op", op)

	p, err := s.catalog.ProductByID(ctx, l.ProductID)
	if err != nil {
		// ghost lines stay in the cart but produce no event
		return
	}

	evt := domain.ShopperEvent{
		Shopper:     session,
		Kind:        domain.EventAddedToCart,
		ProductID:   p.ID,
		ProductName: p.Name,
		Category:    p.Category,
		Price:       p.Price,
		At:          time.Now(),
	}

	err = s.events.ProduceEvents(ctx, []domain.ShopperEvent{evt})
	if err != nil {
		log.Warn("failed to produce event", "err", err)
	}
}
