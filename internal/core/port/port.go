package port

import (
	"context"

	"github.com/cocoa-apparel/storefront/internal/core/domain"
)

// Driven ports: adapters the core depends on.

type CatalogRepository interface {
	Products(ctx context.Context) ([]domain.Product, error)
	ProductByID(ctx context.Context, id string) (domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	SaveProduct(ctx context.Context, p domain.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

// SessionStore persists the single whole AuthState record.
// Load on a cleared or never-written store returns the logged-out state.
type SessionStore interface {
	Load() (domain.AuthState, error)
	Save(domain.AuthState) error
	Clear() error
}

type ShopperEventsProducer interface {
	ProduceEvents(context.Context, []domain.ShopperEvent) error
}

type ShopperEventsSaver interface {
	SaveEvents(context.Context, []domain.ShopperEvent) error
}

// ActivityCounter reads the tallied per-shopper event counts.
type ActivityCounter interface {
	Activity(shopper string) (domain.ShopperActivity, error)
}

// Driving ports: the surface the inbound adapters consume.

type ProductBrowser interface {
	Browse(ctx context.Context, f domain.FilterSpec, key domain.SortKey) ([]domain.Product, error)
	Product(ctx context.Context, id string) (domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}

type CartEditor interface {
	Cart(session string) domain.Cart
	AddLine(ctx context.Context, session string, l domain.CartLine) error
	UpdateQuantity(session string, index, quantity int)
	RemoveLine(session string, index int)
	ApplyPromo(session, code string)
	Totals(ctx context.Context, session string) (domain.PriceSummary, error)
	ToggleWishlist(session, productID string) bool
	Wishlist(session string) []string
}

type Authenticator interface {
	Login(email, password string) (domain.User, error)
	Register(email, password, name string) (domain.User, error)
	Logout() error
	Session() domain.AuthState
	Subscribe(fn func()) (unsubscribe func())
}

type ProductAdmin interface {
	UpsertProduct(ctx context.Context, p domain.Product) (domain.Product, error)
	RemoveProduct(ctx context.Context, id string) error
}

type EventRecorder interface {
	RecordView(ctx context.Context, shopper string, p domain.Product)
	ShopperActivity(shopper string) (domain.ShopperActivity, error)
}
