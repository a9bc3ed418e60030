package httphandler

import (
	"github.com/cocoa-apparel/storefront/internal/core/domain"
	"github.com/cocoa-apparel/storefront/pkg/currency"
)

type (
	Product struct {
		ID            string   `json:"id"`
		Name          string   `json:"name"`
		Price         int64    `json:"price"`
		PriceDisplay  string   `json:"price_display"`
		OriginalPrice int64    `json:"original_price,omitempty"`
		Category      string   `json:"category"`
		Subcategory   string   `json:"subcategory"`
		Image         string   `json:"image"`
		Description   string   `json:"description"`
		Sizes         []string `json:"sizes"`
		Colors        []string `json:"colors"`
		Tags          []string `json:"tags"`
		IsNew         bool     `json:"is_new"`
		IsLimited     bool     `json:"is_limited"`
		Rating        float64  `json:"rating"`
		Reviews       int      `json:"reviews"`
	}

	Category struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		Slug         string `json:"slug"`
		Image        string `json:"image"`
		Description  string `json:"description"`
		ProductCount int    `json:"product_count"`
	}

	CartLine struct {
		ProductID string `json:"product_id"`
		Size      string `json:"size"`
		Color     string `json:"color"`
		Quantity  int    `json:"quantity"`
	}

	CartView struct {
		Lines        []CartLine   `json:"lines"`
		PromoApplied bool         `json:"promo_applied"`
		Summary      PriceSummary `json:"summary"`
	}

	PriceSummary struct {
		Subtotal        int64  `json:"subtotal"`
		Discount        int64  `json:"discount"`
		Shipping        int64  `json:"shipping"`
		Total           int64  `json:"total"`
		SubtotalDisplay string `json:"subtotal_display"`
		TotalDisplay    string `json:"total_display"`
	}

	User struct {
		ID        string `json:"id"`
		Email     string `json:"email"`
		Name      string `json:"name"`
		Role      string `json:"role"`
		CreatedAt string `json:"created_at"`
	}

	AuthState struct {
		User            *User `json:"user"`
		IsAuthenticated bool  `json:"is_authenticated"`
	}

	Activity struct {
		Shopper string `json:"shopper"`
		Viewed  int64  `json:"viewed"`
		Added   int64  `json:"added"`
	}
)

type (
	AddLineRequest struct {
		ProductID string `json:"product_id" validate:"required"`
		Size      string `json:"size" validate:"required"`
		Color     string `json:"color" validate:"required"`
		Quantity  int    `json:"quantity" validate:"required,min=1"`
	}

	UpdateQuantityRequest struct {
		Quantity int `json:"quantity" validate:"required"`
	}

	PromoRequest struct {
		Code string `json:"code" validate:"required"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	RegisterRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
		Name     string `json:"name" validate:"required"`
	}

	UpsertProductRequest struct {
		ID            string   `json:"id" validate:"required"`
		Name          string   `json:"name" validate:"required"`
		Price         int64    `json:"price" validate:"required,gt=0"`
		OriginalPrice int64    `json:"original_price" validate:"gte=0"`
		Category      string   `json:"category" validate:"required"`
		Subcategory   string   `json:"subcategory"`
		Image         string   `json:"image"`
		Description   string   `json:"description"`
		Sizes         []string `json:"sizes" validate:"required,min=1"`
		Colors        []string `json:"colors" validate:"required,min=1"`
		Tags          []string `json:"tags"`
		IsNew         bool     `json:"is_new"`
		IsLimited     bool     `json:"is_limited"`
		Rating        float64  `json:"rating" validate:"gte=0,lte=5"`
		Reviews       int      `json:"reviews" validate:"gte=0"`
	}
)

func toProductView(p domain.Product) Product {
	return Product{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		PriceDisplay:  currency.Format(p.Price),
		OriginalPrice: p.OriginalPrice,
		Category:      p.Category,
		Subcategory:   p.Subcategory,
		Image:         p.Image,
		Description:   p.Description,
		Sizes:         p.Sizes,
		Colors:        p.Colors,
		Tags:          p.Tags,
		IsNew:         p.IsNew,
		IsLimited:     p.IsLimited,
		Rating:        p.Rating,
		Reviews:       p.Reviews,
	}
}

func toProductViews(ps []domain.Product) []Product {
	out := make([]Product, len(ps))
	for i, p := range ps {
		out[i] = toProductView(p)
	}
	return out
}

func toCategoryViews(cs []domain.Category) []Category {
	out := make([]Category, len(cs))
	for i, c := range cs {
		out[i] = Category{
			ID:           c.ID,
			Name:         c.Name,
			Slug:         c.Slug,
			Image:        c.Image,
			Description:  c.Description,
			ProductCount: c.ProductCount,
		}
	}
	return out
}

func toSummaryView(s domain.PriceSummary) PriceSummary {
	return PriceSummary{
		Subtotal:        s.Subtotal,
		Discount:        s.Discount,
		Shipping:        s.Shipping,
		Total:           s.Total,
		SubtotalDisplay: currency.Format(s.Subtotal),
		TotalDisplay:    currency.Format(s.Total),
	}
}

func toCartView(c domain.Cart, s domain.PriceSummary) CartView {
	lines := make([]CartLine, len(c.Lines))
	for i, l := range c.Lines {
		lines[i] = CartLine{
			ProductID: l.ProductID,
			Size:      l.Size,
			Color:     l.Color,
			Quantity:  l.Quantity,
		}
	}
	return CartView{
		Lines:        lines,
		PromoApplied: c.PromoApplied,
		Summary:      toSummaryView(s),
	}
}

func toUserView(u domain.User) User {
	return User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format("2006-01-02"),
	}
}

func toAuthStateView(state domain.AuthState) AuthState {
	v := AuthState{IsAuthenticated: state.IsAuthenticated}
	if state.User != nil {
		u := toUserView(*state.User)
		v.User = &u
	}
	return v
}

func (r UpsertProductRequest) toDomain() domain.Product {
	return domain.Product{
		ID:            r.ID,
		Name:          r.Name,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Category:      r.Category,
		Subcategory:   r.Subcategory,
		Image:         r.Image,
		Description:   r.Description,
		Sizes:         r.Sizes,
		Colors:        r.Colors,
		Tags:          r.Tags,
		IsNew:         r.IsNew,
		IsLimited:     r.IsLimited,
		Rating:        r.Rating,
		Reviews:       r.Reviews,
	}
}
