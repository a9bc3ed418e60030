package httphandler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/cocoa-apparel/storefront/internal/core/domain"
	"github.com/cocoa-apparel/storefront/internal/core/port"
)

// GET v1/products?category=a,b&size=M&sort=price-low (200 OK)
// GET v1/products/{id} (200 OK, 404 Not found)
// GET v1/categories (200 OK)

type CatalogHandler struct {
	browser  port.ProductBrowser
	recorder port.EventRecorder
}

func RegisterCatalog(
	mux *http.ServeMux, browser port.ProductBrowser, recorder port.EventRecorder,
) {
	h := CatalogHandler{browser, recorder}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/products/{id}", h.GetProduct)
	mux.HandleFunc("GET /v1/categories", h.GetCategories)
}

func (h CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProducts"
	log := slog.With("op", op)

	spec, key := parseQuery(r)
	ps, err := h.browser.Browse(r.Context(), spec, key)
	if err != nil {
		http.Error(w, "failed to load products", http.StatusServiceUnavailable)
		log.Error("failed to browse products", "err", err)
		return
	}

	writeJSON(w, log, http.StatusOK, toProductViews(ps))
}

func (h CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProduct"
	log := slog.With("op", op)

	p, err := h.browser.Product(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load product", http.StatusServiceUnavailable)
		log.Error("failed to load product", "err", err)
		return
	}

	h.recorder.RecordView(r.Context(), sessionID(r), p)

	writeJSON(w, log, http.StatusOK, toProductView(p))
}

func (h CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetCategories"
	log := slog.With("op", op)

	cs, err := h.browser.Categories(r.Context())
	if err != nil {
		http.Error(w, "failed to load categories", http.StatusServiceUnavailable)
		log.Error("failed to load categories", "err", err)
		return
	}

	writeJSON(w, log, http.StatusOK, toCategoryViews(cs))
}

func parseQuery(r *http.Request) (domain.FilterSpec, domain.SortKey) {
	q := r.URL.Query()
	spec := domain.FilterSpec{
		Categories:    splitCSV(q.Get("category")),
		Subcategories: splitCSV(q.Get("subcategory")),
		Sizes:         splitCSV(q.Get("size")),
		Colors:        splitCSV(q.Get("color")),
		MinPrice:      parsePrice(q.Get("min_price")),
		MaxPrice:      parsePrice(q.Get("max_price")),
		OnSale:        q.Get("on_sale") == "true",
		NewArrivals:   q.Get("new") == "true",
		Limited:       q.Get("limited") == "true",
	}
	return spec, domain.ParseSortKey(q.Get("sort"))
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parsePrice(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
