package httphandler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cocoa-apparel/storefront/internal/core/domain"
	"github.com/cocoa-apparel/storefront/internal/core/port"
)

// POST|PUT v1/admin/products JSON (200 OK, 400 Bad request, 403 Forbidden)
// DELETE v1/admin/products/{id} (200 OK, 403 Forbidden, 404 Not found)

type AdminHandler struct {
	admin port.ProductAdmin
}

func RegisterAdmin(
	mux *http.ServeMux, admin port.ProductAdmin, auth port.Authenticator,
) {
	h := AdminHandler{admin}
	guard := RequireRole(auth, domain.RoleAdmin)
	mux.Handle("POST /v1/admin/products", guard(http.HandlerFunc(h.PutProduct)))
	mux.Handle("PUT /v1/admin/products", guard(http.HandlerFunc(h.PutProduct)))
	mux.Handle("DELETE /v1/admin/products/{id}", guard(http.HandlerFunc(h.DeleteProduct)))
}

func (h AdminHandler) PutProduct(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.PutProduct"
	log := slog.With("op", op)

	var req UpsertProductRequest
	if !decodeValid(w, r, &req) {
		return
	}

	p, err := h.admin.UpsertProduct(r.Context(), req.toDomain())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidProduct) {
			http.Error(w, "invalid product data", http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to save product", http.StatusServiceUnavailable)
		log.Error("failed to upsert product", "err", err)
		return
	}

	log.Info("product saved", "product", p.ID)
	writeJSON(w, log, http.StatusOK, toProductView(p))
}

func (h AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.DeleteProduct"
	log := slog.With("op", op)

	id := r.PathValue("id")
	err := h.admin.RemoveProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to remove product", http.StatusServiceUnavailable)
		log.Error("failed to remove product", "err", err)
		return
	}

	log.Info("product removed", "product", id)
	w.WriteHeader(http.StatusOK)
}
