package httphandler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cocoa-apparel/storefront/internal/core/domain"
	"github.com/cocoa-apparel/storefront/internal/core/port"
)

// GET v1/cart (200 OK)
// POST v1/cart/lines JSON (200 OK, 400 Bad request)
// PATCH v1/cart/lines/{index} JSON (200 OK, 400 Bad request)
// DELETE v1/cart/lines/{index} (200 OK, 400 Bad request)
// POST v1/cart/promo JSON (200 OK, 400 Bad request)
// POST v1/wishlist/{id} (200 OK)
// GET v1/wishlist (200 OK)

type CartHandler struct {
	editor port.CartEditor
}

func RegisterCart(mux *http.ServeMux, editor port.CartEditor) {
	h := CartHandler{editor}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/lines", h.PostLine)
	mux.HandleFunc("PATCH /v1/cart/lines/{index}", h.PatchLine)
	mux.HandleFunc("DELETE /v1/cart/lines/{index}", h.DeleteLine)
	mux.HandleFunc("POST /v1/cart/promo", h.PostPromo)
	mux.HandleFunc("POST /v1/wishlist/{id}", h.PostWishlist)
	mux.HandleFunc("GET /v1/wishlist", h.GetWishlist)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetCart"
	log := slog.With("op", op)

	h.respondCart(w, r, log)
}

func (h CartHandler) PostLine(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostLine"
	log := slog.With("op", op)

	var req AddLineRequest
	if !decodeValid(w, r, &req) {
		return
	}

	line := domain.CartLine{
		ProductID: req.ProductID,
		Size:      req.Size,
		Color:     req.Color,
		Quantity:  req.Quantity,
	}
	if err := h.editor.AddLine(r.Context(), sessionID(r), line); err != nil {
		http.Error(w, "failed to add to cart", http.StatusServiceUnavailable)
		log.Error("failed to add cart line", "err", err)
		return
	}

	h.respondCart(w, r, log)
}

func (h CartHandler) PatchLine(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PatchLine"
	log := slog.With("op", op)

	idx, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		http.Error(w, "invalid line index", http.StatusBadRequest)
		return
	}

	var req UpdateQuantityRequest
	if !decodeValid(w, r, &req) {
		return
	}

	h.editor.UpdateQuantity(sessionID(r), idx, req.Quantity)

	h.respondCart(w, r, log)
}

func (h CartHandler) DeleteLine(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.DeleteLine"
	log := slog.With("op", op)

	idx, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		http.Error(w, "invalid line index", http.StatusBadRequest)
		return
	}

	h.editor.RemoveLine(sessionID(r), idx)

	h.respondCart(w, r, log)
}

func (h CartHandler) PostPromo(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostPromo"
	log := slog.With("op", op)

	var req PromoRequest
	if !decodeValid(w, r, &req) {
		return
	}

	h.editor.ApplyPromo(sessionID(r), req.Code)

	h.respondCart(w, r, log)
}

func (h CartHandler) PostWishlist(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostWishlist"
	log := slog.With("op", op)

	added := h.editor.ToggleWishlist(sessionID(r), r.PathValue("id"))

	writeJSON(w, log, http.StatusOK, map[string]bool{"wished": added})
}

func (h CartHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetWishlist"
	log := slog.With("op", op)

	ids := h.editor.Wishlist(sessionID(r))
	if ids == nil {
		ids = []string{}
	}

	writeJSON(w, log, http.StatusOK, ids)
}

func (h CartHandler) respondCart(
	w http.ResponseWriter, r *http.Request, log *slog.Logger,
) {
	session := sessionID(r)
	cart := h.editor.Cart(session)
	summary, err := h.editor.Totals(r.Context(), session)
	if err != nil {
		http.Error(w, "failed to price cart", http.StatusServiceUnavailable)
		log.Error("failed to summarize cart", "err", err)
		return
	}

	writeJSON(w, log, http.StatusOK, toCartView(cart, summary))
}
