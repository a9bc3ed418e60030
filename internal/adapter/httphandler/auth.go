package httphandler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cocoa-apparel/storefront/internal/core/domain"
	"github.com/cocoa-apparel/storefront/internal/core/port"
)

// POST v1/auth/login JSON (200 OK, 401 Unauthorized)
// POST v1/auth/register JSON (201 Created, 409 Conflict)
// POST v1/auth/logout (200 OK)
// GET v1/auth/session (200 OK)
// GET v1/account/activity (200 OK)

type AuthHandler struct {
	auth     port.Authenticator
	recorder port.EventRecorder
}

func RegisterAuth(
	mux *http.ServeMux, auth port.Authenticator, recorder port.EventRecorder,
) {
	h := AuthHandler{auth, recorder}
	mux.HandleFunc("POST /v1/auth/login", h.PostLogin)
	mux.HandleFunc("POST /v1/auth/register", h.PostRegister)
	mux.HandleFunc("POST /v1/auth/logout", h.PostLogout)
	mux.HandleFunc("GET /v1/auth/session", h.GetSession)
	mux.HandleFunc("GET /v1/account/activity", h.GetActivity)
}

func (h AuthHandler) PostLogin(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.PostLogin"
	log := slog.With("op", op)

	var req LoginRequest
	if !decodeValid(w, r, &req) {
		return
	}

	user, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			http.Error(w, "no account found with this email", http.StatusUnauthorized)
		case errors.Is(err, domain.ErrInvalidPassword):
			http.Error(w, "incorrect password", http.StatusUnauthorized)
		default:
			http.Error(w, "failed to sign in", http.StatusServiceUnavailable)
			log.Error("failed to login", "err", err)
		}
		return
	}

	log.Info("signed in", "user", user.ID)
	writeJSON(w, log, http.StatusOK, toUserView(user))
}

func (h AuthHandler) PostRegister(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.PostRegister"
	log := slog.With("op", op)

	var req RegisterRequest
	if !decodeValid(w, r, &req) {
		return
	}

	user, err := h.auth.Register(req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			http.Error(w, "an account with this email already exists", http.StatusConflict)
			return
		}
		http.Error(w, "failed to sign up", http.StatusServiceUnavailable)
		log.Error("failed to register", "err", err)
		return
	}

	log.Info("registered", "user", user.ID)
	writeJSON(w, log, http.StatusCreated, toUserView(user))
}

func (h AuthHandler) PostLogout(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.PostLogout"
	log := slog.With("op", op)

	if err := h.auth.Logout(); err != nil {
		http.Error(w, "failed to sign out", http.StatusServiceUnavailable)
		log.Error("failed to logout", "err", err)
		return
	}

	writeJSON(w, log, http.StatusOK, toAuthStateView(h.auth.Session()))
}

func (h AuthHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.GetSession"
	log := slog.With("op", op)

	writeJSON(w, log, http.StatusOK, toAuthStateView(h.auth.Session()))
}

func (h AuthHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.GetActivity"
	log := slog.With("op", op)

	shopper := sessionID(r)
	act, err := h.recorder.ShopperActivity(shopper)
	if err != nil {
		http.Error(w, "failed to load activity", http.StatusServiceUnavailable)
		log.Error("failed to load shopper activity", "err", err)
		return
	}

	writeJSON(w, log, http.StatusOK, Activity{
		Shopper: shopper, Viewed: act.Viewed, Added: act.Added,
	})
}
