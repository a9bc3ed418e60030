package service

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/cocoa-apparel/storefront/internal/core/domain"
	"github.com/cocoa-apparel/storefront/internal/core/port"
	"github.com/google/uuid"
)

var _ port.Authenticator = (*Auth)(nil)

type demoAccount struct {
	password string
	user     domain.User
}

// demoAccounts is the fixed credential table. The boundary is a
// non-authoritative demo: plaintext passwords, no tokens, no expiry.
var demoAccounts = map[string]demoAccount{
	"admin@cocoa.lk": {
		password: "admin123",
		user: domain.User{
			ID:        "admin-1",
			Email:     "admin@cocoa.lk",
			Name:      "Admin User",
			Role:      domain.RoleAdmin,
			CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	},
	"user@example.com": {
		password: "user123",
		user: domain.User{
			ID:        "user-1",
			Email:     "user@example.com",
			Name:      "Demo User",
			Role:      domain.RoleUser,
			CreatedAt: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		},
	},
}

// Auth runs the demo session lifecycle: one whole AuthState record in the
// store, subscribers notified on every transition. Failed operations
// leave the stored state unchanged.
type Auth struct {
	mu      sync.Mutex
	store   port.SessionStore
	subs    map[int]func()
	nextSub int
}

func NewAuth(store port.SessionStore) *Auth {
	return &Auth{store: store, subs: make(map[int]func())}
}

// Login checks the credential table. The email lookup is
// case-insensitive. Not-found and wrong-password come back as distinct
// error values.
func (a *Auth) Login(email, password string) (domain.User, error) {
	const op = "Auth.Login"

	acc, ok := demoAccounts[strings.ToLower(email)]
	if !ok {
		return domain.User{}, fmt.Errorf("%s: %w", op, domain.ErrUserNotFound)
	}
	if acc.password != password {
		return domain.User{}, fmt.Errorf("%s: %w", op, domain.ErrInvalidPassword)
	}

	u := acc.user
	if err := a.persist(u); err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// Register fabricates a session-only user and logs it in. Only the fixed
// table is checked for duplicates: earlier self-registrations live solely
// in the session record and are not consulted.
func (a *Auth) Register(email, password, name string) (domain.User, error) {
	const op = "Auth.Register"

	email = strings.ToLower(email)
	if _, ok := demoAccounts[email]; ok {
		return domain.User{}, fmt.Errorf("%s: %w", op, domain.ErrEmailTaken)
	}

	u := domain.User{
		ID:        "user-" + uuid.NewString(),
		Email:     email,
		Name:      name,
		Role:      domain.RoleUser,
		CreatedAt: time.Now(),
	}
	if err := a.persist(u); err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// Logout clears the persisted record and notifies subscribers.
func (a *Auth) Logout() error {
	const op = "Auth.Logout"

	if err := a.store.Clear(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	a.notify()
	return nil
}

// Session reads the current AuthState. An unreadable store degrades to
// the logged-out state instead of failing the caller.
func (a *Auth) Session() domain.AuthState {
	const op = "Auth.Session"

	state, err := a.store.Load()
	if err != nil {
		slog.With("op", op).Warn("failed to load session", "err", err)
		return domain.AuthState{}
	}
	return state
}

// Subscribe registers a change callback fired on login, register and
// logout. The callback carries no payload: consumers re-read Session.
// The returned func unsubscribes.
func (a *Auth) Subscribe(fn func()) func() {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := a.nextSub
	a.nextSub++
	a.subs[id] = fn

	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		delete(a.subs, id)
	}
}

func (a *Auth) persist(u domain.User) error {
	state := domain.AuthState{User: &u, IsAuthenticated: true}
	if err := a.store.Save(state); err != nil {
		return err
	}
	a.notify()
	return nil
}

func (a *Auth) notify() {
	a.mu.Lock()
	fns := make([]func(), 0, len(a.subs))
	for _, fn := range a.subs {
		fns = append(fns, fn)
	}
	a.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
