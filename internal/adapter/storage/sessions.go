package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cocoa-apparel/storefront/internal/core/domain"
	"github.com/cocoa-apparel/storefront/internal/core/port"
)

// sessionFileName is the fixed storage key for the single auth record.
const sessionFileName = "cocoa_auth.json"

var _ port.SessionStore = (*SessionFile)(nil)

type (
	authRecord struct {
		User            *userRecord `json:"user"`
		IsAuthenticated bool        `json:"isAuthenticated"`
	}

	userRecord struct {
		ID        string    `json:"id"`
		Email     string    `json:"email"`
		Name      string    `json:"name"`
		Role      string    `json:"role"`
		CreatedAt time.Time `json:"createdAt"`
	}
)

// A SessionFile persists the whole AuthState as one JSON record under a
// fixed key in the state directory. Reads and writes are wholesale:
// there is no partial update and at most one logical writer per process.
type SessionFile struct {
	mu   sync.Mutex
	path string
}

func NewSessionFile(stateDir string) (*SessionFile, error) {
	const op = "NewSessionFile"

	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &SessionFile{path: filepath.Join(stateDir, sessionFileName)}, nil
}

// Load reads the stored record. A missing or unreadable record is the
// logged-out state, never an error surfaced to login flows.
func (s *SessionFile) Load() (domain.AuthState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.AuthState{}, nil
		}
		return domain.AuthState{}, err
	}

	var rec authRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return domain.AuthState{}, nil
	}
	return rec.toDomain(), nil
}

func (s *SessionFile) Save(state domain.AuthState) error {
	const op = "SessionFile.Save"

	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := json.Marshal(toRecord(state))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := os.WriteFile(s.path, b, 0o600); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *SessionFile) Clear() error {
	const op = "SessionFile.Clear"

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (rec authRecord) toDomain() domain.AuthState {
	state := domain.AuthState{IsAuthenticated: rec.IsAuthenticated}
	if rec.User != nil {
		state.User = &domain.User{
			ID:        rec.User.ID,
			Email:     rec.User.Email,
			Name:      rec.User.Name,
			Role:      domain.Role(rec.User.Role),
			CreatedAt: rec.User.CreatedAt,
		}
	}
	return state
}

func toRecord(state domain.AuthState) authRecord {
	rec := authRecord{IsAuthenticated: state.IsAuthenticated}
	if state.User != nil {
		rec.User = &userRecord{
			ID:        state.User.ID,
			Email:     state.User.Email,
			Name:      state.User.Name,
			Role:      string(state.User.Role),
			CreatedAt: state.User.CreatedAt,
		}
	}
	return rec
}
