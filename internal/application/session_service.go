// internal/application/session_service.go
package application

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/mahabubulhasibshawon/foodadmin/internal/domain"
	"github.com/mahabubulhasibshawon/foodadmin/internal/ports"
	"github.com/mahabubulhasibshawon/foodadmin/pkg/auth"
)

// SessionService owns the console's single authentication state. The in-memory
// state changes only through SetToken, Login, Logout and ExpireOnUnauthorized.
type SessionService struct {
	backend ports.AdminBackendPort
	store   ports.TokenStorePort
	logger  *slog.Logger

	// ForceLogoutOnUnauthorized clears the session when the backend answers 401.
	ForceLogoutOnUnauthorized bool

	mu          sync.RWMutex
	state       domain.SessionState
	subscribers []func(domain.SessionState)
}

func NewSessionService(backend ports.AdminBackendPort, store ports.TokenStorePort, logger *slog.Logger) *SessionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionService{
		backend:                   backend,
		store:                     store,
		logger:                    logger,
		ForceLogoutOnUnauthorized: true,
	}
}

// Init loads the persisted token. A stored token replaces whatever is in memory.
func (s *SessionService) Init(ctx context.Context) error {
	token, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Warn("session_restore_failed", "error", err.Error())
		return fmt.Errorf("load persisted token: %w", err)
	}
	if strings.TrimSpace(token) == "" {
		return nil
	}
	s.SetToken(token)
	s.logger.Info("session_restored")
	return nil
}

func (s *SessionService) State() domain.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *SessionService) Token() (string, bool) {
	return s.State().Token()
}

// Binding is the opaque value a browser must present to act on the current
// token. It changes whenever the token does and is empty when anonymous.
func (s *SessionService) Binding() string {
	return binding(s.State())
}

// StateFor is the session as seen by a requester holding b: the current
// state when b matches the current binding, Anonymous otherwise.
func (s *SessionService) StateFor(b string) domain.SessionState {
	state := s.State()
	want := binding(state)
	if want == "" || subtle.ConstantTimeCompare([]byte(b), []byte(want)) != 1 {
		return domain.Anonymous()
	}
	return state
}

func binding(state domain.SessionState) string {
	token, ok := state.Token()
	if !ok {
		return ""
	}
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// SetToken replaces the in-memory state only. Persistence belongs to Login and Logout.
func (s *SessionService) SetToken(token string) {
	next := domain.Authenticated(token)
	s.mu.Lock()
	s.state = next
	subs := append([]func(domain.SessionState){}, s.subscribers...)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(next)
	}
}

// Subscribe registers fn to run after every state change.
func (s *SessionService) Subscribe(fn func(domain.SessionState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *SessionService) Login(ctx context.Context, creds domain.Credentials) error {
	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		return &domain.ValidationError{Field: "credentials", Message: "email and password are required"}
	}
	token, err := s.backend.Login(ctx, creds)
	if err != nil {
		return err
	}
	if strings.TrimSpace(token) == "" {
		return domain.ErrInvalidCredentials
	}
	s.SetToken(token)
	if err := s.store.Save(ctx, token); err != nil {
		s.logger.Warn("session_persist_failed", "error", err.Error())
	}
	s.logger.Info("login", "identity", auth.DisplayName(token, creds.Email))
	return nil
}

// Logout always leaves the session anonymous. A failure to remove the
// persisted copy is returned after the in-memory state is cleared.
func (s *SessionService) Logout(ctx context.Context) error {
	s.SetToken("")
	if err := s.store.Clear(ctx); err != nil {
		s.logger.Error("session_clear_failed", "error", err.Error())
		return fmt.Errorf("clear persisted token: %w", err)
	}
	s.logger.Info("logout")
	return nil
}

// ExpireOnUnauthorized logs the console out when err carries a backend 401.
// It reports whether the session was cleared.
func (s *SessionService) ExpireOnUnauthorized(ctx context.Context, err error) bool {
	if !s.ForceLogoutOnUnauthorized || !errors.Is(err, domain.ErrUnauthorized) {
		return false
	}
	if !s.State().IsAuthenticated() {
		return false
	}
	s.logger.Warn("session_expired", "error", err.Error())
	_ = s.Logout(ctx)
	return true
}

// Identity is the name shown in the console header.
func (s *SessionService) Identity() string {
	token, ok := s.Token()
	if !ok {
		return ""
	}
	return auth.DisplayName(token, "admin")
}
