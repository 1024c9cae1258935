package session

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/facility-console/internal/domain"
	"github.com/spec-kit/facility-console/internal/events"
	"github.com/spec-kit/facility-console/internal/upstream"
	"github.com/spec-kit/facility-console/pkg/util/apierror"
)

// Manager orchestrates the credential lifecycle: login persists, logout
// clears, verification relays the server's verdict. The upstream client
// itself never persists credentials.
type Manager struct {
	store  Store
	auth   *upstream.AuthAPI
	logger *zap.Logger
	events events.Dispatcher
}

// NewManager builds the session manager.
func NewManager(store Store, auth *upstream.AuthAPI, logger *zap.Logger, dispatcher events.Dispatcher) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{store: store, auth: auth, logger: logger, events: dispatcher}
}

// Login authenticates against the type-specific endpoint and, on success,
// persists the credential in that user type's slot.
func (m *Manager) Login(ctx context.Context, userType domain.UserType, username, password string) (*domain.Credential, error) {
	if !userType.Valid() {
		return nil, fmt.Errorf("unknown user type %q", userType)
	}

	resp, err := m.auth.Login(ctx, userType, username, password)
	if err != nil {
		return nil, err
	}
	if !resp.Success || resp.Token == "" {
		return nil, apierror.NewRequest(resp.Message, http.StatusUnauthorized, nil)
	}

	cred := domain.Credential{
		UserType:  userType,
		Token:     resp.Token,
		TokenType: resp.TokenType,
		ExpiresIn: resp.ExpiresIn,
		User:      resp.User,
	}
	if err := m.store.SaveCredential(ctx, cred); err != nil {
		return nil, fmt.Errorf("persist credential: %w", err)
	}

	m.publish(ctx, events.EventSessionOpened, userType, resp.User.Username, "")
	return &cred, nil
}

// Logout is the unified variant: the server call is best-effort and its
// failure is swallowed, but the local slot is always cleared.
func (m *Manager) Logout(ctx context.Context, userType domain.UserType) error {
	if err := m.auth.Logout(ctx, userType); err != nil {
		m.logger.Debug("server logout failed, clearing locally anyway",
			zap.String("user_type", string(userType)), zap.Error(err))
	}
	if err := m.store.Clear(ctx, userType); err != nil {
		return err
	}
	m.publish(ctx, events.EventSessionClosed, userType, "", "")
	return nil
}

// LogoutAdmin clears the admin slot and reports the server-call outcome.
// The slot is cleared even when the call fails.
func (m *Manager) LogoutAdmin(ctx context.Context) error {
	return m.logoutTyped(ctx, domain.UserTypeAdmin)
}

// LogoutStaff clears the staff slot and reports the server-call outcome.
// The slot is cleared even when the call fails.
func (m *Manager) LogoutStaff(ctx context.Context) error {
	return m.logoutTyped(ctx, domain.UserTypeStaff)
}

func (m *Manager) logoutTyped(ctx context.Context, userType domain.UserType) error {
	serverErr := m.auth.Logout(ctx, userType)
	if err := m.store.Clear(ctx, userType); err != nil {
		m.logger.Error("credential clear failed", zap.String("user_type", string(userType)), zap.Error(err))
	}
	m.publish(ctx, events.EventSessionClosed, userType, "", "")
	return serverErr
}

// VerifyAuth relays the navigation context to the server-side authorization
// check. Any returned error means the route is denied.
func (m *Manager) VerifyAuth(ctx context.Context, route domain.RouteContext) error {
	return m.auth.Verify(ctx, route)
}

// ForceClearAll sweeps every auth-looking key from storage. Blunt fallback
// for wedged sessions, distinct from the namespaced Clear.
func (m *Manager) ForceClearAll(ctx context.Context) error {
	if err := m.store.ForceClearAll(ctx); err != nil {
		return err
	}
	m.publish(ctx, events.EventStorageSwept, m.resolve(ctx), "", "forced storage sweep")
	return nil
}

// SlotStatus describes one credential slot for the session status endpoint.
type SlotStatus struct {
	UserType       domain.UserType `json:"user_type"`
	Authenticated  bool            `json:"authenticated"`
	Profile        *domain.Profile `json:"profile,omitempty"`
	TokenExpiresAt *time.Time      `json:"token_expires_at,omitempty"`
}

// Describe reports both slots, with a best-effort expiry peek at tokens that
// happen to be JWTs. Purely diagnostic; expiry is still enforced upstream.
func (m *Manager) Describe(ctx context.Context) ([]SlotStatus, error) {
	statuses := make([]SlotStatus, 0, 2)
	for _, userType := range []domain.UserType{domain.UserTypeAdmin, domain.UserTypeStaff} {
		authed, err := m.store.IsAuthenticated(ctx, userType)
		if err != nil {
			return nil, err
		}
		status := SlotStatus{UserType: userType, Authenticated: authed}
		if authed {
			if status.Profile, err = m.store.Profile(ctx, userType); err != nil {
				return nil, err
			}
			token, err := m.store.Token(ctx, userType)
			if err != nil {
				return nil, err
			}
			if expiry, ok := TokenExpiry(token); ok {
				status.TokenExpiresAt = &expiry
			}
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// Store exposes the underlying credential store for guard and handler usage.
func (m *Manager) Store() Store {
	return m.store
}

func (m *Manager) resolve(ctx context.Context) domain.UserType {
	userType, err := m.store.Resolve(ctx)
	if err != nil {
		return domain.UserTypeStaff
	}
	return userType
}

func (m *Manager) publish(ctx context.Context, eventType events.EventType, userType domain.UserType, username, detail string) {
	if m.events == nil {
		return
	}
	_ = m.events.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserType:  userType,
		Username:  username,
		Timestamp: time.Now(),
		Detail:    detail,
	})
}
