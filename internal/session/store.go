package session

import (
	"context"
	"strings"

	"github.com/spec-kit/facility-console/internal/domain"
)

// Store persists credential slots in durable key-value storage. The admin and
// staff slots are fully independent; writing one never touches the other.
type Store interface {
	// SaveCredential writes the token and profile for the credential's user
	// type, replacing any previous credential in that slot.
	SaveCredential(ctx context.Context, cred domain.Credential) error
	// Token returns the stored bearer token, or "" when the slot is empty.
	Token(ctx context.Context, userType domain.UserType) (string, error)
	// Profile returns the stored profile, or nil when the slot is empty.
	Profile(ctx context.Context, userType domain.UserType) (*domain.Profile, error)
	// Clear removes both token and profile for the user type. Clearing an
	// already-empty slot is not an error.
	Clear(ctx context.Context, userType domain.UserType) error
	// IsAuthenticated reports whether both token and profile are present.
	IsAuthenticated(ctx context.Context, userType domain.UserType) (bool, error)
	// Resolve applies the slot-priority policy to pick the active user type.
	Resolve(ctx context.Context) (domain.UserType, error)
	// ForceClearAll removes every auth-looking key from storage.
	ForceClearAll(ctx context.Context) error
}

func tokenKey(userType domain.UserType) string {
	return string(userType) + "_token"
}

func userKey(userType domain.UserType) string {
	return string(userType) + "_user"
}

// authRelated matches the force-clear sweep: any key mentioning tokens,
// users, or either slot name is fair game.
func authRelated(key string) bool {
	for _, marker := range []string{"token", "user", "admin", "staff"} {
		if strings.Contains(key, marker) {
			return true
		}
	}
	return false
}

// resolveWith implements the admin > staff > default-staff priority on top of
// any Store's token reads.
func resolveWith(ctx context.Context, s Store) (domain.UserType, error) {
	adminToken, err := s.Token(ctx, domain.UserTypeAdmin)
	if err != nil {
		return domain.UserTypeStaff, err
	}
	staffToken, err := s.Token(ctx, domain.UserTypeStaff)
	if err != nil {
		return domain.UserTypeStaff, err
	}
	return domain.ResolveUserType(adminToken != "", staffToken != ""), nil
}
