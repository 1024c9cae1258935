package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/facility-console/internal/domain"
)

func adminCredential() domain.Credential {
	return domain.Credential{
		UserType:  domain.UserTypeAdmin,
		Token:     "admin-token",
		TokenType: "Bearer",
		ExpiresIn: 3600,
		User:      domain.Profile{ID: 1, Username: "head.office", Role: "admin"},
	}
}

func staffCredential() domain.Credential {
	return domain.Credential{
		UserType:  domain.UserTypeStaff,
		Token:     "staff-token",
		TokenType: "Bearer",
		ExpiresIn: 3600,
		User:      domain.Profile{ID: 2, Username: "clinic.staff", Role: "staff"},
	}
}

func TestStoreSaveAndRead(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.SaveCredential(ctx, adminCredential()))

	token, err := store.Token(ctx, domain.UserTypeAdmin)
	require.NoError(t, err)
	assert.Equal(t, "admin-token", token)

	profile, err := store.Profile(ctx, domain.UserTypeAdmin)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "head.office", profile.Username)

	authed, err := store.IsAuthenticated(ctx, domain.UserTypeAdmin)
	require.NoError(t, err)
	assert.True(t, authed)
}

func TestStoreClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.SaveCredential(ctx, staffCredential()))
	require.NoError(t, store.Clear(ctx, domain.UserTypeStaff))

	// A second clear on an already-empty slot must not error.
	require.NoError(t, store.Clear(ctx, domain.UserTypeStaff))

	token, err := store.Token(ctx, domain.UserTypeStaff)
	require.NoError(t, err)
	assert.Empty(t, token)

	profile, err := store.Profile(ctx, domain.UserTypeStaff)
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestStoreSlotsAreIndependent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.SaveCredential(ctx, adminCredential()))
	require.NoError(t, store.SaveCredential(ctx, staffCredential()))

	require.NoError(t, store.Clear(ctx, domain.UserTypeAdmin))

	staffAuthed, err := store.IsAuthenticated(ctx, domain.UserTypeStaff)
	require.NoError(t, err)
	assert.True(t, staffAuthed, "clearing admin must not touch the staff slot")

	adminAuthed, err := store.IsAuthenticated(ctx, domain.UserTypeAdmin)
	require.NoError(t, err)
	assert.False(t, adminAuthed)
}

func TestStoreResolvePriority(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	userType, err := store.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.UserTypeStaff, userType, "empty storage defaults to staff")

	require.NoError(t, store.SaveCredential(ctx, staffCredential()))
	userType, err = store.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.UserTypeStaff, userType)

	require.NoError(t, store.SaveCredential(ctx, adminCredential()))
	userType, err = store.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.UserTypeAdmin, userType, "admin slot wins when both are populated")
}

func TestStoreForceClearAll(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.SaveCredential(ctx, adminCredential()))
	require.NoError(t, store.SaveCredential(ctx, staffCredential()))

	require.NoError(t, store.ForceClearAll(ctx))

	for _, userType := range []domain.UserType{domain.UserTypeAdmin, domain.UserTypeStaff} {
		authed, err := store.IsAuthenticated(ctx, userType)
		require.NoError(t, err)
		assert.False(t, authed)
	}
}

func TestAuthRelated(t *testing.T) {
	assert.True(t, authRelated("admin_token"))
	assert.True(t, authRelated("staff_user"))
	assert.True(t, authRelated("legacy_user_cache"))
	assert.False(t, authRelated("theme_preference"))
}
