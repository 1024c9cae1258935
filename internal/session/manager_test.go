package session

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/facility-console/internal/config"
	"github.com/spec-kit/facility-console/internal/domain"
	"github.com/spec-kit/facility-console/internal/upstream"
	"github.com/spec-kit/facility-console/pkg/util/apierror"
)

func newTestManager(t *testing.T, handler http.Handler) (*Manager, Store, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := NewMemoryStore()
	client := upstream.NewClient(config.UpstreamConfig{BaseURL: server.URL}, upstream.Dependencies{Tokens: store})
	manager := NewManager(store, upstream.NewAuthAPI(client), nil, nil)
	return manager, store, server
}

func TestManagerLoginPersistsCredential(t *testing.T) {
	manager, store, _ := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/staff/login", r.URL.Path)
		require.Empty(t, r.Header.Get("Authorization"), "login is unauthenticated")
		w.Write([]byte(`{
			"success": true,
			"message": "login successful",
			"token": "issued-token",
			"token_type": "Bearer",
			"expires_in": 3600,
			"user": {"id": 7, "username": "clinic.staff", "name": "Clinic Staff", "role": "staff"}
		}`))
	}))

	ctx := context.Background()
	cred, err := manager.Login(ctx, domain.UserTypeStaff, "clinic.staff", "secret")
	require.NoError(t, err)
	assert.Equal(t, "issued-token", cred.Token)
	assert.Equal(t, "Bearer", cred.TokenType)
	assert.Equal(t, int64(3600), cred.ExpiresIn)

	authed, err := store.IsAuthenticated(ctx, domain.UserTypeStaff)
	require.NoError(t, err)
	assert.True(t, authed)

	profile, err := store.Profile(ctx, domain.UserTypeStaff)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "clinic.staff", profile.Username)
}

func TestManagerLoginRejectedCredentials(t *testing.T) {
	manager, store, _ := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"invalid credentials"}`))
	}))

	ctx := context.Background()
	_, err := manager.Login(ctx, domain.UserTypeAdmin, "head.office", "wrong")
	require.Error(t, err)

	authed, storeErr := store.IsAuthenticated(ctx, domain.UserTypeAdmin)
	require.NoError(t, storeErr)
	assert.False(t, authed)
}

func TestManagerLoginUnknownUserType(t *testing.T) {
	manager, _, _ := newTestManager(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	_, err := manager.Login(context.Background(), domain.UserType("root"), "u", "p")
	require.Error(t, err)
}

func TestManagerUnifiedLogoutSwallowsServerFailure(t *testing.T) {
	manager, store, _ := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"message":"logout failed"}`))
	}))

	ctx := context.Background()
	require.NoError(t, store.SaveCredential(ctx, staffCredential()))

	err := manager.Logout(ctx, domain.UserTypeStaff)
	assert.NoError(t, err, "the unified path swallows the server failure")

	authed, storeErr := store.IsAuthenticated(ctx, domain.UserTypeStaff)
	require.NoError(t, storeErr)
	assert.False(t, authed, "the slot is cleared regardless of the server outcome")
}

func TestManagerTypedLogoutReportsServerFailure(t *testing.T) {
	manager, store, _ := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"message":"logout failed"}`))
	}))

	ctx := context.Background()
	require.NoError(t, store.SaveCredential(ctx, adminCredential()))

	err := manager.LogoutAdmin(ctx)
	require.Error(t, err, "the typed path reports the server failure")

	apiErr, ok := apierror.As(err)
	require.True(t, ok)
	assert.Equal(t, apierror.KindRequest, apiErr.Kind)

	authed, storeErr := store.IsAuthenticated(ctx, domain.UserTypeAdmin)
	require.NoError(t, storeErr)
	assert.False(t, authed, "the slot is cleared even when the error is reported")
}

func TestManagerVerifyAuthRelaysVerdict(t *testing.T) {
	var gotBody []byte
	manager, store, _ := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/verify" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"success":true,"message":"authorized"}`))
	}))

	ctx := context.Background()
	require.NoError(t, store.SaveCredential(ctx, staffCredential()))

	err := manager.VerifyAuth(ctx, domain.RouteContext{
		Route:    "/reports/list",
		FullPath: "/reports/list?page=2",
		Search:   "?page=2",
	})
	require.NoError(t, err)
	assert.Contains(t, string(gotBody), `"route":"/reports/list"`)
	assert.Contains(t, string(gotBody), `"fullPath":"/reports/list?page=2"`)
}

func TestManagerVerifyAuth401ClearsSession(t *testing.T) {
	manager, store, _ := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"unauthenticated"}`))
	}))

	ctx := context.Background()
	require.NoError(t, store.SaveCredential(ctx, staffCredential()))

	err := manager.VerifyAuth(ctx, domain.RouteContext{Route: "/reports/list"})
	require.Error(t, err)

	authed, storeErr := store.IsAuthenticated(ctx, domain.UserTypeStaff)
	require.NoError(t, storeErr)
	assert.False(t, authed)
}

func TestManagerDescribeReportsSlots(t *testing.T) {
	manager, store, _ := newTestManager(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	ctx := context.Background()
	require.NoError(t, store.SaveCredential(ctx, adminCredential()))

	statuses, err := manager.Describe(ctx)
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.Equal(t, domain.UserTypeAdmin, statuses[0].UserType)
	assert.True(t, statuses[0].Authenticated)
	require.NotNil(t, statuses[0].Profile)
	assert.Equal(t, domain.UserTypeStaff, statuses[1].UserType)
	assert.False(t, statuses[1].Authenticated)
}
