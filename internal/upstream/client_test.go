package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/facility-console/internal/config"
	"github.com/spec-kit/facility-console/internal/domain"
	"github.com/spec-kit/facility-console/pkg/util/apierror"
)

type fakeTokens struct {
	mu      sync.Mutex
	tokens  map[domain.UserType]string
	cleared []domain.UserType
}

func newFakeTokens() *fakeTokens {
	return &fakeTokens{tokens: make(map[domain.UserType]string)}
}

func (f *fakeTokens) Token(_ context.Context, userType domain.UserType) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tokens[userType], nil
}

func (f *fakeTokens) Clear(_ context.Context, userType domain.UserType) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tokens, userType)
	f.cleared = append(f.cleared, userType)
	return nil
}

func (f *fakeTokens) Resolve(_ context.Context) (domain.UserType, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return domain.ResolveUserType(f.tokens[domain.UserTypeAdmin] != "", f.tokens[domain.UserTypeStaff] != ""), nil
}

func newTestClient(baseURL string, tokens *fakeTokens) *Client {
	return NewClient(config.UpstreamConfig{BaseURL: baseURL}, Dependencies{Tokens: tokens})
}

func TestDoAttachesBearerToken(t *testing.T) {
	tokens := newFakeTokens()
	tokens.tokens[domain.UserTypeAdmin] = "admin-token"

	var gotAuth, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{"success":true,"message":"ok"}`))
	}))
	defer server.Close()

	userType := domain.UserTypeAdmin
	_, err := Do[struct{}](context.Background(), newTestClient(server.URL, tokens), Request{
		Method:        http.MethodGet,
		Path:          "/facilities",
		Authenticated: true,
		UserType:      &userType,
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer admin-token", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
}

func TestDoWithoutTokenStillSends(t *testing.T) {
	tokens := newFakeTokens()

	var called bool
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"message":"ok"}`))
	}))
	defer server.Close()

	_, err := Do[struct{}](context.Background(), newTestClient(server.URL, tokens), Request{
		Method:        http.MethodGet,
		Path:          "/reports",
		Authenticated: true,
	})
	require.NoError(t, err)
	assert.True(t, called, "the request must go out even with an empty slot")
	assert.Empty(t, gotAuth, "no short-circuit header when the slot is empty")
}

func TestDoResolvesUserTypeByPolicy(t *testing.T) {
	tokens := newFakeTokens()
	tokens.tokens[domain.UserTypeAdmin] = "admin-token"
	tokens.tokens[domain.UserTypeStaff] = "staff-token"

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"message":"ok"}`))
	}))
	defer server.Close()

	_, err := Do[struct{}](context.Background(), newTestClient(server.URL, tokens), Request{
		Method:        http.MethodGet,
		Path:          "/reports",
		Authenticated: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer admin-token", gotAuth, "admin slot wins when both are populated")
}

func TestDoEnvelopePassthrough(t *testing.T) {
	tokens := newFakeTokens()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"success":true,"message":"ok","data":[1,2,3]}`))
	}))
	defer server.Close()

	env, err := Do[[]int](context.Background(), newTestClient(server.URL, tokens), Request{
		Method: http.MethodGet,
		Path:   "/reports",
	})
	require.NoError(t, err)
	assert.True(t, env.Success)
	assert.Equal(t, "ok", env.Message)
	assert.Equal(t, []int{1, 2, 3}, env.Data)
	assert.Nil(t, env.Errors)
}

func TestDo401ClearsCredential(t *testing.T) {
	tokens := newFakeTokens()
	tokens.tokens[domain.UserTypeAdmin] = "stale-token"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"unauthenticated"}`))
	}))
	defer server.Close()

	userType := domain.UserTypeAdmin
	_, err := Do[struct{}](context.Background(), newTestClient(server.URL, tokens), Request{
		Method:        http.MethodGet,
		Path:          "/reports",
		Authenticated: true,
		UserType:      &userType,
	})
	require.Error(t, err)

	apiErr, ok := apierror.As(err)
	require.True(t, ok)
	assert.Equal(t, apierror.KindAuthentication, apiErr.Kind)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, apierror.MsgSessionExpired, apiErr.Message)

	assert.Equal(t, []domain.UserType{domain.UserTypeAdmin}, tokens.cleared,
		"the resolved slot must be cleared before the error propagates")
}

func TestDo401ClearsEvenWithoutAuthRequested(t *testing.T) {
	tokens := newFakeTokens()
	tokens.tokens[domain.UserTypeStaff] = "stale-token"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"unauthenticated"}`))
	}))
	defer server.Close()

	_, err := Do[struct{}](context.Background(), newTestClient(server.URL, tokens), Request{
		Method: http.MethodGet,
		Path:   "/reports",
	})
	require.Error(t, err)

	apiErr, ok := apierror.As(err)
	require.True(t, ok)
	assert.Equal(t, apierror.KindAuthentication, apiErr.Kind)
	assert.Equal(t, []domain.UserType{domain.UserTypeStaff}, tokens.cleared)
}

func TestDoRequestErrorKeepsCredential(t *testing.T) {
	tokens := newFakeTokens()
	tokens.tokens[domain.UserTypeStaff] = "staff-token"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"success":false,"message":"validation failed","errors":{"name":["required"]}}`))
	}))
	defer server.Close()

	_, err := Do[struct{}](context.Background(), newTestClient(server.URL, tokens), Request{
		Method:        http.MethodPost,
		Path:          "/suppliers",
		Body:          map[string]string{"name": ""},
		Authenticated: true,
	})
	require.Error(t, err)

	apiErr, ok := apierror.As(err)
	require.True(t, ok)
	assert.Equal(t, apierror.KindRequest, apiErr.Kind)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "validation failed", apiErr.Message)
	assert.Equal(t, map[string][]string{"name": {"required"}}, apiErr.Fields)

	assert.Empty(t, tokens.cleared, "non-401 failures have no session side effect")
}

func TestDoRequestErrorFallbackMessage(t *testing.T) {
	tokens := newFakeTokens()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"message":""}`))
	}))
	defer server.Close()

	_, err := Do[struct{}](context.Background(), newTestClient(server.URL, tokens), Request{
		Method: http.MethodGet,
		Path:   "/reports",
	})
	require.Error(t, err)

	apiErr, ok := apierror.As(err)
	require.True(t, ok)
	assert.Equal(t, apierror.MsgRequestFailed, apiErr.Message)
}

func TestDoNonJSONErrorBody(t *testing.T) {
	tokens := newFakeTokens()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>upstream proxy error</html>"))
	}))
	defer server.Close()

	_, err := Do[struct{}](context.Background(), newTestClient(server.URL, tokens), Request{
		Method: http.MethodGet,
		Path:   "/reports",
	})
	require.Error(t, err)

	apiErr, ok := apierror.As(err)
	require.True(t, ok)
	assert.Equal(t, apierror.KindNetwork, apiErr.Kind, "unparseable bodies count as transport failures")
}

func TestDoNetworkFailure(t *testing.T) {
	tokens := newFakeTokens()
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	_, err := Do[struct{}](context.Background(), newTestClient(server.URL, tokens), Request{
		Method: http.MethodGet,
		Path:   "/reports",
	})
	require.Error(t, err)

	apiErr, ok := apierror.As(err)
	require.True(t, ok)
	assert.Equal(t, apierror.KindNetwork, apiErr.Kind)
	assert.Equal(t, apierror.MsgConnectionFailed, apiErr.Message)
	assert.Zero(t, apiErr.Status)
}

func TestDoIssuesExactlyOneTransportCall(t *testing.T) {
	tokens := newFakeTokens()

	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"message":"boom"}`))
	}))
	defer server.Close()

	_, err := Do[struct{}](context.Background(), newTestClient(server.URL, tokens), Request{
		Method: http.MethodGet,
		Path:   "/reports",
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls, "no automatic retry on failure")
}
