package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/facility-console/internal/domain"
)

type recordedCall struct {
	Method string
	Path   string
	Query  string
	Auth   string
}

func recordingServer(t *testing.T, status int, body string) (*Client, *[]recordedCall) {
	t.Helper()
	calls := &[]recordedCall{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls = append(*calls, recordedCall{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Auth:   r.Header.Get("Authorization"),
		})
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	tokens := newFakeTokens()
	tokens.tokens[domain.UserTypeStaff] = "staff-token"
	return newTestClient(server.URL, tokens), calls
}

func TestReportsListBuildsQuery(t *testing.T) {
	client, calls := recordingServer(t, http.StatusOK, `{"success":true,"message":"ok","data":[]}`)

	facilityID := 3
	status := domain.ReportStatusOpen
	env, err := NewReportsAPI(client).List(context.Background(), ReportFilter{
		FacilityID: &facilityID,
		Status:     &status,
	})
	require.NoError(t, err)
	assert.True(t, env.Success)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, http.MethodGet, call.Method)
	assert.Equal(t, "/reports", call.Path)
	assert.Equal(t, "facility_id=3&status=open", call.Query)
	assert.Equal(t, "Bearer staff-token", call.Auth)
}

func TestFacadePathsAndMethods(t *testing.T) {
	client, calls := recordingServer(t, http.StatusOK, `{"success":true,"message":"ok"}`)
	ctx := context.Background()

	_, err := NewWarehouseAPI(client).GetItem(ctx, 12)
	require.NoError(t, err)
	_, err = NewPurchasesAPI(client).UpdateStatus(ctx, 4, domain.PurchaseStatusApproved)
	require.NoError(t, err)
	_, err = NewDentalAPI(client).DeleteAsset(ctx, 9)
	require.NoError(t, err)
	_, err = NewStaffAPI(client).List(ctx, 0)
	require.NoError(t, err)

	require.Len(t, *calls, 4)
	assert.Equal(t, recordedCall{Method: http.MethodGet, Path: "/warehouse/items/12", Auth: "Bearer staff-token"}, (*calls)[0])
	assert.Equal(t, recordedCall{Method: http.MethodPatch, Path: "/direct-purchases/4/status", Auth: "Bearer staff-token"}, (*calls)[1])
	assert.Equal(t, recordedCall{Method: http.MethodDelete, Path: "/dental/assets/9", Auth: "Bearer staff-token"}, (*calls)[2])
	assert.Equal(t, recordedCall{Method: http.MethodGet, Path: "/staff", Auth: "Bearer staff-token"}, (*calls)[3])
}

func TestFacadeDataPassthrough(t *testing.T) {
	raw := `{"success":true,"message":"ok","data":[{"id":1,"name":"Central Clinic","code":"FC-01","type":"clinic","address":"Main St 1","active":true,"created_at":"2025-01-01T00:00:00Z","updated_at":"2025-01-01T00:00:00Z"}]}`
	client, _ := recordingServer(t, http.StatusOK, raw)

	env, err := NewFacilitiesAPI(client).List(context.Background())
	require.NoError(t, err)
	require.Len(t, env.Data, 1)
	assert.Equal(t, "Central Clinic", env.Data[0].Name)

	// Round-trip equality: nothing added, removed, or renamed.
	remarshaled, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(remarshaled))
}

func TestAuthLoginDecodesTopLevelToken(t *testing.T) {
	client, calls := recordingServer(t, http.StatusOK, `{
		"success": true,
		"message": "login successful",
		"token": "issued",
		"token_type": "Bearer",
		"expires_in": 7200,
		"user": {"id": 1, "username": "head.office", "role": "admin"}
	}`)

	resp, err := NewAuthAPI(client).Login(context.Background(), domain.UserTypeAdmin, "head.office", "secret")
	require.NoError(t, err)
	assert.Equal(t, "issued", resp.Token)
	assert.Equal(t, int64(7200), resp.ExpiresIn)
	assert.Equal(t, "head.office", resp.User.Username)

	require.Len(t, *calls, 1)
	assert.Equal(t, "/admin/login", (*calls)[0].Path)
	assert.Empty(t, (*calls)[0].Auth)
}
