package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/facility-console/internal/config"
	"github.com/spec-kit/facility-console/internal/domain"
	"github.com/spec-kit/facility-console/internal/events"
	"github.com/spec-kit/facility-console/internal/observability"
	"github.com/spec-kit/facility-console/pkg/util/apierror"
)

// TokenSource supplies and invalidates stored credentials. Implemented by the
// session store; declared here so the client stays decoupled from it.
type TokenSource interface {
	Token(ctx context.Context, userType domain.UserType) (string, error)
	Clear(ctx context.Context, userType domain.UserType) error
	Resolve(ctx context.Context) (domain.UserType, error)
}

// Request describes one upstream call. Built per call, never retained.
type Request struct {
	Method        string
	Path          string
	Body          any
	Query         url.Values
	Header        http.Header
	Authenticated bool
	// UserType pins the credential slot; nil resolves via the store policy.
	UserType *domain.UserType
}

// Envelope is the universal response contract of the upstream API. Data's
// shape is domain-specific and passed through untouched.
type Envelope[T any] struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    T                   `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// Client is the single choke point for every call to the upstream API. It is
// stateless between calls apart from the token-store side effect of the 401
// path; concurrent calls observing a 401 each clear the same slot, which is
// harmless because Clear is idempotent.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	tokens  TokenSource
	logger  *zap.Logger
	metrics *observability.Metrics
	events  events.Dispatcher
}

// Dependencies bundles collaborator requirements for the client.
type Dependencies struct {
	Tokens  TokenSource
	Logger  *zap.Logger
	Metrics *observability.Metrics
	Events  events.Dispatcher
}

// NewClient builds the upstream client from configuration.
func NewClient(cfg config.UpstreamConfig, deps Dependencies) *Client {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{},
		timeout: cfg.CallTimeout(),
		tokens:  deps.Tokens,
		logger:  logger,
		metrics: deps.Metrics,
		events:  deps.Events,
	}
}

// Do issues the request and decodes the response envelope with a typed Data
// payload. All failures carry one of the apierror kinds.
func Do[T any](ctx context.Context, c *Client, req Request) (*Envelope[T], error) {
	body, err := c.roundTrip(ctx, req)
	if err != nil {
		return nil, err
	}

	var env Envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, apierror.NewNetwork(fmt.Errorf("decode response: %w", err))
	}
	return &env, nil
}

// roundTrip performs one HTTP exchange and classifies the outcome. Ordering
// within a call is fixed: headers are built before the request is sent, the
// response is classified before any token-store mutation.
func (c *Client) roundTrip(ctx context.Context, req Request) ([]byte, error) {
	userType := c.resolveUserType(ctx, req)

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var payload io.Reader
	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(encoded)
	}

	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, payload)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	for key, values := range req.Header {
		for _, value := range values {
			httpReq.Header.Set(key, value)
		}
	}
	if req.Authenticated {
		// No client-side short-circuit when the slot is empty: the request
		// goes out without the header and the server decides.
		token, err := c.tokens.Token(ctx, userType)
		if err != nil {
			c.logger.Warn("token read failed", zap.String("user_type", string(userType)), zap.Error(err))
		}
		if token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.metrics.RecordUpstream(req.Path, req.Method, "network_error")
		c.logger.Warn("upstream unreachable", zap.String("path", req.Path), zap.Error(err))
		return nil, apierror.NewNetwork(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.RecordUpstream(req.Path, req.Method, "network_error")
		return nil, apierror.NewNetwork(err)
	}
	c.metrics.RecordUpstream(req.Path, req.Method, strconv.Itoa(resp.StatusCode))

	// A 401 from any endpoint invalidates the resolved slot before the error
	// reaches the caller, whether or not the call asked for auth.
	if resp.StatusCode == http.StatusUnauthorized {
		if err := c.tokens.Clear(ctx, userType); err != nil {
			c.logger.Error("credential clear failed", zap.String("user_type", string(userType)), zap.Error(err))
		}
		c.publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventSessionExpired,
			UserType:  userType,
			Timestamp: time.Now(),
			Detail:    req.Method + " " + req.Path,
		})
		return nil, apierror.NewAuthentication()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env Envelope[json.RawMessage]
		if err := json.Unmarshal(body, &env); err != nil {
			// Non-JSON error body, e.g. an HTML page from a proxy. No usable
			// response was received, so this counts as a transport failure.
			return nil, apierror.NewNetwork(fmt.Errorf("decode error response: %w", err))
		}
		return nil, apierror.NewRequest(env.Message, resp.StatusCode, env.Errors)
	}

	return body, nil
}

func (c *Client) resolveUserType(ctx context.Context, req Request) domain.UserType {
	if req.UserType != nil {
		return *req.UserType
	}
	userType, err := c.tokens.Resolve(ctx)
	if err != nil {
		c.logger.Warn("user type resolution failed, defaulting to staff", zap.Error(err))
		return domain.UserTypeStaff
	}
	return userType
}

func (c *Client) publish(ctx context.Context, event events.Event) {
	if c.events == nil {
		return
	}
	_ = c.events.Publish(ctx, event)
}
