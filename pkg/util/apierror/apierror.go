package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind tags the three failure classes an upstream call can produce.
type Kind string

const (
	KindAuthentication Kind = "AUTHENTICATION"
	KindRequest        Kind = "REQUEST"
	KindNetwork        Kind = "NETWORK"
)

// Fixed user-facing messages. The upstream's own message wins for request
// failures; authentication and network failures always use these.
const (
	MsgSessionExpired   = "Your session has expired. Please log in again."
	MsgRequestFailed    = "The request could not be completed. Please try again."
	MsgConnectionFailed = "Unable to reach the server. Please check your connection."
)

// APIError standardizes every failure surfaced by the upstream client.
type APIError struct {
	Kind    Kind
	Message string
	Status  int
	Fields  map[string][]string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAuthentication builds the session-expired error raised on any 401.
func NewAuthentication() *APIError {
	return &APIError{
		Kind:    KindAuthentication,
		Message: MsgSessionExpired,
		Status:  http.StatusUnauthorized,
	}
}

// NewRequest builds a request error from a non-2xx upstream response.
// An empty message falls back to the fixed generic text.
func NewRequest(message string, status int, fields map[string][]string) *APIError {
	if message == "" {
		message = MsgRequestFailed
	}
	return &APIError{
		Kind:    KindRequest,
		Message: message,
		Status:  status,
		Fields:  fields,
	}
}

// NewNetwork builds a transport-level error. The cause is retained for
// logging but not exposed as part of the contract.
func NewNetwork(err error) *APIError {
	return &APIError{
		Kind:    KindNetwork,
		Message: MsgConnectionFailed,
		Err:     err,
	}
}

// As extracts an *APIError from an error chain.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// Passthrough returns err unchanged when it already carries one of this
// package's kinds, preventing double-wrapping across call layers.
func Passthrough(err error, wrap func(error) *APIError) error {
	if err == nil {
		return nil
	}
	if _, ok := As(err); ok {
		return err
	}
	return wrap(err)
}
