package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spec-kit/facility-console/internal/domain"
)

// TransactionFilter captures the administrative-log list parameters.
type TransactionFilter struct {
	FacilityID *int
	Category   *string
	From       *string
	To         *string
}

func (f TransactionFilter) query() url.Values {
	values := url.Values{}
	if f.FacilityID != nil {
		values.Set("facility_id", strconv.Itoa(*f.FacilityID))
	}
	if f.Category != nil {
		values.Set("category", *f.Category)
	}
	if f.From != nil {
		values.Set("from", *f.From)
	}
	if f.To != nil {
		values.Set("to", *f.To)
	}
	return values
}

// TransactionInput is the create payload for a log entry. Entries are
// append-only; the upstream exposes no update or delete.
type TransactionInput struct {
	FacilityID  int     `json:"facility_id"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	RecordedAt  string  `json:"recorded_at,omitempty"`
}

// TransactionsAPI catalogs the administrative transaction-log endpoints.
type TransactionsAPI struct {
	client *Client
}

// NewTransactionsAPI constructs the facade.
func NewTransactionsAPI(client *Client) *TransactionsAPI {
	return &TransactionsAPI{client: client}
}

func (t *TransactionsAPI) List(ctx context.Context, filter TransactionFilter) (*Envelope[[]domain.AdminTransaction], error) {
	return Do[[]domain.AdminTransaction](ctx, t.client, Request{
		Method:        http.MethodGet,
		Path:          "/transactions",
		Query:         filter.query(),
		Authenticated: true,
	})
}

func (t *TransactionsAPI) Get(ctx context.Context, id int) (*Envelope[domain.AdminTransaction], error) {
	return Do[domain.AdminTransaction](ctx, t.client, Request{
		Method:        http.MethodGet,
		Path:          fmt.Sprintf("/transactions/%d", id),
		Authenticated: true,
	})
}

func (t *TransactionsAPI) Create(ctx context.Context, input TransactionInput) (*Envelope[domain.AdminTransaction], error) {
	return Do[domain.AdminTransaction](ctx, t.client, Request{
		Method:        http.MethodPost,
		Path:          "/transactions",
		Body:          input,
		Authenticated: true,
	})
}
