package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spec-kit/facility-console/internal/domain"
)

// PurchaseFilter captures the direct-purchase list parameters.
type PurchaseFilter struct {
	FacilityID *int
	SupplierID *int
	Status     *domain.PurchaseStatus
}

func (f PurchaseFilter) query() url.Values {
	values := url.Values{}
	if f.FacilityID != nil {
		values.Set("facility_id", strconv.Itoa(*f.FacilityID))
	}
	if f.SupplierID != nil {
		values.Set("supplier_id", strconv.Itoa(*f.SupplierID))
	}
	if f.Status != nil {
		values.Set("status", string(*f.Status))
	}
	return values
}

// PurchaseInput is the create/update payload for a direct purchase.
type PurchaseInput struct {
	Number      string  `json:"number,omitempty"`
	FacilityID  int     `json:"facility_id"`
	SupplierID  int     `json:"supplier_id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	OrderedAt   string  `json:"ordered_at,omitempty"`
}

// PurchasesAPI catalogs the direct-purchase procurement endpoints.
type PurchasesAPI struct {
	client *Client
}

// NewPurchasesAPI constructs the facade.
func NewPurchasesAPI(client *Client) *PurchasesAPI {
	return &PurchasesAPI{client: client}
}

func (p *PurchasesAPI) List(ctx context.Context, filter PurchaseFilter) (*Envelope[[]domain.DirectPurchase], error) {
	return Do[[]domain.DirectPurchase](ctx, p.client, Request{
		Method:        http.MethodGet,
		Path:          "/direct-purchases",
		Query:         filter.query(),
		Authenticated: true,
	})
}

func (p *PurchasesAPI) Get(ctx context.Context, id int) (*Envelope[domain.DirectPurchase], error) {
	return Do[domain.DirectPurchase](ctx, p.client, Request{
		Method:        http.MethodGet,
		Path:          fmt.Sprintf("/direct-purchases/%d", id),
		Authenticated: true,
	})
}

func (p *PurchasesAPI) Create(ctx context.Context, input PurchaseInput) (*Envelope[domain.DirectPurchase], error) {
	return Do[domain.DirectPurchase](ctx, p.client, Request{
		Method:        http.MethodPost,
		Path:          "/direct-purchases",
		Body:          input,
		Authenticated: true,
	})
}

func (p *PurchasesAPI) Update(ctx context.Context, id int, input PurchaseInput) (*Envelope[domain.DirectPurchase], error) {
	return Do[domain.DirectPurchase](ctx, p.client, Request{
		Method:        http.MethodPut,
		Path:          fmt.Sprintf("/direct-purchases/%d", id),
		Body:          input,
		Authenticated: true,
	})
}

func (p *PurchasesAPI) Delete(ctx context.Context, id int) (*Envelope[struct{}], error) {
	return Do[struct{}](ctx, p.client, Request{
		Method:        http.MethodDelete,
		Path:          fmt.Sprintf("/direct-purchases/%d", id),
		Authenticated: true,
	})
}

// UpdateStatus advances a purchase through its approval flow.
func (p *PurchasesAPI) UpdateStatus(ctx context.Context, id int, status domain.PurchaseStatus) (*Envelope[domain.DirectPurchase], error) {
	return Do[domain.DirectPurchase](ctx, p.client, Request{
		Method:        http.MethodPatch,
		Path:          fmt.Sprintf("/direct-purchases/%d/status", id),
		Body:          map[string]string{"status": string(status)},
		Authenticated: true,
	})
}
