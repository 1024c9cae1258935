package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spec-kit/facility-console/internal/domain"
)

// SupplierInput is the create/update payload for a supplier.
type SupplierInput struct {
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// SuppliersAPI catalogs the supplier reference-data endpoints.
type SuppliersAPI struct {
	client *Client
}

// NewSuppliersAPI constructs the facade.
func NewSuppliersAPI(client *Client) *SuppliersAPI {
	return &SuppliersAPI{client: client}
}

func (s *SuppliersAPI) List(ctx context.Context) (*Envelope[[]domain.Supplier], error) {
	return Do[[]domain.Supplier](ctx, s.client, Request{
		Method:        http.MethodGet,
		Path:          "/suppliers",
		Authenticated: true,
	})
}

func (s *SuppliersAPI) Get(ctx context.Context, id int) (*Envelope[domain.Supplier], error) {
	return Do[domain.Supplier](ctx, s.client, Request{
		Method:        http.MethodGet,
		Path:          fmt.Sprintf("/suppliers/%d", id),
		Authenticated: true,
	})
}

func (s *SuppliersAPI) Create(ctx context.Context, input SupplierInput) (*Envelope[domain.Supplier], error) {
	return Do[domain.Supplier](ctx, s.client, Request{
		Method:        http.MethodPost,
		Path:          "/suppliers",
		Body:          input,
		Authenticated: true,
	})
}

func (s *SuppliersAPI) Update(ctx context.Context, id int, input SupplierInput) (*Envelope[domain.Supplier], error) {
	return Do[domain.Supplier](ctx, s.client, Request{
		Method:        http.MethodPut,
		Path:          fmt.Sprintf("/suppliers/%d", id),
		Body:          input,
		Authenticated: true,
	})
}

func (s *SuppliersAPI) Delete(ctx context.Context, id int) (*Envelope[struct{}], error) {
	return Do[struct{}](ctx, s.client, Request{
		Method:        http.MethodDelete,
		Path:          fmt.Sprintf("/suppliers/%d", id),
		Authenticated: true,
	})
}
