package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spec-kit/facility-console/internal/domain"
)

// FacilityInput is the create/update payload for a facility.
type FacilityInput struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
	Active  *bool  `json:"active,omitempty"`
}

// FacilitiesAPI catalogs the facility reference-data endpoints.
type FacilitiesAPI struct {
	client *Client
}

// NewFacilitiesAPI constructs the facade.
func NewFacilitiesAPI(client *Client) *FacilitiesAPI {
	return &FacilitiesAPI{client: client}
}

func (f *FacilitiesAPI) List(ctx context.Context) (*Envelope[[]domain.Facility], error) {
	return Do[[]domain.Facility](ctx, f.client, Request{
		Method:        http.MethodGet,
		Path:          "/facilities",
		Authenticated: true,
	})
}

func (f *FacilitiesAPI) Get(ctx context.Context, id int) (*Envelope[domain.Facility], error) {
	return Do[domain.Facility](ctx, f.client, Request{
		Method:        http.MethodGet,
		Path:          fmt.Sprintf("/facilities/%d", id),
		Authenticated: true,
	})
}

func (f *FacilitiesAPI) Create(ctx context.Context, input FacilityInput) (*Envelope[domain.Facility], error) {
	return Do[domain.Facility](ctx, f.client, Request{
		Method:        http.MethodPost,
		Path:          "/facilities",
		Body:          input,
		Authenticated: true,
	})
}

func (f *FacilitiesAPI) Update(ctx context.Context, id int, input FacilityInput) (*Envelope[domain.Facility], error) {
	return Do[domain.Facility](ctx, f.client, Request{
		Method:        http.MethodPut,
		Path:          fmt.Sprintf("/facilities/%d", id),
		Body:          input,
		Authenticated: true,
	})
}

func (f *FacilitiesAPI) Delete(ctx context.Context, id int) (*Envelope[struct{}], error) {
	return Do[struct{}](ctx, f.client, Request{
		Method:        http.MethodDelete,
		Path:          fmt.Sprintf("/facilities/%d", id),
		Authenticated: true,
	})
}
