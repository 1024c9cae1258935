package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spec-kit/facility-console/internal/domain"
)

// DentalContractInput is the create/update payload for an equipment contract.
type DentalContractInput struct {
	Number      string  `json:"number,omitempty"`
	FacilityID  int     `json:"facility_id"`
	SupplierID  int     `json:"supplier_id"`
	Description string  `json:"description"`
	Value       float64 `json:"value"`
	StartsAt    string  `json:"starts_at"`
	EndsAt      string  `json:"ends_at"`
}

// DentalAssetInput is the create/update payload for an equipment asset.
type DentalAssetInput struct {
	Code         string                `json:"code"`
	Name         string                `json:"name"`
	FacilityID   int                   `json:"facility_id"`
	ContractID   int                   `json:"contract_id,omitempty"`
	Condition    domain.AssetCondition `json:"condition"`
	AcquiredAt   string                `json:"acquired_at,omitempty"`
	AcquiredCost float64               `json:"acquired_cost,omitempty"`
}

// DentalAPI catalogs the dental equipment contract and asset endpoints.
type DentalAPI struct {
	client *Client
}

// NewDentalAPI constructs the facade.
func NewDentalAPI(client *Client) *DentalAPI {
	return &DentalAPI{client: client}
}

func (d *DentalAPI) ListContracts(ctx context.Context, facilityID int) (*Envelope[[]domain.DentalContract], error) {
	values := url.Values{}
	if facilityID > 0 {
		values.Set("facility_id", strconv.Itoa(facilityID))
	}
	return Do[[]domain.DentalContract](ctx, d.client, Request{
		Method:        http.MethodGet,
		Path:          "/dental/contracts",
		Query:         values,
		Authenticated: true,
	})
}

func (d *DentalAPI) GetContract(ctx context.Context, id int) (*Envelope[domain.DentalContract], error) {
	return Do[domain.DentalContract](ctx, d.client, Request{
		Method:        http.MethodGet,
		Path:          fmt.Sprintf("/dental/contracts/%d", id),
		Authenticated: true,
	})
}

func (d *DentalAPI) CreateContract(ctx context.Context, input DentalContractInput) (*Envelope[domain.DentalContract], error) {
	return Do[domain.DentalContract](ctx, d.client, Request{
		Method:        http.MethodPost,
		Path:          "/dental/contracts",
		Body:          input,
		Authenticated: true,
	})
}

func (d *DentalAPI) UpdateContract(ctx context.Context, id int, input DentalContractInput) (*Envelope[domain.DentalContract], error) {
	return Do[domain.DentalContract](ctx, d.client, Request{
		Method:        http.MethodPut,
		Path:          fmt.Sprintf("/dental/contracts/%d", id),
		Body:          input,
		Authenticated: true,
	})
}

func (d *DentalAPI) DeleteContract(ctx context.Context, id int) (*Envelope[struct{}], error) {
	return Do[struct{}](ctx, d.client, Request{
		Method:        http.MethodDelete,
		Path:          fmt.Sprintf("/dental/contracts/%d", id),
		Authenticated: true,
	})
}

func (d *DentalAPI) ListAssets(ctx context.Context, facilityID int) (*Envelope[[]domain.DentalAsset], error) {
	values := url.Values{}
	if facilityID > 0 {
		values.Set("facility_id", strconv.Itoa(facilityID))
	}
	return Do[[]domain.DentalAsset](ctx, d.client, Request{
		Method:        http.MethodGet,
		Path:          "/dental/assets",
		Query:         values,
		Authenticated: true,
	})
}

func (d *DentalAPI) GetAsset(ctx context.Context, id int) (*Envelope[domain.DentalAsset], error) {
	return Do[domain.DentalAsset](ctx, d.client, Request{
		Method:        http.MethodGet,
		Path:          fmt.Sprintf("/dental/assets/%d", id),
		Authenticated: true,
	})
}

func (d *DentalAPI) CreateAsset(ctx context.Context, input DentalAssetInput) (*Envelope[domain.DentalAsset], error) {
	return Do[domain.DentalAsset](ctx, d.client, Request{
		Method:        http.MethodPost,
		Path:          "/dental/assets",
		Body:          input,
		Authenticated: true,
	})
}

func (d *DentalAPI) UpdateAsset(ctx context.Context, id int, input DentalAssetInput) (*Envelope[domain.DentalAsset], error) {
	return Do[domain.DentalAsset](ctx, d.client, Request{
		Method:        http.MethodPut,
		Path:          fmt.Sprintf("/dental/assets/%d", id),
		Body:          input,
		Authenticated: true,
	})
}

func (d *DentalAPI) DeleteAsset(ctx context.Context, id int) (*Envelope[struct{}], error) {
	return Do[struct{}](ctx, d.client, Request{
		Method:        http.MethodDelete,
		Path:          fmt.Sprintf("/dental/assets/%d", id),
		Authenticated: true,
	})
}
