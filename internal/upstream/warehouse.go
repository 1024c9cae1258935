package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spec-kit/facility-console/internal/domain"
)

// WarehouseFilter captures the inventory list parameters.
type WarehouseFilter struct {
	Category *string
	Search   *string
	LowStock bool
}

func (f WarehouseFilter) query() url.Values {
	values := url.Values{}
	if f.Category != nil {
		values.Set("category", *f.Category)
	}
	if f.Search != nil {
		values.Set("search", *f.Search)
	}
	if f.LowStock {
		values.Set("low_stock", "1")
	}
	return values
}

// WarehouseItemInput is the create/update payload for a stocked item.
type WarehouseItemInput struct {
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Unit       string  `json:"unit"`
	MinStock   int     `json:"min_stock"`
	UnitPrice  float64 `json:"unit_price"`
	SupplierID int     `json:"supplier_id,omitempty"`
}

// StockMovementInput records an inbound or outbound mutation.
type StockMovementInput struct {
	ItemID     int                      `json:"item_id"`
	FacilityID int                      `json:"facility_id,omitempty"`
	Direction  domain.MovementDirection `json:"direction"`
	Quantity   int                      `json:"quantity"`
	Note       string                   `json:"note,omitempty"`
	MovedAt    string                   `json:"moved_at,omitempty"`
}

// WarehouseAPI catalogs the supply-inventory endpoints.
type WarehouseAPI struct {
	client *Client
}

// NewWarehouseAPI constructs the facade.
func NewWarehouseAPI(client *Client) *WarehouseAPI {
	return &WarehouseAPI{client: client}
}

func (w *WarehouseAPI) ListItems(ctx context.Context, filter WarehouseFilter) (*Envelope[[]domain.WarehouseItem], error) {
	return Do[[]domain.WarehouseItem](ctx, w.client, Request{
		Method:        http.MethodGet,
		Path:          "/warehouse/items",
		Query:         filter.query(),
		Authenticated: true,
	})
}

func (w *WarehouseAPI) GetItem(ctx context.Context, id int) (*Envelope[domain.WarehouseItem], error) {
	return Do[domain.WarehouseItem](ctx, w.client, Request{
		Method:        http.MethodGet,
		Path:          fmt.Sprintf("/warehouse/items/%d", id),
		Authenticated: true,
	})
}

func (w *WarehouseAPI) CreateItem(ctx context.Context, input WarehouseItemInput) (*Envelope[domain.WarehouseItem], error) {
	return Do[domain.WarehouseItem](ctx, w.client, Request{
		Method:        http.MethodPost,
		Path:          "/warehouse/items",
		Body:          input,
		Authenticated: true,
	})
}

func (w *WarehouseAPI) UpdateItem(ctx context.Context, id int, input WarehouseItemInput) (*Envelope[domain.WarehouseItem], error) {
	return Do[domain.WarehouseItem](ctx, w.client, Request{
		Method:        http.MethodPut,
		Path:          fmt.Sprintf("/warehouse/items/%d", id),
		Body:          input,
		Authenticated: true,
	})
}

func (w *WarehouseAPI) DeleteItem(ctx context.Context, id int) (*Envelope[struct{}], error) {
	return Do[struct{}](ctx, w.client, Request{
		Method:        http.MethodDelete,
		Path:          fmt.Sprintf("/warehouse/items/%d", id),
		Authenticated: true,
	})
}

func (w *WarehouseAPI) ListMovements(ctx context.Context, itemID int) (*Envelope[[]domain.StockMovement], error) {
	values := url.Values{}
	if itemID > 0 {
		values.Set("item_id", strconv.Itoa(itemID))
	}
	return Do[[]domain.StockMovement](ctx, w.client, Request{
		Method:        http.MethodGet,
		Path:          "/warehouse/movements",
		Query:         values,
		Authenticated: true,
	})
}

func (w *WarehouseAPI) CreateMovement(ctx context.Context, input StockMovementInput) (*Envelope[domain.StockMovement], error) {
	return Do[domain.StockMovement](ctx, w.client, Request{
		Method:        http.MethodPost,
		Path:          "/warehouse/movements",
		Body:          input,
		Authenticated: true,
	})
}
