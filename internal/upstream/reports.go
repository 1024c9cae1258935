package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spec-kit/facility-console/internal/domain"
)

// ReportFilter captures the incident-report list parameters.
type ReportFilter struct {
	FacilityID *int
	TypeID     *int
	Status     *domain.ReportStatus
	Search     *string
}

func (f ReportFilter) query() url.Values {
	values := url.Values{}
	if f.FacilityID != nil {
		values.Set("facility_id", strconv.Itoa(*f.FacilityID))
	}
	if f.TypeID != nil {
		values.Set("type_id", strconv.Itoa(*f.TypeID))
	}
	if f.Status != nil {
		values.Set("status", string(*f.Status))
	}
	if f.Search != nil {
		values.Set("search", *f.Search)
	}
	return values
}

// ReportInput is the create/update payload for a report.
type ReportInput struct {
	FacilityID  int                 `json:"facility_id"`
	TypeID      int                 `json:"type_id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      domain.ReportStatus `json:"status,omitempty"`
	ReportedBy  string              `json:"reported_by,omitempty"`
	ReportedAt  string              `json:"reported_at,omitempty"`
}

// ReportsAPI catalogs the incident-reporting endpoints.
type ReportsAPI struct {
	client *Client
}

// NewReportsAPI constructs the facade.
func NewReportsAPI(client *Client) *ReportsAPI {
	return &ReportsAPI{client: client}
}

func (r *ReportsAPI) List(ctx context.Context, filter ReportFilter) (*Envelope[[]domain.Report], error) {
	return Do[[]domain.Report](ctx, r.client, Request{
		Method:        http.MethodGet,
		Path:          "/reports",
		Query:         filter.query(),
		Authenticated: true,
	})
}

func (r *ReportsAPI) Get(ctx context.Context, id int) (*Envelope[domain.Report], error) {
	return Do[domain.Report](ctx, r.client, Request{
		Method:        http.MethodGet,
		Path:          fmt.Sprintf("/reports/%d", id),
		Authenticated: true,
	})
}

func (r *ReportsAPI) Create(ctx context.Context, input ReportInput) (*Envelope[domain.Report], error) {
	return Do[domain.Report](ctx, r.client, Request{
		Method:        http.MethodPost,
		Path:          "/reports",
		Body:          input,
		Authenticated: true,
	})
}

func (r *ReportsAPI) Update(ctx context.Context, id int, input ReportInput) (*Envelope[domain.Report], error) {
	return Do[domain.Report](ctx, r.client, Request{
		Method:        http.MethodPut,
		Path:          fmt.Sprintf("/reports/%d", id),
		Body:          input,
		Authenticated: true,
	})
}

func (r *ReportsAPI) Delete(ctx context.Context, id int) (*Envelope[struct{}], error) {
	return Do[struct{}](ctx, r.client, Request{
		Method:        http.MethodDelete,
		Path:          fmt.Sprintf("/reports/%d", id),
		Authenticated: true,
	})
}

// Types lists the report-type reference data used by the filter forms.
func (r *ReportsAPI) Types(ctx context.Context) (*Envelope[[]domain.ReportType], error) {
	return Do[[]domain.ReportType](ctx, r.client, Request{
		Method:        http.MethodGet,
		Path:          "/reports/types",
		Authenticated: true,
	})
}

// Summary returns aggregate counts for the dashboard charts.
func (r *ReportsAPI) Summary(ctx context.Context) (*Envelope[domain.ReportSummary], error) {
	return Do[domain.ReportSummary](ctx, r.client, Request{
		Method:        http.MethodGet,
		Path:          "/reports/summary",
		Authenticated: true,
	})
}
