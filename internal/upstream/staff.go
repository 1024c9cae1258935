package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spec-kit/facility-console/internal/domain"
)

// StaffInput is the create/update payload for a staff member.
type StaffInput struct {
	Username   string `json:"username"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password,omitempty"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
	Position   string `json:"position,omitempty"`
	FacilityID int    `json:"facility_id,omitempty"`
}

// StaffAPI catalogs the staff settings endpoints.
type StaffAPI struct {
	client *Client
}

// NewStaffAPI constructs the facade.
func NewStaffAPI(client *Client) *StaffAPI {
	return &StaffAPI{client: client}
}

func (s *StaffAPI) List(ctx context.Context, facilityID int) (*Envelope[[]domain.StaffMember], error) {
	values := url.Values{}
	if facilityID > 0 {
		values.Set("facility_id", strconv.Itoa(facilityID))
	}
	return Do[[]domain.StaffMember](ctx, s.client, Request{
		Method:        http.MethodGet,
		Path:          "/staff",
		Query:         values,
		Authenticated: true,
	})
}

func (s *StaffAPI) Get(ctx context.Context, id int) (*Envelope[domain.StaffMember], error) {
	return Do[domain.StaffMember](ctx, s.client, Request{
		Method:        http.MethodGet,
		Path:          fmt.Sprintf("/staff/%d", id),
		Authenticated: true,
	})
}

func (s *StaffAPI) Create(ctx context.Context, input StaffInput) (*Envelope[domain.StaffMember], error) {
	return Do[domain.StaffMember](ctx, s.client, Request{
		Method:        http.MethodPost,
		Path:          "/staff",
		Body:          input,
		Authenticated: true,
	})
}

func (s *StaffAPI) Update(ctx context.Context, id int, input StaffInput) (*Envelope[domain.StaffMember], error) {
	return Do[domain.StaffMember](ctx, s.client, Request{
		Method:        http.MethodPut,
		Path:          fmt.Sprintf("/staff/%d", id),
		Body:          input,
		Authenticated: true,
	})
}

func (s *StaffAPI) Delete(ctx context.Context, id int) (*Envelope[struct{}], error) {
	return Do[struct{}](ctx, s.client, Request{
		Method:        http.MethodDelete,
		Path:          fmt.Sprintf("/staff/%d", id),
		Authenticated: true,
	})
}
