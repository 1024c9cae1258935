package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/facility-console/internal/domain"
	"github.com/spec-kit/facility-console/internal/upstream"
)

// ReportsHandler proxies the incident-reporting pages' data calls. Envelopes
// pass through unmodified; filtering happens upstream or in the browser.
type ReportsHandler struct {
	reports *upstream.ReportsAPI
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reports *upstream.ReportsAPI) *ReportsHandler {
	return &ReportsHandler{reports: reports}
}

// List handles GET /console/reports.
func (h *ReportsHandler) List(c *fiber.Ctx) error {
	filter := upstream.ReportFilter{
		FacilityID: intQuery(c, "facility_id"),
		TypeID:     intQuery(c, "type_id"),
		Search:     strQuery(c, "search"),
	}
	if raw := c.Query("status"); raw != "" {
		status := domain.ReportStatus(raw)
		filter.Status = &status
	}

	env, err := h.reports.List(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// Get handles GET /console/reports/:id.
func (h *ReportsHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	env, err := h.reports.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// Create handles POST /console/reports.
func (h *ReportsHandler) Create(c *fiber.Ctx) error {
	var input upstream.ReportInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	env, err := h.reports.Create(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(env)
}

// Update handles PUT /console/reports/:id.
func (h *ReportsHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var input upstream.ReportInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	env, err := h.reports.Update(c.UserContext(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// Delete handles DELETE /console/reports/:id.
func (h *ReportsHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	env, err := h.reports.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// Types handles GET /console/reports/types.
func (h *ReportsHandler) Types(c *fiber.Ctx) error {
	env, err := h.reports.Types(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// Summary handles GET /console/reports/summary.
func (h *ReportsHandler) Summary(c *fiber.Ctx) error {
	env, err := h.reports.Summary(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(env)
}
