package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/facility-console/internal/domain"
	"github.com/spec-kit/facility-console/internal/upstream"
)

// PurchasesHandler proxies the direct-purchase procurement pages.
type PurchasesHandler struct {
	purchases *upstream.PurchasesAPI
}

// NewPurchasesHandler constructs handler.
func NewPurchasesHandler(purchases *upstream.PurchasesAPI) *PurchasesHandler {
	return &PurchasesHandler{purchases: purchases}
}

// List handles GET /console/purchases.
func (h *PurchasesHandler) List(c *fiber.Ctx) error {
	filter := upstream.PurchaseFilter{
		FacilityID: intQuery(c, "facility_id"),
		SupplierID: intQuery(c, "supplier_id"),
	}
	if raw := c.Query("status"); raw != "" {
		status := domain.PurchaseStatus(raw)
		filter.Status = &status
	}
	env, err := h.purchases.List(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// Get handles GET /console/purchases/:id.
func (h *PurchasesHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	env, err := h.purchases.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// Create handles POST /console/purchases.
func (h *PurchasesHandler) Create(c *fiber.Ctx) error {
	var input upstream.PurchaseInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	env, err := h.purchases.Create(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(env)
}

// Update handles PUT /console/purchases/:id.
func (h *PurchasesHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var input upstream.PurchaseInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	env, err := h.purchases.Update(c.UserContext(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// Delete handles DELETE /console/purchases/:id.
func (h *PurchasesHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	env, err := h.purchases.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// UpdateStatus handles PATCH /console/purchases/:id/status.
func (h *PurchasesHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var body struct {
		Status domain.PurchaseStatus `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil || body.Status == "" {
		return fiber.NewError(http.StatusBadRequest, "status required")
	}
	env, err := h.purchases.UpdateStatus(c.UserContext(), id, body.Status)
	if err != nil {
		return err
	}
	return c.JSON(env)
}
