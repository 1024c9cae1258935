package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/facility-console/internal/upstream"
)

// SuppliersHandler proxies the supplier settings pages.
type SuppliersHandler struct {
	suppliers *upstream.SuppliersAPI
}

// NewSuppliersHandler constructs handler.
func NewSuppliersHandler(suppliers *upstream.SuppliersAPI) *SuppliersHandler {
	return &SuppliersHandler{suppliers: suppliers}
}

// List handles GET /console/suppliers.
func (h *SuppliersHandler) List(c *fiber.Ctx) error {
	env, err := h.suppliers.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// Get handles GET /console/suppliers/:id.
func (h *SuppliersHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	env, err := h.suppliers.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// Create handles POST /console/suppliers.
func (h *SuppliersHandler) Create(c *fiber.Ctx) error {
	var input upstream.SupplierInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	env, err := h.suppliers.Create(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(env)
}

// Update handles PUT /console/suppliers/:id.
func (h *SuppliersHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var input upstream.SupplierInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	env, err := h.suppliers.Update(c.UserContext(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// Delete handles DELETE /console/suppliers/:id.
func (h *SuppliersHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	env, err := h.suppliers.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(env)
}
