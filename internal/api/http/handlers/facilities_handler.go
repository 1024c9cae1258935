package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/facility-console/internal/upstream"
)

// FacilitiesHandler proxies the facility settings pages.
type FacilitiesHandler struct {
	facilities *upstream.FacilitiesAPI
}

// NewFacilitiesHandler constructs handler.
func NewFacilitiesHandler(facilities *upstream.FacilitiesAPI) *FacilitiesHandler {
	return &FacilitiesHandler{facilities: facilities}
}

// List handles GET /console/facilities.
func (h *FacilitiesHandler) List(c *fiber.Ctx) error {
	env, err := h.facilities.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// Get handles GET /console/facilities/:id.
func (h *FacilitiesHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	env, err := h.facilities.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// Create handles POST /console/facilities.
func (h *FacilitiesHandler) Create(c *fiber.Ctx) error {
	var input upstream.FacilityInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	env, err := h.facilities.Create(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(env)
}

// Update handles PUT /console/facilities/:id.
func (h *FacilitiesHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var input upstream.FacilityInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	env, err := h.facilities.Update(c.UserContext(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// Delete handles DELETE /console/facilities/:id.
func (h *FacilitiesHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	env, err := h.facilities.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(env)
}
