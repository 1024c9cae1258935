package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/facility-console/internal/upstream"
)

// StaffHandler proxies the staff settings pages.
type StaffHandler struct {
	staff *upstream.StaffAPI
}

// NewStaffHandler constructs handler.
func NewStaffHandler(staff *upstream.StaffAPI) *StaffHandler {
	return &StaffHandler{staff: staff}
}

// List handles GET /console/staff.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	facilityID := 0
	if id := intQuery(c, "facility_id"); id != nil {
		facilityID = *id
	}
	env, err := h.staff.List(c.UserContext(), facilityID)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// Get handles GET /console/staff/:id.
func (h *StaffHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	env, err := h.staff.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// Create handles POST /console/staff.
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var input upstream.StaffInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	env, err := h.staff.Create(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(env)
}

// Update handles PUT /console/staff/:id.
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var input upstream.StaffInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	env, err := h.staff.Update(c.UserContext(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// Delete handles DELETE /console/staff/:id.
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	env, err := h.staff.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(env)
}
