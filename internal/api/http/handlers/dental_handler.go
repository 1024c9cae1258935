package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/facility-console/internal/upstream"
)

// DentalHandler proxies the dental contract and asset inventory pages.
type DentalHandler struct {
	dental *upstream.DentalAPI
}

// NewDentalHandler constructs handler.
func NewDentalHandler(dental *upstream.DentalAPI) *DentalHandler {
	return &DentalHandler{dental: dental}
}

func facilityIDQuery(c *fiber.Ctx) int {
	if id := intQuery(c, "facility_id"); id != nil {
		return *id
	}
	return 0
}

// ListContracts handles GET /console/dental/contracts.
func (h *DentalHandler) ListContracts(c *fiber.Ctx) error {
	env, err := h.dental.ListContracts(c.UserContext(), facilityIDQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// GetContract handles GET /console/dental/contracts/:id.
func (h *DentalHandler) GetContract(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	env, err := h.dental.GetContract(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// CreateContract handles POST /console/dental/contracts.
func (h *DentalHandler) CreateContract(c *fiber.Ctx) error {
	var input upstream.DentalContractInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	env, err := h.dental.CreateContract(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(env)
}

// UpdateContract handles PUT /console/dental/contracts/:id.
func (h *DentalHandler) UpdateContract(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var input upstream.DentalContractInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	env, err := h.dental.UpdateContract(c.UserContext(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// DeleteContract handles DELETE /console/dental/contracts/:id.
func (h *DentalHandler) DeleteContract(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	env, err := h.dental.DeleteContract(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// ListAssets handles GET /console/dental/assets.
func (h *DentalHandler) ListAssets(c *fiber.Ctx) error {
	env, err := h.dental.ListAssets(c.UserContext(), facilityIDQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// GetAsset handles GET /console/dental/assets/:id.
func (h *DentalHandler) GetAsset(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	env, err := h.dental.GetAsset(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// CreateAsset handles POST /console/dental/assets.
func (h *DentalHandler) CreateAsset(c *fiber.Ctx) error {
	var input upstream.DentalAssetInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	env, err := h.dental.CreateAsset(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(env)
}

// UpdateAsset handles PUT /console/dental/assets/:id.
func (h *DentalHandler) UpdateAsset(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var input upstream.DentalAssetInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	env, err := h.dental.UpdateAsset(c.UserContext(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// DeleteAsset handles DELETE /console/dental/assets/:id.
func (h *DentalHandler) DeleteAsset(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	env, err := h.dental.DeleteAsset(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(env)
}
