package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/facility-console/internal/upstream"
)

// WarehouseHandler proxies the supply-inventory pages' data calls.
type WarehouseHandler struct {
	warehouse *upstream.WarehouseAPI
}

// NewWarehouseHandler constructs handler.
func NewWarehouseHandler(warehouse *upstream.WarehouseAPI) *WarehouseHandler {
	return &WarehouseHandler{warehouse: warehouse}
}

// ListItems handles GET /console/warehouse/items.
func (h *WarehouseHandler) ListItems(c *fiber.Ctx) error {
	filter := upstream.WarehouseFilter{
		Category: strQuery(c, "category"),
		Search:   strQuery(c, "search"),
		LowStock: c.Query("low_stock") == "1",
	}
	env, err := h.warehouse.ListItems(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// GetItem handles GET /console/warehouse/items/:id.
func (h *WarehouseHandler) GetItem(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	env, err := h.warehouse.GetItem(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// CreateItem handles POST /console/warehouse/items.
func (h *WarehouseHandler) CreateItem(c *fiber.Ctx) error {
	var input upstream.WarehouseItemInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	env, err := h.warehouse.CreateItem(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(env)
}

// UpdateItem handles PUT /console/warehouse/items/:id.
func (h *WarehouseHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var input upstream.WarehouseItemInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	env, err := h.warehouse.UpdateItem(c.UserContext(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// DeleteItem handles DELETE /console/warehouse/items/:id.
func (h *WarehouseHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	env, err := h.warehouse.DeleteItem(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// ListMovements handles GET /console/warehouse/movements.
func (h *WarehouseHandler) ListMovements(c *fiber.Ctx) error {
	itemID := 0
	if id := intQuery(c, "item_id"); id != nil {
		itemID = *id
	}
	env, err := h.warehouse.ListMovements(c.UserContext(), itemID)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// CreateMovement handles POST /console/warehouse/movements.
func (h *WarehouseHandler) CreateMovement(c *fiber.Ctx) error {
	var input upstream.StockMovementInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	env, err := h.warehouse.CreateMovement(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(env)
}
