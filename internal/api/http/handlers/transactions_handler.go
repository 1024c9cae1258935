package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/facility-console/internal/upstream"
)

// TransactionsHandler proxies the administrative transaction log pages.
type TransactionsHandler struct {
	transactions *upstream.TransactionsAPI
}

// NewTransactionsHandler constructs handler.
func NewTransactionsHandler(transactions *upstream.TransactionsAPI) *TransactionsHandler {
	return &TransactionsHandler{transactions: transactions}
}

// List handles GET /console/transactions.
func (h *TransactionsHandler) List(c *fiber.Ctx) error {
	filter := upstream.TransactionFilter{
		FacilityID: intQuery(c, "facility_id"),
		Category:   strQuery(c, "category"),
		From:       strQuery(c, "from"),
		To:         strQuery(c, "to"),
	}
	env, err := h.transactions.List(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// Get handles GET /console/transactions/:id.
func (h *TransactionsHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	env, err := h.transactions.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// Create handles POST /console/transactions. The log is append-only; no
// update or delete routes exist.
func (h *TransactionsHandler) Create(c *fiber.Ctx) error {
	var input upstream.TransactionInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	env, err := h.transactions.Create(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(env)
}
