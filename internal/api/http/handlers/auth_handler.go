package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/facility-console/internal/api/dto"
	"github.com/spec-kit/facility-console/internal/domain"
	"github.com/spec-kit/facility-console/internal/session"
)

// AuthHandler exposes the session lifecycle to the browser console.
type AuthHandler struct {
	sessions *session.Manager
}

// NewAuthHandler constructs handler.
func NewAuthHandler(sessions *session.Manager) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Login handles POST /auth/:userType/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	userType := domain.UserType(c.Params("userType"))
	if !userType.Valid() {
		return fiber.NewError(http.StatusNotFound, "unknown user type")
	}

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}

	cred, err := h.sessions.Login(c.UserContext(), userType, req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.LoginResponse{
		Success:   true,
		Message:   "login successful",
		Token:     cred.Token,
		TokenType: cred.TokenType,
		ExpiresIn: cred.ExpiresIn,
		User:      cred.User,
	})
}

// Logout handles POST /auth/:userType/logout, the type-specific variant that
// reports the server-call outcome even though the slot is already cleared.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	switch domain.UserType(c.Params("userType")) {
	case domain.UserTypeAdmin:
		if err := h.sessions.LogoutAdmin(c.UserContext()); err != nil {
			return err
		}
	case domain.UserTypeStaff:
		if err := h.sessions.LogoutStaff(c.UserContext()); err != nil {
			return err
		}
	default:
		return fiber.NewError(http.StatusNotFound, "unknown user type")
	}
	return c.JSON(fiber.Map{"success": true, "message": "logged out"})
}

// LogoutUnified handles POST /auth/logout for the resolved user type; server
// failures are swallowed once the local slot is cleared.
func (h *AuthHandler) LogoutUnified(c *fiber.Ctx) error {
	userType, err := h.sessions.Store().Resolve(c.UserContext())
	if err != nil {
		userType = domain.UserTypeStaff
	}
	if err := h.sessions.Logout(c.UserContext(), userType); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "logged out"})
}

// Session handles GET /auth/session with per-slot status.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	statuses, err := h.sessions.Describe(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "session status", "data": statuses})
}

// ForceClear handles POST /auth/clear, the storage sweep fallback.
func (h *AuthHandler) ForceClear(c *fiber.Ctx) error {
	if err := h.sessions.ForceClearAll(c.UserContext()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "storage cleared"})
}

// LoginScreen handles GET /login, the guard's redirect target. The real
// console serves its SPA here; the gateway answers with a marker payload.
func (h *AuthHandler) LoginScreen(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": false, "message": "authentication required"})
}
