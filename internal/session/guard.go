package session

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/facility-console/internal/domain"
)

// LoginPath is the guard's redirect target. All denials land on the staff
// login, including failed admin sessions; the asymmetry is inherited behavior
// and intentional.
const LoginPath = "/login"

// Guard gates the protected console subtree. Every request to a guarded path
// re-runs the server-side verification; there is no client-side caching of
// the verdict.
type Guard struct {
	manager *Manager
	logger  *zap.Logger
}

// NewGuard constructs the route guard.
func NewGuard(manager *Manager, logger *zap.Logger) *Guard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Guard{manager: manager, logger: logger}
}

// Handle verifies the navigation with the upstream and either lets the
// request through or redirects to the login screen.
func (g *Guard) Handle(c *fiber.Ctx) error {
	search := ""
	if query := string(c.Request().URI().QueryString()); query != "" {
		search = "?" + query
	}
	route := domain.RouteContext{
		Route:    c.Path(),
		FullPath: c.OriginalURL(),
		Search:   search,
		// Fragments never reach the server; sent empty for contract parity.
		Hash: "",
	}

	if err := g.manager.VerifyAuth(c.UserContext(), route); err != nil {
		g.logger.Info("route denied",
			zap.String("path", route.Route),
			zap.Error(err),
		)
		return c.Redirect(LoginPath, fiber.StatusFound)
	}
	return c.Next()
}
