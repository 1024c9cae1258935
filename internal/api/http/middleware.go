package http

import (
	"context"
	"errors"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/facility-console/internal/observability"
	"github.com/spec-kit/facility-console/pkg/util/apierror"
)

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) {
	app.Use(requestIDMiddleware())
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(errorHandlingMiddleware(logger, metrics))
	app.Use(observability.RequestLogger(logger, metrics))
}

func requestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals("request_id", id)
		c.Set("X-Request-ID", id)
		return c.Next()
	}
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apierror.NewRequest("", http.StatusInternalServerError, nil)
			}
			if err != nil {
				status, body := classifyError(err)
				metrics.RecordError(c.Path(), c.Method(), errorCode(err))
				if status >= 500 {
					logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
				}
				c.Status(status)
				_ = c.JSON(body)
				err = nil
			}
		}()
		return c.Next()
	}
}

// classifyError maps an error to the console's response envelope. Upstream
// failures keep their taxonomy: authentication errors stay 401 so the
// browser knows to re-login, network errors surface as a bad gateway.
func classifyError(err error) (int, fiber.Map) {
	if apiErr, ok := apierror.As(err); ok {
		body := fiber.Map{"success": false, "message": apiErr.Message}
		if len(apiErr.Fields) > 0 {
			body["errors"] = apiErr.Fields
		}
		switch apiErr.Kind {
		case apierror.KindAuthentication:
			return http.StatusUnauthorized, body
		case apierror.KindNetwork:
			return http.StatusBadGateway, body
		default:
			status := apiErr.Status
			if status == 0 {
				status = http.StatusBadRequest
			}
			return status, body
		}
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiber.Map{"success": false, "message": fiberErr.Message}
	}

	return http.StatusInternalServerError, fiber.Map{"success": false, "message": "internal server error"}
}

func errorCode(err error) string {
	if apiErr, ok := apierror.As(err); ok {
		return string(apiErr.Kind)
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return http.StatusText(fiberErr.Code)
	}
	return "INTERNAL"
}
