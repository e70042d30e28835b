package presenter

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/cvfolio/backend/pkg/cv"
	"github.com/cvfolio/backend/pkg/gateway"
	"github.com/cvfolio/backend/pkg/security"
	"github.com/cvfolio/backend/pkg/security/shield"
)

// ErrorResponse is the single error envelope of the API.
type ErrorResponse struct {
	Error string `json:"error"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Error: message})
}

// FromError converts a domain error into the response it maps to. Every error
// becomes an {"error": ...} body with one of the statuses below; nothing
// propagates unhandled and no partial body is ever written.
func FromError(c *fiber.Ctx, err error) error {
	return Error(c, statusFor(err), err.Error())
}

func statusFor(err error) int {
	var validation *gateway.ValidationError
	switch {
	case errors.As(err, &validation),
		errors.Is(err, cv.ErrInvalidDocument):
		return http.StatusBadRequest
	case errors.Is(err, security.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, shield.ErrBlocked):
		return http.StatusForbidden
	case errors.Is(err, cv.ErrNotFound):
		return http.StatusNotFound
	default:
		// llm.ErrMissingAPIKey, llm.UpstreamError, gateway.SchemaValidationError
		// and anything unexpected are all server-side failures.
		return http.StatusInternalServerError
	}
}
