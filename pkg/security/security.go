package security

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrUnauthenticated is returned by an Authenticator for requests without a
// valid session.
var ErrUnauthenticated = errors.New("authentication required")

// Authenticator verifies the session carried by a request and returns the
// authenticated user id. Implementations are injected into handlers so tests
// can substitute doubles.
type Authenticator interface {
	Authenticate(c *fiber.Ctx) (string, error)
}
