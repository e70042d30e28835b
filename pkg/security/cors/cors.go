package cors

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// New returns a CORS middleware for the configured origins. Preflight
// requests are terminal and answered with status 200; they never reach the
// shield, authentication or handler stages behind this middleware.
func New(allowedOrigins []string) fiber.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	allowAll := false
	for _, o := range allowedOrigins {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "*" {
			allowAll = true
			continue
		}
		if o != "" {
			allowed[o] = true
		}
	}

	return func(c *fiber.Ctx) error {
		origin := strings.TrimRight(c.Get(fiber.HeaderOrigin), "/")
		if origin != "" && (allowAll || allowed[origin]) {
			c.Set(fiber.HeaderAccessControlAllowOrigin, origin)
			c.Set(fiber.HeaderVary, fiber.HeaderOrigin)
			c.Set(fiber.HeaderAccessControlAllowCredentials, "true")
		}
		if c.Method() == fiber.MethodOptions {
			c.Set(fiber.HeaderAccessControlAllowMethods, "GET, POST, PUT, OPTIONS")
			c.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type, Authorization")
			c.Set(fiber.HeaderAccessControlMaxAge, "86400")
			return c.SendStatus(fiber.StatusOK)
		}
		return c.Next()
	}
}
