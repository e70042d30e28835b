package jwt

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/cvfolio/backend/pkg/security"
)

// Verifier validates Bearer JWTs (HS256) and implements
// security.Authenticator.
type Verifier struct {
	secret []byte
	issuer string
}

func NewVerifier(secret, expectedIssuer string) *Verifier {
	return &Verifier{secret: []byte(secret), issuer: expectedIssuer}
}

// Authenticate extracts and validates the token from the Authorization
// header. Both "Bearer <token>" and a bare "<token>" are accepted. On success
// the subject (user id) is returned.
func (v *Verifier) Authenticate(c *fiber.Ctx) (string, error) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return "", fmt.Errorf("%w: missing Authorization header", security.ErrUnauthenticated)
	}
	tokenStr := strings.TrimSpace(authHeader)
	if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		tokenStr = strings.TrimSpace(parts[1])
	}
	if tokenStr == "" {
		return "", fmt.Errorf("%w: empty token", security.ErrUnauthenticated)
	}
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%w: invalid or expired token", security.ErrUnauthenticated)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return "", fmt.Errorf("%w: invalid token claims", security.ErrUnauthenticated)
	}
	if v.issuer != "" && claims.Issuer != v.issuer {
		return "", fmt.Errorf("%w: invalid token issuer", security.ErrUnauthenticated)
	}
	return claims.Subject, nil
}

// NewAuthMiddleware returns a Fiber middleware built on the Verifier. On
// success the user id (subject) is stored in c.Locals("userId").
func NewAuthMiddleware(v *Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := v.Authenticate(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		c.Locals("userId", userID)
		return c.Next()
	}
}
