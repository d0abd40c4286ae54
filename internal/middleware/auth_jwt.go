package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JWT parses an optional bearer token and stashes the caller identity in
// Locals. Requests without an Authorization header pass through anonymous;
// the public search surface never requires a token.
func JWT(secret string) fiber.Handler {
	type claims struct {
		Role string `json:"role,omitempty"`
		jwt.RegisteredClaims
	}

	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return c.Next()
		}
		if secret == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing JWT secret")
		}

		tokenStr := strings.TrimSpace(auth[7:])
		var cl claims

		token, err := jwt.ParseWithClaims(
			tokenStr,
			&cl,
			func(t *jwt.Token) (any, error) {
				// HMAC HS256 only
				if t.Method != jwt.SigningMethodHS256 {
					return nil, fiber.ErrUnauthorized
				}
				return []byte(secret), nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}
		if cl.Subject == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing sub")
		}

		c.Locals("user_id", cl.Subject)
		c.Locals("role", cl.Role)
		return c.Next()
	}
}
