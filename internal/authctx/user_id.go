// authctx/user_id.go
package authctx

import (
	"github.com/gofiber/fiber/v2"
)

// UserIDFrom reads the caller id the JWT middleware stored in Locals.
func UserIDFrom(c *fiber.Ctx) (string, bool) {
	if v := c.Locals("user_id"); v != nil {
		if s, ok := v.(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// RoleFrom reads the role claim, empty for anonymous callers.
func RoleFrom(c *fiber.Ctx) string {
	r, _ := c.Locals("role").(string)
	return r
}
