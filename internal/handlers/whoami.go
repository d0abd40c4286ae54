package handlers

import "github.com/gofiber/fiber/v2"

// WhoAmI shows the current logged-in user and role
func WhoAmI() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals("user_id"),
			"role":    c.Locals("role"),
		})
	}
}
