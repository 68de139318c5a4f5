package middleware

import (
	"learntrack/backend/config"
	"learntrack/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware verifies the bearer token and stores the resolved user id
// in the request locals under "user_id". Handlers behind it can assume the
// value is present.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		c.Locals("user_id", userID)
		return c.Next()
	}
}

// UserID returns the authenticated user's id attached by AuthMiddleware.
func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals("user_id").(uint)
	return id
}
