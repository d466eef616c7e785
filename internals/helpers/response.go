package helper

import (
	"github.com/gofiber/fiber/v2"
)

// ✅ Error response standar: status + {"error": message}
func JsonError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}

// ✅ Success response generic (default 200)
func JsonOK(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}
