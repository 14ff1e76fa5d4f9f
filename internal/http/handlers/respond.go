package handlers

import "github.com/gofiber/fiber/v2"

func jsonError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// softFail is the duplicate-rejection contract: HTTP 200 with
// acknowledged=false and a human-readable message the client must check.
func softFail(c *fiber.Ctx, msg string) error {
	return c.JSON(fiber.Map{"acknowledged": false, "message": msg})
}
