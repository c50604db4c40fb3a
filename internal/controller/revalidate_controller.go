package controller

import (
	"github.com/gofiber/fiber/v2"
)

// RevalidatePath tek bir public sayfanın önbelleğini elle geçersiz kılar
func RevalidatePath(c *fiber.Ctx) error {
	path := c.Query("path")
	if path == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "path is required",
		})
	}

	revalidator.Invalidate(path)

	return c.JSON(fiber.Map{"success": true, "path": path})
}
