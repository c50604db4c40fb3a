package controller

import (
	"superisi_backend/internal/store"
	"superisi_backend/pkg/utils/jsonutil"

	"github.com/gofiber/fiber/v2"
)

// GetHomepage anasayfa içeriğini varsayılanlarla birleştirilmiş döner
func GetHomepage(c *fiber.Ctx) error {
	noCache(c)
	return c.JSON(siteFetchers.GetHomepage())
}

// UpdateHomepage anasayfa içeriğini kaydeder. Gelen nesnedeki boş
// alanlar mevcut kaydın üzerine yazmaz.
func UpdateHomepage(c *fiber.Ctx) error {
	var incoming map[string]any
	if err := c.BodyParser(&incoming); err != nil || incoming == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	existingRaw, err := settingsStore.Get(store.KeyHomepage)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch homepage data",
		})
	}

	merged := jsonutil.MergeNonEmpty(jsonutil.DecodeObject(existingRaw), incoming)
	if err := settingsStore.Set(store.KeyHomepage, merged); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save homepage data",
		})
	}

	revalidator.Invalidate("/")

	return c.JSON(fiber.Map{"success": true})
}
