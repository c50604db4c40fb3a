package controller

import (
	"sync"

	"github.com/gofiber/fiber/v2"
)

type NavigationItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
	Order int    `json:"order"`
}

// Navigasyon menüsü süreç ömrü boyunca bellekte tutulur ve her
// başlangıçta varsayılanlara döner.
var (
	navMu    sync.RWMutex
	navItems = defaultNavigation()
)

func defaultNavigation() []NavigationItem {
	return []NavigationItem{
		{Label: "Anasayfa", Href: "/", Order: 1},
		{Label: "Koleksiyonlar", Href: "/koleksiyonlar", Order: 2},
		{Label: "Hakkımızda", Href: "/hakkimizda", Order: 3},
		{Label: "İletişim", Href: "/iletisim", Order: 4},
	}
}

// GetNavigation menü öğelerini döner
func GetNavigation(c *fiber.Ctx) error {
	noCache(c)

	navMu.RLock()
	items := make([]NavigationItem, len(navItems))
	copy(items, navItems)
	navMu.RUnlock()

	return c.JSON(items)
}

// UpdateNavigation menü öğelerini topluca değiştirir
func UpdateNavigation(c *fiber.Ctx) error {
	var items []NavigationItem
	if err := c.BodyParser(&items); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	navMu.Lock()
	navItems = items
	navMu.Unlock()

	return c.JSON(fiber.Map{"success": true, "count": len(items)})
}
