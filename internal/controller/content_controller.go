package controller

import (
	"github.com/gofiber/fiber/v2"
)

// GetSiteSettings public sitenin header/footer/iletişim verisini döner
func GetSiteSettings(c *fiber.Ctx) error {
	noCache(c)
	return c.JSON(siteFetchers.GetSettings())
}

// GetAboutPage hakkımızda sayfası içeriğini döner
func GetAboutPage(c *fiber.Ctx) error {
	noCache(c)
	return c.JSON(siteFetchers.GetAbout())
}

// GetContactPage iletişim sayfası içeriğini döner
func GetContactPage(c *fiber.Ctx) error {
	noCache(c)
	return c.JSON(siteFetchers.GetContact())
}

// GetContactNumbers sitede gösterilen telefon/whatsapp numaralarını döner
func GetContactNumbers(c *fiber.Ctx) error {
	noCache(c)
	return c.JSON(siteFetchers.GetContactNumbers())
}
