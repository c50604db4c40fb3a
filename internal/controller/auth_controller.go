package controller

import (
	"strings"
	"time"

	"superisi_backend/pkg/config"
	"superisi_backend/pkg/utils/jwt"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type SignInInput struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

var authConfig config.AuthConfig

// InitAuth oturum açma uçlarının kullandığı yönetici bilgilerini bağlar
func InitAuth(cfg config.AuthConfig) {
	authConfig = cfg
}

// SignIn yönetici giriş formunu doğrular ve oturum çerezini yazar
func SignIn(c *fiber.Ctx) error {
	input := new(SignInInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
		})
	}

	if email != strings.ToLower(authConfig.AdminEmail) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	if err := bcrypt.CompareHashAndPassword(authConfig.AdminPasswordHash, []byte(input.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	token, err := jwt.GenerateToken(email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create session",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "admin-auth",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"success": true,
		"email":   email,
	})
}

// SignOut oturum çerezini temizler
func SignOut(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "admin-auth",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return c.JSON(fiber.Map{"success": true})
}

// Me mevcut oturumun kimliğini döner. Middleware'den geçtiyse oturum geçerlidir.
func Me(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	return c.JSON(fiber.Map{"email": claims.Email})
}
