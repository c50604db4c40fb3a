package controller

import (
	"errors"

	"superisi_backend/internal/model"
	"superisi_backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

// GetProducts ürün/hizmet listesini en yeniden eskiye döner
func GetProducts(c *fiber.Ctx) error {
	noCache(c)

	products, err := productsStore.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch products",
		})
	}

	return c.JSON(products)
}

// CreateProduct yeni ürün oluşturur
func CreateProduct(c *fiber.Ctx) error {
	input := new(model.ProductInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	product, err := productsStore.Create(*input)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create product",
		})
	}

	revalidator.InvalidateProductPaths(product.Slug)

	return c.Status(fiber.StatusCreated).JSON(product)
}

// UpdateProduct mevcut ürünü kısmi olarak günceller. Gönderilmeyen
// alanlar değişmez.
func UpdateProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		id = c.Query("id")
	}
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Product id is required",
		})
	}

	input := new(model.ProductInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	product, err := productsStore.Update(id, *input)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update product",
		})
	}

	revalidator.InvalidateProductPaths(product.Slug)

	return c.JSON(product)
}

// DeleteProduct ürünü ve bağlı hizmet detaylarını siler
func DeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		id = c.Query("id")
	}
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Product id is required",
		})
	}

	product, err := productsStore.Delete(id)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete product",
		})
	}

	revalidator.InvalidateProductPaths(product.Slug)

	return c.JSON(fiber.Map{"success": true, "deleted": product})
}
