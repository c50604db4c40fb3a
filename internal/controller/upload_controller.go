package controller

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"superisi_backend/pkg/utils/image"
	"superisi_backend/pkg/utils/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// UploadImages çoklu ürün görseli yükler, işler ve kalıcı URL'leri döner
func UploadImages(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid multipart form",
		})
	}

	files := form.File["files"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No files uploaded",
		})
	}

	urls := make([]string, 0, len(files))
	datePrefix := time.Now().UTC().Format("2006-01-02")

	for _, file := range files {
		if err := validation.ValidateImage(file); err != nil {
			if errors.Is(err, validation.ErrFileSize) || errors.Is(err, validation.ErrFileType) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": err.Error(),
				})
			}
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid file",
			})
		}

		buf, contentType, err := image.ProcessImage(file)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not process image",
			})
		}

		ext := strings.TrimPrefix(filepath.Ext(file.Filename), ".")
		if ext == "" {
			ext = "jpg"
		}
		base := strings.TrimSuffix(file.Filename, filepath.Ext(file.Filename))

		path := fmt.Sprintf("products/%s/%s-%s.%s", datePrefix, uuid.New().String(), slug.Make(base), ext)

		url, err := fileStorage.Save(c.Context(), path, buf.Bytes(), contentType)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not save file",
			})
		}

		urls = append(urls, url)
	}

	return c.JSON(fiber.Map{"urls": urls})
}
