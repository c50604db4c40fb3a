package controller

import (
	"encoding/json"
	"errors"
	"time"

	"superisi_backend/internal/store"
	"superisi_backend/pkg/utils/jsonutil"

	"github.com/gofiber/fiber/v2"
)

type SettingInput struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// GetSettings tüm ayarları anahtar->değer haritası olarak döner. Değerler
// string içine sarılmış JSON olsa bile çözülmüş halde gönderilir.
func GetSettings(c *fiber.Ctx) error {
	noCache(c)

	values, err := settingsStore.All()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch settings",
		})
	}

	result := make(map[string]json.RawMessage, len(values))
	for key, raw := range values {
		result[key] = jsonutil.Unwrap(raw)
	}

	return c.JSON(result)
}

// GetSetting tek bir ayar anahtarını döner. Kayıt yoksa value null olur.
func GetSetting(c *fiber.Ctx) error {
	noCache(c)

	key := c.Query("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "key is required",
		})
	}

	raw, err := settingsStore.Get(key)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch setting",
		})
	}

	if raw == nil {
		return c.JSON(fiber.Map{"key": key, "value": nil})
	}

	return c.JSON(fiber.Map{"key": key, "value": jsonutil.Unwrap(raw)})
}

// UpdateSetting bir ayarı kaydeder. Nesne değerlerinde mevcut kayıtla
// birleştirme yapılır: boş string, null ve boş dizi alanları mevcut
// değerin üzerine yazmaz.
func UpdateSetting(c *fiber.Ctx) error {
	input := new(SettingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if input.Key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "key is required",
		})
	}

	var value any = json.RawMessage(input.Value)

	incoming := jsonutil.DecodeObject(json.RawMessage(input.Value))
	if incoming != nil {
		existingRaw, err := settingsStore.Get(input.Key)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not fetch existing setting",
			})
		}
		existing := jsonutil.DecodeObject(existingRaw)
		value = jsonutil.MergeNonEmpty(existing, incoming)
	}

	if err := settingsStore.Set(input.Key, value); err != nil {
		if errors.Is(err, store.ErrMissingKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "key is required",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save setting",
		})
	}

	return c.JSON(fiber.Map{"success": true, "key": input.Key})
}

// ReplaceSetting ayarı birleştirme yapmadan olduğu gibi yazar
func ReplaceSetting(c *fiber.Ctx) error {
	input := new(SettingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if input.Key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "key is required",
		})
	}

	if err := settingsStore.Set(input.Key, json.RawMessage(input.Value)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save setting",
		})
	}

	return c.JSON(fiber.Map{"success": true, "key": input.Key})
}

// IncrementVisitors toplam ve günlük ziyaretçi sayaçlarını bir artırır
func IncrementVisitors(c *fiber.Ctx) error {
	stats, err := appointmentsStore.IncrementVisitorStats(time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update visitor stats",
		})
	}

	return c.JSON(fiber.Map{"visitor_count": stats.TotalVisitors})
}
