package seed

import (
	"log"

	"superisi_backend/internal/fetchers"
	"superisi_backend/internal/store"
)

// SeedDefaultSettings eksik ayar anahtarlarını varsayılan içerikle
// doldurur. Mevcut değerlere asla dokunmaz.
func SeedDefaultSettings(settings store.SettingsStore) {
	defaults := map[string]any{
		store.KeyContactNumbers: fetchers.DefaultContactNumbers(),
	}

	for key, value := range defaults {
		existing, err := settings.Get(key)
		if err != nil {
			log.Printf("Error checking setting %s: %v", key, err)
			continue
		}
		if existing != nil {
			continue
		}
		if err := settings.Set(key, value); err != nil {
			log.Printf("Error seeding setting %s: %v", key, err)
			continue
		}
		log.Printf("Seeded default setting: %s", key)
	}
}
