package controller

import (
	"superisi_backend/internal/fetchers"
	"superisi_backend/internal/store"
	"superisi_backend/pkg/revalidate"
	"superisi_backend/pkg/utils/storage"

	"github.com/gofiber/fiber/v2"
)

var (
	settingsStore     store.SettingsStore
	productsStore     store.ProductsStore
	appointmentsStore *store.AppointmentsStore
	siteFetchers      *fetchers.Fetchers
	revalidator       *revalidate.Revalidator
	fileStorage       storage.Storage
)

// Init controller katmanının bağımlılıklarını bağlar. main tarafından
// bir kez, sunucu başlamadan önce çağrılır.
func Init(
	settings store.SettingsStore,
	products store.ProductsStore,
	appointments *store.AppointmentsStore,
	f *fetchers.Fetchers,
	r *revalidate.Revalidator,
	s storage.Storage,
) {
	settingsStore = settings
	productsStore = products
	appointmentsStore = appointments
	siteFetchers = f
	revalidator = r
	fileStorage = s
}

// noCache yönetim panelinin her zaman taze veri görmesi için cevapların
// önbelleklenmesini kapatır.
func noCache(c *fiber.Ctx) {
	c.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Set("Pragma", "no-cache")
}
