package main

import (
	"log"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"superisi_backend/internal/controller"
	"superisi_backend/internal/fetchers"
	"superisi_backend/internal/middleware"
	"superisi_backend/internal/model"
	"superisi_backend/internal/store"
	"superisi_backend/pkg/config"
	"superisi_backend/pkg/cron"
	"superisi_backend/pkg/database"
	"superisi_backend/pkg/email"
	"superisi_backend/pkg/revalidate"
	"superisi_backend/pkg/seed"
	"superisi_backend/pkg/utils/jwt"
	"superisi_backend/pkg/utils/storage"
)

func setupRoutes(app *fiber.App, cfg *config.Config) {
	api := app.Group("/api")

	protected := middleware.AuthMiddleware()

	// Auth Routes
	auth := api.Group("/auth")
	auth.Post("/signin", controller.SignIn)
	auth.Post("/signout", controller.SignOut)
	auth.Get("/me", protected, controller.Me)

	// Public Content Routes
	api.Get("/site-settings", controller.GetSiteSettings)
	api.Get("/about", controller.GetAboutPage)
	api.Get("/contact", controller.GetContactPage)
	api.Get("/contact-numbers", controller.GetContactNumbers)

	// Homepage Routes
	api.Get("/homepage", controller.GetHomepage)
	api.Put("/homepage", protected, controller.UpdateHomepage)

	// Settings Routes
	settings := api.Group("/settings")
	settings.Get("/", protected, controller.GetSettings)
	settings.Get("/key", protected, controller.GetSetting)
	settings.Post("/", protected, controller.UpdateSetting)
	settings.Put("/", protected, controller.ReplaceSetting)
	settings.Patch("/visit", controller.IncrementVisitors)

	// Product Routes
	api.Get("/products", controller.GetProducts)
	api.Post("/products", protected, controller.CreateProduct)
	api.Put("/products/:id?", protected, controller.UpdateProduct)
	api.Delete("/products/:id?", protected, controller.DeleteProduct)

	// Appointment Routes
	api.Get("/appointments", protected, controller.GetAppointments)
	api.Post("/appointments", controller.CreateAppointment)
	api.Patch("/appointments", protected, controller.UpdateAppointmentStatus)
	api.Delete("/appointments", protected, controller.DeleteAppointment)

	// Navigation Routes
	api.Get("/navigation", controller.GetNavigation)
	api.Put("/navigation", protected, controller.UpdateNavigation)

	// Admin-only Tooling
	api.Get("/dashboard", protected, controller.GetDashboard)
	api.Post("/uploads", protected, controller.UploadImages)
	api.Post("/revalidate", protected, controller.RevalidatePath)

	// Yerel depolama modunda yüklenen dosyaları servis et
	if cfg.Storage.Bucket == "" {
		app.Static("/uploads", cfg.Storage.LocalUploadRoot)
	}
}

func main() {
	cfg := config.Load()

	jwt.Init(cfg.Auth.JWTSecret)
	controller.InitAuth(cfg.Auth)
	controller.InitNotifications(cfg.Email.NotifyTo)

	if cfg.Email.ResendAPIKey != "" {
		if err := email.InitEmailService(cfg.Email.ResendAPIKey, cfg.Email.From); err != nil {
			log.Fatal("Could not initialize email service:", err)
		}
		log.Printf("Email service initialized")
	} else {
		log.Printf("RESEND_API_KEY not set, email notifications disabled")
	}

	// Kalıcılık katmanı: DATABASE_URL varsa Postgres, yoksa yerel JSON
	var (
		settingsStore store.SettingsStore
		productsStore store.ProductsStore
	)

	fileSettings := store.NewFileSettingsStore(filepath.Join(cfg.DataDir, "settings-fallback.json"))
	fileProducts := store.NewFileProductsStore(filepath.Join(cfg.DataDir, "products-fallback.json"))

	if cfg.DatabaseURL != "" {
		database.InitDB(cfg.DatabaseURL)
		if err := database.MigrateDatabase(
			&model.Setting{},
			&model.Product{},
		); err != nil {
			log.Printf("Migration warning: %v", err)
		}

		dbSettings := store.NewDBSettingsStore(database.GetDB())
		settingsStore = store.NewFallbackSettingsStore(dbSettings, fileSettings)
		productsStore = store.NewDBProductsStore(database.GetDB(), settingsStore, fileProducts)
		log.Printf("Using database persistence with local fallback")
	} else {
		settingsStore = fileSettings
		productsStore = fileProducts
		log.Printf("DATABASE_URL not set, using local JSON persistence")
	}

	appointmentsStore := store.NewAppointmentsStore(settingsStore)

	seed.SeedDefaultSettings(settingsStore)

	var fileStorage storage.Storage
	if cfg.Storage.Bucket != "" {
		s3Storage, err := storage.NewS3Storage(storage.S3Config{
			Bucket:        cfg.Storage.Bucket,
			Endpoint:      cfg.Storage.Endpoint,
			Region:        cfg.Storage.Region,
			AccessKey:     cfg.Storage.AccessKey,
			SecretKey:     cfg.Storage.SecretKey,
			PublicBaseURL: cfg.Storage.PublicBaseURL,
		})
		if err != nil {
			log.Fatal("Could not initialize S3 storage:", err)
		}
		fileStorage = s3Storage
		log.Printf("Using S3 storage: %s", cfg.Storage.Bucket)
	} else {
		fileStorage = storage.NewLocalStorage(cfg.Storage.LocalUploadRoot)
		log.Printf("Using local storage: %s", cfg.Storage.LocalUploadRoot)
	}

	siteFetchers := fetchers.New(settingsStore, productsStore)
	revalidator := revalidate.New(cfg.RevalidateURL)

	controller.Init(settingsStore, productsStore, appointmentsStore, siteFetchers, revalidator, fileStorage)

	cron.InitAppointmentStatsCron(appointmentsStore, cfg.Email.NotifyTo)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowOriginsFunc: func(origin string) bool { return true },
	}))

	setupRoutes(app, cfg)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
