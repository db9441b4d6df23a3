package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/databaseconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/envconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/logconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/redisconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/sessionconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/database/seeders"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/models"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/packages/imagehost"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/routes"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/scheduler"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	envconfig.LoadIfDev()

	logconfig.InitLogger()
	defer logconfig.SyncLogger()

	databaseconfig.InitDB()
	defer databaseconfig.CloseDB()

	redisconfig.InitRedis()
	defer redisconfig.CloseRedis()

	sessionconfig.InitSession()

	locationService := services.NewLocationService()
	runSeeds(locationService)

	cleanupService := services.NewCleanupService(imagehost.NewHTTPClientFromEnv())

	// Safety net behind the external cron trigger; held here for the whole
	// process lifetime so the job cannot be scheduled twice.
	cleanupScheduler := scheduler.New("image-cleanup", 30*24*time.Hour, func(ctx context.Context) error {
		_, err := cleanupService.ReconcileImages(ctx)
		return err
	})
	cleanupScheduler.Start()
	defer cleanupScheduler.Stop()

	engine := html.New("./views", ".html")
	if !envconfig.IsProd() {
		engine.Reload(true)
	}

	app := fiber.New(fiber.Config{
		Views:        engine,
		Prefork:      false,
		IdleTimeout:  60 * time.Second,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    10 * 1024 * 1024,

		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"127.0.0.1", "::1"},
		ProxyHeader:             "CF-Connecting-IP",

		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				if !envconfig.IsProd() {
					message = e.Message
				}
			}

			logconfig.Log.Error("Fiber request error",
				zap.Error(err),
				zap.Int("status_code", code),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
			)
			return c.Status(code).SendString(message)
		},
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		db, _ := databaseconfig.GetDB().DB()
		dbOk := db.Ping() == nil

		redisOk := true
		if client := redisconfig.GetClient(); client != nil {
			redisOk = client.Ping(c.Context()).Err() == nil
		}

		status := 200
		if !dbOk {
			status = 503
		}

		return c.Status(status).JSON(fiber.Map{
			"ok":        dbOk,
			"database":  dbOk,
			"redis":     redisOk,
			"timestamp": time.Now().Unix(),
		})
	})

	app.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/.well-known") {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	})

	app.Use(recover.New())

	app.Static("/public", "./public", fiber.Static{
		ByteRange: true,
		Browse:    false,
	})

	routes.SetupRoutes(app, cleanupService)

	startServer(app)
}

// runSeeds rebuilds the administrative hierarchy when asked to (a boundary
// dataset update) or when the database is empty, then makes sure the admin
// account exists.
func runSeeds(locationService services.ILocationService) {
	db := databaseconfig.GetDB()

	seedBoundary := envconfig.Bool("SEED_BOUNDARY", false)
	if !seedBoundary {
		var count int64
		if err := db.Model(&models.District{}).Count(&count).Error; err == nil && count == 0 {
			seedBoundary = true
		}
	}

	if seedBoundary {
		if err := seeders.SeedBoundaryData(db); err != nil {
			logconfig.Log.Fatal("Boundary seed failed", zap.Error(err))
		}
		locationService.InvalidateCache(context.Background())
	}

	if err := seeders.SeedAdminUser(db); err != nil {
		logconfig.Log.Fatal("Admin seed failed", zap.Error(err))
	}
}

func startServer(app *fiber.App) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port := envconfig.Int("APP_PORT", 3000)
	host := envconfig.String("APP_HOST", "127.0.0.1")
	address := host + ":" + strconv.Itoa(port)

	baseURL := envconfig.String("APP_BASE_URL", "")
	if baseURL == "" {
		if envconfig.IsProd() {
			logconfig.Log.Fatal("APP_BASE_URL must be set in production")
		}
		baseURL = "http://localhost:" + strconv.Itoa(port)
	}
	if envconfig.IsProd() && !strings.HasPrefix(baseURL, "https://") {
		logconfig.Log.Warn("APP_BASE_URL is not HTTPS", zap.String("base_url", baseURL))
	}

	go func() {
		logconfig.SLog.Infow("Server listening",
			"env", envconfig.String("APP_ENV", "development"),
			"listen", address,
			"base_url", baseURL,
		)
		if err := app.Listen(address); err != nil {
			logconfig.Log.Fatal("Server could not listen", zap.String("address", address), zap.Error(err))
		}
	}()

	<-ctx.Done()
	logconfig.Log.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logconfig.Log.Error("Server shutdown failed", zap.Error(err))
	} else {
		logconfig.Log.Info("Server stopped")
	}
}
