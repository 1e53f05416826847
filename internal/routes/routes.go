package routes

import (
	"log/slog"
	"os"
	"time"

	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/pumpshop/seed/internal/config"
	"github.com/pumpshop/seed/internal/handlers"
	"github.com/pumpshop/seed/internal/middleware"
	"github.com/pumpshop/seed/internal/models"
	"github.com/pumpshop/seed/internal/services"
	"gorm.io/gorm"
)

// NewApp builds the mock API over ds. db is only used for health checks
// and may be nil.
func NewApp(cfg *config.Config, db *gorm.DB, ds *models.Dataset) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:             1024 * 1024,
		ErrorHandler:          errorHandler,
		DisableStartupMessage: true,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
		Output: os.Stderr,
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.SecurityHeaders)

	authService := services.NewAuthService(ds, cfg)
	jobService := services.NewJobService(ds)
	shopService := services.NewShopService(ds)

	Setup(app, cfg,
		handlers.NewAuthHandler(authService),
		handlers.NewHealthHandler(db, shopService),
		handlers.NewJobHandler(authService, jobService),
		handlers.NewShopHandler(shopService),
	)
	return app
}

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	jobHandler *handlers.JobHandler,
	shopHandler *handlers.ShopHandler,
) {
	api := app.Group("/api")

	api.Get("/health", healthHandler.Check)

	// Stricter limit on login attempts per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               20,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", authHandler.Login)

	protected := api.Group("", middleware.JWTProtected(cfg))
	protected.Get("/jobs", jobHandler.List)
	protected.Get("/jobs/:jobNumber", jobHandler.Get)
	protected.Get("/dashboard/stats", jobHandler.Stats)
	protected.Get("/inventory", shopHandler.Inventory)
	protected.Get("/customers", shopHandler.Customers)
	protected.Get("/workers", shopHandler.Workers)
	protected.Get("/users", middleware.RoleRequired(models.RoleAdmin, models.RoleOwner), shopHandler.Users)
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// 5xx details stay in the log
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{"error": message})
}
