// Package routes defines the API routing configuration.
// It builds the fiber app, wires repositories, services and handlers,
// and registers every route with its middleware.
package routes

import (
	"time"

	"ledger/internal/config"
	"ledger/internal/handlers"
	"ledger/internal/middleware"
	"ledger/internal/repositories"
	"ledger/internal/repositories/cache"
	"ledger/internal/services/transaction"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Dependencies are the process-wide handles owned by main.
type Dependencies struct {
	DB    *gorm.DB
	Redis *redis.Client // nil when Redis is disabled
}

// NewApp creates the fiber app with the shared middleware stack.
func NewApp(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "ledger",
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE",
		AllowCredentials: true,
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	return app
}

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, cfg *config.Config, deps Dependencies) {
	var summaryCache transaction.SummaryCache = cache.NoopCache{}
	if deps.Redis != nil {
		summaryCache = cache.NewCacheService(deps.Redis, cfg.SummaryCacheTTL)
	}

	transactionRepo := repositories.NewTransactionRepository(deps.DB)
	transactionService := transaction.NewService(transactionRepo, summaryCache, transaction.Config{
		StrictSessionScope: cfg.StrictSessionScope,
	})

	transactionHandler := handlers.NewTransactionHandler(transactionService)
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.Redis)
	session := middleware.NewSessionMiddleware(cfg.Production)

	app.Get("/health", healthHandler.Check)

	setupTransactionRoutes(app.Group(cfg.RoutePrefix, rateLimiter(cfg)...), transactionHandler, session)
}

func setupTransactionRoutes(router fiber.Router, h *handlers.TransactionHandler, session *middleware.SessionMiddleware) {
	router.Post("/", session.Resolve, h.Create)
	router.Get("/", session.Require, h.List)
	// registered before /:id so it is not captured as an id
	router.Get("/resume", session.Require, h.Summary)
	router.Get("/:id", session.Require, h.Get)
	router.Put("/:id", session.Require, h.Update)
	router.Delete("/:id", session.Require, h.Delete)
}

// rateLimiter returns the per-IP limiter for the ledger group, or nothing
// when RATE_LIMIT_MAX is not positive.
func rateLimiter(cfg *config.Config) []fiber.Handler {
	if cfg.RateLimitMax <= 0 {
		return nil
	}
	window := cfg.RateLimitWindow
	if window <= 0 {
		window = time.Minute
	}
	return []fiber.Handler{limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	})}
}
