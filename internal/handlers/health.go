package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const healthTimeout = 2 * time.Second

type HealthHandler struct {
	db    *gorm.DB
	redis *redis.Client
}

// NewHealthHandler reports on db and, when non-nil, redis.
func NewHealthHandler(db *gorm.DB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, redis: redisClient}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
	defer cancel()

	status := fiber.StatusOK
	database := "connected"
	if err := h.pingDB(ctx); err != nil {
		status = fiber.StatusServiceUnavailable
		database = "unavailable"
	}

	cache := "disabled"
	if h.redis != nil {
		cache = "connected"
		if err := h.redis.Ping(ctx).Err(); err != nil {
			cache = "unavailable"
		}
	}

	overall := "ok"
	if status != fiber.StatusOK {
		overall = "degraded"
	}
	return c.Status(status).JSON(fiber.Map{
		"status": overall,
		"services": fiber.Map{
			"database": database,
			"redis":    cache,
		},
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
