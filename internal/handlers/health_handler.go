package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pumpshop/seed/internal/database"
	"github.com/pumpshop/seed/internal/dto"
	"github.com/pumpshop/seed/internal/services"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db   *gorm.DB
	shop *services.ShopService
}

// NewHealthHandler accepts a nil db when the API serves generated data only.
func NewHealthHandler(db *gorm.DB, shop *services.ShopService) *HealthHandler {
	return &HealthHandler{db: db, shop: shop}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "not configured"
	if h.db != nil {
		dbStatus = "ok"
		if err := database.Ping(h.db); err != nil {
			dbStatus = "unhealthy: " + err.Error()
		}
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
		Jobs:      h.shop.JobCount(),
	})
}
