package handlers

import (
	"fundledger/internal/config"
	"fundledger/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Root handles the root endpoint
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return response.Success(c, "Community Fund Ledger API", fiber.Map{
		"service": "fundledger",
		"version": "1.0",
	})
}

// HealthCheck reports service and database health
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Response
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	dbStatus := "up"
	if err := config.HealthCheck(h.db); err != nil {
		dbStatus = "down"
	}

	return response.Success(c, "OK", fiber.Map{
		"database": dbStatus,
	})
}
