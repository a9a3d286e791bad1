package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/moonveil/tarot-backend/internal/database"
	"github.com/moonveil/tarot-backend/internal/dto"
	"github.com/moonveil/tarot-backend/internal/tarot"
)

type HealthHandler struct {
	catalog tarot.Catalog
}

func NewHealthHandler(catalog tarot.Catalog) *HealthHandler {
	return &HealthHandler{catalog: catalog}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
		DeckSize:  len(h.catalog.All()),
	})
}
