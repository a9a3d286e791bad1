package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/moonveil/tarot-backend/internal/config"
	"github.com/moonveil/tarot-backend/internal/dto"
	"github.com/moonveil/tarot-backend/internal/middleware"
	"github.com/moonveil/tarot-backend/internal/readings"
	"github.com/moonveil/tarot-backend/internal/tarot"
)

type ReadingHandler struct {
	generator *tarot.Generator
	store     *readings.Service
	cfg       *config.Config
}

func NewReadingHandler(generator *tarot.Generator, store *readings.Service, cfg *config.Config) *ReadingHandler {
	return &ReadingHandler{generator: generator, store: store, cfg: cfg}
}

// Options lists the themes and spread types a draw accepts, so
// clients can build their pickers without hardcoding the values.
func (h *ReadingHandler) Options(c *fiber.Ctx) error {
	themes := tarot.Themes()
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = string(t)
	}

	spreads := tarot.Spreads()
	opts := make([]dto.SpreadOption, len(spreads))
	for i, s := range spreads {
		opts[i] = dto.SpreadOption{Type: string(s), CardCount: s.CardCount()}
	}

	return c.JSON(dto.OptionsResponse{Themes: names, Spreads: opts})
}

// Draw generates a reading preview. Nothing is persisted; guests may
// draw without signing in.
func (h *ReadingHandler) Draw(c *fiber.Ctx) error {
	var req dto.DrawRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	theme, err := tarot.ParseTheme(req.Theme)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	spread, err := tarot.ParseSpread(req.SpreadType)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	cards, err := h.generator.Draw(theme, spread)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to draw cards",
		})
	}

	return c.JSON(dto.DrawResponse{
		Theme:      string(theme),
		SpreadType: string(spread),
		Cards:      cards,
	})
}

// Create persists a confirmed reading for the signed-in user.
func (h *ReadingHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateReadingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	reading, err := h.store.Save(userID, tarot.Theme(req.Theme), tarot.SpreadType(req.SpreadType), req.Cards)
	if err != nil {
		if errors.Is(err, tarot.ErrInvalidTheme) ||
			errors.Is(err, tarot.ErrInvalidSpread) ||
			errors.Is(err, readings.ErrEmptyCards) ||
			errors.Is(err, readings.ErrTooManyCards) ||
			errors.Is(err, readings.ErrInvalidCard) ||
			errors.Is(err, readings.ErrDuplicateCardName) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save reading",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(reading)
}

// List returns the signed-in user's history with optional rolling
// date window, sort direction and pagination.
func (h *ReadingHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	rs, err := h.store.ListByOwner(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch readings",
		})
	}

	if name := c.Query("range", "all"); name != "all" {
		start, ok := readings.RangeWindow(name, time.Now())
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "unknown range: " + name,
			})
		}
		rs = readings.FilterByDateRange(rs, start, time.Time{})
	}

	order := readings.SortOrder(c.Query("sort", string(readings.SortNewest)))
	if order != readings.SortNewest && order != readings.SortOldest {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "sort must be newest or oldest",
		})
	}
	rs = readings.SortByDate(rs, order)

	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", strconv.Itoa(h.cfg.DefaultPageSize)))
	if pageSize < 1 || pageSize > h.cfg.MaxPageSize {
		pageSize = h.cfg.DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	result := readings.Paginate(rs, page, pageSize)

	return c.JSON(dto.HistoryResponse{
		Items:      result.Items,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
		Page:       page,
		PageSize:   pageSize,
	})
}
