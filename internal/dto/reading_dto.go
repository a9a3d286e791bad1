package dto

import (
	"github.com/moonveil/tarot-backend/internal/models"
	"github.com/moonveil/tarot-backend/internal/readings"
	"github.com/moonveil/tarot-backend/internal/tarot"
)

type DrawRequest struct {
	Theme      string `json:"theme"`
	SpreadType string `json:"spread_type"`
}

type DrawResponse struct {
	Theme      string            `json:"theme"`
	SpreadType string            `json:"spread_type"`
	Cards      []tarot.DrawnCard `json:"cards"`
}

type SpreadOption struct {
	Type      string `json:"type"`
	CardCount int    `json:"card_count"`
}

type OptionsResponse struct {
	Themes  []string       `json:"themes"`
	Spreads []SpreadOption `json:"spreads"`
}

type CreateReadingRequest struct {
	Theme      string                  `json:"theme"`
	SpreadType string                  `json:"spread_type"`
	Cards      []readings.CardSnapshot `json:"cards"`
}

type HistoryResponse struct {
	Items      []models.Reading `json:"items"`
	TotalItems int              `json:"total_items"`
	TotalPages int              `json:"total_pages"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
}
