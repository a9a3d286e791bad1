package readings

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/moonveil/tarot-backend/internal/models"
	"github.com/moonveil/tarot-backend/internal/tarot"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrEmptyCards        = errors.New("a reading must contain at least one card")
	ErrTooManyCards      = errors.New("card count exceeds the spread size")
	ErrInvalidCard       = errors.New("card entry is missing name or meaning")
	ErrDuplicateCardName = errors.New("a reading cannot contain the same card twice")
)

// CardSnapshot is the persisted form of a drawn card. The catalog ID
// and image are deliberately not stored; the name and resolved meaning
// are enough to display history and survive catalog changes.
type CardSnapshot struct {
	Name       string        `json:"name"`
	IsReversed bool          `json:"is_reversed"`
	Meaning    tarot.Meaning `json:"meaning"`
}

// Service persists and retrieves readings on behalf of an
// authenticated owner. Each Save is a single-row insert; there are no
// updates and no multi-record transactions.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Save validates and writes one reading. ID and CreatedAt are
// server-assigned. A card count below the spread size is accepted
// (a catalog smaller than the spread yields a short draw); a count
// above it is rejected.
func (s *Service) Save(userID uuid.UUID, theme tarot.Theme, spread tarot.SpreadType, cards []CardSnapshot) (*models.Reading, error) {
	if _, err := tarot.ParseTheme(string(theme)); err != nil {
		return nil, err
	}
	if _, err := tarot.ParseSpread(string(spread)); err != nil {
		return nil, err
	}
	if err := validateCards(cards, spread.CardCount()); err != nil {
		return nil, err
	}

	raw, err := json.Marshal(cards)
	if err != nil {
		return nil, fmt.Errorf("encode cards: %w", err)
	}

	reading := models.Reading{
		ID:         uuid.New(),
		UserID:     userID,
		Theme:      string(theme),
		SpreadType: string(spread),
		Cards:      datatypes.JSON(raw),
	}

	if err := s.db.Create(&reading).Error; err != nil {
		return nil, fmt.Errorf("save reading: %w", err)
	}
	return &reading, nil
}

// ListByOwner returns all readings of one owner, newest first. The
// owner filter lives here, not in the transport layer, so no route
// wiring mistake can leak another user's history.
func (s *Service) ListByOwner(userID uuid.UUID) ([]models.Reading, error) {
	var rs []models.Reading
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&rs).Error
	if err != nil {
		return nil, fmt.Errorf("list readings: %w", err)
	}
	return rs, nil
}

func validateCards(cards []CardSnapshot, max int) error {
	if len(cards) == 0 {
		return ErrEmptyCards
	}
	if len(cards) > max {
		return ErrTooManyCards
	}
	seen := make(map[string]bool, len(cards))
	for _, c := range cards {
		if c.Name == "" || c.Meaning.Summary == "" {
			return ErrInvalidCard
		}
		if seen[c.Name] {
			return ErrDuplicateCardName
		}
		seen[c.Name] = true
	}
	return nil
}
