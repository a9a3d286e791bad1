package tarot

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed data/*.json
var deckFS embed.FS

const deckFile = "data/major_arcana.json"

// Catalog is the read-only card lookup the generator draws from.
type Catalog interface {
	// Lookup returns the card with the given ID, or ErrCardNotFound.
	Lookup(cardID string) (Card, error)

	// All returns every card in the catalog. Order is unspecified but
	// stable for the lifetime of the process.
	All() []Card

	// MeaningFor resolves the meaning for a card, theme and orientation,
	// applying the documented fallback tiers.
	MeaningFor(cardID string, theme Theme, reversed bool) (Meaning, error)
}

// emptyMeaning is the last-resort fallback when neither the requested
// theme nor the default key exists on a card.
var emptyMeaning = Meaning{Summary: "no meaning available", Details: []string{}}

// ResolveMeaning picks the meaning text for one card, theme and
// orientation. Fallback tiers: exact theme, then the "default" theme
// key, then an empty placeholder. It never fails.
func ResolveMeaning(card Card, theme Theme, reversed bool) Meaning {
	om, ok := card.Meanings[string(theme)]
	if !ok {
		om, ok = card.Meanings[themeDefault]
	}
	if !ok {
		return emptyMeaning
	}
	if reversed {
		return om.Reversed
	}
	return om.Upright
}

// EmbeddedCatalog serves the deck compiled into the binary. Loading
// happens once on first use.
type EmbeddedCatalog struct {
	once  sync.Once
	cards []Card
	byID  map[string]Card
	err   error
}

func NewEmbeddedCatalog() *EmbeddedCatalog {
	return &EmbeddedCatalog{}
}

func (c *EmbeddedCatalog) init() {
	raw, err := deckFS.ReadFile(deckFile)
	if err != nil {
		c.err = fmt.Errorf("read embedded deck: %w", err)
		return
	}
	if err := json.Unmarshal(raw, &c.cards); err != nil {
		c.err = fmt.Errorf("parse embedded deck: %w", err)
		return
	}
	c.byID = make(map[string]Card, len(c.cards))
	for _, card := range c.cards {
		c.byID[card.ID] = card
	}
}

// Load forces initialization and reports any deck parse error. Called
// at startup so a broken deck fails fast instead of at first draw.
func (c *EmbeddedCatalog) Load() error {
	c.once.Do(c.init)
	return c.err
}

func (c *EmbeddedCatalog) Lookup(cardID string) (Card, error) {
	c.once.Do(c.init)
	if c.err != nil {
		return Card{}, c.err
	}
	card, ok := c.byID[cardID]
	if !ok {
		return Card{}, ErrCardNotFound
	}
	return card, nil
}

func (c *EmbeddedCatalog) All() []Card {
	c.once.Do(c.init)
	return c.cards
}

func (c *EmbeddedCatalog) MeaningFor(cardID string, theme Theme, reversed bool) (Meaning, error) {
	card, err := c.Lookup(cardID)
	if err != nil {
		return Meaning{}, err
	}
	return ResolveMeaning(card, theme, reversed), nil
}
