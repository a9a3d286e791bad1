package tarot

// Meaning is the interpretation text attached to a card for one
// theme and one orientation.
type Meaning struct {
	Summary string   `json:"summary"`
	Details []string `json:"details"`
}

// OrientationMeanings holds both orientations of a theme's meaning.
type OrientationMeanings struct {
	Upright  Meaning `json:"upright"`
	Reversed Meaning `json:"reversed"`
}

// Card is a single entry in the card catalog. Catalog data is loaded
// once at startup and never mutated afterwards.
type Card struct {
	ID       string                         `json:"id"`
	Name     string                         `json:"name"`
	Arcana   string                         `json:"type"`
	Image    string                         `json:"image"`
	Meanings map[string]OrientationMeanings `json:"meanings"`
}

// DrawnCard is one card of a generated reading. Name and meaning are
// copied at draw time so a saved reading stays stable even if the
// catalog changes later.
type DrawnCard struct {
	CardID     string  `json:"card_id"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	IsReversed bool    `json:"is_reversed"`
	Meaning    Meaning `json:"meaning"`
}
