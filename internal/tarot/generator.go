package tarot

import (
	"math/rand"
	"sync"
)

// RNG abstracts random number generation so tests can inject a
// deterministic source.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// lockedRand serializes access to a rand.Rand. rand.New does not
// return a concurrency-safe source, so the handler-shared RNG must
// guard its own state.
type lockedRand struct {
	mu  sync.Mutex
	src *rand.Rand
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Intn(n)
}

// NewRand returns a seeded RNG safe for use from concurrent draws.
// Cryptographic randomness is not required here.
func NewRand(seed int64) RNG {
	return &lockedRand{src: rand.New(rand.NewSource(seed))}
}

// Generator produces reading card sequences from a catalog snapshot.
// It holds no mutable state between draws, so a single Generator may
// serve concurrent requests as long as its RNG is concurrency-safe
// (NewRand's is).
type Generator struct {
	catalog Catalog
	rng     RNG
}

func NewGenerator(catalog Catalog, rng RNG) *Generator {
	return &Generator{catalog: catalog, rng: rng}
}

// Draw samples spread.CardCount() distinct cards without replacement,
// assigns each an independent fair-coin orientation and resolves the
// meaning for the given theme. If the catalog holds fewer cards than
// the spread requires, the result is shorter; callers must not assume
// the full spread length unconditionally.
func (g *Generator) Draw(theme Theme, spread SpreadType) ([]DrawnCard, error) {
	if _, err := ParseTheme(string(theme)); err != nil {
		return nil, err
	}
	n := spread.CardCount()
	if n == 0 {
		return nil, ErrInvalidSpread
	}

	// Swap-remove pool over a copied slice: the surviving prefix is the
	// remaining pool, so one draw never repeats a card.
	pool := make([]Card, len(g.catalog.All()))
	copy(pool, g.catalog.All())
	if n > len(pool) {
		n = len(pool)
	}

	drawn := make([]DrawnCard, 0, n)
	for i := 0; i < n; i++ {
		idx := g.rng.Intn(len(pool))
		card := pool[idx]
		pool[idx] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]

		reversed := g.rng.Intn(2) == 1
		drawn = append(drawn, DrawnCard{
			CardID:     card.ID,
			Name:       card.Name,
			Image:      card.Image,
			IsReversed: reversed,
			Meaning:    ResolveMeaning(card, theme, reversed),
		})
	}
	return drawn, nil
}
