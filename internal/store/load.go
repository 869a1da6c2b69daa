package store

import (
	"fmt"

	"dominionleague/internal/catalog"
)

// Load parses the three catalog documents and indexes them.
func Load(cardsJSON, setsJSON, kingdomsYAML []byte) (*Catalog, error) {
	cards, err := catalog.LoadCards(cardsJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to load cards: %w", err)
	}
	sets, err := catalog.LoadSets(setsJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to load sets: %w", err)
	}
	kingdoms, err := catalog.LoadKingdoms(kingdomsYAML)
	if err != nil {
		return nil, fmt.Errorf("failed to load kingdoms: %w", err)
	}
	return NewCatalog(cards, sets, kingdoms)
}
