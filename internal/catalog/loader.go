package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadCards parses a JSON array of cards and validates each one. A card whose
// editions and art URLs disagree is rejected here rather than at serve time.
func LoadCards(data []byte) ([]Card, error) {
	var cards []Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("failed to parse cards: %w", err)
	}
	for i := range cards {
		if err := cards[i].Validate(); err != nil {
			return nil, err
		}
	}
	return cards, nil
}

// LoadSets parses a JSON array of sets. Each set is built through NewSet.
func LoadSets(data []byte) ([]Set, error) {
	var sets []Set
	if err := json.Unmarshal(data, &sets); err != nil {
		return nil, fmt.Errorf("failed to parse sets: %w", err)
	}
	return sets, nil
}

type kingdomDocument struct {
	Kingdoms []Kingdom `yaml:"kingdoms"`
}

// LoadKingdoms parses the YAML list of recommended kingdoms.
func LoadKingdoms(data []byte) ([]Kingdom, error) {
	var doc kingdomDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse kingdoms: %w", err)
	}
	for i, k := range doc.Kingdoms {
		if strings.TrimSpace(k.Name) == "" {
			return nil, fmt.Errorf("kingdom %d: name is required", i)
		}
		if len(k.SupplyCardIDs) == 0 {
			return nil, fmt.Errorf("kingdom %q: at least one supply card is required", k.Name)
		}
	}
	return doc.Kingdoms, nil
}
