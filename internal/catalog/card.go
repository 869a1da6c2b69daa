package catalog

import (
	"fmt"
	"slices"
)

// Card is a single card of the catalog. ArtURL is aligned with Editions by
// index: ArtURL[i] is the artwork of Editions[i].
type Card struct {
	ID                   uint16      `json:"id"`
	Name                 string      `json:"name"`
	SupplyCard           bool        `json:"supply_card"`
	BasicCard            bool        `json:"basic_card"`
	CardCounts           [5]int      `json:"card_counts"`
	SetID                uint8       `json:"set_id"`
	Editions             []int       `json:"editions"`
	CardTags             []CardTag   `json:"card_tags"`
	KingdomRequirements  [][]CardTag `json:"kingdom_requirements"`
	KingdomSynergies     [][]CardTag `json:"kingdom_synergies"`
	KingdomAntiSynergies [][]CardTag `json:"kingdom_anti_synergies"`
	CardTypes            []CardType  `json:"card_types"`
	ArtURL               []string    `json:"art_url"`
}

// AssetName returns the name artwork files are derived from.
func (c *Card) AssetName() string {
	return c.Name
}

// AssetEditions returns the printed editions of the card.
func (c *Card) AssetEditions() []int {
	return c.Editions
}

// HasEdition reports whether the card was printed in edition.
func (c *Card) HasEdition(edition int) bool {
	return slices.Contains(c.Editions, edition)
}

// LatestEdition returns the last listed edition.
func (c *Card) LatestEdition() (int, bool) {
	if len(c.Editions) == 0 {
		return 0, false
	}
	return c.Editions[len(c.Editions)-1], true
}

// HasType reports whether the card carries the given type.
func (c *Card) HasType(ct CardType) bool {
	return slices.Contains(c.CardTypes, ct)
}

// HasTag reports whether the card carries the given tag.
func (c *Card) HasTag(tag CardTag) bool {
	return slices.Contains(c.CardTags, tag)
}

// SupplyCount returns the pile size for a game of players (2 to 6).
func (c *Card) SupplyCount(players int) (int, error) {
	if players < 2 || players > 6 {
		return 0, fmt.Errorf("player count %d out of range 2-6", players)
	}
	return c.CardCounts[players-2], nil
}

// Validate checks the invariants the asset pipeline relies on.
func (c *Card) Validate() error {
	if len(c.Editions) != len(c.ArtURL) {
		return fmt.Errorf("card %d (%q): %w (editions=%d art_url=%d)",
			c.ID, c.Name, ErrMisalignedArt, len(c.Editions), len(c.ArtURL))
	}
	if err := checkEditions(c.Editions); err != nil {
		return fmt.Errorf("card %d (%q): %w", c.ID, c.Name, err)
	}
	return nil
}

func checkEditions(editions []int) error {
	seen := make(map[int]struct{}, len(editions))
	for _, e := range editions {
		if e <= 0 {
			return fmt.Errorf("%w: %d", ErrBadEdition, e)
		}
		if _, dup := seen[e]; dup {
			return fmt.Errorf("%w: %d repeated", ErrBadEdition, e)
		}
		seen[e] = struct{}{}
	}
	return nil
}
