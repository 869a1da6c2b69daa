// Package store holds the read-only catalog index served over HTTP.
package store

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"dominionleague/internal/catalog"
)

var (
	ErrDuplicateID   = errors.New("duplicate id")
	ErrDuplicateName = errors.New("duplicate name")
	ErrDanglingRef   = errors.New("reference to unknown entry")
)

// Catalog indexes cards, sets and kingdoms. It is built once at startup and
// never changes afterwards, so it is safe for concurrent readers without
// locking.
type Catalog struct {
	cards       []catalog.Card
	sets        []catalog.Set
	kingdoms    []catalog.Kingdom
	cardByID    map[uint16]*catalog.Card
	cardByName  map[string]*catalog.Card
	cardByLower map[string]*catalog.Card
	setByID     map[uint8]*catalog.Set
	kingdomByLC map[string]*catalog.Kingdom
}

// NewCatalog validates cross references and builds the lookup maps. The
// slices are copied; callers may reuse theirs.
func NewCatalog(cards []catalog.Card, sets []catalog.Set, kingdoms []catalog.Kingdom) (*Catalog, error) {
	c := &Catalog{
		cards:       slices.Clone(cards),
		sets:        slices.Clone(sets),
		kingdoms:    slices.Clone(kingdoms),
		cardByID:    make(map[uint16]*catalog.Card, len(cards)),
		cardByName:  make(map[string]*catalog.Card, len(cards)),
		cardByLower: make(map[string]*catalog.Card, len(cards)),
		setByID:     make(map[uint8]*catalog.Set, len(sets)),
		kingdomByLC: make(map[string]*catalog.Kingdom, len(kingdoms)),
	}
	// Stable sorts keep the first of two equal ids in front for the duplicate check.
	slices.SortStableFunc(c.cards, func(a, b catalog.Card) int { return int(a.ID) - int(b.ID) })
	slices.SortStableFunc(c.sets, func(a, b catalog.Set) int { return int(a.ID) - int(b.ID) })

	setNames := make(map[string]bool, len(sets))
	for i := range c.sets {
		s := &c.sets[i]
		if _, exists := c.setByID[s.ID]; exists {
			return nil, fmt.Errorf("set %d: %w", s.ID, ErrDuplicateID)
		}
		lower := strings.ToLower(s.Name)
		if setNames[lower] {
			return nil, fmt.Errorf("set %q: %w", s.Name, ErrDuplicateName)
		}
		setNames[lower] = true
		c.setByID[s.ID] = s
	}

	for i := range c.cards {
		card := &c.cards[i]
		if _, exists := c.cardByID[card.ID]; exists {
			return nil, fmt.Errorf("card %d: %w", card.ID, ErrDuplicateID)
		}
		lower := strings.ToLower(card.Name)
		if _, exists := c.cardByLower[lower]; exists {
			return nil, fmt.Errorf("card %q: %w", card.Name, ErrDuplicateName)
		}
		if _, exists := c.setByID[card.SetID]; !exists {
			return nil, fmt.Errorf("card %q names set %d: %w", card.Name, card.SetID, ErrDanglingRef)
		}
		c.cardByID[card.ID] = card
		c.cardByName[card.Name] = card
		c.cardByLower[lower] = card
	}

	for i := range c.kingdoms {
		k := &c.kingdoms[i]
		lower := strings.ToLower(k.Name)
		if _, exists := c.kingdomByLC[lower]; exists {
			return nil, fmt.Errorf("kingdom %q: %w", k.Name, ErrDuplicateName)
		}
		for _, id := range k.CardIDs() {
			if _, exists := c.cardByID[id]; !exists {
				return nil, fmt.Errorf("kingdom %q names card %d: %w", k.Name, id, ErrDanglingRef)
			}
		}
		c.kingdomByLC[lower] = k
	}

	return c, nil
}

// CardByID returns the card with id.
func (c *Catalog) CardByID(id uint16) (*catalog.Card, bool) {
	card, ok := c.cardByID[id]
	return card, ok
}

// CardByName looks a card up by its exact name, then by its lowercased name.
func (c *Catalog) CardByName(name string) (*catalog.Card, bool) {
	if card, ok := c.cardByName[name]; ok {
		return card, true
	}
	card, ok := c.cardByLower[strings.ToLower(name)]
	return card, ok
}

// SetByID returns the set with id.
func (c *Catalog) SetByID(id uint8) (*catalog.Set, bool) {
	set, ok := c.setByID[id]
	return set, ok
}

// Kingdom returns the kingdom called name, ignoring case.
func (c *Catalog) Kingdom(name string) (*catalog.Kingdom, bool) {
	k, ok := c.kingdomByLC[strings.ToLower(name)]
	return k, ok
}

// KingdomCards resolves the card ids of k, basic cards first.
func (c *Catalog) KingdomCards(k *catalog.Kingdom) []catalog.Card {
	ids := k.CardIDs()
	cards := make([]catalog.Card, 0, len(ids))
	for _, id := range ids {
		if card, ok := c.cardByID[id]; ok {
			cards = append(cards, *card)
		}
	}
	return cards
}

// Cards returns all cards ordered by id.
func (c *Catalog) Cards() []catalog.Card {
	return slices.Clone(c.cards)
}

// Sets returns all sets ordered by id.
func (c *Catalog) Sets() []catalog.Set {
	return slices.Clone(c.sets)
}

// Kingdoms returns all kingdoms in document order.
func (c *Catalog) Kingdoms() []catalog.Kingdom {
	return slices.Clone(c.kingdoms)
}

// Stats summarizes the catalog for startup logging.
func (c *Catalog) Stats() (cards, sets, kingdoms int) {
	return len(c.cards), len(c.sets), len(c.kingdoms)
}
