package catalog

import (
	"testing"

	"dominionleague"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCards_Embedded(t *testing.T) {
	cards, err := LoadCards(dominionleague.CardsJSON)
	require.NoError(t, err)
	require.NotEmpty(t, cards)

	assert.Equal(t, uint16(0), cards[0].ID)
	assert.Equal(t, "Copper", cards[0].Name)

	// Basic cards are numbered from zero without gaps.
	for i, card := range cards {
		if !card.BasicCard {
			break
		}
		assert.Equal(t, uint16(i), card.ID)
	}
}

func TestLoadSets_Embedded(t *testing.T) {
	sets, err := LoadSets(dominionleague.SetsJSON)
	require.NoError(t, err)
	require.NotEmpty(t, sets)

	assert.Equal(t, uint8(1), sets[0].ID)
	assert.Equal(t, "Dominion", sets[0].Name)
	assert.Equal(t, []int{1, 2}, sets[0].Editions)
	assert.Len(t, sets[0].CoverArtURL, 2)
	assert.Len(t, sets[0].RuleBookURL, 2)
	assert.Len(t, sets[0].IconURL, 2)

	for i, set := range sets {
		assert.Equal(t, uint8(i+1), set.ID)
	}
}

func TestLoadKingdoms_Embedded(t *testing.T) {
	kingdoms, err := LoadKingdoms(dominionleague.KingdomsYAML)
	require.NoError(t, err)
	require.NotEmpty(t, kingdoms)
	assert.Equal(t, "First Game", kingdoms[0].Name)
	assert.Len(t, kingdoms[0].SupplyCardIDs, 10)
}

func TestLoadCards_Errors(t *testing.T) {
	t.Run("misaligned art", func(t *testing.T) {
		_, err := LoadCards([]byte(`[{"id":1,"name":"x","editions":[1,2],"art_url":["a"]}]`))
		assert.ErrorIs(t, err, ErrMisalignedArt)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := LoadCards([]byte(`[{"id":`))
		assert.Error(t, err)
	})
}

func TestLoadSets_Errors(t *testing.T) {
	_, err := LoadSets([]byte(`[{"id":1,"name":"x","editions":[1],"cover_art_url":[],"rule_book_url":["r"],"icon_url":["i"]}]`))
	assert.ErrorIs(t, err, ErrConstruction)
}

func TestLoadKingdoms_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing name", "kingdoms:\n  - supply_card_ids: [100]\n"},
		{"no supply cards", "kingdoms:\n  - name: Empty\n"},
		{"bad yaml", "kingdoms: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadKingdoms([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestKingdom_CardIDs(t *testing.T) {
	k := Kingdom{Name: "k", SupplyCardIDs: []uint16{100, 101}, BasicCardIDs: []uint16{0}}
	assert.Equal(t, []uint16{0, 100, 101}, k.CardIDs())
}
