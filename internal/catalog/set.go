package catalog

import (
	"encoding/json"
	"slices"
)

// Set is a released box of the game. The three URL slices are aligned with
// Editions by index. Build one with NewSet; the zero value is not usable.
type Set struct {
	ID          uint8    `json:"id"`
	Name        string   `json:"name"`
	Editions    []int    `json:"editions"`
	CoverArtURL []string `json:"cover_art_url"`
	RuleBookURL []string `json:"rule_book_url"`
	IconURL     []string `json:"icon_url"`
}

// NewSet returns a Set or a *ConstructionError when editions is empty or any
// URL slice does not match it in length.
func NewSet(id uint8, name string, editions []int, coverArtURL, ruleBookURL, iconURL []string) (Set, error) {
	n := len(editions)
	if n == 0 || len(coverArtURL) != n || len(ruleBookURL) != n || len(iconURL) != n {
		return Set{}, &ConstructionError{
			SetID:    id,
			Name:     name,
			Editions: n,
			Covers:   len(coverArtURL),
			Rules:    len(ruleBookURL),
			Icons:    len(iconURL),
		}
	}
	if err := checkEditions(editions); err != nil {
		return Set{}, err
	}
	return Set{
		ID:          id,
		Name:        name,
		Editions:    editions,
		CoverArtURL: coverArtURL,
		RuleBookURL: ruleBookURL,
		IconURL:     iconURL,
	}, nil
}

// setJSON has the same fields as Set without its UnmarshalJSON method.
type setJSON Set

// UnmarshalJSON decodes through NewSet so a decoded Set always holds its
// invariants.
func (s *Set) UnmarshalJSON(data []byte) error {
	var raw setJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	set, err := NewSet(raw.ID, raw.Name, raw.Editions, raw.CoverArtURL, raw.RuleBookURL, raw.IconURL)
	if err != nil {
		return err
	}
	*s = set
	return nil
}

func (s *Set) AssetName() string {
	return s.Name
}

func (s *Set) AssetEditions() []int {
	return s.Editions
}

// HasEdition reports whether the set was released in edition.
func (s *Set) HasEdition(edition int) bool {
	return slices.Contains(s.Editions, edition)
}
