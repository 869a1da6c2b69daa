package scraper

import (
	"path/filepath"
	"strings"
)

const attributionFile = "ATTRIBUTION.txt"

const attribution = `Asset Attribution
=================

The card art, box covers, rulebooks and set icons in this directory were
downloaded from the Dominion Strategy wiki (https://wiki.dominionstrategy.com).

Dominion and all related artwork and rules text are copyright Rio Grande Games
and Donald X. Vaccarino. The artwork is credited to the respective illustrators.

This project is not produced by, endorsed by, supported by, or affiliated with
Rio Grande Games.
`

// WriteAttribution stores the attribution notice at the storage root and
// returns its path.
func (s *Scraper) WriteAttribution() (string, error) {
	path := filepath.Join(s.resolver.Root(), attributionFile)
	if _, err := writeAtomic(path, strings.NewReader(attribution)); err != nil {
		return "", err
	}
	return path, nil
}
