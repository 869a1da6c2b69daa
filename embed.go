package dominionleague

import (
	_ "embed"
)

// Catalog documents, embedded so the server and the scraper share one copy.
//
//go:embed static/cards.json
var CardsJSON []byte

//go:embed static/sets.json
var SetsJSON []byte

//go:embed static/kingdoms.yaml
var KingdomsYAML []byte
