package catalog

// Kingdom is the selection of cards used to set up one game.
type Kingdom struct {
	Name          string   `json:"name" yaml:"name"`
	SupplyCardIDs []uint16 `json:"supply_card_ids" yaml:"supply_card_ids"`
	BasicCardIDs  []uint16 `json:"basic_card_ids" yaml:"basic_card_ids"`
}

// CardIDs returns basic and supply ids, basic cards first.
func (k Kingdom) CardIDs() []uint16 {
	ids := make([]uint16, 0, len(k.BasicCardIDs)+len(k.SupplyCardIDs))
	ids = append(ids, k.BasicCardIDs...)
	return append(ids, k.SupplyCardIDs...)
}
