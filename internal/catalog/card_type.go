package catalog

import "fmt"

// CardType is the printed category of a card.
type CardType string

const (
	TypeAction   CardType = "Action"
	TypeTreasure CardType = "Treasure"
	TypeVictory  CardType = "Victory"
	TypeCurse    CardType = "Curse"
	TypeAttack   CardType = "Attack"
	TypeReaction CardType = "Reaction"
)

// Valid reports whether ct is one of the known card types.
func (ct CardType) Valid() bool {
	switch ct {
	case TypeAction, TypeTreasure, TypeVictory, TypeCurse, TypeAttack, TypeReaction:
		return true
	default:
		return false
	}
}

func (ct *CardType) UnmarshalText(text []byte) error {
	v := CardType(text)
	if !v.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownType, string(text))
	}
	*ct = v
	return nil
}
