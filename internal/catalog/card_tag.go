package catalog

import "fmt"

// CardTag labels a gameplay effect of a card. The string values are the
// catalog's wire format and are kept exactly as the data spells them.
type CardTag string

const (
	// Action
	TagCanReplaceAction  CardTag = "CanReplaceAction"
	TagWillReplaceAction CardTag = "WillReplaceAction"
	TagCanGainAction     CardTag = "CanGainAction"
	TagWillGainAction    CardTag = "WillGainAction"

	// Cards in hand
	TagCanReplaceCard  CardTag = "CanReplaceCard"
	TagWillReplaceCard CardTag = "WillReplaceCard"
	TagCanDrawCard     CardTag = "CanDrawCard"
	TagNetGainCards    CardTag = "NetGainCards"
	TagNetLoseCards    CardTag = "NetLoseCards"

	// Discard
	TagCanDiscardCard  CardTag = "CanDiscardCard"
	TagWillDiscardCard CardTag = "WillDiscardCard"
	TagDiscardFromDeck CardTag = "DiscardFromDeck"

	// Gaining
	TagWillGainCard             CardTag = "WillGainCard"
	TagWillGainCardUnder4       CardTag = "WillGainCardUnder4"
	TagWillGainCardToHandUnder4 CardTag = "WillGainCardToHandUnder4"
	TagWillGainCardUnder5       CardTag = "WillGainCardUnder5"
	TagWillGainCardToHandUnder5 CardTag = "WillGainCardToHandUnder5"
	TagGainGold                 CardTag = "GainGold"
	TagGainSilver               CardTag = "GainSilver"
	TagGainCopper               CardTag = "GainCopper"

	// Trashing
	TagTrashFromHand         CardTag = "TrashFromHand"
	TagTrashMultipleFromHand CardTag = "TrashMultipleFromHand"
	TagTrashForBenefit       CardTag = "TrashForBenefit"
	TagTrashToGain           CardTag = "TrashToGain"
	TagTrashTreasure         CardTag = "TrashTreasre"
	TagTrashAction           CardTag = "TrashAction"
	TagTrashVictory          CardTag = "TrashVictory"
	TagTrashCurse            CardTag = "TrashCurse"
	TagTrashSelf             CardTag = "TrashSelf"
	TagTrashFromDeck         CardTag = "TrashFromDeck"

	// Buys
	TagCanGainBuy  CardTag = "CanGainBuy"
	TagWillGainBuy CardTag = "WillGainBuy"

	// Coin
	TagCanGainCoin  CardTag = "CanGainCoin"
	TagWillGainCoin CardTag = "WillGainCoin"

	// Misc
	TagProtectionFromAttack   CardTag = "ProtectionFromAttack"
	TagWeakerForEmptySupply   CardTag = "WeakerForEmptySupply"
	TagStrongerForEmptySupply CardTag = "StrongerForEmptySuppy"
	TagUsesActionInHand       CardTag = "UsesActionInHand"

	// Deck order
	TagControlsTopOfDeck  CardTag = "ControlsTopOfDeck"
	TagAddCardToTopOfDeck CardTag = "AddCardToTopOfDeck"

	// Attacks
	TagCurseAttack              CardTag = "CurseAttack"
	TagTrashingAttack           CardTag = "TrashingAttack"
	TagDiscardingAttack         CardTag = "DiscardingAttack"
	TagDiscardToTopOfDeckAttack CardTag = "DiscardToTopOfDeckAttack"

	// Costs
	TagCosts0 CardTag = "Costs0"
	TagCosts1 CardTag = "Costs1"
	TagCosts2 CardTag = "Costs2"
	TagCosts3 CardTag = "Costs3"
	TagCosts4 CardTag = "Costs4"
	TagCosts5 CardTag = "Costs5"
	TagCosts6 CardTag = "Costs6"
	TagCosts7 CardTag = "Costs7"
	TagCosts8 CardTag = "Costs8"

	// Types
	TagIsAction   CardTag = "IsAction"
	TagIsTreasure CardTag = "IsTreasure"
	TagIsVictory  CardTag = "IsVictory"
	TagIsCurse    CardTag = "IsCurse"
	TagIsAttack   CardTag = "IsAttack"
	TagIsReaction CardTag = "IsReaction"
)

var knownTags = map[CardTag]struct{}{}

func init() {
	for _, t := range []CardTag{
		TagCanReplaceAction, TagWillReplaceAction, TagCanGainAction, TagWillGainAction,
		TagCanReplaceCard, TagWillReplaceCard, TagCanDrawCard, TagNetGainCards, TagNetLoseCards,
		TagCanDiscardCard, TagWillDiscardCard, TagDiscardFromDeck,
		TagWillGainCard, TagWillGainCardUnder4, TagWillGainCardToHandUnder4,
		TagWillGainCardUnder5, TagWillGainCardToHandUnder5, TagGainGold, TagGainSilver, TagGainCopper,
		TagTrashFromHand, TagTrashMultipleFromHand, TagTrashForBenefit, TagTrashToGain,
		TagTrashTreasure, TagTrashAction, TagTrashVictory, TagTrashCurse, TagTrashSelf, TagTrashFromDeck,
		TagCanGainBuy, TagWillGainBuy, TagCanGainCoin, TagWillGainCoin,
		TagProtectionFromAttack, TagWeakerForEmptySupply, TagStrongerForEmptySupply, TagUsesActionInHand,
		TagControlsTopOfDeck, TagAddCardToTopOfDeck,
		TagCurseAttack, TagTrashingAttack, TagDiscardingAttack, TagDiscardToTopOfDeckAttack,
		TagCosts0, TagCosts1, TagCosts2, TagCosts3, TagCosts4, TagCosts5, TagCosts6, TagCosts7, TagCosts8,
		TagIsAction, TagIsTreasure, TagIsVictory, TagIsCurse, TagIsAttack, TagIsReaction,
	} {
		knownTags[t] = struct{}{}
	}
}

// Valid reports whether t is one of the known tags.
func (t CardTag) Valid() bool {
	_, ok := knownTags[t]
	return ok
}

// UnmarshalText rejects tags outside the closed set.
func (t *CardTag) UnmarshalText(text []byte) error {
	tag := CardTag(text)
	if !tag.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTag, string(text))
	}
	*t = tag
	return nil
}
