package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrConstruction  = errors.New("must have one or more editions each with cover_art_url, rule_book_url and icon_url")
	ErrMisalignedArt = errors.New("editions and art_url must have the same length")
	ErrBadEdition    = errors.New("editions must be unique positive numbers")
	ErrUnknownTag    = errors.New("unknown card tag")
	ErrUnknownType   = errors.New("unknown card type")
)

// ConstructionError reports a Set whose edition and URL sequences disagree.
type ConstructionError struct {
	SetID    uint8
	Name     string
	Editions int
	Covers   int
	Rules    int
	Icons    int
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("set %d (%q): %v (editions=%d cover_art_url=%d rule_book_url=%d icon_url=%d)",
		e.SetID, e.Name, ErrConstruction, e.Editions, e.Covers, e.Rules, e.Icons)
}

// Is lets errors.Is(err, ErrConstruction) match.
func (e *ConstructionError) Is(target error) bool {
	return target == ErrConstruction
}
