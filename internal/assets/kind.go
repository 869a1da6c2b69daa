package assets

import (
	"fmt"
	"path"
	"strings"
)

// Kind selects which file of an entity a path is built for.
type Kind int

const (
	KindCardArt Kind = iota
	KindSetCover
	KindSetRulebook
	KindSetIcon
)

// SetKinds lists the per-edition set assets in download order.
var SetKinds = []Kind{KindSetCover, KindSetRulebook, KindSetIcon}

func (k Kind) String() string {
	switch k {
	case KindCardArt:
		return "art"
	case KindSetCover:
		return "cover"
	case KindSetRulebook:
		return "rules"
	case KindSetIcon:
		return "icon"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts the names produced by String.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "art":
		return KindCardArt, nil
	case "cover":
		return KindSetCover, nil
	case "rules":
		return KindSetRulebook, nil
	case "icon":
		return KindSetIcon, nil
	}
	return 0, fmt.Errorf("unknown asset kind %q", s)
}

// RelativePath returns the slash-separated location of the asset below the
// storage root, given an already sanitized name.
func (k Kind) RelativePath(sanitized string) (string, error) {
	switch k {
	case KindCardArt:
		return path.Join("cards", sanitized+".jpeg"), nil
	case KindSetCover:
		return path.Join(sanitized, "cover.png"), nil
	case KindSetRulebook:
		return path.Join(sanitized, "rules.pdf"), nil
	case KindSetIcon:
		return path.Join(sanitized, "icon.png"), nil
	default:
		return "", fmt.Errorf("unknown asset kind %d", int(k))
	}
}
