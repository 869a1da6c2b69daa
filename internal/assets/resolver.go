package assets

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
)

var ErrUnknownEdition = errors.New("unknown edition")

// UnknownEditionError is returned when an edition is not listed on the entity.
type UnknownEditionError struct {
	Name    string
	Edition int
}

func (e *UnknownEditionError) Error() string {
	return fmt.Sprintf("%s: %v %d", e.Name, ErrUnknownEdition, e.Edition)
}

func (e *UnknownEditionError) Is(target error) bool {
	return target == ErrUnknownEdition
}

// Entity is anything with per-edition assets: cards and sets.
type Entity interface {
	AssetName() string
	AssetEditions() []int
}

// Resolver maps (entity, edition, kind) to a file below a fixed root.
type Resolver struct {
	root string
}

// NewResolver resolves root to an absolute path once.
func NewResolver(root string) (*Resolver, error) {
	if root == "" {
		return nil, fmt.Errorf("storage root cannot be empty")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage root %q: %w", root, err)
	}
	return &Resolver{root: abs}, nil
}

// Root returns the absolute storage root.
func (r *Resolver) Root() string {
	return r.root
}

// Path returns the absolute destination of one asset.
func (r *Resolver) Path(e Entity, edition int, kind Kind) (string, error) {
	rel, err := RelativePath(e, edition, kind)
	if err != nil {
		return "", err
	}
	return filepath.Join(r.root, filepath.FromSlash(rel)), nil
}

// RelativePath is Path without the root, slash separated.
func RelativePath(e Entity, edition int, kind Kind) (string, error) {
	if !slices.Contains(e.AssetEditions(), edition) {
		return "", &UnknownEditionError{Name: e.AssetName(), Edition: edition}
	}
	return kind.RelativePath(Sanitize(e.AssetName(), edition))
}

// CardDir is the directory card art is written to.
func (r *Resolver) CardDir() string {
	return filepath.Join(r.root, "cards")
}
