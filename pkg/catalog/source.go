package catalog

import (
	"context"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
)

// Source serves catalog items. The static implementation is backed by
// the built-in sample data; a database or CMS backed source satisfies
// the same interface.
type Source interface {
	List(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id string) (*Item, error)
	ByKind(ctx context.Context, kind ItemKind) ([]Item, error)
}

// StaticSource is an in-memory Source over a fixed item list
type StaticSource struct {
	items []Item
	byID  map[string]Item
}

// NewStaticSource creates a StaticSource, validating every item.
func NewStaticSource(items []Item) (*StaticSource, error) {
	byID := make(map[string]Item, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		byID[item.ID] = item
	}
	return &StaticSource{items: items, byID: byID}, nil
}

// List returns every catalog item.
func (s *StaticSource) List(_ context.Context) ([]Item, error) {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out, nil
}

// Get returns the item with the given ID.
func (s *StaticSource) Get(_ context.Context, id string) (*Item, error) {
	item, ok := s.byID[id]
	if !ok {
		return nil, httperror.NewHTTPError(http.StatusNotFound, "catalog item not found")
	}
	return &item, nil
}

// ByKind returns every item of the given kind, in catalog order.
func (s *StaticSource) ByKind(_ context.Context, kind ItemKind) ([]Item, error) {
	var out []Item
	for _, item := range s.items {
		if item.Kind == kind {
			out = append(out, item)
		}
	}
	return out, nil
}
