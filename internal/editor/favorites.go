package editor

import (
	"context"

	"modebar/internal/preset"
)

// FavoriteStore persists the user's favorite preset list.
type FavoriteStore interface {
	List(ctx context.Context) ([]preset.Favorite, error)
	Toggle(ctx context.Context, f preset.Favorite) (added bool, err error)
}

// MemoryFavorites is an in-process FavoriteStore.
type MemoryFavorites struct {
	items []preset.Favorite
}

func NewMemoryFavorites(seed ...preset.Favorite) *MemoryFavorites {
	return &MemoryFavorites{items: append([]preset.Favorite(nil), seed...)}
}

func (s *MemoryFavorites) List(context.Context) ([]preset.Favorite, error) {
	return append([]preset.Favorite(nil), s.items...), nil
}

func (s *MemoryFavorites) Toggle(_ context.Context, f preset.Favorite) (bool, error) {
	for i, have := range s.items {
		if have == f {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			return false, nil
		}
	}
	s.items = append(s.items, f)
	return true, nil
}
