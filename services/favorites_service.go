package services

import (
	"context"
	"encoding/json"
	"fmt"

	"table-tap/models"
)

// FavoritesService keeps one liked-items set per authenticated user, stored
// as a JSON array under favorites_<userID> in the injected KVStore. Nothing
// is cached in the service, so switching identities can never leak one
// user's set into another session.
//
// Anonymous callers (userID 0) get an empty set and their mutations persist
// nothing; the surrounding UI is expected to gate the favorite button on
// login, but the store itself must stay total.
type FavoritesService struct {
	kv KVStore
}

func NewFavoritesService(kv KVStore) *FavoritesService {
	return &FavoritesService{kv: kv}
}

func favoritesKey(userID int) string {
	return fmt.Sprintf("favorites_%d", userID)
}

func (s *FavoritesService) load(ctx context.Context, userID int) ([]models.MenuItem, error) {
	raw, ok, err := s.kv.Get(ctx, favoritesKey(userID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.MenuItem{}, nil
	}

	var items []models.MenuItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *FavoritesService) save(ctx context.Context, userID int, items []models.MenuItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, favoritesKey(userID), string(raw))
}

func (s *FavoritesService) List(ctx context.Context, userID int) ([]models.MenuItem, error) {
	if userID == 0 {
		return []models.MenuItem{}, nil
	}
	return s.load(ctx, userID)
}

// Add appends the item unless it is already present by id, then persists the
// full updated set.
func (s *FavoritesService) Add(ctx context.Context, userID int, item models.MenuItem) error {
	if userID == 0 {
		return nil
	}

	items, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	for _, existing := range items {
		if existing.ID == item.ID {
			return nil
		}
	}
	return s.save(ctx, userID, append(items, item))
}

// Remove deletes by id if present, then persists. Absent ids persist the
// unchanged set, a harmless no-op.
func (s *FavoritesService) Remove(ctx context.Context, userID int, itemID string) error {
	if userID == 0 {
		return nil
	}

	items, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, item := range items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	return s.save(ctx, userID, kept)
}

// IsFavorite is a pure lookup with no side effect.
func (s *FavoritesService) IsFavorite(ctx context.Context, userID int, itemID string) (bool, error) {
	if userID == 0 {
		return false, nil
	}

	items, err := s.load(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, item := range items {
		if item.ID == itemID {
			return true, nil
		}
	}
	return false, nil
}
