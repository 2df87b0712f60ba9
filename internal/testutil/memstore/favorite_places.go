package memstore

import (
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
	"github.com/njprem/Trip_Planner_BackEnd/internal/repository/ports"
)

type FavoritePlaceRepo struct {
	s *Store
}

// Add returns sql.ErrNoRows for a duplicate (user, place) pair, like the
// ON CONFLICT DO NOTHING insert does.
func (r *FavoritePlaceRepo) Add(_ context.Context, userID uuid.UUID, input domain.NewFavoritePlace) (*domain.FavoritePlace, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[userID]; !ok {
		return nil, foreignKeyViolation("favorite_places_user_id_fkey")
	}
	for _, place := range r.s.places {
		if place.UserID == userID && place.PlaceID == input.PlaceID {
			return nil, sql.ErrNoRows
		}
	}
	place := domain.FavoritePlace{
		ID:        uuid.New(),
		UserID:    userID,
		PlaceID:   input.PlaceID,
		Name:      input.Name,
		Address:   input.Address,
		Category:  input.Category,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		CreatedAt: r.s.tick(),
	}
	r.s.places[place.ID] = place
	return &place, nil
}

func (r *FavoritePlaceRepo) Remove(_ context.Context, userID uuid.UUID, placeID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, place := range r.s.places {
		if place.UserID == userID && place.PlaceID == placeID {
			delete(r.s.places, id)
			return nil
		}
	}
	return sql.ErrNoRows
}

func (r *FavoritePlaceRepo) ListByUser(_ context.Context, userID uuid.UUID, limit, offset int) ([]domain.FavoritePlace, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	all := make([]domain.FavoritePlace, 0)
	for _, place := range r.s.places {
		if place.UserID == userID {
			all = append(all, place)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	if offset >= len(all) {
		return []domain.FavoritePlace{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *FavoritePlaceRepo) CountByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, place := range r.s.places {
		if place.UserID == userID {
			n++
		}
	}
	return n, nil
}

var _ ports.FavoritePlaceRepository = (*FavoritePlaceRepo)(nil)
