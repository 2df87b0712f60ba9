package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
)

type FavoritePlaceRepository interface {
	Add(ctx context.Context, userID uuid.UUID, input domain.NewFavoritePlace) (*domain.FavoritePlace, error)
	Remove(ctx context.Context, userID uuid.UUID, placeID string) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.FavoritePlace, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
