package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
)

type TripRepository interface {
	Create(ctx context.Context, userID uuid.UUID, input domain.NewTrip) (*domain.Trip, error)
	FindOwned(ctx context.Context, id, userID uuid.UUID) (*domain.Trip, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error)
	Update(ctx context.Context, id, userID uuid.UUID, patch domain.TripPatch) (*domain.Trip, error)
	Delete(ctx context.Context, id, userID uuid.UUID) (*domain.Trip, error)
}
