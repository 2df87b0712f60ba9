package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
)

type MemoryRepository interface {
	Create(ctx context.Context, userID uuid.UUID, input domain.NewMemory) (*domain.Memory, error)
	FindOwned(ctx context.Context, id, userID uuid.UUID) (*domain.Memory, error)
	ListByTrip(ctx context.Context, tripID, userID uuid.UUID) ([]domain.Memory, error)
	ListByEvent(ctx context.Context, eventID, userID uuid.UUID) ([]domain.Memory, error)
	Update(ctx context.Context, id, userID uuid.UUID, patch domain.MemoryPatch) (*domain.Memory, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
