package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
)

type ScheduleRepository interface {
	Create(ctx context.Context, tripID uuid.UUID, input domain.NewSchedule) (*domain.Schedule, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Schedule, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Schedule, error)
	Update(ctx context.Context, id, tripID uuid.UUID, patch domain.SchedulePatch) (*domain.Schedule, error)
	Delete(ctx context.Context, id, tripID uuid.UUID) (*domain.Schedule, error)
}
