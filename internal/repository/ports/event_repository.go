package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
)

type EventRepository interface {
	Create(ctx context.Context, scheduleID uuid.UUID, input domain.NewEvent) (*domain.Event, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	ListBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]domain.Event, error)
	Update(ctx context.Context, id, scheduleID uuid.UUID, patch domain.EventPatch) (*domain.Event, error)
	Delete(ctx context.Context, id, scheduleID uuid.UUID) error
}
