package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
)

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateNickname(ctx context.Context, id uuid.UUID, nickname string) error
	FindProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	// UpsertProfile creates the user_profiles row on first write and applies
	// only the columns present in the patch afterwards.
	UpsertProfile(ctx context.Context, userID uuid.UUID, bio, avatarURL domain.Optional[string]) error
}
