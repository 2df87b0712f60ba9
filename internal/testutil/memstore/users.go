package memstore

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
	"github.com/njprem/Trip_Planner_BackEnd/internal/repository/ports"
)

type UserRepo struct {
	s *Store
}

func (r *UserRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user, ok := r.s.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &user, nil
}

func (r *UserRepo) UpdateNickname(_ context.Context, id uuid.UUID, nickname string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user, ok := r.s.users[id]
	if !ok {
		return sql.ErrNoRows
	}
	user.Nickname = nickname
	user.UpdatedAt = r.s.tick()
	r.s.users[id] = user
	return nil
}

func (r *UserRepo) FindProfile(_ context.Context, userID uuid.UUID) (*domain.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user, ok := r.s.users[userID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	p := r.s.profiles[userID]
	return &domain.Profile{
		UserID:    user.ID,
		Nickname:  user.Nickname,
		Email:     user.Email,
		Bio:       p.bio,
		AvatarURL: p.avatarURL,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, nil
}

func (r *UserRepo) UpsertProfile(_ context.Context, userID uuid.UUID, bio, avatarURL domain.Optional[string]) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !bio.Set && !avatarURL.Set {
		return nil
	}
	if err := r.s.fail(OpProfileUpsert); err != nil {
		return err
	}
	if _, ok := r.s.users[userID]; !ok {
		return foreignKeyViolation("user_profiles_user_id_fkey")
	}
	p := r.s.profiles[userID]
	setOptional(&p.bio, bio)
	setOptional(&p.avatarURL, avatarURL)
	r.s.profiles[userID] = p
	return nil
}

var _ ports.UserRepository = (*UserRepo)(nil)
