package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
	"github.com/njprem/Trip_Planner_BackEnd/internal/repository/ports"
)

const maxNicknameLength = 50

type ProfileService struct {
	users ports.UserRepository
	tx    ports.Transactor
}

func NewProfileService(users ports.UserRepository, tx ports.Transactor) *ProfileService {
	return &ProfileService{users: users, tx: tx}
}

func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	profile, err := s.users.FindProfile(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return profile, nil
}

// Update changes the nickname and upserts bio/avatar in one unit. An empty
// patch returns the current profile.
func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, patch domain.ProfilePatch) (*domain.Profile, error) {
	if patch.Nickname.Set {
		nickname := strings.TrimSpace(patch.Nickname.Value)
		if patch.Nickname.Null || nickname == "" {
			return nil, validationError("nickname cannot be empty")
		}
		if len([]rune(nickname)) > maxNicknameLength {
			return nil, validationError("nickname must be at most %d characters", maxNicknameLength)
		}
		patch.Nickname.Value = nickname
	}
	if patch.IsEmpty() {
		return s.Get(ctx, userID)
	}

	var profile *domain.Profile
	err := s.tx.RunAtomic(ctx, func(ctx context.Context) error {
		if patch.Nickname.Set {
			if err := s.users.UpdateNickname(ctx, userID, patch.Nickname.Value); err != nil {
				if isNotFound(err) {
					return ErrUserNotFound
				}
				return storeError(err)
			}
		}
		if err := s.users.UpsertProfile(ctx, userID, patch.Bio, patch.AvatarURL); err != nil {
			return storeError(err)
		}
		p, err := s.users.FindProfile(ctx, userID)
		if err != nil {
			if isNotFound(err) {
				return ErrUserNotFound
			}
			return err
		}
		profile = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}
