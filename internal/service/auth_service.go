package service

import (
	"context"
	"fmt"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
	"github.com/njprem/Trip_Planner_BackEnd/internal/repository/ports"
	"github.com/njprem/Trip_Planner_BackEnd/internal/util"
)

// AuthService resolves bearer tokens issued by the identity service into
// users. Token issuance lives elsewhere.
type AuthService struct {
	users ports.UserRepository
	jwt   *util.JWTManager
}

func NewAuthService(users ports.UserRepository, jwt *util.JWTManager) *AuthService {
	return &AuthService{users: users, jwt: jwt}
}

func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.jwt.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: user no longer exists", ErrUnauthenticated)
		}
		return nil, err
	}
	return user, nil
}
