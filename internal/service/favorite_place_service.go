package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
	"github.com/njprem/Trip_Planner_BackEnd/internal/repository/ports"
)

var (
	ErrFavoritePlaceAlreadyExists = errors.New("place already saved to favorites")
	ErrFavoritePlaceNotFound      = errors.New("favorite place not found")
)

type FavoritePlaceService struct {
	places ports.FavoritePlaceRepository
}

type FavoritePlaceListResult struct {
	Items  []domain.FavoritePlace
	Total  int64
	Limit  int
	Offset int
}

func NewFavoritePlaceService(places ports.FavoritePlaceRepository) *FavoritePlaceService {
	return &FavoritePlaceService{places: places}
}

func (s *FavoritePlaceService) Save(ctx context.Context, userID uuid.UUID, input domain.NewFavoritePlace) (*domain.FavoritePlace, error) {
	input.PlaceID = strings.TrimSpace(input.PlaceID)
	if input.PlaceID == "" {
		return nil, validationError("place_id is required")
	}
	if err := validateCoordinates(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	place, err := s.places.Add(ctx, userID, input)
	if err != nil {
		switch {
		case isNotFound(err), isUniqueViolation(err):
			return nil, ErrFavoritePlaceAlreadyExists
		default:
			return nil, err
		}
	}
	return place, nil
}

func (s *FavoritePlaceService) Remove(ctx context.Context, userID uuid.UUID, placeID string) error {
	if err := s.places.Remove(ctx, userID, strings.TrimSpace(placeID)); err != nil {
		if isNotFound(err) {
			return ErrFavoritePlaceNotFound
		}
		return err
	}
	return nil
}

func (s *FavoritePlaceService) List(ctx context.Context, userID uuid.UUID, limit, offset int) (*FavoritePlaceListResult, error) {
	nLimit, nOffset := normalizePagination(limit, offset)

	items, err := s.places.ListByUser(ctx, userID, nLimit, nOffset)
	if err != nil {
		return nil, err
	}

	total, err := s.places.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &FavoritePlaceListResult{
		Items:  items,
		Total:  total,
		Limit:  nLimit,
		Offset: nOffset,
	}, nil
}

func normalizePagination(limit, offset int) (int, int) {
	const (
		defaultLimit = 20
		maxLimit     = 100
	)

	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
