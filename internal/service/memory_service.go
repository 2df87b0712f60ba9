package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
	"github.com/njprem/Trip_Planner_BackEnd/internal/repository/ports"
)

const (
	minMemoryRating = 1
	maxMemoryRating = 5
)

type MemoryService struct {
	memories ports.MemoryRepository
	authz    *OwnershipAuthorizer
}

func NewMemoryService(memories ports.MemoryRepository, authz *OwnershipAuthorizer) *MemoryService {
	return &MemoryService{memories: memories, authz: authz}
}

// Create attaches a memory to exactly one event or trip owned by the user.
// Target exclusivity is checked before anything is read or written.
func (s *MemoryService) Create(ctx context.Context, userID uuid.UUID, input domain.NewMemory) (*domain.Memory, error) {
	if err := checkMemoryTarget(input.EventID, input.TripID); err != nil {
		return nil, err
	}
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}
	input.MediaURLs = cleanMediaURLs(input.MediaURLs)

	if input.TripID != nil {
		if _, err := s.authz.Authorize(ctx, userID, ResourceTrip, *input.TripID); err != nil {
			return nil, err
		}
	} else {
		if _, err := s.authz.Authorize(ctx, userID, ResourceEvent, *input.EventID); err != nil {
			return nil, err
		}
	}

	memory, err := s.memories.Create(ctx, userID, input)
	if err != nil {
		return nil, storeError(err)
	}
	return memory, nil
}

func (s *MemoryService) ListByTrip(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Memory, error) {
	if _, err := s.authz.Trip(ctx, userID, tripID); err != nil {
		return nil, err
	}
	return s.memories.ListByTrip(ctx, tripID, userID)
}

func (s *MemoryService) ListByEvent(ctx context.Context, userID, eventID uuid.UUID) ([]domain.Memory, error) {
	if _, _, _, err := s.authz.Event(ctx, userID, eventID); err != nil {
		return nil, err
	}
	return s.memories.ListByEvent(ctx, eventID, userID)
}

func (s *MemoryService) Update(ctx context.Context, userID, memoryID uuid.UUID, patch domain.MemoryPatch) (*domain.Memory, error) {
	if _, err := s.authz.Memory(ctx, userID, memoryID); err != nil {
		return nil, err
	}
	if patch.Rating.HasValue() {
		if err := validateRating(&patch.Rating.Value); err != nil {
			return nil, err
		}
	}
	if patch.MediaURLs.HasValue() {
		patch.MediaURLs.Value = cleanMediaURLs(patch.MediaURLs.Value)
	}
	memory, err := s.memories.Update(ctx, memoryID, userID, patch)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrMemoryNotFound
		}
		return nil, storeError(err)
	}
	return memory, nil
}

func (s *MemoryService) Delete(ctx context.Context, userID, memoryID uuid.UUID) error {
	if _, err := s.authz.Memory(ctx, userID, memoryID); err != nil {
		return err
	}
	if err := s.memories.Delete(ctx, memoryID, userID); err != nil {
		if isNotFound(err) {
			return ErrMemoryNotFound
		}
		return err
	}
	return nil
}

func checkMemoryTarget(eventID, tripID *uuid.UUID) error {
	switch {
	case eventID != nil && tripID != nil:
		return ErrMemoryBothTargets
	case eventID == nil && tripID == nil:
		return ErrMemoryTargetMissing
	default:
		return nil
	}
}

func validateRating(rating *int) error {
	if rating == nil {
		return nil
	}
	if *rating < minMemoryRating || *rating > maxMemoryRating {
		return validationError("rating must be between %d and %d", minMemoryRating, maxMemoryRating)
	}
	return nil
}

func cleanMediaURLs(urls []string) []string {
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if trimmed := strings.TrimSpace(u); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
