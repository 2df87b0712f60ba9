package memstore

import (
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
	"github.com/njprem/Trip_Planner_BackEnd/internal/repository/ports"
)

type MemoryRepo struct {
	s *Store
}

func (r *MemoryRepo) Create(_ context.Context, userID uuid.UUID, input domain.NewMemory) (*domain.Memory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail(OpMemoryCreate); err != nil {
		return nil, err
	}
	if (input.EventID == nil) == (input.TripID == nil) {
		return nil, checkViolation("memories_event_or_trip_check")
	}
	if _, ok := r.s.users[userID]; !ok {
		return nil, foreignKeyViolation("memories_user_id_fkey")
	}
	if input.EventID != nil {
		if _, ok := r.s.events[*input.EventID]; !ok {
			return nil, foreignKeyViolation("memories_event_id_fkey")
		}
	}
	if input.TripID != nil {
		if _, ok := r.s.trips[*input.TripID]; !ok {
			return nil, foreignKeyViolation("memories_trip_id_fkey")
		}
	}
	now := r.s.tick()
	memory := domain.Memory{
		ID:        uuid.New(),
		UserID:    userID,
		EventID:   input.EventID,
		TripID:    input.TripID,
		Notes:     input.Notes,
		Rating:    input.Rating,
		MediaURLs: cloneStrings(input.MediaURLs),
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.s.memories[memory.ID] = memory
	return copyMemory(memory), nil
}

func (r *MemoryRepo) FindOwned(_ context.Context, id, userID uuid.UUID) (*domain.Memory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	memory, ok := r.s.memories[id]
	if !ok || memory.UserID != userID {
		return nil, sql.ErrNoRows
	}
	return copyMemory(memory), nil
}

func (r *MemoryRepo) ListByTrip(_ context.Context, tripID, userID uuid.UUID) ([]domain.Memory, error) {
	return r.list(func(m domain.Memory) bool {
		return m.UserID == userID && m.TripID != nil && *m.TripID == tripID
	}), nil
}

func (r *MemoryRepo) ListByEvent(_ context.Context, eventID, userID uuid.UUID) ([]domain.Memory, error) {
	return r.list(func(m domain.Memory) bool {
		return m.UserID == userID && m.EventID != nil && *m.EventID == eventID
	}), nil
}

func (r *MemoryRepo) list(match func(domain.Memory) bool) []domain.Memory {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.Memory, 0)
	for _, memory := range r.s.memories {
		if match(memory) {
			out = append(out, *copyMemory(memory))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (r *MemoryRepo) Update(_ context.Context, id, userID uuid.UUID, patch domain.MemoryPatch) (*domain.Memory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	memory, ok := r.s.memories[id]
	if !ok || memory.UserID != userID {
		return nil, sql.ErrNoRows
	}
	if patch.IsEmpty() {
		return copyMemory(memory), nil
	}
	setOptional(&memory.Notes, patch.Notes)
	setOptional(&memory.Rating, patch.Rating)
	if patch.MediaURLs.Set {
		memory.MediaURLs = cloneStrings(patch.MediaURLs.Value)
	}
	memory.UpdatedAt = r.s.tick()
	r.s.memories[id] = memory
	return copyMemory(memory), nil
}

func (r *MemoryRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail(OpMemoryDelete); err != nil {
		return err
	}
	memory, ok := r.s.memories[id]
	if !ok || memory.UserID != userID {
		return sql.ErrNoRows
	}
	delete(r.s.memories, id)
	return nil
}

// cloneStrings mirrors the text[] column: NULL reads back as an empty array.
func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyMemory(m domain.Memory) *domain.Memory {
	m.MediaURLs = cloneStrings(m.MediaURLs)
	return &m
}

var _ ports.MemoryRepository = (*MemoryRepo)(nil)
