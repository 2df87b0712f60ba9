package memstore

import (
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
	"github.com/njprem/Trip_Planner_BackEnd/internal/repository/ports"
)

type TripRepo struct {
	s *Store
}

func (r *TripRepo) Create(_ context.Context, userID uuid.UUID, input domain.NewTrip) (*domain.Trip, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail(OpTripCreate); err != nil {
		return nil, err
	}
	if _, ok := r.s.users[userID]; !ok {
		return nil, foreignKeyViolation("trips_user_id_fkey")
	}
	now := r.s.tick()
	trip := domain.Trip{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          input.Name,
		PeriodSummary: input.PeriodSummary,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		Destinations:  input.Destinations,
		Status:        input.Status,
		CoverImageURL: input.CoverImageURL,
		IsPublic:      input.IsPublic,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	r.s.trips[trip.ID] = trip
	return &trip, nil
}

func (r *TripRepo) FindOwned(_ context.Context, id, userID uuid.UUID) (*domain.Trip, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	trip, ok := r.s.trips[id]
	if !ok || trip.UserID != userID {
		return nil, sql.ErrNoRows
	}
	return &trip, nil
}

// ListByUser mirrors ORDER BY start_date DESC, created_at DESC, where postgres
// puts NULL start dates first.
func (r *TripRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.Trip, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.Trip, 0)
	for _, trip := range r.s.trips {
		if trip.UserID == userID {
			out = append(out, trip)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].StartDate, out[j].StartDate
		switch {
		case a == nil && b != nil:
			return true
		case a != nil && b == nil:
			return false
		case a != nil && b != nil && !a.Equal(*b):
			return b.Before(*a)
		default:
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
	})
	return out, nil
}

func (r *TripRepo) Update(_ context.Context, id, userID uuid.UUID, patch domain.TripPatch) (*domain.Trip, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	trip, ok := r.s.trips[id]
	if !ok || trip.UserID != userID {
		return nil, sql.ErrNoRows
	}
	if patch.IsEmpty() {
		return &trip, nil
	}
	if patch.Name.Set {
		trip.Name = patch.Name.Value
	}
	setOptional(&trip.PeriodSummary, patch.PeriodSummary)
	setOptional(&trip.StartDate, patch.StartDate)
	setOptional(&trip.EndDate, patch.EndDate)
	setOptional(&trip.Destinations, patch.Destinations)
	setOptional(&trip.Status, patch.Status)
	setOptional(&trip.CoverImageURL, patch.CoverImageURL)
	if patch.IsPublic.HasValue() {
		trip.IsPublic = patch.IsPublic.Value
	}
	trip.UpdatedAt = r.s.tick()
	r.s.trips[id] = trip
	return &trip, nil
}

func (r *TripRepo) Delete(_ context.Context, id, userID uuid.UUID) (*domain.Trip, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail(OpTripDelete); err != nil {
		return nil, err
	}
	trip, ok := r.s.trips[id]
	if !ok || trip.UserID != userID {
		return nil, sql.ErrNoRows
	}
	for sid, schedule := range r.s.schedules {
		if schedule.TripID == id {
			r.s.deleteScheduleLocked(sid)
		}
	}
	for mid, memory := range r.s.memories {
		if memory.TripID != nil && *memory.TripID == id {
			delete(r.s.memories, mid)
		}
	}
	delete(r.s.trips, id)
	return &trip, nil
}

var _ ports.TripRepository = (*TripRepo)(nil)
