package memstore

import (
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
	"github.com/njprem/Trip_Planner_BackEnd/internal/repository/ports"
)

type EventRepo struct {
	s *Store
}

func (r *EventRepo) Create(_ context.Context, scheduleID uuid.UUID, input domain.NewEvent) (*domain.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail(OpEventCreate); err != nil {
		return nil, err
	}
	if _, ok := r.s.schedules[scheduleID]; !ok {
		return nil, foreignKeyViolation("events_schedule_id_fkey")
	}
	now := r.s.tick()
	event := domain.Event{
		ID:                       uuid.New(),
		ScheduleID:               scheduleID,
		Time:                     input.Time,
		Name:                     input.Name,
		Category:                 input.Category,
		Description:              input.Description,
		EstimatedDurationMinutes: input.EstimatedDurationMinutes,
		Type:                     input.Type,
		CreatedAt:                now,
		UpdatedAt:                now,
	}
	if input.Location != nil && !input.Location.IsZero() {
		loc := *input.Location
		event.Location = &loc
	}
	r.s.events[event.ID] = event
	return &event, nil
}

func (r *EventRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	event, ok := r.s.events[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &event, nil
}

// ListBySchedule mirrors ORDER BY "time" ASC NULLS LAST, created_at ASC.
func (r *EventRepo) ListBySchedule(_ context.Context, scheduleID uuid.UUID) ([]domain.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.Event, 0)
	for _, event := range r.s.events {
		if event.ScheduleID == scheduleID {
			out = append(out, event)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Time, out[j].Time
		switch {
		case a == nil && b != nil:
			return false
		case a != nil && b == nil:
			return true
		case a != nil && b != nil && *a != *b:
			return *a < *b
		default:
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
	})
	return out, nil
}

func (r *EventRepo) Update(_ context.Context, id, scheduleID uuid.UUID, patch domain.EventPatch) (*domain.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	event, ok := r.s.events[id]
	if !ok || event.ScheduleID != scheduleID {
		return nil, sql.ErrNoRows
	}
	if patch.IsEmpty() {
		return &event, nil
	}
	setOptional(&event.Time, patch.Time)
	if patch.Name.HasValue() {
		event.Name = patch.Name.Value
	}
	setOptional(&event.Category, patch.Category)
	setOptional(&event.Description, patch.Description)
	setOptional(&event.EstimatedDurationMinutes, patch.EstimatedDurationMinutes)
	setOptional(&event.Type, patch.Type)
	if patch.Location.Set {
		var loc domain.Location
		if !patch.Location.Null {
			if event.Location != nil {
				loc = *event.Location
			}
			l := patch.Location.Value
			setOptional(&loc.Name, l.Name)
			setOptional(&loc.Address, l.Address)
			setOptional(&loc.Latitude, l.Latitude)
			setOptional(&loc.Longitude, l.Longitude)
		}
		event.Location = nil
		if !loc.IsZero() {
			event.Location = &loc
		}
	}
	event.UpdatedAt = r.s.tick()
	r.s.events[id] = event
	return &event, nil
}

func (r *EventRepo) Delete(_ context.Context, id, scheduleID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	event, ok := r.s.events[id]
	if !ok || event.ScheduleID != scheduleID {
		return sql.ErrNoRows
	}
	r.s.deleteEventLocked(id)
	return nil
}

func (s *Store) deleteEventLocked(id uuid.UUID) {
	for mid, memory := range s.memories {
		if memory.EventID != nil && *memory.EventID == id {
			delete(s.memories, mid)
		}
	}
	delete(s.events, id)
}

var _ ports.EventRepository = (*EventRepo)(nil)
