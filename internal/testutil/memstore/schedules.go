package memstore

import (
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
	"github.com/njprem/Trip_Planner_BackEnd/internal/repository/ports"
)

type ScheduleRepo struct {
	s *Store
}

func (r *ScheduleRepo) Create(_ context.Context, tripID uuid.UUID, input domain.NewSchedule) (*domain.Schedule, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail(OpScheduleCreate); err != nil {
		return nil, err
	}
	if _, ok := r.s.trips[tripID]; !ok {
		return nil, foreignKeyViolation("schedules_trip_id_fkey")
	}
	now := r.s.tick()
	schedule := domain.Schedule{
		ID:             uuid.New(),
		TripID:         tripID,
		Date:           input.Date,
		DayDescription: input.DayDescription,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if input.HotelInfo != nil && !input.HotelInfo.IsZero() {
		hotel := *input.HotelInfo
		schedule.HotelInfo = &hotel
	}
	r.s.schedules[schedule.ID] = schedule
	return &schedule, nil
}

func (r *ScheduleRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Schedule, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	schedule, ok := r.s.schedules[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &schedule, nil
}

func (r *ScheduleRepo) ListByTrip(_ context.Context, tripID uuid.UUID) ([]domain.Schedule, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.Schedule, 0)
	for _, schedule := range r.s.schedules {
		if schedule.TripID == tripID {
			out = append(out, schedule)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *ScheduleRepo) Update(_ context.Context, id, tripID uuid.UUID, patch domain.SchedulePatch) (*domain.Schedule, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	schedule, ok := r.s.schedules[id]
	if !ok || schedule.TripID != tripID {
		return nil, sql.ErrNoRows
	}
	if patch.IsEmpty() {
		return &schedule, nil
	}
	if patch.Date.HasValue() {
		schedule.Date = patch.Date.Value
	}
	setOptional(&schedule.DayDescription, patch.DayDescription)
	if patch.HotelInfo.Set {
		var hotel domain.HotelInfo
		if !patch.HotelInfo.Null {
			if schedule.HotelInfo != nil {
				hotel = *schedule.HotelInfo
			}
			h := patch.HotelInfo.Value
			setOptional(&hotel.Name, h.Name)
			setOptional(&hotel.Address, h.Address)
			setOptional(&hotel.CheckInTime, h.CheckInTime)
			setOptional(&hotel.CheckOutTime, h.CheckOutTime)
			setOptional(&hotel.ReservationNumber, h.ReservationNumber)
			setOptional(&hotel.Notes, h.Notes)
		}
		schedule.HotelInfo = nil
		if !hotel.IsZero() {
			schedule.HotelInfo = &hotel
		}
	}
	schedule.UpdatedAt = r.s.tick()
	r.s.schedules[id] = schedule
	return &schedule, nil
}

func (r *ScheduleRepo) Delete(_ context.Context, id, tripID uuid.UUID) (*domain.Schedule, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	schedule, ok := r.s.schedules[id]
	if !ok || schedule.TripID != tripID {
		return nil, sql.ErrNoRows
	}
	r.s.deleteScheduleLocked(id)
	return &schedule, nil
}

// deleteScheduleLocked cascades to events and their memories.
func (s *Store) deleteScheduleLocked(id uuid.UUID) {
	for eid, event := range s.events {
		if event.ScheduleID == id {
			s.deleteEventLocked(eid)
		}
	}
	delete(s.schedules, id)
}

var _ ports.ScheduleRepository = (*ScheduleRepo)(nil)
