package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
	"github.com/njprem/Trip_Planner_BackEnd/internal/repository/ports"
)

type ResourceKind string

const (
	ResourceTrip     ResourceKind = "trip"
	ResourceSchedule ResourceKind = "schedule"
	ResourceEvent    ResourceKind = "event"
	ResourceMemory   ResourceKind = "memory"
)

// OwnershipAuthorizer walks a resource up to its trip and checks the trip's
// owner. It never writes.
//
// A trip the caller does not own is reported as not found. For schedules and
// events a missing row is not found, while an existing row under someone
// else's trip is forbidden.
type OwnershipAuthorizer struct {
	trips     ports.TripRepository
	schedules ports.ScheduleRepository
	events    ports.EventRepository
	memories  ports.MemoryRepository
}

func NewOwnershipAuthorizer(
	trips ports.TripRepository,
	schedules ports.ScheduleRepository,
	events ports.EventRepository,
	memories ports.MemoryRepository,
) *OwnershipAuthorizer {
	return &OwnershipAuthorizer{
		trips:     trips,
		schedules: schedules,
		events:    events,
		memories:  memories,
	}
}

// Authorize returns the trip that owns the resource when userID may act on it.
func (a *OwnershipAuthorizer) Authorize(ctx context.Context, userID uuid.UUID, kind ResourceKind, id uuid.UUID) (*domain.Trip, error) {
	switch kind {
	case ResourceTrip:
		return a.Trip(ctx, userID, id)
	case ResourceSchedule:
		_, trip, err := a.Schedule(ctx, userID, id)
		return trip, err
	case ResourceEvent:
		_, _, trip, err := a.Event(ctx, userID, id)
		return trip, err
	case ResourceMemory:
		memory, err := a.Memory(ctx, userID, id)
		if err != nil {
			return nil, err
		}
		return a.memoryTrip(ctx, userID, memory)
	default:
		return nil, fmt.Errorf("unknown resource kind %q", kind)
	}
}

func (a *OwnershipAuthorizer) Trip(ctx context.Context, userID, tripID uuid.UUID) (*domain.Trip, error) {
	trip, err := a.trips.FindOwned(ctx, tripID, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	return trip, nil
}

func (a *OwnershipAuthorizer) Schedule(ctx context.Context, userID, scheduleID uuid.UUID) (*domain.Schedule, *domain.Trip, error) {
	schedule, err := a.schedules.FindByID(ctx, scheduleID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil, ErrScheduleNotFound
		}
		return nil, nil, err
	}
	trip, err := a.trips.FindOwned(ctx, schedule.TripID, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil, ErrScheduleForbidden
		}
		return nil, nil, err
	}
	return schedule, trip, nil
}

func (a *OwnershipAuthorizer) Event(ctx context.Context, userID, eventID uuid.UUID) (*domain.Event, *domain.Schedule, *domain.Trip, error) {
	event, err := a.events.FindByID(ctx, eventID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil, nil, ErrEventNotFound
		}
		return nil, nil, nil, err
	}
	schedule, err := a.schedules.FindByID(ctx, event.ScheduleID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil, nil, ErrEventNotFound
		}
		return nil, nil, nil, err
	}
	trip, err := a.trips.FindOwned(ctx, schedule.TripID, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil, nil, ErrEventForbidden
		}
		return nil, nil, nil, err
	}
	return event, schedule, trip, nil
}

func (a *OwnershipAuthorizer) Memory(ctx context.Context, userID, memoryID uuid.UUID) (*domain.Memory, error) {
	memory, err := a.memories.FindOwned(ctx, memoryID, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrMemoryNotFound
		}
		return nil, err
	}
	return memory, nil
}

// ScheduleInTrip authorizes a schedule addressed through its parent trip. A
// schedule that exists under a different trip is reported as not found.
func (a *OwnershipAuthorizer) ScheduleInTrip(ctx context.Context, userID, tripID, scheduleID uuid.UUID) (*domain.Trip, *domain.Schedule, error) {
	trip, err := a.Trip(ctx, userID, tripID)
	if err != nil {
		return nil, nil, err
	}
	schedule, err := a.schedules.FindByID(ctx, scheduleID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil, ErrScheduleNotFound
		}
		return nil, nil, err
	}
	if schedule.TripID != trip.ID {
		return nil, nil, ErrScheduleNotFound
	}
	return trip, schedule, nil
}

// EventInSchedule authorizes an event addressed through its schedule.
func (a *OwnershipAuthorizer) EventInSchedule(ctx context.Context, userID, scheduleID, eventID uuid.UUID) (*domain.Schedule, *domain.Event, error) {
	schedule, _, err := a.Schedule(ctx, userID, scheduleID)
	if err != nil {
		return nil, nil, err
	}
	event, err := a.events.FindByID(ctx, eventID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil, ErrEventNotFound
		}
		return nil, nil, err
	}
	if event.ScheduleID != schedule.ID {
		return nil, nil, ErrEventNotFound
	}
	return schedule, event, nil
}

func (a *OwnershipAuthorizer) memoryTrip(ctx context.Context, userID uuid.UUID, memory *domain.Memory) (*domain.Trip, error) {
	if memory.TripID != nil {
		return a.Trip(ctx, userID, *memory.TripID)
	}
	if memory.EventID != nil {
		_, _, trip, err := a.Event(ctx, userID, *memory.EventID)
		return trip, err
	}
	return nil, ErrMemoryNotFound
}
