package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
	"github.com/njprem/Trip_Planner_BackEnd/internal/repository/ports"
)

type EventService struct {
	events ports.EventRepository
	authz  *OwnershipAuthorizer
	reader *ItineraryReader
}

func NewEventService(events ports.EventRepository, authz *OwnershipAuthorizer, reader *ItineraryReader) *EventService {
	return &EventService{events: events, authz: authz, reader: reader}
}

func (s *EventService) Create(ctx context.Context, userID, scheduleID uuid.UUID, input domain.NewEvent) (*domain.Event, error) {
	if _, _, err := s.authz.Schedule(ctx, userID, scheduleID); err != nil {
		return nil, err
	}
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, validationError("name is required")
	}
	if input.Time != nil {
		clock, err := domain.ParseClock(*input.Time)
		if err != nil {
			return nil, validationError("%v", err)
		}
		input.Time = &clock
	}
	if input.EstimatedDurationMinutes != nil && *input.EstimatedDurationMinutes < 0 {
		return nil, validationError("estimated_duration_minutes must not be negative")
	}
	if input.Location != nil {
		if err := validateCoordinates(input.Location.Latitude, input.Location.Longitude); err != nil {
			return nil, err
		}
		if input.Location.IsZero() {
			input.Location = nil
		}
	}

	event, err := s.events.Create(ctx, scheduleID, input)
	if err != nil {
		return nil, storeError(err)
	}
	return event, nil
}

func (s *EventService) List(ctx context.Context, userID, scheduleID uuid.UUID) ([]domain.Event, error) {
	if _, _, err := s.authz.Schedule(ctx, userID, scheduleID); err != nil {
		return nil, err
	}
	return s.reader.orderedEvents(ctx, scheduleID)
}

func (s *EventService) Get(ctx context.Context, userID, scheduleID, eventID uuid.UUID) (*domain.Event, error) {
	_, event, err := s.authz.EventInSchedule(ctx, userID, scheduleID, eventID)
	if err != nil {
		return nil, err
	}
	return event, nil
}

// Update applies a sparse patch. Location fields are independent; location:
// null clears all of them.
func (s *EventService) Update(ctx context.Context, userID, scheduleID, eventID uuid.UUID, patch domain.EventPatch) (*domain.Event, error) {
	if _, _, err := s.authz.EventInSchedule(ctx, userID, scheduleID, eventID); err != nil {
		return nil, err
	}
	if err := validateEventPatch(&patch); err != nil {
		return nil, err
	}
	event, err := s.events.Update(ctx, eventID, scheduleID, patch)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrEventNotFound
		}
		return nil, storeError(err)
	}
	return event, nil
}

func (s *EventService) Delete(ctx context.Context, userID, scheduleID, eventID uuid.UUID) error {
	if _, _, err := s.authz.EventInSchedule(ctx, userID, scheduleID, eventID); err != nil {
		return err
	}
	if err := s.events.Delete(ctx, eventID, scheduleID); err != nil {
		if isNotFound(err) {
			return ErrEventNotFound
		}
		return err
	}
	return nil
}

func validateEventPatch(patch *domain.EventPatch) error {
	if patch.Name.Set {
		if patch.Name.Null || strings.TrimSpace(patch.Name.Value) == "" {
			return validationError("name cannot be empty")
		}
		patch.Name.Value = strings.TrimSpace(patch.Name.Value)
	}
	if patch.Time.HasValue() {
		clock, err := domain.ParseClock(patch.Time.Value)
		if err != nil {
			return validationError("%v", err)
		}
		patch.Time.Value = clock
	}
	if patch.EstimatedDurationMinutes.HasValue() && patch.EstimatedDurationMinutes.Value < 0 {
		return validationError("estimated_duration_minutes must not be negative")
	}
	if patch.Location.HasValue() {
		loc := patch.Location.Value
		if err := validateCoordinates(loc.Latitude.Ptr(), loc.Longitude.Ptr()); err != nil {
			return err
		}
	}
	return nil
}

func validateCoordinates(lat, lng *float64) error {
	if lat != nil && (*lat < -90 || *lat > 90) {
		return validationError("latitude must be between -90 and 90")
	}
	if lng != nil && (*lng < -180 || *lng > 180) {
		return validationError("longitude must be between -180 and 180")
	}
	return nil
}
