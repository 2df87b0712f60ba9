package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
	"github.com/njprem/Trip_Planner_BackEnd/internal/repository/ports"
)

type ScheduleService struct {
	schedules ports.ScheduleRepository
	tx        ports.Transactor
	authz     *OwnershipAuthorizer
	reader    *ItineraryReader
}

func NewScheduleService(
	schedules ports.ScheduleRepository,
	tx ports.Transactor,
	authz *OwnershipAuthorizer,
	reader *ItineraryReader,
) *ScheduleService {
	return &ScheduleService{
		schedules: schedules,
		tx:        tx,
		authz:     authz,
		reader:    reader,
	}
}

// Create adds a day to the trip and returns the trip with all of its days,
// read in the same unit as the insert.
func (s *ScheduleService) Create(ctx context.Context, userID, tripID uuid.UUID, input domain.NewSchedule) (*domain.TripWithSchedules, error) {
	if _, err := s.authz.Trip(ctx, userID, tripID); err != nil {
		return nil, err
	}
	if input.Date.IsZero() {
		return nil, validationError("date is required")
	}
	if input.HotelInfo != nil && input.HotelInfo.IsZero() {
		input.HotelInfo = nil
	}

	var result *domain.TripWithSchedules
	err := s.tx.RunAtomic(ctx, func(ctx context.Context) error {
		if _, err := s.schedules.Create(ctx, tripID, input); err != nil {
			return storeError(err)
		}
		trip, err := s.reader.GetTripWithSchedules(ctx, tripID, userID)
		if err != nil {
			return err
		}
		result = trip
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *ScheduleService) List(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Schedule, error) {
	trip, err := s.reader.GetTripWithSchedules(ctx, tripID, userID)
	if err != nil {
		return nil, err
	}
	return trip.Schedules, nil
}

func (s *ScheduleService) Get(ctx context.Context, userID, tripID, scheduleID uuid.UUID) (*domain.Schedule, error) {
	_, schedule, err := s.authz.ScheduleInTrip(ctx, userID, tripID, scheduleID)
	if err != nil {
		return nil, err
	}
	return schedule, nil
}

// Update applies a sparse patch. Hotel fields are independent: only the ones
// sent are written, and hotel_info: null clears all of them.
func (s *ScheduleService) Update(ctx context.Context, userID, tripID, scheduleID uuid.UUID, patch domain.SchedulePatch) (*domain.TripWithSchedules, error) {
	if _, _, err := s.authz.ScheduleInTrip(ctx, userID, tripID, scheduleID); err != nil {
		return nil, err
	}
	if patch.Date.Set && (patch.Date.Null || patch.Date.Value.IsZero()) {
		return nil, validationError("date cannot be empty")
	}
	if _, err := s.schedules.Update(ctx, scheduleID, tripID, patch); err != nil {
		if isNotFound(err) {
			return nil, ErrScheduleNotFound
		}
		return nil, storeError(err)
	}
	return s.reader.GetTripWithSchedules(ctx, tripID, userID)
}

// Delete removes the day and its events.
func (s *ScheduleService) Delete(ctx context.Context, userID, tripID, scheduleID uuid.UUID) (*domain.Schedule, error) {
	if _, _, err := s.authz.ScheduleInTrip(ctx, userID, tripID, scheduleID); err != nil {
		return nil, err
	}
	deleted, err := s.schedules.Delete(ctx, scheduleID, tripID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return deleted, nil
}
