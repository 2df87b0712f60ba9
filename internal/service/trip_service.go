package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
	"github.com/njprem/Trip_Planner_BackEnd/internal/repository/ports"
)

// maxTripDays bounds how many schedules a single trip creation may seed.
const maxTripDays = 366

type TripService struct {
	trips     ports.TripRepository
	schedules ports.ScheduleRepository
	tx        ports.Transactor
	authz     *OwnershipAuthorizer
	reader    *ItineraryReader
	logger    *zap.Logger
}

func NewTripService(
	trips ports.TripRepository,
	schedules ports.ScheduleRepository,
	tx ports.Transactor,
	authz *OwnershipAuthorizer,
	reader *ItineraryReader,
	logger *zap.Logger,
) *TripService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TripService{
		trips:     trips,
		schedules: schedules,
		tx:        tx,
		authz:     authz,
		reader:    reader,
		logger:    logger.Named("trips"),
	}
}

// Create inserts the trip and, when both dates are known, one schedule per
// calendar day in [start, end]. Either everything is stored or nothing is.
func (s *TripService) Create(ctx context.Context, userID uuid.UUID, input domain.NewTrip) (*domain.TripWithSchedules, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, validationError("name is required")
	}
	days, err := seedDays(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}
	if input.Status == nil {
		status := domain.TripStatusPlanning
		input.Status = &status
	}

	var result domain.TripWithSchedules
	err = s.tx.RunAtomic(ctx, func(ctx context.Context) error {
		trip, err := s.trips.Create(ctx, userID, input)
		if err != nil {
			return storeError(err)
		}
		schedules := make([]domain.Schedule, 0, days)
		for i := 0; i < days; i++ {
			desc := fmt.Sprintf("Day %d", i+1)
			schedule, err := s.schedules.Create(ctx, trip.ID, domain.NewSchedule{
				Date:           input.StartDate.AddDays(i),
				DayDescription: &desc,
			})
			if err != nil {
				return storeError(err)
			}
			schedules = append(schedules, *schedule)
		}
		result = domain.TripWithSchedules{Trip: *trip, Schedules: schedules}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("trip created",
		zap.String("trip_id", result.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Int("seeded_days", days),
	)
	return &result, nil
}

func (s *TripService) List(ctx context.Context, userID uuid.UUID) ([]domain.TripDetail, error) {
	return s.reader.ListTripsByUser(ctx, userID)
}

func (s *TripService) Get(ctx context.Context, userID, tripID uuid.UUID) (*domain.TripDetail, error) {
	return s.reader.GetTripDeep(ctx, tripID, userID)
}

// Update applies a sparse patch. Changing the dates does not reseed
// schedules.
func (s *TripService) Update(ctx context.Context, userID, tripID uuid.UUID, patch domain.TripPatch) (*domain.TripWithSchedules, error) {
	current, err := s.authz.Trip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}
	if err := validateTripPatch(current, &patch); err != nil {
		return nil, err
	}
	if _, err := s.trips.Update(ctx, tripID, userID, patch); err != nil {
		if isNotFound(err) {
			return nil, ErrTripNotFound
		}
		return nil, storeError(err)
	}
	return s.reader.GetTripWithSchedules(ctx, tripID, userID)
}

// Delete removes the trip; schedules, events, and memories go with it.
func (s *TripService) Delete(ctx context.Context, userID, tripID uuid.UUID) (*domain.Trip, error) {
	if _, err := s.authz.Trip(ctx, userID, tripID); err != nil {
		return nil, err
	}
	trip, err := s.trips.Delete(ctx, tripID, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	s.logger.Info("trip deleted", zap.String("trip_id", tripID.String()), zap.String("user_id", userID.String()))
	return trip, nil
}

// seedDays returns how many schedules a trip with the given range gets.
func seedDays(start, end *domain.Date) (int, error) {
	if start == nil || end == nil {
		return 0, nil
	}
	if end.Before(*start) {
		return 0, validationError("end_date must not be before start_date")
	}
	days := start.DaysUntil(*end) + 1
	if days > maxTripDays {
		return 0, validationError("trip cannot span more than %d days", maxTripDays)
	}
	return days, nil
}

func validateTripPatch(current *domain.Trip, patch *domain.TripPatch) error {
	if patch.Name.Set {
		if patch.Name.Null || strings.TrimSpace(patch.Name.Value) == "" {
			return validationError("name cannot be empty")
		}
		patch.Name.Value = strings.TrimSpace(patch.Name.Value)
	}
	if patch.IsPublic.Set && patch.IsPublic.Null {
		return validationError("is_public cannot be null")
	}

	start, end := current.StartDate, current.EndDate
	if patch.StartDate.Set {
		start = patch.StartDate.Ptr()
	}
	if patch.EndDate.Set {
		end = patch.EndDate.Ptr()
	}
	if start != nil && end != nil && end.Before(*start) {
		return validationError("end_date must not be before start_date")
	}
	return nil
}
