package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
	"github.com/njprem/Trip_Planner_BackEnd/internal/repository/ports"
)

const defaultTripFanOut = 8

// ItineraryReader rebuilds the trip → schedules → events tree. Schedules are
// ordered by date and events by time of day regardless of insertion order.
type ItineraryReader struct {
	trips     ports.TripRepository
	schedules ports.ScheduleRepository
	events    ports.EventRepository
	fanOut    int
}

func NewItineraryReader(
	trips ports.TripRepository,
	schedules ports.ScheduleRepository,
	events ports.EventRepository,
	fanOut int,
) *ItineraryReader {
	if fanOut <= 0 {
		fanOut = defaultTripFanOut
	}
	return &ItineraryReader{
		trips:     trips,
		schedules: schedules,
		events:    events,
		fanOut:    fanOut,
	}
}

func (r *ItineraryReader) GetTripDeep(ctx context.Context, tripID, userID uuid.UUID) (*domain.TripDetail, error) {
	trip, err := r.ownedTrip(ctx, tripID, userID)
	if err != nil {
		return nil, err
	}
	return r.expand(ctx, *trip)
}

func (r *ItineraryReader) GetTripWithSchedules(ctx context.Context, tripID, userID uuid.UUID) (*domain.TripWithSchedules, error) {
	trip, err := r.ownedTrip(ctx, tripID, userID)
	if err != nil {
		return nil, err
	}
	schedules, err := r.orderedSchedules(ctx, trip.ID)
	if err != nil {
		return nil, err
	}
	return &domain.TripWithSchedules{Trip: *trip, Schedules: schedules}, nil
}

// ListTripsByUser expands every trip of the user. Trips are expanded in
// parallel, bounded by fanOut; the result keeps the repository's trip order.
// It must not be called with a transaction-scoped context.
func (r *ItineraryReader) ListTripsByUser(ctx context.Context, userID uuid.UUID) ([]domain.TripDetail, error) {
	trips, err := r.trips.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	details := make([]domain.TripDetail, len(trips))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.fanOut)
	for i, trip := range trips {
		i, trip := i, trip
		g.Go(func() error {
			detail, err := r.expand(gctx, trip)
			if err != nil {
				return err
			}
			details[i] = *detail
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return details, nil
}

func (r *ItineraryReader) ownedTrip(ctx context.Context, tripID, userID uuid.UUID) (*domain.Trip, error) {
	trip, err := r.trips.FindOwned(ctx, tripID, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	return trip, nil
}

func (r *ItineraryReader) expand(ctx context.Context, trip domain.Trip) (*domain.TripDetail, error) {
	schedules, err := r.orderedSchedules(ctx, trip.ID)
	if err != nil {
		return nil, err
	}
	days := make([]domain.ScheduleDetail, 0, len(schedules))
	for _, s := range schedules {
		events, err := r.orderedEvents(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		days = append(days, domain.ScheduleDetail{Schedule: s, Events: events})
	}
	return &domain.TripDetail{Trip: trip, Schedules: days}, nil
}

func (r *ItineraryReader) orderedSchedules(ctx context.Context, tripID uuid.UUID) ([]domain.Schedule, error) {
	schedules, err := r.schedules.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if schedules == nil {
		schedules = []domain.Schedule{}
	}
	sortSchedules(schedules)
	return schedules, nil
}

func (r *ItineraryReader) orderedEvents(ctx context.Context, scheduleID uuid.UUID) ([]domain.Event, error) {
	events, err := r.events.ListBySchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []domain.Event{}
	}
	sortEvents(events)
	return events, nil
}

func sortSchedules(schedules []domain.Schedule) {
	sort.SliceStable(schedules, func(i, j int) bool {
		return schedules[i].Date.Before(schedules[j].Date)
	})
}

// sortEvents orders by time of day with untimed events last.
func sortEvents(events []domain.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i].Time, events[j].Time
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
}
