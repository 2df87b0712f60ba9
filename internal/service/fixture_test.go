package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
	"github.com/njprem/Trip_Planner_BackEnd/internal/testutil/memstore"
)

type fixture struct {
	store     *memstore.Store
	authz     *OwnershipAuthorizer
	reader    *ItineraryReader
	trips     *TripService
	schedules *ScheduleService
	events    *EventService
	memories  *MemoryService
	profiles  *ProfileService
	places    *FavoritePlaceService
	owner     domain.User
	stranger  domain.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memstore.New()
	authz := NewOwnershipAuthorizer(store.Trips(), store.Schedules(), store.Events(), store.Memories())
	reader := NewItineraryReader(store.Trips(), store.Schedules(), store.Events(), 2)
	tx := store.Transactor()
	return &fixture{
		store:     store,
		authz:     authz,
		reader:    reader,
		trips:     NewTripService(store.Trips(), store.Schedules(), tx, authz, reader, nil),
		schedules: NewScheduleService(store.Schedules(), tx, authz, reader),
		events:    NewEventService(store.Events(), authz, reader),
		memories:  NewMemoryService(store.Memories(), authz),
		profiles:  NewProfileService(store.Users(), tx),
		places:    NewFavoritePlaceService(store.FavoritePlaces()),
		owner:     store.AddUser("owner", "owner@example.com"),
		stranger:  store.AddUser("stranger", "stranger@example.com"),
	}
}

func datePtr(y, m, d int) *domain.Date {
	v := domain.NewDate(y, time.Month(m), d)
	return &v
}

func strPtr(s string) *string { return &s }

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

// createTrip makes a trip for the owner spanning 2024-08-10 .. 2024-08-12.
func (f *fixture) createTrip(t *testing.T) *domain.TripWithSchedules {
	t.Helper()
	trip, err := f.trips.Create(context.Background(), f.owner.ID, domain.NewTrip{
		Name:      "Kyoto",
		StartDate: datePtr(2024, 8, 10),
		EndDate:   datePtr(2024, 8, 12),
	})
	if err != nil {
		t.Fatalf("create trip: %v", err)
	}
	return trip
}

func (f *fixture) createEvent(t *testing.T, scheduleID uuid.UUID, name string, clock *string) *domain.Event {
	t.Helper()
	event, err := f.events.Create(context.Background(), f.owner.ID, scheduleID, domain.NewEvent{Name: name, Time: clock})
	if err != nil {
		t.Fatalf("create event %q: %v", name, err)
	}
	return event
}
