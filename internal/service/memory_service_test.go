package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
	"github.com/njprem/Trip_Planner_BackEnd/internal/testutil/memstore"
)

func TestMemoryService_CreateRequiresExactlyOneTarget(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.createTrip(t)
	event := f.createEvent(t, trip.Schedules[0].ID, "Onsen", nil)

	_, err := f.memories.Create(ctx, f.owner.ID, domain.NewMemory{EventID: &event.ID, TripID: &trip.ID})
	if !errors.Is(err, ErrMemoryBothTargets) || !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrMemoryBothTargets, got %v", err)
	}
	_, err = f.memories.Create(ctx, f.owner.ID, domain.NewMemory{Notes: strPtr("floating")})
	if !errors.Is(err, ErrMemoryTargetMissing) {
		t.Fatalf("expected ErrMemoryTargetMissing, got %v", err)
	}

	// Both targets are rejected before any lookup, even for unknown ids.
	ghost := uuid.New()
	_, err = f.memories.Create(ctx, f.stranger.ID, domain.NewMemory{EventID: &ghost, TripID: &ghost})
	if !errors.Is(err, ErrMemoryBothTargets) {
		t.Fatalf("expected ErrMemoryBothTargets, got %v", err)
	}
	if f.store.MemoryCount() != 0 {
		t.Fatalf("expected no memories stored, got %d", f.store.MemoryCount())
	}
}

func TestMemoryService_CreateAuthorizesTarget(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.createTrip(t)
	event := f.createEvent(t, trip.Schedules[0].ID, "Onsen", nil)

	if _, err := f.memories.Create(ctx, f.stranger.ID, domain.NewMemory{TripID: &trip.ID}); !errors.Is(err, ErrTripNotFound) {
		t.Fatalf("expected ErrTripNotFound, got %v", err)
	}
	if _, err := f.memories.Create(ctx, f.stranger.ID, domain.NewMemory{EventID: &event.ID}); !errors.Is(err, ErrEventForbidden) {
		t.Fatalf("expected ErrEventForbidden, got %v", err)
	}
	missing := uuid.New()
	if _, err := f.memories.Create(ctx, f.owner.ID, domain.NewMemory{EventID: &missing}); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestMemoryService_CreateCleansInput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.createTrip(t)

	memory, err := f.memories.Create(ctx, f.owner.ID, domain.NewMemory{
		TripID:    &trip.ID,
		Rating:    intPtr(4),
		MediaURLs: []string{" https://cdn/a.jpg ", "", "https://cdn/b.jpg"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(memory.MediaURLs) != 2 || memory.MediaURLs[0] != "https://cdn/a.jpg" {
		t.Fatalf("unexpected media urls %v", memory.MediaURLs)
	}
	if memory.UserID != f.owner.ID || memory.EventID != nil {
		t.Fatalf("unexpected memory %+v", memory)
	}

	bare, err := f.memories.Create(ctx, f.owner.ID, domain.NewMemory{TripID: &trip.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bare.MediaURLs == nil {
		t.Fatalf("expected empty media list, not nil")
	}

	for _, rating := range []int{0, 6} {
		if _, err := f.memories.Create(ctx, f.owner.ID, domain.NewMemory{TripID: &trip.ID, Rating: intPtr(rating)}); !errors.Is(err, ErrValidation) {
			t.Fatalf("rating %d: expected validation error, got %v", rating, err)
		}
	}
}

func TestMemoryService_ListAndUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.createTrip(t)
	event := f.createEvent(t, trip.Schedules[0].ID, "Onsen", nil)

	first, err := f.memories.Create(ctx, f.owner.ID, domain.NewMemory{TripID: &trip.ID, Notes: strPtr("first")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := f.memories.Create(ctx, f.owner.ID, domain.NewMemory{TripID: &trip.ID, Notes: strPtr("second")}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := f.memories.Create(ctx, f.owner.ID, domain.NewMemory{EventID: &event.ID}); err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err := f.memories.ListByTrip(ctx, f.owner.ID, trip.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || *list[0].Notes != "second" {
		t.Fatalf("expected newest trip memory first, got %d items", len(list))
	}
	byEvent, err := f.memories.ListByEvent(ctx, f.owner.ID, event.ID)
	if err != nil || len(byEvent) != 1 {
		t.Fatalf("expected one event memory, got %d (%v)", len(byEvent), err)
	}
	if _, err := f.memories.ListByTrip(ctx, f.stranger.ID, trip.ID); !errors.Is(err, ErrTripNotFound) {
		t.Fatalf("expected ErrTripNotFound, got %v", err)
	}

	updated, err := f.memories.Update(ctx, f.owner.ID, first.ID, domain.MemoryPatch{
		Rating: domain.Some(3),
		Notes:  domain.Null[string](),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Notes != nil || updated.Rating == nil || *updated.Rating != 3 {
		t.Fatalf("unexpected update result %+v", updated)
	}
	if _, err := f.memories.Update(ctx, f.owner.ID, first.ID, domain.MemoryPatch{Rating: domain.Some(9)}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := f.memories.Update(ctx, f.stranger.ID, first.ID, domain.MemoryPatch{Rating: domain.Some(1)}); !errors.Is(err, ErrMemoryNotFound) {
		t.Fatalf("expected ErrMemoryNotFound, got %v", err)
	}

	if err := f.memories.Delete(ctx, f.stranger.ID, first.ID); !errors.Is(err, ErrMemoryNotFound) {
		t.Fatalf("expected ErrMemoryNotFound, got %v", err)
	}
	if err := f.memories.Delete(ctx, f.owner.ID, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestMemoryService_DeleteAuthorizesBeforeWriting(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.createTrip(t)
	memory, err := f.memories.Create(ctx, f.owner.ID, domain.NewMemory{TripID: &trip.ID, Notes: strPtr("sunset")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	storeDown := errors.New("store down")
	f.store.FailAfter(memstore.OpMemoryDelete, 0, storeDown)

	if err := f.memories.Delete(ctx, f.stranger.ID, memory.ID); !errors.Is(err, ErrMemoryNotFound) {
		t.Fatalf("stranger: expected ErrMemoryNotFound before any delete, got %v", err)
	}
	if err := f.memories.Delete(ctx, f.owner.ID, uuid.New()); !errors.Is(err, ErrMemoryNotFound) {
		t.Fatalf("unknown memory: expected ErrMemoryNotFound, got %v", err)
	}
	if err := f.memories.Delete(ctx, f.owner.ID, memory.ID); !errors.Is(err, storeDown) {
		t.Fatalf("owner: expected the delete to be attempted, got %v", err)
	}
	if f.store.MemoryCount() != 1 {
		t.Fatalf("memory should survive failed deletes")
	}
}
