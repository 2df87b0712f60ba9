// Package memstore is an in-memory implementation of the repository ports for
// tests. It enforces the same foreign keys, cascades, and check constraints as
// the postgres schema and reports violations as *pgconn.PgError.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
)

// Operation names accepted by FailAfter.
const (
	OpTripCreate     = "trips.create"
	OpTripDelete     = "trips.delete"
	OpScheduleCreate = "schedules.create"
	OpEventCreate    = "events.create"
	OpMemoryCreate   = "memories.create"
	OpMemoryDelete   = "memories.delete"
	OpProfileUpsert  = "profiles.upsert"
)

type profile struct {
	bio       *string
	avatarURL *string
}

type failure struct {
	after int
	err   error
}

type Store struct {
	mu sync.Mutex

	clock     time.Time
	users     map[uuid.UUID]domain.User
	profiles  map[uuid.UUID]profile
	trips     map[uuid.UUID]domain.Trip
	schedules map[uuid.UUID]domain.Schedule
	events    map[uuid.UUID]domain.Event
	memories  map[uuid.UUID]domain.Memory
	places    map[uuid.UUID]domain.FavoritePlace

	failures map[string]failure
	calls    map[string]int

	commits   int
	rollbacks int
}

func New() *Store {
	return &Store{
		clock:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		users:     map[uuid.UUID]domain.User{},
		profiles:  map[uuid.UUID]profile{},
		trips:     map[uuid.UUID]domain.Trip{},
		schedules: map[uuid.UUID]domain.Schedule{},
		events:    map[uuid.UUID]domain.Event{},
		memories:  map[uuid.UUID]domain.Memory{},
		places:    map[uuid.UUID]domain.FavoritePlace{},
		failures:  map[string]failure{},
		calls:     map[string]int{},
	}
}

func (s *Store) Trips() *TripRepo                   { return &TripRepo{s: s} }
func (s *Store) Schedules() *ScheduleRepo           { return &ScheduleRepo{s: s} }
func (s *Store) Events() *EventRepo                 { return &EventRepo{s: s} }
func (s *Store) Memories() *MemoryRepo              { return &MemoryRepo{s: s} }
func (s *Store) Users() *UserRepo                   { return &UserRepo{s: s} }
func (s *Store) FavoritePlaces() *FavoritePlaceRepo { return &FavoritePlaceRepo{s: s} }
func (s *Store) Transactor() *Transactor            { return &Transactor{s: s} }

// FailAfter makes op return err once it has succeeded n times.
func (s *Store) FailAfter(op string, n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = failure{after: n, err: err}
	s.calls[op] = 0
}

// AddUser seeds a user row, as the identity service would.
func (s *Store) AddUser(nickname, email string) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.tick()
	u := domain.User{
		ID:           uuid.New(),
		Nickname:     nickname,
		Email:        email,
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.users[u.ID] = u
	return u
}

func (s *Store) TripCount() int     { return s.count(func() int { return len(s.trips) }) }
func (s *Store) ScheduleCount() int { return s.count(func() int { return len(s.schedules) }) }
func (s *Store) EventCount() int    { return s.count(func() int { return len(s.events) }) }
func (s *Store) MemoryCount() int   { return s.count(func() int { return len(s.memories) }) }

// Commits and Rollbacks count outermost RunAtomic outcomes.
func (s *Store) Commits() int   { return s.count(func() int { return s.commits }) }
func (s *Store) Rollbacks() int { return s.count(func() int { return s.rollbacks }) }

func (s *Store) count(fn func() int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

// tick advances the fake clock so created_at ordering is deterministic.
// Callers hold s.mu.
func (s *Store) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

// fail reports an injected failure for op. Callers hold s.mu.
func (s *Store) fail(op string) error {
	f, ok := s.failures[op]
	if !ok {
		return nil
	}
	s.calls[op]++
	if s.calls[op] > f.after {
		return f.err
	}
	return nil
}

func foreignKeyViolation(constraint string) error {
	return &pgconn.PgError{Code: "23503", ConstraintName: constraint, Message: "violates foreign key constraint"}
}

func checkViolation(constraint string) error {
	return &pgconn.PgError{Code: "23514", ConstraintName: constraint, Message: "violates check constraint"}
}

type snapshot struct {
	users     map[uuid.UUID]domain.User
	profiles  map[uuid.UUID]profile
	trips     map[uuid.UUID]domain.Trip
	schedules map[uuid.UUID]domain.Schedule
	events    map[uuid.UUID]domain.Event
	memories  map[uuid.UUID]domain.Memory
	places    map[uuid.UUID]domain.FavoritePlace
}

func copyMap[K comparable, V any](in map[K]V) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func (s *Store) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot{
		users:     copyMap(s.users),
		profiles:  copyMap(s.profiles),
		trips:     copyMap(s.trips),
		schedules: copyMap(s.schedules),
		events:    copyMap(s.events),
		memories:  copyMap(s.memories),
		places:    copyMap(s.places),
	}
}

func (s *Store) restore(snap snapshot) {
	s.users = snap.users
	s.profiles = snap.profiles
	s.trips = snap.trips
	s.schedules = snap.schedules
	s.events = snap.events
	s.memories = snap.memories
	s.places = snap.places
}

type txKey struct{}

// Transactor emulates RunAtomic by restoring a snapshot when fn fails.
type Transactor struct {
	s *Store
}

func (t *Transactor) RunAtomic(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	snap := t.s.snapshot()
	committed := false
	defer func() {
		if committed {
			return
		}
		t.s.mu.Lock()
		t.s.restore(snap)
		t.s.rollbacks++
		t.s.mu.Unlock()
	}()

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	t.s.mu.Lock()
	t.s.commits++
	t.s.mu.Unlock()
	committed = true
	return nil
}

func setOptional[T any](dst **T, opt domain.Optional[T]) {
	if opt.Set {
		*dst = opt.Ptr()
	}
}
