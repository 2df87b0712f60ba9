package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
)

func TestRunAtomicCommitsOnSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	var outcomes []string
	tm := NewTxManager(db, WithTxObserver(func(o string) { outcomes = append(outcomes, o) }))

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM events")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewEventRepo(db)
	err := tm.RunAtomic(context.Background(), func(ctx context.Context) error {
		return repo.Delete(ctx, uuid.New(), uuid.New())
	})
	if err != nil {
		t.Fatalf("RunAtomic returned error: %v", err)
	}
	expectationsMet(t, mock)
	if len(outcomes) != 1 || outcomes[0] != TxOutcomeCommit {
		t.Fatalf("expected a single commit outcome, got %v", outcomes)
	}
}

func TestRunAtomicRollsBackSeededTripWhenScheduleInsertFails(t *testing.T) {
	db, mock := newMockDB(t)
	var outcomes []string
	tm := NewTxManager(db, WithTxObserver(func(o string) { outcomes = append(outcomes, o) }))
	trips := NewTripRepo(db)
	schedules := NewScheduleRepo(db)

	tripID := uuid.New()
	insertErr := errors.New("insert failed")

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO trips")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(tripID.String(), "Summer"))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO schedules")).WillReturnError(insertErr)
	mock.ExpectRollback()

	err := tm.RunAtomic(context.Background(), func(ctx context.Context) error {
		trip, err := trips.Create(ctx, uuid.New(), domain.NewTrip{Name: "Summer"})
		if err != nil {
			return err
		}
		_, err = schedules.Create(ctx, trip.ID, domain.NewSchedule{Date: domain.NewDate(2024, 8, 10)})
		return err
	})
	if !errors.Is(err, insertErr) {
		t.Fatalf("expected insert error, got %v", err)
	}
	expectationsMet(t, mock)
	if len(outcomes) != 1 || outcomes[0] != TxOutcomeRollback {
		t.Fatalf("expected a single rollback outcome, got %v", outcomes)
	}
}

func TestRunAtomicRollsBackWhenContextCanceled(t *testing.T) {
	db, mock := newMockDB(t)
	var outcomes []string
	tm := NewTxManager(db, WithTxObserver(func(o string) { outcomes = append(outcomes, o) }))

	mock.ExpectBegin()
	mock.ExpectRollback()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	err := tm.RunAtomic(ctx, func(ctx context.Context) error {
		cancel()
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(outcomes) != 1 || outcomes[0] != TxOutcomeRollback {
		t.Fatalf("expected a single rollback outcome, got %v", outcomes)
	}
	eventuallyMet(t, mock)
}

func TestRunAtomicRollsBackOnPanic(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTxManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic to propagate")
		}
		expectationsMet(t, mock)
	}()
	_ = tm.RunAtomic(context.Background(), func(ctx context.Context) error {
		panic("boom")
	})
}

func TestRunAtomicNestedCallJoinsOuterTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTxManager(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	var outer, inner any
	err := tm.RunAtomic(context.Background(), func(ctx context.Context) error {
		outer = executor(ctx, db)
		return tm.RunAtomic(ctx, func(ctx context.Context) error {
			inner = executor(ctx, db)
			return nil
		})
	})
	if err != nil {
		t.Fatalf("RunAtomic returned error: %v", err)
	}
	if outer == nil || outer != inner {
		t.Fatalf("expected nested call to reuse the outer transaction")
	}
	if outer == any(db) {
		t.Fatalf("expected executor to return the transaction, not the pool")
	}
	expectationsMet(t, mock)
}

func TestRunAtomicBeginFailure(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTxManager(db)
	mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

	called := false
	err := tm.RunAtomic(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})
	if err == nil {
		t.Fatalf("expected begin error")
	}
	if called {
		t.Fatalf("fn must not run when begin fails")
	}
	expectationsMet(t, mock)
}
