package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
)

func TestMemoryRepositoryCreateScansMediaURLs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMemoryRepo(db)

	userID, tripID := uuid.New(), uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO memories")).
		WithArgs(userID, nil, tripID, "sunset", 5, `{"a.jpg","b.jpg"}`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "event_id", "trip_id", "notes", "rating", "media_urls"}).
			AddRow(uuid.NewString(), userID.String(), nil, tripID.String(), "sunset", 5, "{a.jpg,b.jpg}"))

	notes, rating := "sunset", 5
	m, err := repo.Create(context.Background(), userID, domain.NewMemory{
		TripID:    &tripID,
		Notes:     &notes,
		Rating:    &rating,
		MediaURLs: []string{"a.jpg", "b.jpg"},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if m.EventID != nil || m.TripID == nil || *m.TripID != tripID {
		t.Fatalf("unexpected targets: event=%v trip=%v", m.EventID, m.TripID)
	}
	if len(m.MediaURLs) != 2 || m.MediaURLs[1] != "b.jpg" {
		t.Fatalf("unexpected media urls: %v", m.MediaURLs)
	}
	expectationsMet(t, mock)
}

func TestMemoryRepositoryDeleteNotOwned(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMemoryRepo(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM memories WHERE id = $1 AND user_id = $2")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestMemoryRowNullMediaBecomesEmptyList(t *testing.T) {
	m := memoryRow{ID: uuid.New()}.toDomain()
	if m.MediaURLs == nil || len(m.MediaURLs) != 0 {
		t.Fatalf("expected empty media list, got %#v", m.MediaURLs)
	}
}
