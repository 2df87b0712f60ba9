package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
	"github.com/njprem/Trip_Planner_BackEnd/internal/repository/ports"
)

type TripRepository struct {
	db *sqlx.DB
}

func NewTripRepo(db *sqlx.DB) *TripRepository {
	return &TripRepository{db: db}
}

func (r *TripRepository) Create(ctx context.Context, userID uuid.UUID, input domain.NewTrip) (*domain.Trip, error) {
	const query = `
		INSERT INTO trips (user_id, name, period_summary, start_date, end_date, destinations, status, cover_image_url, is_public)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + tripColumns

	var trip domain.Trip
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &trip, query,
		userID,
		input.Name,
		input.PeriodSummary,
		input.StartDate,
		input.EndDate,
		input.Destinations,
		input.Status,
		input.CoverImageURL,
		input.IsPublic,
	)
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *TripRepository) FindOwned(ctx context.Context, id, userID uuid.UUID) (*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1 AND user_id = $2`
	var trip domain.Trip
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &trip, query, id, userID); err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *TripRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error) {
	query := `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE user_id = $1
		ORDER BY start_date DESC, created_at DESC`

	trips := make([]domain.Trip, 0)
	if err := sqlx.SelectContext(ctx, executor(ctx, r.db), &trips, query, userID); err != nil {
		return nil, err
	}
	return trips, nil
}

// Update writes only the fields present in patch. An empty patch re-reads the
// current row.
func (r *TripRepository) Update(ctx context.Context, id, userID uuid.UUID, patch domain.TripPatch) (*domain.Trip, error) {
	b := newUpdateBuilder("trips", tripUpdatable)
	applyTripPatch(b, patch)
	if b.empty() {
		return r.FindOwned(ctx, id, userID)
	}
	query, args, err := b.build(tripColumns, where(colID, id), where(colUserID, userID))
	if err != nil {
		return nil, err
	}
	var trip domain.Trip
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &trip, query, args...); err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *TripRepository) Delete(ctx context.Context, id, userID uuid.UUID) (*domain.Trip, error) {
	query := `DELETE FROM trips WHERE id = $1 AND user_id = $2 RETURNING ` + tripColumns
	var trip domain.Trip
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &trip, query, id, userID); err != nil {
		return nil, err
	}
	return &trip, nil
}

var _ ports.TripRepository = (*TripRepository)(nil)
