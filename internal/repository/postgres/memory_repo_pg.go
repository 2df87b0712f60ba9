package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
	"github.com/njprem/Trip_Planner_BackEnd/internal/repository/ports"
)

type MemoryRepository struct {
	db *sqlx.DB
}

func NewMemoryRepo(db *sqlx.DB) *MemoryRepository {
	return &MemoryRepository{db: db}
}

func (r *MemoryRepository) Create(ctx context.Context, userID uuid.UUID, input domain.NewMemory) (*domain.Memory, error) {
	const query = `
		INSERT INTO memories (user_id, event_id, trip_id, notes, rating, media_urls)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + memoryColumns

	var row memoryRow
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &row, query,
		userID,
		input.EventID,
		input.TripID,
		input.Notes,
		input.Rating,
		stringArray(input.MediaURLs),
	)
	if err != nil {
		return nil, err
	}
	m := row.toDomain()
	return &m, nil
}

func (r *MemoryRepository) FindOwned(ctx context.Context, id, userID uuid.UUID) (*domain.Memory, error) {
	query := `SELECT ` + memoryColumns + ` FROM memories WHERE id = $1 AND user_id = $2`
	var row memoryRow
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &row, query, id, userID); err != nil {
		return nil, err
	}
	m := row.toDomain()
	return &m, nil
}

func (r *MemoryRepository) ListByTrip(ctx context.Context, tripID, userID uuid.UUID) ([]domain.Memory, error) {
	query := `
		SELECT ` + memoryColumns + `
		FROM memories
		WHERE trip_id = $1 AND user_id = $2
		ORDER BY created_at DESC`

	var rows []memoryRow
	if err := sqlx.SelectContext(ctx, executor(ctx, r.db), &rows, query, tripID, userID); err != nil {
		return nil, err
	}
	return toMemories(rows), nil
}

func (r *MemoryRepository) ListByEvent(ctx context.Context, eventID, userID uuid.UUID) ([]domain.Memory, error) {
	query := `
		SELECT ` + memoryColumns + `
		FROM memories
		WHERE event_id = $1 AND user_id = $2
		ORDER BY created_at DESC`

	var rows []memoryRow
	if err := sqlx.SelectContext(ctx, executor(ctx, r.db), &rows, query, eventID, userID); err != nil {
		return nil, err
	}
	return toMemories(rows), nil
}

func (r *MemoryRepository) Update(ctx context.Context, id, userID uuid.UUID, patch domain.MemoryPatch) (*domain.Memory, error) {
	b := newUpdateBuilder("memories", memoryUpdatable)
	applyMemoryPatch(b, patch)
	if b.empty() {
		return r.FindOwned(ctx, id, userID)
	}
	query, args, err := b.build(memoryColumns, where(colID, id), where(colUserID, userID))
	if err != nil {
		return nil, err
	}
	var row memoryRow
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &row, query, args...); err != nil {
		return nil, err
	}
	m := row.toDomain()
	return &m, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	const query = `DELETE FROM memories WHERE id = $1 AND user_id = $2`
	result, err := executor(ctx, r.db).ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

var _ ports.MemoryRepository = (*MemoryRepository)(nil)
