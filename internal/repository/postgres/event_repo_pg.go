package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
	"github.com/njprem/Trip_Planner_BackEnd/internal/repository/ports"
)

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepo(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, scheduleID uuid.UUID, input domain.NewEvent) (*domain.Event, error) {
	const query = `
		INSERT INTO events (
			schedule_id, "time", name, category, description,
			location_name, location_address, location_latitude, location_longitude,
			estimated_duration_minutes, "type"
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + eventColumns

	args := []any{scheduleID, input.Time, input.Name, input.Category, input.Description}
	args = append(args, locationArgs(input.Location)...)
	args = append(args, input.EstimatedDurationMinutes, input.Type)

	var row eventRow
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &row, query, args...); err != nil {
		return nil, err
	}
	e := row.toDomain()
	return &e, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	var row eventRow
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &row, query, id); err != nil {
		return nil, err
	}
	e := row.toDomain()
	return &e, nil
}

// ListBySchedule orders by time of day; untimed events sort last.
func (r *EventRepository) ListBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE schedule_id = $1
		ORDER BY "time" ASC NULLS LAST, created_at ASC`

	var rows []eventRow
	if err := sqlx.SelectContext(ctx, executor(ctx, r.db), &rows, query, scheduleID); err != nil {
		return nil, err
	}
	return toEvents(rows), nil
}

func (r *EventRepository) Update(ctx context.Context, id, scheduleID uuid.UUID, patch domain.EventPatch) (*domain.Event, error) {
	b := newUpdateBuilder("events", eventUpdatable)
	applyEventPatch(b, patch)
	if b.empty() {
		query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 AND schedule_id = $2`
		var row eventRow
		if err := sqlx.GetContext(ctx, executor(ctx, r.db), &row, query, id, scheduleID); err != nil {
			return nil, err
		}
		e := row.toDomain()
		return &e, nil
	}
	query, args, err := b.build(eventColumns, where(colID, id), where(colEventScheduleID, scheduleID))
	if err != nil {
		return nil, err
	}
	var row eventRow
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &row, query, args...); err != nil {
		return nil, err
	}
	e := row.toDomain()
	return &e, nil
}

func (r *EventRepository) Delete(ctx context.Context, id, scheduleID uuid.UUID) error {
	const query = `DELETE FROM events WHERE id = $1 AND schedule_id = $2`
	result, err := executor(ctx, r.db).ExecContext(ctx, query, id, scheduleID)
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

var _ ports.EventRepository = (*EventRepository)(nil)
