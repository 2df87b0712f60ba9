package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
	"github.com/njprem/Trip_Planner_BackEnd/internal/repository/ports"
)

type ScheduleRepository struct {
	db *sqlx.DB
}

func NewScheduleRepo(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) Create(ctx context.Context, tripID uuid.UUID, input domain.NewSchedule) (*domain.Schedule, error) {
	const query = `
		INSERT INTO schedules (
			trip_id, date, day_description,
			hotel_name, hotel_address, hotel_check_in_time, hotel_check_out_time,
			hotel_reservation_number, hotel_notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + scheduleColumns

	args := append([]any{tripID, input.Date, input.DayDescription}, hotelArgs(input.HotelInfo)...)
	var row scheduleRow
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &row, query, args...); err != nil {
		return nil, err
	}
	s := row.toDomain()
	return &s, nil
}

func (r *ScheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = $1`
	var row scheduleRow
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &row, query, id); err != nil {
		return nil, err
	}
	s := row.toDomain()
	return &s, nil
}

func (r *ScheduleRepository) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE trip_id = $1
		ORDER BY date ASC, created_at ASC`

	var rows []scheduleRow
	if err := sqlx.SelectContext(ctx, executor(ctx, r.db), &rows, query, tripID); err != nil {
		return nil, err
	}
	return toSchedules(rows), nil
}

func (r *ScheduleRepository) Update(ctx context.Context, id, tripID uuid.UUID, patch domain.SchedulePatch) (*domain.Schedule, error) {
	b := newUpdateBuilder("schedules", scheduleUpdatable)
	applySchedulePatch(b, patch)
	if b.empty() {
		return r.findInTrip(ctx, id, tripID)
	}
	query, args, err := b.build(scheduleColumns, where(colID, id), where(colTripID, tripID))
	if err != nil {
		return nil, err
	}
	var row scheduleRow
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &row, query, args...); err != nil {
		return nil, err
	}
	s := row.toDomain()
	return &s, nil
}

func (r *ScheduleRepository) Delete(ctx context.Context, id, tripID uuid.UUID) (*domain.Schedule, error) {
	query := `DELETE FROM schedules WHERE id = $1 AND trip_id = $2 RETURNING ` + scheduleColumns
	var row scheduleRow
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &row, query, id, tripID); err != nil {
		return nil, err
	}
	s := row.toDomain()
	return &s, nil
}

func (r *ScheduleRepository) findInTrip(ctx context.Context, id, tripID uuid.UUID) (*domain.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = $1 AND trip_id = $2`
	var row scheduleRow
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &row, query, id, tripID); err != nil {
		return nil, err
	}
	s := row.toDomain()
	return &s, nil
}

var _ ports.ScheduleRepository = (*ScheduleRepository)(nil)
