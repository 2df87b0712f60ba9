package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
	"github.com/njprem/Trip_Planner_BackEnd/internal/repository/ports"
)

type FavoritePlaceRepository struct {
	db *sqlx.DB
}

func NewFavoritePlaceRepo(db *sqlx.DB) *FavoritePlaceRepository {
	return &FavoritePlaceRepository{db: db}
}

const favoritePlaceColumns = `id, user_id, place_id, name, address, category, latitude, longitude, created_at`

// Add returns sql.ErrNoRows when the place is already saved.
func (r *FavoritePlaceRepository) Add(ctx context.Context, userID uuid.UUID, input domain.NewFavoritePlace) (*domain.FavoritePlace, error) {
	const query = `
		INSERT INTO favorite_places (user_id, place_id, name, address, category, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, place_id) DO NOTHING
		RETURNING ` + favoritePlaceColumns

	var place domain.FavoritePlace
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &place, query,
		userID, input.PlaceID, input.Name, input.Address, input.Category, input.Latitude, input.Longitude)
	if err != nil {
		return nil, err
	}
	return &place, nil
}

func (r *FavoritePlaceRepository) Remove(ctx context.Context, userID uuid.UUID, placeID string) error {
	const query = `
		DELETE FROM favorite_places
		WHERE user_id = $1 AND place_id = $2
	`
	result, err := executor(ctx, r.db).ExecContext(ctx, query, userID, placeID)
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

func (r *FavoritePlaceRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.FavoritePlace, error) {
	const query = `
		SELECT ` + favoritePlaceColumns + `
		FROM favorite_places
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryxContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.FavoritePlace, 0)
	for rows.Next() {
		var item domain.FavoritePlace
		if err := rows.StructScan(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *FavoritePlaceRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM favorite_places
		WHERE user_id = $1
	`
	var count int64
	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, err
	}
	return count, nil
}

var _ ports.FavoritePlaceRepository = (*FavoritePlaceRepository)(nil)
