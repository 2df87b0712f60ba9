package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
	"github.com/njprem/Trip_Planner_BackEnd/internal/repository/ports"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const query = `
		SELECT id, nickname, email, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	var user domain.User
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdateNickname(ctx context.Context, id uuid.UUID, nickname string) error {
	b := newUpdateBuilder("users", []column{colUserNickname})
	b.set(colUserNickname, nickname)
	query, args, err := b.build("", where(colID, id))
	if err != nil {
		return err
	}
	result, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
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

func (r *UserRepository) FindProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	const query = `
		SELECT u.id, u.nickname, u.email, p.bio, p.avatar_url, u.created_at, u.updated_at
		FROM users u
		LEFT JOIN user_profiles p ON p.user_id = u.id
		WHERE u.id = $1
	`
	var profile domain.Profile
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &profile, query, userID); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpsertProfile inserts the present columns, or overwrites just those columns
// when the profile row already exists. Absent columns keep their value.
func (r *UserRepository) UpsertProfile(ctx context.Context, userID uuid.UUID, bio, avatarURL domain.Optional[string]) error {
	cols := []string{"user_id"}
	args := []any{userID}
	var updates []string

	add := func(name string, opt domain.Optional[string]) {
		if !opt.Set {
			return
		}
		cols = append(cols, name)
		args = append(args, opt.Ptr())
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", name, name))
	}
	add("bio", bio)
	add("avatar_url", avatarURL)
	if len(updates) == 0 {
		return nil
	}

	placeholders := make([]string, len(args))
	for i := range args {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf(
		"INSERT INTO user_profiles (%s) VALUES (%s) ON CONFLICT (user_id) DO UPDATE SET %s",
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(updates, ", "),
	)
	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	return err
}

var _ ports.UserRepository = (*UserRepository)(nil)
