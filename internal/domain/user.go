package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Nickname     string    `db:"nickname" json:"nickname"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Profile is the user row joined with its optional user_profiles row.
type Profile struct {
	UserID    uuid.UUID `db:"id" json:"id"`
	Nickname  string    `db:"nickname" json:"nickname"`
	Email     string    `db:"email" json:"email"`
	Bio       *string   `db:"bio" json:"bio"`
	AvatarURL *string   `db:"avatar_url" json:"avatar_url"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type ProfilePatch struct {
	Nickname  Optional[string] `json:"nickname"`
	Bio       Optional[string] `json:"bio"`
	AvatarURL Optional[string] `json:"avatar_url"`
}

func (p ProfilePatch) IsEmpty() bool {
	return !p.Nickname.Set && !p.Bio.Set && !p.AvatarURL.Set
}
