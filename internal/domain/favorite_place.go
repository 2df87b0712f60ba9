package domain

import (
	"time"

	"github.com/google/uuid"
)

// FavoritePlace is a bookmarked external place (e.g. a maps place id).
type FavoritePlace struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	PlaceID   string    `db:"place_id" json:"place_id"`
	Name      *string   `db:"name" json:"name"`
	Address   *string   `db:"address" json:"address"`
	Category  *string   `db:"category" json:"category"`
	Latitude  *float64  `db:"latitude" json:"latitude"`
	Longitude *float64  `db:"longitude" json:"longitude"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type NewFavoritePlace struct {
	PlaceID   string
	Name      *string
	Address   *string
	Category  *string
	Latitude  *float64
	Longitude *float64
}
