package domain

import (
	"time"

	"github.com/google/uuid"
)

// Memory is attached to exactly one of an event or a trip.
type Memory struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	EventID   *uuid.UUID `json:"event_id"`
	TripID    *uuid.UUID `json:"trip_id"`
	Notes     *string    `json:"notes"`
	Rating    *int       `json:"rating"`
	MediaURLs []string   `json:"media_urls"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type NewMemory struct {
	EventID   *uuid.UUID
	TripID    *uuid.UUID
	Notes     *string
	Rating    *int
	MediaURLs []string
}

type MemoryPatch struct {
	Notes     Optional[string]   `json:"notes"`
	Rating    Optional[int]      `json:"rating"`
	MediaURLs Optional[[]string] `json:"media_urls"`
}

func (p MemoryPatch) IsEmpty() bool {
	return !p.Notes.Set && !p.Rating.Set && !p.MediaURLs.Set
}
