package domain

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID                       uuid.UUID `json:"id"`
	ScheduleID               uuid.UUID `json:"schedule_id"`
	Time                     *string   `json:"time"`
	Name                     string    `json:"name"`
	Category                 *string   `json:"category"`
	Description              *string   `json:"description"`
	Location                 *Location `json:"location"`
	EstimatedDurationMinutes *int      `json:"estimated_duration_minutes"`
	Type                     *string   `json:"type"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

type Location struct {
	Name      *string  `json:"name"`
	Address   *string  `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (l Location) IsZero() bool {
	return l.Name == nil && l.Address == nil && l.Latitude == nil && l.Longitude == nil
}

type NewEvent struct {
	Time                     *string
	Name                     string
	Category                 *string
	Description              *string
	Location                 *Location
	EstimatedDurationMinutes *int
	Type                     *string
}

type EventPatch struct {
	Time                     Optional[string]        `json:"time"`
	Name                     Optional[string]        `json:"name"`
	Category                 Optional[string]        `json:"category"`
	Description              Optional[string]        `json:"description"`
	Location                 Optional[LocationPatch] `json:"location"`
	EstimatedDurationMinutes Optional[int]           `json:"estimated_duration_minutes"`
	Type                     Optional[string]        `json:"type"`
}

type LocationPatch struct {
	Name      Optional[string]  `json:"name"`
	Address   Optional[string]  `json:"address"`
	Latitude  Optional[float64] `json:"latitude"`
	Longitude Optional[float64] `json:"longitude"`
}

func (p LocationPatch) IsEmpty() bool {
	return !p.Name.Set && !p.Address.Set && !p.Latitude.Set && !p.Longitude.Set
}

func (p EventPatch) IsEmpty() bool {
	if p.Time.Set || p.Name.Set || p.Category.Set || p.Description.Set ||
		p.EstimatedDurationMinutes.Set || p.Type.Set {
		return false
	}
	if !p.Location.Set {
		return true
	}
	return !p.Location.Null && p.Location.Value.IsEmpty()
}
