package domain

import (
	"time"

	"github.com/google/uuid"
)

const TripStatusPlanning = "planning"

type Trip struct {
	ID            uuid.UUID `db:"id" json:"id"`
	UserID        uuid.UUID `db:"user_id" json:"user_id"`
	Name          string    `db:"name" json:"name"`
	PeriodSummary *string   `db:"period_summary" json:"period_summary"`
	StartDate     *Date     `db:"start_date" json:"start_date"`
	EndDate       *Date     `db:"end_date" json:"end_date"`
	Destinations  *string   `db:"destinations" json:"destinations"`
	Status        *string   `db:"status" json:"status"`
	CoverImageURL *string   `db:"cover_image_url" json:"cover_image_url"`
	IsPublic      bool      `db:"is_public" json:"is_public"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

type NewTrip struct {
	Name          string
	PeriodSummary *string
	StartDate     *Date
	EndDate       *Date
	Destinations  *string
	Status        *string
	CoverImageURL *string
	IsPublic      bool
}

type TripPatch struct {
	Name          Optional[string] `json:"name"`
	PeriodSummary Optional[string] `json:"period_summary"`
	StartDate     Optional[Date]   `json:"start_date"`
	EndDate       Optional[Date]   `json:"end_date"`
	Destinations  Optional[string] `json:"destinations"`
	Status        Optional[string] `json:"status"`
	CoverImageURL Optional[string] `json:"cover_image_url"`
	IsPublic      Optional[bool]   `json:"is_public"`
}

func (p TripPatch) IsEmpty() bool {
	return !p.Name.Set && !p.PeriodSummary.Set && !p.StartDate.Set && !p.EndDate.Set &&
		!p.Destinations.Set && !p.Status.Set && !p.CoverImageURL.Set && !p.IsPublic.Set
}

// TripWithSchedules is returned after mutations that touch a trip or one of
// its days.
type TripWithSchedules struct {
	Trip
	Schedules []Schedule `json:"schedules"`
}

// TripDetail is the fully expanded itinerary: trip, days, and the events of
// each day.
type TripDetail struct {
	Trip
	Schedules []ScheduleDetail `json:"schedules"`
}

type ScheduleDetail struct {
	Schedule
	Events []Event `json:"events"`
}
