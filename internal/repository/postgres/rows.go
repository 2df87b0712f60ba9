package postgres

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
)

const (
	tripColumns = `id, user_id, name, period_summary, start_date, end_date, destinations,
		status, cover_image_url, is_public, created_at, updated_at`

	scheduleColumns = `id, trip_id, date, day_description, hotel_name, hotel_address,
		hotel_check_in_time, hotel_check_out_time, hotel_reservation_number, hotel_notes,
		created_at, updated_at`

	eventColumns = `id, schedule_id, "time"::text AS "time", name, category, description,
		location_name, location_address, location_latitude, location_longitude,
		estimated_duration_minutes, "type", created_at, updated_at`

	memoryColumns = `id, user_id, event_id, trip_id, notes, rating, media_urls, created_at, updated_at`
)

// Row structs mirror table columns one to one. They never leave this package;
// toDomain folds the flat hotel and location columns into nested groups.

type scheduleRow struct {
	ID                     uuid.UUID   `db:"id"`
	TripID                 uuid.UUID   `db:"trip_id"`
	Date                   domain.Date `db:"date"`
	DayDescription         *string     `db:"day_description"`
	HotelName              *string     `db:"hotel_name"`
	HotelAddress           *string     `db:"hotel_address"`
	HotelCheckInTime       *time.Time  `db:"hotel_check_in_time"`
	HotelCheckOutTime      *time.Time  `db:"hotel_check_out_time"`
	HotelReservationNumber *string     `db:"hotel_reservation_number"`
	HotelNotes             *string     `db:"hotel_notes"`
	CreatedAt              time.Time   `db:"created_at"`
	UpdatedAt              time.Time   `db:"updated_at"`
}

func (r scheduleRow) toDomain() domain.Schedule {
	hotel := domain.HotelInfo{
		Name:              r.HotelName,
		Address:           r.HotelAddress,
		CheckInTime:       r.HotelCheckInTime,
		CheckOutTime:      r.HotelCheckOutTime,
		ReservationNumber: r.HotelReservationNumber,
		Notes:             r.HotelNotes,
	}
	s := domain.Schedule{
		ID:             r.ID,
		TripID:         r.TripID,
		Date:           r.Date,
		DayDescription: r.DayDescription,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
	if !hotel.IsZero() {
		s.HotelInfo = &hotel
	}
	return s
}

type eventRow struct {
	ID                       uuid.UUID `db:"id"`
	ScheduleID               uuid.UUID `db:"schedule_id"`
	Time                     *string   `db:"time"`
	Name                     string    `db:"name"`
	Category                 *string   `db:"category"`
	Description              *string   `db:"description"`
	LocationName             *string   `db:"location_name"`
	LocationAddress          *string   `db:"location_address"`
	LocationLatitude         *float64  `db:"location_latitude"`
	LocationLongitude        *float64  `db:"location_longitude"`
	EstimatedDurationMinutes *int      `db:"estimated_duration_minutes"`
	Type                     *string   `db:"type"`
	CreatedAt                time.Time `db:"created_at"`
	UpdatedAt                time.Time `db:"updated_at"`
}

func (r eventRow) toDomain() domain.Event {
	loc := domain.Location{
		Name:      r.LocationName,
		Address:   r.LocationAddress,
		Latitude:  r.LocationLatitude,
		Longitude: r.LocationLongitude,
	}
	e := domain.Event{
		ID:                       r.ID,
		ScheduleID:               r.ScheduleID,
		Time:                     r.Time,
		Name:                     r.Name,
		Category:                 r.Category,
		Description:              r.Description,
		EstimatedDurationMinutes: r.EstimatedDurationMinutes,
		Type:                     r.Type,
		CreatedAt:                r.CreatedAt,
		UpdatedAt:                r.UpdatedAt,
	}
	if !loc.IsZero() {
		e.Location = &loc
	}
	return e
}

type memoryRow struct {
	ID        uuid.UUID      `db:"id"`
	UserID    uuid.UUID      `db:"user_id"`
	EventID   *uuid.UUID     `db:"event_id"`
	TripID    *uuid.UUID     `db:"trip_id"`
	Notes     *string        `db:"notes"`
	Rating    *int           `db:"rating"`
	MediaURLs pq.StringArray `db:"media_urls"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (r memoryRow) toDomain() domain.Memory {
	urls := []string(r.MediaURLs)
	if urls == nil {
		urls = []string{}
	}
	return domain.Memory{
		ID:        r.ID,
		UserID:    r.UserID,
		EventID:   r.EventID,
		TripID:    r.TripID,
		Notes:     r.Notes,
		Rating:    r.Rating,
		MediaURLs: urls,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toSchedules(rows []scheduleRow) []domain.Schedule {
	out := make([]domain.Schedule, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out
}

func toEvents(rows []eventRow) []domain.Event {
	out := make([]domain.Event, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out
}

func toMemories(rows []memoryRow) []domain.Memory {
	out := make([]domain.Memory, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out
}

// stringArray keeps an empty list distinct from NULL when writing text[].
func stringArray(values []string) pq.StringArray {
	if values == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(values)
}

func hotelArgs(h *domain.HotelInfo) []any {
	if h == nil {
		return []any{nil, nil, nil, nil, nil, nil}
	}
	return []any{h.Name, h.Address, h.CheckInTime, h.CheckOutTime, h.ReservationNumber, h.Notes}
}

func locationArgs(l *domain.Location) []any {
	if l == nil {
		return []any{nil, nil, nil, nil}
	}
	return []any{l.Name, l.Address, l.Latitude, l.Longitude}
}
