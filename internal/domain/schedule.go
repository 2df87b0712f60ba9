package domain

import (
	"time"

	"github.com/google/uuid"
)

type Schedule struct {
	ID             uuid.UUID  `json:"id"`
	TripID         uuid.UUID  `json:"trip_id"`
	Date           Date       `json:"date"`
	DayDescription *string    `json:"day_description"`
	HotelInfo      *HotelInfo `json:"hotel_info"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type HotelInfo struct {
	Name              *string    `json:"name"`
	Address           *string    `json:"address"`
	CheckInTime       *time.Time `json:"check_in_time"`
	CheckOutTime      *time.Time `json:"check_out_time"`
	ReservationNumber *string    `json:"reservation_number"`
	Notes             *string    `json:"notes"`
}

// IsZero is true when no hotel attribute is set; such a hotel is rendered as
// null.
func (h HotelInfo) IsZero() bool {
	return h.Name == nil && h.Address == nil && h.CheckInTime == nil &&
		h.CheckOutTime == nil && h.ReservationNumber == nil && h.Notes == nil
}

type NewSchedule struct {
	Date           Date
	DayDescription *string
	HotelInfo      *HotelInfo
}

type SchedulePatch struct {
	Date           Optional[Date]       `json:"date"`
	DayDescription Optional[string]     `json:"day_description"`
	HotelInfo      Optional[HotelPatch] `json:"hotel_info"`
}

type HotelPatch struct {
	Name              Optional[string]    `json:"name"`
	Address           Optional[string]    `json:"address"`
	CheckInTime       Optional[time.Time] `json:"check_in_time"`
	CheckOutTime      Optional[time.Time] `json:"check_out_time"`
	ReservationNumber Optional[string]    `json:"reservation_number"`
	Notes             Optional[string]    `json:"notes"`
}

func (p HotelPatch) IsEmpty() bool {
	return !p.Name.Set && !p.Address.Set && !p.CheckInTime.Set &&
		!p.CheckOutTime.Set && !p.ReservationNumber.Set && !p.Notes.Set
}

func (p SchedulePatch) IsEmpty() bool {
	if p.Date.Set || p.DayDescription.Set {
		return false
	}
	if !p.HotelInfo.Set {
		return true
	}
	return !p.HotelInfo.Null && p.HotelInfo.Value.IsEmpty()
}
