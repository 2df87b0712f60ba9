package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
)

var (
	errColumnNotUpdatable = errors.New("column is not updatable")
	errEmptyUpdate        = errors.New("update has no columns")
)

// column is a SQL identifier. Only the constants below are ever interpolated
// into statements; values always travel as $n arguments.
type column string

const (
	colID     column = "id"
	colUserID column = "user_id"
	colTripID column = "trip_id"

	colTripName          column = "name"
	colTripPeriodSummary column = "period_summary"
	colTripStartDate     column = "start_date"
	colTripEndDate       column = "end_date"
	colTripDestinations  column = "destinations"
	colTripStatus        column = "status"
	colTripCoverImageURL column = "cover_image_url"
	colTripIsPublic      column = "is_public"

	colScheduleDate           column = "date"
	colScheduleDayDescription column = "day_description"
	colHotelName              column = "hotel_name"
	colHotelAddress           column = "hotel_address"
	colHotelCheckInTime       column = "hotel_check_in_time"
	colHotelCheckOutTime      column = "hotel_check_out_time"
	colHotelReservationNumber column = "hotel_reservation_number"
	colHotelNotes             column = "hotel_notes"
	colEventScheduleID        column = "schedule_id"
	colEventTime              column = `"time"`
	colEventName              column = "name"
	colEventCategory          column = "category"
	colEventDescription       column = "description"
	colLocationName           column = "location_name"
	colLocationAddress        column = "location_address"
	colLocationLatitude       column = "location_latitude"
	colLocationLongitude      column = "location_longitude"
	colEventEstimatedDuration column = "estimated_duration_minutes"
	colEventType              column = `"type"`
	colMemoryNotes            column = "notes"
	colMemoryRating           column = "rating"
	colMemoryMediaURLs        column = "media_urls"
	colUserNickname           column = "nickname"
)

var (
	tripUpdatable = []column{
		colTripName, colTripPeriodSummary, colTripStartDate, colTripEndDate,
		colTripDestinations, colTripStatus, colTripCoverImageURL, colTripIsPublic,
	}
	hotelColumns = []column{
		colHotelName, colHotelAddress, colHotelCheckInTime,
		colHotelCheckOutTime, colHotelReservationNumber, colHotelNotes,
	}
	scheduleUpdatable = append([]column{colScheduleDate, colScheduleDayDescription}, hotelColumns...)
	locationColumns   = []column{
		colLocationName, colLocationAddress, colLocationLatitude, colLocationLongitude,
	}
	eventUpdatable = append([]column{
		colEventTime, colEventName, colEventCategory, colEventDescription,
		colEventEstimatedDuration, colEventType,
	}, locationColumns...)
	memoryUpdatable = []column{colMemoryNotes, colMemoryRating, colMemoryMediaURLs}
)

type predicate struct {
	col   column
	value any
}

func where(col column, value any) predicate {
	return predicate{col: col, value: value}
}

// updateBuilder collects SET clauses for one table. Columns outside the
// table's allow-list are rejected when the statement is built.
type updateBuilder struct {
	table   string
	allowed map[column]struct{}
	sets    []string
	args    []any
	err     error
}

func newUpdateBuilder(table string, allowed []column) *updateBuilder {
	set := make(map[column]struct{}, len(allowed))
	for _, c := range allowed {
		set[c] = struct{}{}
	}
	return &updateBuilder{table: table, allowed: set}
}

func (b *updateBuilder) set(col column, value any) {
	if b.err != nil {
		return
	}
	if _, ok := b.allowed[col]; !ok {
		b.err = fmt.Errorf("%w: %s.%s", errColumnNotUpdatable, b.table, col)
		return
	}
	b.args = append(b.args, value)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", col, len(b.args)))
}

func (b *updateBuilder) clear(cols ...column) {
	for _, c := range cols {
		b.set(c, nil)
	}
}

func (b *updateBuilder) empty() bool {
	return len(b.sets) == 0 && b.err == nil
}

// build renders UPDATE ... SET ... WHERE ... RETURNING. Predicates are ANDed
// and numbered after the SET arguments.
func (b *updateBuilder) build(returning string, preds ...predicate) (string, []any, error) {
	if b.err != nil {
		return "", nil, b.err
	}
	if len(b.sets) == 0 {
		return "", nil, errEmptyUpdate
	}
	args := make([]any, 0, len(b.args)+len(preds))
	args = append(args, b.args...)
	conds := make([]string, 0, len(preds))
	for _, p := range preds {
		args = append(args, p.value)
		conds = append(conds, fmt.Sprintf("%s = $%d", p.col, len(args)))
	}
	query := fmt.Sprintf("UPDATE %s SET %s", b.table, strings.Join(b.sets, ", "))
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	if returning != "" {
		query += " RETURNING " + returning
	}
	return query, args, nil
}

// setOptional adds a clause only when the field was present in the payload;
// an explicit null writes NULL.
func setOptional[T any](b *updateBuilder, col column, opt domain.Optional[T]) {
	if !opt.Set {
		return
	}
	if opt.Null {
		b.set(col, nil)
		return
	}
	b.set(col, opt.Value)
}

func applyTripPatch(b *updateBuilder, p domain.TripPatch) {
	setOptional(b, colTripName, p.Name)
	setOptional(b, colTripPeriodSummary, p.PeriodSummary)
	setOptional(b, colTripStartDate, p.StartDate)
	setOptional(b, colTripEndDate, p.EndDate)
	setOptional(b, colTripDestinations, p.Destinations)
	setOptional(b, colTripStatus, p.Status)
	setOptional(b, colTripCoverImageURL, p.CoverImageURL)
	setOptional(b, colTripIsPublic, p.IsPublic)
}

func applySchedulePatch(b *updateBuilder, p domain.SchedulePatch) {
	setOptional(b, colScheduleDate, p.Date)
	setOptional(b, colScheduleDayDescription, p.DayDescription)
	if !p.HotelInfo.Set {
		return
	}
	if p.HotelInfo.Null {
		b.clear(hotelColumns...)
		return
	}
	h := p.HotelInfo.Value
	setOptional(b, colHotelName, h.Name)
	setOptional(b, colHotelAddress, h.Address)
	setOptional(b, colHotelCheckInTime, h.CheckInTime)
	setOptional(b, colHotelCheckOutTime, h.CheckOutTime)
	setOptional(b, colHotelReservationNumber, h.ReservationNumber)
	setOptional(b, colHotelNotes, h.Notes)
}

func applyEventPatch(b *updateBuilder, p domain.EventPatch) {
	setOptional(b, colEventTime, p.Time)
	setOptional(b, colEventName, p.Name)
	setOptional(b, colEventCategory, p.Category)
	setOptional(b, colEventDescription, p.Description)
	setOptional(b, colEventEstimatedDuration, p.EstimatedDurationMinutes)
	setOptional(b, colEventType, p.Type)
	if !p.Location.Set {
		return
	}
	if p.Location.Null {
		b.clear(locationColumns...)
		return
	}
	l := p.Location.Value
	setOptional(b, colLocationName, l.Name)
	setOptional(b, colLocationAddress, l.Address)
	setOptional(b, colLocationLatitude, l.Latitude)
	setOptional(b, colLocationLongitude, l.Longitude)
}

func applyMemoryPatch(b *updateBuilder, p domain.MemoryPatch) {
	setOptional(b, colMemoryNotes, p.Notes)
	setOptional(b, colMemoryRating, p.Rating)
	if p.MediaURLs.Set {
		if p.MediaURLs.Null {
			b.set(colMemoryMediaURLs, nil)
		} else {
			b.set(colMemoryMediaURLs, stringArray(p.MediaURLs.Value))
		}
	}
}
