package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
	"github.com/njprem/Trip_Planner_BackEnd/internal/metrics"
	"github.com/njprem/Trip_Planner_BackEnd/internal/service"
	"github.com/njprem/Trip_Planner_BackEnd/internal/testutil/memstore"
	"github.com/njprem/Trip_Planner_BackEnd/internal/util"
)

type testServer struct {
	e        *echo.Echo
	store    *memstore.Store
	owner    string
	stranger string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store := memstore.New()
	jwtManager := util.NewJWTManager("test-secret", time.Hour)

	authz := service.NewOwnershipAuthorizer(store.Trips(), store.Schedules(), store.Events(), store.Memories())
	reader := service.NewItineraryReader(store.Trips(), store.Schedules(), store.Events(), 4)
	tx := store.Transactor()
	auth := service.NewAuthService(store.Users(), jwtManager)

	e := NewRouter(RouterConfig{AllowOrigins: []string{"*"}, Metrics: metrics.New()})
	RegisterTrips(e, auth, service.NewTripService(store.Trips(), store.Schedules(), tx, authz, reader, nil), nopLogger)
	RegisterSchedules(e, auth, service.NewScheduleService(store.Schedules(), tx, authz, reader), nopLogger)
	RegisterEvents(e, auth, service.NewEventService(store.Events(), authz, reader), nopLogger)
	RegisterMemories(e, auth, service.NewMemoryService(store.Memories(), authz), nopLogger)
	RegisterProfile(e, auth, service.NewProfileService(store.Users(), tx), nopLogger)
	RegisterFavoritePlaces(e, auth, service.NewFavoritePlaceService(store.FavoritePlaces()), nopLogger)

	token := func(u domain.User) string {
		signed, _, err := jwtManager.Generate(u.ID, u.Email)
		if err != nil {
			t.Fatalf("generate token: %v", err)
		}
		return signed
	}
	return &testServer{
		e:        e,
		store:    store,
		owner:    token(store.AddUser("owner", "owner@example.com")),
		stranger: token(store.AddUser("stranger", "stranger@example.com")),
	}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %s: %v", rec.Body.String(), err)
	}
	return out
}

func (s *testServer) createTrip(t *testing.T) domain.TripWithSchedules {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/v1/trips", s.owner, map[string]any{
		"name":       "Kyoto",
		"start_date": "2024-08-10",
		"end_date":   "2024-08-12",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create trip: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	return decode[domain.TripWithSchedules](t, rec)
}

func TestTripRoutes_CreateSeedsDays(t *testing.T) {
	s := newTestServer(t)
	trip := s.createTrip(t)

	if len(trip.Schedules) != 3 {
		t.Fatalf("expected 3 schedules, got %d", len(trip.Schedules))
	}
	if trip.Schedules[2].DayDescription == nil || *trip.Schedules[2].DayDescription != "Day 3" {
		t.Fatalf("unexpected third day %+v", trip.Schedules[2])
	}

	rec := s.do(t, http.MethodGet, "/api/v1/trips/"+trip.ID.String(), s.owner, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get trip: expected 200, got %d", rec.Code)
	}
	detail := decode[domain.TripDetail](t, rec)
	if len(detail.Schedules) != 3 || detail.Schedules[0].Events == nil {
		t.Fatalf("expected deep tree with event lists, got %+v", detail.Schedules)
	}
}

func TestTripRoutes_RequestErrors(t *testing.T) {
	s := newTestServer(t)
	trip := s.createTrip(t)

	cases := []struct {
		name   string
		method string
		path   string
		token  string
		body   any
		want   int
	}{
		{"no token", http.MethodGet, "/api/v1/trips", "", nil, http.StatusUnauthorized},
		{"bad token", http.MethodGet, "/api/v1/trips", "garbage", nil, http.StatusUnauthorized},
		{"missing name", http.MethodPost, "/api/v1/trips", s.owner, map[string]any{"start_date": "2024-01-01"}, http.StatusBadRequest},
		{"reversed range", http.MethodPost, "/api/v1/trips", s.owner, map[string]any{"name": "x", "start_date": "2024-01-05", "end_date": "2024-01-01"}, http.StatusBadRequest},
		{"malformed json", http.MethodPost, "/api/v1/trips", s.owner, `{"name":`, http.StatusBadRequest},
		{"bad id", http.MethodGet, "/api/v1/trips/not-a-uuid", s.owner, nil, http.StatusBadRequest},
		{"foreign trip", http.MethodGet, "/api/v1/trips/" + trip.ID.String(), s.stranger, nil, http.StatusNotFound},
		{"foreign update", http.MethodPut, "/api/v1/trips/" + trip.ID.String(), s.stranger, map[string]any{"name": "mine"}, http.StatusNotFound},
	}
	for _, tc := range cases {
		rec := s.do(t, tc.method, tc.path, tc.token, tc.body)
		if rec.Code != tc.want {
			t.Fatalf("%s: expected %d, got %d: %s", tc.name, tc.want, rec.Code, rec.Body.String())
		}
	}

	rec := s.do(t, http.MethodPost, "/api/v1/trips", s.owner, map[string]any{"start_date": "2024-01-01"})
	if got := decode[map[string]string](t, rec)["error"]; got != "name is required" {
		t.Fatalf("unexpected error message %q", got)
	}
}

func TestTripRoutes_UpdateAndDelete(t *testing.T) {
	s := newTestServer(t)
	trip := s.createTrip(t)
	path := "/api/v1/trips/" + trip.ID.String()

	rec := s.do(t, http.MethodPut, path, s.owner, `{"destinations": null, "status": "booked"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	updated := decode[domain.TripWithSchedules](t, rec)
	if updated.Name != "Kyoto" || updated.Status == nil || *updated.Status != "booked" {
		t.Fatalf("unexpected update result %+v", updated.Trip)
	}

	rec = s.do(t, http.MethodDelete, path, s.owner, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", rec.Code)
	}
	body := decode[map[string]json.RawMessage](t, rec)
	if _, ok := body["deleted_trip"]; !ok {
		t.Fatalf("expected deleted_trip in %s", rec.Body.String())
	}
	if s.store.ScheduleCount() != 0 {
		t.Fatalf("expected schedules removed with the trip")
	}
}

func TestScheduleRoutes_PartialHotelUpdate(t *testing.T) {
	s := newTestServer(t)
	trip := s.createTrip(t)
	path := "/api/v1/trips/" + trip.ID.String() + "/schedules/" + trip.Schedules[0].ID.String()

	rec := s.do(t, http.MethodPut, path, s.owner, map[string]any{
		"hotel_info": map[string]any{
			"name":          "Granvia",
			"address":       "Kyoto Station",
			"check_in_time": "2024-08-10T15:00:00Z",
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("first update: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = s.do(t, http.MethodPut, path, s.owner, map[string]any{
		"hotel_info": map[string]any{"check_out_time": "2024-08-11T10:00:00Z"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("second update: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	hotel := decode[domain.TripWithSchedules](t, rec).Schedules[0].HotelInfo
	if hotel == nil || hotel.Name == nil || *hotel.Name != "Granvia" || hotel.Address == nil || hotel.CheckInTime == nil {
		t.Fatalf("sibling hotel fields should be untouched, got %+v", hotel)
	}
	if hotel.CheckOutTime == nil || hotel.CheckOutTime.UTC().Hour() != 10 {
		t.Fatalf("expected check-out set, got %v", hotel.CheckOutTime)
	}

	rec = s.do(t, http.MethodPost, "/api/v1/trips/"+trip.ID.String()+"/schedules", s.owner, map[string]any{"day_description": "no date"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing date: expected 400, got %d", rec.Code)
	}
}

func TestEventRoutes_OwnershipAndDelete(t *testing.T) {
	s := newTestServer(t)
	trip := s.createTrip(t)
	base := "/api/v1/schedules/" + trip.Schedules[0].ID.String() + "/events"

	rec := s.do(t, http.MethodPost, base, s.owner, map[string]any{"name": "Temple", "time": "09:30"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create event: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	event := decode[domain.Event](t, rec)
	if event.Time == nil || *event.Time != "09:30:00" {
		t.Fatalf("expected normalized time, got %v", event.Time)
	}

	if rec := s.do(t, http.MethodGet, base+"/"+event.ID.String(), s.stranger, nil); rec.Code != http.StatusForbidden {
		t.Fatalf("foreign event: expected 403, got %d", rec.Code)
	}
	if rec := s.do(t, http.MethodPost, base, s.owner, map[string]any{"name": "Bad", "time": "noon"}); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad time: expected 400, got %d", rec.Code)
	}
	if rec := s.do(t, http.MethodDelete, base+"/"+event.ID.String(), s.owner, nil); rec.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", rec.Code)
	}
	if rec := s.do(t, http.MethodGet, base+"/"+event.ID.String(), s.owner, nil); rec.Code != http.StatusNotFound {
		t.Fatalf("deleted event: expected 404, got %d", rec.Code)
	}
}

func TestMemoryRoutes_TargetExclusivity(t *testing.T) {
	s := newTestServer(t)
	trip := s.createTrip(t)
	rec := s.do(t, http.MethodPost, "/api/v1/schedules/"+trip.Schedules[0].ID.String()+"/events", s.owner, map[string]any{"name": "Onsen"})
	event := decode[domain.Event](t, rec)

	rec = s.do(t, http.MethodPost, "/api/v1/memories", s.owner, map[string]any{
		"event_id": event.ID,
		"trip_id":  trip.ID,
		"notes":    "both",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("both targets: expected 400, got %d", rec.Code)
	}
	if rec := s.do(t, http.MethodPost, "/api/v1/memories", s.owner, map[string]any{"notes": "none"}); rec.Code != http.StatusBadRequest {
		t.Fatalf("no target: expected 400, got %d", rec.Code)
	}
	if s.store.MemoryCount() != 0 {
		t.Fatalf("expected no memory rows, got %d", s.store.MemoryCount())
	}

	rec = s.do(t, http.MethodPost, "/api/v1/memories", s.owner, map[string]any{"trip_id": trip.ID, "rating": 5})
	if rec.Code != http.StatusCreated {
		t.Fatalf("trip memory: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	memory := decode[domain.Memory](t, rec)

	rec = s.do(t, http.MethodGet, "/api/v1/trips/"+trip.ID.String()+"/memories", s.owner, nil)
	if rec.Code != http.StatusOK || len(decode[[]domain.Memory](t, rec)) != 1 {
		t.Fatalf("list trip memories: got %d %s", rec.Code, rec.Body.String())
	}
	if rec := s.do(t, http.MethodDelete, "/api/v1/memories/"+memory.ID.String(), s.stranger, nil); rec.Code != http.StatusNotFound {
		t.Fatalf("foreign delete: expected 404, got %d", rec.Code)
	}
	if rec := s.do(t, http.MethodDelete, "/api/v1/memories/"+memory.ID.String(), s.owner, nil); rec.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", rec.Code)
	}
}

func TestProfileAndFavoriteRoutes(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPut, "/api/v1/users/profile", s.owner, map[string]any{"bio": "hello"})
	if rec.Code != http.StatusOK {
		t.Fatalf("update profile: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	profile := decode[domain.Profile](t, rec)
	if profile.Nickname != "owner" || profile.Bio == nil || *profile.Bio != "hello" {
		t.Fatalf("unexpected profile %+v", profile)
	}
	if rec := s.do(t, http.MethodPut, "/api/v1/users/profile", s.owner, `{"nickname": null}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("null nickname: expected 400, got %d", rec.Code)
	}

	place := map[string]any{"place_id": "ChIJ-kyoto", "name": "Kyoto Tower", "latitude": 34.98}
	if rec := s.do(t, http.MethodPost, "/api/v1/users/me/favorite-places", s.owner, place); rec.Code != http.StatusCreated {
		t.Fatalf("save place: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec := s.do(t, http.MethodPost, "/api/v1/users/me/favorite-places", s.owner, place); rec.Code != http.StatusConflict {
		t.Fatalf("duplicate place: expected 409, got %d", rec.Code)
	}
	rec = s.do(t, http.MethodGet, "/api/v1/users/me/favorite-places?limit=5", s.owner, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list places: expected 200, got %d", rec.Code)
	}
	if rec := s.do(t, http.MethodDelete, "/api/v1/users/me/favorite-places/ChIJ-kyoto", s.owner, nil); rec.Code != http.StatusOK {
		t.Fatalf("remove place: expected 200, got %d", rec.Code)
	}
	if rec := s.do(t, http.MethodDelete, "/api/v1/users/me/favorite-places/ChIJ-kyoto", s.owner, nil); rec.Code != http.StatusNotFound {
		t.Fatalf("remove again: expected 404, got %d", rec.Code)
	}
}

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }

func TestHealthReportsDatabase(t *testing.T) {
	healthy := NewRouter(RouterConfig{AllowOrigins: []string{"*"}, DB: stubPinger{}})
	rec := httptest.NewRecorder()
	healthy.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	down := NewRouter(RouterConfig{AllowOrigins: []string{"*"}, DB: stubPinger{err: errors.New("refused")}})
	rec = httptest.NewRecorder()
	down.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}
