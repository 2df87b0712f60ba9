package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddlewareCountsByRouteTemplate(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/v1/trips/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/trips/"+id, nil))
	}

	got := testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/api/v1/trips/:id", "200"))
	if got != 2 {
		t.Fatalf("expected 2 requests under the route template, got %v", got)
	}
}

func TestObserveTxAndHandler(t *testing.T) {
	m := New()
	m.ObserveTx("commit")
	m.ObserveTx("commit")
	m.ObserveTx("rollback")

	if got := testutil.ToFloat64(m.transactions.WithLabelValues("commit")); got != 2 {
		t.Fatalf("expected 2 commits, got %v", got)
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `trip_planner_db_transactions_total{outcome="rollback"} 1`) {
		t.Fatalf("rollback counter missing from exposition")
	}
}
