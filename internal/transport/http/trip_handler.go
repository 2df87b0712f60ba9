package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
	"github.com/njprem/Trip_Planner_BackEnd/internal/service"
	"github.com/njprem/Trip_Planner_BackEnd/internal/util"
)

type TripHandler struct {
	trips  *service.TripService
	logger *zap.Logger
}

type createTripRequest struct {
	Name          string       `json:"name" validate:"required,max=255"`
	PeriodSummary *string      `json:"period_summary" validate:"omitempty,max=255"`
	StartDate     *domain.Date `json:"start_date"`
	EndDate       *domain.Date `json:"end_date"`
	Destinations  *string      `json:"destinations"`
	Status        *string      `json:"status" validate:"omitempty,max=50"`
	CoverImageURL *string      `json:"cover_image_url" validate:"omitempty,url"`
	IsPublic      bool         `json:"is_public"`
}

func RegisterTrips(e *echo.Echo, auth *service.AuthService, trips *service.TripService, logger *zap.Logger) {
	handler := &TripHandler{trips: trips, logger: logger}

	g := e.Group("/api/v1/trips", RequireAuth(auth, logger))
	g.POST("", handler.createTrip)
	g.GET("", handler.listTrips)
	g.GET("/:id", handler.getTrip)
	g.PUT("/:id", handler.updateTrip)
	g.DELETE("/:id", handler.deleteTrip)
}

func (h *TripHandler) createTrip(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	var req createTripRequest
	if err := bindRequest(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	trip, err := h.trips.Create(c.Request().Context(), user.ID, domain.NewTrip{
		Name:          req.Name,
		PeriodSummary: req.PeriodSummary,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Destinations:  req.Destinations,
		Status:        req.Status,
		CoverImageURL: req.CoverImageURL,
		IsPublic:      req.IsPublic,
	})
	if err != nil {
		return writeServiceError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, trip)
}

func (h *TripHandler) listTrips(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	trips, err := h.trips.List(c.Request().Context(), user.ID)
	if err != nil {
		return writeServiceError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, trips)
}

func (h *TripHandler) getTrip(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	tripID, err := pathUUID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	trip, err := h.trips.Get(c.Request().Context(), user.ID, tripID)
	if err != nil {
		return writeServiceError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, trip)
}

func (h *TripHandler) updateTrip(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	tripID, err := pathUUID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	var patch domain.TripPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	trip, err := h.trips.Update(c.Request().Context(), user.ID, tripID, patch)
	if err != nil {
		return writeServiceError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, trip)
}

func (h *TripHandler) deleteTrip(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	tripID, err := pathUUID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	deleted, err := h.trips.Delete(c.Request().Context(), user.ID, tripID)
	if err != nil {
		return writeServiceError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, util.Message("Trip deleted successfully.", "deleted_trip", deleted))
}
