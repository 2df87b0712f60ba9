package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
	"github.com/njprem/Trip_Planner_BackEnd/internal/service"
	"github.com/njprem/Trip_Planner_BackEnd/internal/util"
)

type ScheduleHandler struct {
	schedules *service.ScheduleService
	logger    *zap.Logger
}

type createScheduleRequest struct {
	Date           *domain.Date      `json:"date" validate:"required"`
	DayDescription *string           `json:"day_description"`
	HotelInfo      *domain.HotelInfo `json:"hotel_info"`
}

func RegisterSchedules(e *echo.Echo, auth *service.AuthService, schedules *service.ScheduleService, logger *zap.Logger) {
	handler := &ScheduleHandler{schedules: schedules, logger: logger}

	g := e.Group("/api/v1/trips/:id/schedules", RequireAuth(auth, logger))
	g.POST("", handler.createSchedule)
	g.GET("", handler.listSchedules)
	g.GET("/:schedule_id", handler.getSchedule)
	g.PUT("/:schedule_id", handler.updateSchedule)
	g.DELETE("/:schedule_id", handler.deleteSchedule)
}

func (h *ScheduleHandler) createSchedule(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	tripID, err := pathUUID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	var req createScheduleRequest
	if err := bindRequest(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	trip, err := h.schedules.Create(c.Request().Context(), user.ID, tripID, domain.NewSchedule{
		Date:           *req.Date,
		DayDescription: req.DayDescription,
		HotelInfo:      req.HotelInfo,
	})
	if err != nil {
		return writeServiceError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, trip)
}

func (h *ScheduleHandler) listSchedules(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	tripID, err := pathUUID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	schedules, err := h.schedules.List(c.Request().Context(), user.ID, tripID)
	if err != nil {
		return writeServiceError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, schedules)
}

func (h *ScheduleHandler) getSchedule(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	tripID, scheduleID, err := scheduleParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	schedule, err := h.schedules.Get(c.Request().Context(), user.ID, tripID, scheduleID)
	if err != nil {
		return writeServiceError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, schedule)
}

func (h *ScheduleHandler) updateSchedule(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	tripID, scheduleID, err := scheduleParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	var patch domain.SchedulePatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	trip, err := h.schedules.Update(c.Request().Context(), user.ID, tripID, scheduleID, patch)
	if err != nil {
		return writeServiceError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, trip)
}

func (h *ScheduleHandler) deleteSchedule(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	tripID, scheduleID, err := scheduleParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	deleted, err := h.schedules.Delete(c.Request().Context(), user.ID, tripID, scheduleID)
	if err != nil {
		return writeServiceError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, util.Message("Schedule deleted successfully.", "deleted_schedule", deleted))
}

func scheduleParams(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	tripID, err := pathUUID(c, "id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	scheduleID, err := pathUUID(c, "schedule_id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return tripID, scheduleID, nil
}
