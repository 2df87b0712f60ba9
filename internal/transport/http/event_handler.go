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

type EventHandler struct {
	events *service.EventService
	logger *zap.Logger
}

type createEventRequest struct {
	Name                     string           `json:"name" validate:"required,max=255"`
	Time                     *string          `json:"time"`
	Category                 *string          `json:"category" validate:"omitempty,max=100"`
	Description              *string          `json:"description"`
	Location                 *domain.Location `json:"location"`
	EstimatedDurationMinutes *int             `json:"estimated_duration_minutes" validate:"omitempty,min=0"`
	Type                     *string          `json:"type" validate:"omitempty,max=50"`
}

func RegisterEvents(e *echo.Echo, auth *service.AuthService, events *service.EventService, logger *zap.Logger) {
	handler := &EventHandler{events: events, logger: logger}

	g := e.Group("/api/v1/schedules/:schedule_id/events", RequireAuth(auth, logger))
	g.POST("", handler.createEvent)
	g.GET("", handler.listEvents)
	g.GET("/:event_id", handler.getEvent)
	g.PUT("/:event_id", handler.updateEvent)
	g.DELETE("/:event_id", handler.deleteEvent)
}

func (h *EventHandler) createEvent(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	scheduleID, err := pathUUID(c, "schedule_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	var req createEventRequest
	if err := bindRequest(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	event, err := h.events.Create(c.Request().Context(), user.ID, scheduleID, domain.NewEvent{
		Time:                     req.Time,
		Name:                     req.Name,
		Category:                 req.Category,
		Description:              req.Description,
		Location:                 req.Location,
		EstimatedDurationMinutes: req.EstimatedDurationMinutes,
		Type:                     req.Type,
	})
	if err != nil {
		return writeServiceError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) listEvents(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	scheduleID, err := pathUUID(c, "schedule_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	events, err := h.events.List(c.Request().Context(), user.ID, scheduleID)
	if err != nil {
		return writeServiceError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, events)
}

func (h *EventHandler) getEvent(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	scheduleID, eventID, err := eventParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	event, err := h.events.Get(c.Request().Context(), user.ID, scheduleID, eventID)
	if err != nil {
		return writeServiceError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, event)
}

func (h *EventHandler) updateEvent(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	scheduleID, eventID, err := eventParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	var patch domain.EventPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	event, err := h.events.Update(c.Request().Context(), user.ID, scheduleID, eventID, patch)
	if err != nil {
		return writeServiceError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, event)
}

func (h *EventHandler) deleteEvent(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	scheduleID, eventID, err := eventParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	if err := h.events.Delete(c.Request().Context(), user.ID, scheduleID, eventID); err != nil {
		return writeServiceError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func eventParams(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	scheduleID, err := pathUUID(c, "schedule_id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	eventID, err := pathUUID(c, "event_id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return scheduleID, eventID, nil
}
