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

type MemoryHandler struct {
	memories *service.MemoryService
	logger   *zap.Logger
}

// Target exclusivity is left to the service so that it is checked before any
// lookup.
type createMemoryRequest struct {
	EventID   *uuid.UUID `json:"event_id"`
	TripID    *uuid.UUID `json:"trip_id"`
	Notes     *string    `json:"notes"`
	Rating    *int       `json:"rating"`
	MediaURLs []string   `json:"media_urls" validate:"omitempty,max=50,dive,max=2048"`
}

func RegisterMemories(e *echo.Echo, auth *service.AuthService, memories *service.MemoryService, logger *zap.Logger) {
	handler := &MemoryHandler{memories: memories, logger: logger}
	requireAuth := RequireAuth(auth, logger)

	g := e.Group("/api/v1/memories", requireAuth)
	g.POST("", handler.createMemory)
	g.PUT("/:id", handler.updateMemory)
	g.DELETE("/:id", handler.deleteMemory)

	e.GET("/api/v1/trips/:id/memories", handler.listTripMemories, requireAuth)
	e.GET("/api/v1/events/:id/memories", handler.listEventMemories, requireAuth)
}

func (h *MemoryHandler) createMemory(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	var req createMemoryRequest
	if err := bindRequest(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	memory, err := h.memories.Create(c.Request().Context(), user.ID, domain.NewMemory{
		EventID:   req.EventID,
		TripID:    req.TripID,
		Notes:     req.Notes,
		Rating:    req.Rating,
		MediaURLs: req.MediaURLs,
	})
	if err != nil {
		return writeServiceError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, memory)
}

func (h *MemoryHandler) updateMemory(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	memoryID, err := pathUUID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	var patch domain.MemoryPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	memory, err := h.memories.Update(c.Request().Context(), user.ID, memoryID, patch)
	if err != nil {
		return writeServiceError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, memory)
}

func (h *MemoryHandler) deleteMemory(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	memoryID, err := pathUUID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	if err := h.memories.Delete(c.Request().Context(), user.ID, memoryID); err != nil {
		return writeServiceError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *MemoryHandler) listTripMemories(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	tripID, err := pathUUID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	memories, err := h.memories.ListByTrip(c.Request().Context(), user.ID, tripID)
	if err != nil {
		return writeServiceError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, memories)
}

func (h *MemoryHandler) listEventMemories(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	eventID, err := pathUUID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	memories, err := h.memories.ListByEvent(c.Request().Context(), user.ID, eventID)
	if err != nil {
		return writeServiceError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, memories)
}
