package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
	"github.com/njprem/Trip_Planner_BackEnd/internal/service"
	"github.com/njprem/Trip_Planner_BackEnd/internal/util"
)

type ProfileHandler struct {
	profiles *service.ProfileService
	logger   *zap.Logger
}

func RegisterProfile(e *echo.Echo, auth *service.AuthService, profiles *service.ProfileService, logger *zap.Logger) {
	handler := &ProfileHandler{profiles: profiles, logger: logger}

	g := e.Group("/api/v1/users/profile", RequireAuth(auth, logger))
	g.GET("", handler.getProfile)
	g.PUT("", handler.updateProfile)
}

func (h *ProfileHandler) getProfile(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	profile, err := h.profiles.Get(c.Request().Context(), user.ID)
	if err != nil {
		return writeServiceError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) updateProfile(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	var patch domain.ProfilePatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	profile, err := h.profiles.Update(c.Request().Context(), user.ID, patch)
	if err != nil {
		return writeServiceError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, profile)
}
