package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/njprem/Trip_Planner_BackEnd/internal/service"
	"github.com/njprem/Trip_Planner_BackEnd/internal/util"
)

// writeServiceError maps service errors onto status codes. Anything not
// recognised is logged and reported as a 500 without internal detail.
func writeServiceError(c echo.Context, logger *zap.Logger, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, util.Error(validationMessage(err)))
	case errors.Is(err, service.ErrUnauthenticated):
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	case errors.Is(err, service.ErrScheduleForbidden),
		errors.Is(err, service.ErrEventForbidden):
		return c.JSON(http.StatusForbidden, util.Error(err.Error()))
	case errors.Is(err, service.ErrTripNotFound),
		errors.Is(err, service.ErrScheduleNotFound),
		errors.Is(err, service.ErrEventNotFound),
		errors.Is(err, service.ErrMemoryNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrFavoritePlaceNotFound):
		return c.JSON(http.StatusNotFound, util.Error(err.Error()))
	case errors.Is(err, service.ErrFavoritePlaceAlreadyExists):
		return c.JSON(http.StatusConflict, util.Error(err.Error()))
	case errors.Is(err, service.ErrConstraintViolation):
		logger.Error("constraint violation", zap.String("path", c.Path()), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, util.Error("request conflicts with stored data"))
	default:
		logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}
}

// validationMessage drops the "validation failed: " prefix so clients get the
// specific reason.
func validationMessage(err error) string {
	prefix := service.ErrValidation.Error() + ": "
	return strings.TrimPrefix(err.Error(), prefix)
}
