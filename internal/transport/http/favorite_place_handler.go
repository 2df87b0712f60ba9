package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/njprem/Trip_Planner_BackEnd/internal/domain"
	"github.com/njprem/Trip_Planner_BackEnd/internal/service"
	"github.com/njprem/Trip_Planner_BackEnd/internal/util"
)

type FavoritePlaceHandler struct {
	places *service.FavoritePlaceService
	logger *zap.Logger
}

type saveFavoritePlaceRequest struct {
	PlaceID   string   `json:"place_id" validate:"required,max=255"`
	Name      *string  `json:"name" validate:"omitempty,max=255"`
	Address   *string  `json:"address"`
	Category  *string  `json:"category" validate:"omitempty,max=100"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

type FavoritePlaceResponse struct {
	ID        string   `json:"id"`
	PlaceID   string   `json:"place_id"`
	Name      *string  `json:"name,omitempty"`
	Address   *string  `json:"address,omitempty"`
	Category  *string  `json:"category,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	SavedAt   string   `json:"saved_at"`
}

func RegisterFavoritePlaces(e *echo.Echo, auth *service.AuthService, places *service.FavoritePlaceService, logger *zap.Logger) {
	handler := &FavoritePlaceHandler{places: places, logger: logger}

	g := e.Group("/api/v1/users/me/favorite-places", RequireAuth(auth, logger))
	g.POST("", handler.savePlace)
	g.GET("", handler.listPlaces)
	g.DELETE("/:place_id", handler.removePlace)
}

func (h *FavoritePlaceHandler) savePlace(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	var req saveFavoritePlaceRequest
	if err := bindRequest(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	place, err := h.places.Save(c.Request().Context(), user.ID, domain.NewFavoritePlace{
		PlaceID:   req.PlaceID,
		Name:      req.Name,
		Address:   req.Address,
		Category:  req.Category,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return writeServiceError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, util.Envelope{
		"favorite_place": toFavoritePlaceResponse(*place),
		"message":        "Place saved to favorites",
	})
}

func (h *FavoritePlaceHandler) removePlace(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	placeID := strings.TrimSpace(c.Param("place_id"))
	if placeID == "" {
		return c.JSON(http.StatusBadRequest, util.Error("place_id is required"))
	}

	if err := h.places.Remove(c.Request().Context(), user.ID, placeID); err != nil {
		return writeServiceError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, util.Message("Place removed from favorites", "place_id", placeID))
}

func (h *FavoritePlaceHandler) listPlaces(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	limit, offset := parsePagination(c, 20, 0)
	result, err := h.places.List(c.Request().Context(), user.ID, limit, offset)
	if err != nil {
		return writeServiceError(c, h.logger, err)
	}

	items := make([]FavoritePlaceResponse, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, toFavoritePlaceResponse(item))
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"items": items,
		"pagination": util.Envelope{
			"limit":  result.Limit,
			"offset": result.Offset,
			"total":  result.Total,
			"count":  len(items),
		},
	})
}

func toFavoritePlaceResponse(place domain.FavoritePlace) FavoritePlaceResponse {
	return FavoritePlaceResponse{
		ID:        place.ID.String(),
		PlaceID:   place.PlaceID,
		Name:      place.Name,
		Address:   place.Address,
		Category:  place.Category,
		Latitude:  place.Latitude,
		Longitude: place.Longitude,
		SavedAt:   place.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func parsePagination(c echo.Context, defaultLimit, defaultOffset int) (int, int) {
	limit := defaultLimit
	offset := defaultOffset
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		limit = v
	}
	if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil {
		offset = v
	}
	return limit, offset
}
