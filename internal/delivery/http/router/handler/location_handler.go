package handler

import (
	"log/slog"
	"net/http"

	"fence/internal/delivery/http/middleware"
	"fence/internal/delivery/http/response"
	"fence/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	GeofenceUC usecase.GeofenceUsecase
	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for location-related handlers
type LocationHandler struct {
	geofenceUC usecase.GeofenceUsecase
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		geofenceUC: params.GeofenceUC,
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// ReportLocationRequest represents the request body for reporting a position
type ReportLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"required,min=-180,max=180"`
}

// ReportLocation ingests the calling ward's current position. Geofence entry
// detection and supporter alerts run as part of the ingest.
func (h *LocationHandler) ReportLocation(c echo.Context) error {
	var req ReportLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateLocationInput{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}

	record, err := h.geofenceUC.ReportLocation(c.Request().Context(), middleware.UserNumber(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record, "Location reported successfully")
}

// GetWardLocation returns a ward's most recent position. Only the ward
// themselves or a linked supporter may read it.
func (h *LocationHandler) GetWardLocation(c echo.Context) error {
	wardNumber := c.Param("number")
	if wardNumber == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Ward number is required")
	}

	record, err := h.locationUC.GetLatestLocation(c.Request().Context(), middleware.UserNumber(c), wardNumber)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record, "Location retrieved successfully")
}

// GetCachedWardLocation returns a ward's most recent position from the
// in-memory cache only. A miss reports not-found without hitting the store,
// which keeps this read cheap for high-frequency pollers.
func (h *LocationHandler) GetCachedWardLocation(c echo.Context) error {
	wardNumber := c.Param("number")
	if wardNumber == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Ward number is required")
	}

	record, err := h.locationUC.GetCachedLocation(c.Request().Context(), middleware.UserNumber(c), wardNumber)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record, "Location retrieved successfully")
}
