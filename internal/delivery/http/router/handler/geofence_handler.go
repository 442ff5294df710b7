package handler

import (
	"log/slog"
	"net/http"
	"time"

	"fence/internal/delivery/http/middleware"
	"fence/internal/delivery/http/response"
	"fence/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// GeofenceHandlerParams holds dependencies for GeofenceHandler, injected by Fx.
type GeofenceHandlerParams struct {
	fx.In

	GeofenceUC usecase.GeofenceUsecase
	LogUC      usecase.LogUsecase
	Logger     *slog.Logger
}

// GeofenceHandler holds dependencies for geofence-related handlers
type GeofenceHandler struct {
	geofenceUC usecase.GeofenceUsecase
	logUC      usecase.LogUsecase
	logger     *slog.Logger
}

// NewGeofenceHandler is the constructor for GeofenceHandler
func NewGeofenceHandler(params GeofenceHandlerParams) *GeofenceHandler {
	return &GeofenceHandler{
		geofenceUC: params.GeofenceUC,
		logUC:      params.LogUC,
		logger:     params.Logger,
	}
}

// CreateGeofenceRequest represents the request body for creating a geofence
type CreateGeofenceRequest struct {
	Name         string     `json:"name" validate:"required"`
	Address      string     `json:"address" validate:"required"`
	Latitude     float64    `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude    float64    `json:"longitude" validate:"required,min=-180,max=180"`
	RadiusMeters float64    `json:"radius_meters" validate:"omitempty,gt=0"`
	Type         string     `json:"type" validate:"required,oneof=home temporary"`
	EndTime      *time.Time `json:"end_time,omitempty"`
}

// CreateGeofence handles creating a geofence owned by the calling ward.
func (h *GeofenceHandler) CreateGeofence(c echo.Context) error {
	var req CreateGeofenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid geofence input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.CreateGeofenceInput{
		Name:         req.Name,
		Address:      req.Address,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: req.RadiusMeters,
		Type:         req.Type,
		EndTime:      req.EndTime,
	}

	geofence, err := h.geofenceUC.CreateGeofence(c.Request().Context(), middleware.UserNumber(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, geofence, "Geofence created successfully")
}

// GetWardGeofences lists a ward's geofences.
func (h *GeofenceHandler) GetWardGeofences(c echo.Context) error {
	wardNumber := c.Param("number")
	if wardNumber == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Ward number is required")
	}

	geofences, err := h.geofenceUC.GetWardGeofences(c.Request().Context(), middleware.UserNumber(c), wardNumber)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, geofences, "Geofences retrieved successfully")
}

// DeleteGeofence removes a geofence owned by the calling ward.
func (h *GeofenceHandler) DeleteGeofence(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid geofence ID")
	}

	if err := h.geofenceUC.DeleteGeofence(c.Request().Context(), middleware.UserNumber(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Geofence deleted successfully")
}

// GetWardLogs lists a ward's geofence event history, newest first.
func (h *GeofenceHandler) GetWardLogs(c echo.Context) error {
	wardNumber := c.Param("number")
	if wardNumber == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Ward number is required")
	}

	logs, err := h.logUC.GetWardLogs(c.Request().Context(), middleware.UserNumber(c), wardNumber)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, logs, "Logs retrieved successfully")
}
