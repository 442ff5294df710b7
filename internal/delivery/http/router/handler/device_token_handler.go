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

// DeviceTokenHandlerParams holds dependencies for DeviceTokenHandler, injected by Fx.
type DeviceTokenHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// DeviceTokenHandler holds dependencies for device token handlers
type DeviceTokenHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewDeviceTokenHandler is the constructor for DeviceTokenHandler
func NewDeviceTokenHandler(params DeviceTokenHandlerParams) *DeviceTokenHandler {
	return &DeviceTokenHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// RegisterTokenRequest represents the request body for registering a device token
type RegisterTokenRequest struct {
	Token      string `json:"token" validate:"required"`
	DeviceType string `json:"device_type" validate:"required,oneof=android ios"`
}

// RegisterToken registers or rebinds a push token for the caller's device.
func (h *DeviceTokenHandler) RegisterToken(c echo.Context) error {
	var req RegisterTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device token input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.RegisterTokenInput{
		Token:      req.Token,
		DeviceType: req.DeviceType,
	}

	token, err := h.notificationUC.RegisterOrUpdateToken(c.Request().Context(), middleware.UserNumber(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, token, "Device token registered successfully")
}

// GetTokens lists the caller's registered device tokens.
func (h *DeviceTokenHandler) GetTokens(c echo.Context) error {
	tokens, err := h.notificationUC.GetUserTokens(c.Request().Context(), middleware.UserNumber(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokens, "Device tokens retrieved successfully")
}

// DeleteToken removes a device token. Unknown tokens delete successfully.
func (h *DeviceTokenHandler) DeleteToken(c echo.Context) error {
	token := c.Param("token")
	if token == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Token is required")
	}

	if err := h.notificationUC.DeleteToken(c.Request().Context(), token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Device token deleted successfully")
}

// EmergencyAlert pushes an urgent notification to every supporter linked to
// the calling ward.
func (h *DeviceTokenHandler) EmergencyAlert(c echo.Context) error {
	if err := h.notificationUC.EmergencyAlert(c.Request().Context(), middleware.UserNumber(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Emergency alert sent successfully")
}
