package handler

import (
	"log/slog"
	"net/http"

	"fence/internal/delivery/http/middleware"
	"fence/internal/delivery/http/response"
	"fence/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LinkHandlerParams holds dependencies for LinkHandler, injected by Fx.
type LinkHandlerParams struct {
	fx.In

	LinkUC usecase.LinkUsecase
	Logger *slog.Logger
}

// LinkHandler holds dependencies for supporter-ward link handlers
type LinkHandler struct {
	linkUC usecase.LinkUsecase
	logger *slog.Logger
}

// NewLinkHandler is the constructor for LinkHandler
func NewLinkHandler(params LinkHandlerParams) *LinkHandler {
	return &LinkHandler{
		linkUC: params.LinkUC,
		logger: params.Logger,
	}
}

// AddLinkRequest represents the request body for linking to a ward
type AddLinkRequest struct {
	LinkCode string `json:"link_code" validate:"required"`
	Relation string `json:"relation" validate:"required"`
}

// AddLink subscribes the caller to the ward identified by the link code.
func (h *LinkHandler) AddLink(c echo.Context) error {
	var req AddLinkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid link input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.AddLinkInput{
		LinkCode: req.LinkCode,
		Relation: req.Relation,
	}

	link, err := h.linkUC.AddLink(c.Request().Context(), middleware.UserNumber(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, link, "Link created successfully")
}

// GetWards lists the wards the caller supports.
func (h *LinkHandler) GetWards(c echo.Context) error {
	links, err := h.linkUC.GetWards(c.Request().Context(), middleware.UserNumber(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, links, "Wards retrieved successfully")
}

// GetSupporters lists the supporters linked to the calling ward.
func (h *LinkHandler) GetSupporters(c echo.Context) error {
	links, err := h.linkUC.GetSupporters(c.Request().Context(), middleware.UserNumber(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, links, "Supporters retrieved successfully")
}

// SetPrimarySupporter marks a link as the calling ward's primary one.
func (h *LinkHandler) SetPrimarySupporter(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid link ID")
	}

	if err := h.linkUC.SetPrimarySupporter(c.Request().Context(), middleware.UserNumber(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Primary supporter set successfully")
}

// GetPrimarySupporter returns the calling ward's primary link.
func (h *LinkHandler) GetPrimarySupporter(c echo.Context) error {
	link, err := h.linkUC.GetPrimarySupporter(c.Request().Context(), middleware.UserNumber(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, link, "Primary supporter retrieved successfully")
}

// DeleteLink removes a link the caller is an endpoint of.
func (h *LinkHandler) DeleteLink(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid link ID")
	}

	if err := h.linkUC.DeleteLink(c.Request().Context(), middleware.UserNumber(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Link deleted successfully")
}

// GetLinkQR renders the caller's link code as a QR code PNG.
func (h *LinkHandler) GetLinkQR(c echo.Context) error {
	png, err := h.linkUC.GenerateLinkQR(c.Request().Context(), middleware.UserNumber(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
