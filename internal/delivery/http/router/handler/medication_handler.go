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

// MedicationHandlerParams holds dependencies for MedicationHandler, injected by Fx.
type MedicationHandlerParams struct {
	fx.In

	MedicationUC usecase.MedicationUsecase
	Logger       *slog.Logger
}

// MedicationHandler holds dependencies for medication handlers
type MedicationHandler struct {
	medicationUC usecase.MedicationUsecase
	logger       *slog.Logger
}

// NewMedicationHandler is the constructor for MedicationHandler
func NewMedicationHandler(params MedicationHandlerParams) *MedicationHandler {
	return &MedicationHandler{
		medicationUC: params.MedicationUC,
		logger:       params.Logger,
	}
}

// CreateMedicationRequest represents the request body for registering a medication
type CreateMedicationRequest struct {
	Name      string `json:"name" validate:"required"`
	Dosage    string `json:"dosage" validate:"required"`
	Purpose   string `json:"purpose"`
	Frequency string `json:"frequency" validate:"required"`
}

// UpdateMedicationRequest represents the request body for updating a medication
type UpdateMedicationRequest struct {
	Name      *string `json:"name,omitempty"`
	Dosage    *string `json:"dosage,omitempty"`
	Purpose   *string `json:"purpose,omitempty"`
	Frequency *string `json:"frequency,omitempty"`
}

// CreateMedication registers a medication for the calling ward.
func (h *MedicationHandler) CreateMedication(c echo.Context) error {
	var req CreateMedicationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid medication input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.CreateMedicationInput{
		Name:      req.Name,
		Dosage:    req.Dosage,
		Purpose:   req.Purpose,
		Frequency: req.Frequency,
	}

	medication, err := h.medicationUC.CreateMedication(c.Request().Context(), middleware.UserNumber(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, medication, "Medication created successfully")
}

// GetWardMedications lists a ward's medications with the check state for a date.
func (h *MedicationHandler) GetWardMedications(c echo.Context) error {
	wardNumber := c.Param("number")
	if wardNumber == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Ward number is required")
	}

	date, err := h.queryDate(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid date, expected YYYY-MM-DD")
	}

	statuses, err := h.medicationUC.GetWardMedications(c.Request().Context(), middleware.UserNumber(c), wardNumber, date)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, statuses, "Medications retrieved successfully")
}

// UpdateMedication rewrites a medication's mutable fields.
func (h *MedicationHandler) UpdateMedication(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid medication ID")
	}

	var req UpdateMedicationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid medication input")
	}

	input := &usecase.UpdateMedicationInput{
		Name:      req.Name,
		Dosage:    req.Dosage,
		Purpose:   req.Purpose,
		Frequency: req.Frequency,
	}

	medication, err := h.medicationUC.UpdateMedication(c.Request().Context(), middleware.UserNumber(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, medication, "Medication updated successfully")
}

// DeleteMedication removes a medication and its check logs.
func (h *MedicationHandler) DeleteMedication(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid medication ID")
	}

	if err := h.medicationUC.DeleteMedication(c.Request().Context(), middleware.UserNumber(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Medication deleted successfully")
}

// CheckMedication marks the medication as taken on the given date.
func (h *MedicationHandler) CheckMedication(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid medication ID")
	}

	date, err := h.queryDate(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid date, expected YYYY-MM-DD")
	}

	if err := h.medicationUC.CheckMedication(c.Request().Context(), middleware.UserNumber(c), id, date); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Medication checked successfully")
}

// UncheckMedication removes the check for the given date.
func (h *MedicationHandler) UncheckMedication(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid medication ID")
	}

	date, err := h.queryDate(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid date, expected YYYY-MM-DD")
	}

	if err := h.medicationUC.UncheckMedication(c.Request().Context(), middleware.UserNumber(c), id, date); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Medication unchecked successfully")
}

// queryDate parses the optional date query parameter, defaulting to today.
func (h *MedicationHandler) queryDate(c echo.Context) (time.Time, error) {
	raw := c.QueryParam("date")
	if raw == "" {
		return time.Now(), nil
	}

	return time.Parse(time.DateOnly, raw)
}
