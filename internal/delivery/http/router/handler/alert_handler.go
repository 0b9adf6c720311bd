// Package handler contains the HTTP handlers of the SOS API.
package handler

import (
	"log/slog"
	"net/http"

	"beacon/internal/delivery/http/response"
	"beacon/internal/domain/entity"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	SOSUC  usecase.SOSUsecase
	Logger *slog.Logger
}

// AlertHandler holds dependencies for alert lifecycle handlers
type AlertHandler struct {
	sosUC  usecase.SOSUsecase
	logger *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{
		sosUC:  params.SOSUC,
		logger: params.Logger,
	}
}

// TriggerAlertRequest represents the request body for raising an alert
type TriggerAlertRequest struct {
	InitiatorID   string  `json:"initiator_id" validate:"required,uuid"`
	InitiatorType string  `json:"initiator_type" validate:"required"`
	JobID         string  `json:"job_id,omitempty" validate:"omitempty,uuid"`
	AlertType     string  `json:"alert_type" validate:"required"`
	Severity      string  `json:"severity" validate:"required"`
	Message       string  `json:"message,omitempty"`
	DeviceInfo    string  `json:"device_info,omitempty"`
	Latitude      float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude     float64 `json:"longitude" validate:"min=-180,max=180"`
	Accuracy      float64 `json:"accuracy,omitempty"`
}

// AcknowledgeAlertRequest represents the request body for acknowledging
type AcknowledgeAlertRequest struct {
	ResponderID string `json:"responder_id" validate:"required,uuid"`
}

// ResolveAlertRequest represents the request body for resolving
type ResolveAlertRequest struct {
	Resolution string `json:"resolution" validate:"required,oneof=resolved false_alarm cancelled"`
	ResolvedBy string `json:"resolved_by,omitempty" validate:"omitempty,uuid"`
	Notes      string `json:"notes,omitempty"`
}

// UpdateLocationRequest represents the request body for a location fix
type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	Accuracy  float64 `json:"accuracy,omitempty"`
}

// TriggerAlert handles raising a new SOS alert
func (h *AlertHandler) TriggerAlert(c echo.Context) error {
	var req TriggerAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid alert input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	initiatorID, err := uuid.Parse(req.InitiatorID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid initiator ID")
	}

	input := usecase.TriggerAlertInput{
		InitiatorID:   initiatorID,
		InitiatorType: entity.InitiatorType(req.InitiatorType),
		AlertType:     entity.AlertType(req.AlertType),
		Severity:      entity.AlertSeverity(req.Severity),
		Message:       req.Message,
		DeviceInfo:    req.DeviceInfo,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Accuracy:      req.Accuracy,
	}

	if req.JobID != "" {
		jobID, err := uuid.Parse(req.JobID)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid job ID")
		}
		input.JobID = &jobID
	}

	result, err := h.sosUC.TriggerAlert(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"alert":      result.Alert,
		"responders": result.Responders,
	}, "SOS alert created")
}

// AcknowledgeAlert handles a responder accepting an alert
func (h *AlertHandler) AcknowledgeAlert(c echo.Context) error {
	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alert ID")
	}

	var req AcknowledgeAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid acknowledge input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	responderID, err := uuid.Parse(req.ResponderID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid responder ID")
	}

	alert, err := h.sosUC.AcknowledgeAlert(c.Request().Context(), alertID, responderID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, alert, "Alert acknowledged")
}

// ResolveAlert handles the terminal transition of an alert
func (h *AlertHandler) ResolveAlert(c echo.Context) error {
	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alert ID")
	}

	var req ResolveAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resolve input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.ResolveAlertInput{
		AlertID:    alertID,
		Resolution: entity.AlertStatus(req.Resolution),
		Notes:      req.Notes,
	}

	if req.ResolvedBy != "" {
		resolvedBy, err := uuid.Parse(req.ResolvedBy)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid resolver ID")
		}
		input.ResolvedBy = &resolvedBy
	}

	alert, err := h.sosUC.ResolveAlert(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, alert, "Alert resolved")
}

// UpdateLocation handles appending a location fix to an open alert
func (h *AlertHandler) UpdateLocation(c echo.Context) error {
	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alert ID")
	}

	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.sosUC.UpdateAlertLocation(c.Request().Context(), usecase.LocationUpdateInput{
		AlertID:   alertID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Accuracy:  req.Accuracy,
	}); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Location updated"}, "")
}

// GetAlert handles retrieving one alert with its histories
func (h *AlertHandler) GetAlert(c echo.Context) error {
	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alert ID")
	}

	alert, err := h.sosUC.GetAlert(c.Request().Context(), alertID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, alert, "")
}

// GetActiveAlerts handles the operations dashboard listing
func (h *AlertHandler) GetActiveAlerts(c echo.Context) error {
	alerts, err := h.sosUC.GetActiveAlerts(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, alerts, "")
}

// GetAlertHistory handles retrieving a user's recent alerts
func (h *AlertHandler) GetAlertHistory(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	limit := 0
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid limit")
	}

	alerts, err := h.sosUC.GetAlertHistory(c.Request().Context(), userID, limit)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, alerts, "")
}
