package handler

import (
	"log/slog"
	"net/http"

	"beacon/internal/delivery/http/response"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// SystemHandlerParams holds dependencies for SystemHandler, injected by Fx.
type SystemHandlerParams struct {
	fx.In

	SOSUC  usecase.SOSUsecase
	Logger *slog.Logger
}

// SystemHandler holds dependencies for the SOS system test endpoint
type SystemHandler struct {
	sosUC  usecase.SOSUsecase
	logger *slog.Logger
}

// NewSystemHandler is the constructor for SystemHandler
func NewSystemHandler(params SystemHandlerParams) *SystemHandler {
	return &SystemHandler{
		sosUC:  params.SOSUC,
		logger: params.Logger,
	}
}

// TestSystemRequest represents the request body for the pipeline dry run
type TestSystemRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

// TestSystem runs an end-to-end dry run of the SOS pipeline
func (h *SystemHandler) TestSystem(c echo.Context) error {
	var req TestSystemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid test input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	result, err := h.sosUC.TestSOSSystem(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, result, "")
}
