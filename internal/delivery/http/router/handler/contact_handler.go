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

// ContactHandlerParams holds dependencies for ContactHandler, injected by Fx.
type ContactHandlerParams struct {
	fx.In

	ContactUC usecase.EmergencyContactUsecase
	Logger    *slog.Logger
}

// ContactHandler holds dependencies for emergency contact handlers
type ContactHandler struct {
	contactUC usecase.EmergencyContactUsecase
	logger    *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler
func NewContactHandler(params ContactHandlerParams) *ContactHandler {
	return &ContactHandler{
		contactUC: params.ContactUC,
		logger:    params.Logger,
	}
}

// UpsertContactRequest represents the request body for creating or updating
// an emergency contact
type UpsertContactRequest struct {
	ContactID              string `json:"contact_id,omitempty" validate:"omitempty,uuid"`
	Name                   string `json:"name" validate:"required"`
	Relationship           string `json:"relationship,omitempty"`
	Phone                  string `json:"phone" validate:"required"`
	Email                  string `json:"email,omitempty" validate:"omitempty,email"`
	IsPrimary              bool   `json:"is_primary"`
	NotificationPreference string `json:"notification_preference,omitempty" validate:"omitempty,oneof=all email sms"`
	AutoNotifyOnSOS        *bool  `json:"auto_notify_on_sos,omitempty"`
}

// UpsertContact handles creating or updating an emergency contact
func (h *ContactHandler) UpsertContact(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req UpsertContactRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	autoNotify := true
	if req.AutoNotifyOnSOS != nil {
		autoNotify = *req.AutoNotifyOnSOS
	}

	input := usecase.UpsertContactInput{
		UserID:                 userID,
		Name:                   req.Name,
		Relationship:           req.Relationship,
		Phone:                  req.Phone,
		Email:                  req.Email,
		IsPrimary:              req.IsPrimary,
		NotificationPreference: entity.NotificationPreference(req.NotificationPreference),
		AutoNotifyOnSOS:        autoNotify,
	}

	if req.ContactID != "" {
		contactID, err := uuid.Parse(req.ContactID)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid contact ID")
		}
		input.ContactID = &contactID
	}

	contact, err := h.contactUC.UpsertContact(c.Request().Context(), input)
	if err != nil {
		return err
	}

	status := http.StatusOK
	if input.ContactID == nil {
		status = http.StatusCreated
	}

	return response.Success(c, status, contact, "")
}

// ListContacts handles retrieving a user's emergency contacts
func (h *ContactHandler) ListContacts(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	contacts, err := h.contactUC.ListContacts(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, contacts, "")
}

// DeleteContact handles removing an emergency contact
func (h *ContactHandler) DeleteContact(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	contactID, err := uuid.Parse(c.Param("contactId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid contact ID")
	}

	if err := h.contactUC.DeleteContact(c.Request().Context(), userID, contactID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Contact deleted"}, "")
}
