package usecase

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// UpsertContactInput carries the fields for creating or updating an
// emergency contact. A nil ContactID means create.
type UpsertContactInput struct {
	ContactID              *uuid.UUID
	UserID                 uuid.UUID
	Name                   string
	Relationship           string
	Phone                  string
	Email                  string
	IsPrimary              bool
	NotificationPreference entity.NotificationPreference
	AutoNotifyOnSOS        bool
}

// EmergencyContactUsecase defines the interface for emergency contact
// management use cases.
type EmergencyContactUsecase interface {
	// UpsertContact creates or updates a contact. Promoting a contact to
	// primary demotes any existing primary in the same transaction.
	UpsertContact(ctx context.Context, input UpsertContactInput) (*entity.EmergencyContact, error)

	// ListContacts returns a user's contacts, primary first.
	ListContacts(ctx context.Context, userID uuid.UUID) ([]*entity.EmergencyContact, error)

	// DeleteContact removes a contact owned by the user.
	DeleteContact(ctx context.Context, userID, contactID uuid.UUID) error
}
