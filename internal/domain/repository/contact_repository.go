// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrContactNotFound is returned when an emergency contact is not found.
var ErrContactNotFound = errors.New("emergency contact not found")

// EmergencyContactRepository defines the interface for emergency contact
// database operations.
type EmergencyContactRepository interface {
	// CreateContact persists a new emergency contact.
	CreateContact(ctx context.Context, contact *entity.EmergencyContact) error

	// FindContactByID retrieves a contact by its unique ID.
	FindContactByID(ctx context.Context, id uuid.UUID) (*entity.EmergencyContact, error)

	// FindContactsByUser retrieves all contacts for a user, primary first.
	FindContactsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.EmergencyContact, error)

	// UpdateContact persists changes to an existing contact.
	UpdateContact(ctx context.Context, contact *entity.EmergencyContact) error

	// ClearPrimary unsets the primary flag on all of a user's contacts.
	// Called inside the upsert transaction to keep at most one primary.
	ClearPrimary(ctx context.Context, userID uuid.UUID) error

	// DeleteContact removes a contact by its ID.
	DeleteContact(ctx context.Context, id uuid.UUID) error
}
