package impl

import (
	"context"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type contactService struct {
	txManager   repository.TransactionManager
	contactRepo repository.EmergencyContactRepository
}

// NewContactService creates a new emergency contact service instance.
func NewContactService(
	txManager repository.TransactionManager,
	contactRepo repository.EmergencyContactRepository,
) usecase.EmergencyContactUsecase {
	return &contactService{
		txManager:   txManager,
		contactRepo: contactRepo,
	}
}

// UpsertContact creates or updates a contact. The demote-then-promote of the
// primary flag runs in one transaction so at most one contact stays primary.
func (s *contactService) UpsertContact(ctx context.Context, input usecase.UpsertContactInput) (*entity.EmergencyContact, error) {
	if err := validateContactInput(&input); err != nil {
		return nil, err
	}

	var contact *entity.EmergencyContact

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewEmergencyContactRepository()

		if input.IsPrimary {
			if err := repo.ClearPrimary(ctx, input.UserID); err != nil {
				return err
			}
		}

		if input.ContactID == nil {
			contact = &entity.EmergencyContact{
				ID:                     uuid.New(),
				UserID:                 input.UserID,
				Name:                   input.Name,
				Relationship:           input.Relationship,
				Phone:                  input.Phone,
				Email:                  input.Email,
				IsPrimary:              input.IsPrimary,
				NotificationPreference: input.NotificationPreference,
				AutoNotifyOnSOS:        input.AutoNotifyOnSOS,
			}

			return repo.CreateContact(ctx, contact)
		}

		existing, err := repo.FindContactByID(ctx, *input.ContactID)
		if err != nil {
			if errors.Is(err, repository.ErrContactNotFound) {
				return domainerrors.ErrContactNotFound
			}

			return err
		}

		if existing.UserID != input.UserID {
			return domainerrors.ErrContactOwnershipViolation
		}

		existing.Name = input.Name
		existing.Relationship = input.Relationship
		existing.Phone = input.Phone
		existing.Email = input.Email
		existing.IsPrimary = input.IsPrimary
		existing.NotificationPreference = input.NotificationPreference
		existing.AutoNotifyOnSOS = input.AutoNotifyOnSOS

		if err := repo.UpdateContact(ctx, existing); err != nil {
			return err
		}

		contact = existing

		return nil
	})
	if err != nil {
		return nil, err
	}

	return contact, nil
}

// ListContacts returns a user's contacts, primary first.
func (s *contactService) ListContacts(ctx context.Context, userID uuid.UUID) ([]*entity.EmergencyContact, error) {
	return s.contactRepo.FindContactsByUser(ctx, userID)
}

// DeleteContact removes a contact after verifying ownership.
func (s *contactService) DeleteContact(ctx context.Context, userID, contactID uuid.UUID) error {
	contact, err := s.contactRepo.FindContactByID(ctx, contactID)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return domainerrors.ErrContactNotFound
		}

		return err
	}

	if contact.UserID != userID {
		return domainerrors.ErrContactOwnershipViolation
	}

	return s.contactRepo.DeleteContact(ctx, contactID)
}

func validateContactInput(input *usecase.UpsertContactInput) error {
	if input.UserID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WrapMessage("user id is required")
	}
	if input.Name == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("contact name is required")
	}
	if input.Phone == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("contact phone is required")
	}
	if input.NotificationPreference == "" {
		input.NotificationPreference = entity.PreferenceAll
	}
	if !input.NotificationPreference.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid notification preference")
	}

	return nil
}
