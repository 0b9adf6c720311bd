package postgres

import (
	"context"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// contactRepository implements the repository.EmergencyContactRepository interface.
type contactRepository struct {
	db *gorm.DB
}

// NewEmergencyContactRepository is the constructor for contactRepository.
func NewEmergencyContactRepository(db *gorm.DB) repository.EmergencyContactRepository {
	return &contactRepository{
		db: db,
	}
}

// CreateContact persists a new emergency contact.
func (repo *contactRepository) CreateContact(ctx context.Context, contact *entity.EmergencyContact) error {
	contactM := fromContactDomain(contact)

	if err := repo.db.WithContext(ctx).Create(contactM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required contact information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create emergency contact")
	}

	// Update the entity with generated values
	contact.ID = contactM.ID
	contact.CreatedAt = contactM.CreatedAt
	contact.UpdatedAt = contactM.UpdatedAt

	return nil
}

// FindContactByID retrieves an emergency contact by its unique ID.
func (repo *contactRepository) FindContactByID(ctx context.Context, id uuid.UUID) (*entity.EmergencyContact, error) {
	var contactM model.EmergencyContactModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&contactM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact by ID")
	}

	return toContactDomain(&contactM), nil
}

// FindContactsByUser retrieves a user's emergency contacts, primary first.
func (repo *contactRepository) FindContactsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.EmergencyContact, error) {
	var contactModels []*model.EmergencyContactModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_primary DESC").
		Order("created_at ASC").
		Find(&contactModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find contacts by user")
	}

	contacts := make([]*entity.EmergencyContact, 0, len(contactModels))
	for _, contactM := range contactModels {
		contacts = append(contacts, toContactDomain(contactM))
	}

	return contacts, nil
}

// UpdateContact saves changes to an existing emergency contact.
func (repo *contactRepository) UpdateContact(ctx context.Context, contact *entity.EmergencyContact) error {
	contactM := fromContactDomain(contact)

	result := repo.db.WithContext(ctx).
		Model(&model.EmergencyContactModel{}).
		Where("id = ? AND user_id = ?", contact.ID, contact.UserID).
		Updates(map[string]any{
			"name":                    contactM.Name,
			"relationship":            contactM.Relationship,
			"phone":                   contactM.Phone,
			"email":                   contactM.Email,
			"is_primary":              contactM.IsPrimary,
			"notification_preference": contactM.NotificationPreference,
			"auto_notify_on_sos":      contactM.AutoNotifyOnSOS,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update contact")
	}

	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}

// ClearPrimary unsets the primary flag on all of a user's contacts. Callers
// run this inside a transaction before promoting a new primary.
func (repo *contactRepository) ClearPrimary(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.EmergencyContactModel{}).
		Where("user_id = ? AND is_primary = ?", userID, true).
		Update("is_primary", false).Error; err != nil {
		return errors.Wrap(err, "failed to clear primary contact")
	}

	return nil
}

// DeleteContact soft-deletes an emergency contact.
func (repo *contactRepository) DeleteContact(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.EmergencyContactModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete contact")
	}

	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toContactDomain converts a GORM EmergencyContactModel to a domain EmergencyContact entity.
func toContactDomain(data *model.EmergencyContactModel) *entity.EmergencyContact {
	if data == nil {
		return nil
	}

	return &entity.EmergencyContact{
		ID:                     data.ID,
		UserID:                 data.UserID,
		Name:                   data.Name,
		Relationship:           data.Relationship,
		Phone:                  data.Phone,
		Email:                  data.Email,
		IsPrimary:              data.IsPrimary,
		NotificationPreference: entity.NotificationPreference(data.NotificationPreference),
		AutoNotifyOnSOS:        data.AutoNotifyOnSOS,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}

// fromContactDomain converts a domain EmergencyContact entity to a GORM EmergencyContactModel.
func fromContactDomain(data *entity.EmergencyContact) *model.EmergencyContactModel {
	if data == nil {
		return nil
	}

	return &model.EmergencyContactModel{
		ID:                     data.ID,
		UserID:                 data.UserID,
		Name:                   data.Name,
		Relationship:           data.Relationship,
		Phone:                  data.Phone,
		Email:                  data.Email,
		IsPrimary:              data.IsPrimary,
		NotificationPreference: string(data.NotificationPreference),
		AutoNotifyOnSOS:        data.AutoNotifyOnSOS,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}
