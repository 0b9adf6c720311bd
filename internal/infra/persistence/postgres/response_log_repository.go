package postgres

import (
	"context"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// responseLogRepository implements the repository.ResponseLogRepository interface.
type responseLogRepository struct {
	db *gorm.DB
}

// NewResponseLogRepository is the constructor for responseLogRepository.
func NewResponseLogRepository(db *gorm.DB) repository.ResponseLogRepository {
	return &responseLogRepository{
		db: db,
	}
}

// CreateEntry appends one immutable response log row.
func (repo *responseLogRepository) CreateEntry(ctx context.Context, entry *entity.ResponseLogEntry) error {
	entryM := &model.ResponseLogModel{
		ID:          uuid.New(),
		AlertID:     entry.AlertID,
		ResponderID: entry.ResponderID,
		Action:      entry.Action,
		Notes:       entry.Notes,
		CreatedAt:   entry.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return errors.Wrap(err, "failed to create response log entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// FindEntriesByAlert returns an alert's response log in chronological order.
func (repo *responseLogRepository) FindEntriesByAlert(ctx context.Context, alertID uuid.UUID) ([]entity.ResponseLogEntry, error) {
	var entryModels []*model.ResponseLogModel

	if err := repo.db.WithContext(ctx).
		Where("alert_id = ?", alertID).
		Order("created_at ASC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find response log entries")
	}

	entries := make([]entity.ResponseLogEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, entity.ResponseLogEntry{
			ID:          entryM.ID,
			AlertID:     entryM.AlertID,
			ResponderID: entryM.ResponderID,
			Action:      entryM.Action,
			Notes:       entryM.Notes,
			CreatedAt:   entryM.CreatedAt,
		})
	}

	return entries, nil
}
