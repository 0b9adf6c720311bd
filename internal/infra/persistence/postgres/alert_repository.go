// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"time"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// alertRepository implements the repository.AlertRepository interface.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{
		db: db,
	}
}

// CreateAlert persists a new alert and its first location history row in a
// single transaction.
func (repo *alertRepository) CreateAlert(ctx context.Context, alert *entity.SOSAlert) error {
	alertM := fromAlertDomain(alert)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(alertM).Error; err != nil {
			return err
		}

		locationM := &model.AlertLocationModel{
			ID:         uuid.New(),
			AlertID:    alertM.ID,
			Latitude:   alert.Location.Latitude,
			Longitude:  alert.Location.Longitude,
			Accuracy:   alert.Location.Accuracy,
			Address:    alert.Location.Address,
			RecordedAt: alertM.CreatedAt,
		}

		return tx.Create(locationM).Error
	})
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required alert information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create alert")
	}

	// Update the entity with generated values
	alert.ID = alertM.ID
	alert.CreatedAt = alertM.CreatedAt
	alert.UpdatedAt = alertM.UpdatedAt

	return nil
}

// FindAlertByID retrieves an alert by its unique ID.
func (repo *alertRepository) FindAlertByID(ctx context.Context, id uuid.UUID) (*entity.SOSAlert, error) {
	var alertM model.SOSAlertModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&alertM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlertNotFound
		}

		return nil, errors.Wrap(err, "failed to find alert by ID")
	}

	return toAlertDomain(&alertM), nil
}

// FindActiveAlerts retrieves all non-terminal alerts sorted by severity
// (critical first) then creation time descending.
func (repo *alertRepository) FindActiveAlerts(ctx context.Context) ([]*entity.SOSAlert, error) {
	var alertModels []*model.SOSAlertModel

	if err := repo.db.WithContext(ctx).
		Where("status IN ?", []string{string(entity.StatusActive), string(entity.StatusAcknowledged)}).
		Order("CASE severity WHEN 'critical' THEN 0 WHEN 'high' THEN 1 WHEN 'medium' THEN 2 ELSE 3 END").
		Order("created_at DESC").
		Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active alerts")
	}

	return toAlertDomainSlice(alertModels), nil
}

// FindAlertsByInitiator retrieves the most recent alerts raised by a user.
func (repo *alertRepository) FindAlertsByInitiator(ctx context.Context, initiatorID uuid.UUID, limit int) ([]*entity.SOSAlert, error) {
	var alertModels []*model.SOSAlertModel

	if err := repo.db.WithContext(ctx).
		Where("initiator_id = ?", initiatorID).
		Order("created_at DESC").
		Limit(limit).
		Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find alerts by initiator")
	}

	return toAlertDomainSlice(alertModels), nil
}

// FindAlertsWithPendingEscalation retrieves active alerts with a persisted
// escalation deadline, for resuming timer chains after a restart.
func (repo *alertRepository) FindAlertsWithPendingEscalation(ctx context.Context) ([]*entity.SOSAlert, error) {
	var alertModels []*model.SOSAlertModel

	if err := repo.db.WithContext(ctx).
		Where("status = ? AND next_escalation_at IS NOT NULL", string(entity.StatusActive)).
		Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find alerts with pending escalation")
	}

	return toAlertDomainSlice(alertModels), nil
}

// Acknowledge conditionally moves an alert from active to acknowledged.
// The WHERE clause on status is the atomic check that closes the race with
// a concurrently firing escalation timer.
func (repo *alertRepository) Acknowledge(ctx context.Context, id uuid.UUID, update repository.AcknowledgeUpdate) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SOSAlertModel{}).
		Where("id = ? AND status = ?", id, string(entity.StatusActive)).
		Updates(map[string]any{
			"status":             string(entity.StatusAcknowledged),
			"responder_id":       update.ResponderID,
			"response_time":      update.ResponseTime,
			"next_escalation_at": nil,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to acknowledge alert")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStaleTransition
	}

	return nil
}

// Resolve conditionally moves a non-terminal alert to a terminal status.
func (repo *alertRepository) Resolve(ctx context.Context, id uuid.UUID, update repository.ResolveUpdate) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SOSAlertModel{}).
		Where("id = ? AND status IN ?", id, []string{string(entity.StatusActive), string(entity.StatusAcknowledged)}).
		Updates(map[string]any{
			"status":             string(update.Status),
			"resolved_at":        update.ResolvedAt,
			"resolved_by":        update.ResolvedBy,
			"resolution_notes":   update.Notes,
			"next_escalation_at": nil,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to resolve alert")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStaleTransition
	}

	return nil
}

// AdvanceEscalation increments the escalation level with compare-and-set
// semantics: the update only applies while the alert is still active and at
// the level the timer was armed for. A zero-row result means an
// acknowledgment or resolution won the race.
func (repo *alertRepository) AdvanceEscalation(ctx context.Context, id uuid.UUID, expectedLevel int, escalatedAt time.Time, nextDeadline *time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SOSAlertModel{}).
		Where("id = ? AND status = ? AND escalation_level = ?", id, string(entity.StatusActive), expectedLevel).
		Updates(map[string]any{
			"escalation_level":   gorm.Expr("escalation_level + 1"),
			"escalated_at":       escalatedAt,
			"next_escalation_at": nextDeadline,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to advance escalation")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStaleTransition
	}

	return nil
}

// SetNextEscalation persists the armed timer deadline; nil clears it.
func (repo *alertRepository) SetNextEscalation(ctx context.Context, id uuid.UUID, deadline *time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SOSAlertModel{}).
		Where("id = ?", id).
		Update("next_escalation_at", deadline)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set next escalation deadline")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAlertNotFound
	}

	return nil
}

// MarkEmergencyServicesNotified sets the notified flag at most once.
func (repo *alertRepository) MarkEmergencyServicesNotified(ctx context.Context, id uuid.UUID, referenceID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SOSAlertModel{}).
		Where("id = ? AND emergency_services_notified = ?", id, false).
		Updates(map[string]any{
			"emergency_services_notified": true,
			"emergency_reference_id":      referenceID,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark emergency services notified")
	}

	// Zero rows means the flag was already set; that is fine, it is never unset.
	return nil
}

// AppendLocation appends one location history row and mirrors it into the
// alert's current location columns.
func (repo *alertRepository) AppendLocation(ctx context.Context, location *entity.AlertLocation) error {
	locationM := &model.AlertLocationModel{
		ID:         uuid.New(),
		AlertID:    location.AlertID,
		Latitude:   location.Latitude,
		Longitude:  location.Longitude,
		Accuracy:   location.Accuracy,
		Address:    location.Address,
		RecordedAt: location.RecordedAt,
	}

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(locationM).Error; err != nil {
			return err
		}

		return tx.Model(&model.SOSAlertModel{}).
			Where("id = ?", location.AlertID).
			Updates(map[string]any{
				"latitude":  location.Latitude,
				"longitude": location.Longitude,
				"accuracy":  location.Accuracy,
				"address":   location.Address,
			}).Error
	})
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAlertNotFound
		}

		return errors.Wrap(err, "failed to append alert location")
	}

	location.ID = locationM.ID

	return nil
}

// AppendAcknowledgment appends one acknowledgment row.
func (repo *alertRepository) AppendAcknowledgment(ctx context.Context, ack *entity.AlertAcknowledgment) error {
	ackM := &model.AlertAcknowledgmentModel{
		ID:             uuid.New(),
		AlertID:        ack.AlertID,
		ResponderID:    ack.ResponderID,
		Action:         ack.Action,
		AcknowledgedAt: ack.AcknowledgedAt,
	}

	if err := repo.db.WithContext(ctx).Create(ackM).Error; err != nil {
		return errors.Wrap(err, "failed to append acknowledgment")
	}

	ack.ID = ackM.ID

	return nil
}

// AppendNotification records a sent notification with insert-if-absent
// semantics over the (alert, type, target) unique index. Returns false when
// the target was already recorded.
func (repo *alertRepository) AppendNotification(ctx context.Context, notification *entity.AlertNotification) (bool, error) {
	notificationM := &model.AlertNotificationModel{
		ID:        uuid.New(),
		AlertID:   notification.AlertID,
		NotifType: notification.NotifType,
		TargetID:  notification.TargetID,
		Channel:   notification.Channel,
		SentAt:    notification.SentAt,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "alert_id"}, {Name: "notif_type"}, {Name: "target_id"}},
			DoNothing: true,
		}).
		Create(notificationM)

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to append notification record")
	}

	notification.ID = notificationM.ID

	return result.RowsAffected > 0, nil
}

// RemoveNotification deletes one recorded notification triple so the target
// can be retried after a failed delivery.
func (repo *alertRepository) RemoveNotification(ctx context.Context, alertID uuid.UUID, notifType, targetID string) error {
	if err := repo.db.WithContext(ctx).
		Where("alert_id = ? AND notif_type = ? AND target_id = ?", alertID, notifType, targetID).
		Delete(&model.AlertNotificationModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove notification record")
	}

	return nil
}

// FindLocationHistory returns the append-only location history in order.
func (repo *alertRepository) FindLocationHistory(ctx context.Context, alertID uuid.UUID) ([]entity.AlertLocation, error) {
	var locationModels []*model.AlertLocationModel

	if err := repo.db.WithContext(ctx).
		Where("alert_id = ?", alertID).
		Order("recorded_at ASC").
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find location history")
	}

	locations := make([]entity.AlertLocation, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, entity.AlertLocation{
			ID:         locationM.ID,
			AlertID:    locationM.AlertID,
			Latitude:   locationM.Latitude,
			Longitude:  locationM.Longitude,
			Accuracy:   locationM.Accuracy,
			Address:    locationM.Address,
			RecordedAt: locationM.RecordedAt,
		})
	}

	return locations, nil
}

// FindAcknowledgments returns acknowledgment rows in order.
func (repo *alertRepository) FindAcknowledgments(ctx context.Context, alertID uuid.UUID) ([]entity.AlertAcknowledgment, error) {
	var ackModels []*model.AlertAcknowledgmentModel

	if err := repo.db.WithContext(ctx).
		Where("alert_id = ?", alertID).
		Order("acknowledged_at ASC").
		Find(&ackModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find acknowledgments")
	}

	acks := make([]entity.AlertAcknowledgment, 0, len(ackModels))
	for _, ackM := range ackModels {
		acks = append(acks, entity.AlertAcknowledgment{
			ID:             ackM.ID,
			AlertID:        ackM.AlertID,
			ResponderID:    ackM.ResponderID,
			Action:         ackM.Action,
			AcknowledgedAt: ackM.AcknowledgedAt,
		})
	}

	return acks, nil
}

// FindNotifications returns recorded notifications in order.
func (repo *alertRepository) FindNotifications(ctx context.Context, alertID uuid.UUID) ([]entity.AlertNotification, error) {
	var notificationModels []*model.AlertNotificationModel

	if err := repo.db.WithContext(ctx).
		Where("alert_id = ?", alertID).
		Order("sent_at ASC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications")
	}

	notifications := make([]entity.AlertNotification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, entity.AlertNotification{
			ID:        notificationM.ID,
			AlertID:   notificationM.AlertID,
			NotifType: notificationM.NotifType,
			TargetID:  notificationM.TargetID,
			Channel:   notificationM.Channel,
			SentAt:    notificationM.SentAt,
		})
	}

	return notifications, nil
}

// SaveIncidentReport attaches the serialized incident report to the alert.
func (repo *alertRepository) SaveIncidentReport(ctx context.Context, id uuid.UUID, report json.RawMessage) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SOSAlertModel{}).
		Where("id = ?", id).
		Update("incident_report", []byte(report))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to save incident report")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAlertNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAlertDomain converts a GORM SOSAlertModel to a domain SOSAlert entity.
func toAlertDomain(data *model.SOSAlertModel) *entity.SOSAlert {
	if data == nil {
		return nil
	}

	return &entity.SOSAlert{
		ID:            data.ID,
		InitiatorID:   data.InitiatorID,
		InitiatorType: entity.InitiatorType(data.InitiatorType),
		JobID:         data.JobID,
		AlertType:     entity.AlertType(data.AlertType),
		Severity:      entity.AlertSeverity(data.Severity),
		Status:        entity.AlertStatus(data.Status),
		Message:       data.Message,
		DeviceInfo:    data.DeviceInfo,
		IsTest:        data.IsTest,
		Location: entity.GeoPoint{
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
			Accuracy:  data.Accuracy,
			Address:   data.Address,
		},
		EscalationLevel:           data.EscalationLevel,
		EscalatedAt:               data.EscalatedAt,
		NextEscalationAt:          data.NextEscalationAt,
		EmergencyServicesNotified: data.EmergencyServicesNotified,
		EmergencyReferenceID:      data.EmergencyReferenceID,
		ResponderID:               data.ResponderID,
		ResponseTime:              data.ResponseTime,
		ResolvedAt:                data.ResolvedAt,
		ResolvedBy:                data.ResolvedBy,
		ResolutionNotes:           data.ResolutionNotes,
		IncidentReport:            json.RawMessage(data.IncidentReport),
		CreatedAt:                 data.CreatedAt,
		UpdatedAt:                 data.UpdatedAt,
	}
}

func toAlertDomainSlice(data []*model.SOSAlertModel) []*entity.SOSAlert {
	alerts := make([]*entity.SOSAlert, 0, len(data))
	for _, alertM := range data {
		alerts = append(alerts, toAlertDomain(alertM))
	}

	return alerts
}

// fromAlertDomain converts a domain SOSAlert entity to a GORM SOSAlertModel.
func fromAlertDomain(data *entity.SOSAlert) *model.SOSAlertModel {
	if data == nil {
		return nil
	}

	return &model.SOSAlertModel{
		ID:                        data.ID,
		InitiatorID:               data.InitiatorID,
		InitiatorType:             string(data.InitiatorType),
		JobID:                     data.JobID,
		AlertType:                 string(data.AlertType),
		Severity:                  string(data.Severity),
		Status:                    string(data.Status),
		Message:                   data.Message,
		DeviceInfo:                data.DeviceInfo,
		IsTest:                    data.IsTest,
		Latitude:                  data.Location.Latitude,
		Longitude:                 data.Location.Longitude,
		Accuracy:                  data.Location.Accuracy,
		Address:                   data.Location.Address,
		EscalationLevel:           data.EscalationLevel,
		EscalatedAt:               data.EscalatedAt,
		NextEscalationAt:          data.NextEscalationAt,
		EmergencyServicesNotified: data.EmergencyServicesNotified,
		EmergencyReferenceID:      data.EmergencyReferenceID,
		ResponderID:               data.ResponderID,
		ResponseTime:              data.ResponseTime,
		ResolvedAt:                data.ResolvedAt,
		ResolvedBy:                data.ResolvedBy,
		ResolutionNotes:           data.ResolutionNotes,
		IncidentReport:            []byte(data.IncidentReport),
		CreatedAt:                 data.CreatedAt,
		UpdatedAt:                 data.UpdatedAt,
	}
}
