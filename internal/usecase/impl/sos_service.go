// Package impl contains the concrete implementations of the use case layer.
package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"beacon/config"
	deliverycontext "beacon/internal/delivery/context"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SOSServiceDeps bundles the collaborators of the lifecycle service.
type SOSServiceDeps struct {
	fx.In

	Config          *config.SOSConfig
	TxManager       repository.TransactionManager
	AlertRepo       repository.AlertRepository
	ContactRepo     repository.EmergencyContactRepository
	ResponseLogRepo repository.ResponseLogRepository
	Locator         usecase.ResponderLocator
	Gateway         service.EmergencyGateway
	Geocoder        service.GeocodeService
	Channel         service.NotificationChannel
	Publisher       service.EventPublisher
	Scheduler       *EscalationScheduler
	Logger          *slog.Logger
}

type sosService struct {
	cfg             *config.SOSConfig
	txManager       repository.TransactionManager
	alertRepo       repository.AlertRepository
	contactRepo     repository.EmergencyContactRepository
	responseLogRepo repository.ResponseLogRepository
	locator         usecase.ResponderLocator
	gateway         service.EmergencyGateway
	geocoder        service.GeocodeService
	channel         service.NotificationChannel
	publisher       service.EventPublisher
	scheduler       *EscalationScheduler
	logger          *slog.Logger
}

// NewSOSService creates the alert lifecycle service and binds it to the
// escalation scheduler.
func NewSOSService(deps SOSServiceDeps) usecase.SOSUsecase {
	s := &sosService{
		cfg:             deps.Config,
		txManager:       deps.TxManager,
		alertRepo:       deps.AlertRepo,
		contactRepo:     deps.ContactRepo,
		responseLogRepo: deps.ResponseLogRepo,
		locator:         deps.Locator,
		gateway:         deps.Gateway,
		geocoder:        deps.Geocoder,
		channel:         deps.Channel,
		publisher:       deps.Publisher,
		scheduler:       deps.Scheduler,
		logger:          deps.Logger,
	}
	s.scheduler.Bind(s.runEscalation)

	return s
}

// TriggerAlert raises a new alert, fans out notifications and arms the
// escalation chain for severities that require it.
func (s *sosService) TriggerAlert(ctx context.Context, input usecase.TriggerAlertInput) (*usecase.TriggerAlertResult, error) {
	if err := validateTriggerInput(input); err != nil {
		return nil, err
	}

	now := time.Now()

	// Best-effort reverse geocode; an unreachable geocoder never blocks an
	// emergency.
	address, err := s.geocoder.ReverseGeocode(ctx, input.Latitude, input.Longitude)
	if err != nil {
		s.log(ctx).Warn("reverse geocode failed",
			slog.String("error", err.Error()),
		)
		address = ""
	}

	alert := &entity.SOSAlert{
		ID:            uuid.New(),
		InitiatorID:   input.InitiatorID,
		InitiatorType: input.InitiatorType,
		JobID:         input.JobID,
		AlertType:     input.AlertType,
		Severity:      input.Severity,
		Status:        entity.StatusActive,
		Message:       input.Message,
		DeviceInfo:    input.DeviceInfo,
		IsTest:        input.IsTest,
		Location: entity.GeoPoint{
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
			Accuracy:  input.Accuracy,
			Address:   address,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Arm the first escalation deadline before persisting so a crash between
	// create and schedule is recoverable from the stored deadline.
	escalate := alert.Severity.RequiresEscalation() && !alert.IsTest
	if escalate {
		deadline := now.Add(s.cfg.EscalationDelays[0])
		alert.NextEscalationAt = &deadline
	}

	if err := s.alertRepo.CreateAlert(ctx, alert); err != nil {
		return nil, err
	}

	s.log(ctx).Info("SOS alert created",
		slog.String("alert_id", alert.ID.String()),
		slog.String("severity", string(alert.Severity)),
		slog.String("alert_type", string(alert.AlertType)),
		slog.Bool("is_test", alert.IsTest),
	)

	var responders []*entity.NearbyResponder

	if !alert.IsTest {
		// Critical alerts go to emergency services immediately.
		if alert.Severity == entity.SeverityCritical {
			s.notifyEmergencyServices(ctx, alert)
		}

		s.notifyContacts(ctx, alert)

		responders, err = s.locator.FindNearbyResponders(ctx,
			alert.Location.Latitude, alert.Location.Longitude,
			s.cfg.BaseRadiusMiles, s.cfg.InitialResponderCount)
		if err != nil {
			s.log(ctx).Error("responder discovery failed",
				slog.String("alert_id", alert.ID.String()),
				slog.String("error", err.Error()),
			)
			responders = nil
		}

		tokens := s.recordResponderPaging(ctx, alert, responders)
		s.publishEvent(ctx, alert, service.AlertEventCreated, tokens)
	}

	if escalate {
		s.scheduler.Schedule(alert.ID, 0, s.cfg.EscalationDelays[0])
	}

	return &usecase.TriggerAlertResult{
		Alert:      alert,
		Responders: responders,
	}, nil
}

// AcknowledgeAlert moves an active alert to acknowledged. The conditional
// update in the store decides the winner of any race with a firing
// escalation timer or a competing responder.
func (s *sosService) AcknowledgeAlert(ctx context.Context, alertID, responderID uuid.UUID) (*entity.SOSAlert, error) {
	now := time.Now()

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		alertRepo := factory.NewAlertRepository()

		if err := alertRepo.Acknowledge(ctx, alertID, repository.AcknowledgeUpdate{
			ResponderID:  responderID,
			ResponseTime: now,
		}); err != nil {
			return err
		}

		if err := alertRepo.AppendAcknowledgment(ctx, &entity.AlertAcknowledgment{
			AlertID:        alertID,
			ResponderID:    responderID,
			Action:         "accepted",
			AcknowledgedAt: now,
		}); err != nil {
			return err
		}

		return factory.NewResponseLogRepository().CreateEntry(ctx, &entity.ResponseLogEntry{
			AlertID:     alertID,
			ResponderID: &responderID,
			Action:      entity.ResponseActionAcknowledged,
			CreatedAt:   now,
		})
	})
	if err != nil {
		if errors.Is(err, repository.ErrStaleTransition) {
			return nil, s.transitionConflict(ctx, alertID, "acknowledge")
		}

		return nil, err
	}

	s.scheduler.Cancel(alertID)

	alert, err := s.alertRepo.FindAlertByID(ctx, alertID)
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("SOS alert acknowledged",
		slog.String("alert_id", alertID.String()),
		slog.String("responder_id", responderID.String()),
	)

	s.publishEvent(ctx, alert, service.AlertEventAcknowledged, nil)

	return alert, nil
}

// ResolveAlert moves a non-terminal alert to a terminal status and generates
// the immutable incident report.
func (s *sosService) ResolveAlert(ctx context.Context, input usecase.ResolveAlertInput) (*entity.SOSAlert, error) {
	if !input.Resolution.IsValidResolution() {
		return nil, domainerrors.ErrInvalidResolution
	}

	now := time.Now()

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewAlertRepository().Resolve(ctx, input.AlertID, repository.ResolveUpdate{
			Status:     input.Resolution,
			ResolvedAt: now,
			ResolvedBy: input.ResolvedBy,
			Notes:      input.Notes,
		}); err != nil {
			return err
		}

		return factory.NewResponseLogRepository().CreateEntry(ctx, &entity.ResponseLogEntry{
			AlertID:     input.AlertID,
			ResponderID: input.ResolvedBy,
			Action:      resolutionAction(input.Resolution),
			Notes:       input.Notes,
			CreatedAt:   now,
		})
	})
	if err != nil {
		if errors.Is(err, repository.ErrStaleTransition) {
			return nil, s.transitionConflict(ctx, input.AlertID, "resolve")
		}

		return nil, err
	}

	s.scheduler.Cancel(input.AlertID)

	alert, err := s.alertRepo.FindAlertByID(ctx, input.AlertID)
	if err != nil {
		return nil, err
	}

	if alert.Status == entity.StatusFalseAlarm && alert.EmergencyServicesNotified {
		s.log(ctx).Warn("false alarm resolved after emergency services were notified",
			slog.String("alert_id", alert.ID.String()),
			slog.String("reference_id", alert.EmergencyReferenceID),
		)
	}

	if err := s.generateIncidentReport(ctx, alert); err != nil {
		// The terminal transition already committed; a report failure is
		// logged, not surfaced.
		s.log(ctx).Error("incident report generation failed",
			slog.String("alert_id", alert.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	s.log(ctx).Info("SOS alert resolved",
		slog.String("alert_id", alert.ID.String()),
		slog.String("resolution", string(alert.Status)),
	)

	s.publishEvent(ctx, alert, service.AlertEventResolved, nil)

	return alert, nil
}

// UpdateAlertLocation appends a location fix to an open alert. Fixes for
// unknown or already closed alerts are dropped silently; location telemetry
// arrives on a lag and must never error back to the device.
func (s *sosService) UpdateAlertLocation(ctx context.Context, input usecase.LocationUpdateInput) error {
	alert, err := s.alertRepo.FindAlertByID(ctx, input.AlertID)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			s.log(ctx).Debug("dropping location fix for unknown alert",
				slog.String("alert_id", input.AlertID.String()),
			)

			return nil
		}

		return err
	}

	if alert.Status.IsTerminal() {
		s.log(ctx).Debug("dropping location fix for closed alert",
			slog.String("alert_id", input.AlertID.String()),
			slog.String("status", string(alert.Status)),
		)

		return nil
	}

	address, err := s.geocoder.ReverseGeocode(ctx, input.Latitude, input.Longitude)
	if err != nil {
		address = ""
	}

	return s.alertRepo.AppendLocation(ctx, &entity.AlertLocation{
		AlertID:    input.AlertID,
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		Accuracy:   input.Accuracy,
		Address:    address,
		RecordedAt: time.Now(),
	})
}

// GetAlert returns one alert with its histories loaded.
func (s *sosService) GetAlert(ctx context.Context, alertID uuid.UUID) (*entity.SOSAlert, error) {
	alert, err := s.alertRepo.FindAlertByID(ctx, alertID)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return nil, domainerrors.ErrAlertNotFound
		}

		return nil, err
	}

	if alert.LocationHistory, err = s.alertRepo.FindLocationHistory(ctx, alertID); err != nil {
		return nil, err
	}
	if alert.Acknowledgments, err = s.alertRepo.FindAcknowledgments(ctx, alertID); err != nil {
		return nil, err
	}
	if alert.Notifications, err = s.alertRepo.FindNotifications(ctx, alertID); err != nil {
		return nil, err
	}

	return alert, nil
}

// GetActiveAlerts returns all open alerts, most urgent first.
func (s *sosService) GetActiveAlerts(ctx context.Context) ([]*entity.SOSAlert, error) {
	return s.alertRepo.FindActiveAlerts(ctx)
}

// GetAlertHistory returns a user's most recent alerts.
func (s *sosService) GetAlertHistory(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.SOSAlert, error) {
	if limit <= 0 {
		limit = s.cfg.HistoryLimit
	}

	return s.alertRepo.FindAlertsByInitiator(ctx, userID, limit)
}

// TestSOSSystem runs a dry run of the pipeline: a low-severity test alert
// that messages the user's contacts and auto-resolves. Test alerts never
// page responders or reach emergency services.
func (s *sosService) TestSOSSystem(ctx context.Context, userID uuid.UUID) (*usecase.SystemTestResult, error) {
	result := &usecase.SystemTestResult{}

	contacts, err := s.contactRepo.FindContactsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	autoNotify := make([]*entity.EmergencyContact, 0, len(contacts))
	for _, contact := range contacts {
		if contact.AutoNotifyOnSOS {
			autoNotify = append(autoNotify, contact)
		}
	}

	if len(contacts) == 0 {
		result.Issues = append(result.Issues, "no emergency contacts configured")
	} else if len(autoNotify) == 0 {
		result.Issues = append(result.Issues, "no emergency contacts enabled for automatic notification")
	}

	triggered, err := s.TriggerAlert(ctx, usecase.TriggerAlertInput{
		InitiatorID:   userID,
		InitiatorType: entity.InitiatorDriver,
		AlertType:     entity.AlertTypeOther,
		Severity:      entity.SeverityLow,
		Message:       "SOS system test",
		IsTest:        true,
		Latitude:      0,
		Longitude:     0,
	})
	if err != nil {
		return nil, err
	}

	alert := triggered.Alert
	result.AlertID = alert.ID

	for _, contact := range autoNotify {
		if s.sendContactMessages(ctx, alert, contact, "SOS system test", "This is a test of the emergency alert system. No action is required.") {
			result.ContactsNotified++
		} else {
			result.Issues = append(result.Issues, fmt.Sprintf("failed to notify contact %s", contact.Name))
		}
	}

	if _, err := s.ResolveAlert(ctx, usecase.ResolveAlertInput{
		AlertID:    alert.ID,
		Resolution: entity.StatusFalseAlarm,
		ResolvedBy: &userID,
		Notes:      "system test auto-resolved",
	}); err != nil {
		result.Issues = append(result.Issues, "failed to auto-resolve test alert")
	}

	result.Passed = len(result.Issues) == 0

	return result, nil
}

// ResumeEscalations re-arms timer chains for alerts that were active when
// the previous process stopped. Overdue deadlines fire immediately.
func (s *sosService) ResumeEscalations(ctx context.Context) error {
	alerts, err := s.alertRepo.FindAlertsWithPendingEscalation(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, alert := range alerts {
		delay := alert.NextEscalationAt.Sub(now)
		if delay < 0 {
			delay = 0
		}

		s.scheduler.Schedule(alert.ID, alert.EscalationLevel, delay)
	}

	if len(alerts) > 0 {
		s.logger.Info("resumed escalation chains",
			slog.Int("count", len(alerts)),
		)
	}

	return nil
}

// runEscalation is the timer callback. The compare-and-set in the store is
// the only arbiter: a stale result means an acknowledgment or resolution won
// and this firing is a silent no-op.
func (s *sosService) runEscalation(ctx context.Context, alertID uuid.UUID, expectedLevel int) {
	now := time.Now()
	newLevel := expectedLevel + 1
	ceiling := len(s.cfg.EscalationDelays)

	var nextDeadline *time.Time
	if newLevel < ceiling {
		deadline := now.Add(s.cfg.EscalationDelays[newLevel])
		nextDeadline = &deadline
	}

	err := s.alertRepo.AdvanceEscalation(ctx, alertID, expectedLevel, now, nextDeadline)
	if err != nil {
		if errors.Is(err, repository.ErrStaleTransition) {
			s.logger.Debug("escalation timer lost the race, skipping",
				slog.String("alert_id", alertID.String()),
				slog.Int("expected_level", expectedLevel),
			)

			return
		}

		s.logger.Error("escalation advance failed",
			slog.String("alert_id", alertID.String()),
			slog.String("error", err.Error()),
		)

		return
	}

	alert, err := s.alertRepo.FindAlertByID(ctx, alertID)
	if err != nil {
		s.logger.Error("failed to load alert after escalation",
			slog.String("alert_id", alertID.String()),
			slog.String("error", err.Error()),
		)

		return
	}

	s.logger.Info("SOS alert escalated",
		slog.String("alert_id", alertID.String()),
		slog.Int("level", newLevel),
	)

	if err := s.responseLogRepo.CreateEntry(ctx, &entity.ResponseLogEntry{
		AlertID:   alertID,
		Action:    entity.ResponseActionEscalated,
		Notes:     fmt.Sprintf("auto-escalated to level %d", newLevel),
		CreatedAt: now,
	}); err != nil {
		s.logger.Error("failed to record escalation",
			slog.String("alert_id", alertID.String()),
			slog.String("error", err.Error()),
		)
	}

	// Each step widens the search and pages responders that were not already
	// contacted; the notification record makes re-paging a no-op.
	radius := s.cfg.BaseRadiusMiles * float64(newLevel+1)
	limit := s.cfg.InitialResponderCount + newLevel*s.cfg.EscalationResponderCount
	if limit > s.cfg.MaxResponders {
		limit = s.cfg.MaxResponders
	}

	responders, err := s.locator.FindNearbyResponders(ctx,
		alert.Location.Latitude, alert.Location.Longitude, radius, limit)
	if err != nil {
		s.logger.Error("responder discovery failed during escalation",
			slog.String("alert_id", alertID.String()),
			slog.String("error", err.Error()),
		)
		responders = nil
	}

	tokens := s.recordResponderPaging(ctx, alert, responders)
	s.publishEvent(ctx, alert, service.AlertEventEscalated, tokens)

	// The first timeout already means nobody reacted in time; hand off to
	// emergency services unless they were reached at creation.
	if !alert.EmergencyServicesNotified {
		s.notifyEmergencyServices(ctx, alert)
	}

	if newLevel < ceiling {
		s.scheduler.Schedule(alertID, newLevel, s.cfg.EscalationDelays[newLevel])
	}
}

// transitionConflict maps a stale conditional update to the right domain
// error by re-reading the alert.
func (s *sosService) transitionConflict(ctx context.Context, alertID uuid.UUID, op string) error {
	alert, err := s.alertRepo.FindAlertByID(ctx, alertID)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return domainerrors.ErrAlertNotFound
		}

		return err
	}

	return domainerrors.ErrInvalidTransition.WrapMessage(
		fmt.Sprintf("cannot %s alert in status %s", op, alert.Status))
}

func resolutionAction(status entity.AlertStatus) string {
	switch status {
	case entity.StatusFalseAlarm:
		return entity.ResponseActionFalseAlarm
	case entity.StatusCancelled:
		return entity.ResponseActionCancelled
	default:
		return entity.ResponseActionResolved
	}
}

func validateTriggerInput(input usecase.TriggerAlertInput) error {
	if input.InitiatorID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WrapMessage("initiator id is required")
	}
	if !input.InitiatorType.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid initiator type")
	}
	if !input.AlertType.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid alert type")
	}
	if !input.Severity.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid severity")
	}
	if input.Latitude < -90 || input.Latitude > 90 || input.Longitude < -180 || input.Longitude > 180 {
		return domainerrors.ErrValidationFailed.WrapMessage("coordinates out of range")
	}

	return nil
}

// generateIncidentReport assembles the full timeline of a closed alert and
// attaches it as an immutable record.
func (s *sosService) generateIncidentReport(ctx context.Context, alert *entity.SOSAlert) error {
	locations, err := s.alertRepo.FindLocationHistory(ctx, alert.ID)
	if err != nil {
		return err
	}
	acks, err := s.alertRepo.FindAcknowledgments(ctx, alert.ID)
	if err != nil {
		return err
	}
	notifications, err := s.alertRepo.FindNotifications(ctx, alert.ID)
	if err != nil {
		return err
	}
	responseLog, err := s.responseLogRepo.FindEntriesByAlert(ctx, alert.ID)
	if err != nil {
		return err
	}

	timeline := make([]entity.EscalationStep, 0, alert.EscalationLevel)
	for _, entry := range responseLog {
		if entry.Action == entity.ResponseActionEscalated {
			timeline = append(timeline, entity.EscalationStep{
				Level:       len(timeline) + 1,
				EscalatedAt: entry.CreatedAt,
			})
		}
	}

	resolvedAt := alert.UpdatedAt
	if alert.ResolvedAt != nil {
		resolvedAt = *alert.ResolvedAt
	}

	report := entity.IncidentReport{
		AlertID:                   alert.ID,
		InitiatorID:               alert.InitiatorID,
		InitiatorType:             alert.InitiatorType,
		AlertType:                 alert.AlertType,
		Severity:                  alert.Severity,
		FinalStatus:               alert.Status,
		CreatedAt:                 alert.CreatedAt,
		ResolvedAt:                resolvedAt,
		DurationSeconds:           int64(resolvedAt.Sub(alert.CreatedAt).Seconds()),
		ResponderID:               alert.ResponderID,
		ResponseTime:              alert.ResponseTime,
		ResolvedBy:                alert.ResolvedBy,
		ResolutionNotes:           alert.ResolutionNotes,
		EscalationLevel:           alert.EscalationLevel,
		EscalationTimeline:        timeline,
		EmergencyServicesNotified: alert.EmergencyServicesNotified,
		EmergencyReferenceID:      alert.EmergencyReferenceID,
		LocationHistory:           locations,
		Acknowledgments:           acks,
		Notifications:             notifications,
		ResponseLog:               responseLog,
		GeneratedAt:               time.Now(),
	}

	data, err := json.Marshal(report)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := s.alertRepo.SaveIncidentReport(ctx, alert.ID, data); err != nil {
		return err
	}

	alert.IncidentReport = data

	return nil
}

// log returns the request-scoped logger when one is on the context.
func (s *sosService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}
