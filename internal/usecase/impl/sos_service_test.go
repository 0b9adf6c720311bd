package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSOSService_TriggerAlert_CriticalFullFanout(t *testing.T) {
	kit := newSOSTestKit(t)

	ctx := context.Background()
	initiatorID := uuid.New()

	kit.geocoder.EXPECT().
		ReverseGeocode(ctx, 37.77, -122.41).
		Return("Market St, San Francisco", nil)

	var created *entity.SOSAlert
	kit.alertRepo.EXPECT().
		CreateAlert(ctx, mock.AnythingOfType("*entity.SOSAlert")).
		Run(func(_ context.Context, alert *entity.SOSAlert) {
			created = alert
		}).
		Return(nil)

	kit.gateway.EXPECT().
		Notify(ctx, mock.AnythingOfType("*entity.SOSAlert")).
		Return("EMS-42", nil)
	kit.alertRepo.EXPECT().
		MarkEmergencyServicesNotified(ctx, mock.AnythingOfType("uuid.UUID"), "EMS-42").
		Return(nil)

	contact := &entity.EmergencyContact{
		ID:                     uuid.New(),
		UserID:                 initiatorID,
		Name:                   "Dana",
		Phone:                  "+15550001111",
		Email:                  "dana@example.com",
		NotificationPreference: entity.PreferenceAll,
		AutoNotifyOnSOS:        true,
	}
	kit.contactRepo.EXPECT().
		FindContactsByUser(ctx, initiatorID).
		Return([]*entity.EmergencyContact{contact}, nil)

	// One notification record for the contact, two for the responders.
	kit.alertRepo.EXPECT().
		AppendNotification(ctx, mock.AnythingOfType("*entity.AlertNotification")).
		Return(true, nil).
		Times(3)

	// The contact prefers both channels and has both addresses.
	kit.channel.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.ChannelMessage")).
		Return(nil).
		Times(2)

	responders := []*entity.NearbyResponder{
		{ResponderID: uuid.New(), Name: "R1", DistanceMiles: 1.2, FCMTokens: []string{"tok-1"}},
		{ResponderID: uuid.New(), Name: "R2", DistanceMiles: 3.4, FCMTokens: []string{"tok-2", "tok-3"}},
	}
	kit.locator.EXPECT().
		FindNearbyResponders(ctx, 37.77, -122.41, 5.0, 5).
		Return(responders, nil)

	var event *service.AlertEvent
	kit.publisher.EXPECT().
		PublishAlertEvent(ctx, mock.AnythingOfType("*service.AlertEvent")).
		Run(func(_ context.Context, e *service.AlertEvent) {
			event = e
		}).
		Return(nil)

	result, err := kit.service.TriggerAlert(ctx, usecase.TriggerAlertInput{
		InitiatorID:   initiatorID,
		InitiatorType: entity.InitiatorDriver,
		AlertType:     entity.AlertTypeMedical,
		Severity:      entity.SeverityCritical,
		Message:       "chest pain",
		Latitude:      37.77,
		Longitude:     -122.41,
		Accuracy:      12,
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, entity.StatusActive, created.Status)
	assert.Equal(t, "Market St, San Francisco", created.Location.Address)
	require.NotNil(t, created.NextEscalationAt, "critical alerts must persist the first escalation deadline")

	assert.True(t, result.Alert.EmergencyServicesNotified)
	assert.Equal(t, "EMS-42", result.Alert.EmergencyReferenceID)
	assert.Len(t, result.Responders, 2)

	require.NotNil(t, event)
	assert.Equal(t, service.AlertEventCreated, event.EventType)
	assert.ElementsMatch(t, []string{"tok-1", "tok-2", "tok-3"}, event.ResponderTokens)

	assert.Equal(t, 1, kit.armedTimers())
}

func TestSOSService_TriggerAlert_MediumSeverityDoesNotEscalate(t *testing.T) {
	kit := newSOSTestKit(t)

	ctx := context.Background()
	initiatorID := uuid.New()

	kit.geocoder.EXPECT().
		ReverseGeocode(ctx, 40.71, -74.0).
		Return("", nil)

	var created *entity.SOSAlert
	kit.alertRepo.EXPECT().
		CreateAlert(ctx, mock.AnythingOfType("*entity.SOSAlert")).
		Run(func(_ context.Context, alert *entity.SOSAlert) {
			created = alert
		}).
		Return(nil)

	kit.contactRepo.EXPECT().
		FindContactsByUser(ctx, initiatorID).
		Return(nil, nil)

	kit.locator.EXPECT().
		FindNearbyResponders(ctx, 40.71, -74.0, 5.0, 5).
		Return(nil, nil)

	kit.publisher.EXPECT().
		PublishAlertEvent(ctx, mock.AnythingOfType("*service.AlertEvent")).
		Return(nil)

	result, err := kit.service.TriggerAlert(ctx, usecase.TriggerAlertInput{
		InitiatorID:   initiatorID,
		InitiatorType: entity.InitiatorContractor,
		AlertType:     entity.AlertTypeMechanical,
		Severity:      entity.SeverityMedium,
		Latitude:      40.71,
		Longitude:     -74.0,
	})
	require.NoError(t, err)

	assert.Nil(t, created.NextEscalationAt)
	assert.Empty(t, result.Responders)
	assert.Equal(t, 0, kit.armedTimers(), "medium severity must not arm an escalation timer")
}

func TestSOSService_TriggerAlert_TestAlertSkipsFanout(t *testing.T) {
	kit := newSOSTestKit(t)

	ctx := context.Background()

	kit.geocoder.EXPECT().
		ReverseGeocode(ctx, 0.0, 0.0).
		Return("", nil)

	var created *entity.SOSAlert
	kit.alertRepo.EXPECT().
		CreateAlert(ctx, mock.AnythingOfType("*entity.SOSAlert")).
		Run(func(_ context.Context, alert *entity.SOSAlert) {
			created = alert
		}).
		Return(nil)

	// No gateway, contact, locator or publisher expectations: a test alert
	// that touches any of them fails the mock assertions.
	result, err := kit.service.TriggerAlert(ctx, usecase.TriggerAlertInput{
		InitiatorID:   uuid.New(),
		InitiatorType: entity.InitiatorDriver,
		AlertType:     entity.AlertTypeOther,
		Severity:      entity.SeverityCritical,
		IsTest:        true,
	})
	require.NoError(t, err)

	assert.True(t, result.Alert.IsTest)
	assert.Nil(t, created.NextEscalationAt)
	assert.Equal(t, 0, kit.armedTimers())
}

func TestSOSService_AcknowledgeAlert_Success(t *testing.T) {
	kit := newSOSTestKit(t)

	ctx := context.Background()
	alertID := uuid.New()
	responderID := uuid.New()

	// Arm a timer so the acknowledgment has something to cancel.
	kit.scheduler.Schedule(alertID, 0, time.Hour)
	require.Equal(t, 1, kit.armedTimers())

	kit.expectTransaction(ctx)
	kit.factory.EXPECT().NewAlertRepository().Return(kit.alertRepo)
	kit.factory.EXPECT().NewResponseLogRepository().Return(kit.responseLogRepo)

	kit.alertRepo.EXPECT().
		Acknowledge(ctx, alertID, mock.AnythingOfType("repository.AcknowledgeUpdate")).
		Return(nil)

	var ack *entity.AlertAcknowledgment
	kit.alertRepo.EXPECT().
		AppendAcknowledgment(ctx, mock.AnythingOfType("*entity.AlertAcknowledgment")).
		Run(func(_ context.Context, a *entity.AlertAcknowledgment) {
			ack = a
		}).
		Return(nil)

	var logEntry *entity.ResponseLogEntry
	kit.responseLogRepo.EXPECT().
		CreateEntry(ctx, mock.AnythingOfType("*entity.ResponseLogEntry")).
		Run(func(_ context.Context, e *entity.ResponseLogEntry) {
			logEntry = e
		}).
		Return(nil)

	now := time.Now()
	kit.alertRepo.EXPECT().
		FindAlertByID(ctx, alertID).
		Return(&entity.SOSAlert{
			ID:           alertID,
			Status:       entity.StatusAcknowledged,
			ResponderID:  &responderID,
			ResponseTime: &now,
		}, nil)

	kit.publisher.EXPECT().
		PublishAlertEvent(ctx, mock.AnythingOfType("*service.AlertEvent")).
		Run(func(_ context.Context, e *service.AlertEvent) {
			assert.Equal(t, service.AlertEventAcknowledged, e.EventType)
		}).
		Return(nil)

	alert, err := kit.service.AcknowledgeAlert(ctx, alertID, responderID)
	require.NoError(t, err)

	assert.Equal(t, entity.StatusAcknowledged, alert.Status)
	assert.Equal(t, "accepted", ack.Action)
	assert.Equal(t, entity.ResponseActionAcknowledged, logEntry.Action)
	require.NotNil(t, logEntry.ResponderID)
	assert.Equal(t, responderID, *logEntry.ResponderID)

	assert.Equal(t, 0, kit.armedTimers(), "acknowledgment must cancel the escalation timer")
}

func TestSOSService_AcknowledgeAlert_BeatsArmedTimer(t *testing.T) {
	kit := newSOSTestKit(t)

	ctx := context.Background()
	alertID := uuid.New()
	responderID := uuid.New()

	// Arm a real short-fuse timer and acknowledge before it fires. No
	// AdvanceEscalation expectation is set, so a firing that reaches the
	// store fails the mock assertions.
	kit.scheduler.Schedule(alertID, 0, 100*time.Millisecond)

	kit.expectTransaction(ctx)
	kit.factory.EXPECT().NewAlertRepository().Return(kit.alertRepo)
	kit.factory.EXPECT().NewResponseLogRepository().Return(kit.responseLogRepo)
	kit.alertRepo.EXPECT().
		Acknowledge(ctx, alertID, mock.AnythingOfType("repository.AcknowledgeUpdate")).
		Return(nil)
	kit.alertRepo.EXPECT().
		AppendAcknowledgment(ctx, mock.AnythingOfType("*entity.AlertAcknowledgment")).
		Return(nil)
	kit.responseLogRepo.EXPECT().
		CreateEntry(ctx, mock.AnythingOfType("*entity.ResponseLogEntry")).
		Return(nil)
	kit.alertRepo.EXPECT().
		FindAlertByID(ctx, alertID).
		Return(&entity.SOSAlert{ID: alertID, Status: entity.StatusAcknowledged}, nil)
	kit.publisher.EXPECT().
		PublishAlertEvent(ctx, mock.AnythingOfType("*service.AlertEvent")).
		Return(nil)

	alert, err := kit.service.AcknowledgeAlert(ctx, alertID, responderID)
	require.NoError(t, err)

	assert.Equal(t, 0, alert.EscalationLevel, "an acknowledged alert must stay at level 0")
	assert.Equal(t, 0, kit.armedTimers())

	// Wait past the original deadline; the cancelled timer must stay silent.
	time.Sleep(250 * time.Millisecond)
	assert.Equal(t, 0, kit.armedTimers())
}

func TestSOSService_ResolveAlert_FalseAlarmAfterEmergencyNotification(t *testing.T) {
	kit := newSOSTestKit(t)

	ctx := context.Background()
	alertID := uuid.New()
	resolvedBy := uuid.New()
	createdAt := time.Now().Add(-10 * time.Minute)
	resolvedAt := time.Now()

	kit.expectTransaction(ctx)
	kit.factory.EXPECT().NewAlertRepository().Return(kit.alertRepo)
	kit.factory.EXPECT().NewResponseLogRepository().Return(kit.responseLogRepo)

	var update repository.ResolveUpdate
	kit.alertRepo.EXPECT().
		Resolve(ctx, alertID, mock.AnythingOfType("repository.ResolveUpdate")).
		Run(func(_ context.Context, _ uuid.UUID, u repository.ResolveUpdate) {
			update = u
		}).
		Return(nil)

	var logEntry *entity.ResponseLogEntry
	kit.responseLogRepo.EXPECT().
		CreateEntry(ctx, mock.AnythingOfType("*entity.ResponseLogEntry")).
		Run(func(_ context.Context, e *entity.ResponseLogEntry) {
			logEntry = e
		}).
		Return(nil)

	resolved := &entity.SOSAlert{
		ID:                        alertID,
		InitiatorID:               uuid.New(),
		InitiatorType:             entity.InitiatorDriver,
		AlertType:                 entity.AlertTypeThreat,
		Severity:                  entity.SeverityCritical,
		Status:                    entity.StatusFalseAlarm,
		EscalationLevel:           1,
		EmergencyServicesNotified: true,
		EmergencyReferenceID:      "EMS-42",
		ResolvedAt:                &resolvedAt,
		ResolvedBy:                &resolvedBy,
		CreatedAt:                 createdAt,
	}
	kit.alertRepo.EXPECT().FindAlertByID(ctx, alertID).Return(resolved, nil)

	// Incident report assembly.
	kit.alertRepo.EXPECT().
		FindLocationHistory(ctx, alertID).
		Return([]entity.AlertLocation{{AlertID: alertID, Latitude: 1, Longitude: 2}}, nil)
	kit.alertRepo.EXPECT().
		FindAcknowledgments(ctx, alertID).
		Return(nil, nil)
	kit.alertRepo.EXPECT().
		FindNotifications(ctx, alertID).
		Return([]entity.AlertNotification{{AlertID: alertID, NotifType: entity.NotifyTargetContact}}, nil)
	kit.responseLogRepo.EXPECT().
		FindEntriesByAlert(ctx, alertID).
		Return([]entity.ResponseLogEntry{
			{AlertID: alertID, Action: entity.ResponseActionEscalated, CreatedAt: createdAt.Add(time.Minute)},
		}, nil)

	var rawReport json.RawMessage
	kit.alertRepo.EXPECT().
		SaveIncidentReport(ctx, alertID, mock.AnythingOfType("json.RawMessage")).
		Run(func(_ context.Context, _ uuid.UUID, report json.RawMessage) {
			rawReport = report
		}).
		Return(nil)

	kit.publisher.EXPECT().
		PublishAlertEvent(ctx, mock.AnythingOfType("*service.AlertEvent")).
		Run(func(_ context.Context, e *service.AlertEvent) {
			assert.Equal(t, service.AlertEventResolved, e.EventType)
		}).
		Return(nil)

	alert, err := kit.service.ResolveAlert(ctx, usecase.ResolveAlertInput{
		AlertID:    alertID,
		Resolution: entity.StatusFalseAlarm,
		ResolvedBy: &resolvedBy,
		Notes:      "driver pressed the button by mistake",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusFalseAlarm, update.Status)
	assert.Equal(t, entity.ResponseActionFalseAlarm, logEntry.Action)

	var report entity.IncidentReport
	require.NoError(t, json.Unmarshal(rawReport, &report))
	assert.Equal(t, alertID, report.AlertID)
	assert.Equal(t, entity.StatusFalseAlarm, report.FinalStatus)
	assert.True(t, report.EmergencyServicesNotified)
	assert.Len(t, report.EscalationTimeline, 1)
	assert.Equal(t, 1, report.EscalationTimeline[0].Level)
	assert.Len(t, report.LocationHistory, 1)

	assert.JSONEq(t, string(rawReport), string(alert.IncidentReport))
}

func TestSOSService_UpdateAlertLocation_AppendsFix(t *testing.T) {
	kit := newSOSTestKit(t)

	ctx := context.Background()
	alertID := uuid.New()

	kit.alertRepo.EXPECT().
		FindAlertByID(ctx, alertID).
		Return(&entity.SOSAlert{ID: alertID, Status: entity.StatusActive}, nil)

	kit.geocoder.EXPECT().
		ReverseGeocode(ctx, 51.5, -0.12).
		Return("Westminster, London", nil)

	var loc *entity.AlertLocation
	kit.alertRepo.EXPECT().
		AppendLocation(ctx, mock.AnythingOfType("*entity.AlertLocation")).
		Run(func(_ context.Context, l *entity.AlertLocation) {
			loc = l
		}).
		Return(nil)

	err := kit.service.UpdateAlertLocation(ctx, usecase.LocationUpdateInput{
		AlertID:   alertID,
		Latitude:  51.5,
		Longitude: -0.12,
		Accuracy:  8,
	})
	require.NoError(t, err)

	assert.Equal(t, alertID, loc.AlertID)
	assert.Equal(t, 51.5, loc.Latitude)
	assert.Equal(t, "Westminster, London", loc.Address)
}

func TestSOSService_GetAlert_LoadsHistories(t *testing.T) {
	kit := newSOSTestKit(t)

	ctx := context.Background()
	alertID := uuid.New()

	kit.alertRepo.EXPECT().
		FindAlertByID(ctx, alertID).
		Return(&entity.SOSAlert{ID: alertID, Status: entity.StatusActive}, nil)
	kit.alertRepo.EXPECT().
		FindLocationHistory(ctx, alertID).
		Return([]entity.AlertLocation{{AlertID: alertID}, {AlertID: alertID}}, nil)
	kit.alertRepo.EXPECT().
		FindAcknowledgments(ctx, alertID).
		Return([]entity.AlertAcknowledgment{{AlertID: alertID}}, nil)
	kit.alertRepo.EXPECT().
		FindNotifications(ctx, alertID).
		Return([]entity.AlertNotification{{AlertID: alertID}}, nil)

	alert, err := kit.service.GetAlert(ctx, alertID)
	require.NoError(t, err)

	assert.Len(t, alert.LocationHistory, 2)
	assert.Len(t, alert.Acknowledgments, 1)
	assert.Len(t, alert.Notifications, 1)
}

func TestSOSService_GetAlertHistory_DefaultLimit(t *testing.T) {
	kit := newSOSTestKit(t)

	ctx := context.Background()
	userID := uuid.New()

	kit.alertRepo.EXPECT().
		FindAlertsByInitiator(ctx, userID, 20).
		Return([]*entity.SOSAlert{{InitiatorID: userID}}, nil)

	alerts, err := kit.service.GetAlertHistory(ctx, userID, 0)
	require.NoError(t, err)
	assert.Len(t, alerts, 1)
}

func TestSOSService_TestSOSSystem_PassesWithContacts(t *testing.T) {
	kit := newSOSTestKit(t)

	ctx := context.Background()
	userID := uuid.New()

	contact := &entity.EmergencyContact{
		ID:                     uuid.New(),
		UserID:                 userID,
		Name:                   "Sam",
		Phone:                  "+15552223333",
		NotificationPreference: entity.PreferenceSMS,
		AutoNotifyOnSOS:        true,
	}
	kit.contactRepo.EXPECT().
		FindContactsByUser(ctx, userID).
		Return([]*entity.EmergencyContact{contact}, nil)

	kit.geocoder.EXPECT().
		ReverseGeocode(ctx, 0.0, 0.0).
		Return("", nil)

	kit.alertRepo.EXPECT().
		CreateAlert(ctx, mock.AnythingOfType("*entity.SOSAlert")).
		Return(nil)

	// The dry run's own contact message.
	kit.alertRepo.EXPECT().
		AppendNotification(ctx, mock.AnythingOfType("*entity.AlertNotification")).
		Return(true, nil)
	kit.channel.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.ChannelMessage")).
		Run(func(_ context.Context, msg *service.ChannelMessage) {
			assert.Equal(t, "sms", msg.Channel)
			assert.Equal(t, contact.Phone, msg.To)
		}).
		Return(nil)

	// Auto-resolution of the test alert.
	kit.expectTransaction(ctx)
	kit.factory.EXPECT().NewAlertRepository().Return(kit.alertRepo)
	kit.factory.EXPECT().NewResponseLogRepository().Return(kit.responseLogRepo)
	kit.alertRepo.EXPECT().
		Resolve(ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("repository.ResolveUpdate")).
		Return(nil)
	kit.responseLogRepo.EXPECT().
		CreateEntry(ctx, mock.AnythingOfType("*entity.ResponseLogEntry")).
		Return(nil)

	kit.alertRepo.EXPECT().
		FindAlertByID(ctx, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*entity.SOSAlert, error) {
			return &entity.SOSAlert{
				ID:        id,
				Status:    entity.StatusFalseAlarm,
				IsTest:    true,
				CreatedAt: time.Now(),
			}, nil
		})

	// Incident report for the resolved test alert.
	kit.alertRepo.EXPECT().
		FindLocationHistory(ctx, mock.AnythingOfType("uuid.UUID")).
		Return(nil, nil)
	kit.alertRepo.EXPECT().
		FindAcknowledgments(ctx, mock.AnythingOfType("uuid.UUID")).
		Return(nil, nil)
	kit.alertRepo.EXPECT().
		FindNotifications(ctx, mock.AnythingOfType("uuid.UUID")).
		Return(nil, nil)
	kit.responseLogRepo.EXPECT().
		FindEntriesByAlert(ctx, mock.AnythingOfType("uuid.UUID")).
		Return(nil, nil)
	kit.alertRepo.EXPECT().
		SaveIncidentReport(ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("json.RawMessage")).
		Return(nil)

	result, err := kit.service.TestSOSSystem(ctx, userID)
	require.NoError(t, err)

	assert.True(t, result.Passed)
	assert.Equal(t, 1, result.ContactsNotified)
	assert.NotEqual(t, uuid.Nil, result.AlertID)
	assert.Empty(t, result.Issues)
	assert.Equal(t, 0, kit.armedTimers(), "test alerts must not arm escalation timers")
}

func TestSOSService_ResumeEscalations_ArmsTimers(t *testing.T) {
	kit := newSOSTestKit(t)

	ctx := context.Background()
	deadline := time.Now().Add(time.Hour)

	kit.alertRepo.EXPECT().
		FindAlertsWithPendingEscalation(ctx).
		Return([]*entity.SOSAlert{
			{ID: uuid.New(), Status: entity.StatusActive, EscalationLevel: 0, NextEscalationAt: &deadline},
			{ID: uuid.New(), Status: entity.StatusActive, EscalationLevel: 1, NextEscalationAt: &deadline},
		}, nil)

	require.NoError(t, kit.service.ResumeEscalations(ctx))
	assert.Equal(t, 2, kit.armedTimers())
}

func TestSOSService_RunEscalation_AdvancesAndWidens(t *testing.T) {
	kit := newSOSTestKit(t)
	svc := kit.service.(*sosService)

	ctx := context.Background()
	alertID := uuid.New()

	kit.alertRepo.EXPECT().
		AdvanceEscalation(ctx, alertID, 0, mock.AnythingOfType("time.Time"), mock.Anything).
		Return(nil)

	kit.alertRepo.EXPECT().
		FindAlertByID(ctx, alertID).
		Return(&entity.SOSAlert{
			ID:              alertID,
			Status:          entity.StatusActive,
			Severity:        entity.SeverityHigh,
			EscalationLevel: 1,
			Location:        entity.GeoPoint{Latitude: 37.77, Longitude: -122.41},
		}, nil)

	var logEntry *entity.ResponseLogEntry
	kit.responseLogRepo.EXPECT().
		CreateEntry(ctx, mock.AnythingOfType("*entity.ResponseLogEntry")).
		Run(func(_ context.Context, e *entity.ResponseLogEntry) {
			logEntry = e
		}).
		Return(nil)

	// Level 1 widens to base*2 and pages up to initial + 1*step responders.
	responder := &entity.NearbyResponder{ResponderID: uuid.New(), FCMTokens: []string{"tok-9"}}
	kit.locator.EXPECT().
		FindNearbyResponders(ctx, 37.77, -122.41, 10.0, 10).
		Return([]*entity.NearbyResponder{responder}, nil)

	kit.alertRepo.EXPECT().
		AppendNotification(ctx, mock.AnythingOfType("*entity.AlertNotification")).
		Return(true, nil)

	kit.publisher.EXPECT().
		PublishAlertEvent(ctx, mock.AnythingOfType("*service.AlertEvent")).
		Run(func(_ context.Context, e *service.AlertEvent) {
			assert.Equal(t, service.AlertEventEscalated, e.EventType)
			assert.Equal(t, 1, e.EscalationLevel)
			assert.Equal(t, []string{"tok-9"}, e.ResponderTokens)
		}).
		Return(nil)

	// A high-severity alert is not reported at creation, so the first timeout
	// hands off to emergency services.
	kit.gateway.EXPECT().
		Notify(ctx, mock.AnythingOfType("*entity.SOSAlert")).
		Return("EMS-55", nil)
	kit.alertRepo.EXPECT().
		MarkEmergencyServicesNotified(ctx, alertID, "EMS-55").
		Return(nil)

	svc.runEscalation(ctx, alertID, 0)

	require.NotNil(t, logEntry)
	assert.Equal(t, entity.ResponseActionEscalated, logEntry.Action)
	assert.Nil(t, logEntry.ResponderID, "auto-escalation is a system action")

	assert.Equal(t, 1, kit.armedTimers(), "a level below the ceiling must re-arm the timer")
}

func TestSOSService_RunEscalation_CeilingStopsChain(t *testing.T) {
	kit := newSOSTestKit(t)
	svc := kit.service.(*sosService)

	ctx := context.Background()
	alertID := uuid.New()

	kit.alertRepo.EXPECT().
		AdvanceEscalation(ctx, alertID, 2, mock.AnythingOfType("time.Time"), mock.Anything).
		Return(nil)

	// Emergency services were already reached at an earlier level; no gateway
	// expectation, a second dispatch fails the mock assertions.
	kit.alertRepo.EXPECT().
		FindAlertByID(ctx, alertID).
		Return(&entity.SOSAlert{
			ID:                        alertID,
			Status:                    entity.StatusActive,
			Severity:                  entity.SeverityHigh,
			EscalationLevel:           3,
			EmergencyServicesNotified: true,
			EmergencyReferenceID:      "EMS-77",
			Location:                  entity.GeoPoint{Latitude: 37.77, Longitude: -122.41},
		}, nil)

	kit.responseLogRepo.EXPECT().
		CreateEntry(ctx, mock.AnythingOfType("*entity.ResponseLogEntry")).
		Return(nil)

	// Level 3 widens to base*4 but the page size is capped.
	kit.locator.EXPECT().
		FindNearbyResponders(ctx, 37.77, -122.41, 20.0, 10).
		Return(nil, nil)

	kit.publisher.EXPECT().
		PublishAlertEvent(ctx, mock.AnythingOfType("*service.AlertEvent")).
		Return(nil)

	svc.runEscalation(ctx, alertID, 2)

	assert.Equal(t, 0, kit.armedTimers(), "the ceiling level must not re-arm the timer")
}
