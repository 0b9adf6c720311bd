package impl

import (
	"context"
	"testing"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSOSService_TriggerAlert_ValidationErrors(t *testing.T) {
	valid := usecase.TriggerAlertInput{
		InitiatorID:   uuid.New(),
		InitiatorType: entity.InitiatorDriver,
		AlertType:     entity.AlertTypeMedical,
		Severity:      entity.SeverityHigh,
		Latitude:      37.77,
		Longitude:     -122.41,
	}

	tests := []struct {
		name   string
		mutate func(input *usecase.TriggerAlertInput)
	}{
		{
			name:   "missing initiator",
			mutate: func(input *usecase.TriggerAlertInput) { input.InitiatorID = uuid.Nil },
		},
		{
			name:   "unknown initiator type",
			mutate: func(input *usecase.TriggerAlertInput) { input.InitiatorType = "bystander" },
		},
		{
			name:   "unknown alert type",
			mutate: func(input *usecase.TriggerAlertInput) { input.AlertType = "weather" },
		},
		{
			name:   "unknown severity",
			mutate: func(input *usecase.TriggerAlertInput) { input.Severity = "extreme" },
		},
		{
			name:   "latitude out of range",
			mutate: func(input *usecase.TriggerAlertInput) { input.Latitude = 91 },
		},
		{
			name:   "longitude out of range",
			mutate: func(input *usecase.TriggerAlertInput) { input.Longitude = -181 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kit := newSOSTestKit(t)

			input := valid
			tt.mutate(&input)

			result, err := kit.service.TriggerAlert(context.Background(), input)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestSOSService_TriggerAlert_CreateFails(t *testing.T) {
	kit := newSOSTestKit(t)

	ctx := context.Background()
	dbErr := errors.New("connection reset")

	kit.geocoder.EXPECT().
		ReverseGeocode(ctx, 37.77, -122.41).
		Return("", errors.New("geocoder down"))

	kit.alertRepo.EXPECT().
		CreateAlert(ctx, mock.AnythingOfType("*entity.SOSAlert")).
		Return(dbErr)

	result, err := kit.service.TriggerAlert(ctx, usecase.TriggerAlertInput{
		InitiatorID:   uuid.New(),
		InitiatorType: entity.InitiatorDriver,
		AlertType:     entity.AlertTypeAccident,
		Severity:      entity.SeverityHigh,
		Latitude:      37.77,
		Longitude:     -122.41,
	})
	require.ErrorIs(t, err, dbErr)
	assert.Nil(t, result)
	assert.Equal(t, 0, kit.armedTimers(), "a failed create must not arm a timer")
}

func TestSOSService_TriggerAlert_GatewayFailureDoesNotBlock(t *testing.T) {
	kit := newSOSTestKit(t)

	ctx := context.Background()
	initiatorID := uuid.New()

	kit.geocoder.EXPECT().
		ReverseGeocode(ctx, 37.77, -122.41).
		Return("", nil)
	kit.alertRepo.EXPECT().
		CreateAlert(ctx, mock.AnythingOfType("*entity.SOSAlert")).
		Return(nil)

	kit.gateway.EXPECT().
		Notify(ctx, mock.AnythingOfType("*entity.SOSAlert")).
		Return("", errors.New("dispatch gateway timeout"))

	kit.contactRepo.EXPECT().
		FindContactsByUser(ctx, initiatorID).
		Return(nil, nil)
	kit.locator.EXPECT().
		FindNearbyResponders(ctx, 37.77, -122.41, 5.0, 5).
		Return(nil, nil)
	kit.publisher.EXPECT().
		PublishAlertEvent(ctx, mock.AnythingOfType("*service.AlertEvent")).
		Return(nil)

	result, err := kit.service.TriggerAlert(ctx, usecase.TriggerAlertInput{
		InitiatorID:   initiatorID,
		InitiatorType: entity.InitiatorDriver,
		AlertType:     entity.AlertTypeMedical,
		Severity:      entity.SeverityCritical,
		Latitude:      37.77,
		Longitude:     -122.41,
	})
	require.NoError(t, err)

	// The flag stays unset so the next escalation retries the handoff.
	assert.False(t, result.Alert.EmergencyServicesNotified)
	assert.Empty(t, result.Alert.EmergencyReferenceID)
}

func TestSOSService_AcknowledgeAlert_AlreadyAcknowledged(t *testing.T) {
	kit := newSOSTestKit(t)

	ctx := context.Background()
	alertID := uuid.New()

	kit.expectTransaction(ctx)
	kit.factory.EXPECT().NewAlertRepository().Return(kit.alertRepo)

	kit.alertRepo.EXPECT().
		Acknowledge(ctx, alertID, mock.AnythingOfType("repository.AcknowledgeUpdate")).
		Return(repository.ErrStaleTransition)

	kit.alertRepo.EXPECT().
		FindAlertByID(ctx, alertID).
		Return(&entity.SOSAlert{ID: alertID, Status: entity.StatusAcknowledged}, nil)

	alert, err := kit.service.AcknowledgeAlert(ctx, alertID, uuid.New())
	require.Error(t, err)
	assert.Nil(t, alert)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "cannot acknowledge alert in status acknowledged")
}

func TestSOSService_AcknowledgeAlert_AlertVanished(t *testing.T) {
	kit := newSOSTestKit(t)

	ctx := context.Background()
	alertID := uuid.New()

	kit.expectTransaction(ctx)
	kit.factory.EXPECT().NewAlertRepository().Return(kit.alertRepo)

	kit.alertRepo.EXPECT().
		Acknowledge(ctx, alertID, mock.AnythingOfType("repository.AcknowledgeUpdate")).
		Return(repository.ErrStaleTransition)

	kit.alertRepo.EXPECT().
		FindAlertByID(ctx, alertID).
		Return(nil, repository.ErrAlertNotFound)

	_, err := kit.service.AcknowledgeAlert(ctx, alertID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrAlertNotFound)
}

func TestSOSService_ResolveAlert_InvalidResolution(t *testing.T) {
	kit := newSOSTestKit(t)

	_, err := kit.service.ResolveAlert(context.Background(), usecase.ResolveAlertInput{
		AlertID:    uuid.New(),
		Resolution: entity.StatusActive,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidResolution)
}

func TestSOSService_ResolveAlert_AlreadyTerminal(t *testing.T) {
	kit := newSOSTestKit(t)

	ctx := context.Background()
	alertID := uuid.New()

	kit.expectTransaction(ctx)
	kit.factory.EXPECT().NewAlertRepository().Return(kit.alertRepo)

	kit.alertRepo.EXPECT().
		Resolve(ctx, alertID, mock.AnythingOfType("repository.ResolveUpdate")).
		Return(repository.ErrStaleTransition)

	kit.alertRepo.EXPECT().
		FindAlertByID(ctx, alertID).
		Return(&entity.SOSAlert{ID: alertID, Status: entity.StatusResolved}, nil)

	_, err := kit.service.ResolveAlert(ctx, usecase.ResolveAlertInput{
		AlertID:    alertID,
		Resolution: entity.StatusCancelled,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "cannot resolve alert in status resolved")
}

func TestSOSService_UpdateAlertLocation_ClosedAlertDropsFix(t *testing.T) {
	kit := newSOSTestKit(t)

	ctx := context.Background()
	alertID := uuid.New()

	// No AppendLocation expectation: a fix for a closed alert is dropped.
	kit.alertRepo.EXPECT().
		FindAlertByID(ctx, alertID).
		Return(&entity.SOSAlert{ID: alertID, Status: entity.StatusResolved}, nil)

	err := kit.service.UpdateAlertLocation(ctx, usecase.LocationUpdateInput{
		AlertID:  alertID,
		Latitude: 1, Longitude: 2,
	})
	assert.NoError(t, err)
}

func TestSOSService_UpdateAlertLocation_UnknownAlertDropsFix(t *testing.T) {
	kit := newSOSTestKit(t)

	ctx := context.Background()
	alertID := uuid.New()

	kit.alertRepo.EXPECT().
		FindAlertByID(ctx, alertID).
		Return(nil, repository.ErrAlertNotFound)

	err := kit.service.UpdateAlertLocation(ctx, usecase.LocationUpdateInput{AlertID: alertID})
	assert.NoError(t, err)
}

func TestSOSService_RunEscalation_StaleTimerSkips(t *testing.T) {
	kit := newSOSTestKit(t)
	svc := kit.service.(*sosService)

	ctx := context.Background()
	alertID := uuid.New()

	// A responder acknowledged between arming and firing; the compare-and-set
	// rejects the advance and the firing must do nothing else.
	kit.alertRepo.EXPECT().
		AdvanceEscalation(ctx, alertID, 0, mock.AnythingOfType("time.Time"), mock.Anything).
		Return(repository.ErrStaleTransition)

	svc.runEscalation(ctx, alertID, 0)
}

func TestSOSService_TestSOSSystem_NoContacts(t *testing.T) {
	kit := newSOSTestKit(t)

	ctx := context.Background()
	userID := uuid.New()

	kit.contactRepo.EXPECT().
		FindContactsByUser(ctx, userID).
		Return(nil, nil)

	kit.geocoder.EXPECT().
		ReverseGeocode(ctx, 0.0, 0.0).
		Return("", nil)
	kit.alertRepo.EXPECT().
		CreateAlert(ctx, mock.AnythingOfType("*entity.SOSAlert")).
		Return(nil)

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
			return &entity.SOSAlert{ID: id, Status: entity.StatusFalseAlarm, IsTest: true}, nil
		})

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

	assert.False(t, result.Passed)
	assert.Equal(t, 0, result.ContactsNotified)
	assert.Contains(t, result.Issues, "no emergency contacts configured")
}
