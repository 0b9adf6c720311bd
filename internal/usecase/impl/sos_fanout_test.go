package impl

import (
	"context"
	"testing"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSOSService_RecordResponderPaging_OnlyPagesNewResponders(t *testing.T) {
	kit := newSOSTestKit(t)
	svc := kit.service.(*sosService)

	ctx := context.Background()
	alert := &entity.SOSAlert{ID: uuid.New(), Status: entity.StatusActive}

	fresh := &entity.NearbyResponder{ResponderID: uuid.New(), FCMTokens: []string{"tok-new-1", "tok-new-2"}}
	alreadyPaged := &entity.NearbyResponder{ResponderID: uuid.New(), FCMTokens: []string{"tok-old"}}
	dispatch := &entity.NearbyResponder{ResponderID: entity.EmergencyDispatchID, IsDispatch: true}

	// The dispatch entry is never recorded, so only two inserts happen and
	// the one that hits the unique constraint contributes no tokens.
	kit.alertRepo.EXPECT().
		AppendNotification(ctx, mock.AnythingOfType("*entity.AlertNotification")).
		RunAndReturn(func(_ context.Context, n *entity.AlertNotification) (bool, error) {
			assert.Equal(t, entity.NotifyTargetResponder, n.NotifType)
			assert.Equal(t, "push", n.Channel)

			return n.TargetID == fresh.ResponderID.String(), nil
		}).
		Times(2)

	tokens := svc.recordResponderPaging(ctx, alert, []*entity.NearbyResponder{fresh, alreadyPaged, dispatch})
	assert.Equal(t, []string{"tok-new-1", "tok-new-2"}, tokens)
}

func TestSOSService_SendContactMessages_SkipsMissingEmail(t *testing.T) {
	kit := newSOSTestKit(t)
	svc := kit.service.(*sosService)

	ctx := context.Background()
	alert := &entity.SOSAlert{ID: uuid.New(), Status: entity.StatusActive}
	contact := &entity.EmergencyContact{
		ID:                     uuid.New(),
		Name:                   "Kim",
		Phone:                  "+15554445555",
		NotificationPreference: entity.PreferenceAll,
		AutoNotifyOnSOS:        true,
	}

	kit.alertRepo.EXPECT().
		AppendNotification(ctx, mock.AnythingOfType("*entity.AlertNotification")).
		Return(true, nil)

	var sent *service.ChannelMessage
	kit.channel.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.ChannelMessage")).
		Run(func(_ context.Context, msg *service.ChannelMessage) {
			sent = msg
		}).
		Return(nil)

	delivered := svc.sendContactMessages(ctx, alert, contact, "subject", "body")
	assert.True(t, delivered)

	require.NotNil(t, sent)
	assert.Equal(t, "sms", sent.Channel)
	assert.Equal(t, contact.Phone, sent.To)
}

func TestSOSService_SendContactMessages_AlreadyNotified(t *testing.T) {
	kit := newSOSTestKit(t)
	svc := kit.service.(*sosService)

	ctx := context.Background()
	alert := &entity.SOSAlert{ID: uuid.New(), Status: entity.StatusActive}
	contact := &entity.EmergencyContact{
		ID:                     uuid.New(),
		Name:                   "Kim",
		Phone:                  "+15554445555",
		NotificationPreference: entity.PreferenceSMS,
	}

	// A repeated fanout hits the existing record and sends nothing.
	kit.alertRepo.EXPECT().
		AppendNotification(ctx, mock.AnythingOfType("*entity.AlertNotification")).
		Return(false, nil)

	delivered := svc.sendContactMessages(ctx, alert, contact, "subject", "body")
	assert.True(t, delivered)
}

func TestSOSService_SendContactMessages_AllChannelsFail(t *testing.T) {
	kit := newSOSTestKit(t)
	svc := kit.service.(*sosService)

	ctx := context.Background()
	alert := &entity.SOSAlert{ID: uuid.New(), Status: entity.StatusActive}
	contact := &entity.EmergencyContact{
		ID:                     uuid.New(),
		Name:                   "Kim",
		Phone:                  "+15554445555",
		Email:                  "kim@example.com",
		NotificationPreference: entity.PreferenceAll,
	}

	kit.alertRepo.EXPECT().
		AppendNotification(ctx, mock.AnythingOfType("*entity.AlertNotification")).
		Return(true, nil)

	kit.channel.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.ChannelMessage")).
		Return(errors.New("relay unavailable")).
		Times(2)

	// With no channel delivered the record is released so the contact is not
	// permanently marked as notified.
	kit.alertRepo.EXPECT().
		RemoveNotification(ctx, alert.ID, entity.NotifyTargetContact, contact.ID.String()).
		Return(nil)

	delivered := svc.sendContactMessages(ctx, alert, contact, "subject", "body")
	assert.False(t, delivered)
}

func TestSOSService_NotifyContacts_SkipsOptedOut(t *testing.T) {
	kit := newSOSTestKit(t)
	svc := kit.service.(*sosService)

	ctx := context.Background()
	alert := &entity.SOSAlert{
		ID:          uuid.New(),
		InitiatorID: uuid.New(),
		Status:      entity.StatusActive,
		AlertType:   entity.AlertTypeMedical,
	}

	optedOut := &entity.EmergencyContact{
		ID:                     uuid.New(),
		Phone:                  "+15550009999",
		NotificationPreference: entity.PreferenceSMS,
		AutoNotifyOnSOS:        false,
	}
	kit.contactRepo.EXPECT().
		FindContactsByUser(ctx, alert.InitiatorID).
		Return([]*entity.EmergencyContact{optedOut}, nil)

	// No AppendNotification or Send expectations: touching either fails.
	svc.notifyContacts(ctx, alert)
}

func TestSOSService_NotifyEmergencyServices_GatewayFailureLeavesFlagUnset(t *testing.T) {
	kit := newSOSTestKit(t)
	svc := kit.service.(*sosService)

	ctx := context.Background()
	alert := &entity.SOSAlert{ID: uuid.New(), Status: entity.StatusActive}

	kit.gateway.EXPECT().
		Notify(ctx, alert).
		Return("", errors.New("gateway timeout"))

	svc.notifyEmergencyServices(ctx, alert)

	assert.False(t, alert.EmergencyServicesNotified)
	assert.Empty(t, alert.EmergencyReferenceID)
}

func TestContactMessageBody_FallsBackToCoordinates(t *testing.T) {
	alert := &entity.SOSAlert{
		AlertType: entity.AlertTypeAccident,
		Severity:  entity.SeverityHigh,
		Message:   "rear-ended on the shoulder",
		Location:  entity.GeoPoint{Latitude: 37.77493, Longitude: -122.41942},
	}

	body := contactMessageBody(alert)
	assert.Contains(t, body, "37.77493, -122.41942")
	assert.Contains(t, body, "accident")
	assert.Contains(t, body, "rear-ended on the shoulder")

	alert.Location.Address = "5th and Mission"
	body = contactMessageBody(alert)
	assert.Contains(t, body, "5th and Mission")
	assert.NotContains(t, body, "37.77493")
}
