package impl

import (
	"context"
	"testing"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	mockRepo "beacon/internal/mocks/repository"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type contactTestKit struct {
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	contactRepo *mockRepo.MockEmergencyContactRepository
	service     usecase.EmergencyContactUsecase
}

func newContactTestKit(t *testing.T) *contactTestKit {
	t.Helper()

	kit := &contactTestKit{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		contactRepo: mockRepo.NewMockEmergencyContactRepository(t),
	}
	kit.service = NewContactService(kit.txManager, kit.contactRepo)

	return kit
}

func (k *contactTestKit) expectTransaction(ctx context.Context) {
	k.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(factory repository.RepositoryFactory) error) error {
			return fn(k.factory)
		})
	k.factory.EXPECT().NewEmergencyContactRepository().Return(k.contactRepo)
}

func TestContactService_UpsertContact_CreatePrimaryDemotesExisting(t *testing.T) {
	kit := newContactTestKit(t)

	ctx := context.Background()
	userID := uuid.New()

	kit.expectTransaction(ctx)

	kit.contactRepo.EXPECT().
		ClearPrimary(ctx, userID).
		Return(nil)

	var created *entity.EmergencyContact
	kit.contactRepo.EXPECT().
		CreateContact(ctx, mock.AnythingOfType("*entity.EmergencyContact")).
		Run(func(_ context.Context, c *entity.EmergencyContact) {
			created = c
		}).
		Return(nil)

	contact, err := kit.service.UpsertContact(ctx, usecase.UpsertContactInput{
		UserID:                 userID,
		Name:                   "Alex",
		Relationship:           "spouse",
		Phone:                  "+15551230000",
		Email:                  "alex@example.com",
		IsPrimary:              true,
		NotificationPreference: entity.PreferenceAll,
		AutoNotifyOnSOS:        true,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, contact.ID)
	assert.Equal(t, userID, contact.UserID)
	assert.True(t, contact.IsPrimary)
	assert.Same(t, created, contact)
}

func TestContactService_UpsertContact_DefaultsPreference(t *testing.T) {
	kit := newContactTestKit(t)

	ctx := context.Background()

	kit.expectTransaction(ctx)
	kit.contactRepo.EXPECT().
		CreateContact(ctx, mock.AnythingOfType("*entity.EmergencyContact")).
		Return(nil)

	contact, err := kit.service.UpsertContact(ctx, usecase.UpsertContactInput{
		UserID: uuid.New(),
		Name:   "Alex",
		Phone:  "+15551230000",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PreferenceAll, contact.NotificationPreference)
}

func TestContactService_UpsertContact_Update(t *testing.T) {
	kit := newContactTestKit(t)

	ctx := context.Background()
	userID := uuid.New()
	contactID := uuid.New()

	kit.expectTransaction(ctx)

	existing := &entity.EmergencyContact{
		ID:                     contactID,
		UserID:                 userID,
		Name:                   "Old Name",
		Phone:                  "+15550000000",
		NotificationPreference: entity.PreferenceSMS,
	}
	kit.contactRepo.EXPECT().
		FindContactByID(ctx, contactID).
		Return(existing, nil)
	kit.contactRepo.EXPECT().
		UpdateContact(ctx, existing).
		Return(nil)

	contact, err := kit.service.UpsertContact(ctx, usecase.UpsertContactInput{
		ContactID:              &contactID,
		UserID:                 userID,
		Name:                   "New Name",
		Phone:                  "+15559998888",
		NotificationPreference: entity.PreferenceEmail,
		Email:                  "new@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "New Name", contact.Name)
	assert.Equal(t, "+15559998888", contact.Phone)
	assert.Equal(t, entity.PreferenceEmail, contact.NotificationPreference)
}

func TestContactService_UpsertContact_OwnershipViolation(t *testing.T) {
	kit := newContactTestKit(t)

	ctx := context.Background()
	contactID := uuid.New()

	kit.expectTransaction(ctx)

	kit.contactRepo.EXPECT().
		FindContactByID(ctx, contactID).
		Return(&entity.EmergencyContact{ID: contactID, UserID: uuid.New()}, nil)

	contact, err := kit.service.UpsertContact(ctx, usecase.UpsertContactInput{
		ContactID: &contactID,
		UserID:    uuid.New(),
		Name:      "Alex",
		Phone:     "+15551230000",
	})
	require.Error(t, err)
	assert.Nil(t, contact)
	assert.ErrorIs(t, err, domainerrors.ErrContactOwnershipViolation)
}

func TestContactService_UpsertContact_NotFound(t *testing.T) {
	kit := newContactTestKit(t)

	ctx := context.Background()
	contactID := uuid.New()

	kit.expectTransaction(ctx)

	kit.contactRepo.EXPECT().
		FindContactByID(ctx, contactID).
		Return(nil, repository.ErrContactNotFound)

	_, err := kit.service.UpsertContact(ctx, usecase.UpsertContactInput{
		ContactID: &contactID,
		UserID:    uuid.New(),
		Name:      "Alex",
		Phone:     "+15551230000",
	})
	assert.ErrorIs(t, err, domainerrors.ErrContactNotFound)
}

func TestContactService_UpsertContact_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.UpsertContactInput
	}{
		{
			name:  "missing user",
			input: usecase.UpsertContactInput{Name: "Alex", Phone: "+15551230000"},
		},
		{
			name:  "missing name",
			input: usecase.UpsertContactInput{UserID: uuid.New(), Phone: "+15551230000"},
		},
		{
			name:  "missing phone",
			input: usecase.UpsertContactInput{UserID: uuid.New(), Name: "Alex"},
		},
		{
			name: "bad preference",
			input: usecase.UpsertContactInput{
				UserID: uuid.New(), Name: "Alex", Phone: "+15551230000",
				NotificationPreference: "pigeon",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kit := newContactTestKit(t)

			_, err := kit.service.UpsertContact(context.Background(), tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestContactService_DeleteContact_Success(t *testing.T) {
	kit := newContactTestKit(t)

	ctx := context.Background()
	userID := uuid.New()
	contactID := uuid.New()

	kit.contactRepo.EXPECT().
		FindContactByID(ctx, contactID).
		Return(&entity.EmergencyContact{ID: contactID, UserID: userID}, nil)
	kit.contactRepo.EXPECT().
		DeleteContact(ctx, contactID).
		Return(nil)

	assert.NoError(t, kit.service.DeleteContact(ctx, userID, contactID))
}

func TestContactService_DeleteContact_OwnershipViolation(t *testing.T) {
	kit := newContactTestKit(t)

	ctx := context.Background()
	contactID := uuid.New()

	kit.contactRepo.EXPECT().
		FindContactByID(ctx, contactID).
		Return(&entity.EmergencyContact{ID: contactID, UserID: uuid.New()}, nil)

	err := kit.service.DeleteContact(ctx, uuid.New(), contactID)
	assert.ErrorIs(t, err, domainerrors.ErrContactOwnershipViolation)
}

func TestContactService_ListContacts(t *testing.T) {
	kit := newContactTestKit(t)

	ctx := context.Background()
	userID := uuid.New()

	kit.contactRepo.EXPECT().
		FindContactsByUser(ctx, userID).
		Return([]*entity.EmergencyContact{
			{UserID: userID, IsPrimary: true},
			{UserID: userID},
		}, nil)

	contacts, err := kit.service.ListContacts(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, contacts, 2)
}
