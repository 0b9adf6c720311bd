package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"beacon/config"
	"beacon/internal/domain/repository"
	mockRepo "beacon/internal/mocks/repository"
	mockSvc "beacon/internal/mocks/service"
	mockUC "beacon/internal/mocks/usecase"
	"beacon/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// sosTestKit wires the lifecycle service against mocks with a real scheduler.
// Escalation delays default to an hour so timers never fire mid-test.
type sosTestKit struct {
	cfg             *config.SOSConfig
	txManager       *mockRepo.MockTransactionManager
	factory         *mockRepo.MockRepositoryFactory
	alertRepo       *mockRepo.MockAlertRepository
	contactRepo     *mockRepo.MockEmergencyContactRepository
	responseLogRepo *mockRepo.MockResponseLogRepository
	locator         *mockUC.MockResponderLocator
	gateway         *mockSvc.MockEmergencyGateway
	geocoder        *mockSvc.MockGeocodeService
	channel         *mockSvc.MockNotificationChannel
	publisher       *mockSvc.MockEventPublisher
	scheduler       *EscalationScheduler
	service         usecase.SOSUsecase
}

func newSOSTestKit(t *testing.T) *sosTestKit {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	kit := &sosTestKit{
		cfg: &config.SOSConfig{
			BaseRadiusMiles:          5,
			EscalationDelays:         []time.Duration{time.Hour, time.Hour, time.Hour},
			InitialResponderCount:    5,
			EscalationResponderCount: 5,
			MaxResponders:            10,
			HistoryLimit:             20,
		},
		txManager:       mockRepo.NewMockTransactionManager(t),
		factory:         mockRepo.NewMockRepositoryFactory(t),
		alertRepo:       mockRepo.NewMockAlertRepository(t),
		contactRepo:     mockRepo.NewMockEmergencyContactRepository(t),
		responseLogRepo: mockRepo.NewMockResponseLogRepository(t),
		locator:         mockUC.NewMockResponderLocator(t),
		gateway:         mockSvc.NewMockEmergencyGateway(t),
		geocoder:        mockSvc.NewMockGeocodeService(t),
		channel:         mockSvc.NewMockNotificationChannel(t),
		publisher:       mockSvc.NewMockEventPublisher(t),
		scheduler:       NewEscalationScheduler(logger),
	}

	kit.service = NewSOSService(SOSServiceDeps{
		Config:          kit.cfg,
		TxManager:       kit.txManager,
		AlertRepo:       kit.alertRepo,
		ContactRepo:     kit.contactRepo,
		ResponseLogRepo: kit.responseLogRepo,
		Locator:         kit.locator,
		Gateway:         kit.gateway,
		Geocoder:        kit.geocoder,
		Channel:         kit.channel,
		Publisher:       kit.publisher,
		Scheduler:       kit.scheduler,
		Logger:          logger,
	})

	t.Cleanup(kit.scheduler.Shutdown)

	return kit
}

// expectTransaction makes the transaction manager run the callback against
// the factory mock, the same way the real manager runs it against a tx-bound
// factory.
func (k *sosTestKit) expectTransaction(ctx context.Context) {
	k.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(factory repository.RepositoryFactory) error) error {
			return fn(k.factory)
		})
}

// armedTimers reports how many escalation timers are currently armed.
func (k *sosTestKit) armedTimers() int {
	k.scheduler.mu.Lock()
	defer k.scheduler.mu.Unlock()

	return len(k.scheduler.timers)
}
