package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"beacon/config"
	"beacon/internal/delivery"
	"beacon/internal/delivery/http"
	"beacon/internal/delivery/http/middleware"
	"beacon/internal/delivery/http/router/handler"
	"beacon/internal/domain/service"
	"beacon/internal/infra/emergency"
	"beacon/internal/infra/geocode"
	logs "beacon/internal/infra/log"
	"beacon/internal/infra/notification"
	"beacon/internal/infra/persistence/postgres"
	"beacon/internal/infra/pubsub"
	"beacon/internal/usecase"
	"beacon/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			resumeEscalations,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		// Expose the SOS section for the lifecycle service
		func(cfg *config.Config) *config.SOSConfig {
			return cfg.SOS
		},
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAlertRepository,
			postgres.NewEmergencyContactRepository,
			postgres.NewResponseLogRepository,
			postgres.NewResponderIndex,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			newGeocodeService,
			newEmergencyGateway,
			newNotificationChannel,
			impl.NewEscalationScheduler,
		),
	)
}

// newGeocodeService creates the reverse geocoder with dependency injection
func newGeocodeService(cfg *config.Config, logger *slog.Logger) service.GeocodeService {
	if cfg.Geocode == nil {
		return geocode.NewNominatimService("https://nominatim.openstreetmap.org", 0, logger)
	}

	return geocode.NewNominatimService(cfg.Geocode.Endpoint, cfg.Geocode.Timeout, logger)
}

// newEmergencyGateway creates the emergency services gateway client
func newEmergencyGateway(cfg *config.Config, logger *slog.Logger) (service.EmergencyGateway, error) {
	if cfg.EmergencyGateway == nil || cfg.EmergencyGateway.Endpoint == "" {
		return nil, fmt.Errorf("emergency gateway endpoint is required")
	}

	return emergency.NewHTTPGateway(
		cfg.EmergencyGateway.Endpoint,
		cfg.EmergencyGateway.APIKey,
		cfg.EmergencyGateway.Timeout,
		logger,
	), nil
}

// newNotificationChannel creates the sms/email relay client
func newNotificationChannel(cfg *config.Config, logger *slog.Logger) (service.NotificationChannel, error) {
	if cfg.NotificationRelay == nil || cfg.NotificationRelay.Endpoint == "" {
		return nil, fmt.Errorf("notification relay endpoint is required")
	}

	return notification.NewWebhookChannel(
		cfg.NotificationRelay.Endpoint,
		cfg.NotificationRelay.Timeout,
		logger,
	), nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewResponderLocator,
			impl.NewSOSService,
			impl.NewContactService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAlertHandler,
			handler.NewContactHandler,
			handler.NewSystemHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// resumeEscalations re-arms escalation timers for alerts that were active
// when the previous process stopped, and tears timers down on shutdown.
func resumeEscalations(lc fx.Lifecycle, sosUC usecase.SOSUsecase, scheduler *impl.EscalationScheduler) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return sosUC.ResumeEscalations(ctx)
		},
		OnStop: func(ctx context.Context) error {
			scheduler.Shutdown()

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
