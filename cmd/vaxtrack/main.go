package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"vaxtrack/config"
	"vaxtrack/internal/delivery"
	"vaxtrack/internal/delivery/http"
	"vaxtrack/internal/delivery/http/middleware"
	"vaxtrack/internal/delivery/http/router/handler"
	"vaxtrack/internal/domain/service"
	"vaxtrack/internal/infra/auth"
	logs "vaxtrack/internal/infra/log"
	"vaxtrack/internal/infra/notification"
	"vaxtrack/internal/infra/persistence/postgres"
	"vaxtrack/internal/infra/pubsub"
	"vaxtrack/internal/infra/qrcode"
	"vaxtrack/internal/usecase/impl"

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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewChildRepository,
			postgres.NewVaccineRecordRepository,
			postgres.NewVaccineDriveRepository,
			postgres.NewNotificationRepository,
			postgres.NewAuditRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			pubsub.NewAuditPublisher,
			newFirebaseService,
			newCardQRService,
		),
	)
}

// newFirebaseService creates the FCM sender with dependency injection. A nil
// sender is valid: push delivery degrades to in-app notifications only.
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.PushSender, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

// newCardQRService creates the immunization card QR service with dependency injection
func newCardQRService(cfg *config.Config) service.CardQRService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewCardQRService(256, "M")
	}

	return qrcode.NewCardQRService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuditService,
			impl.NewUserService,
			impl.NewSessionService,
			impl.NewChildService,
			impl.NewRecordService,
			impl.NewDriveService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewSessionHandler,
			handler.NewChildHandler,
			handler.NewRecordHandler,
			handler.NewDriveHandler,
			handler.NewNotificationHandler,
			handler.NewAuditHandler,
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
