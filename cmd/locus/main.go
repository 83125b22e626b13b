package main

import (
	"context"
	"log/slog"
	"os"

	"locus/config"
	"locus/internal/delivery"
	"locus/internal/delivery/api"
	"locus/internal/delivery/api/router/handler"
	"locus/internal/delivery/middleware"
	"locus/internal/domain/history"
	"locus/internal/domain/liveview"
	"locus/internal/domain/service"
	"locus/internal/infra/auth"
	"locus/internal/infra/blob"
	"locus/internal/infra/export"
	"locus/internal/infra/firebaseapp"
	logs "locus/internal/infra/log"
	"locus/internal/infra/metrics"
	"locus/internal/infra/persistence"
	"locus/internal/infra/persistence/docstore"
	"locus/internal/infra/pubsub"
	"locus/internal/infra/qrcode"
	"locus/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.WithLogger(fxLogger),
		injectInfra(),
		injectRepo(),
		injectService(),
		injectDomain(),
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
		firebaseapp.NewApp,
		persistence.NewRecordStore,
		metrics.NewMetrics,
		inventoryMetrics,
	)
}

// inventoryMetrics exposes the Prometheus collectors to the domain layer.
func inventoryMetrics(m *metrics.Metrics) service.InventoryMetrics {
	return m
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			docstore.NewAssetRepository,
			docstore.NewHistoryRepository,
			docstore.NewUserRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewIdentityProvider,
			blob.NewBlobStore,
			export.NewSpreadsheetExporter,
			qrcode.NewQRCodeService,
		),
		pubsub.Module,
	)
}

func injectDomain() fx.Option {
	return fx.Options(
		fx.Provide(
			history.NewRecorder,
			liveview.NewEngine,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewResolverService,
			impl.NewSessionService,
			impl.NewAssetService,
			impl.NewAdminService,
			impl.NewExportService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewScanHandler,
			handler.NewAssetHandler,
			handler.NewLiveHandler,
			handler.NewAdminHandler,
			handler.NewExportHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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

// fxLogger sends container events through the service logger at debug level,
// keeping startup failures at error.
func fxLogger(logger *slog.Logger) fxevent.Logger {
	l := &fxevent.SlogLogger{Logger: logger.With(slog.String("component", "fx"))}
	l.UseLogLevel(slog.LevelDebug)

	return l
}
