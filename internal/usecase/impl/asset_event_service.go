package impl

import (
	"context"
	"log/slog"

	"locus/config"
	deliverycontext "locus/internal/delivery/context"
	domainerrors "locus/internal/domain/errors"
	"locus/internal/domain/repository"
	"locus/internal/domain/service"
	"locus/internal/usecase"

	"github.com/pkg/errors"
)

type assetEventService struct {
	assetRepo   repository.AssetRepository
	blobStore   service.BlobStore
	imagePrefix string
	logger      *slog.Logger
}

// NewAssetEventService creates the consumer side of asset events
func NewAssetEventService(
	assetRepo repository.AssetRepository,
	blobStore service.BlobStore,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AssetEventUsecase {
	return &assetEventService{
		assetRepo:   assetRepo,
		blobStore:   blobStore,
		imagePrefix: cfg.Blob.ImagePrefix,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *assetEventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleAssetEvent removes the photo of deleted assets. Other event types are
// only logged.
func (srv *assetEventService) HandleAssetEvent(ctx context.Context, event *service.AssetEvent) error {
	if event == nil || event.Code == "" {
		return errors.Wrap(domainerrors.ErrInvalidCode, "event without asset code")
	}
	// The code names the image object; never let it reach outside the prefix.
	if _, err := normalizeCode(event.Code); err != nil {
		return err
	}

	switch event.Type {
	case service.AssetDeleted:
		return srv.purgeImage(ctx, event)
	case service.AssetCreated, service.AssetUpdated:
		srv.log(ctx).Info("Asset event received",
			slog.String("event_type", string(event.Type)),
			slog.String("code", event.Code),
			slog.String("actor", event.Actor),
			slog.Any("changed_fields", event.ChangedFields),
		)

		return nil
	default:
		srv.log(ctx).Warn("Ignoring unknown asset event type",
			slog.String("event_type", string(event.Type)),
			slog.String("code", event.Code),
		)

		return nil
	}
}

// purgeImage deletes every stored photo of the code unless the code was created again
// after the delete was published.
func (srv *assetEventService) purgeImage(ctx context.Context, event *service.AssetEvent) error {
	_, err := srv.assetRepo.FindAsset(ctx, event.Code)
	switch {
	case err == nil:
		srv.log(ctx).Info("Asset exists again, keeping its image", slog.String("code", event.Code))

		return nil
	case !errors.Is(err, domainerrors.ErrAssetNotFound):
		return domainerrors.NewStoreUnavailableError(err, "read asset "+event.Code)
	}

	dir := imageDir(srv.imagePrefix, event.Code)
	deleted, err := srv.blobStore.DeletePrefix(ctx, dir, "")
	if err != nil {
		return domainerrors.NewStoreUnavailableError(err, "delete images "+dir)
	}

	srv.log(ctx).Info("Deleted images of removed asset",
		slog.String("code", event.Code),
		slog.String("path", dir),
		slog.Int("count", deleted),
	)

	return nil
}
