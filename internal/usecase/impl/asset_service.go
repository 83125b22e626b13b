package impl

import (
	"context"
	"log/slog"
	"path"
	"strconv"
	"strings"
	"time"

	"locus/config"
	deliverycontext "locus/internal/delivery/context"
	"locus/internal/domain/access"
	"locus/internal/domain/entity"
	domainerrors "locus/internal/domain/errors"
	"locus/internal/domain/history"
	"locus/internal/domain/liveview"
	"locus/internal/domain/repository"
	"locus/internal/domain/service"
	"locus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type assetService struct {
	assetRepo   repository.AssetRepository
	historyRepo repository.HistoryRepository
	recorder    *history.Recorder
	engine      *liveview.Engine
	blobStore   service.BlobStore
	qrcode      service.QRCodeService
	publisher   service.EventPublisher
	metrics     service.InventoryMetrics
	validator   *inputValidator
	imagePrefix string
	orderField  string
	logger      *slog.Logger
	now         func() time.Time
}

// AssetServiceParams holds dependencies for AssetService, injected by Fx.
type AssetServiceParams struct {
	fx.In

	AssetRepo   repository.AssetRepository
	HistoryRepo repository.HistoryRepository
	Recorder    *history.Recorder
	Engine      *liveview.Engine
	BlobStore   service.BlobStore
	QRCode      service.QRCodeService
	Publisher   service.EventPublisher
	Metrics     service.InventoryMetrics
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAssetService creates a new asset service instance
func NewAssetService(params AssetServiceParams) usecase.AssetUsecase {
	return &assetService{
		assetRepo:   params.AssetRepo,
		historyRepo: params.HistoryRepo,
		recorder:    params.Recorder,
		engine:      params.Engine,
		blobStore:   params.BlobStore,
		qrcode:      params.QRCode,
		publisher:   params.Publisher,
		metrics:     params.Metrics,
		validator:   newInputValidator(),
		imagePrefix: strings.Trim(params.Config.Blob.ImagePrefix, "/"),
		orderField:  params.Config.Store.OrderField,
		logger:      params.Logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *assetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAsset stores a new asset under code, replacing anything already there.
// Creation writes no history.
func (srv *assetService) CreateAsset(ctx context.Context, session *entity.Session, code string, input usecase.AssetInput) (*entity.Asset, error) {
	if !session.IsAuthenticated() {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	code, err := normalizeCode(code)
	if err != nil {
		return nil, err
	}

	input = normalizeAssetInput(input)
	if err := srv.validator.Check(input); err != nil {
		return nil, err
	}

	asset := assetFromInput(code, input)
	var uploaded string
	if input.ImageBase64 != "" {
		url, stored, err := srv.uploadImage(ctx, code, input.ImageBase64)
		if err != nil {
			return nil, err
		}
		asset.ImageURL = url
		uploaded = stored
	}

	if err := srv.assetRepo.SaveAsset(ctx, asset); err != nil {
		srv.log(ctx).Error("Failed to create asset", slog.String("code", code), slog.Any("error", err))

		return nil, domainerrors.NewStoreUnavailableError(err, "create "+code)
	}

	srv.log(ctx).Info("Asset created", slog.String("code", code), slog.String("actor", session.Actor()))
	srv.pruneImages(ctx, code, uploaded)
	srv.publish(ctx, service.AssetCreated, code, session, nil)

	return asset, nil
}

// UpdateAsset writes the submitted attributes over an existing asset and
// records one history entry per changed attribute. History failures are
// logged and counted but do not fail the update.
func (srv *assetService) UpdateAsset(ctx context.Context, session *entity.Session, code string, input usecase.AssetInput) (*usecase.UpdateAssetOutput, error) {
	if !session.IsAuthenticated() {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	code, err := normalizeCode(code)
	if err != nil {
		return nil, err
	}

	input = normalizeAssetInput(input)
	if err := srv.validator.Check(input); err != nil {
		return nil, err
	}

	previous, err := srv.findAsset(ctx, code)
	if err != nil {
		return nil, err
	}

	submitted := assetFromInput(code, input)
	submitted.ImageURL = previous.ImageURL
	var uploaded string
	if input.ImageBase64 != "" {
		url, stored, err := srv.uploadImage(ctx, code, input.ImageBase64)
		if err != nil {
			return nil, err
		}
		submitted.ImageURL = url
		uploaded = stored
	}

	changes := history.RecordChanges(previous, submitted, session.Actor(), srv.now())

	if err := srv.assetRepo.UpdateAsset(ctx, submitted); err != nil {
		if errors.Is(err, repository.ErrAssetNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrAssetNotFound, "code %s", code)
		}
		srv.log(ctx).Error("Failed to update asset", slog.String("code", code), slog.Any("error", err))

		return nil, domainerrors.NewStoreUnavailableError(err, "update "+code)
	}

	srv.pruneImages(ctx, code, uploaded)

	written := len(changes)
	if err := srv.recorder.Persist(ctx, code, changes); err != nil {
		partial, ok := history.IsPartialWrite(err)
		if !ok {
			return nil, errors.Wrap(err, "persist history")
		}
		written -= len(partial.Failed)
		srv.metrics.HistoryWriteFailed(len(partial.Failed))
		srv.log(ctx).Warn("Asset updated with incomplete history",
			slog.String("code", code),
			slog.Int("failed", len(partial.Failed)),
			slog.Int("total", partial.Total),
			slog.Any("error", err),
		)
	}
	srv.metrics.HistoryEntriesWritten(written)

	changed := make([]string, 0, len(changes))
	for _, change := range changes {
		changed = append(changed, change.Field)
	}

	srv.log(ctx).Info("Asset updated",
		slog.String("code", code),
		slog.String("actor", session.Actor()),
		slog.Any("changed_fields", changed),
	)
	srv.publish(ctx, service.AssetUpdated, code, session, changed)

	return &usecase.UpdateAssetOutput{Asset: submitted, Changes: changes}, nil
}

// DeleteAsset removes the asset and its history. Deleting an absent asset succeeds.
func (srv *assetService) DeleteAsset(ctx context.Context, session *entity.Session, code string) error {
	if err := srv.authorize(ctx, session, access.OperationDeleteAsset); err != nil {
		return err
	}

	code, err := normalizeCode(code)
	if err != nil {
		return err
	}

	if err := srv.assetRepo.DeleteAsset(ctx, code); err != nil {
		srv.log(ctx).Error("Failed to delete asset", slog.String("code", code), slog.Any("error", err))

		return domainerrors.NewStoreUnavailableError(err, "delete "+code)
	}

	srv.log(ctx).Info("Asset deleted", slog.String("code", code), slog.String("actor", session.Actor()))
	srv.publish(ctx, service.AssetDeleted, code, session, nil)

	return nil
}

func (srv *assetService) GetAsset(ctx context.Context, session *entity.Session, code string) (*entity.Asset, error) {
	if !session.IsAuthenticated() {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	code, err := normalizeCode(code)
	if err != nil {
		return nil, err
	}

	return srv.findAsset(ctx, code)
}

// ListAssets reads the collection once and applies the same projection as a live view.
func (srv *assetService) ListAssets(ctx context.Context, session *entity.Session, input usecase.ListAssetsInput) (*liveview.Snapshot, error) {
	if !session.IsAuthenticated() {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	orderField := input.OrderField
	if orderField == "" {
		orderField = srv.orderField
	}

	assets, err := srv.assetRepo.ListAssets(ctx, orderField)
	if err != nil {
		srv.log(ctx).Error("Failed to list assets", slog.Any("error", err))

		return nil, domainerrors.NewStoreUnavailableError(err, "list assets")
	}

	return &liveview.Snapshot{
		Version:  1,
		Assets:   assets,
		Filter:   input.Filter,
		Filtered: liveview.Apply(assets, input.Filter),
		Sectors:  liveview.Sectors(assets),
	}, nil
}

// GetHistory returns the change entries of an existing asset, oldest first.
func (srv *assetService) GetHistory(ctx context.Context, session *entity.Session, code string) ([]*entity.ChangeEntry, error) {
	if !session.IsAuthenticated() {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	code, err := normalizeCode(code)
	if err != nil {
		return nil, err
	}
	if _, err := srv.findAsset(ctx, code); err != nil {
		return nil, err
	}

	entries, err := srv.historyRepo.ListChanges(ctx, code)
	if err != nil {
		srv.log(ctx).Error("Failed to list history", slog.String("code", code), slog.Any("error", err))

		return nil, domainerrors.NewStoreUnavailableError(err, "history of "+code)
	}

	return entries, nil
}

// WatchAssets opens a live view that lives as long as ctx.
func (srv *assetService) WatchAssets(ctx context.Context, session *entity.Session, orderField string) (*liveview.View, error) {
	if !session.IsAuthenticated() {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	if orderField == "" {
		orderField = srv.orderField
	}

	view, err := srv.engine.Subscribe(ctx, orderField)
	if err != nil {
		srv.log(ctx).Error("Failed to open live view", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Live view opened", slog.String("order_field", orderField))

	return view, nil
}

// GetAssetLabel renders the QR label of an existing asset.
func (srv *assetService) GetAssetLabel(ctx context.Context, session *entity.Session, code string) ([]byte, error) {
	asset, err := srv.GetAsset(ctx, session, code)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateAssetLabel(asset.Code)
	if err != nil {
		return nil, errors.Wrapf(err, "generate label for %s", asset.Code)
	}

	return png, nil
}

// OpenImage serves a stored asset photo. Only paths under the image prefix are readable.
func (srv *assetService) OpenImage(ctx context.Context, imagePath string) (*service.BlobObject, error) {
	cleaned := path.Clean("/" + imagePath)[1:]
	if !strings.HasPrefix(cleaned, srv.imagePrefix+"/") {
		return nil, errors.WithStack(domainerrors.ErrImageNotFound)
	}

	obj, err := srv.blobStore.Open(ctx, cleaned)
	if err != nil {
		if errors.Is(err, domainerrors.ErrImageNotFound) {
			return nil, err
		}
		srv.log(ctx).Error("Failed to open image", slog.String("path", cleaned), slog.Any("error", err))

		return nil, domainerrors.NewStoreUnavailableError(err, "image "+cleaned)
	}

	return obj, nil
}

func (srv *assetService) findAsset(ctx context.Context, code string) (*entity.Asset, error) {
	asset, err := srv.assetRepo.FindAsset(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrAssetNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrAssetNotFound, "code %s", code)
		}
		srv.log(ctx).Error("Failed to read asset", slog.String("code", code), slog.Any("error", err))

		return nil, domainerrors.NewStoreUnavailableError(err, "read "+code)
	}
	asset.Code = code

	return asset, nil
}

// Every upload gets its own object under the code's directory, so a replaced
// photo has a new URL and cached copies of the old one stay correct.
func imageDir(prefix, code string) string {
	return prefix + "/" + code + "/"
}

func (srv *assetService) newImagePath(code string) string {
	return imageDir(srv.imagePrefix, code) + strconv.FormatInt(srv.now().UnixNano(), 36) + ".jpg"
}

func (srv *assetService) uploadImage(ctx context.Context, code, data string) (string, string, error) {
	imagePath := srv.newImagePath(code)

	url, err := srv.blobStore.Upload(ctx, imagePath, data)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidImage) {
			return "", "", err
		}
		srv.log(ctx).Error("Failed to upload image", slog.String("code", code), slog.Any("error", err))

		return "", "", domainerrors.NewStoreUnavailableError(err, "upload image of "+code)
	}

	return url, imagePath, nil
}

// pruneImages removes photos of code other than current once the record
// points at current. Leftovers are only logged; the worker purge removes
// them when the asset is deleted.
func (srv *assetService) pruneImages(ctx context.Context, code, current string) {
	if current == "" {
		return
	}

	deleted, err := srv.blobStore.DeletePrefix(ctx, imageDir(srv.imagePrefix, code), current)
	if err != nil {
		srv.log(ctx).Warn("Failed to remove replaced images",
			slog.String("code", code),
			slog.Any("error", err),
		)

		return
	}
	if deleted > 0 {
		srv.log(ctx).Debug("Replaced images removed", slog.String("code", code), slog.Int("count", deleted))
	}
}

func (srv *assetService) authorize(ctx context.Context, session *entity.Session, op access.Operation) error {
	if err := access.Authorize(session, op); err != nil {
		if errors.Is(err, domainerrors.ErrPermissionDenied) {
			srv.metrics.AccessDenied(string(op))
			srv.log(ctx).Warn("Operation denied",
				slog.String("operation", string(op)),
				slog.String("actor", session.Actor()),
				slog.String("role", string(session.EffectiveRole())),
			)
		}

		return err
	}

	return nil
}

// publish announces a committed mutation. Failures are logged only.
func (srv *assetService) publish(ctx context.Context, eventType service.AssetEventType, code string, session *entity.Session, changed []string) {
	event := &service.AssetEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		EventID:       uuid.NewString(),
		Type:          eventType,
		Code:          code,
		Actor:         session.Actor(),
		ChangedFields: changed,
		OccurredAt:    srv.now(),
	}

	if err := srv.publisher.PublishAssetEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish asset event",
			slog.String("event_type", string(eventType)),
			slog.String("code", code),
			slog.Any("error", err),
		)
	}
}

