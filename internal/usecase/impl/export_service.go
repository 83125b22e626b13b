package impl

import (
	"context"
	"log/slog"

	"locus/config"
	deliverycontext "locus/internal/delivery/context"
	"locus/internal/domain/access"
	"locus/internal/domain/entity"
	domainerrors "locus/internal/domain/errors"
	"locus/internal/domain/repository"
	"locus/internal/domain/service"
	"locus/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type exportService struct {
	assetRepo  repository.AssetRepository
	exporter   service.SpreadsheetExporter
	metrics    service.InventoryMetrics
	fileName   string
	sheetName  string
	orderField string
	logger     *slog.Logger
}

// ExportServiceParams holds dependencies for ExportService, injected by Fx.
type ExportServiceParams struct {
	fx.In

	AssetRepo repository.AssetRepository
	Exporter  service.SpreadsheetExporter
	Metrics   service.InventoryMetrics
	Config    *config.Config
	Logger    *slog.Logger
}

// NewExportService creates a new export service instance
func NewExportService(params ExportServiceParams) usecase.ExportUsecase {
	return &exportService{
		assetRepo:  params.AssetRepo,
		exporter:   params.Exporter,
		metrics:    params.Metrics,
		fileName:   params.Config.Export.FileName,
		sheetName:  params.Config.Export.SheetName,
		orderField: params.Config.Store.OrderField,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *exportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Export reads every asset once and renders them into a single sheet.
func (srv *exportService) Export(ctx context.Context, session *entity.Session) (*usecase.ExportFile, error) {
	if err := access.Authorize(session, access.OperationExport); err != nil {
		if errors.Is(err, domainerrors.ErrPermissionDenied) {
			srv.metrics.AccessDenied(string(access.OperationExport))
		}

		return nil, err
	}

	assets, err := srv.assetRepo.ListAssets(ctx, srv.orderField)
	if err != nil {
		srv.log(ctx).Error("Failed to read assets for export", slog.Any("error", err))

		return nil, domainerrors.NewStoreUnavailableError(err, "export")
	}

	if len(assets) == 0 {
		return nil, errors.WithStack(domainerrors.ErrNothingToExport)
	}

	data, err := srv.exporter.Export(srv.sheetName, assets)
	if err != nil {
		return nil, errors.Wrap(err, "render spreadsheet")
	}

	srv.log(ctx).Info("Inventory exported",
		slog.Int("rows", len(assets)),
		slog.String("actor", session.Actor()),
	)

	return &usecase.ExportFile{
		Name:        srv.fileName,
		ContentType: srv.exporter.ContentType(),
		Data:        data,
		Rows:        len(assets),
	}, nil
}
