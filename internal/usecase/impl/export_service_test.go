package impl

import (
	"context"
	"testing"

	"locus/config"
	"locus/internal/domain/entity"
	domainerrors "locus/internal/domain/errors"
	mockRepo "locus/internal/mocks/repository"
	mockSvc "locus/internal/mocks/service"
	"locus/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exportServiceFixtures holds all test dependencies for export service tests.
type exportServiceFixtures struct {
	service   usecase.ExportUsecase
	assetRepo *mockRepo.MockAssetRepository
	exporter  *mockSvc.MockSpreadsheetExporter
}

func createTestExportService(t *testing.T) exportServiceFixtures {
	assetRepo := mockRepo.NewMockAssetRepository(t)
	exporter := mockSvc.NewMockSpreadsheetExporter(t)

	cfg := &config.Config{}
	cfg.Store.OrderField = entity.FieldDescription
	cfg.Export.FileName = "patrimonio.xlsx"
	cfg.Export.SheetName = "Patrimonio"

	return exportServiceFixtures{
		service: NewExportService(ExportServiceParams{
			AssetRepo: assetRepo,
			Exporter:  exporter,
			Metrics:   newTestMetrics(),
			Config:    cfg,
			Logger:    newTestLogger(),
		}),
		assetRepo: assetRepo,
		exporter:  exporter,
	}
}

func TestExportService_Export(t *testing.T) {
	fx := createTestExportService(t)
	ctx := context.Background()

	assets := []*entity.Asset{{Code: "PAT-001"}, {Code: "PAT-002"}}
	fx.assetRepo.EXPECT().ListAssets(ctx, entity.FieldDescription).Return(assets, nil).Once()
	fx.exporter.EXPECT().Export("Patrimonio", assets).Return([]byte("xlsx"), nil)
	fx.exporter.EXPECT().ContentType().Return("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	file, err := fx.service.Export(ctx, adminSession())
	require.NoError(t, err)
	assert.Equal(t, "patrimonio.xlsx", file.Name)
	assert.Equal(t, []byte("xlsx"), file.Data)
	assert.Equal(t, 2, file.Rows)
}

func TestExportService_Export_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("denied before any read", func(t *testing.T) {
		fx := createTestExportService(t)
		_, err := fx.service.Export(ctx, userSession())
		assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	})

	t.Run("nothing to export", func(t *testing.T) {
		fx := createTestExportService(t)
		fx.assetRepo.EXPECT().ListAssets(ctx, entity.FieldDescription).Return([]*entity.Asset{}, nil)

		_, err := fx.service.Export(ctx, adminSession())
		assert.ErrorIs(t, err, domainerrors.ErrNothingToExport)
	})

	t.Run("store failure", func(t *testing.T) {
		fx := createTestExportService(t)
		fx.assetRepo.EXPECT().ListAssets(ctx, entity.FieldDescription).Return(nil, errors.New("unavailable"))

		_, err := fx.service.Export(ctx, adminSession())
		assert.True(t, domainerrors.IsStoreUnavailable(err))
	})
}
