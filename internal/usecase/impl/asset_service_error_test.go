package impl

import (
	"context"
	"testing"

	"locus/internal/domain/entity"
	domainerrors "locus/internal/domain/errors"
	"locus/internal/domain/repository"
	"locus/internal/domain/service"
	"locus/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssetService_CreateAsset_ValidationFailsBeforeStore(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(input *usecase.AssetInput)
		field  string
	}{
		{name: "blank description", mutate: func(input *usecase.AssetInput) { input.Description = "   " }, field: "DESCRICAO"},
		{name: "missing location", mutate: func(input *usecase.AssetInput) { input.Location = "" }, field: "LOCALIZACAO"},
		{name: "unknown state", mutate: func(input *usecase.AssetInput) { input.State = "Perdido" }, field: "ESTADO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAssetService(t)

			input := validInput()
			tt.mutate(&input)

			_, err := fx.service.CreateAsset(context.Background(), userSession(), "PAT-001", input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestAssetService_CreateAsset_RequiresSignIn(t *testing.T) {
	fx := createTestAssetService(t)

	_, err := fx.service.CreateAsset(context.Background(), entity.NewUnauthenticatedSession(), "PAT-001", validInput())
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAssetService_CreateAsset_EmptyCode(t *testing.T) {
	fx := createTestAssetService(t)

	_, err := fx.service.CreateAsset(context.Background(), userSession(), "  ", validInput())
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCode)
}

func TestAssetService_PathCodesAreRejectedBeforeStore(t *testing.T) {
	fx := createTestAssetService(t)
	ctx := context.Background()

	_, err := fx.service.CreateAsset(ctx, userSession(), "https://example.com/a/1", validInput())
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCode)

	_, err = fx.service.UpdateAsset(ctx, userSession(), "A/B", validInput())
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCode)

	assert.ErrorIs(t, fx.service.DeleteAsset(ctx, adminSession(), "A/"), domainerrors.ErrInvalidCode)

	_, err = fx.service.GetHistory(ctx, userSession(), "A/B")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCode)
}

func TestAssetService_CreateAsset_InvalidImage(t *testing.T) {
	fx := createTestAssetService(t)
	ctx := context.Background()

	input := validInput()
	input.ImageBase64 = "%%%"
	fx.blobStore.EXPECT().
		Upload(ctx, imageUnder("PAT-001"), "%%%").
		Return("", errors.WithStack(domainerrors.ErrInvalidImage))

	_, err := fx.service.CreateAsset(ctx, userSession(), "PAT-001", input)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidImage)
}

func TestAssetService_CreateAsset_StoreFailure(t *testing.T) {
	fx := createTestAssetService(t)
	ctx := context.Background()

	fx.assetRepo.EXPECT().SaveAsset(ctx, mock.Anything).Return(errors.New("unavailable"))

	_, err := fx.service.CreateAsset(ctx, userSession(), "PAT-001", validInput())
	assert.True(t, domainerrors.IsStoreUnavailable(err))
}

func TestAssetService_UpdateAsset_AbsentAsset(t *testing.T) {
	fx := createTestAssetService(t)
	ctx := context.Background()

	fx.assetRepo.EXPECT().FindAsset(ctx, "PAT-404").Return(nil, repository.ErrAssetNotFound)

	_, err := fx.service.UpdateAsset(ctx, userSession(), "PAT-404", validInput())
	assert.ErrorIs(t, err, domainerrors.ErrAssetNotFound)
}

func TestAssetService_UpdateAsset_PartialHistoryIsNotSurfaced(t *testing.T) {
	fx := createTestAssetService(t)
	ctx := context.Background()

	previous := &entity.Asset{Description: "Cadeira", Brand: "Tok", State: entity.AssetStateNew, Location: "Sala 1"}

	fx.assetRepo.EXPECT().FindAsset(ctx, "PAT-001").Return(previous, nil)
	fx.assetRepo.EXPECT().UpdateAsset(ctx, mock.Anything).Return(nil)
	fx.historyRepo.EXPECT().
		AppendChange(ctx, "PAT-001", mock.MatchedBy(func(entry *entity.ChangeEntry) bool {
			return entry.Field == entity.FieldDescription
		})).
		Return(errors.New("write failed"))
	fx.historyRepo.EXPECT().
		AppendChange(ctx, "PAT-001", mock.MatchedBy(func(entry *entity.ChangeEntry) bool {
			return entry.Field != entity.FieldDescription
		})).
		Return(nil)
	fx.publisher.EXPECT().PublishAssetEvent(ctx, mock.Anything).Return(nil)

	output, err := fx.service.UpdateAsset(ctx, userSession(), "PAT-001", validInput())
	require.NoError(t, err)
	assert.Len(t, output.Changes, 4)
}

func TestAssetService_UpdateAsset_PublishFailureIsLoggedOnly(t *testing.T) {
	fx := createTestAssetService(t)
	ctx := context.Background()

	previous := &entity.Asset{Description: "Notebook", Brand: "Dell", State: entity.AssetStateInUse, Location: "Sala 3"}
	fx.assetRepo.EXPECT().FindAsset(ctx, "PAT-001").Return(previous, nil)
	fx.assetRepo.EXPECT().UpdateAsset(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishAssetEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	_, err := fx.service.UpdateAsset(ctx, userSession(), "PAT-001", validInput())
	require.NoError(t, err)
}

func TestAssetService_DeleteAsset_DeniedBeforeStore(t *testing.T) {
	tests := []struct {
		name    string
		session *entity.Session
		want    error
	}{
		{name: "user role", session: userSession(), want: domainerrors.ErrPermissionDenied},
		{name: "role still resolving", session: &entity.Session{AccountID: "uid-1", Role: entity.RoleAdmin, State: entity.SessionResolving}, want: domainerrors.ErrPermissionDenied},
		{name: "signed out", session: entity.NewUnauthenticatedSession(), want: domainerrors.ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAssetService(t)

			err := fx.service.DeleteAsset(context.Background(), tt.session, "PAT-001")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAssetService_GetHistory_AbsentAsset(t *testing.T) {
	fx := createTestAssetService(t)
	ctx := context.Background()

	fx.assetRepo.EXPECT().FindAsset(ctx, "PAT-404").Return(nil, repository.ErrAssetNotFound)

	_, err := fx.service.GetHistory(ctx, userSession(), "PAT-404")
	assert.ErrorIs(t, err, domainerrors.ErrAssetNotFound)
}

func TestAssetService_WatchAssets_SubscribeFailure(t *testing.T) {
	fx := createTestAssetService(t)
	ctx := context.Background()

	fx.assetRepo.EXPECT().
		SubscribeAssets(mock.Anything, entity.FieldDescription, mock.Anything).
		Return(nil, errors.New("permission denied by store"))

	_, err := fx.service.WatchAssets(ctx, userSession(), "")
	assert.True(t, domainerrors.IsStoreUnavailable(err))
}

func TestAssetService_OpenImage_OutsidePrefix(t *testing.T) {
	fx := createTestAssetService(t)

	for _, path := range []string{"secrets/key.json", "patrimonio_images/../secrets/key.json", "patrimonio_images"} {
		_, err := fx.service.OpenImage(context.Background(), path)
		assert.ErrorIs(t, err, domainerrors.ErrImageNotFound, path)
	}
}

func TestAssetService_OpenImage_Missing(t *testing.T) {
	fx := createTestAssetService(t)
	ctx := context.Background()

	fx.blobStore.EXPECT().
		Open(ctx, "patrimonio_images/PAT-404.jpg").
		Return((*service.BlobObject)(nil), errors.WithStack(domainerrors.ErrImageNotFound))

	_, err := fx.service.OpenImage(ctx, "patrimonio_images/PAT-404.jpg")
	assert.ErrorIs(t, err, domainerrors.ErrImageNotFound)
}
