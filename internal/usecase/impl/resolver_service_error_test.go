package impl

import (
	"context"
	"testing"

	domainerrors "locus/internal/domain/errors"
	"locus/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverService_Resolve_EmptyCode(t *testing.T) {
	fx := createTestResolverService(t)

	_, err := fx.service.Resolve(context.Background(), "   ")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCode)
}

func TestResolverService_Resolve_PathCodeIsInvalid(t *testing.T) {
	fx := createTestResolverService(t)

	for _, code := range []string{"https://example.com/asset/1", "A/B", "..", "__name__"} {
		_, err := fx.service.Resolve(context.Background(), code)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCode, code)
		assert.False(t, domainerrors.IsStoreUnavailable(err), code)
	}
}

func TestResolverService_Resolve_StoreFailureIsNotAbsence(t *testing.T) {
	fx := createTestResolverService(t)
	ctx := context.Background()

	fx.assetRepo.EXPECT().
		FindAsset(ctx, "PAT-001").
		Return(nil, errors.New("deadline exceeded"))

	resolution, err := fx.service.Resolve(ctx, "PAT-001")
	require.Error(t, err)
	assert.Nil(t, resolution)
	assert.True(t, domainerrors.IsStoreUnavailable(err))
	assert.NotErrorIs(t, err, repository.ErrAssetNotFound)
}

func TestResolverService_Scan_FailureRearmsScanner(t *testing.T) {
	fx := createTestResolverService(t)
	ctx := context.Background()

	fx.assetRepo.EXPECT().
		FindAsset(ctx, "PAT-001").
		Return(nil, errors.New("unavailable")).
		Once()
	fx.assetRepo.EXPECT().
		FindAsset(ctx, "PAT-001").
		Return(nil, repository.ErrAssetNotFound).
		Once()

	sessionID := fx.service.OpenScanSession(ctx, scanOwner)

	_, err := fx.service.Scan(ctx, scanOwner, sessionID, "PAT-001")
	require.Error(t, err)
	assert.True(t, domainerrors.IsStoreUnavailable(err))

	_, err = fx.service.Scan(ctx, scanOwner, sessionID, "PAT-001")
	require.NoError(t, err)
}

func TestResolverService_Scan_InProgress(t *testing.T) {
	fx := createTestResolverService(t)
	ctx := context.Background()

	fx.assetRepo.EXPECT().
		FindAsset(ctx, "PAT-001").
		Return(nil, repository.ErrAssetNotFound).
		Once()

	sessionID := fx.service.OpenScanSession(ctx, scanOwner)
	_, err := fx.service.Scan(ctx, scanOwner, sessionID, "PAT-001")
	require.NoError(t, err)

	_, err = fx.service.Scan(ctx, scanOwner, sessionID, "PAT-002")
	assert.ErrorIs(t, err, domainerrors.ErrScanInProgress)
}

func TestResolverService_UnknownScanSession(t *testing.T) {
	fx := createTestResolverService(t)
	ctx := context.Background()

	_, err := fx.service.Scan(ctx, scanOwner, "missing", "PAT-001")
	assert.ErrorIs(t, err, domainerrors.ErrScanSessionNotFound)
	assert.ErrorIs(t, fx.service.ReleaseScanSession(ctx, scanOwner, "missing"), domainerrors.ErrScanSessionNotFound)
	assert.ErrorIs(t, fx.service.CloseScanSession(ctx, scanOwner, "missing"), domainerrors.ErrScanSessionNotFound)

	sessionID := fx.service.OpenScanSession(ctx, scanOwner)
	require.NoError(t, fx.service.CloseScanSession(ctx, scanOwner, sessionID))
	assert.ErrorIs(t, fx.service.CloseScanSession(ctx, scanOwner, sessionID), domainerrors.ErrScanSessionNotFound)
}
