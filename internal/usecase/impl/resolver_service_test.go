package impl

import (
	"context"
	"testing"
	"time"

	"locus/internal/domain/entity"
	domainerrors "locus/internal/domain/errors"
	"locus/internal/domain/repository"
	mockRepo "locus/internal/mocks/repository"
	"locus/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scanOwner = "uid-ana"

// resolverServiceFixtures holds all test dependencies for resolver service tests.
type resolverServiceFixtures struct {
	service   usecase.ResolverUsecase
	assetRepo *mockRepo.MockAssetRepository
}

func createTestResolverService(t *testing.T) resolverServiceFixtures {
	assetRepo := mockRepo.NewMockAssetRepository(t)

	return resolverServiceFixtures{
		service:   NewResolverService(assetRepo, newTestMetrics(), newTestLogger()),
		assetRepo: assetRepo,
	}
}

func TestResolverService_Resolve_ExistingAssetRoutesToEdit(t *testing.T) {
	fx := createTestResolverService(t)
	ctx := context.Background()

	fx.assetRepo.EXPECT().
		FindAsset(ctx, "PAT-001").
		Return(&entity.Asset{Description: "Notebook", State: entity.AssetStateInUse, Location: "Sala 3"}, nil)

	resolution, err := fx.service.Resolve(ctx, "  PAT-001 ")
	require.NoError(t, err)
	assert.Equal(t, usecase.ResolutionEdit, resolution.Mode)
	assert.Equal(t, "PAT-001", resolution.Code)
	require.NotNil(t, resolution.Asset)
	assert.Equal(t, "PAT-001", resolution.Asset.Code)
	assert.Equal(t, "Notebook", resolution.Asset.Description)
}

func TestResolverService_Resolve_AbsentAssetRoutesToCreate(t *testing.T) {
	fx := createTestResolverService(t)
	ctx := context.Background()

	fx.assetRepo.EXPECT().
		FindAsset(ctx, "PAT-999").
		Return(nil, repository.ErrAssetNotFound)

	resolution, err := fx.service.Resolve(ctx, "PAT-999")
	require.NoError(t, err)
	assert.Equal(t, usecase.ResolutionCreate, resolution.Mode)
	assert.Equal(t, "PAT-999", resolution.Code)
	assert.Nil(t, resolution.Asset)
}

func TestResolverService_Scan_LocksUntilReleased(t *testing.T) {
	fx := createTestResolverService(t)
	ctx := context.Background()

	fx.assetRepo.EXPECT().
		FindAsset(ctx, "PAT-001").
		Return(nil, repository.ErrAssetNotFound).
		Twice()

	sessionID := fx.service.OpenScanSession(ctx, scanOwner)

	resolution, err := fx.service.Scan(ctx, scanOwner, sessionID, "PAT-001")
	require.NoError(t, err)
	assert.Equal(t, usecase.ResolutionCreate, resolution.Mode)

	// Repeated frames of the same code never reach the store.
	for range 3 {
		_, err = fx.service.Scan(ctx, scanOwner, sessionID, "PAT-001")
		require.Error(t, err)
	}

	require.NoError(t, fx.service.ReleaseScanSession(ctx, scanOwner, sessionID))

	_, err = fx.service.Scan(ctx, scanOwner, sessionID, "PAT-001")
	require.NoError(t, err)

	require.NoError(t, fx.service.CloseScanSession(ctx, scanOwner, sessionID))
}

func TestResolverService_Scan_SessionsAreIndependent(t *testing.T) {
	fx := createTestResolverService(t)
	ctx := context.Background()

	fx.assetRepo.EXPECT().
		FindAsset(ctx, "PAT-001").
		Return(&entity.Asset{Description: "Notebook"}, nil).
		Twice()

	first := fx.service.OpenScanSession(ctx, scanOwner)
	second := fx.service.OpenScanSession(ctx, scanOwner)
	assert.NotEqual(t, first, second)

	_, err := fx.service.Scan(ctx, scanOwner, first, "PAT-001")
	require.NoError(t, err)
	_, err = fx.service.Scan(ctx, scanOwner, second, "PAT-001")
	require.NoError(t, err)
}

func TestResolverService_ScanSessionBelongsToItsOwner(t *testing.T) {
	fx := createTestResolverService(t)
	ctx := context.Background()

	sessionID := fx.service.OpenScanSession(ctx, scanOwner)

	_, err := fx.service.Scan(ctx, "uid-bruno", sessionID, "PAT-001")
	assert.ErrorIs(t, err, domainerrors.ErrScanSessionNotFound)
	assert.ErrorIs(t, fx.service.ReleaseScanSession(ctx, "uid-bruno", sessionID), domainerrors.ErrScanSessionNotFound)
	assert.ErrorIs(t, fx.service.CloseScanSession(ctx, "uid-bruno", sessionID), domainerrors.ErrScanSessionNotFound)

	// The owner's scanner survived the attempts.
	require.NoError(t, fx.service.CloseScanSession(ctx, scanOwner, sessionID))
}

func TestResolverService_IdleScanSessionsAreEvicted(t *testing.T) {
	fx := createTestResolverService(t)
	ctx := context.Background()

	srv := fx.service.(*resolverService)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	srv.now = func() time.Time { return now }

	abandoned := srv.OpenScanSession(ctx, scanOwner)
	active := srv.OpenScanSession(ctx, scanOwner)

	now = now.Add(scanSessionIdleTTL / 2)
	require.NoError(t, srv.ReleaseScanSession(ctx, scanOwner, active))

	now = now.Add(scanSessionIdleTTL/2 + time.Minute)
	srv.OpenScanSession(ctx, "uid-bruno")

	srv.mu.Lock()
	_, abandonedKept := srv.sessions[abandoned]
	_, activeKept := srv.sessions[active]
	count := len(srv.sessions)
	srv.mu.Unlock()

	assert.False(t, abandonedKept)
	assert.True(t, activeKept)
	assert.Equal(t, 2, count)

	// A scanner that expired between sweeps is not usable either.
	now = now.Add(scanSessionIdleTTL + time.Minute)
	assert.ErrorIs(t, srv.ReleaseScanSession(ctx, scanOwner, active), domainerrors.ErrScanSessionNotFound)
}
