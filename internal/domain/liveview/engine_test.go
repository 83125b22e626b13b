package liveview

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"locus/config"
	"locus/internal/domain/entity"
	domainerrors "locus/internal/domain/errors"
	"locus/internal/domain/repository"
	"locus/internal/infra/metrics"
	"locus/internal/infra/persistence/docstore"
	"locus/internal/infra/persistence/memory"
	mockRepo "locus/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// engineFixtures holds an engine over an in-memory record store.
type engineFixtures struct {
	engine *Engine
	store  *memory.Store
	assets repository.AssetRepository
}

func createTestEngine(t *testing.T) engineFixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.Store.AssetCollection = "patrimonio"
	cfg.Store.HistoryCollection = "historico"

	store := memory.NewStore()
	assets := docstore.NewAssetRepository(store, cfg)

	return engineFixtures{
		engine: NewEngine(assets, metrics.New(prometheus.NewRegistry(), "test"), slog.New(slog.NewTextHandler(io.Discard, nil))),
		store:  store,
		assets: assets,
	}
}

func TestEngine_SnapshotsReplaceWholesale(t *testing.T) {
	fx := createTestEngine(t)
	ctx := context.Background()
	assets := fx.assets

	view, err := fx.engine.Subscribe(ctx, "")
	require.NoError(t, err)
	defer view.Close()

	assert.Empty(t, view.Snapshot().Assets)

	require.NoError(t, assets.SaveAsset(ctx, &entity.Asset{Code: "B", Description: "Mesa", Location: "Depósito"}))
	require.NoError(t, assets.SaveAsset(ctx, &entity.Asset{Code: "A", Description: "Cadeira", Location: "Sala 3"}))
	require.NoError(t, assets.DeleteAsset(ctx, "B"))

	snap := view.Snapshot()
	assert.Equal(t, []string{"A"}, codes(snap.Assets))
	assert.Equal(t, uint64(4), snap.Version)
}

func TestEngine_FilterIsLocalAndSynchronous(t *testing.T) {
	fx := createTestEngine(t)
	ctx := context.Background()
	assets := fx.assets

	require.NoError(t, assets.SaveAsset(ctx, &entity.Asset{Code: "A", Description: "Monitor", Location: "Sala 3", Sector: "TI"}))
	require.NoError(t, assets.SaveAsset(ctx, &entity.Asset{Code: "B", Description: "Mesa", Location: "Depósito", Sector: "RH"}))

	view, err := fx.engine.Subscribe(ctx, entity.FieldDescription)
	require.NoError(t, err)
	defer view.Close()

	snap := view.SetFilter(Filter{Text: "sala"})
	assert.Equal(t, []string{"A"}, codes(snap.Filtered))
	assert.Equal(t, []string{"B", "A"}, codes(snap.Assets))
	assert.Equal(t, []string{"RH", "TI"}, snap.Sectors)
	assert.Equal(t, Apply(snap.Assets, snap.Filter), snap.Filtered)

	require.NoError(t, assets.SaveAsset(ctx, &entity.Asset{Code: "C", Description: "Lousa", Location: "Sala 9"}))
	assert.Equal(t, []string{"A", "C"}, codes(view.Snapshot().Filtered))
}

func TestEngine_UpdatesDropOldestWhenLagging(t *testing.T) {
	fx := createTestEngine(t)
	fx.engine.updateBuffer = 2
	ctx := context.Background()
	assets := fx.assets

	view, err := fx.engine.Subscribe(ctx, "")
	require.NoError(t, err)
	defer view.Close()

	for i := range 5 {
		require.NoError(t, assets.SaveAsset(ctx, &entity.Asset{Code: fmt.Sprintf("PAT-%03d", i), Description: "Item"}))
	}

	first := <-view.Updates()
	second := <-view.Updates()
	assert.Len(t, first.Assets, 4)
	assert.Len(t, second.Assets, 5)
	assert.Equal(t, view.Snapshot(), second)
}

func TestEngine_SetFilterSupersedesQueuedSnapshots(t *testing.T) {
	fx := createTestEngine(t)
	ctx := context.Background()
	assets := fx.assets

	view, err := fx.engine.Subscribe(ctx, "")
	require.NoError(t, err)
	defer view.Close()

	require.NoError(t, assets.SaveAsset(ctx, &entity.Asset{Code: "A", Description: "Monitor", Sector: "TI"}))
	require.NoError(t, assets.SaveAsset(ctx, &entity.Asset{Code: "B", Description: "Mesa", Sector: "RH"}))

	filtered := view.SetFilter(Filter{Sector: "TI"})
	require.Equal(t, []string{"A"}, codes(filtered.Filtered))

	var pending []Snapshot
	for len(view.Updates()) > 0 {
		pending = append(pending, <-view.Updates())
	}
	require.Len(t, pending, 1)
	assert.Equal(t, filtered, pending[0])

	require.NoError(t, assets.SaveAsset(ctx, &entity.Asset{Code: "C", Description: "Cadeira", Sector: "TI"}))
	next := <-view.Updates()
	assert.Greater(t, next.Version, filtered.Version)
	assert.Equal(t, Filter{Sector: "TI"}, next.Filter)
	assert.Equal(t, []string{"C", "A"}, codes(next.Filtered)) // ordered by description
}

func TestEngine_CloseIsIdempotentAndResubscribeStartsFresh(t *testing.T) {
	fx := createTestEngine(t)
	ctx := context.Background()
	assets := fx.assets

	view, err := fx.engine.Subscribe(ctx, "")
	require.NoError(t, err)

	view.Close()
	view.Close()

	require.NoError(t, assets.SaveAsset(ctx, &entity.Asset{Code: "A", Description: "Monitor"}))
	assert.Empty(t, view.Snapshot().Assets)

	assert.True(t, isClosed(view.Updates()))

	again, err := fx.engine.Subscribe(ctx, "")
	require.NoError(t, err)
	defer again.Close()
	assert.Equal(t, []string{"A"}, codes(again.Snapshot().Assets))
	assert.Equal(t, uint64(1), again.Snapshot().Version)
}

func TestEngine_ContextCancelClosesView(t *testing.T) {
	fx := createTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())

	view, err := fx.engine.Subscribe(ctx, "")
	require.NoError(t, err)

	cancel()

	require.Eventually(t, func() bool {
		return isClosed(view.Updates())
	}, time.Second, 10*time.Millisecond)
}

func TestEngine_ErrorKeepsLastSnapshot(t *testing.T) {
	fx := createTestEngine(t)
	ctx := context.Background()
	assets := fx.assets

	for i := range 5 {
		require.NoError(t, assets.SaveAsset(ctx, &entity.Asset{Code: fmt.Sprintf("PAT-%03d", i), Description: "Item"}))
	}

	view, err := fx.engine.Subscribe(ctx, "")
	require.NoError(t, err)
	defer view.Close()
	require.Len(t, view.Snapshot().Assets, 5)

	fx.store.Fail("patrimonio", errors.New("listener lost"))

	require.Error(t, view.Err())
	assert.True(t, domainerrors.IsStoreUnavailable(view.Err()))
	assert.Len(t, view.Snapshot().Assets, 5)

	assert.True(t, isClosed(view.Updates()))
}

func TestEngine_SubscribeFailure(t *testing.T) {
	repo := mockRepo.NewMockAssetRepository(t)
	engine := NewEngine(repo, metrics.New(prometheus.NewRegistry(), "test"), slog.New(slog.NewTextHandler(io.Discard, nil)))

	repo.EXPECT().
		SubscribeAssets(mock.Anything, entity.FieldDescription, mock.Anything).
		Return(nil, errors.New("unavailable"))

	view, err := engine.Subscribe(context.Background(), "")
	assert.Nil(t, view)
	assert.True(t, domainerrors.IsStoreUnavailable(err))
}

// isClosed discards buffered snapshots and reports whether updates is closed.
func isClosed(updates <-chan Snapshot) bool {
	for {
		select {
		case _, ok := <-updates:
			if !ok {
				return true
			}
		default:
			return false
		}
	}
}
