// Package liveview mirrors the asset collection into per-screen views that are
// filtered locally.
package liveview

import (
	"context"
	"log/slog"
	"sync"

	"locus/internal/domain/entity"
	domainerrors "locus/internal/domain/errors"
	"locus/internal/domain/repository"
	"locus/internal/domain/service"
)

// DefaultUpdateBuffer is the number of undelivered snapshots a View holds
// before it starts dropping the oldest.
const DefaultUpdateBuffer = 8

// Snapshot is the state of a View after one notification or filter change.
type Snapshot struct {
	Version  uint64          `json:"version"`
	Assets   []*entity.Asset `json:"assets"`
	Filter   Filter          `json:"filter"`
	Filtered []*entity.Asset `json:"filtered"`
	Sectors  []string        `json:"sectors"`
}

// Engine opens live views over the asset repository.
type Engine struct {
	repo         repository.AssetRepository
	metrics      service.InventoryMetrics
	logger       *slog.Logger
	updateBuffer int
}

// NewEngine creates an Engine.
func NewEngine(repo repository.AssetRepository, metrics service.InventoryMetrics, logger *slog.Logger) *Engine {
	return &Engine{
		repo:         repo,
		metrics:      metrics,
		logger:       logger,
		updateBuffer: DefaultUpdateBuffer,
	}
}

// Subscribe opens a standing subscription ordered ascending by orderField.
// The view starts empty and is closed when ctx ends or Close is called.
func (e *Engine) Subscribe(ctx context.Context, orderField string) (*View, error) {
	if orderField == "" {
		orderField = entity.FieldDescription
	}

	v := &View{
		assets:   []*entity.Asset{},
		filtered: []*entity.Asset{},
		sectors:  []string{},
		updates:  make(chan Snapshot, e.updateBuffer),
		onClose:  e.metrics.ViewClosed,
	}

	cancel, err := e.repo.SubscribeAssets(ctx, orderField, repository.AssetObserver{
		OnSnapshot: v.receive,
		OnError: func(err error) {
			e.logger.Warn("Live view subscription failed",
				slog.String("order_field", orderField),
				slog.Any("error", err),
			)
			v.fail(domainerrors.NewStoreUnavailableError(err, "asset subscription"))
		},
	})
	if err != nil {
		return nil, domainerrors.NewStoreUnavailableError(err, "subscribe to assets")
	}

	e.metrics.ViewOpened()

	v.mu.Lock()
	v.cancel = cancel
	v.mu.Unlock()

	stop := context.AfterFunc(ctx, v.Close)
	v.stopAfter = stop

	return v, nil
}

// View is one screen's mirror of the asset collection. Its methods are safe
// for concurrent use and execute atomically with respect to each other.
type View struct {
	mu       sync.Mutex
	assets   []*entity.Asset
	filter   Filter
	filtered []*entity.Asset
	sectors  []string
	version  uint64
	err      error
	closed   bool
	updates  chan Snapshot

	cancel    repository.CancelFunc
	stopAfter func() bool
	onClose   func()
	closeOnce sync.Once
}

// Updates delivers snapshots in order. When the consumer lags, the oldest
// undelivered snapshot is discarded. The channel is closed when the view is
// closed or its subscription fails.
func (v *View) Updates() <-chan Snapshot {
	return v.updates
}

// Snapshot returns the current state of the view.
func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.snapshotLocked()
}

// SetFilter replaces the filter and recomputes the projection from the
// current snapshot without contacting the store. Undelivered snapshots that
// still carry the previous filter are discarded, so the next value on Updates
// is the returned snapshot.
func (v *View) SetFilter(filter Filter) Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.filter = filter
	v.filtered = Apply(v.assets, filter)
	v.version++
	snap := v.snapshotLocked()
	if !v.closed {
		v.discardPendingLocked()
		v.publishLocked(snap)
	}

	return snap
}

// Err returns the subscription error, if the subscription has failed.
func (v *View) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.err
}

// Close cancels the subscription. It is safe to call more than once.
func (v *View) Close() {
	v.closeOnce.Do(func() {
		v.mu.Lock()
		cancel := v.cancel
		stop := v.stopAfter
		wasOpen := !v.closed
		v.closed = true
		if wasOpen {
			close(v.updates)
		}
		v.mu.Unlock()

		if stop != nil {
			stop()
		}
		if cancel != nil {
			cancel()
		}
		if v.onClose != nil {
			v.onClose()
		}
	})
}

func (v *View) receive(assets []*entity.Asset) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return
	}

	v.assets = assets
	v.filtered = Apply(assets, v.filter)
	v.sectors = Sectors(assets)
	v.version++
	v.publishLocked(v.snapshotLocked())
}

// fail records the error and ends the update stream. The last snapshot is kept.
func (v *View) fail(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return
	}

	v.err = err
	v.closed = true
	close(v.updates)
}

func (v *View) publishLocked(snap Snapshot) {
	for {
		select {
		case v.updates <- snap:
			return
		default:
		}

		select {
		case <-v.updates:
		default:
		}
	}
}

func (v *View) discardPendingLocked() {
	for {
		select {
		case <-v.updates:
		default:
			return
		}
	}
}

func (v *View) snapshotLocked() Snapshot {
	return Snapshot{
		Version:  v.version,
		Assets:   v.assets,
		Filter:   v.filter,
		Filtered: v.filtered,
		Sectors:  v.sectors,
	}
}
