package repository

import (
	"context"

	"locus/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrAssetNotFound is returned when no asset is stored under a code.
var ErrAssetNotFound = errors.New("asset not found")

// AssetObserver receives ordered asset snapshots of a standing subscription.
type AssetObserver struct {
	OnSnapshot func(assets []*entity.Asset)
	OnError    func(err error)
}

// AssetRepository defines asset persistence on top of the record store.
type AssetRepository interface {
	// FindAsset retrieves an asset by its code, or ErrAssetNotFound.
	FindAsset(ctx context.Context, code string) (*entity.Asset, error)

	// SaveAsset creates or replaces the asset stored under its code.
	SaveAsset(ctx context.Context, asset *entity.Asset) error

	// UpdateAsset writes the tracked attributes of an existing asset.
	UpdateAsset(ctx context.Context, asset *entity.Asset) error

	// DeleteAsset removes an asset together with its change history.
	DeleteAsset(ctx context.Context, code string) error

	// ListAssets returns every asset ordered by orderField.
	ListAssets(ctx context.Context, orderField string) ([]*entity.Asset, error)

	// SubscribeAssets opens a standing subscription ordered by orderField.
	SubscribeAssets(ctx context.Context, orderField string, observer AssetObserver) (CancelFunc, error)
}
