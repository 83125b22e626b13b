package usecase

import (
	"context"

	"locus/internal/domain/entity"
	"locus/internal/domain/liveview"
	"locus/internal/domain/service"
)

// --- Input DTOs ---

// AssetInput is the editable content of an asset form.
type AssetInput struct {
	Description  string `validate:"required"`
	Brand        string
	Model        string
	SerialNumber string
	State        string `validate:"required,asset_state"`
	Location     string `validate:"required"`
	Sector       string
	// ImageBase64 is a new photo of the asset. Empty keeps the current one.
	ImageBase64 string
}

// ListAssetsInput selects and filters a one-shot asset listing.
type ListAssetsInput struct {
	OrderField string
	Filter     liveview.Filter
}

// --- Output DTOs ---

// UpdateAssetOutput returns the written asset and the history it produced.
type UpdateAssetOutput struct {
	Asset   *entity.Asset
	Changes []entity.ChangeEntry
}

// AssetUsecase defines asset operations on behalf of a session.
type AssetUsecase interface {
	CreateAsset(ctx context.Context, session *entity.Session, code string, input AssetInput) (*entity.Asset, error)
	UpdateAsset(ctx context.Context, session *entity.Session, code string, input AssetInput) (*UpdateAssetOutput, error)
	DeleteAsset(ctx context.Context, session *entity.Session, code string) error
	GetAsset(ctx context.Context, session *entity.Session, code string) (*entity.Asset, error)
	ListAssets(ctx context.Context, session *entity.Session, input ListAssetsInput) (*liveview.Snapshot, error)
	GetHistory(ctx context.Context, session *entity.Session, code string) ([]*entity.ChangeEntry, error)
	WatchAssets(ctx context.Context, session *entity.Session, orderField string) (*liveview.View, error)
	GetAssetLabel(ctx context.Context, session *entity.Session, code string) ([]byte, error)
	OpenImage(ctx context.Context, path string) (*service.BlobObject, error)
}
