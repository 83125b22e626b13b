package docstore

import (
	"context"

	"locus/config"
	"locus/internal/domain/entity"
	"locus/internal/domain/repository"

	"github.com/pkg/errors"
)

type assetRepository struct {
	store      repository.RecordStore
	collection string
}

// NewAssetRepository is the constructor for assetRepository.
func NewAssetRepository(store repository.RecordStore, cfg *config.Config) repository.AssetRepository {
	return &assetRepository{
		store:      store,
		collection: cfg.Store.AssetCollection,
	}
}

// FindAsset retrieves an asset by its code.
func (repo *assetRepository) FindAsset(ctx context.Context, code string) (*entity.Asset, error) {
	if err := repository.ValidateKey(code); err != nil {
		return nil, err
	}
	doc, err := repo.store.Get(ctx, repo.collection, code)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return nil, repository.ErrAssetNotFound
		}

		return nil, errors.Wrap(err, "failed to find asset")
	}

	return toAssetDomain(doc), nil
}

// SaveAsset creates or replaces the asset stored under its code.
func (repo *assetRepository) SaveAsset(ctx context.Context, asset *entity.Asset) error {
	if err := repository.ValidateKey(asset.Code); err != nil {
		return err
	}
	if err := repo.store.Set(ctx, repo.collection, asset.Code, fromAssetDomain(asset)); err != nil {
		return errors.Wrap(err, "failed to save asset")
	}

	return nil
}

// UpdateAsset writes the tracked attributes of an existing asset.
func (repo *assetRepository) UpdateAsset(ctx context.Context, asset *entity.Asset) error {
	if err := repository.ValidateKey(asset.Code); err != nil {
		return err
	}
	if err := repo.store.Update(ctx, repo.collection, asset.Code, fromAssetDomain(asset)); err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return repository.ErrAssetNotFound
		}

		return errors.Wrap(err, "failed to update asset")
	}

	return nil
}

// DeleteAsset removes an asset together with its change history. The key is
// checked first: the store deletes children by path prefix.
func (repo *assetRepository) DeleteAsset(ctx context.Context, code string) error {
	if err := repository.ValidateKey(code); err != nil {
		return err
	}
	if err := repo.store.Delete(ctx, repo.collection, code); err != nil {
		return errors.Wrap(err, "failed to delete asset")
	}

	return nil
}

// ListAssets returns every asset ordered by orderField.
func (repo *assetRepository) ListAssets(ctx context.Context, orderField string) ([]*entity.Asset, error) {
	docs, err := repo.store.List(ctx, repo.collection, orderField)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list assets")
	}

	return toAssetsDomain(docs), nil
}

// SubscribeAssets opens a standing subscription ordered by orderField.
func (repo *assetRepository) SubscribeAssets(ctx context.Context, orderField string, observer repository.AssetObserver) (repository.CancelFunc, error) {
	cancel, err := repo.store.Subscribe(ctx, repo.collection, orderField, repository.SnapshotObserver{
		OnSnapshot: func(docs []*repository.Document) {
			if observer.OnSnapshot != nil {
				observer.OnSnapshot(toAssetsDomain(docs))
			}
		},
		OnError: observer.OnError,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to subscribe to assets")
	}

	return cancel, nil
}

func toAssetsDomain(docs []*repository.Document) []*entity.Asset {
	assets := make([]*entity.Asset, 0, len(docs))
	for _, doc := range docs {
		assets = append(assets, toAssetDomain(doc))
	}

	return assets
}
