package docstore

import (
	"context"

	"locus/config"
	"locus/internal/domain/entity"
	"locus/internal/domain/repository"

	"github.com/pkg/errors"
)

type historyRepository struct {
	store      repository.RecordStore
	collection string
	child      string
}

// NewHistoryRepository is the constructor for historyRepository.
func NewHistoryRepository(store repository.RecordStore, cfg *config.Config) repository.HistoryRepository {
	return &historyRepository{
		store:      store,
		collection: cfg.Store.AssetCollection,
		child:      cfg.Store.HistoryCollection,
	}
}

// AppendChange stores one entry under the asset.
func (repo *historyRepository) AppendChange(ctx context.Context, code string, entry *entity.ChangeEntry) error {
	if err := repository.ValidateKey(code); err != nil {
		return err
	}
	id, err := repo.store.Append(ctx, repo.collection, code, repo.child, fromChangeEntryDomain(entry))
	if err != nil {
		return errors.Wrapf(err, "failed to append change of %s", entry.Field)
	}
	entry.ID = id

	return nil
}

// ListChanges returns the entries of an asset, oldest first.
func (repo *historyRepository) ListChanges(ctx context.Context, code string) ([]*entity.ChangeEntry, error) {
	if err := repository.ValidateKey(code); err != nil {
		return nil, err
	}
	docs, err := repo.store.ListChildren(ctx, repo.collection, code, repo.child, historyAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list changes")
	}

	entries := make([]*entity.ChangeEntry, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, toChangeEntryDomain(doc))
	}

	return entries, nil
}
