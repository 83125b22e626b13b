package repository

import (
	"context"

	"locus/internal/domain/entity"
)

// HistoryRepository defines append-only persistence of asset change entries.
type HistoryRepository interface {
	// AppendChange stores one entry under the asset, stamped with the store's time.
	AppendChange(ctx context.Context, code string, entry *entity.ChangeEntry) error

	// ListChanges returns the entries of an asset, oldest first.
	ListChanges(ctx context.Context, code string) ([]*entity.ChangeEntry, error)
}
