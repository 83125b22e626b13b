package postgres

import (
	"context"
	"log/slog"
	"maps"
	"strings"
	"sync"
	"time"

	"locus/internal/domain/repository"
	"locus/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// timestampLayout has a fixed width so stored timestamps order lexically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

type documentStore struct {
	db           *gorm.DB
	pollInterval time.Duration
	logger       *slog.Logger
	now          func() time.Time
}

// NewDocumentStore creates a record store over the documents table.
// Subscriptions poll the per-collection revision every pollInterval.
func NewDocumentStore(db *gorm.DB, pollInterval time.Duration, logger *slog.Logger) repository.RecordStore {
	return &documentStore{
		db:           db,
		pollInterval: pollInterval,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *documentStore) Get(ctx context.Context, collection, key string) (*repository.Document, error) {
	var docM model.DocumentModel

	if err := s.db.WithContext(ctx).
		Where("collection = ? AND key = ?", collection, key).
		First(&docM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDocumentNotFound
		}

		return nil, errors.Wrapf(err, "get %s/%s", collection, key)
	}

	return toDocument(&docM), nil
}

func (s *documentStore) Set(ctx context.Context, collection, key string, fields map[string]any) error {
	return s.write(ctx, collection, func(tx *gorm.DB) error {
		docM := &model.DocumentModel{
			Collection: collection,
			Key:        key,
			Fields:     datatypes.JSONMap(s.resolveSentinels(fields)),
		}

		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "collection"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"fields", "updated_at"}),
		}).Create(docM).Error
	})
}

func (s *documentStore) Update(ctx context.Context, collection, key string, fields map[string]any) error {
	return s.write(ctx, collection, func(tx *gorm.DB) error {
		var docM model.DocumentModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("collection = ? AND key = ?", collection, key).
			First(&docM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrDocumentNotFound
			}

			return err
		}

		merged := maps.Clone(map[string]any(docM.Fields))
		if merged == nil {
			merged = make(map[string]any, len(fields))
		}
		maps.Copy(merged, s.resolveSentinels(fields))

		return tx.Model(&model.DocumentModel{}).
			Where("collection = ? AND key = ?", collection, key).
			Updates(map[string]any{
				"fields":     datatypes.JSONMap(merged),
				"updated_at": s.now(),
			}).Error
	})
}

func (s *documentStore) Delete(ctx context.Context, collection, key string) error {
	return s.write(ctx, collection, func(tx *gorm.DB) error {
		if err := tx.Where("collection = ? AND key = ?", collection, key).
			Delete(&model.DocumentModel{}).Error; err != nil {
			return err
		}

		childPrefix := escapeLike(collection+"/"+key+"/") + "%"

		return tx.Where("collection LIKE ? ESCAPE '\\'", childPrefix).
			Delete(&model.DocumentModel{}).Error
	})
}

func (s *documentStore) List(ctx context.Context, collection, orderField string) ([]*repository.Document, error) {
	var docModels []*model.DocumentModel

	if err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Find(&docModels).Error; err != nil {
		return nil, errors.Wrapf(err, "list %s", collection)
	}

	docs := make([]*repository.Document, 0, len(docModels))
	for _, docM := range docModels {
		docs = append(docs, toDocument(docM))
	}
	repository.SortDocuments(docs, orderField)

	return docs, nil
}

func (s *documentStore) Append(ctx context.Context, collection, key, child string, fields map[string]any) (string, error) {
	id := uuid.NewString()
	if err := s.Set(ctx, repository.ChildPath(collection, key, child), id, fields); err != nil {
		return "", err
	}

	return id, nil
}

func (s *documentStore) ListChildren(ctx context.Context, collection, key, child, orderField string) ([]*repository.Document, error) {
	return s.List(ctx, repository.ChildPath(collection, key, child), orderField)
}

// Subscribe polls the collection revision and emits a fresh snapshot whenever
// it moves. The first snapshot is emitted immediately.
func (s *documentStore) Subscribe(ctx context.Context, collection, orderField string, observer repository.SnapshotObserver) (repository.CancelFunc, error) {
	pollCtx, cancelPoll := context.WithCancel(ctx)

	var once sync.Once
	cancel := func() { once.Do(cancelPoll) }

	go func() {
		defer cancel()

		ticker := time.NewTicker(s.pollInterval)
		defer ticker.Stop()

		lastRevision := int64(-1)
		for {
			revision, err := s.revision(pollCtx, collection)
			if err == nil && revision != lastRevision {
				var docs []*repository.Document
				docs, err = s.List(pollCtx, collection, orderField)
				if err == nil {
					lastRevision = revision
					if observer.OnSnapshot != nil {
						observer.OnSnapshot(docs)
					}
				}
			}
			if err != nil {
				if pollCtx.Err() != nil {
					return
				}
				s.logger.Warn("Postgres subscription failed",
					slog.String("collection", collection),
					slog.Any("error", err),
				)
				if observer.OnError != nil {
					observer.OnError(err)
				}

				return
			}

			select {
			case <-pollCtx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return cancel, nil
}

func (s *documentStore) Close() error {
	return nil
}

func (s *documentStore) write(ctx context.Context, collection string, fn func(tx *gorm.DB) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := fn(tx); err != nil {
			return err
		}

		return bumpRevision(tx, collection)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return repository.ErrDocumentNotFound
		}

		return errors.Wrapf(err, "write %s", collection)
	}

	return nil
}

func (s *documentStore) revision(ctx context.Context, collection string) (int64, error) {
	var rev model.CollectionRevisionModel

	err := s.db.WithContext(ctx).Where("collection = ?", collection).Take(&rev).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrapf(err, "read revision of %s", collection)
	}

	return rev.Revision, nil
}

func (s *documentStore) resolveSentinels(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		switch val := v.(type) {
		case time.Time:
			out[k] = val.UTC().Format(timestampLayout)
		default:
			if v == repository.ServerTimestamp {
				out[k] = s.now().Format(timestampLayout)

				continue
			}
			out[k] = v
		}
	}

	return out
}

func bumpRevision(tx *gorm.DB, collection string) error {
	rev := &model.CollectionRevisionModel{Collection: collection, Revision: 1}

	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "collection"}},
		DoUpdates: clause.Assignments(map[string]any{
			"revision":   gorm.Expr("collection_revisions.revision + 1"),
			"updated_at": gorm.Expr("now()"),
		}),
	}).Create(rev).Error
}

func toDocument(docM *model.DocumentModel) *repository.Document {
	fields := maps.Clone(map[string]any(docM.Fields))
	if fields == nil {
		fields = make(map[string]any)
	}

	return &repository.Document{Key: docM.Key, Fields: fields}
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
