// Package firestore implements the record store on Cloud Firestore.
package firestore

import (
	"context"
	"log/slog"
	"sync"

	"locus/internal/domain/repository"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type store struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewStore opens a Firestore client from an initialized Firebase app.
func NewStore(ctx context.Context, app *firebase.App, logger *slog.Logger) (repository.RecordStore, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	return &store{client: client, logger: logger}, nil
}

func (s *store) Get(ctx context.Context, collection, key string) (*repository.Document, error) {
	snap, err := s.client.Collection(collection).Doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrDocumentNotFound
		}

		return nil, errors.Wrapf(err, "get %s/%s", collection, key)
	}

	return toDocument(snap), nil
}

func (s *store) Set(ctx context.Context, collection, key string, fields map[string]any) error {
	if _, err := s.client.Collection(collection).Doc(key).Set(ctx, resolveSentinels(fields)); err != nil {
		return errors.Wrapf(err, "set %s/%s", collection, key)
	}

	return nil
}

func (s *store) Update(ctx context.Context, collection, key string, fields map[string]any) error {
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range resolveSentinels(fields) {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	if _, err := s.client.Collection(collection).Doc(key).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrDocumentNotFound
		}

		return errors.Wrapf(err, "update %s/%s", collection, key)
	}

	return nil
}

// Delete removes the document and the documents of its child collections.
// Firestore does not cascade, so children are removed one by one first.
func (s *store) Delete(ctx context.Context, collection, key string) error {
	ref := s.client.Collection(collection).Doc(key)

	children := ref.Collections(ctx)
	for {
		child, err := children.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return errors.Wrapf(err, "list child collections of %s/%s", collection, key)
		}

		docs, err := child.Documents(ctx).GetAll()
		if err != nil {
			return errors.Wrapf(err, "list %s", child.Path)
		}
		for _, doc := range docs {
			if _, err := doc.Ref.Delete(ctx); err != nil {
				return errors.Wrapf(err, "delete %s", doc.Ref.Path)
			}
		}
	}

	if _, err := ref.Delete(ctx); err != nil {
		return errors.Wrapf(err, "delete %s/%s", collection, key)
	}

	return nil
}

func (s *store) List(ctx context.Context, collection, orderField string) ([]*repository.Document, error) {
	return s.list(ctx, s.client.Collection(collection), orderField)
}

func (s *store) ListChildren(ctx context.Context, collection, key, child, orderField string) ([]*repository.Document, error) {
	return s.list(ctx, s.client.Collection(collection).Doc(key).Collection(child), orderField)
}

func (s *store) list(ctx context.Context, col *firestore.CollectionRef, orderField string) ([]*repository.Document, error) {
	snaps, err := query(col, orderField).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", col.Path)
	}

	return toDocuments(snaps), nil
}

func (s *store) Append(ctx context.Context, collection, key, child string, fields map[string]any) (string, error) {
	ref, _, err := s.client.Collection(collection).Doc(key).Collection(child).Add(ctx, resolveSentinels(fields))
	if err != nil {
		return "", errors.Wrapf(err, "append to %s", repository.ChildPath(collection, key, child))
	}

	return ref.ID, nil
}

// Subscribe listens to query snapshots on a dedicated goroutine. The
// iterator is stopped by the returned cancel func or by ctx.
func (s *store) Subscribe(ctx context.Context, collection, orderField string, observer repository.SnapshotObserver) (repository.CancelFunc, error) {
	listenCtx, cancelListen := context.WithCancel(ctx)
	it := query(s.client.Collection(collection), orderField).Snapshots(listenCtx)

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			cancelListen()
			it.Stop()
		})
	}

	go func() {
		defer cancel()

		for {
			snap, err := it.Next()
			if err != nil {
				if listenCtx.Err() != nil || status.Code(err) == codes.Canceled {
					return
				}
				s.logger.Warn("Firestore listener failed",
					slog.String("collection", collection),
					slog.Any("error", err),
				)
				if observer.OnError != nil {
					observer.OnError(errors.Wrapf(err, "listen %s", collection))
				}

				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				if listenCtx.Err() != nil {
					return
				}
				if observer.OnError != nil {
					observer.OnError(errors.Wrapf(err, "read snapshot of %s", collection))
				}

				return
			}

			if observer.OnSnapshot != nil {
				observer.OnSnapshot(toDocuments(docs))
			}
		}
	}()

	return cancel, nil
}

func (s *store) Close() error {
	return errors.WithStack(s.client.Close())
}

func query(col *firestore.CollectionRef, orderField string) firestore.Query {
	if orderField == "" {
		return col.Query
	}

	return col.OrderBy(orderField, firestore.Asc)
}

func resolveSentinels(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if v == repository.ServerTimestamp {
			out[k] = firestore.ServerTimestamp

			continue
		}
		out[k] = v
	}

	return out
}

func toDocument(snap *firestore.DocumentSnapshot) *repository.Document {
	return &repository.Document{Key: snap.Ref.ID, Fields: snap.Data()}
}

func toDocuments(snaps []*firestore.DocumentSnapshot) []*repository.Document {
	docs := make([]*repository.Document, 0, len(snaps))
	for _, snap := range snaps {
		docs = append(docs, toDocument(snap))
	}

	return docs
}
