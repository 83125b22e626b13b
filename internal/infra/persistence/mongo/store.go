// Package mongo implements the record store on MongoDB. Child collections are
// stored in a sibling collection named "<collection>.<child>" with a parent
// reference, and subscriptions follow change streams, so the deployment must
// run as a replica set.
package mongo

import (
	"context"
	"log/slog"
	"regexp"
	"sync"
	"time"

	"locus/config"
	"locus/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	idField     = "_id"
	parentField = "_parent"

	defaultConnectTimeout = 10 * time.Second
	disconnectTimeout     = 10 * time.Second
)

type store struct {
	client *mongo.Client
	db     *mongo.Database
	logger *slog.Logger
	now    func() time.Time
}

// Open connects to MongoDB and verifies the connection with a ping.
func Open(ctx context.Context, cfg *config.MongoConfig, logger *slog.Logger) (repository.RecordStore, error) {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())

		return nil, errors.Wrap(err, "failed to ping MongoDB")
	}

	logger.Info("Connected to MongoDB", slog.String("database", cfg.Database))

	return &store{
		client: client,
		db:     client.Database(cfg.Database),
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *store) Get(ctx context.Context, collection, key string) (*repository.Document, error) {
	var raw bson.M
	if err := s.db.Collection(collection).FindOne(ctx, bson.M{idField: key}).Decode(&raw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrDocumentNotFound
		}

		return nil, errors.Wrapf(err, "get %s/%s", collection, key)
	}

	return toDocument(raw), nil
}

func (s *store) Set(ctx context.Context, collection, key string, fields map[string]any) error {
	doc := s.resolveSentinels(fields)
	doc[idField] = key

	_, err := s.db.Collection(collection).ReplaceOne(ctx, bson.M{idField: key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Wrapf(err, "set %s/%s", collection, key)
	}

	return nil
}

func (s *store) Update(ctx context.Context, collection, key string, fields map[string]any) error {
	result, err := s.db.Collection(collection).UpdateOne(ctx,
		bson.M{idField: key},
		bson.M{"$set": s.resolveSentinels(fields)},
	)
	if err != nil {
		return errors.Wrapf(err, "update %s/%s", collection, key)
	}
	if result.MatchedCount == 0 {
		return repository.ErrDocumentNotFound
	}

	return nil
}

// Delete removes the document and its entries in every child collection.
func (s *store) Delete(ctx context.Context, collection, key string) error {
	names, err := s.db.ListCollectionNames(ctx, bson.M{
		"name": bson.M{"$regex": "^" + regexp.QuoteMeta(collection+".")},
	})
	if err != nil {
		return errors.Wrapf(err, "list child collections of %s", collection)
	}

	for _, name := range names {
		if _, err := s.db.Collection(name).DeleteMany(ctx, bson.M{parentField: key}); err != nil {
			return errors.Wrapf(err, "delete children of %s/%s in %s", collection, key, name)
		}
	}

	if _, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{idField: key}); err != nil {
		return errors.Wrapf(err, "delete %s/%s", collection, key)
	}

	return nil
}

func (s *store) List(ctx context.Context, collection, orderField string) ([]*repository.Document, error) {
	return s.find(ctx, collection, bson.M{}, orderField)
}

func (s *store) ListChildren(ctx context.Context, collection, key, child, orderField string) ([]*repository.Document, error) {
	return s.find(ctx, childCollection(collection, child), bson.M{parentField: key}, orderField)
}

func (s *store) find(ctx context.Context, collection string, filter bson.M, orderField string) ([]*repository.Document, error) {
	sort := bson.D{{Key: idField, Value: 1}}
	if orderField != "" {
		sort = bson.D{{Key: orderField, Value: 1}, {Key: idField, Value: 1}}
	}

	cursor, err := s.db.Collection(collection).Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", collection)
	}

	var raws []bson.M
	if err := cursor.All(ctx, &raws); err != nil {
		return nil, errors.Wrapf(err, "decode %s", collection)
	}

	docs := make([]*repository.Document, 0, len(raws))
	for _, raw := range raws {
		docs = append(docs, toDocument(raw))
	}

	return docs, nil
}

func (s *store) Append(ctx context.Context, collection, key, child string, fields map[string]any) (string, error) {
	id := uuid.NewString()

	doc := s.resolveSentinels(fields)
	doc[idField] = id
	doc[parentField] = key

	if _, err := s.db.Collection(childCollection(collection, child)).InsertOne(ctx, doc); err != nil {
		return "", errors.Wrapf(err, "append to %s", repository.ChildPath(collection, key, child))
	}

	return id, nil
}

// Subscribe opens a change stream on the collection and re-reads the ordered
// query after every change event.
func (s *store) Subscribe(ctx context.Context, collection, orderField string, observer repository.SnapshotObserver) (repository.CancelFunc, error) {
	listenCtx, cancelListen := context.WithCancel(ctx)

	stream, err := s.db.Collection(collection).Watch(listenCtx, mongo.Pipeline{})
	if err != nil {
		cancelListen()

		return nil, errors.Wrapf(err, "watch %s", collection)
	}

	var once sync.Once
	cancel := func() {
		once.Do(cancelListen)
	}

	go func() {
		defer cancel()
		defer func() {
			_ = stream.Close(context.Background())
		}()

		fail := func(err error) {
			if listenCtx.Err() != nil {
				return
			}
			s.logger.Warn("MongoDB change stream failed",
				slog.String("collection", collection),
				slog.Any("error", err),
			)
			if observer.OnError != nil {
				observer.OnError(err)
			}
		}

		for {
			docs, err := s.find(listenCtx, collection, bson.M{}, orderField)
			if err != nil {
				fail(err)

				return
			}
			if observer.OnSnapshot != nil {
				observer.OnSnapshot(docs)
			}

			if !stream.Next(listenCtx) {
				if err := stream.Err(); err != nil {
					fail(errors.Wrapf(err, "watch %s", collection))
				}

				return
			}
		}
	}()

	return cancel, nil
}

func (s *store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()

	return errors.WithStack(s.client.Disconnect(ctx))
}

func (s *store) resolveSentinels(fields map[string]any) bson.M {
	out := make(bson.M, len(fields)+2)
	for k, v := range fields {
		if v == repository.ServerTimestamp {
			out[k] = s.now()

			continue
		}
		out[k] = v
	}

	return out
}

func childCollection(collection, child string) string {
	return collection + "." + child
}

func toDocument(raw bson.M) *repository.Document {
	key, _ := raw[idField].(string)

	fields := make(map[string]any, len(raw))
	for k, v := range raw {
		if k == idField || k == parentField {
			continue
		}
		fields[k] = normalize(v)
	}

	return &repository.Document{Key: key, Fields: fields}
}

// normalize converts BSON driver types to the plain Go values the rest of the
// repository layer expects.
func normalize(v any) any {
	switch val := v.(type) {
	case primitive.DateTime:
		return val.Time().UTC()
	case int32:
		return int64(val)
	case primitive.A:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}

		return out
	case bson.M:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalize(item)
		}

		return out
	case bson.D:
		out := make(map[string]any, len(val))
		for _, elem := range val {
			out[elem.Key] = normalize(elem.Value)
		}

		return out
	default:
		return v
	}
}
