// Package memory provides an in-process record store with live subscriptions.
package memory

import (
	"context"
	"maps"
	"strings"
	"sync"
	"time"

	"locus/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type subscription struct {
	id         uint64
	collection string
	orderField string
	observer   repository.SnapshotObserver
}

// Store keeps documents in memory. Snapshots are delivered synchronously on
// the mutating goroutine, serialized across all subscribers, so observers must
// not write to the store from inside a callback.
type Store struct {
	mu          sync.Mutex
	deliverMu   sync.Mutex
	collections map[string]map[string]map[string]any
	subs        map[uint64]*subscription
	nextSubID   uint64
	now         func() time.Time
	closed      bool
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		collections: make(map[string]map[string]map[string]any),
		subs:        make(map[uint64]*subscription),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

var errClosed = errors.New("memory store closed")

// Get returns the document stored under key.
func (s *Store) Get(ctx context.Context, collection, key string) (*repository.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, errClosed
	}

	fields, ok := s.collections[collection][key]
	if !ok {
		return nil, repository.ErrDocumentNotFound
	}

	return &repository.Document{Key: key, Fields: maps.Clone(fields)}, nil
}

// Set creates or replaces a document.
func (s *Store) Set(ctx context.Context, collection, key string, fields map[string]any) error {
	return s.mutate(ctx, collection, func() error {
		s.ensureCollection(collection)[key] = s.resolveSentinels(fields)

		return nil
	})
}

// Update merges fields into an existing document.
func (s *Store) Update(ctx context.Context, collection, key string, fields map[string]any) error {
	return s.mutate(ctx, collection, func() error {
		current, ok := s.collections[collection][key]
		if !ok {
			return repository.ErrDocumentNotFound
		}
		merged := maps.Clone(current)
		maps.Copy(merged, s.resolveSentinels(fields))
		s.collections[collection][key] = merged

		return nil
	})
}

// Delete removes a document and its child collections.
func (s *Store) Delete(ctx context.Context, collection, key string) error {
	return s.mutate(ctx, collection, func() error {
		delete(s.collections[collection], key)

		prefix := collection + "/" + key + "/"
		for path := range s.collections {
			if strings.HasPrefix(path, prefix) {
				delete(s.collections, path)
			}
		}

		return nil
	})
}

// List returns every document ordered by orderField.
func (s *Store) List(ctx context.Context, collection, orderField string) ([]*repository.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, errClosed
	}

	return s.snapshotLocked(collection, orderField), nil
}

// Subscribe delivers the current snapshot before returning and then one
// snapshot per mutation of the collection.
func (s *Store) Subscribe(ctx context.Context, collection, orderField string, observer repository.SnapshotObserver) (repository.CancelFunc, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return nil, errClosed
	}
	s.nextSubID++
	sub := &subscription{
		id:         s.nextSubID,
		collection: collection,
		orderField: orderField,
		observer:   observer,
	}
	s.subs[sub.id] = sub
	initial := s.snapshotLocked(collection, orderField)
	s.deliverMu.Lock()
	s.mu.Unlock()

	if observer.OnSnapshot != nil {
		observer.OnSnapshot(initial)
	}
	s.deliverMu.Unlock()

	remove := func() {
		s.mu.Lock()
		delete(s.subs, sub.id)
		s.mu.Unlock()
	}
	stop := context.AfterFunc(ctx, remove)

	var once sync.Once

	return func() {
		once.Do(func() {
			stop()
			remove()
		})
	}, nil
}

// Append stores a document with a generated key in a child collection.
func (s *Store) Append(ctx context.Context, collection, key, child string, fields map[string]any) (string, error) {
	id := uuid.NewString()
	path := repository.ChildPath(collection, key, child)

	if err := s.mutate(ctx, path, func() error {
		s.ensureCollection(path)[id] = s.resolveSentinels(fields)

		return nil
	}); err != nil {
		return "", err
	}

	return id, nil
}

// ListChildren returns the documents of a child collection.
func (s *Store) ListChildren(ctx context.Context, collection, key, child, orderField string) ([]*repository.Document, error) {
	return s.List(ctx, repository.ChildPath(collection, key, child), orderField)
}

// Close drops every subscription and rejects further calls.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.subs = make(map[uint64]*subscription)

	return nil
}

// Fail terminates every subscription of collection with err, as a remote
// listener failure would.
func (s *Store) Fail(collection string, err error) {
	s.mu.Lock()
	var failed []*subscription
	for id, sub := range s.subs {
		if sub.collection == collection {
			failed = append(failed, sub)
			delete(s.subs, id)
		}
	}
	s.deliverMu.Lock()
	s.mu.Unlock()
	defer s.deliverMu.Unlock()

	for _, sub := range failed {
		if sub.observer.OnError != nil {
			sub.observer.OnError(err)
		}
	}
}

type pendingSnapshot struct {
	observer repository.SnapshotObserver
	docs     []*repository.Document
}

func (s *Store) mutate(ctx context.Context, collection string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return errClosed
	}

	if err := fn(); err != nil {
		s.mu.Unlock()

		return err
	}

	var pending []pendingSnapshot
	for _, sub := range s.subs {
		if sub.collection != collection || sub.observer.OnSnapshot == nil {
			continue
		}
		pending = append(pending, pendingSnapshot{
			observer: sub.observer,
			docs:     s.snapshotLocked(collection, sub.orderField),
		})
	}

	// Acquire the delivery lock before releasing the data lock so snapshots
	// reach observers in mutation order.
	s.deliverMu.Lock()
	s.mu.Unlock()
	defer s.deliverMu.Unlock()

	for _, p := range pending {
		p.observer.OnSnapshot(p.docs)
	}

	return nil
}

func (s *Store) ensureCollection(collection string) map[string]map[string]any {
	docs, ok := s.collections[collection]
	if !ok {
		docs = make(map[string]map[string]any)
		s.collections[collection] = docs
	}

	return docs
}

func (s *Store) snapshotLocked(collection, orderField string) []*repository.Document {
	docs := make([]*repository.Document, 0, len(s.collections[collection]))
	for key, fields := range s.collections[collection] {
		docs = append(docs, &repository.Document{Key: key, Fields: maps.Clone(fields)})
	}
	repository.SortDocuments(docs, orderField)

	return docs
}

func (s *Store) resolveSentinels(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if v == repository.ServerTimestamp {
			v = s.now()
		}
		out[k] = v
	}

	return out
}
