// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrDocumentNotFound is returned by RecordStore when a keyed document is absent.
var ErrDocumentNotFound = errors.New("document not found")

type sentinel int

// ServerTimestamp may be used as a field value on writes. Drivers replace it
// with the store's own clock at write time.
const ServerTimestamp sentinel = 1

// Document is a keyed bag of fields in a collection.
type Document struct {
	Key    string
	Fields map[string]any
}

// SnapshotObserver receives the full ordered result of a subscribed query each
// time it changes. OnError is terminal: no snapshot follows it.
type SnapshotObserver struct {
	OnSnapshot func(docs []*Document)
	OnError    func(err error)
}

// CancelFunc stops a subscription. It is safe to call more than once.
type CancelFunc func()

// RecordStore is the remote document store shared by every client.
// Snapshots of one subscription are delivered sequentially, in order.
type RecordStore interface {
	// Get returns the document stored under key, or ErrDocumentNotFound.
	Get(ctx context.Context, collection, key string) (*Document, error)

	// Set creates or replaces the document stored under key.
	Set(ctx context.Context, collection, key string, fields map[string]any) error

	// Update merges fields into an existing document, or returns ErrDocumentNotFound.
	Update(ctx context.Context, collection, key string, fields map[string]any) error

	// Delete removes the document and every nested child collection under it.
	Delete(ctx context.Context, collection, key string) error

	// List returns every document of the collection ordered ascending by orderField.
	List(ctx context.Context, collection, orderField string) ([]*Document, error)

	// Subscribe delivers the current result of the query and every later change.
	Subscribe(ctx context.Context, collection, orderField string, observer SnapshotObserver) (CancelFunc, error)

	// Append adds a document with a generated key to a child collection of a document.
	Append(ctx context.Context, collection, key, child string, fields map[string]any) (string, error)

	// ListChildren returns the documents of a child collection ordered ascending by orderField.
	ListChildren(ctx context.Context, collection, key, child, orderField string) ([]*Document, error)

	// Close releases the underlying client.
	Close() error
}

// ErrInvalidKey is returned for keys that cannot name exactly one document.
var ErrInvalidKey = errors.New("invalid document key")

// ValidateKey rejects keys that would address a path instead of a single
// document: empty keys, keys containing "/", "." and "..", and keys of the
// form __name__ that Firestore reserves. Child collections live under
// collection/key/child, so a key containing "/" would share a prefix with
// another record's children.
func ValidateKey(key string) error {
	switch {
	case key == "", key == ".", key == "..":
		return errors.Wrapf(ErrInvalidKey, "%q", key)
	case strings.Contains(key, "/"):
		return errors.Wrapf(ErrInvalidKey, "%q contains '/'", key)
	case len(key) > 4 && strings.HasPrefix(key, "__") && strings.HasSuffix(key, "__"):
		return errors.Wrapf(ErrInvalidKey, "%q is reserved", key)
	}

	return nil
}

// ChildPath returns the collection path of a child collection.
func ChildPath(collection, key, child string) string {
	return collection + "/" + key + "/" + child
}

// SortDocuments orders docs ascending by the value of field, breaking ties by key.
// Drivers without server-side ordering use it to match query semantics.
func SortDocuments(docs []*Document, field string) {
	sort.SliceStable(docs, func(i, j int) bool {
		if field != "" {
			if c := compareValues(docs[i].Fields[field], docs[j].Fields[field]); c != 0 {
				return c < 0
			}
		}

		return docs[i].Key < docs[j].Key
	})
}

func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			return at.Compare(bt)
		}
	}

	if af, ok := toFloat(a); ok {
		if bf, ok := toFloat(b); ok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}

	as, bs := fmt.Sprint(a), fmt.Sprint(b)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	default:
		return 0, false
	}
}
