package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"locus/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu        sync.Mutex
	snapshots [][]*repository.Document
	errs      []error
}

func (r *recorder) observer() repository.SnapshotObserver {
	return repository.SnapshotObserver{
		OnSnapshot: func(docs []*repository.Document) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.snapshots = append(r.snapshots, docs)
		},
		OnError: func(err error) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.errs = append(r.errs, err)
		},
	}
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.snapshots)
}

func (r *recorder) last() []*repository.Document {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.snapshots[len(r.snapshots)-1]
}

func TestStore_GetSetUpdate(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	_, err := store.Get(ctx, "patrimonio", "PAT-001")
	assert.ErrorIs(t, err, repository.ErrDocumentNotFound)

	err = store.Update(ctx, "patrimonio", "PAT-001", map[string]any{"ESTADO": "Novo"})
	assert.ErrorIs(t, err, repository.ErrDocumentNotFound)

	require.NoError(t, store.Set(ctx, "patrimonio", "PAT-001", map[string]any{"DESCRICAO": "Notebook", "ESTADO": "Novo"}))
	require.NoError(t, store.Update(ctx, "patrimonio", "PAT-001", map[string]any{"ESTADO": "Em uso"}))

	doc, err := store.Get(ctx, "patrimonio", "PAT-001")
	require.NoError(t, err)
	assert.Equal(t, "PAT-001", doc.Key)
	assert.Equal(t, "Notebook", doc.Fields["DESCRICAO"])
	assert.Equal(t, "Em uso", doc.Fields["ESTADO"])

	// Returned documents are copies.
	doc.Fields["DESCRICAO"] = "mutated"
	again, err := store.Get(ctx, "patrimonio", "PAT-001")
	require.NoError(t, err)
	assert.Equal(t, "Notebook", again.Fields["DESCRICAO"])
}

func TestStore_SubscribeDeliversInitialAndOrderedSnapshots(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	require.NoError(t, store.Set(ctx, "patrimonio", "B", map[string]any{"DESCRICAO": "Mesa"}))

	rec := &recorder{}
	cancel, err := store.Subscribe(ctx, "patrimonio", "DESCRICAO", rec.observer())
	require.NoError(t, err)
	defer cancel()

	require.Equal(t, 1, rec.count())
	assert.Len(t, rec.last(), 1)

	require.NoError(t, store.Set(ctx, "patrimonio", "A", map[string]any{"DESCRICAO": "Cadeira"}))
	require.Equal(t, 2, rec.count())
	last := rec.last()
	require.Len(t, last, 2)
	assert.Equal(t, "A", last[0].Key)
	assert.Equal(t, "B", last[1].Key)

	// Writes to other collections do not notify.
	require.NoError(t, store.Set(ctx, "users", "uid-1", map[string]any{"role": "user"}))
	assert.Equal(t, 2, rec.count())
}

func TestStore_CancelStopsDeliveryAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	rec := &recorder{}
	cancel, err := store.Subscribe(ctx, "patrimonio", "DESCRICAO", rec.observer())
	require.NoError(t, err)

	cancel()
	cancel()

	require.NoError(t, store.Set(ctx, "patrimonio", "A", map[string]any{"DESCRICAO": "Cadeira"}))
	assert.Equal(t, 1, rec.count())
}

func TestStore_ContextCancelEndsSubscription(t *testing.T) {
	ctx, cancelCtx := context.WithCancel(context.Background())
	store := NewStore()

	rec := &recorder{}
	cancel, err := store.Subscribe(ctx, "patrimonio", "", rec.observer())
	require.NoError(t, err)
	defer cancel()

	cancelCtx()
	assert.Eventually(t, func() bool {
		store.mu.Lock()
		defer store.mu.Unlock()

		return len(store.subs) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestStore_AppendAndDeleteCascade(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	require.NoError(t, store.Set(ctx, "patrimonio", "PAT-001", map[string]any{"DESCRICAO": "Notebook"}))

	id, err := store.Append(ctx, "patrimonio", "PAT-001", "historico", map[string]any{
		"campo": "ESTADO",
		"data":  repository.ServerTimestamp,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	children, err := store.ListChildren(ctx, "patrimonio", "PAT-001", "historico", "data")
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.IsType(t, time.Time{}, children[0].Fields["data"])

	require.NoError(t, store.Delete(ctx, "patrimonio", "PAT-001"))

	children, err = store.ListChildren(ctx, "patrimonio", "PAT-001", "historico", "data")
	require.NoError(t, err)
	assert.Empty(t, children)
}

func TestStore_FailTerminatesSubscriptions(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	rec := &recorder{}
	_, err := store.Subscribe(ctx, "patrimonio", "", rec.observer())
	require.NoError(t, err)

	boom := errors.New("listener revoked")
	store.Fail("patrimonio", boom)

	require.Len(t, rec.errs, 1)
	assert.Equal(t, boom, rec.errs[0])

	require.NoError(t, store.Set(ctx, "patrimonio", "A", map[string]any{}))
	assert.Equal(t, 1, rec.count())
}

func TestStore_Closed(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	require.NoError(t, store.Close())

	assert.Error(t, store.Set(ctx, "patrimonio", "A", map[string]any{}))
	_, err := store.Get(ctx, "patrimonio", "A")
	assert.Error(t, err)
	_, err = store.Subscribe(ctx, "patrimonio", "", repository.SnapshotObserver{})
	assert.Error(t, err)
}
