package history

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"locus/internal/domain/entity"
	mockRepo "locus/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Persist_PartialFailure(t *testing.T) {
	ctx := context.Background()
	repo := mockRepo.NewMockHistoryRepository(t)
	recorder := NewRecorder(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	entries := []entity.ChangeEntry{
		{Field: entity.FieldDescription, Previous: "Monitor", New: "Monitor LED"},
		{Field: entity.FieldState, Previous: "Novo", New: "Em uso"},
		{Field: entity.FieldLocation, Previous: "Sala 3", New: "Sala 4"},
	}
	writeErr := errors.New("deadline exceeded")

	repo.EXPECT().
		AppendChange(ctx, "PAT-001", mock.MatchedBy(func(e *entity.ChangeEntry) bool {
			return e.Field == entity.FieldState
		})).
		Return(writeErr).
		Once()
	repo.EXPECT().
		AppendChange(ctx, "PAT-001", mock.MatchedBy(func(e *entity.ChangeEntry) bool {
			return e.Field != entity.FieldState
		})).
		Return(nil).
		Twice()

	err := recorder.Persist(ctx, "PAT-001", entries)
	require.Error(t, err)

	partial, ok := IsPartialWrite(err)
	require.True(t, ok)
	assert.Equal(t, "PAT-001", partial.Code)
	assert.Equal(t, 3, partial.Total)
	require.Len(t, partial.Failed, 1)
	assert.Equal(t, entity.FieldState, partial.Failed[0].Entry.Field)
	assert.ErrorIs(t, err, writeErr)
	assert.Contains(t, err.Error(), "1 of 3 entries failed")
}

func TestIsPartialWrite_OtherError(t *testing.T) {
	_, ok := IsPartialWrite(errors.New("boom"))
	assert.False(t, ok)
}
