package history

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"locus/internal/domain/entity"
	mockRepo "locus/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func baseAsset() *entity.Asset {
	return &entity.Asset{
		Code:        "PAT-001",
		Description: "Monitor",
		State:       entity.AssetStateNew,
		Location:    "Sala 3",
	}
}

func TestRecordChanges_CreateHasNoHistory(t *testing.T) {
	entries := RecordChanges(nil, baseAsset(), "ana@example.com", testTime)
	assert.Empty(t, entries)
}

func TestRecordChanges_IdenticalSubmission(t *testing.T) {
	entries := RecordChanges(baseAsset(), baseAsset(), "ana@example.com", testTime)
	assert.Empty(t, entries)
}

func TestRecordChanges_OneEntryPerChangedField(t *testing.T) {
	previous := baseAsset()
	submitted := baseAsset()
	submitted.Description = "Monitor LED"

	entries := RecordChanges(previous, submitted, "ana@example.com", testTime)

	require.Len(t, entries, 1)
	assert.Equal(t, entity.ChangeEntry{
		Field:     entity.FieldDescription,
		Previous:  "Monitor",
		New:       "Monitor LED",
		Actor:     "ana@example.com",
		ChangedAt: testTime,
	}, entries[0])
}

func TestRecordChanges_AbsentAndCaseSensitive(t *testing.T) {
	previous := baseAsset()
	submitted := baseAsset()
	submitted.Location = "sala 3"
	submitted.Brand = "Dell"
	submitted.ImageURL = "https://cdn.example.com/PAT-001.jpg"
	submitted.Code = "IGNORED"

	entries := RecordChanges(previous, submitted, "uid-1", testTime)

	fields := make([]string, 0, len(entries))
	for _, e := range entries {
		fields = append(fields, e.Field)
	}
	assert.Equal(t, []string{entity.FieldBrand, entity.FieldLocation, entity.FieldImageURL}, fields)
	assert.Equal(t, "", entries[0].Previous)
	assert.Equal(t, "Dell", entries[0].New)
}

func TestRecorder_Persist(t *testing.T) {
	ctx := context.Background()
	repo := mockRepo.NewMockHistoryRepository(t)
	recorder := NewRecorder(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	entries := []entity.ChangeEntry{
		{Field: entity.FieldDescription, Previous: "Monitor", New: "Monitor LED"},
		{Field: entity.FieldState, Previous: "Novo", New: "Em uso"},
	}

	repo.EXPECT().
		AppendChange(ctx, "PAT-001", mock.AnythingOfType("*entity.ChangeEntry")).
		Run(func(_ context.Context, _ string, entry *entity.ChangeEntry) {
			entry.ID = "id-" + entry.Field
		}).
		Return(nil).
		Twice()

	require.NoError(t, recorder.Persist(ctx, "PAT-001", entries))
	assert.Equal(t, "id-DESCRICAO", entries[0].ID)
	assert.Equal(t, "id-ESTADO", entries[1].ID)
}

func TestRecorder_Persist_Empty(t *testing.T) {
	repo := mockRepo.NewMockHistoryRepository(t)
	recorder := NewRecorder(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, recorder.Persist(context.Background(), "PAT-001", nil))
}
