// Package history computes and persists the field-level change log of assets.
package history

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"locus/internal/domain/entity"
	"locus/internal/domain/repository"

	"github.com/pkg/errors"
)

// RecordChanges returns one entry per tracked field whose value differs
// between previous and submitted. Absent values compare as the empty string
// and the comparison is exact. A nil previous means the asset is being
// created, which has no history.
func RecordChanges(previous, submitted *entity.Asset, actor string, at time.Time) []entity.ChangeEntry {
	if previous == nil {
		return nil
	}

	var entries []entity.ChangeEntry
	for _, field := range entity.TrackedFields {
		before := previous.FieldValue(field)
		after := submitted.FieldValue(field)
		if before == after {
			continue
		}
		entries = append(entries, entity.ChangeEntry{
			Field:     field,
			Previous:  before,
			New:       after,
			Actor:     actor,
			ChangedAt: at,
		})
	}

	return entries
}

// PartialHistoryWriteError reports entries that could not be appended after
// the asset itself was written. The asset write is not rolled back.
type PartialHistoryWriteError struct {
	Code   string
	Failed []FailedEntry
	Total  int
}

// FailedEntry pairs an entry with the error that prevented its append.
type FailedEntry struct {
	Entry entity.ChangeEntry
	Err   error
}

func (e *PartialHistoryWriteError) Error() string {
	return fmt.Sprintf("history of %s: %d of %d entries failed to persist", e.Code, len(e.Failed), e.Total)
}

// Unwrap returns the error of the first failed entry.
func (e *PartialHistoryWriteError) Unwrap() error {
	if len(e.Failed) == 0 {
		return nil
	}

	return e.Failed[0].Err
}

// Recorder appends change entries to an asset's history.
type Recorder struct {
	repo   repository.HistoryRepository
	logger *slog.Logger
}

// NewRecorder creates a Recorder.
func NewRecorder(repo repository.HistoryRepository, logger *slog.Logger) *Recorder {
	return &Recorder{repo: repo, logger: logger}
}

// Persist appends every entry independently. Entries that fail do not stop
// the rest; they are reported together as a *PartialHistoryWriteError.
// Persisted entries receive the id assigned by the store.
func (r *Recorder) Persist(ctx context.Context, code string, entries []entity.ChangeEntry) error {
	if len(entries) == 0 {
		return nil
	}

	var failed []FailedEntry
	for i := range entries {
		if err := r.repo.AppendChange(ctx, code, &entries[i]); err != nil {
			r.logger.Warn("Failed to append history entry",
				slog.String("code", code),
				slog.String("field", entries[i].Field),
				slog.Any("error", err),
			)
			failed = append(failed, FailedEntry{Entry: entries[i], Err: err})
		}
	}

	if len(failed) > 0 {
		return &PartialHistoryWriteError{Code: code, Failed: failed, Total: len(entries)}
	}

	return nil
}

// IsPartialWrite reports whether err is a *PartialHistoryWriteError and returns it.
func IsPartialWrite(err error) (*PartialHistoryWriteError, bool) {
	var partial *PartialHistoryWriteError
	if errors.As(err, &partial) {
		return partial, true
	}

	return nil, false
}
