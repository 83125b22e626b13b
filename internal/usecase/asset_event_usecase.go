package usecase

import (
	"context"

	"locus/internal/domain/service"
)

// AssetEventUsecase reacts to asset events delivered by the message topic.
type AssetEventUsecase interface {
	// HandleAssetEvent processes one event. Returned errors wrapping
	// StoreUnavailable are worth redelivering.
	HandleAssetEvent(ctx context.Context, event *service.AssetEvent) error
}
