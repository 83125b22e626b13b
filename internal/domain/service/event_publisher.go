package service

import (
	"context"
	"time"
)

// AssetEventType enumerates asset lifecycle events.
type AssetEventType string

const (
	AssetCreated AssetEventType = "asset.created"
	AssetUpdated AssetEventType = "asset.updated"
	AssetDeleted AssetEventType = "asset.deleted"
)

// AssetEventSchema names the wire format of AssetEvent. Publishers send it as
// the "schema" message attribute.
const AssetEventSchema = "locus.asset-event.v1"

// AssetEvent announces a committed asset mutation to downstream consumers
type AssetEvent struct {
	RequestID     string         `json:"request_id,omitempty"` // For distributed tracing
	EventID       string         `json:"event_id"`
	Type          AssetEventType `json:"type"`
	Code          string         `json:"code"`
	Actor         string         `json:"actor"`
	ChangedFields []string       `json:"changed_fields,omitempty"` // Only for updates
	OccurredAt    time.Time      `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAssetEvent publishes an asset event
	PublishAssetEvent(ctx context.Context, event *AssetEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
