package pubsub

import (
	"encoding/json"

	"locus/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	"github.com/pkg/errors"
)

// newEventMessage encodes an asset event the same way for every transport.
// Events of one asset share an ordering key.
func newEventMessage(event *service.AssetEvent) (*pubsub.Message, error) {
	if event == nil || event.Code == "" {
		return nil, errors.New("asset event without code")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		"schema":     service.AssetEventSchema,
		"event_id":   event.EventID,
		"event_type": string(event.Type),
		"code":       event.Code,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return &pubsub.Message{
		ID:          event.EventID,
		Data:        data,
		Attributes:  attributes,
		OrderingKey: event.Code,
		PublishTime: event.OccurredAt.UTC(),
	}, nil
}
