package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"locus/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	"github.com/pkg/errors"
)

const (
	pushTimeout      = 10 * time.Second
	pushSubscription = "projects/local/subscriptions/locus-asset-events"
)

// pushEnvelope is the body Pub/Sub POSTs to a push subscription endpoint.
type pushEnvelope struct {
	Message      pushedMessage `json:"message"`
	Subscription string        `json:"subscription"`
}

type pushedMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

func newPushEnvelope(msg *pubsub.Message) pushEnvelope {
	return pushEnvelope{
		Subscription: pushSubscription,
		Message: pushedMessage{
			Data:        base64.StdEncoding.EncodeToString(msg.Data),
			Attributes:  msg.Attributes,
			MessageID:   msg.ID,
			PublishTime: msg.PublishTime.Format(time.RFC3339),
		},
	}
}

// pushPublisher delivers events straight to a worker's /push endpoint, the
// way a Pub/Sub push subscription would. Used for local development.
type pushPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewPushPublisher returns an EventPublisher that POSTs push envelopes to endpoint.
func NewPushPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &pushPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: pushTimeout},
		logger:   logger,
	}
}

func (p *pushPublisher) PublishAssetEvent(ctx context.Context, event *service.AssetEvent) error {
	msg, err := newEventMessage(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(newPushEnvelope(msg))
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push %s for %s", event.Type, event.Code)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("push endpoint answered %d for %s", resp.StatusCode, event.EventID)
	}

	p.logger.Debug("Asset event pushed",
		slog.String("endpoint", p.endpoint),
		slog.String("event_type", string(event.Type)),
		slog.String("code", event.Code),
	)

	return nil
}

func (p *pushPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
