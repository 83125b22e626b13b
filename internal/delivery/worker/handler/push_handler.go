// Package handler receives Pub/Sub push deliveries of asset events.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"locus/config"
	deliverycontext "locus/internal/delivery/context"
	"locus/internal/domain/constants"
	domainerrors "locus/internal/domain/errors"
	"locus/internal/domain/service"
	"locus/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage is the body of a Pub/Sub push request.
type PubSubMessage struct {
	Message      PushedMessage `json:"message"`
	Subscription string        `json:"subscription"`
}

// PushedMessage is the message inside a push request. Data is base64.
type PushedMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// errMalformedPush marks deliveries that can never be processed.
var errMalformedPush = errors.New("malformed push message")

// tokenVerifier checks the OIDC token attached to a push request.
type tokenVerifier func(req *http.Request) error

// PushHandler handles Pub/Sub push messages carrying asset events
type PushHandler struct {
	verifyPush tokenVerifier
	logger     *slog.Logger
	eventUC    usecase.AssetEventUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	EventUC usecase.AssetEventUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:  params.Logger,
		eventUC: params.EventUC,
	}

	// Only Google push requests carry a token; local development posts plain JSON.
	if params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop {
		h.verifyPush = verifyPubSubToken
	}

	return h
}

// HandlePush handles incoming Pub/Sub push messages. A 503 asks Pub/Sub to
// redeliver; every other outcome is acknowledged.
func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.verifyPush != nil {
		if err := h.verifyPush(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	pushMsg, event, err := decodePush(c)
	if err != nil {
		h.logger.Error("[Worker] Rejected push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(c.Request().Context(), pushMsg, event)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("event_id", event.EventID),
	)

	if schema := pushMsg.Message.Attributes["schema"]; schema != "" && schema != service.AssetEventSchema {
		// A newer publisher; redelivering would not help this worker.
		reqLogger.Warn("[Worker] Dropping event with unknown schema", slog.String("schema", schema))

		return c.NoContent(http.StatusOK)
	}

	ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing asset event",
		slog.String("event_type", string(event.Type)),
		slog.String("code", event.Code),
	)

	err = h.eventUC.HandleAssetEvent(ctx, event)
	switch {
	case err == nil:
		return c.NoContent(http.StatusOK)
	case domainerrors.IsStoreUnavailable(err):
		reqLogger.Warn("[Worker] Asset event will be redelivered", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	default:
		reqLogger.Error("[Worker] Asset event dropped", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}
}

// decodePush binds the push body and unwraps the asset event it carries.
func decodePush(c echo.Context) (*PubSubMessage, *service.AssetEvent, error) {
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		return nil, nil, errors.Wrap(errMalformedPush, err.Error())
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		return nil, nil, errors.Wrap(errMalformedPush, "data is not base64")
	}

	var event service.AssetEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, nil, errors.Wrap(errMalformedPush, "data is not an asset event")
	}

	return &pushMsg, &event, nil
}

// extractRequestID prefers message attributes, then the event payload, then
// the X-Request-Id of the push request, and finally a fresh id.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.AssetEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
