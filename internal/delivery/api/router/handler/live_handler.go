package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"locus/config"
	deliverycontext "locus/internal/delivery/context"
	domainerrors "locus/internal/domain/errors"
	"locus/internal/domain/liveview"
	"locus/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	keepAliveInterval = 30 * time.Second
	wsPongWait        = 60 * time.Second
	wsWriteWait       = 10 * time.Second
	wsReadLimit       = 4096
)

// LiveHandlerParams holds dependencies for LiveHandler, injected by Fx.
type LiveHandlerParams struct {
	fx.In

	AssetUC usecase.AssetUsecase
	Config  *config.Config
	Logger  *slog.Logger
}

// LiveHandler pushes live view snapshots over Server-Sent Events and WebSocket.
type LiveHandler struct {
	assetUC  usecase.AssetUsecase
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewLiveHandler is the constructor for LiveHandler
func NewLiveHandler(params LiveHandlerParams) *LiveHandler {
	var allowed []string
	if params.Config != nil {
		allowed = params.Config.HTTP.AllowedOrigins
	}

	return &LiveHandler{
		assetUC: params.AssetUC,
		logger:  params.Logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     originChecker(allowed),
		},
	}
}

// originChecker accepts upgrades from the configured browser origins. The
// socket is authenticated by bearer token or access_token, never by cookie,
// so an empty list allows any origin. Requests without Origin come from
// non-browser clients and are always accepted.
func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if len(allowed) == 0 || origin == "" {
			return true
		}

		return slices.ContainsFunc(allowed, func(o string) bool {
			return o == "*" || strings.EqualFold(o, origin)
		})
	}
}

// LiveMessage is one frame pushed to a live client.
type LiveMessage struct {
	Type     string             `json:"type"` // "snapshot" or "error"
	Snapshot *liveview.Snapshot `json:"snapshot,omitempty"`
	Error    *LiveError         `json:"error,omitempty"`
}

// LiveError describes why a live view stopped.
type LiveError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FilterMessage is sent by WebSocket clients to change the view's filter.
type FilterMessage struct {
	Type   string          `json:"type"` // "filter"
	Filter liveview.Filter `json:"filter"`
}

// Stream serves a live view as text/event-stream. The filter comes from the
// query string; each snapshot is one "snapshot" event.
func (h *LiveHandler) Stream(c echo.Context) error {
	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	view, err := h.assetUC.WatchAssets(ctx, deliverycontext.GetSession(c), c.QueryParam("order"))
	if err != nil {
		return err
	}
	defer view.Close()

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)

	initial := view.SetFilter(filterFromQuery(c))
	if err := writeEvent(res, "snapshot", initial); err != nil {
		return nil
	}
	last := initial.Version

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-keepAlive.C:
			if _, err := fmt.Fprint(res, ": keep-alive\n\n"); err != nil {
				return nil
			}
			res.Flush()
		case snapshot, ok := <-view.Updates():
			if !ok {
				if viewErr := view.Err(); viewErr != nil {
					logger.Warn("Live stream ended by store error", slog.Any("error", viewErr))
					_ = writeEvent(res, "error", liveErrorOf(viewErr))
				}

				return nil
			}
			if !supersedes(snapshot, &last) {
				continue
			}
			if err := writeEvent(res, "snapshot", snapshot); err != nil {
				logger.Debug("Live stream client went away", slog.Any("error", err))

				return nil
			}
		}
	}
}

// Live serves a live view over WebSocket. Clients send FilterMessage frames;
// the server answers every notification and filter change with a snapshot.
func (h *LiveHandler) Live(c echo.Context) error {
	session := deliverycontext.GetSession(c)

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	view, err := h.assetUC.WatchAssets(ctx, session, c.QueryParam("order"))
	if err != nil {
		return err
	}
	defer view.Close()

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already written an HTTP error.
		return nil
	}
	defer conn.Close()

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	filters := make(chan liveview.Filter)
	go h.readFilters(ctx, cancel, conn, filters, logger)

	initial := view.Snapshot()
	if err := writeFrame(conn, LiveMessage{Type: "snapshot", Snapshot: &initial}); err != nil {
		return nil
	}
	last := initial.Version

	ping := time.NewTicker(keepAliveInterval)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(wsWriteWait))

			return nil
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
				return nil
			}
		case filter := <-filters:
			// SetFilter also queues the snapshot on Updates; it is written from there.
			view.SetFilter(filter)
		case snapshot, ok := <-view.Updates():
			if !ok {
				if viewErr := view.Err(); viewErr != nil {
					logger.Warn("Live socket ended by store error", slog.Any("error", viewErr))
					_ = writeFrame(conn, LiveMessage{Type: "error", Error: liveErrorOf(viewErr)})
				}
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "live view closed"), time.Now().Add(wsWriteWait))

				return nil
			}
			if !supersedes(snapshot, &last) {
				continue
			}
			if err := writeFrame(conn, LiveMessage{Type: "snapshot", Snapshot: &snapshot}); err != nil {
				logger.Debug("Live socket write failed", slog.Any("error", err))

				return nil
			}
		}
	}
}

// readFilters is the only reader of conn. It stops the view when the client goes away.
func (h *LiveHandler) readFilters(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, filters chan<- liveview.Filter, logger *slog.Logger) {
	defer cancel()

	conn.SetReadLimit(wsReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	for {
		var msg FilterMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debug("Live socket read failed", slog.Any("error", err))
			}

			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))

		if msg.Type != "filter" {
			continue
		}

		select {
		case filters <- msg.Filter:
		case <-ctx.Done():
			return
		}
	}
}

func writeEvent(res *echo.Response, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}
	if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return errors.WithStack(err)
	}
	res.Flush()

	return nil
}

func writeFrame(conn *websocket.Conn, msg LiveMessage) error {
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))

	return errors.WithStack(conn.WriteJSON(msg))
}

func liveErrorOf(err error) *LiveError {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return &LiveError{Code: appErr.ErrorCode(), Message: appErr.Message()}
	}

	return &LiveError{Code: domainerrors.ErrInternalError.ErrorCode(), Message: domainerrors.ErrInternalError.Message()}
}

// supersedes reports whether snapshot is newer than the last one written and
// advances last. Clients only ever see increasing versions.
func supersedes(snapshot liveview.Snapshot, last *uint64) bool {
	if snapshot.Version <= *last {
		return false
	}
	*last = snapshot.Version

	return true
}
