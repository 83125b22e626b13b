// Package context carries per-request values between middleware, handlers and
// use cases: the request id, the request-scoped logger and the caller's session.
package context

import (
	"context"
	"log/slog"

	"locus/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header name for request ID.
const HeaderXRequestID = "X-Request-Id"

type contextKey string

const (
	keyRequestID contextKey = "request_id"
	keyLogger    contextKey = "logger"
	keySession   contextKey = "session"
)

// SetRequestID stores the request id on c.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(keyRequestID), requestID)
}

// GetRequestID returns the request id stored on c, or "" outside the
// request-id middleware.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(keyRequestID)).(string); ok {
		return id
	}

	return GetRequestIDFromContext(c.Request().Context())
}

// WithRequestID returns a copy of ctx carrying requestID. Use cases read it
// back to stamp published asset events.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// GetRequestIDFromContext returns the request id carried by ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)

	return id
}

// WithLogger returns a copy of ctx carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(keyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// SetSession stores the resolved session of the caller.
func SetSession(c echo.Context, session *entity.Session) {
	c.Set(string(keySession), session)
}

// GetSession returns the caller's session, or an unauthenticated one when
// the route is not behind the auth middleware.
func GetSession(c echo.Context) *entity.Session {
	if session, ok := c.Get(string(keySession)).(*entity.Session); ok && session != nil {
		return session
	}

	return entity.NewUnauthenticatedSession()
}
