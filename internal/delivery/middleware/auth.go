package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "locus/internal/delivery/context"
	domainerrors "locus/internal/domain/errors"
	"locus/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware resolves the caller's session from a bearer token.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessionUC usecase.SessionUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{sessionUC: sessionUC, logger: logger}
}

// Authenticate rejects requests without a valid bearer token and stores the
// resolved session on the context for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			return errors.Wrap(domainerrors.ErrUnauthenticated, "missing bearer token")
		}

		session, err := m.sessionUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return err
		}

		deliverycontext.SetSession(c, session)

		// Enrich the request-scoped logger with the account.
		ctx := c.Request().Context()
		reqLogger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("account_id", session.AccountID))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, reqLogger)))

		return next(c)
	}
}

// bearerToken reads the Authorization header, falling back to the access_token
// query parameter for browser EventSource and WebSocket clients that cannot set headers.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}

	return strings.TrimSpace(c.QueryParam("access_token"))
}
