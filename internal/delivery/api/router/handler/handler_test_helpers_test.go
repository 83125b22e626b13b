package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	apimiddleware "locus/internal/delivery/api/middleware"
	"locus/internal/delivery/api/response"
	"locus/internal/delivery/api/validator"
	deliverycontext "locus/internal/delivery/context"
	"locus/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func adminSession() *entity.Session {
	return &entity.Session{AccountID: "uid-admin", Email: "admin@example.com", Role: entity.RoleAdmin, State: entity.SessionResolved}
}

func userSession() *entity.Session {
	return &entity.Session{AccountID: "uid-user", Email: "ana@example.com", Role: entity.RoleUser, State: entity.SessionResolved}
}

// newTestEcho mirrors the API server's error handling and validation and
// authenticates every request as session.
func newTestEcho(session *entity.Session) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(newTestLogger()).HandleHTTPError
	e.Validator = validator.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetSession(c, session)

			return next(c)
		}
	})

	return e
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}
