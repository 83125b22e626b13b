package handler

import (
	"log/slog"
	"net/http"

	"locus/internal/delivery/api/response"
	deliverycontext "locus/internal/delivery/context"
	"locus/internal/domain/access"
	"locus/internal/domain/entity"
	"locus/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler exposes the caller's resolved session.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// SessionResponse is the session of the caller together with what it may do.
type SessionResponse struct {
	Session      *entity.Session     `json:"session"`
	Capabilities access.Capabilities `json:"capabilities"`
}

// GetSession returns the caller's session and capabilities.
func (h *SessionHandler) GetSession(c echo.Context) error {
	session := deliverycontext.GetSession(c)

	return response.Success(c, http.StatusOK, SessionResponse{
		Session:      session,
		Capabilities: access.CapabilitiesOf(session),
	})
}

// SignOut applies a sign-out event. Tokens are stateless so the client
// discards its token; the response is the resulting unauthenticated session.
func (h *SessionHandler) SignOut(c echo.Context) error {
	session, err := h.sessionUC.HandleEvent(c.Request().Context(), entity.IdentityEvent{Type: entity.IdentitySignOut})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, SessionResponse{
		Session:      session,
		Capabilities: access.CapabilitiesOf(session),
	})
}
