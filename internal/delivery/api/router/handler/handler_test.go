package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"locus/internal/domain/access"
	"locus/internal/domain/entity"
	domainerrors "locus/internal/domain/errors"
	mockUsecase "locus/internal/mocks/usecase"
	"locus/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	e.GET("/health", HealthCheck)

	rec := serve(e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionHandler(t *testing.T) {
	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	h := NewSessionHandler(SessionHandlerParams{SessionUC: sessionUC, Logger: newTestLogger()})

	e := newTestEcho(adminSession())
	e.GET("/session", h.GetSession)
	e.POST("/session/sign-out", h.SignOut)

	t.Run("current session with capabilities", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/session", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data SessionResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "uid-admin", body.Data.Session.AccountID)
		assert.Equal(t, access.Capabilities{CanDelete: true, CanExport: true, CanChangeRole: true}, body.Data.Capabilities)
	})

	t.Run("sign-out yields unauthenticated", func(t *testing.T) {
		sessionUC.EXPECT().HandleEvent(mock.Anything, entity.IdentityEvent{Type: entity.IdentitySignOut}).
			Return(entity.NewUnauthenticatedSession(), nil).Once()

		rec := serve(e, http.MethodPost, "/session/sign-out", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data SessionResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, access.Capabilities{}, body.Data.Capabilities)
	})
}

func TestScanHandler(t *testing.T) {
	resolverUC := mockUsecase.NewMockResolverUsecase(t)
	h := NewScanHandler(ScanHandlerParams{ResolverUC: resolverUC, Logger: newTestLogger()})

	e := newTestEcho(userSession())
	e.POST("/scan-sessions", h.OpenScanSession)
	e.POST("/scan-sessions/:id/scans", h.Scan)
	e.POST("/scan-sessions/:id/release", h.ReleaseScanSession)
	e.DELETE("/scan-sessions/:id", h.CloseScanSession)

	resolverUC.EXPECT().OpenScanSession(mock.Anything, userSession().AccountID).Return("scan-1").Once()
	rec := serve(e, http.MethodPost, "/scan-sessions", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"scan-1"`)

	resolverUC.EXPECT().Scan(mock.Anything, userSession().AccountID, "scan-1", "PAT-001").
		Return(&usecase.Resolution{Mode: usecase.ResolutionCreate, Code: "PAT-001"}, nil).Once()
	rec = serve(e, http.MethodPost, "/scan-sessions/scan-1/scans", `{"payload":"PAT-001"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"mode":"create"`)

	resolverUC.EXPECT().Scan(mock.Anything, userSession().AccountID, "scan-1", "PAT-002").
		Return(nil, errors.WithStack(domainerrors.ErrScanInProgress)).Once()
	rec = serve(e, http.MethodPost, "/scan-sessions/scan-1/scans", `{"payload":"PAT-002"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	resolverUC.EXPECT().ReleaseScanSession(mock.Anything, userSession().AccountID, "scan-1").Return(nil).Once()
	rec = serve(e, http.MethodPost, "/scan-sessions/scan-1/release", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	resolverUC.EXPECT().CloseScanSession(mock.Anything, userSession().AccountID, "scan-9").
		Return(errors.WithStack(domainerrors.ErrScanSessionNotFound)).Once()
	rec = serve(e, http.MethodDelete, "/scan-sessions/scan-9", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminHandler(t *testing.T) {
	adminUC := mockUsecase.NewMockAdminUsecase(t)
	h := NewAdminHandler(AdminHandlerParams{AdminUC: adminUC, Logger: newTestLogger()})

	e := newTestEcho(adminSession())
	e.GET("/admin/users", h.ListUsers)
	e.PUT("/admin/users/:uid/role", h.ChangeRole)

	adminUC.EXPECT().ListUsers(mock.Anything, adminSession(), "ana").
		Return([]*entity.UserProfile{{UID: "uid-user", Email: "ana@example.com", Role: entity.RoleUser}}, nil).Once()
	rec := serve(e, http.MethodGet, "/admin/users?q=ana", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":1`)

	adminUC.EXPECT().ChangeRole(mock.Anything, adminSession(), "uid-user", entity.RoleAdmin).
		Return(&entity.UserProfile{UID: "uid-user", Role: entity.RoleAdmin}, nil).Once()
	rec = serve(e, http.MethodPut, "/admin/users/uid-user/role", `{"role":"admin"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	t.Run("unknown role rejected before the use case", func(t *testing.T) {
		rec := serve(e, http.MethodPut, "/admin/users/uid-user/role", `{"role":"owner"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
	})
}

func TestExportHandler(t *testing.T) {
	exportUC := mockUsecase.NewMockExportUsecase(t)
	h := NewExportHandler(ExportHandlerParams{ExportUC: exportUC, Logger: newTestLogger()})

	e := newTestEcho(adminSession())
	e.GET("/export", h.Export)

	exportUC.EXPECT().Export(mock.Anything, adminSession()).Return(&usecase.ExportFile{
		Name:        "patrimonio.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        []byte("xlsx"),
		Rows:        2,
	}, nil).Once()

	rec := serve(e, http.MethodGet, "/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="patrimonio.xlsx"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, "2", rec.Header().Get("X-Export-Rows"))
	assert.Equal(t, "xlsx", rec.Body.String())

	exportUC.EXPECT().Export(mock.Anything, adminSession()).Return(nil, errors.WithStack(domainerrors.ErrNothingToExport)).Once()
	rec = serve(e, http.MethodGet, "/export", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
