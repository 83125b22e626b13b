package handler

import (
	"log/slog"
	"net/http"

	"locus/internal/delivery/api/response"
	deliverycontext "locus/internal/delivery/context"
	"locus/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ScanHandlerParams holds dependencies for ScanHandler, injected by Fx.
type ScanHandlerParams struct {
	fx.In

	ResolverUC usecase.ResolverUsecase
	Logger     *slog.Logger
}

// ScanHandler drives scan sessions.
type ScanHandler struct {
	resolverUC usecase.ResolverUsecase
	logger     *slog.Logger
}

// NewScanHandler is the constructor for ScanHandler
func NewScanHandler(params ScanHandlerParams) *ScanHandler {
	return &ScanHandler{
		resolverUC: params.ResolverUC,
		logger:     params.Logger,
	}
}

// ScanRequest carries the raw payload decoded from a QR code.
type ScanRequest struct {
	Payload string `json:"payload"`
}

// OpenScanSession starts a scanner.
func (h *ScanHandler) OpenScanSession(c echo.Context) error {
	id := h.resolverUC.OpenScanSession(c.Request().Context(), scanOwner(c))

	return response.Success(c, http.StatusCreated, map[string]string{"id": id})
}

// Scan resolves one decoded payload.
func (h *ScanHandler) Scan(c echo.Context) error {
	var req ScanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid scan input")
	}

	resolution, err := h.resolverUC.Scan(c.Request().Context(), scanOwner(c), c.Param("id"), req.Payload)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, resolution)
}

// ReleaseScanSession re-arms the scanner once the client has navigated.
func (h *ScanHandler) ReleaseScanSession(c echo.Context) error {
	if err := h.resolverUC.ReleaseScanSession(c.Request().Context(), scanOwner(c), c.Param("id")); err != nil {
		return err
	}

	return response.NoContent(c)
}

// CloseScanSession discards the scanner.
func (h *ScanHandler) CloseScanSession(c echo.Context) error {
	if err := h.resolverUC.CloseScanSession(c.Request().Context(), scanOwner(c), c.Param("id")); err != nil {
		return err
	}

	return response.NoContent(c)
}

// scanOwner is the account that owns scanners opened by this request.
func scanOwner(c echo.Context) string {
	return deliverycontext.GetSession(c).AccountID
}
