package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "locus/internal/delivery/context"
	"locus/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ExportHandlerParams holds dependencies for ExportHandler, injected by Fx.
type ExportHandlerParams struct {
	fx.In

	ExportUC usecase.ExportUsecase
	Logger   *slog.Logger
}

// ExportHandler serves the inventory spreadsheet.
type ExportHandler struct {
	exportUC usecase.ExportUsecase
	logger   *slog.Logger
}

// NewExportHandler is the constructor for ExportHandler
func NewExportHandler(params ExportHandlerParams) *ExportHandler {
	return &ExportHandler{
		exportUC: params.ExportUC,
		logger:   params.Logger,
	}
}

// Export downloads every asset as a spreadsheet attachment.
func (h *ExportHandler) Export(c echo.Context) error {
	file, err := h.exportUC.Export(c.Request().Context(), deliverycontext.GetSession(c))
	if err != nil {
		return err
	}

	header := c.Response().Header()
	header.Set(echo.HeaderContentDisposition, `attachment; filename="`+sanitizeFileName(file.Name)+`"`)
	header.Set("X-Export-Rows", strconv.Itoa(file.Rows))

	return c.Blob(http.StatusOK, file.ContentType, file.Data)
}
