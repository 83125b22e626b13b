package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"locus/internal/delivery/api/response"
	deliverycontext "locus/internal/delivery/context"
	"locus/internal/domain/entity"
	"locus/internal/domain/liveview"
	"locus/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AssetHandlerParams holds dependencies for AssetHandler, injected by Fx.
type AssetHandlerParams struct {
	fx.In

	AssetUC usecase.AssetUsecase
	Logger  *slog.Logger
}

// AssetHandler serves asset records, their history, labels and photos.
type AssetHandler struct {
	assetUC usecase.AssetUsecase
	logger  *slog.Logger
}

// NewAssetHandler is the constructor for AssetHandler
func NewAssetHandler(params AssetHandlerParams) *AssetHandler {
	return &AssetHandler{
		assetUC: params.AssetUC,
		logger:  params.Logger,
	}
}

// AssetRequest is the body of create and update requests.
type AssetRequest struct {
	Code         string `json:"code"`
	Description  string `json:"description"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`
	State        string `json:"state"`
	Location     string `json:"location"`
	Sector       string `json:"sector"`
	ImageBase64  string `json:"image_base64"`
}

func (r AssetRequest) toInput() usecase.AssetInput {
	return usecase.AssetInput{
		Description:  r.Description,
		Brand:        r.Brand,
		Model:        r.Model,
		SerialNumber: r.SerialNumber,
		State:        r.State,
		Location:     r.Location,
		Sector:       r.Sector,
		ImageBase64:  r.ImageBase64,
	}
}

// ListAssets returns a one-shot filtered listing.
func (h *AssetHandler) ListAssets(c echo.Context) error {
	snapshot, err := h.assetUC.ListAssets(c.Request().Context(), deliverycontext.GetSession(c), usecase.ListAssetsInput{
		OrderField: c.QueryParam("order"),
		Filter:     filterFromQuery(c),
	})
	if err != nil {
		return err
	}

	return response.List(c, snapshot, len(snapshot.Filtered))
}

// CreateAsset stores a new asset under the code in the body.
func (h *AssetHandler) CreateAsset(c echo.Context) error {
	var req AssetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid asset input")
	}

	asset, err := h.assetUC.CreateAsset(c.Request().Context(), deliverycontext.GetSession(c), req.Code, req.toInput())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, asset)
}

// GetAsset returns one asset.
func (h *AssetHandler) GetAsset(c echo.Context) error {
	asset, err := h.assetUC.GetAsset(c.Request().Context(), deliverycontext.GetSession(c), c.Param("code"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, asset)
}

// UpdateAsset overwrites an asset and returns the history it produced.
func (h *AssetHandler) UpdateAsset(c echo.Context) error {
	var req AssetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid asset input")
	}

	output, err := h.assetUC.UpdateAsset(c.Request().Context(), deliverycontext.GetSession(c), c.Param("code"), req.toInput())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"asset":   output.Asset,
		"changes": output.Changes,
	})
}

// DeleteAsset removes an asset and its history.
func (h *AssetHandler) DeleteAsset(c echo.Context) error {
	if err := h.assetUC.DeleteAsset(c.Request().Context(), deliverycontext.GetSession(c), c.Param("code")); err != nil {
		return err
	}

	return response.NoContent(c)
}

// GetHistory lists the change entries of an asset.
func (h *AssetHandler) GetHistory(c echo.Context) error {
	entries, err := h.assetUC.GetHistory(c.Request().Context(), deliverycontext.GetSession(c), c.Param("code"))
	if err != nil {
		return err
	}

	return response.List(c, entries, len(entries))
}

// GetLabel renders the QR label of an asset as PNG.
func (h *AssetHandler) GetLabel(c echo.Context) error {
	code := c.Param("code")

	png, err := h.assetUC.GetAssetLabel(c.Request().Context(), deliverycontext.GetSession(c), code)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="`+sanitizeFileName(code)+`.png"`)

	return c.Blob(http.StatusOK, "image/png", png)
}

// GetImage streams a stored asset photo.
func (h *AssetHandler) GetImage(c echo.Context) error {
	obj, err := h.assetUC.OpenImage(c.Request().Context(), c.Param("*"))
	if err != nil {
		return err
	}
	defer obj.Body.Close()

	contentType := obj.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, contentType)
	if obj.Size > 0 {
		res.Header().Set(echo.HeaderContentLength, strconv.FormatInt(obj.Size, 10))
	}
	// Each upload gets a new object name, so stored images never change.
	res.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	res.WriteHeader(http.StatusOK)

	if _, err := io.Copy(res, obj.Body); err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Warn("Image stream interrupted", slog.Any("error", err))
	}

	return nil
}

// filterFromQuery reads q, state (repeatable) and sector.
func filterFromQuery(c echo.Context) liveview.Filter {
	params := c.QueryParams()

	var states []entity.AssetState
	for _, state := range params["state"] {
		if state = strings.TrimSpace(state); state != "" {
			states = append(states, entity.AssetState(state))
		}
	}

	return liveview.Filter{
		Text:   strings.TrimSpace(params.Get("q")),
		States: states,
		Sector: strings.TrimSpace(params.Get("sector")),
	}
}

func sanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		if r == '"' || r == '\\' || r == '/' || r < 0x20 {
			return '_'
		}

		return r
	}, name)
}
