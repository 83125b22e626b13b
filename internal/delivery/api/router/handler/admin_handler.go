package handler

import (
	"log/slog"
	"net/http"

	"locus/internal/delivery/api/response"
	deliverycontext "locus/internal/delivery/context"
	"locus/internal/domain/entity"
	"locus/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler manages user profiles.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// ChangeRoleRequest is the body of a role change.
type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,role"`
}

// ListUsers returns the profiles matching the q query parameter.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminUC.ListUsers(c.Request().Context(), deliverycontext.GetSession(c), c.QueryParam("q"))
	if err != nil {
		return err
	}

	return response.List(c, users, len(users))
}

// ChangeRole assigns a new role to a profile.
func (h *AdminHandler) ChangeRole(c echo.Context) error {
	var req ChangeRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.adminUC.ChangeRole(c.Request().Context(), deliverycontext.GetSession(c), c.Param("uid"), entity.Role(req.Role))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, profile)
}
