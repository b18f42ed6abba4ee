package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/geekplay/foro/core"
	"github.com/geekplay/foro/core/account"
	"github.com/geekplay/foro/core/form"
)

type (
	adminAPI struct {
		svc account.AdminService
	}

	banRequest struct {
		Razon string `json:"razon"`
	}
)

func registerAdminAPI(g *echo.Group, auth echo.MiddlewareFunc, svc account.AdminService) {
	api := adminAPI{svc: svc}

	ag := g.Group("/admin", auth, adminMiddleware())
	ag.GET("/users", api.users)
	ag.POST("/users/:id/ban", api.ban)
	ag.POST("/users/:id/unban", api.unban)
}

func (api *adminAPI) users(ctx echo.Context) error {
	users, err := api.svc.Users(ctx.Request().Context(), contextToken(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, users)
}

func (api *adminAPI) ban(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	var data banRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to banRequest")
	}
	razon := core.CleanString(data.Razon)
	if res := form.Required(razon); res.Failed() {
		return core.NewValidationError(nil, core.FieldError{Field: "razon", Error: res.Message()})
	}

	if err := api.svc.Ban(ctx.Request().Context(), contextToken(ctx), id, razon); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *adminAPI) unban(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	if err := api.svc.Unban(ctx.Request().Context(), contextToken(ctx), id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
