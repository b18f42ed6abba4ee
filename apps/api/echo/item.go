package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/geekplay/foro/core/item"
)

type itemAPI struct {
	svc *item.Service
}

func registerItemAPI(g *echo.Group, svc *item.Service) {
	api := itemAPI{svc: svc}

	ig := g.Group("/items")
	ig.GET("", api.query)
	ig.POST("", api.create)
	ig.GET("/:id", api.retrieve)
	ig.PUT("/:id", api.update)
	ig.PATCH("/:id", api.update)
	ig.DELETE("/:id", api.destroy)
}

func notFound(err error) error {
	if errors.Cause(err) == item.ErrNotFound {
		return errHTTPNotFound
	}
	return err
}

func (api *itemAPI) query(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.QueryAll())
}

func (api *itemAPI) create(ctx echo.Context) error {
	var data item.NewItem
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewItem")
	}
	it, err := api.svc.Create(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, it)
}

func (api *itemAPI) retrieve(ctx echo.Context) error {
	it, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return notFound(err)
	}
	return ctx.JSON(http.StatusOK, it)
}

func (api *itemAPI) update(ctx echo.Context) error {
	var patch item.Patch
	if err := ctx.Bind(&patch); err != nil {
		return errors.Wrap(err, "binding to Patch")
	}
	it, err := api.svc.Update(ctx.Param("id"), patch)
	if err != nil {
		return notFound(err)
	}
	return ctx.JSON(http.StatusOK, it)
}

func (api *itemAPI) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return notFound(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
