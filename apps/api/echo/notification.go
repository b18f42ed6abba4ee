package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/geekplay/foro/core/notification"
)

type notificationAPI struct {
	svc notification.Service
}

func registerNotificationAPI(g *echo.Group, auth echo.MiddlewareFunc, svc notification.Service) {
	api := notificationAPI{svc: svc}

	ng := g.Group("/notifications", auth)
	ng.GET("", api.query)
	ng.GET("/unread-count", api.unreadCount)
	ng.PUT("/:id/read", api.markRead)
	ng.DELETE("/:id", api.destroy)
}

func (api *notificationAPI) query(ctx echo.Context) error {
	notifs, err := api.svc.Mine(ctx.Request().Context(), contextToken(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, notifs)
}

func (api *notificationAPI) unreadCount(ctx echo.Context) error {
	count, err := api.svc.UnreadCount(ctx.Request().Context(), contextToken(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"unreadCount": count})
}

func (api *notificationAPI) markRead(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	notif, err := api.svc.MarkRead(ctx.Request().Context(), contextToken(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, notif)
}

func (api *notificationAPI) destroy(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	if err := api.svc.Delete(ctx.Request().Context(), contextToken(ctx), id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
