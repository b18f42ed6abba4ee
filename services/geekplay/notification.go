package geekplaysvc

import (
	"context"
	"fmt"
	"net/http"

	"github.com/geekplay/foro/core/notification"
)

type notificationService struct {
	client
}

var _ notification.Service = (*notificationService)(nil)

func NewNotificationService(baseURL string, hc *http.Client) notification.Service {
	return &notificationService{client: newClient(baseURL, hc)}
}

func (svc *notificationService) Mine(ctx context.Context, token string) ([]notification.Notification, error) {
	notifs := make([]notification.Notification, 0)
	err := svc.do(ctx, call{
		op:      "list notifications",
		errText: "Error al obtener notificaciones",
		method:  http.MethodGet,
		path:    "/api/notifications/me",
		token:   token,
		auth:    true,
		out:     &notifs,
	})
	return notifs, err
}

func (svc *notificationService) UnreadCount(ctx context.Context, token string) (int64, error) {
	var resp struct {
		UnreadCount int64 `json:"unreadCount"`
	}
	err := svc.do(ctx, call{
		op:      "count unread notifications",
		errText: "Error al obtener contador de notificaciones",
		method:  http.MethodGet,
		path:    "/api/notifications/me/unread-count",
		token:   token,
		auth:    true,
		out:     &resp,
	})
	return resp.UnreadCount, err
}

func (svc *notificationService) MarkRead(ctx context.Context, token string, id int64) (notification.Notification, error) {
	var notif notification.Notification
	err := svc.do(ctx, call{
		op:      "mark notification read",
		errText: "Error al marcar notificación como leída",
		method:  http.MethodPut,
		path:    fmt.Sprintf("/api/notifications/%d/read", id),
		token:   token,
		auth:    true,
		out:     &notif,
	})
	return notif, err
}

func (svc *notificationService) Delete(ctx context.Context, token string, id int64) error {
	return svc.do(ctx, call{
		op:      "delete notification",
		errText: "Error al eliminar notificación",
		method:  http.MethodDelete,
		path:    fmt.Sprintf("/api/notifications/%d", id),
		token:   token,
		auth:    true,
	})
}

func (svc *notificationService) Create(ctx context.Context, nn notification.NewNotification) (notification.Notification, error) {
	var notif notification.Notification
	err := svc.do(ctx, call{
		op:      "create notification",
		errText: "Error al crear notificación",
		method:  http.MethodPost,
		path:    "/api/notifications/create",
		in:      nn,
		out:     &notif,
	})
	return notif, err
}
