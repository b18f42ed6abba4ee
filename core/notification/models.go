package notification

import "context"

type Notification struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"userId"`
	Tipo     string `json:"tipo"`
	Titulo   string `json:"titulo"`
	Mensaje  string `json:"mensaje"`
	Leida    bool   `json:"leida"`
	CreadoEn string `json:"creadoEn"`
}

// NewNotification is sent by other services; creating one needs no session.
type NewNotification struct {
	UserID  int64  `json:"userId"`
	Tipo    string `json:"tipo"`
	Titulo  string `json:"titulo"`
	Mensaje string `json:"mensaje"`
}

type Service interface {
	Mine(ctx context.Context, token string) ([]Notification, error)
	UnreadCount(ctx context.Context, token string) (int64, error)
	MarkRead(ctx context.Context, token string, id int64) (Notification, error)
	Delete(ctx context.Context, token string, id int64) error
	Create(ctx context.Context, nn NewNotification) (Notification, error)
}
