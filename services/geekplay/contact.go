package geekplaysvc

import (
	"context"
	"net/http"

	"github.com/geekplay/foro/core/contact"
)

type contactService struct {
	client
}

var _ contact.Service = (*contactService)(nil)

func NewContactService(baseURL string, hc *http.Client) contact.Service {
	return &contactService{client: newClient(baseURL, hc)}
}

func (svc *contactService) Send(ctx context.Context, msg contact.Message) (map[string]interface{}, error) {
	var resp map[string]interface{}
	err := svc.do(ctx, call{
		op:      "send contact message",
		errText: "Error al enviar el mensaje",
		method:  http.MethodPost,
		path:    "/contacto/guardar",
		in:      msg,
		out:     &resp,
	})
	return resp, err
}
