package contact

import (
	"context"

	"github.com/geekplay/foro/core"
	"github.com/geekplay/foro/core/form"
)

// Message is a contact form submission as stored by the contact service.
type Message struct {
	Nombre  string `json:"nombre"`
	Email   string `json:"email"`
	Mensaje string `json:"mensaje"`
}

// NewMessage maps a validated contact form onto the stored message.
func NewMessage(cf form.ContactForm) Message {
	return Message{
		Nombre:  core.CleanString(cf.Name),
		Email:   core.CleanString(cf.Email),
		Mensaje: core.CleanString(cf.Message),
	}
}

type Service interface {
	// Send stores msg and returns the service's raw JSON answer.
	Send(ctx context.Context, msg Message) (map[string]interface{}, error)
}
