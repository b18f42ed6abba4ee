package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/geekplay/foro/core/contact"
	"github.com/geekplay/foro/core/form"
)

type contactAPI struct {
	validator *form.Validator
	svc       contact.Service
}

func registerContactAPI(g *echo.Group, validator *form.Validator, svc contact.Service) {
	api := contactAPI{validator: validator, svc: svc}
	g.POST("/contact", api.send)
}

func (api *contactAPI) send(ctx echo.Context) error {
	var data form.ContactForm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ContactForm")
	}
	if err := api.validator.ValidateContactForm(data).Err(); err != nil {
		return err
	}

	res, err := api.svc.Send(ctx.Request().Context(), contact.NewMessage(data))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, res)
}
