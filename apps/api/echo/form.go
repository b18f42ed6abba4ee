package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/geekplay/foro/core/form"
)

type formAPI struct {
	validator *form.Validator
}

// ValidationResponse is the outcome of a form validation: the messages of the failed fields.
type ValidationResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

func registerFormAPI(g *echo.Group, validator *form.Validator) {
	api := formAPI{validator: validator}
	g.POST("/forms/:kind/validate", api.validate)
}

func (api *formAPI) validate(ctx echo.Context) error {
	var errs form.Errors
	switch kind := ctx.Param("kind"); kind {
	case "login":
		var data form.LoginForm
		if err := ctx.Bind(&data); err != nil {
			return errors.Wrap(err, "binding to LoginForm")
		}
		errs = api.validator.ValidateLoginForm(data)
	case "registration":
		var data form.RegistrationForm
		if err := ctx.Bind(&data); err != nil {
			return errors.Wrap(err, "binding to RegistrationForm")
		}
		errs = api.validator.ValidateRegistrationForm(data)
	case "contact":
		var data form.ContactForm
		if err := ctx.Bind(&data); err != nil {
			return errors.Wrap(err, "binding to ContactForm")
		}
		errs = api.validator.ValidateContactForm(data)
	case "profile":
		var data form.ProfileForm
		if err := ctx.Bind(&data); err != nil {
			return errors.Wrap(err, "binding to ProfileForm")
		}
		errs = api.validator.ValidateProfileForm(data)
	case "post":
		var data form.ForumPostForm
		if err := ctx.Bind(&data); err != nil {
			return errors.Wrap(err, "binding to ForumPostForm")
		}
		errs = api.validator.ValidateForumPost(data)
	default:
		return errHTTPNotFound
	}

	return ctx.JSON(http.StatusOK, ValidationResponse{Valid: errs.Valid(), Errors: errs.Messages()})
}
