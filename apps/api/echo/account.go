package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/geekplay/foro/core"
	"github.com/geekplay/foro/core/account"
	"github.com/geekplay/foro/core/form"
)

type (
	accountAPI struct {
		validator  *form.Validator
		authSvc    account.AuthService
		profileSvc account.ProfileService
	}

	registerRequest struct {
		form.RegistrationForm
		AdminKey string `json:"adminKey"`
	}

	profileRequest struct {
		Nombre    string  `json:"nombre"`
		Biografia *string `json:"biografia"`
		AvatarURL *string `json:"avatarUrl"`
	}

	SessionResponse struct {
		UserID     int64  `json:"userId"`
		Email      string `json:"email"`
		Role       string `json:"role"`
		ExpiresAt  int64  `json:"expiresAt"`
		IsAdmin    bool   `json:"is_admin"`
		AdminEmail bool   `json:"admin_email"`
	}
)

func registerAccountAPI(
	g *echo.Group,
	auth echo.MiddlewareFunc,
	validator *form.Validator,
	authSvc account.AuthService,
	profileSvc account.ProfileService,
) {
	api := accountAPI{validator: validator, authSvc: authSvc, profileSvc: profileSvc}

	ag := g.Group("/auth")
	ag.POST("/login", api.login)
	ag.POST("/register", api.register)

	g.GET("/session", api.session, auth)

	g.GET("/profile/me", api.me, auth)
	g.PUT("/profile/me", api.updateMe, auth)
	g.GET("/profiles/:id", api.profile, auth)
}

// paramID reads a numeric path parameter; an invalid id is a not found.
func paramID(ctx echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errHTTPNotFound
	}
	return id, nil
}

func (api *accountAPI) login(ctx echo.Context) error {
	var data form.LoginForm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginForm")
	}
	if err := api.validator.ValidateLoginForm(data).Err(); err != nil {
		return err
	}

	sess, err := api.authSvc.Login(ctx.Request().Context(), account.Credentials{
		Email:    core.CleanString(data.Email),
		Password: data.Password,
	})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sess)
}

func (api *accountAPI) register(ctx echo.Context) error {
	var data registerRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to registerRequest")
	}
	if err := api.validator.ValidateRegistrationForm(data.RegistrationForm).Err(); err != nil {
		return err
	}

	reg := account.Registration{
		Nombre:   data.Name,
		Email:    data.Email,
		Password: data.Password,
		AdminKey: data.AdminKey,
	}
	reg.Clean()
	sess, err := api.authSvc.Register(ctx.Request().Context(), reg)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, sess)
}

func (api *accountAPI) session(ctx echo.Context) error {
	claims, ok := contextClaims(ctx)
	if !ok {
		return errMissingToken
	}
	return ctx.JSON(http.StatusOK, SessionResponse{
		UserID:     claims.UserID,
		Email:      claims.Email(),
		Role:       claims.Role,
		ExpiresAt:  claims.ExpiresAt,
		IsAdmin:    claims.IsAdmin(),
		AdminEmail: form.IsAdminEmail(claims.Email()),
	})
}

func (api *accountAPI) me(ctx echo.Context) error {
	prof, err := api.profileSvc.Me(ctx.Request().Context(), contextToken(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, prof)
}

func (api *accountAPI) updateMe(ctx echo.Context) error {
	var data profileRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to profileRequest")
	}

	c := ctx.Request().Context()
	token := contextToken(ctx)

	// the email is not editable: the form checks the one on record
	current, err := api.profileSvc.Me(c, token)
	if err != nil {
		return err
	}
	if err := api.validator.ValidateProfileForm(form.ProfileForm{Nombre: data.Nombre, Correo: current.Email}).Err(); err != nil {
		return err
	}

	prof, err := api.profileSvc.UpdateMe(c, token, account.ProfileUpdate{
		Nombre:    core.CleanString(data.Nombre),
		Biografia: data.Biografia,
		AvatarURL: data.AvatarURL,
	})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, prof)
}

func (api *accountAPI) profile(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	prof, err := api.profileSvc.GetByID(ctx.Request().Context(), contextToken(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, prof)
}
