package geekplaysvc

import (
	"context"
	"fmt"
	"net/http"

	"github.com/geekplay/foro/core/account"
)

type authService struct {
	client
}

var _ account.AuthService = (*authService)(nil)

// NewAuthService returns the AuthService backed by the auth service at baseURL.
func NewAuthService(baseURL string, hc *http.Client) account.AuthService {
	return &authService{client: newClient(baseURL, hc)}
}

func (svc *authService) Login(ctx context.Context, creds account.Credentials) (account.Session, error) {
	var sess account.Session
	err := svc.do(ctx, call{
		op:      "login",
		errText: "Credenciales incorrectas",
		method:  http.MethodPost,
		path:    "/api/auth/login",
		in:      creds,
		out:     &sess,
	})
	return sess, err
}

func (svc *authService) Register(ctx context.Context, reg account.Registration) (account.Session, error) {
	var sess account.Session
	err := svc.do(ctx, call{
		op:      "register",
		errText: "Error al registrarse",
		method:  http.MethodPost,
		path:    "/api/auth/register",
		in:      reg,
		out:     &sess,
	})
	return sess, err
}

type profileService struct {
	client
}

var _ account.ProfileService = (*profileService)(nil)

func NewProfileService(baseURL string, hc *http.Client) account.ProfileService {
	return &profileService{client: newClient(baseURL, hc)}
}

func (svc *profileService) Me(ctx context.Context, token string) (account.Profile, error) {
	var prof account.Profile
	err := svc.do(ctx, call{
		op:      "get profile",
		errText: "Error al obtener el perfil",
		method:  http.MethodGet,
		path:    "/api/profile/me",
		token:   token,
		auth:    true,
		out:     &prof,
	})
	return prof, err
}

func (svc *profileService) UpdateMe(ctx context.Context, token string, pu account.ProfileUpdate) (account.Profile, error) {
	var prof account.Profile
	err := svc.do(ctx, call{
		op:      "update profile",
		errText: "Error al actualizar el perfil",
		method:  http.MethodPut,
		path:    "/api/profile/me",
		token:   token,
		auth:    true,
		in:      pu,
		out:     &prof,
	})
	return prof, err
}

func (svc *profileService) GetByID(ctx context.Context, token string, id int64) (account.Profile, error) {
	var prof account.Profile
	err := svc.do(ctx, call{
		op:      "get profile by id",
		errText: "Error al obtener el perfil",
		method:  http.MethodGet,
		path:    fmt.Sprintf("/api/profile/%d", id),
		token:   token,
		auth:    true,
		out:     &prof,
	})
	return prof, err
}

type adminService struct {
	client
}

var _ account.AdminService = (*adminService)(nil)

// NewAdminService returns the AdminService backed by the auth service at baseURL.
func NewAdminService(baseURL string, hc *http.Client) account.AdminService {
	return &adminService{client: newClient(baseURL, hc)}
}

func (svc *adminService) Users(ctx context.Context, token string) ([]account.User, error) {
	users := make([]account.User, 0)
	err := svc.do(ctx, call{
		op:      "list users",
		errText: "Error al cargar usuarios",
		method:  http.MethodGet,
		path:    "/api/admin/users",
		token:   token,
		auth:    true,
		out:     &users,
	})
	return users, err
}

func (svc *adminService) Ban(ctx context.Context, token string, id int64, razon string) error {
	return svc.do(ctx, call{
		op:      "ban user",
		errText: "Error al banear usuario",
		method:  http.MethodPost,
		path:    fmt.Sprintf("/api/admin/users/%d/ban", id),
		token:   token,
		auth:    true,
		in:      map[string]string{"razon": razon},
	})
}

func (svc *adminService) Unban(ctx context.Context, token string, id int64) error {
	return svc.do(ctx, call{
		op:      "unban user",
		errText: "Error al desbanear usuario",
		method:  http.MethodPost,
		path:    fmt.Sprintf("/api/admin/users/%d/unban", id),
		token:   token,
		auth:    true,
	})
}
