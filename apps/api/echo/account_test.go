package echoapi_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	. "github.com/geekplay/foro/apps/api/echo"
	"github.com/geekplay/foro/core/account"
	"github.com/geekplay/foro/tests"
)

func Test_accountApi_login(t *testing.T) {
	srv, st := setup(t)

	tests := []httpTest{
		{
			name:     "invalid form",
			method:   http.MethodPost,
			path:     "/v1/auth/login",
			body:     []byte(`{"email": "user@example", "password": "12345"}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"email": emailText, "password": passwordText}),
		},
		{
			name:     "success",
			method:   http.MethodPost,
			path:     "/v1/auth/login",
			body:     []byte(`{"email": "user@example.com", "password": "123456"}`),
			wantCode: http.StatusOK,
			wantData: marchallObj(t, account.Session{
				Token:  "session-token",
				UserID: 1,
				Email:  "user@example.com",
				Nombre: "Juan Pérez",
				Role:   account.RoleUser,
			}),
		},
	}
	runHTTPTests(t, srv, tests)
	assert.Equal(t, account.Credentials{Email: "user@example.com", Password: "123456"}, st.auth.creds)
}

func Test_accountApi_register(t *testing.T) {
	srv, st := setup(t)

	tests := []httpTest{
		{
			name:     "passwords do not match",
			method:   http.MethodPost,
			path:     "/v1/auth/register",
			body:     []byte(`{"name": "Juan", "email": "juan@example.com", "password": "123456", "confirmPassword": "123457"}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"confirmPassword": mismatchText}),
		},
		{
			name:     "success",
			method:   http.MethodPost,
			path:     "/v1/auth/register",
			body:     []byte(`{"name": "  Juan  ", "email": "juan@example.com", "password": "123456", "confirmPassword": "123456", "adminKey": "k"}`),
			wantCode: http.StatusCreated,
			wantData: marchallObj(t, account.Session{
				Token:  "session-token",
				UserID: 7,
				Email:  "juan@example.com",
				Nombre: "Juan",
				Role:   account.RoleUser,
			}),
		},
	}
	runHTTPTests(t, srv, tests)
	assert.Equal(t, account.Registration{Nombre: "Juan", Email: "juan@example.com", Password: "123456", AdminKey: "k"}, st.auth.reg)
}

func Test_accountApi_session(t *testing.T) {
	srv, _ := setup(t)
	userToken := testutil.NewToken(t, "juan@example.com", account.RoleUser, 1)
	adminToken := testutil.NewToken(t, "root@geekplay.cl", account.RoleAdmin, 99)
	expired := testutil.NewToken(t, "juan@example.com", account.RoleUser, 1, -time.Minute)

	sessionOf := func(token string) SessionResponse {
		claims, err := account.ParseClaims(token)
		if err != nil {
			t.Fatalf("ParseClaims() failed: %v", err)
		}
		return SessionResponse{
			UserID:     claims.UserID,
			Email:      claims.Email(),
			Role:       claims.Role,
			ExpiresAt:  claims.ExpiresAt,
			IsAdmin:    claims.IsAdmin(),
			AdminEmail: claims.Email() == "root@geekplay.cl",
		}
	}

	tests := []httpTest{
		{
			name:     "no token",
			method:   http.MethodGet,
			path:     "/v1/session",
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errMissingToken),
		},
		{
			name:     "garbage token",
			method:   http.MethodGet,
			path:     "/v1/session",
			token:    "not-a-jwt",
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errInvalidToken),
		},
		{
			name:     "expired token",
			method:   http.MethodGet,
			path:     "/v1/session",
			token:    expired,
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errInvalidToken),
		},
		{
			name:     "user",
			method:   http.MethodGet,
			path:     "/v1/session",
			token:    userToken,
			wantCode: http.StatusOK,
			wantData: marchallObj(t, sessionOf(userToken)),
		},
		{
			name:     "admin",
			method:   http.MethodGet,
			path:     "/v1/session",
			token:    adminToken,
			wantCode: http.StatusOK,
			wantData: marchallObj(t, sessionOf(adminToken)),
		},
	}
	runHTTPTests(t, srv, tests)
}

func Test_accountApi_profile(t *testing.T) {
	srv, st := setup(t)
	token := testutil.NewToken(t, "juan@example.com", account.RoleUser, 1)
	bio := "Jugador de rol"

	tests := []httpTest{
		{
			name:     "me without token",
			method:   http.MethodGet,
			path:     "/v1/profile/me",
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errMissingToken),
		},
		{
			name:     "me",
			method:   http.MethodGet,
			path:     "/v1/profile/me",
			token:    token,
			wantCode: http.StatusOK,
			wantData: marchallObj(t, st.profile.profile),
		},
		{
			name:     "update with invalid name",
			method:   http.MethodPut,
			path:     "/v1/profile/me",
			token:    token,
			body:     []byte(`{"nombre": " J "}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"nombre": nameText}),
		},
		{
			name:     "update",
			method:   http.MethodPut,
			path:     "/v1/profile/me",
			token:    token,
			body:     marchallObj(t, map[string]interface{}{"nombre": " Juan P. ", "biografia": bio}),
			wantCode: http.StatusOK,
			wantData: marchallObj(t, account.Profile{
				ID:        1,
				Nombre:    "Juan P.",
				Email:     "juan@example.com",
				Role:      account.RoleUser,
				Biografia: &bio,
			}),
		},
		{
			name:     "by id",
			method:   http.MethodGet,
			path:     "/v1/profiles/1",
			token:    token,
			wantCode: http.StatusOK,
			wantData: marchallObj(t, account.Profile{
				ID:        1,
				Nombre:    "Juan P.",
				Email:     "juan@example.com",
				Role:      account.RoleUser,
				Biografia: &bio,
			}),
		},
		{
			name:     "unknown id",
			method:   http.MethodGet,
			path:     "/v1/profiles/2",
			token:    token,
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "Usuario no encontrado"}),
		},
		{
			name:     "invalid id",
			method:   http.MethodGet,
			path:     "/v1/profiles/abc",
			token:    token,
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, errNotFound),
		},
	}
	runHTTPTests(t, srv, tests)
	assert.Equal(t, token, st.profile.token)
}
