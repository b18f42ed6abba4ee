package account

import (
	"github.com/geekplay/foro/core"
)

// Roles
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type (
	Credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	// Registration is the payload of a sign up. AdminKey is only checked upstream.
	Registration struct {
		Nombre   string `json:"nombre"`
		Email    string `json:"email"`
		Password string `json:"password"`
		AdminKey string `json:"adminKey,omitempty"`
	}

	// Session is what the auth service answers to a successful login or sign up.
	Session struct {
		Token  string `json:"token"`
		UserID int64  `json:"userId"`
		Email  string `json:"email"`
		Nombre string `json:"nombre"`
		Role   string `json:"role"`
	}

	Profile struct {
		ID            int64   `json:"id"`
		Nombre        string  `json:"nombre"`
		Email         string  `json:"email"`
		Role          string  `json:"role"`
		Biografia     *string `json:"biografia"`
		AvatarURL     *string `json:"avatarUrl"`
		CreadoEn      string  `json:"creadoEn"`
		ActualizadoEn string  `json:"actualizadoEn"`
	}

	ProfileUpdate struct {
		Nombre    string  `json:"nombre,omitempty"`
		Biografia *string `json:"biografia,omitempty"`
		AvatarURL *string `json:"avatarUrl,omitempty"`
	}

	// User is an account as listed to administrators.
	User struct {
		ID        int64  `json:"id"`
		Nombre    string `json:"nombre"`
		Email     string `json:"email"`
		Role      string `json:"role"`
		Baneado   bool   `json:"baneado"`
		CreatedAt string `json:"createdAt"`
	}
)

// Clean trims the name and email the same way the sign up form does.
func (r *Registration) Clean() {
	r.Nombre = core.CleanString(r.Nombre)
	r.Email = core.CleanString(r.Email)
}

func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
