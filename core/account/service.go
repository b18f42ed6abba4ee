package account

import "context"

type (
	AuthService interface {
		Login(ctx context.Context, creds Credentials) (Session, error)
		Register(ctx context.Context, reg Registration) (Session, error)
	}

	ProfileService interface {
		Me(ctx context.Context, token string) (Profile, error)
		UpdateMe(ctx context.Context, token string, pu ProfileUpdate) (Profile, error)
		GetByID(ctx context.Context, token string, id int64) (Profile, error)
	}

	AdminService interface {
		Users(ctx context.Context, token string) ([]User, error)
		Ban(ctx context.Context, token string, id int64, razon string) error
		Unban(ctx context.Context, token string, id int64) error
	}
)
