package echoapi

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/geekplay/foro/core/account"
)

const (
	contextTokenKey  = "token"
	contextClaimsKey = "claims"
	bearerScheme     = "Bearer "
)

// bearerAuth requires a session token in the Authorization header.
// The token is forwarded to the upstream services, which verify its signature;
// here it is only decoded so that expired tokens are refused early.
func bearerAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerScheme) {
				return errMissingToken
			}
			token := strings.TrimSpace(header[len(bearerScheme):])
			if token == "" {
				return errMissingToken
			}
			claims, err := account.ParseClaims(token)
			if err != nil {
				return errInvalidToken
			}
			ctx.Set(contextTokenKey, token)
			ctx.Set(contextClaimsKey, claims)
			return next(ctx)
		}
	}
}

// adminMiddleware must run after bearerAuth.
func adminMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, ok := contextClaims(ctx)
			if !ok {
				return errMissingToken
			}
			if claims.IsAdmin() {
				return next(ctx)
			}
			return errHTTPForbidden
		}
	}
}

func contextToken(ctx echo.Context) string {
	token, _ := ctx.Get(contextTokenKey).(string)
	return token
}

func contextClaims(ctx echo.Context) (*account.Claims, bool) {
	claims, ok := ctx.Get(contextClaimsKey).(*account.Claims)
	return claims, ok && claims != nil
}
