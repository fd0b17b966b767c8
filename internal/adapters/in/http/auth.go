package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
)

const actorContextKey = "actor"

// NewAuthMiddleware returns echo middleware that authenticates requests
// with a bearer JWT signed with the given HMAC secret. The token must
// carry the account ID in the "sub" claim and the role name in the
// "role" claim; the resulting actor is stored on the request context.
func NewAuthMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return unauthorized(ctx, "authorization header is required")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return unauthorized(ctx, "authorization header must be a bearer token")
			}

			token, err := jwt.Parse(parts[1], func(token *jwt.Token) (any, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				return unauthorized(ctx, "token is invalid or expired")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return unauthorized(ctx, "token is invalid or expired")
			}

			actor, err := actorFromClaims(claims)
			if err != nil {
				return unauthorized(ctx, "token claims are invalid")
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

func actorFromClaims(claims jwt.MapClaims) (account.Actor, error) {
	subject, err := claims.GetSubject()
	if err != nil {
		return account.Actor{}, err
	}
	id, err := kernel.UUIDFromString(subject)
	if err != nil {
		return account.Actor{}, err
	}

	roleName, ok := claims["role"].(string)
	if !ok {
		return account.Actor{}, fmt.Errorf("role claim is missing")
	}
	role, err := account.RoleFromString(roleName)
	if err != nil {
		return account.Actor{}, err
	}

	return account.NewActor(id, role)
}

func actorFromContext(ctx echo.Context) (account.Actor, bool) {
	actor, ok := ctx.Get(actorContextKey).(account.Actor)
	return actor, ok
}

func unauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}
