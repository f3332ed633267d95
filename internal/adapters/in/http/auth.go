package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"bookmarket/internal/core/domain/model/kernel"
)

// actorContextKey stores the authenticated kernel.Actor on the echo context.
const actorContextKey = "actor"

// NewAuthMiddleware verifies a Bearer token signed with the shared HMAC secret
// and places the resulting Actor on the request context. Tokens carry a
// numeric "user_id" claim and a "role" claim ("User" or "Admin"); both are
// trusted as issued, the service never mints tokens itself.
func NewAuthMiddleware(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			authHeader := ctx.Request().Header.Get("Authorization")
			if authHeader == "" {
				return unauthorized(ctx, "missing authorization header")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return unauthorized(ctx, "invalid token format")
			}

			token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid {
				return unauthorized(ctx, "invalid or expired token")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return unauthorized(ctx, "invalid claims")
			}

			actor, err := actorFromClaims(claims)
			if err != nil {
				return unauthorized(ctx, "invalid identity claims")
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

func actorFromClaims(claims jwt.MapClaims) (kernel.Actor, error) {
	// encoding/json decodes JWT numbers as float64.
	rawID, ok := claims["user_id"].(float64)
	if !ok {
		return kernel.Actor{}, errors.New("user_id claim is missing or not a number")
	}

	rawRole, ok := claims["role"].(string)
	if !ok {
		return kernel.Actor{}, errors.New("role claim is missing or not a string")
	}

	role, err := kernel.RoleFromString(rawRole)
	if err != nil {
		return kernel.Actor{}, err
	}

	return kernel.NewActor(int64(rawID), role)
}

func actorFromContext(ctx echo.Context) (kernel.Actor, bool) {
	actor, ok := ctx.Get(actorContextKey).(kernel.Actor)
	return actor, ok
}

func unauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}
