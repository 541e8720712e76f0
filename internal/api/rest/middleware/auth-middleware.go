package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/projetprice/formation-svc/internal/helper"
	"github.com/projetprice/formation-svc/internal/helper/utils"
	"github.com/projetprice/formation-svc/internal/repository"
)

// AuthMiddleware is the gate in front of /api/protected. It extracts a token
// from the Authorization header (with or without the Bearer prefix) or the
// jwtToken cookie, validates it and resolves the subject against the user
// store. The authenticated user travels in ctx.Locals, never in package
// state. All rejections are 401; the message tells expired and invalid
// tokens apart.
func AuthMiddleware(auth helper.Auth, users repository.UserRepository) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := extractToken(ctx)
		if tokenStr == "" {
			return utils.ResponseFailure(ctx, fiber.StatusUnauthorized, "No Authorization token or invalid format")
		}

		subject, err := auth.ExtractSubject(tokenStr)
		if err != nil {
			if errors.Is(err, helper.ErrExpiredToken) {
				return utils.ResponseFailure(ctx, fiber.StatusUnauthorized, "Expired token")
			}
			return utils.ResponseFailure(ctx, fiber.StatusUnauthorized, "Invalid token")
		}

		// The subject must still resolve to a stored user; a failed lookup is
		// a security failure, not a token failure.
		user, err := users.FindUserByEmail(ctx.UserContext(), subject)
		if err != nil || user == nil || !auth.IsTokenValid(tokenStr, user.Email) {
			return utils.ResponseFailure(ctx, fiber.StatusUnauthorized, "Invalid token")
		}

		ctx.Locals("userEmail", user.Email)
		ctx.Locals("user", user)
		return ctx.Next()
	}
}

func extractToken(ctx *fiber.Ctx) string {
	header := strings.TrimSpace(ctx.Get(fiber.HeaderAuthorization))
	if header != "" {
		if strings.HasPrefix(header, "Bearer ") {
			return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		}
		return header
	}
	return strings.TrimSpace(ctx.Cookies("jwtToken"))
}

// CurrentUserEmail returns the identity the gate established for this
// request.
func CurrentUserEmail(ctx *fiber.Ctx) (string, error) {
	email, ok := ctx.Locals("userEmail").(string)
	if !ok || email == "" {
		return "", helper.ErrUnauthenticated
	}
	return email, nil
}
