package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Domain error kinds. Services return these (possibly wrapped); the response
// boundary maps them to HTTP statuses with StatusForError.
var (
	ErrUserAlreadyExists  = errors.New("you already have an account")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidInput       = errors.New("invalid inputs")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrExpiredToken       = errors.New("token has expired")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidRole        = errors.New("invalid role")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

// StatusForError is the single kind-to-status mapping. Expired tokens map to
// 400 here (register/login path); the auth gate answers 401 itself before this
// mapping is ever consulted, which keeps the historical status split between
// the two paths.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, ErrUserAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrExpiredToken),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrInvalidRole),
		errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrPasswordTooShort),
		errors.Is(err, ErrInvalidCredentials):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrUnauthenticated):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}
