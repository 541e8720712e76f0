package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/projetprice/formation-svc/internal/helper"
)

const (
	StatusSuccess = "SUCCESS"
	StatusFailure = "FAILURE"
)

// ApiResponse is the envelope every endpoint answers with.
type ApiResponse struct {
	Message string      `json:"message"`
	Status  string      `json:"status"`
	Errors  []string    `json:"errors"`
	Data    interface{} `json:"data"`
}

func ResponseSuccess(ctx *fiber.Ctx, status int, message string, data interface{}) error {
	return ctx.Status(status).JSON(ApiResponse{
		Message: message,
		Status:  StatusSuccess,
		Data:    data,
	})
}

func ResponseFailure(ctx *fiber.Ctx, status int, message string) error {
	return ctx.Status(status).JSON(ApiResponse{
		Message: message,
		Status:  StatusFailure,
	})
}

// ResponseFromError is the one place a service error turns into an HTTP
// status. Stack traces never leave the process; the client only sees the
// error message.
func ResponseFromError(ctx *fiber.Ctx, err error) error {
	return ResponseFailure(ctx, helper.StatusForError(err), err.Error())
}
