package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/projetprice/formation-svc/internal/dto"
	"github.com/projetprice/formation-svc/internal/helper/utils"
	"github.com/projetprice/formation-svc/internal/services"
)

type AuthHandler struct {
	svc services.AuthService
}

func NewAuthHandler(svc services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) SetupRoutes(app *fiber.App) {
	auth := app.Group("/api/v1/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
}

func (h *AuthHandler) Register(ctx *fiber.Ctx) error {
	var requestBody dto.RegisterRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseFailure(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if requestBody.Email == "" || requestBody.Password == "" || requestBody.Name == "" {
		return utils.ResponseFailure(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	token, err := h.svc.Register(ctx.UserContext(), requestBody)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, "User registered successfully", dto.AuthenticationResponse{Token: token})
}

func (h *AuthHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.AuthenticationRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseFailure(ctx, fiber.StatusBadRequest, "email and password are required")
	}

	token, err := h.svc.Login(ctx.UserContext(), requestBody)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, "User logged in successfully", dto.AuthenticationResponse{Token: token})
}
