package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/projetprice/formation-svc/internal/api/rest/middleware"
	"github.com/projetprice/formation-svc/internal/dto"
	"github.com/projetprice/formation-svc/internal/helper"
	"github.com/projetprice/formation-svc/internal/helper/utils"
	"github.com/projetprice/formation-svc/internal/repository"
	"github.com/projetprice/formation-svc/internal/services"
)

type UserHandler struct {
	svc      services.UserService
	auth     helper.Auth
	userRepo repository.UserRepository
}

func NewUserHandler(svc services.UserService, auth helper.Auth, userRepo repository.UserRepository) *UserHandler {
	return &UserHandler{svc: svc, auth: auth, userRepo: userRepo}
}

func (h *UserHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Presence endpoints stay public; the socket layer that drives them has
	// no session of its own.
	api.Get("/users", h.FindConnectedUsers)
	api.Post("/users/connect", h.Connect)
	api.Post("/users/disconnect", h.Disconnect)

	// Everything under /api/protected goes through the gate; all other
	// routes bypass it.
	protected := api.Group("/protected", middleware.AuthMiddleware(h.auth, h.userRepo))
	protected.Get("/getUserInfo", h.GetUserInfo)
	protected.Get("/getUserInfo/:id", h.GetUserInfoByID)
	protected.Get("/verifyUser", h.VerifyUser)
}

func (h *UserHandler) FindConnectedUsers(ctx *fiber.Ctx) error {
	users, err := h.svc.FindConnectedUsers(ctx.UserContext())
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Connected users retrieved successfully", users)
}

func (h *UserHandler) Connect(ctx *fiber.Ctx) error {
	var requestBody dto.ConnectRequest
	if err := ctx.BodyParser(&requestBody); err != nil || requestBody.UserID == "" {
		return utils.ResponseFailure(ctx, fiber.StatusBadRequest, "userId is required")
	}

	user, err := h.svc.MarkOnline(ctx.UserContext(), requestBody.UserID)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "User connected", user)
}

func (h *UserHandler) Disconnect(ctx *fiber.Ctx) error {
	var requestBody dto.DisconnectRequest
	if err := ctx.BodyParser(&requestBody); err != nil || requestBody.Email == "" {
		return utils.ResponseFailure(ctx, fiber.StatusBadRequest, "email is required")
	}

	// An unknown email is a no-op, not an error; data stays nil in that case.
	user, err := h.svc.MarkOffline(ctx.UserContext(), requestBody.Email)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "User disconnected", user)
}

func (h *UserHandler) GetUserInfo(ctx *fiber.Ctx) error {
	email, err := middleware.CurrentUserEmail(ctx)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}

	info, err := h.svc.GetUserInfoByEmail(ctx.UserContext(), email)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "User information retrieved successfully", info)
}

func (h *UserHandler) GetUserInfoByID(ctx *fiber.Ctx) error {
	info, err := h.svc.GetUserInfoByID(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "User information retrieved successfully", info)
}

func (h *UserHandler) VerifyUser(ctx *fiber.Ctx) error {
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "User verification successful", fiber.Map{"success": true})
}
