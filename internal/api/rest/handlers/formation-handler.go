package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/projetprice/formation-svc/internal/dto"
	"github.com/projetprice/formation-svc/internal/helper/utils"
	"github.com/projetprice/formation-svc/internal/services"
)

type FormationHandler struct {
	svc services.FormationService
}

func NewFormationHandler(svc services.FormationService) *FormationHandler {
	return &FormationHandler{svc: svc}
}

func (h *FormationHandler) SetupRoutes(app *fiber.App) {
	formations := app.Group("/api/formations")

	formations.Get("/all", h.GetAllPaged)
	formations.Get("/search", h.SearchFormations)
	formations.Get("/search/region", h.SearchByRegion)
	formations.Get("/search/status", h.SearchByEstablishmentStatus)
	formations.Get("/search/program", h.SearchByProgram)
	formations.Get("/advancedSearch", h.AdvancedSearch)
	formations.Get("/rank", h.RankFormations)
	formations.Get("/suggestions", h.GetFieldSuggestions)

	// keep the wildcard last so it doesn't shadow the routes above
	formations.Get("/:id", h.GetFormationByID)
}

func (h *FormationHandler) GetAllPaged(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 0)
	size := ctx.QueryInt("size", 10)

	result, err := h.svc.FindAllPaged(ctx.UserContext(), page, size)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Formations retrieved successfully", result)
}

func (h *FormationHandler) SearchFormations(ctx *fiber.Ctx) error {
	query := ctx.Query("query")
	if query == "" {
		return utils.ResponseFailure(ctx, fiber.StatusBadRequest, "query is required")
	}

	result, err := h.svc.SearchFormations(ctx.UserContext(), query)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Formations retrieved successfully", result)
}

func (h *FormationHandler) GetFormationByID(ctx *fiber.Ctx) error {
	formation, err := h.svc.FindByID(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	if formation == nil {
		return utils.ResponseFailure(ctx, fiber.StatusNotFound, "Formation not found")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Formation retrieved successfully", formation)
}

func (h *FormationHandler) SearchByRegion(ctx *fiber.Ctx) error {
	return h.singleFieldSearch(ctx, h.svc.SearchByRegion)
}

func (h *FormationHandler) SearchByEstablishmentStatus(ctx *fiber.Ctx) error {
	return h.singleFieldSearch(ctx, h.svc.SearchByEstablishmentStatus)
}

func (h *FormationHandler) SearchByProgram(ctx *fiber.Ctx) error {
	return h.singleFieldSearch(ctx, h.svc.SearchByProgram)
}

func (h *FormationHandler) AdvancedSearch(ctx *fiber.Ctx) error {
	params := dto.AdvancedSearchParams{Size: 10, Direction: "ASC"}
	if err := ctx.QueryParser(&params); err != nil {
		return utils.ResponseFailure(ctx, fiber.StatusBadRequest, "invalid search parameters")
	}

	result, err := h.svc.AdvancedSearch(ctx.UserContext(), params)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Formations retrieved successfully", result)
}

func (h *FormationHandler) RankFormations(ctx *fiber.Ctx) error {
	sortBy := ctx.Query("sortBy", "candidateCount")
	direction := ctx.Query("direction", "DESC")
	page := ctx.QueryInt("page", 0)
	size := ctx.QueryInt("size", 10)

	result, err := h.svc.RankFormations(ctx.UserContext(), sortBy, direction, page, size)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Formations ranked successfully", result)
}

func (h *FormationHandler) GetFieldSuggestions(ctx *fiber.Ctx) error {
	field := ctx.Query("field")
	if field == "" {
		return utils.ResponseFailure(ctx, fiber.StatusBadRequest, "field is required")
	}

	suggestions, err := h.svc.GetFieldSuggestions(ctx.UserContext(), field, ctx.Query("query"))
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Suggestions retrieved successfully", suggestions)
}

type pagedSearch func(ctx context.Context, value string, page, size int) (*dto.FormationPage, error)

func (h *FormationHandler) singleFieldSearch(ctx *fiber.Ctx, search pagedSearch) error {
	value := ctx.Query("value")
	if value == "" {
		return utils.ResponseFailure(ctx, fiber.StatusBadRequest, "value is required")
	}
	page := ctx.QueryInt("page", 0)
	size := ctx.QueryInt("size", 10)

	result, err := search(ctx.UserContext(), value, page, size)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Formations retrieved successfully", result)
}
