package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hutecki/bankiety-api/internal/application/dto"
	"github.com/hutecki/bankiety-api/internal/application/usecase"
)

// PlannerHandler serves the weekly banquet planner (protected).
type PlannerHandler struct {
	uc *usecase.PlannerUseCase
}

// NewPlannerHandler builds the handler.
func NewPlannerHandler(uc *usecase.PlannerUseCase) *PlannerHandler {
	return &PlannerHandler{uc: uc}
}

// planWeekResponse wraps one week's entries with its resolved week key.
type planWeekResponse struct {
	YearWeek string                  `json:"year_week"`
	Entries  []dto.PlanEntryResponse `json:"entries"`
}

// ListWeek godoc
// @Summary      List banquet bookings for a week
// @Tags         planner
// @Security     Bearer
// @Produce      json
// @Param        week  query  string  false  "ISO week key, e.g. 2026-W35; empty = current week"
// @Success      200  {object}  planWeekResponse
// @Router       /api/planner [get]
func (h *PlannerHandler) ListWeek(c *fiber.Ctx) error {
	week, entries, err := h.uc.ListWeek(c.Query("week"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(planWeekResponse{YearWeek: week, Entries: entries})
}

// Create godoc
// @Summary      Book a banquet in the weekly planner
// @Tags         planner
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePlanEntryRequest  true  "Booking data"
// @Success      201  {object}  dto.PlanEntryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/planner [post]
func (h *PlannerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePlanEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Edit a banquet booking
// @Tags         planner
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Entry ID"
// @Param        body  body  dto.UpdatePlanEntryRequest  true  "Fields to change"
// @Success      200  {object}  dto.PlanEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/planner/{id} [put]
func (h *PlannerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePlanEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remove a banquet booking
// @Tags         planner
// @Security     Bearer
// @Param        id  path  string  true  "Entry ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/planner/{id} [delete]
func (h *PlannerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CleanupOldWeeks godoc
// @Summary      Drop planner entries outside the current week
// @Tags         planner
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]int64
// @Router       /api/planner/cleanup [post]
func (h *PlannerHandler) CleanupOldWeeks(c *fiber.Ctx) error {
	deleted, err := h.uc.CleanupOldWeeks()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}
