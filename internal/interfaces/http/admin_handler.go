package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hutecki/bankiety-api/internal/application/dto"
	"github.com/hutecki/bankiety-api/internal/application/usecase"
)

// AdminHandler serves the destructive maintenance endpoints (admin only).
type AdminHandler struct {
	retention *usecase.RetentionUseCase
	reset     *usecase.ResetUseCase
}

// NewAdminHandler builds the handler.
func NewAdminHandler(retention *usecase.RetentionUseCase, reset *usecase.ResetUseCase) *AdminHandler {
	return &AdminHandler{retention: retention, reset: reset}
}

// CleanupMovements godoc
// @Summary      Delete ledger entries older than the retention window
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        scope  query  string  false  "Domain or all"  default(all)
// @Success      200  {object}  dto.CleanupResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/movements/cleanup [post]
func (h *AdminHandler) CleanupMovements(c *fiber.Ctx) error {
	out, err := h.retention.Cleanup(c.Query("scope", "all"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// RetentionStats godoc
// @Summary      Count ledger entries eligible for retention cleanup
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        scope  query  string  false  "Domain or all"  default(all)
// @Success      200  {object}  dto.RetentionStatsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/movements/retention [get]
func (h *AdminHandler) RetentionStats(c *fiber.Ctx) error {
	out, err := h.retention.Stats(c.Query("scope", "all"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// ZeroQuantities godoc
// @Summary      Zero all product quantities, gated by a confirmation token
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ZeroQuantitiesRequest  true  "scope + confirmation token"
// @Success      200  {object}  dto.ZeroQuantitiesResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/products/zero-quantities [post]
func (h *AdminHandler) ZeroQuantities(c *fiber.Ctx) error {
	var in dto.ZeroQuantitiesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Scope == "" {
		in.Scope = "all"
	}
	out, err := h.reset.ZeroQuantities(in.Scope, in.Confirm)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
