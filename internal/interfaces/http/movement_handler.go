package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hutecki/bankiety-api/internal/application/usecase"
	"github.com/hutecki/bankiety-api/internal/domain/entity"
	"github.com/hutecki/bankiety-api/internal/domain/repository"
)

// MovementHandler serves read access to a domain's movement ledger (protected).
type MovementHandler struct {
	uc *usecase.MovementUseCase
}

// NewMovementHandler builds the handler.
func NewMovementHandler(uc *usecase.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// List godoc
// @Summary      List a domain's ledger entries
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        domain      path   string  true   "Warehouse domain"
// @Param        product_id  query  string  false  "Filter by product"
// @Param        direction   query  string  false  "Filter by direction"  Enums(dostawa, uzycie, korekta, strata)
// @Param        limit       query  int     false  "Max entries"
// @Param        sort_by     query  string  false  "Sort column"  default(occurred_at)
// @Param        order       query  string  false  "asc or desc"  default(desc)
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/magazyn/{domain}/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	d, ok := parseDomain(c)
	if !ok {
		return domainNotFound(c)
	}
	filter := repository.MovementFilter{
		ProductID: c.Query("product_id"),
		Direction: entity.Direction(c.Query("direction")),
		Limit:     c.QueryInt("limit", 0),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("order"),
	}
	out, err := h.uc.List(d, filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
