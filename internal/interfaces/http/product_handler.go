package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hutecki/bankiety-api/internal/application/dto"
	"github.com/hutecki/bankiety-api/internal/application/ledger"
	"github.com/hutecki/bankiety-api/internal/application/usecase"
	"github.com/hutecki/bankiety-api/internal/domain/entity"
	"github.com/hutecki/bankiety-api/internal/domain/repository"
	"github.com/hutecki/bankiety-api/internal/domain/warehouse"
)

// parseDomain resolves the :domain path parameter against the warehouse
// catalog. Unknown domains are a 404, not a validation error.
func parseDomain(c *fiber.Ctx) (entity.Domain, bool) {
	d := entity.Domain(c.Params("domain"))
	if _, err := warehouse.Lookup(d); err != nil {
		return "", false
	}
	return d, true
}

func domainNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "unknown warehouse domain"})
}

// ProductHandler handles product registry requests for all domains (protected).
type ProductHandler struct {
	uc       *usecase.ProductUseCase
	movement *ledger.ApplyMovementUseCase
}

// NewProductHandler builds the handler.
func NewProductHandler(uc *usecase.ProductUseCase, movement *ledger.ApplyMovementUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, movement: movement}
}

// Create godoc
// @Summary      Register a product in a domain
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        domain  path  string  true  "Warehouse domain"  Enums(alkohole, naciagi, suchy)
// @Param        body    body  dto.CreateProductRequest  true  "Product data"
// @Success      201     {object}  dto.ProductResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      409     {object}  dto.ErrorResponse
// @Router       /api/magazyn/{domain}/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	d, ok := parseDomain(c)
	if !ok {
		return domainNotFound(c)
	}
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Create(d, in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List a domain's products
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        domain       path   string  true   "Warehouse domain"
// @Param        category     query  string  false  "Category filter"
// @Param        subcategory  query  string  false  "Subcategory filter"
// @Success      200  {array}   dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/magazyn/{domain}/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	d, ok := parseDomain(c)
	if !ok {
		return domainNotFound(c)
	}
	filter := repository.ProductFilter{
		Category:    c.Query("category"),
		Subcategory: c.Query("subcategory"),
	}
	out, err := h.uc.List(d, filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get a product by ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        domain  path  string  true  "Warehouse domain"
// @Param        id      path  string  true  "Product ID"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/magazyn/{domain}/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	d, ok := parseDomain(c)
	if !ok {
		return domainNotFound(c)
	}
	out, err := h.uc.GetByID(d, c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Apply a movement or edit product fields
// @Description  With operation_type set (dostawa, uzycie, korekta, strata) the
//               request is a ledger movement; without it the request is an
//               administrative field edit. A raw quantity override requires
//               the admin role and writes no ledger entry.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        domain  path  string  true  "Warehouse domain"
// @Param        id      path  string  true  "Product ID"
// @Param        body    body  dto.ApplyMovementRequest  true  "Movement or field edit"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/magazyn/{domain}/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	d, ok := parseDomain(c)
	if !ok {
		return domainNotFound(c)
	}
	id := c.Params("id")

	var probe dto.ApplyMovementRequest
	if err := c.BodyParser(&probe); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if probe.OperationType != "" {
		return h.applyMovement(c, d, id, probe)
	}

	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Quantity != nil && GetRole(c) != entity.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "quantity override requires the admin role"})
	}
	out, err := h.uc.UpdateFields(d, id, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

func (h *ProductHandler) applyMovement(c *fiber.Ctx, d entity.Domain, id string, in dto.ApplyMovementRequest) error {
	employee := in.EmployeeName
	if employee == "" {
		employee = GetUsername(c)
	}
	product, err := h.movement.Apply(c.Context(), ledger.MovementInput{
		Domain:       d,
		ProductID:    id,
		Direction:    entity.Direction(in.OperationType),
		Quantity:     in.Quantity,
		EmployeeName: employee,
		Note:         in.Note,
		OccurredAt:   in.OccurredAt,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.ToProductResponse(product))
}

// Delete godoc
// @Summary      Delete a product and its ledger entries
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        domain  path  string  true  "Warehouse domain"
// @Param        id      path  string  true  "Product ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/magazyn/{domain}/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	d, ok := parseDomain(c)
	if !ok {
		return domainNotFound(c)
	}
	if err := h.uc.Delete(c.Context(), d, c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
