package handlers

import (
	"errors"

	"resto-pos-backend/domain"
	"resto-pos-backend/internal/api/presenters"
	"resto-pos-backend/pkg/sale"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SaleHandler interface {
		ProcessSale(c *fiber.Ctx) error
		GetSales(c *fiber.Ctx) error
		GetFoodsForSale(c *fiber.Ctx) error
	}

	saleHandler struct {
		saleService sale.SaleService
		validator   *validator.Validate
	}
)

func NewSaleHandler(saleService sale.SaleService, validator *validator.Validate) SaleHandler {
	return &saleHandler{
		saleService: saleService,
		validator:   validator,
	}
}

func (h *saleHandler) ProcessSale(c *fiber.Ctx) error {
	businessID, ok := businessIDFromLocals(c)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrBusinessMissing)
	}
	req := new(domain.ProcessSaleRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessSale, err)
	}

	res, err := h.saleService.ProcessSale(c.Context(), businessID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, saleErrorStatus(err), domain.MessageFailedProcessSale, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessProcessSale)
}

// saleErrorStatus maps the sale error taxonomy to distinct status codes:
// bad input 400, unknown item 404, oversell 409, everything else 500.
func saleErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrEmptyCart), errors.Is(err, domain.ErrInvalidLineItem):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrFoodItemNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientStock):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *saleHandler) GetSales(c *fiber.Ctx) error {
	businessID, ok := businessIDFromLocals(c)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrBusinessMissing)
	}

	sales, err := h.saleService.GetSales(c.Context(), businessID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetSales, err)
	}

	return presenters.SuccessResponse(c, sales, fiber.StatusOK, domain.MessageSuccessGetSales)
}

func (h *saleHandler) GetFoodsForSale(c *fiber.Ctx) error {
	businessID, ok := businessIDFromLocals(c)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrBusinessMissing)
	}

	foods, err := h.saleService.GetFoodsForSale(c.Context(), businessID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoods, err)
	}

	return presenters.SuccessResponse(c, foods, fiber.StatusOK, domain.MessageSuccessGetFoods)
}
