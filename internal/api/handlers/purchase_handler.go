package handlers

import (
	"errors"

	"resto-pos-backend/domain"
	"resto-pos-backend/internal/api/presenters"
	"resto-pos-backend/pkg/purchase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PurchaseHandler interface {
		AddPurchase(c *fiber.Ctx) error
		GetPurchases(c *fiber.Ctx) error
		UpdatePurchase(c *fiber.Ctx) error
		DeletePurchase(c *fiber.Ctx) error
	}

	purchaseHandler struct {
		purchaseService purchase.PurchaseService
		validator       *validator.Validate
	}
)

func NewPurchaseHandler(purchaseService purchase.PurchaseService, validator *validator.Validate) PurchaseHandler {
	return &purchaseHandler{
		purchaseService: purchaseService,
		validator:       validator,
	}
}

func (h *purchaseHandler) AddPurchase(c *fiber.Ctx) error {
	businessID, ok := businessIDFromLocals(c)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrBusinessMissing)
	}
	req := new(domain.AddPurchaseRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPurchase, err)
	}

	res, err := h.purchaseService.AddPurchase(c.Context(), *req, businessID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddPurchase, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddPurchase)
}

func (h *purchaseHandler) GetPurchases(c *fiber.Ctx) error {
	businessID, ok := businessIDFromLocals(c)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrBusinessMissing)
	}

	purchases, err := h.purchaseService.GetPurchases(c.Context(), businessID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPurchases, err)
	}

	return presenters.SuccessResponse(c, purchases, fiber.StatusOK, domain.MessageSuccessGetPurchases)
}

func (h *purchaseHandler) UpdatePurchase(c *fiber.Ctx) error {
	businessID, ok := businessIDFromLocals(c)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrBusinessMissing)
	}
	purchaseID, err := c.ParamsInt("id")
	if err != nil || purchaseID < 1 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req := new(domain.UpdatePurchaseRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePurchase, err)
	}

	if err := h.purchaseService.UpdatePurchase(c.Context(), uint(purchaseID), *req, businessID); err != nil {
		if errors.Is(err, domain.ErrPurchaseNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedUpdatePurchase, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdatePurchase, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdatePurchase)
}

func (h *purchaseHandler) DeletePurchase(c *fiber.Ctx) error {
	businessID, ok := businessIDFromLocals(c)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrBusinessMissing)
	}
	purchaseID, err := c.ParamsInt("id")
	if err != nil || purchaseID < 1 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.purchaseService.DeletePurchase(c.Context(), uint(purchaseID), businessID); err != nil {
		if errors.Is(err, domain.ErrPurchaseNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedDeletePurchase, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeletePurchase, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePurchase)
}
