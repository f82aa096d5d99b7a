package handlers

import (
	"errors"

	"resto-pos-backend/domain"
	"resto-pos-backend/internal/api/presenters"
	"resto-pos-backend/pkg/receipt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReceiptHandler interface {
		GetReceipts(c *fiber.Ctx) error
		AddReceipt(c *fiber.Ctx) error
	}

	receiptHandler struct {
		receiptService receipt.ReceiptService
		validator      *validator.Validate
	}
)

func NewReceiptHandler(receiptService receipt.ReceiptService, validator *validator.Validate) ReceiptHandler {
	return &receiptHandler{
		receiptService: receiptService,
		validator:      validator,
	}
}

func (h *receiptHandler) GetReceipts(c *fiber.Ctx) error {
	businessID, ok := businessIDFromLocals(c)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrBusinessMissing)
	}

	receipts, err := h.receiptService.GetReceipts(c.Context(), businessID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetReceipts, err)
	}

	return presenters.SuccessResponse(c, receipts, fiber.StatusOK, domain.MessageSuccessGetReceipts)
}

// AddReceipt records a standalone receipt against an existing sale.
// The referenced sale must belong to the caller's business.
func (h *receiptHandler) AddReceipt(c *fiber.Ctx) error {
	businessID, ok := businessIDFromLocals(c)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrBusinessMissing)
	}
	req := new(domain.AddReceiptRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddReceipt, err)
	}

	if err := h.receiptService.AddReceipt(c.Context(), *req, businessID); err != nil {
		if errors.Is(err, domain.ErrSaleNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedAddReceipt, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddReceipt, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAddReceipt)
}
