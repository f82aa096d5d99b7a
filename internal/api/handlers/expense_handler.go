package handlers

import (
	"errors"

	"resto-pos-backend/domain"
	"resto-pos-backend/internal/api/presenters"
	"resto-pos-backend/pkg/expense"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ExpenseHandler interface {
		AddExpense(c *fiber.Ctx) error
		GetExpenses(c *fiber.Ctx) error
		UpdateExpense(c *fiber.Ctx) error
		DeleteExpense(c *fiber.Ctx) error
	}

	expenseHandler struct {
		expenseService expense.ExpenseService
		validator      *validator.Validate
	}
)

func NewExpenseHandler(expenseService expense.ExpenseService, validator *validator.Validate) ExpenseHandler {
	return &expenseHandler{
		expenseService: expenseService,
		validator:      validator,
	}
}

func (h *expenseHandler) AddExpense(c *fiber.Ctx) error {
	businessID, ok := businessIDFromLocals(c)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrBusinessMissing)
	}
	req := new(domain.AddExpenseRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddExpense, err)
	}

	res, err := h.expenseService.AddExpense(c.Context(), *req, businessID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddExpense, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddExpense)
}

func (h *expenseHandler) GetExpenses(c *fiber.Ctx) error {
	businessID, ok := businessIDFromLocals(c)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrBusinessMissing)
	}

	expenses, err := h.expenseService.GetExpenses(c.Context(), businessID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetExpenses, err)
	}

	return presenters.SuccessResponse(c, expenses, fiber.StatusOK, domain.MessageSuccessGetExpenses)
}

func (h *expenseHandler) UpdateExpense(c *fiber.Ctx) error {
	businessID, ok := businessIDFromLocals(c)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrBusinessMissing)
	}
	expenseID, err := c.ParamsInt("id")
	if err != nil || expenseID < 1 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req := new(domain.UpdateExpenseRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateExpense, err)
	}

	if err := h.expenseService.UpdateExpense(c.Context(), uint(expenseID), *req, businessID); err != nil {
		if errors.Is(err, domain.ErrExpenseNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedUpdateExpense, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateExpense, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateExpense)
}

func (h *expenseHandler) DeleteExpense(c *fiber.Ctx) error {
	businessID, ok := businessIDFromLocals(c)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrBusinessMissing)
	}
	expenseID, err := c.ParamsInt("id")
	if err != nil || expenseID < 1 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.expenseService.DeleteExpense(c.Context(), uint(expenseID), businessID); err != nil {
		if errors.Is(err, domain.ErrExpenseNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedDeleteExpense, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteExpense, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteExpense)
}
