package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddExpense    = "Expense added successfully"
	MessageSuccessGetExpenses   = "expenses retrieved successfully"
	MessageSuccessUpdateExpense = "Expense updated successfully"
	MessageSuccessDeleteExpense = "Expense deleted successfully"

	MessageFailedAddExpense    = "failed to add expense"
	MessageFailedGetExpenses   = "failed to fetch expenses"
	MessageFailedUpdateExpense = "failed to update expense"
	MessageFailedDeleteExpense = "failed to delete expense"

	ErrExpenseNotFound = errors.New("unauthorized or expense not found")
)

type (
	AddExpenseRequest struct {
		Description string  `json:"description" validate:"required"`
		Amount      float64 `json:"amount" validate:"required,gte=0"`
	}

	UpdateExpenseRequest struct {
		Description string  `json:"description" validate:"required"`
		Amount      float64 `json:"amount" validate:"required,gte=0"`
	}

	ExpenseResponse struct {
		ID          uint      `json:"id"`
		Description string    `json:"description"`
		Amount      float64   `json:"amount"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
