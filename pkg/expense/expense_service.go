package expense

import (
	"context"
	"errors"

	"resto-pos-backend/domain"
	"resto-pos-backend/entities"

	"gorm.io/gorm"
)

type (
	ExpenseService interface {
		AddExpense(ctx context.Context, req domain.AddExpenseRequest, businessID uint) (domain.ExpenseResponse, error)
		GetExpenses(ctx context.Context, businessID uint) ([]domain.ExpenseResponse, error)
		UpdateExpense(ctx context.Context, id uint, req domain.UpdateExpenseRequest, businessID uint) error
		DeleteExpense(ctx context.Context, id, businessID uint) error
	}

	expenseService struct {
		expenseRepository ExpenseRepository
	}
)

func NewExpenseService(expenseRepository ExpenseRepository) ExpenseService {
	return &expenseService{expenseRepository: expenseRepository}
}

func (s *expenseService) AddExpense(ctx context.Context, req domain.AddExpenseRequest, businessID uint) (domain.ExpenseResponse, error) {
	expense := &entities.Expense{
		BusinessID:  businessID,
		Description: req.Description,
		Amount:      req.Amount,
	}

	if err := s.expenseRepository.AddExpense(ctx, expense); err != nil {
		return domain.ExpenseResponse{}, err
	}

	return domain.ExpenseResponse{
		ID:          expense.ID,
		Description: expense.Description,
		Amount:      expense.Amount,
		CreatedAt:   expense.CreatedAt,
	}, nil
}

func (s *expenseService) GetExpenses(ctx context.Context, businessID uint) ([]domain.ExpenseResponse, error) {
	expenses, err := s.expenseRepository.GetExpenses(ctx, businessID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		response = append(response, domain.ExpenseResponse{
			ID:          e.ID,
			Description: e.Description,
			Amount:      e.Amount,
			CreatedAt:   e.CreatedAt,
		})
	}
	return response, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, id uint, req domain.UpdateExpenseRequest, businessID uint) error {
	expense, err := s.expenseRepository.GetExpenseByID(ctx, id, businessID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrExpenseNotFound
		}
		return err
	}

	expense.Description = req.Description
	expense.Amount = req.Amount

	return s.expenseRepository.UpdateExpense(ctx, expense)
}

func (s *expenseService) DeleteExpense(ctx context.Context, id, businessID uint) error {
	if _, err := s.expenseRepository.GetExpenseByID(ctx, id, businessID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrExpenseNotFound
		}
		return err
	}

	return s.expenseRepository.DeleteExpense(ctx, id, businessID)
}
