package expense

import (
	"context"

	"resto-pos-backend/entities"

	"gorm.io/gorm"
)

type (
	ExpenseRepository interface {
		AddExpense(ctx context.Context, expense *entities.Expense) error
		GetExpenses(ctx context.Context, businessID uint) ([]*entities.Expense, error)
		GetExpenseByID(ctx context.Context, id, businessID uint) (*entities.Expense, error)
		UpdateExpense(ctx context.Context, expense *entities.Expense) error
		DeleteExpense(ctx context.Context, id, businessID uint) error
	}

	expenseRepository struct {
		db *gorm.DB
	}
)

func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) AddExpense(ctx context.Context, expense *entities.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) GetExpenses(ctx context.Context, businessID uint) ([]*entities.Expense, error) {
	var expenses []*entities.Expense
	if err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *expenseRepository) GetExpenseByID(ctx context.Context, id, businessID uint) (*entities.Expense, error) {
	var expense entities.Expense
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", id, businessID).
		First(&expense).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepository) UpdateExpense(ctx context.Context, expense *entities.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

func (r *expenseRepository) DeleteExpense(ctx context.Context, id, businessID uint) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", id, businessID).
		Delete(&entities.Expense{}).Error
}
