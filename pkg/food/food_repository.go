package food

import (
	"context"

	"resto-pos-backend/entities"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		GetFoodItems(ctx context.Context, businessID uint) ([]*entities.FoodItem, error)
		GetFoodItemByID(ctx context.Context, id, businessID uint) (*entities.FoodItem, error)
		UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		DeleteFoodItem(ctx context.Context, id, businessID uint) error
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(foodItem).Error
}

func (r *foodRepository) GetFoodItems(ctx context.Context, businessID uint) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem
	if err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("name").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}

func (r *foodRepository) GetFoodItemByID(ctx context.Context, id, businessID uint) (*entities.FoodItem, error) {
	var foodItem entities.FoodItem
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", id, businessID).
		First(&foodItem).Error; err != nil {
		return nil, err
	}
	return &foodItem, nil
}

func (r *foodRepository) UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Save(foodItem).Error
}

func (r *foodRepository) DeleteFoodItem(ctx context.Context, id, businessID uint) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", id, businessID).
		Delete(&entities.FoodItem{}).Error
}
