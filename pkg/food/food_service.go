package food

import (
	"context"
	"errors"

	"resto-pos-backend/domain"
	"resto-pos-backend/entities"

	"gorm.io/gorm"
)

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, businessID uint) (domain.FoodItemResponse, error)
		GetFoodItems(ctx context.Context, businessID uint) ([]domain.FoodItemResponse, error)
		UpdateFoodItem(ctx context.Context, id uint, req domain.UpdateFoodItemRequest, businessID uint) error
		DeleteFoodItem(ctx context.Context, id uint, businessID uint) error
	}

	foodService struct {
		foodRepository FoodRepository
	}
)

func NewFoodService(foodRepository FoodRepository) FoodService {
	return &foodService{foodRepository: foodRepository}
}

func (s *foodService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, businessID uint) (domain.FoodItemResponse, error) {
	if req.Price < 0 {
		return domain.FoodItemResponse{}, domain.ErrInvalidPrice
	}
	if req.Stock < 0 {
		return domain.FoodItemResponse{}, domain.ErrInvalidStock
	}

	foodItem := &entities.FoodItem{
		BusinessID: businessID,
		Name:       req.Name,
		Price:      req.Price,
		Stock:      req.Stock,
	}

	if err := s.foodRepository.AddFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return domain.FoodItemResponse{
		ID:        foodItem.ID,
		Name:      foodItem.Name,
		Price:     foodItem.Price,
		Stock:     foodItem.Stock,
		CreatedAt: foodItem.CreatedAt,
	}, nil
}

func (s *foodService) GetFoodItems(ctx context.Context, businessID uint) ([]domain.FoodItemResponse, error) {
	foodItems, err := s.foodRepository.GetFoodItems(ctx, businessID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.FoodItemResponse, 0, len(foodItems))
	for _, item := range foodItems {
		response = append(response, domain.FoodItemResponse{
			ID:        item.ID,
			Name:      item.Name,
			Price:     item.Price,
			Stock:     item.Stock,
			CreatedAt: item.CreatedAt,
		})
	}

	return response, nil
}

func (s *foodService) UpdateFoodItem(ctx context.Context, id uint, req domain.UpdateFoodItemRequest, businessID uint) error {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id, businessID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUnauthorizedAccess
		}
		return err
	}

	if req.Price < 0 {
		return domain.ErrInvalidPrice
	}
	if req.Stock < 0 {
		return domain.ErrInvalidStock
	}

	foodItem.Price = req.Price
	foodItem.Stock = req.Stock

	return s.foodRepository.UpdateFoodItem(ctx, foodItem)
}

func (s *foodService) DeleteFoodItem(ctx context.Context, id uint, businessID uint) error {
	if _, err := s.foodRepository.GetFoodItemByID(ctx, id, businessID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUnauthorizedAccess
		}
		return err
	}

	return s.foodRepository.DeleteFoodItem(ctx, id, businessID)
}
