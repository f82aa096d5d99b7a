package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddFoodItem    = "Food item added successfully!"
	MessageSuccessUpdateFoodItem = "Food item updated successfully!"
	MessageSuccessDeleteFoodItem = "Food item deleted successfully!"
	MessageSuccessGetFoodItems   = "food items retrieved successfully"

	MessageFailedAddFoodItem    = "failed to add food item"
	MessageFailedUpdateFoodItem = "failed to update food item"
	MessageFailedDeleteFoodItem = "failed to delete food item"
	MessageFailedGetFoodItems   = "failed to retrieve food items"

	ErrInvalidPrice       = errors.New("price must not be negative")
	ErrInvalidStock       = errors.New("stock must not be negative")
	ErrUnauthorizedAccess = errors.New("unauthorized or food item not found")
)

type (
	AddFoodItemRequest struct {
		Name  string  `json:"name" validate:"required"`
		Price float64 `json:"price" validate:"required,gte=0"`
		Stock int     `json:"stock" validate:"gte=0"`
	}

	UpdateFoodItemRequest struct {
		Price float64 `json:"price" validate:"gte=0"`
		Stock int     `json:"stock" validate:"gte=0"`
	}

	FoodItemResponse struct {
		ID        uint      `json:"id"`
		Name      string    `json:"name"`
		Price     float64   `json:"price"`
		Stock     int       `json:"stock"`
		CreatedAt time.Time `json:"created_at"`
	}
)
