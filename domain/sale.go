package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	MessageSuccessProcessSale = "Sale recorded successfully!"
	MessageSuccessGetSales    = "sales retrieved successfully"
	MessageSuccessGetFoods    = "food items retrieved successfully"

	MessageFailedProcessSale = "failed to process sale"
	MessageFailedGetSales    = "failed to fetch sales"
	MessageFailedGetFoods    = "failed to fetch food items"

	ErrEmptyCart          = errors.New("items array is required")
	ErrInvalidLineItem    = errors.New("each item needs a food_name and a positive quantity")
	ErrFoodItemNotFound   = errors.New("food item not found")
	ErrInsufficientStock  = errors.New("not enough stock")
	ErrSaleIDNotAssigned  = errors.New("failed to retrieve sale ID")
	ErrTransactionFailure = errors.New("sale transaction failed")
)

// FoodItemNotFoundError names the offending cart line. It matches
// ErrFoodItemNotFound under errors.Is so handlers can map it to a 404.
type FoodItemNotFoundError struct {
	FoodName string
}

func (e *FoodItemNotFoundError) Error() string {
	return fmt.Sprintf("food item %q not found", e.FoodName)
}

func (e *FoodItemNotFoundError) Is(target error) bool {
	return target == ErrFoodItemNotFound
}

// InsufficientStockError matches ErrInsufficientStock under errors.Is.
type InsufficientStockError struct {
	FoodName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for %q", e.FoodName)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

type (
	SaleLineItemRequest struct {
		FoodName string `json:"food_name" validate:"required"`
		Quantity int    `json:"quantity" validate:"required,gt=0"`
	}

	ProcessSaleRequest struct {
		Items []SaleLineItemRequest `json:"items" validate:"required,min=1,dive"`
	}

	// SaleItemDetail is a cart line annotated with the unit price that was
	// charged, read inside the sale transaction.
	SaleItemDetail struct {
		FoodName string  `json:"food_name"`
		Price    float64 `json:"price"`
		Quantity int     `json:"quantity"`
	}

	ReceiptProjection struct {
		SaleID     uint             `json:"saleId"`
		Items      []SaleItemDetail `json:"items"`
		TotalPrice float64          `json:"totalPrice"`
	}

	ProcessSaleResponse struct {
		Receipt ReceiptProjection `json:"receipt"`
	}

	SaleWithReceiptResponse struct {
		SaleID      uint    `json:"sale_id"`
		FoodName    string  `json:"food_name"`
		Quantity    int     `json:"quantity"`
		TotalPrice  float64 `json:"total_price"`
		ReceiptText string  `json:"receipt_text,omitempty"`
	}

	SaleFoodResponse struct {
		ID    uint    `json:"id"`
		Name  string  `json:"name"`
		Price float64 `json:"price"`
		Stock int     `json:"stock"`
	}
)

type ReceiptResponse struct {
	ID          uint      `json:"id"`
	SaleID      uint      `json:"sale_id"`
	TotalPrice  float64   `json:"total_price"`
	ReceiptText string    `json:"receipt_text"`
	ReceiptDate time.Time `json:"receipt_date"`
}
