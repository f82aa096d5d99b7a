package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddPurchase    = "Purchase added successfully"
	MessageSuccessGetPurchases   = "purchases retrieved successfully"
	MessageSuccessUpdatePurchase = "Purchase updated successfully"
	MessageSuccessDeletePurchase = "Purchase deleted successfully"

	MessageFailedAddPurchase    = "failed to add purchase"
	MessageFailedGetPurchases   = "failed to fetch purchases"
	MessageFailedUpdatePurchase = "failed to update purchase"
	MessageFailedDeletePurchase = "failed to delete purchase"

	ErrPurchaseNotFound = errors.New("unauthorized or purchase not found")
)

type (
	AddPurchaseRequest struct {
		Item     string  `json:"item" validate:"required"`
		Quantity int     `json:"quantity" validate:"required,gt=0"`
		Price    float64 `json:"price" validate:"required,gte=0"`
	}

	UpdatePurchaseRequest struct {
		Item     string  `json:"item" validate:"required"`
		Quantity int     `json:"quantity" validate:"required,gt=0"`
		Price    float64 `json:"price" validate:"required,gte=0"`
	}

	PurchaseResponse struct {
		ID        uint      `json:"id"`
		Item      string    `json:"item"`
		Quantity  int       `json:"quantity"`
		Price     float64   `json:"price"`
		CreatedAt time.Time `json:"created_at"`
	}
)
