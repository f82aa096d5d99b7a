package domain

import "errors"

var (
	MessageSuccessGetReceipts = "receipts retrieved successfully"
	MessageSuccessAddReceipt  = "Receipt created successfully."

	MessageFailedGetReceipts = "failed to fetch receipts"
	MessageFailedAddReceipt  = "failed to add receipt"

	ErrSaleNotFound = errors.New("no valid sale found for this sale_id and business")
)

type AddReceiptRequest struct {
	SaleID      uint    `json:"sale_id" validate:"required"`
	TotalPrice  float64 `json:"total_price" validate:"required,gte=0"`
	ReceiptText string  `json:"receipt_text" validate:"required"`
}
