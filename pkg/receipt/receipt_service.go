package receipt

import (
	"context"

	"resto-pos-backend/domain"
	"resto-pos-backend/entities"
)

type (
	ReceiptService interface {
		GetReceipts(ctx context.Context, businessID uint) ([]domain.ReceiptResponse, error)
		AddReceipt(ctx context.Context, req domain.AddReceiptRequest, businessID uint) error
	}

	receiptService struct {
		receiptRepository ReceiptRepository
	}
)

func NewReceiptService(receiptRepository ReceiptRepository) ReceiptService {
	return &receiptService{receiptRepository: receiptRepository}
}

func (s *receiptService) GetReceipts(ctx context.Context, businessID uint) ([]domain.ReceiptResponse, error) {
	receipts, err := s.receiptRepository.GetReceipts(ctx, businessID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ReceiptResponse, 0, len(receipts))
	for _, r := range receipts {
		response = append(response, domain.ReceiptResponse{
			ID:          r.ID,
			SaleID:      r.SaleID,
			TotalPrice:  r.TotalPrice,
			ReceiptText: r.ReceiptText,
			ReceiptDate: r.ReceiptDate,
		})
	}
	return response, nil
}

// AddReceipt inserts a receipt for an existing sale. The sale must belong to
// the same business as the receipt.
func (s *receiptService) AddReceipt(ctx context.Context, req domain.AddReceiptRequest, businessID uint) error {
	count, err := s.receiptRepository.CountSalesForBusiness(ctx, req.SaleID, businessID)
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrSaleNotFound
	}

	return s.receiptRepository.CreateReceipt(ctx, &entities.Receipt{
		BusinessID:  businessID,
		SaleID:      req.SaleID,
		TotalPrice:  req.TotalPrice,
		ReceiptText: req.ReceiptText,
	})
}
