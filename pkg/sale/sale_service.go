package sale

import (
	"context"

	"resto-pos-backend/domain"
)

type (
	SaleService interface {
		ProcessSale(ctx context.Context, businessID uint, req domain.ProcessSaleRequest) (domain.ProcessSaleResponse, error)
		GetSales(ctx context.Context, businessID uint) ([]domain.SaleWithReceiptResponse, error)
		GetFoodsForSale(ctx context.Context, businessID uint) ([]domain.SaleFoodResponse, error)
	}

	saleService struct {
		saleRepository SaleRepository
	}
)

func NewSaleService(saleRepository SaleRepository) SaleService {
	return &saleService{saleRepository: saleRepository}
}

func (s *saleService) ProcessSale(ctx context.Context, businessID uint, req domain.ProcessSaleRequest) (domain.ProcessSaleResponse, error) {
	if len(req.Items) == 0 {
		return domain.ProcessSaleResponse{}, domain.ErrEmptyCart
	}
	for _, item := range req.Items {
		if item.FoodName == "" || item.Quantity <= 0 {
			return domain.ProcessSaleResponse{}, domain.ErrInvalidLineItem
		}
	}

	result, err := s.saleRepository.ProcessSale(ctx, businessID, req.Items)
	if err != nil {
		return domain.ProcessSaleResponse{}, err
	}

	return domain.ProcessSaleResponse{
		Receipt: domain.ReceiptProjection{
			SaleID:     result.SaleID,
			Items:      result.Items,
			TotalPrice: result.TotalPrice,
		},
	}, nil
}

func (s *saleService) GetSales(ctx context.Context, businessID uint) ([]domain.SaleWithReceiptResponse, error) {
	return s.saleRepository.GetSalesWithReceipts(ctx, businessID)
}

func (s *saleService) GetFoodsForSale(ctx context.Context, businessID uint) ([]domain.SaleFoodResponse, error) {
	return s.saleRepository.GetFoodsForSale(ctx, businessID)
}
