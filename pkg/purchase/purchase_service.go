package purchase

import (
	"context"
	"errors"

	"resto-pos-backend/domain"
	"resto-pos-backend/entities"

	"gorm.io/gorm"
)

type (
	PurchaseService interface {
		AddPurchase(ctx context.Context, req domain.AddPurchaseRequest, businessID uint) (domain.PurchaseResponse, error)
		GetPurchases(ctx context.Context, businessID uint) ([]domain.PurchaseResponse, error)
		UpdatePurchase(ctx context.Context, id uint, req domain.UpdatePurchaseRequest, businessID uint) error
		DeletePurchase(ctx context.Context, id, businessID uint) error
	}

	purchaseService struct {
		purchaseRepository PurchaseRepository
	}
)

func NewPurchaseService(purchaseRepository PurchaseRepository) PurchaseService {
	return &purchaseService{purchaseRepository: purchaseRepository}
}

func (s *purchaseService) AddPurchase(ctx context.Context, req domain.AddPurchaseRequest, businessID uint) (domain.PurchaseResponse, error) {
	purchase := &entities.Purchase{
		BusinessID: businessID,
		Item:       req.Item,
		Quantity:   req.Quantity,
		Price:      req.Price,
	}

	if err := s.purchaseRepository.AddPurchase(ctx, purchase); err != nil {
		return domain.PurchaseResponse{}, err
	}

	return domain.PurchaseResponse{
		ID:        purchase.ID,
		Item:      purchase.Item,
		Quantity:  purchase.Quantity,
		Price:     purchase.Price,
		CreatedAt: purchase.CreatedAt,
	}, nil
}

func (s *purchaseService) GetPurchases(ctx context.Context, businessID uint) ([]domain.PurchaseResponse, error) {
	purchases, err := s.purchaseRepository.GetPurchases(ctx, businessID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		response = append(response, domain.PurchaseResponse{
			ID:        p.ID,
			Item:      p.Item,
			Quantity:  p.Quantity,
			Price:     p.Price,
			CreatedAt: p.CreatedAt,
		})
	}
	return response, nil
}

func (s *purchaseService) UpdatePurchase(ctx context.Context, id uint, req domain.UpdatePurchaseRequest, businessID uint) error {
	purchase, err := s.purchaseRepository.GetPurchaseByID(ctx, id, businessID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPurchaseNotFound
		}
		return err
	}

	purchase.Item = req.Item
	purchase.Quantity = req.Quantity
	purchase.Price = req.Price

	return s.purchaseRepository.UpdatePurchase(ctx, purchase)
}

func (s *purchaseService) DeletePurchase(ctx context.Context, id, businessID uint) error {
	if _, err := s.purchaseRepository.GetPurchaseByID(ctx, id, businessID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPurchaseNotFound
		}
		return err
	}

	return s.purchaseRepository.DeletePurchase(ctx, id, businessID)
}
