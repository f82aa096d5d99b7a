package purchase

import (
	"context"

	"resto-pos-backend/entities"

	"gorm.io/gorm"
)

type (
	PurchaseRepository interface {
		AddPurchase(ctx context.Context, purchase *entities.Purchase) error
		GetPurchases(ctx context.Context, businessID uint) ([]*entities.Purchase, error)
		GetPurchaseByID(ctx context.Context, id, businessID uint) (*entities.Purchase, error)
		UpdatePurchase(ctx context.Context, purchase *entities.Purchase) error
		DeletePurchase(ctx context.Context, id, businessID uint) error
	}

	purchaseRepository struct {
		db *gorm.DB
	}
)

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) AddPurchase(ctx context.Context, purchase *entities.Purchase) error {
	return r.db.WithContext(ctx).Create(purchase).Error
}

func (r *purchaseRepository) GetPurchases(ctx context.Context, businessID uint) ([]*entities.Purchase, error) {
	var purchases []*entities.Purchase
	if err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

func (r *purchaseRepository) GetPurchaseByID(ctx context.Context, id, businessID uint) (*entities.Purchase, error) {
	var purchase entities.Purchase
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", id, businessID).
		First(&purchase).Error; err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *purchaseRepository) UpdatePurchase(ctx context.Context, purchase *entities.Purchase) error {
	return r.db.WithContext(ctx).Save(purchase).Error
}

func (r *purchaseRepository) DeletePurchase(ctx context.Context, id, businessID uint) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", id, businessID).
		Delete(&entities.Purchase{}).Error
}
