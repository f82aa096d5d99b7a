package receipt

import (
	"context"

	"resto-pos-backend/entities"

	"gorm.io/gorm"
)

type (
	ReceiptRepository interface {
		GetReceipts(ctx context.Context, businessID uint) ([]*entities.Receipt, error)
		CountSalesForBusiness(ctx context.Context, saleID, businessID uint) (int64, error)
		CreateReceipt(ctx context.Context, receipt *entities.Receipt) error
	}

	receiptRepository struct {
		db *gorm.DB
	}
)

func NewReceiptRepository(db *gorm.DB) ReceiptRepository {
	return &receiptRepository{db: db}
}

func (r *receiptRepository) GetReceipts(ctx context.Context, businessID uint) ([]*entities.Receipt, error) {
	var receipts []*entities.Receipt
	if err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("receipt_date DESC").
		Find(&receipts).Error; err != nil {
		return nil, err
	}
	return receipts, nil
}

func (r *receiptRepository) CountSalesForBusiness(ctx context.Context, saleID, businessID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Sale{}).
		Where("id = ? AND business_id = ?", saleID, businessID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *receiptRepository) CreateReceipt(ctx context.Context, receipt *entities.Receipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}
