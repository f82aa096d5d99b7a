package sale

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"resto-pos-backend/domain"
	"resto-pos-backend/entities"

	"gorm.io/gorm"
)

type (
	SaleRepository interface {
		ProcessSale(ctx context.Context, businessID uint, items []domain.SaleLineItemRequest) (*SaleResult, error)
		GetSalesWithReceipts(ctx context.Context, businessID uint) ([]domain.SaleWithReceiptResponse, error)
		GetFoodsForSale(ctx context.Context, businessID uint) ([]domain.SaleFoodResponse, error)
	}

	saleRepository struct {
		db *gorm.DB
	}
)

// SaleResult carries everything derived inside the sale transaction: the id
// of the first Sale row (the one the receipt references), the cart annotated
// with unit prices at time of sale, and the cart total.
type SaleResult struct {
	SaleID     uint
	Items      []domain.SaleItemDetail
	TotalPrice float64
}

func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &saleRepository{db: db}
}

// ProcessSale runs the whole checkout as one transaction: for every cart
// line, in input order, it reads the unit price, decrements stock with a
// conditional update, and inserts a Sale row; then it inserts the Receipt.
// Any error on any line rolls the entire transaction back.
func (r *saleRepository) ProcessSale(ctx context.Context, businessID uint, items []domain.SaleLineItemRequest) (*SaleResult, error) {
	result := &SaleResult{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var receiptLines []string

		for _, item := range items {
			var price float64
			row := tx.Raw(
				"SELECT price FROM food_items WHERE business_id = ? AND name = ?",
				businessID, item.FoodName,
			).Row()
			if err := row.Scan(&price); err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return &domain.FoodItemNotFoundError{FoodName: item.FoodName}
				}
				return err
			}

			// Conditional decrement: the stock >= quantity guard makes the
			// check and the write one statement, so two concurrent sales can
			// never both take the last unit.
			res := tx.Exec(
				"UPDATE food_items SET stock = stock - ? WHERE business_id = ? AND name = ? AND stock >= ?",
				item.Quantity, businessID, item.FoodName, item.Quantity,
			)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return &domain.InsufficientStockError{FoodName: item.FoodName}
			}

			itemTotal := price * float64(item.Quantity)
			result.TotalPrice += itemTotal

			var saleID uint
			insert := tx.Raw(
				"INSERT INTO sales (business_id, food_name, quantity, total_price, created_at) VALUES (?, ?, ?, ?, NOW()) RETURNING id",
				businessID, item.FoodName, item.Quantity, itemTotal,
			).Row()
			if err := insert.Scan(&saleID); err != nil {
				return err
			}
			// The first line item anchors the receipt.
			if result.SaleID == 0 {
				result.SaleID = saleID
			}

			result.Items = append(result.Items, domain.SaleItemDetail{
				FoodName: item.FoodName,
				Price:    price,
				Quantity: item.Quantity,
			})
			receiptLines = append(receiptLines, RenderReceiptLine(item.FoodName, item.Quantity, price, itemTotal))
		}

		if result.SaleID == 0 {
			return domain.ErrSaleIDNotAssigned
		}

		receiptText := strings.Join(receiptLines, "\n")
		if err := tx.Exec(
			"INSERT INTO receipts (business_id, sale_id, total_price, receipt_text, receipt_date) VALUES (?, ?, ?, ?, NOW())",
			businessID, result.SaleID, result.TotalPrice, receiptText,
		).Error; err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *saleRepository) GetSalesWithReceipts(ctx context.Context, businessID uint) ([]domain.SaleWithReceiptResponse, error) {
	var sales []domain.SaleWithReceiptResponse
	if err := r.db.WithContext(ctx).Raw(
		`SELECT s.id AS sale_id, s.food_name, s.quantity, s.total_price, COALESCE(r.receipt_text, '') AS receipt_text
		 FROM sales s
		 LEFT JOIN receipts r ON s.id = r.sale_id
		 WHERE s.business_id = ?
		 ORDER BY s.id`,
		businessID,
	).Scan(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *saleRepository) GetFoodsForSale(ctx context.Context, businessID uint) ([]domain.SaleFoodResponse, error) {
	var foods []domain.SaleFoodResponse
	if err := r.db.WithContext(ctx).
		Model(&entities.FoodItem{}).
		Select("id, name, price, stock").
		Where("business_id = ?", businessID).
		Order("name").
		Scan(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}
