package dashboard

import (
	"context"
	"errors"

	"resto-pos-backend/domain"
	"resto-pos-backend/entities"

	"gorm.io/gorm"
)

type (
	Totals struct {
		TotalSales     float64
		TotalExpenses  float64
		TotalPurchases float64
	}

	DashboardRepository interface {
		GetTotals(ctx context.Context, businessID uint) (Totals, error)
		GetMonthlyData(ctx context.Context, businessID uint) ([]domain.MonthlyDataPoint, error)
		GetBusinessName(ctx context.Context, businessID uint) (string, error)
	}

	dashboardRepository struct {
		db *gorm.DB
	}
)

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) GetTotals(ctx context.Context, businessID uint) (Totals, error) {
	var totals Totals
	if err := r.db.WithContext(ctx).Raw(
		`SELECT
			COALESCE((SELECT SUM(total_price) FROM sales WHERE business_id = ?), 0) AS total_sales,
			COALESCE((SELECT SUM(amount) FROM expenses WHERE business_id = ?), 0) AS total_expenses,
			COALESCE((SELECT SUM(price) FROM purchases WHERE business_id = ?), 0) AS total_purchases`,
		businessID, businessID, businessID,
	).Scan(&totals).Error; err != nil {
		return Totals{}, err
	}
	return totals, nil
}

func (r *dashboardRepository) GetMonthlyData(ctx context.Context, businessID uint) ([]domain.MonthlyDataPoint, error) {
	var points []domain.MonthlyDataPoint
	if err := r.db.WithContext(ctx).Raw(
		`SELECT
			to_char(s.created_at, 'YYYY-MM') AS month,
			SUM(s.total_price) AS monthly_sales,
			COALESCE((
				SELECT SUM(p.price)
				FROM purchases p
				WHERE to_char(p.created_at, 'YYYY-MM') = to_char(s.created_at, 'YYYY-MM')
				AND p.business_id = ?
			), 0) AS monthly_purchases
		FROM sales s
		WHERE s.business_id = ?
		GROUP BY to_char(s.created_at, 'YYYY-MM')
		ORDER BY month`,
		businessID, businessID,
	).Scan(&points).Error; err != nil {
		return nil, err
	}
	return points, nil
}

func (r *dashboardRepository) GetBusinessName(ctx context.Context, businessID uint) (string, error) {
	var business entities.Business
	if err := r.db.WithContext(ctx).
		Select("name").
		Where("id = ?", businessID).
		First(&business).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrBusinessNotFound
		}
		return "", err
	}
	return business.Name, nil
}
