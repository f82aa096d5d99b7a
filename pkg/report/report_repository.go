package report

import (
	"context"
	"time"

	"resto-pos-backend/domain"

	"gorm.io/gorm"
)

// Per-type SELECT lists. User input only ever selects one of these
// pre-built statements; it is never interpolated into SQL.
var reportQueries = map[string]string{
	domain.ReportTypeSales:     "SELECT id, food_name AS name, quantity, total_price AS amount, created_at FROM sales WHERE business_id = ?",
	domain.ReportTypePurchases: "SELECT id, item AS name, quantity, price AS amount, created_at FROM purchases WHERE business_id = ?",
	domain.ReportTypeExpenses:  "SELECT id, description AS name, NULL AS quantity, amount, created_at FROM expenses WHERE business_id = ?",
}

var reportFilters = map[string]string{
	domain.ReportFilterDaily: " AND created_at::date = CURRENT_DATE",
	domain.ReportFilterWeekly: " AND date_part('week', created_at) = date_part('week', CURRENT_DATE)" +
		" AND date_part('year', created_at) = date_part('year', CURRENT_DATE)",
	domain.ReportFilterMonthly: " AND date_part('month', created_at) = date_part('month', CURRENT_DATE)" +
		" AND date_part('year', created_at) = date_part('year', CURRENT_DATE)",
	domain.ReportFilterYearly: " AND date_part('year', created_at) = date_part('year', CURRENT_DATE)",
}

type (
	ReportRecord struct {
		ID        uint
		Name      string
		Quantity  *int
		Amount    float64
		CreatedAt time.Time
	}

	ReportRepository interface {
		GetReport(ctx context.Context, reportType, filter string, businessID uint) ([]ReportRecord, error)
	}

	reportRepository struct {
		db *gorm.DB
	}
)

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) GetReport(ctx context.Context, reportType, filter string, businessID uint) ([]ReportRecord, error) {
	query, ok := reportQueries[reportType]
	if !ok {
		return nil, domain.ErrInvalidReportType
	}

	if filter != "" {
		clause, ok := reportFilters[filter]
		if !ok {
			return nil, domain.ErrInvalidReportFilter
		}
		query += clause
	}
	query += " ORDER BY created_at DESC"

	var records []ReportRecord
	if err := r.db.WithContext(ctx).Raw(query, businessID).Scan(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
