package report

import (
	"context"

	"resto-pos-backend/domain"
)

type (
	ReportService interface {
		GetReport(ctx context.Context, reportType, filter string, businessID uint) ([]domain.ReportRow, error)
	}

	reportService struct {
		reportRepository ReportRepository
	}
)

func NewReportService(reportRepository ReportRepository) ReportService {
	return &reportService{reportRepository: reportRepository}
}

func (s *reportService) GetReport(ctx context.Context, reportType, filter string, businessID uint) ([]domain.ReportRow, error) {
	records, err := s.reportRepository.GetReport(ctx, reportType, filter, businessID)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.ReportRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, domain.ReportRow{
			ID:       rec.ID,
			Name:     rec.Name,
			Date:     rec.CreatedAt.Format("2006-01-02"),
			Amount:   rec.Amount,
			Quantity: rec.Quantity,
		})
	}
	return rows, nil
}
