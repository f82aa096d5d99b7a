package report

import (
	"context"
	"testing"
	"time"

	"resto-pos-backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReportRepository struct {
	records []ReportRecord
	err     error
}

func (s *stubReportRepository) GetReport(context.Context, string, string, uint) ([]ReportRecord, error) {
	return s.records, s.err
}

func TestGetReportFormatsDates(t *testing.T) {
	qty := 2
	service := NewReportService(&stubReportRepository{
		records: []ReportRecord{
			{ID: 41, Name: "Chapati", Quantity: &qty, Amount: 300, CreatedAt: time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)},
		},
	})

	rows, err := service.GetReport(context.Background(), domain.ReportTypeSales, domain.ReportFilterDaily, 3)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2026-08-28", rows[0].Date)
	assert.Equal(t, 300.0, rows[0].Amount)
}

func TestGetReportPropagatesValidationErrors(t *testing.T) {
	service := NewReportService(&stubReportRepository{err: domain.ErrInvalidReportType})

	_, err := service.GetReport(context.Background(), "payroll", domain.ReportFilterDaily, 3)
	assert.ErrorIs(t, err, domain.ErrInvalidReportType)
}
