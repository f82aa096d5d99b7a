package dashboard

import (
	"context"
	"testing"

	"resto-pos-backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDashboardRepository struct {
	totals  Totals
	monthly []domain.MonthlyDataPoint
	name    string
	err     error
}

func (s *stubDashboardRepository) GetTotals(context.Context, uint) (Totals, error) {
	return s.totals, s.err
}

func (s *stubDashboardRepository) GetMonthlyData(context.Context, uint) ([]domain.MonthlyDataPoint, error) {
	return s.monthly, s.err
}

func (s *stubDashboardRepository) GetBusinessName(context.Context, uint) (string, error) {
	return s.name, s.err
}

func TestGetStatsComputesProfit(t *testing.T) {
	service := NewDashboardService(&stubDashboardRepository{
		totals: Totals{TotalSales: 10000, TotalExpenses: 2500, TotalPurchases: 4000},
		monthly: []domain.MonthlyDataPoint{
			{Month: "2026-08", MonthlySales: 10000, MonthlyPurchases: 4000},
		},
	})

	stats, err := service.GetStats(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, 3500.0, stats.TotalProfit)
	assert.Len(t, stats.MonthlyData, 1)
}

func TestGetStatsReturnsEmptyMonthlySlice(t *testing.T) {
	service := NewDashboardService(&stubDashboardRepository{})

	stats, err := service.GetStats(context.Background(), 3)

	require.NoError(t, err)
	// an empty JSON array, never null
	assert.NotNil(t, stats.MonthlyData)
	assert.Empty(t, stats.MonthlyData)
}

func TestGetBusinessNamePropagatesNotFound(t *testing.T) {
	service := NewDashboardService(&stubDashboardRepository{err: domain.ErrBusinessNotFound})

	_, err := service.GetBusinessName(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrBusinessNotFound)
}
