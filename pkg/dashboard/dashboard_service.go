package dashboard

import (
	"context"

	"resto-pos-backend/domain"
)

type (
	DashboardService interface {
		GetStats(ctx context.Context, businessID uint) (domain.DashboardStatsResponse, error)
		GetBusinessName(ctx context.Context, businessID uint) (domain.BusinessNameResponse, error)
	}

	dashboardService struct {
		dashboardRepository DashboardRepository
	}
)

func NewDashboardService(dashboardRepository DashboardRepository) DashboardService {
	return &dashboardService{dashboardRepository: dashboardRepository}
}

func (s *dashboardService) GetStats(ctx context.Context, businessID uint) (domain.DashboardStatsResponse, error) {
	totals, err := s.dashboardRepository.GetTotals(ctx, businessID)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	monthlyData, err := s.dashboardRepository.GetMonthlyData(ctx, businessID)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}
	if monthlyData == nil {
		monthlyData = []domain.MonthlyDataPoint{}
	}

	return domain.DashboardStatsResponse{
		TotalSales:     totals.TotalSales,
		TotalExpenses:  totals.TotalExpenses,
		TotalPurchases: totals.TotalPurchases,
		TotalProfit:    totals.TotalSales - (totals.TotalExpenses + totals.TotalPurchases),
		MonthlyData:    monthlyData,
	}, nil
}

func (s *dashboardService) GetBusinessName(ctx context.Context, businessID uint) (domain.BusinessNameResponse, error) {
	name, err := s.dashboardRepository.GetBusinessName(ctx, businessID)
	if err != nil {
		return domain.BusinessNameResponse{}, err
	}
	return domain.BusinessNameResponse{BusinessName: name}, nil
}
