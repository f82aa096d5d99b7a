package domain

import "errors"

var (
	MessageSuccessGetDashboard    = "dashboard statistics retrieved successfully"
	MessageSuccessGetBusinessName = "business name retrieved successfully"

	MessageFailedGetDashboard    = "failed to retrieve dashboard statistics"
	MessageFailedGetBusinessName = "failed to retrieve business name"

	ErrBusinessNotFound = errors.New("business not found")
)

type (
	MonthlyDataPoint struct {
		Month            string  `json:"month"` // YYYY-MM
		MonthlySales     float64 `json:"monthlySales"`
		MonthlyPurchases float64 `json:"monthlyPurchases"`
	}

	DashboardStatsResponse struct {
		TotalSales     float64            `json:"totalSales"`
		TotalExpenses  float64            `json:"totalExpenses"`
		TotalPurchases float64            `json:"totalPurchases"`
		TotalProfit    float64            `json:"totalProfit"`
		MonthlyData    []MonthlyDataPoint `json:"monthlyData"`
	}

	BusinessNameResponse struct {
		BusinessName string `json:"businessName"`
	}
)
