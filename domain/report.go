package domain

import "errors"

var (
	MessageSuccessGetReport = "report retrieved successfully"
	MessageNoReportData     = "No data available for the selected filter."

	MessageFailedGetReport = "failed to fetch report"

	ErrInvalidReportType   = errors.New("invalid report type")
	ErrInvalidReportFilter = errors.New("invalid filter option")
)

const (
	ReportTypeSales     = "sales"
	ReportTypePurchases = "purchases"
	ReportTypeExpenses  = "expenses"

	ReportFilterDaily   = "daily"
	ReportFilterWeekly  = "weekly"
	ReportFilterMonthly = "monthly"
	ReportFilterYearly  = "yearly"
)

type ReportRow struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Date     string  `json:"date"` // YYYY-MM-DD
	Amount   float64 `json:"amount"`
	Quantity *int    `json:"quantity"`
}
