package handlers

import (
	"errors"

	"resto-pos-backend/domain"
	"resto-pos-backend/internal/api/presenters"
	"resto-pos-backend/pkg/report"

	"github.com/gofiber/fiber/v2"
)

type (
	ReportHandler interface {
		GetReport(c *fiber.Ctx) error
	}

	reportHandler struct {
		reportService report.ReportService
	}
)

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandler{reportService: reportService}
}

// GetReport serves /reports/:type?filter=daily|weekly|monthly|yearly.
// Type and filter are validated against fixed whitelists before any query runs.
func (h *reportHandler) GetReport(c *fiber.Ctx) error {
	businessID, ok := businessIDFromLocals(c)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrBusinessMissing)
	}
	reportType := c.Params("type")
	filter := c.Query("filter", domain.ReportFilterMonthly)

	rows, err := h.reportService.GetReport(c.Context(), reportType, filter, businessID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidReportType) || errors.Is(err, domain.ErrInvalidReportFilter) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReport, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetReport, err)
	}

	if len(rows) == 0 {
		return presenters.SuccessResponse(c, []domain.ReportRow{}, fiber.StatusOK, domain.MessageNoReportData)
	}

	return presenters.SuccessResponse(c, rows, fiber.StatusOK, domain.MessageSuccessGetReport)
}
