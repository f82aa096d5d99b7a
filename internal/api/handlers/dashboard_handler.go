package handlers

import (
	"errors"

	"resto-pos-backend/domain"
	"resto-pos-backend/internal/api/presenters"
	"resto-pos-backend/pkg/dashboard"

	"github.com/gofiber/fiber/v2"
)

type (
	DashboardHandler interface {
		GetStats(c *fiber.Ctx) error
		GetBusinessName(c *fiber.Ctx) error
	}

	dashboardHandler struct {
		dashboardService dashboard.DashboardService
	}
)

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandler{dashboardService: dashboardService}
}

func (h *dashboardHandler) GetStats(c *fiber.Ctx) error {
	businessID, ok := businessIDFromLocals(c)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrBusinessMissing)
	}

	stats, err := h.dashboardService.GetStats(c.Context(), businessID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDashboard, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}

func (h *dashboardHandler) GetBusinessName(c *fiber.Ctx) error {
	businessID, ok := businessIDFromLocals(c)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrBusinessMissing)
	}

	res, err := h.dashboardService.GetBusinessName(c.Context(), businessID)
	if err != nil {
		if errors.Is(err, domain.ErrBusinessNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetBusinessName, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetBusinessName, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBusinessName)
}
