package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ongesperanza/ngo-system/internal/core/ports"
)

// ReportHandler serves the dashboard and funding report aggregates.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Dashboard handles GET /v1/dashboard.
//
// @Summary      Dashboard statistics and recent activity
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/dashboard [get]
func (h *ReportHandler) Dashboard(c echo.Context) error {
	stats, err := h.service.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}

	recent := make([]activityResponse, 0, len(stats.Recent))
	for _, e := range stats.Recent {
		recent = append(recent, toActivityResponse(e))
	}
	return c.JSON(http.StatusOK, dashboardResponse{
		TotalVolunteers: stats.TotalVolunteers,
		TotalProjects:   stats.TotalProjects,
		ActiveProjects:  stats.ActiveProjects,
		MonetaryTotal:   stats.MonetaryTotal,
		Recent:          recent,
	})
}

// Funding handles GET /v1/reports.
//
// @Summary      Financial transparency report
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  fundingReportResponse
// @Failure      401  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/reports [get]
func (h *ReportHandler) Funding(c echo.Context) error {
	report, err := h.service.Funding(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFundingReportResponse(report))
}
