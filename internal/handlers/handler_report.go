package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jairjanssen9-web/levant---clock-in/internal/apperrors"
	portssvc "github.com/jairjanssen9-web/levant---clock-in/internal/core/ports/services"
	"github.com/jairjanssen9-web/levant---clock-in/internal/dto"
	"github.com/jairjanssen9-web/levant---clock-in/internal/middleware"
)

// reportHandler serves the derived views: the kiosk dashboard and the
// hours/pay report.
type reportHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportHandler(rs portssvc.ReportingSvcFacade) *reportHandler {
	return &reportHandler{reportingService: rs}
}

// registerDashboardRoutes registers the public dashboard route.
func registerDashboardRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportHandler(reportingService)

	rg.GET("/dashboard/status", h.dashboardStatus)
}

// registerReportRoutes registers the admin reporting routes.
func registerReportRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/hours", h.hoursReport)
	}
}

// dashboardStatus godoc
// @Summary Work status board
// @Description Returns the derived work status of every active employee.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/status [get]
func (h *reportHandler) dashboardStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resp, err := h.reportingService.DashboardStatus(c.Request.Context(), time.Now())
	if err != nil {
		logger.Error("Failed to build dashboard", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// hoursReport godoc
// @Summary Hours and pay report
// @Description Aggregates completed time logs into per-employee hours and pay over an inclusive date window.
// @Tags reports
// @Produce json
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.HoursReportResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/hours [get]
func (h *reportHandler) hoursReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.HoursReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.reportingService.HoursReport(c.Request.Context(), params.From, params.To)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to build hours report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
