package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jairjanssen9-web/levant---clock-in/internal/apperrors"
	portssvc "github.com/jairjanssen9-web/levant---clock-in/internal/core/ports/services"
	"github.com/jairjanssen9-web/levant---clock-in/internal/dto"
	"github.com/jairjanssen9-web/levant---clock-in/internal/middleware"
)

// timeLogHandler handles HTTP requests for clocking and time log corrections.
type timeLogHandler struct {
	timeLogService portssvc.TimeLogSvcFacade
}

func newTimeLogHandler(ts portssvc.TimeLogSvcFacade) *timeLogHandler {
	return &timeLogHandler{timeLogService: ts}
}

// registerSessionRoutes registers the kiosk clock-in/clock-out routes.
func registerSessionRoutes(rg *gin.RouterGroup, timeLogService portssvc.TimeLogSvcFacade) {
	h := newTimeLogHandler(timeLogService)

	employees := rg.Group("/employees")
	{
		employees.POST("/:id/clock-in", h.clockIn)
		employees.POST("/:id/clock-out", h.clockOut)
	}
}

// registerTimeLogRoutes registers the admin time log routes.
func registerTimeLogRoutes(rg *gin.RouterGroup, timeLogService portssvc.TimeLogSvcFacade) {
	h := newTimeLogHandler(timeLogService)

	timelogs := rg.Group("/timelogs")
	{
		timelogs.GET("", h.listTimeLogs)
		timelogs.GET("/:id", h.getTimeLog)
		timelogs.PUT("/:id", h.editTimeLog)
	}
}

// clockIn godoc
// @Summary Clock an employee in
// @Description Opens a new work session for the employee.
// @Tags sessions
// @Produce json
// @Param id path string true "Employee ID"
// @Success 201 {object} dto.TimeLogResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already clocked in"
// @Failure 422 {object} ErrorResponse "Employee is deactivated"
// @Router /employees/{id}/clock-in [post]
func (h *timeLogHandler) clockIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("id")

	log, err := h.timeLogService.ClockIn(c.Request.Context(), employeeID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Employee not found"})
		case errors.Is(err, apperrors.ErrEmployeeInactive):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Employee is deactivated"})
		case errors.Is(err, apperrors.ErrActiveSessionExists):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Employee is already clocked in"})
		default:
			logger.Error("Failed to clock in", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to clock in"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTimeLogResponse(log))
}

// clockOut godoc
// @Summary Clock an employee out
// @Description Closes the employee's open work session. Without an open session the call does nothing.
// @Tags sessions
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.TimeLogResponse
// @Success 204 "No open session"
// @Failure 500 {object} ErrorResponse
// @Router /employees/{id}/clock-out [post]
func (h *timeLogHandler) clockOut(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("id")

	log, err := h.timeLogService.ClockOut(c.Request.Context(), employeeID)
	if err != nil {
		logger.Error("Failed to clock out", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to clock out"})
		return
	}
	if log == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, dto.ToTimeLogResponse(log))
}

// listTimeLogs godoc
// @Summary List time logs
// @Description Lists time logs, optionally filtered by employee and date window.
// @Tags timelogs
// @Produce json
// @Param employeeID query string false "Employee ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param limit query int false "Max results" default(100)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListTimeLogsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /timelogs [get]
func (h *timeLogHandler) listTimeLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTimeLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	logs, err := h.timeLogService.ListTimeLogs(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list time logs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list time logs"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTimeLogsResponse(logs))
}

// getTimeLog godoc
// @Summary Get a time log
// @Description Retrieves a time log with its full edit trail.
// @Tags timelogs
// @Produce json
// @Param id path string true "Time log ID"
// @Success 200 {object} dto.TimeLogResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /timelogs/{id} [get]
func (h *timeLogHandler) getTimeLog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logID := c.Param("id")

	log, err := h.timeLogService.GetTimeLogByID(c.Request.Context(), logID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Time log not found"})
			return
		}
		logger.Error("Failed to get time log", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve time log"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTimeLogResponse(log))
}

// editTimeLog godoc
// @Summary Correct a time log
// @Description Overwrites the log's boundaries and appends an audit record with the pre-edit values.
// @Tags timelogs
// @Accept json
// @Produce json
// @Param id path string true "Time log ID"
// @Param edit body dto.EditTimeLogRequest true "Corrected boundaries and reason"
// @Success 200 {object} dto.TimeLogResponse
// @Failure 400 {object} ErrorResponse "Missing reason or clock-in"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Would open a second active session"
// @Failure 422 {object} ErrorResponse "Clock-out precedes clock-in"
// @Security BearerAuth
// @Router /timelogs/{id} [put]
func (h *timeLogHandler) editTimeLog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logID := c.Param("id")

	var req dto.EditTimeLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	log, err := h.timeLogService.EditTimeLog(c.Request.Context(), logID, req, adminID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Time log not found"})
		case errors.Is(err, apperrors.ErrActiveSessionExists):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Edit would open a second active session"})
		case errors.Is(err, apperrors.ErrInvertedInterval):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Clock-out precedes clock-in"})
		default:
			logger.Error("Failed to edit time log", slog.String("error", err.Error()), slog.String("log_id", logID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to edit time log"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTimeLogResponse(log))
}
