package dto

import (
	"time"

	"github.com/jairjanssen9-web/levant---clock-in/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EmployeeStatusResponse is one dashboard card: the employee plus the
// derived work status and, while working, the open session's clock-in.
type EmployeeStatusResponse struct {
	Employee EmployeeResponse  `json:"employee"`
	Status   domain.WorkStatus `json:"status"`
	ClockIn  *time.Time        `json:"clockIn,omitempty"`
}

// DashboardResponse wraps the per-employee statuses shown on the kiosk.
type DashboardResponse struct {
	Statuses []EmployeeStatusResponse `json:"statuses"`
}

// HoursReportParams defines the reporting window. Both bounds are
// inclusive calendar dates.
type HoursReportParams struct {
	From time.Time `form:"from" time_format:"2006-01-02" binding:"required"`
	To   time.Time `form:"to" time_format:"2006-01-02" binding:"required"`
}

// EmployeeHoursResponse is the per-employee aggregation line. Hours come
// from completed logs only; flagged logs are excluded from the totals.
type EmployeeHoursResponse struct {
	EmployeeID string              `json:"employeeID"`
	Name       string              `json:"name"`
	Role       domain.EmployeeRole `json:"role"`
	Hours      decimal.Decimal     `json:"hours"`
	HourlyRate decimal.Decimal     `json:"hourlyRate"`
	Pay        decimal.Decimal     `json:"pay"`
}

// HoursReportResponse wraps the hours/pay report for a window.
type HoursReportResponse struct {
	From  string                  `json:"from"`
	To    string                  `json:"to"`
	Lines []EmployeeHoursResponse `json:"lines"`
	Total decimal.Decimal         `json:"totalPay"`
}
