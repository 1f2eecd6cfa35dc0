package dto

import (
	"time"

	"github.com/jairjanssen9-web/levant---clock-in/internal/core/domain"
)

// EditTimeLogRequest defines an administrator correction to a time log.
// ClockOut may be omitted to reopen a completed session. Reason is required;
// an edit without justification is rejected before anything is mutated.
type EditTimeLogRequest struct {
	ClockIn  time.Time  `json:"clockIn" binding:"required"`
	ClockOut *time.Time `json:"clockOut"`
	Reason   string     `json:"reason" binding:"required"`
}

// ListTimeLogsParams defines query parameters for listing time logs.
type ListTimeLogsParams struct {
	EmployeeID string    `form:"employeeID"`
	From       time.Time `form:"from" time_format:"2006-01-02"`
	To         time.Time `form:"to" time_format:"2006-01-02"`
	Limit      int       `form:"limit,default=100"`
	Offset     int       `form:"offset,default=0"`
}

// EditRecordResponse is one entry of a log's audit trail.
type EditRecordResponse struct {
	Date        time.Time  `json:"date"`
	PreviousIn  time.Time  `json:"previousIn"`
	PreviousOut *time.Time `json:"previousOut,omitempty"`
	Reason      string     `json:"reason"`
	AdminName   string     `json:"adminName"`
}

// TimeLogResponse defines the data returned for a time log.
type TimeLogResponse struct {
	LogID      string               `json:"id"`
	EmployeeID string               `json:"employeeId"`
	Date       string               `json:"date"` // YYYY-MM-DD
	ClockIn    time.Time            `json:"clockIn"`
	ClockOut   *time.Time           `json:"clockOut,omitempty"`
	Status     domain.TimeLogStatus `json:"status"`
	Flagged    bool                 `json:"flagged"`
	Edits      []EditRecordResponse `json:"edits"`
}

// ListTimeLogsResponse wraps the list of time logs.
type ListTimeLogsResponse struct {
	TimeLogs []TimeLogResponse `json:"timeLogs"`
}

// ToTimeLogResponse converts a domain.TimeLog to its response DTO.
func ToTimeLogResponse(l *domain.TimeLog) TimeLogResponse {
	edits := make([]EditRecordResponse, len(l.Edits))
	for i, e := range l.Edits {
		edits[i] = EditRecordResponse{
			Date:        e.EditedAt,
			PreviousIn:  e.PreviousIn,
			PreviousOut: e.PreviousOut,
			Reason:      e.Reason,
			AdminName:   e.AdminName,
		}
	}
	return TimeLogResponse{
		LogID:      l.LogID,
		EmployeeID: l.EmployeeID,
		Date:       l.LogDate.Format("2006-01-02"),
		ClockIn:    l.ClockIn,
		ClockOut:   l.ClockOut,
		Status:     l.Status,
		Flagged:    l.Flagged,
		Edits:      edits,
	}
}

// ToListTimeLogsResponse converts a slice of domain time logs to the list DTO.
func ToListTimeLogsResponse(logs []domain.TimeLog) ListTimeLogsResponse {
	responses := make([]TimeLogResponse, len(logs))
	for i := range logs {
		responses[i] = ToTimeLogResponse(&logs[i])
	}
	return ListTimeLogsResponse{TimeLogs: responses}
}
